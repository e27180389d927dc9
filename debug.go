package ldeditor

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// debugOut is where per-frame stats are written. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugStats holds per-frame timing and hit-test metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	frame     uint64
	tickTime  time.Duration
	hits      FrameStats
	cursor    ScreenCursor
	world     mgl32.Vec2
	mapped    bool
	diagCount int
}

// debugLog prints timing and hit-test stats to debugOut.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	if stats.mapped {
		_, _ = fmt.Fprintf(debugOut,
			"[ldeditor] frame %d | cursor: (%.1f,%.1f) -> world (%.2f,%.2f) | tick: %v\n",
			stats.frame, stats.cursor.X, stats.cursor.Y, stats.world.X(), stats.world.Y(), stats.tickTime)
	} else {
		_, _ = fmt.Fprintf(debugOut,
			"[ldeditor] frame %d | cursor: none | tick: %v\n", stats.frame, stats.tickTime)
	}
	_, _ = fmt.Fprintf(debugOut,
		"[ldeditor] tested: %d | hovered: %d | advanced: %d | skipped: %d | diagnostics: %d\n",
		stats.hits.Tested, stats.hits.Hovered, stats.hits.Advanced, stats.hits.Skipped, stats.diagCount)
}

// debugOverlay formats the on-screen debug text drawn by the host.
func debugOverlay(s *Scene, fps, tps float64) string {
	st := s.Stats()
	text := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nhovered: %d/%d", fps, tps, st.Hovered, len(s.objects))
	if st.Skipped > 0 {
		text += fmt.Sprintf("\nskipped: %d", st.Skipped)
	}
	return text
}
