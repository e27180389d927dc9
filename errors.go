package ldeditor

import (
	"errors"
	"fmt"
)

var (
	// ErrCameraUnavailable is returned by Scene.Tick when no usable camera
	// snapshot exists. The frame is skipped and no object state changes.
	ErrCameraUnavailable = errors.New("ldeditor: camera unavailable")

	// ErrDegenerateViewport is reported when a viewport dimension is zero or
	// negative. The cursor is treated as absent for that frame.
	ErrDegenerateViewport = errors.New("ldeditor: degenerate viewport")

	// ErrUnresolvedFootprint is reported for an object whose size source
	// cannot be determined this frame. The object is skipped.
	ErrUnresolvedFootprint = errors.New("ldeditor: unresolved footprint")

	// ErrInvalidFootprint is returned by object constructors for a zero or
	// negative footprint, or an atlas footprint with no frames.
	ErrInvalidFootprint = errors.New("ldeditor: invalid footprint")
)

// Diagnostic is a non-fatal problem recorded during a Tick.
type Diagnostic struct {
	ObjectID uint32 // 0 for frame-wide diagnostics
	Name     string
	Err      error
}

func (d Diagnostic) String() string {
	if d.ObjectID == 0 {
		return d.Err.Error()
	}
	return fmt.Sprintf("object %q (id %d): %v", d.Name, d.ObjectID, d.Err)
}

// invalidFrameIndex panics for an atlas frame outside [0, frames). This can
// only happen when object state was corrupted outside the hit tester.
func invalidFrameIndex(o *Object, frames int) {
	panic(fmt.Sprintf("ldeditor: frame index %d out of range [0,%d) on object %q", o.Frame, frames, o.Name))
}
