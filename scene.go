package ldeditor

import (
	"fmt"
	"log"
	"time"
)

// FrameInput is everything the host supplies for one Tick.
type FrameInput struct {
	// Cursor is the pointer state; Present is false outside the window.
	Cursor ScreenCursor
	// Camera is the designated camera snapshot, or nil if there is none.
	Camera *CameraState
}

// Scene is the top-level object that owns the interactive objects, the
// designated camera, the asset registry, and the hit tester.
type Scene struct {
	// ClearColor is the background the host fills the screen with.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	objects []*Object
	camera  *Camera
	assets  *Assets
	hits    *HitTester
	debug   bool

	frame       uint64
	stats       FrameStats
	diagnostics []Diagnostic

	// Synthetic input (see inject.go, testrunner.go, and screenshot.go)
	injectQueue []syntheticCursor
	injected    ScreenCursor
	hasInjected bool
	testRunner  *TestRunner

	screenshotQueue []string
}

// NewScene creates an empty scene whose footprints resolve through a fresh
// asset registry.
func NewScene() *Scene {
	assets := NewAssets()
	return &Scene{
		ClearColor:    Color{0.1, 0.1, 0.12, 1},
		ScreenshotDir: "screenshots",
		assets:        assets,
		hits:          NewHitTester(assets),
	}
}

// Add appends o to the scene. Objects live for the lifetime of the scene.
// Panics if o is nil or already added.
func (s *Scene) Add(o *Object) {
	if o == nil {
		panic("ldeditor: cannot add nil object")
	}
	for _, existing := range s.objects {
		if existing == o {
			panic(fmt.Sprintf("ldeditor: object %q added twice", o.Name))
		}
	}
	s.objects = append(s.objects, o)
}

// Objects returns the object list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Find returns the first object with the given name, or nil.
func (s *Scene) Find(name string) *Object {
	for _, o := range s.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Assets returns the scene's asset registry.
func (s *Scene) Assets() *Assets {
	return s.assets
}

// SetResolver replaces the footprint resolver. Passing nil restores the
// scene's asset registry.
func (s *Scene) SetResolver(r FootprintResolver) {
	if r == nil {
		r = s.assets
	}
	s.hits.Resolver = r
}

// SetCamera designates the camera used by Update. Only one camera is used for
// hit testing.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the designated camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetEventSink sets the optional hover event sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.hits.Sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, diagnostics are
// logged and per-frame hit-test stats are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Frame returns the number of frames processed by Tick.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Stats returns the hit-test summary of the last processed frame.
func (s *Scene) Stats() FrameStats {
	return s.stats
}

// Diagnostics returns the non-fatal problems recorded by the last Tick. The
// returned slice is reused and MUST NOT be retained across calls.
func (s *Scene) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Update runs Tick with the designated camera's current state.
func (s *Scene) Update(cursor ScreenCursor) error {
	in := FrameInput{Cursor: cursor}
	if s.camera != nil {
		st := s.camera.State()
		in.Camera = &st
	}
	return s.Tick(in)
}

// Tick maps the cursor to world space and runs the hit tester over every
// object. It returns ErrCameraUnavailable, leaving every object unchanged,
// when the frame has no usable camera. Per-object problems never fail the
// frame; they are available from Diagnostics.
func (s *Scene) Tick(in FrameInput) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.diagnostics = s.diagnostics[:0]

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	cursor := s.cursorFor(in.Cursor)

	if in.Camera == nil || !in.Camera.Invertible() {
		if s.debug {
			log.Printf("ldeditor: frame %d skipped: %v", s.frame, ErrCameraUnavailable)
		}
		return ErrCameraUnavailable
	}
	if cursor.Present && !cursor.viewportValid() {
		s.diagnostics = append(s.diagnostics, Diagnostic{
			Err: fmt.Errorf("%w: %gx%g", ErrDegenerateViewport, cursor.ViewportW, cursor.ViewportH),
		})
	}

	p, ok := MapToWorld(cursor, *in.Camera)
	s.stats = s.hits.Update(p, ok, s.objects)
	s.diagnostics = append(s.diagnostics, s.hits.Diagnostics()...)
	s.frame++

	if s.debug {
		for _, d := range s.diagnostics {
			log.Printf("ldeditor: frame %d: %s", s.frame, d)
		}
		s.debugLog(debugStats{
			frame:     s.frame,
			tickTime:  time.Since(t0),
			hits:      s.stats,
			cursor:    cursor,
			world:     p,
			mapped:    ok,
			diagCount: len(s.diagnostics),
		})
	}
	return nil
}
