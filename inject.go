package ldeditor

// syntheticCursor represents a single injected cursor sample.
// Screen coordinates are top-left pixels (matching ebiten.CursorPosition)
// and are converted exactly like real cursor input.
type syntheticCursor struct {
	screenX, screenY float64
	present          bool
}

// InjectCursor queues a cursor sample at the given top-left screen
// coordinates. One sample is consumed per Tick.
func (s *Scene) InjectCursor(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticCursor{screenX: x, screenY: y, present: true})
}

// InjectLeave queues a sample with the cursor outside the window.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticCursor{})
}

// InjectPath queues a cursor sweep from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames samples including both endpoints.
// Minimum frames is 2.
func (s *Scene) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectCursor(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// ResumeRealCursor drops any queued samples and returns control to the
// cursor passed to Tick.
func (s *Scene) ResumeRealCursor() {
	s.injectQueue = s.injectQueue[:0]
	s.hasInjected = false
	s.injected = ScreenCursor{}
}

// Injecting reports whether synthetic samples currently override real input.
func (s *Scene) Injecting() bool {
	return s.hasInjected || len(s.injectQueue) > 0
}

// cursorFor returns the cursor to use this frame. Once a sample has been
// injected it overrides real input: the queue is drained one sample per
// frame and the last sample stays in effect until ResumeRealCursor.
func (s *Scene) cursorFor(real ScreenCursor) ScreenCursor {
	if len(s.injectQueue) == 0 {
		if s.hasInjected {
			return s.injected
		}
		return real
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	w, h := real.ViewportW, real.ViewportH
	if (w <= 0 || h <= 0) && s.camera != nil {
		w, h = float32(s.camera.Viewport.Width), float32(s.camera.Viewport.Height)
	}
	if evt.present {
		s.injected = CursorFromTopLeft(float32(evt.screenX), float32(evt.screenY), w, h)
	} else {
		s.injected = ScreenCursor{ViewportW: w, ViewportH: h}
	}
	s.hasInjected = true
	return s.injected
}
