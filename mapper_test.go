package ldeditor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-3

func approx32(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

// orthoCamera returns a camera at (x, y) whose projection spans w x h world
// units at the given zoom.
func orthoCamera(x, y, rot, w, h, zoom float32) CameraState {
	return CameraState{
		Transform:  mgl32.Translate3D(x, y, 0).Mul4(mgl32.HomogRotate3DZ(rot)),
		Projection: OrthographicProjection(w, h, zoom),
	}
}

func TestMapToWorld_ScreenCenterIsCameraOrigin(t *testing.T) {
	cam := orthoCamera(0, 0, 0, 1024, 768, 1)
	p, ok := MapToWorld(CursorAt(512, 384, 1024, 768), cam)
	if !ok {
		t.Fatal("MapToWorld returned no point for a present cursor")
	}
	if !approx32(p.X(), 0, epsilon) || !approx32(p.Y(), 0, epsilon) {
		t.Errorf("MapToWorld(512,384) = (%f,%f), want (0,0)", p.X(), p.Y())
	}
}

func TestMapToWorld_Corners(t *testing.T) {
	cam := orthoCamera(0, 0, 0, 1024, 768, 1)

	tests := []struct {
		name   string
		px, py float32
		wx, wy float32
	}{
		{"bottom-left", 0, 0, -512, -384},
		{"top-right", 1024, 768, 512, 384},
		{"bottom-right", 1024, 0, 512, -384},
		{"top-left", 0, 768, -512, 384},
		{"quarter", 256, 192, -256, -192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := MapToWorld(CursorAt(tt.px, tt.py, 1024, 768), cam)
			if !ok {
				t.Fatal("no point")
			}
			if !approx32(p.X(), tt.wx, epsilon) || !approx32(p.Y(), tt.wy, epsilon) {
				t.Errorf("MapToWorld(%v,%v) = (%f,%f), want (%v,%v)", tt.px, tt.py, p.X(), p.Y(), tt.wx, tt.wy)
			}
		})
	}
}

func TestMapToWorld_CameraTranslationAndZoom(t *testing.T) {
	cam := orthoCamera(100, -50, 0, 800, 600, 2)

	// Center still maps to the camera position.
	p, _ := MapToWorld(CursorAt(400, 300, 800, 600), cam)
	if !approx32(p.X(), 100, epsilon) || !approx32(p.Y(), -50, epsilon) {
		t.Errorf("center = (%f,%f), want (100,-50)", p.X(), p.Y())
	}

	// At zoom 2 the right edge is 200 world units from the center.
	p, _ = MapToWorld(CursorAt(800, 300, 800, 600), cam)
	if !approx32(p.X(), 300, epsilon) {
		t.Errorf("right edge x = %f, want 300", p.X())
	}
}

func TestMapToWorld_Rotation(t *testing.T) {
	// Camera rotated 90° counter-clockwise: screen right is world up.
	cam := orthoCamera(0, 0, math.Pi/2, 800, 600, 1)
	p, _ := MapToWorld(CursorAt(500, 300, 800, 600), cam)
	if !approx32(p.X(), 0, epsilon) || !approx32(p.Y(), 100, epsilon) {
		t.Errorf("rotated = (%f,%f), want (0,100)", p.X(), p.Y())
	}
}

func TestMapToWorld_AbsentCursor(t *testing.T) {
	cameras := []CameraState{
		orthoCamera(0, 0, 0, 1024, 768, 1),
		orthoCamera(-40, 12, 0.7, 640, 480, 3),
		{Transform: mgl32.Ident4(), Projection: mgl32.Ident4()},
		{}, // even a singular snapshot
	}
	cursor := ScreenCursor{X: 512, Y: 384, ViewportW: 1024, ViewportH: 768, Present: false}
	for i, cam := range cameras {
		if _, ok := MapToWorld(cursor, cam); ok {
			t.Errorf("camera %d: absent cursor produced a point", i)
		}
	}
}

func TestMapToWorld_DegenerateViewport(t *testing.T) {
	cam := orthoCamera(0, 0, 0, 1024, 768, 1)
	tests := []struct {
		name string
		w, h float32
	}{
		{"zero width", 0, 768},
		{"zero height", 1024, 0},
		{"negative", -1, 768},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := MapToWorld(CursorAt(10, 10, tt.w, tt.h), cam); ok {
				t.Error("degenerate viewport produced a point")
			}
		})
	}
}

func TestMapToWorld_Roundtrip(t *testing.T) {
	cameras := []struct {
		name string
		cam  CameraState
		w, h float32
	}{
		{"identity", orthoCamera(0, 0, 0, 1024, 768, 1), 1024, 768},
		{"translated", orthoCamera(42, -17, 0, 800, 600, 1), 800, 600},
		{"zoomed", orthoCamera(5, 5, 0, 800, 600, 1.5), 800, 600},
		{"rotated", orthoCamera(-300, 120, 0.3, 640, 480, 0.75), 640, 480},
	}
	points := []mgl32.Vec2{{0, 0}, {123, -456}, {-300, 0}, {300, 0}, {17.5, 99.25}}

	for _, c := range cameras {
		t.Run(c.name, func(t *testing.T) {
			for _, orig := range points {
				s := WorldToScreen(orig, c.cam, c.w, c.h)
				got, ok := MapToWorld(CursorAt(s.X(), s.Y(), c.w, c.h), c.cam)
				if !ok {
					t.Fatalf("no point for %v", orig)
				}
				if !approx32(got.X(), orig.X(), 1e-2) || !approx32(got.Y(), orig.Y(), 1e-2) {
					t.Errorf("roundtrip %v -> %v -> %v", orig, s, got)
				}
			}
		})
	}
}

func TestCursorFromTopLeft(t *testing.T) {
	c := CursorFromTopLeft(10, 100, 640, 480)
	if !c.Present {
		t.Fatal("cursor should be present")
	}
	if c.X != 10 || c.Y != 380 {
		t.Errorf("cursor = (%v,%v), want (10,380)", c.X, c.Y)
	}
}

func TestCameraStateInvertible(t *testing.T) {
	if !orthoCamera(0, 0, 0, 800, 600, 1).Invertible() {
		t.Error("ortho camera should be invertible")
	}
	if (CameraState{}).Invertible() {
		t.Error("zero snapshot should not be invertible")
	}
	if orthoCamera(0, 0, 0, 800, 600, 0).Invertible() {
		t.Error("zero zoom should not be invertible")
	}
}
