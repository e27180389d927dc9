package ldeditor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// referenceDepth is the NDC depth of the near view plane. Screen points are
// lifted to this depth before unprojecting; the depth of the result is
// discarded.
const referenceDepth float32 = -1

// CameraState is a read-only snapshot of the designated camera for one frame.
type CameraState struct {
	// Transform maps camera space to world space (the camera's global
	// transform). Only translation and rotation about Z are expected.
	Transform mgl32.Mat4
	// Projection maps camera space to clip space. It must be invertible.
	Projection mgl32.Mat4
}

// Invertible reports whether both matrices have a finite, non-zero
// determinant, i.e. whether MapToWorld can produce a meaningful result.
func (c CameraState) Invertible() bool {
	return usableDet(c.Transform.Det()) && usableDet(c.Projection.Det())
}

func usableDet(d float32) bool {
	f := float64(d)
	return d != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ndcToWorld returns Transform * Projection⁻¹.
func (c CameraState) ndcToWorld() mgl32.Mat4 {
	return c.Transform.Mul4(c.Projection.Inv())
}

// worldToNDC returns Projection * Transform⁻¹, the forward mapping the host
// uses to place sprites on screen.
func (c CameraState) worldToNDC() mgl32.Mat4 {
	return c.Projection.Mul4(c.Transform.Inv())
}

// ScreenCursor is the pointer position for one frame. Pixel coordinates have
// their origin at the bottom-left of the viewport with Y increasing upward.
// Present is false while the pointer is outside the window; that is a normal
// state, not an error.
type ScreenCursor struct {
	X, Y                 float32
	ViewportW, ViewportH float32
	Present              bool
}

// CursorAt returns a present cursor at (x, y) in a w x h viewport, using
// bottom-left pixel coordinates.
func CursorAt(x, y, w, h float32) ScreenCursor {
	return ScreenCursor{X: x, Y: y, ViewportW: w, ViewportH: h, Present: true}
}

// CursorFromTopLeft converts a Y-down pixel position (as reported by
// ebiten.CursorPosition) into a ScreenCursor.
func CursorFromTopLeft(x, y, w, h float32) ScreenCursor {
	return CursorAt(x, h-y, w, h)
}

// viewportValid reports whether both viewport dimensions are positive.
func (c ScreenCursor) viewportValid() bool {
	return c.ViewportW > 0 && c.ViewportH > 0
}

// MapToWorld converts the cursor into a world-space point using the camera's
// inverse view-projection. ok is false when the cursor is absent or the
// viewport is degenerate.
func MapToWorld(cursor ScreenCursor, cam CameraState) (p mgl32.Vec2, ok bool) {
	if !cursor.Present || !cursor.viewportValid() {
		return mgl32.Vec2{}, false
	}
	ndc := mgl32.Vec3{
		cursor.X/cursor.ViewportW*2 - 1,
		cursor.Y/cursor.ViewportH*2 - 1,
		referenceDepth,
	}
	world := mgl32.TransformCoordinate(ndc, cam.ndcToWorld())
	return world.Vec2(), true
}

// WorldToScreen projects a world point to bottom-left pixel coordinates in a
// w x h viewport. MapToWorld is its inverse.
func WorldToScreen(p mgl32.Vec2, cam CameraState, w, h float32) mgl32.Vec2 {
	ndc := mgl32.TransformCoordinate(p.Vec3(0), cam.worldToNDC())
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * w,
		(ndc.Y() + 1) / 2 * h,
	}
}
