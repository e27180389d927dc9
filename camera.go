package ldeditor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Near and far planes of the orthographic projection built by Camera.
const (
	cameraNear float32 = -1000
	cameraFar  float32 = 1000
)

// Camera is the scene's designated view: position, zoom, rotation, and the
// viewport it renders into. Moving the camera is the host's job; the core
// only reads its State each frame.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = one world unit per pixel, >1 = zoom in).
	Zoom float64
	// Rotation is the camera rotation in radians (counter-clockwise, Y up).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into,
	// top-left origin.
	Viewport Rect

	// CullEnabled makes the host skip drawing objects whose bounds do not
	// intersect VisibleBounds.
	CullEnabled bool

	state    CameraState
	stateKey cameraKey
	dirty    bool
}

// cameraKey captures the inputs of the cached state so direct field writes
// are picked up without an explicit MarkDirty.
type cameraKey struct {
	x, y, zoom, rot float64
	w, h            float64
}

// newCamera creates a Camera with default values and the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:        1.0,
		Viewport:    viewport,
		CullEnabled: true,
		dirty:       true,
	}
}

// NewCamera creates a standalone camera centered on the world origin.
func NewCamera(viewport Rect) *Camera {
	return newCamera(viewport)
}

// OrthographicProjection returns a projection spanning w x h world units at
// zoom 1, centered on the camera. Larger zoom shows a smaller area.
func OrthographicProjection(w, h, zoom float32) mgl32.Mat4 {
	hw := w / (2 * zoom)
	hh := h / (2 * zoom)
	return mgl32.Ortho(-hw, hw, -hh, hh, cameraNear, cameraFar)
}

// State returns the camera snapshot used by MapToWorld, recomputing it only
// when a field changed.
func (c *Camera) State() CameraState {
	key := cameraKey{c.X, c.Y, c.Zoom, c.Rotation, c.Viewport.Width, c.Viewport.Height}
	if !c.dirty && key == c.stateKey {
		return c.state
	}
	c.dirty = false
	c.stateKey = key

	transform := mgl32.Translate3D(float32(c.X), float32(c.Y), 0).
		Mul4(mgl32.HomogRotate3DZ(float32(c.Rotation)))
	c.state = CameraState{
		Transform:  transform,
		Projection: OrthographicProjection(float32(c.Viewport.Width), float32(c.Viewport.Height), float32(c.Zoom)),
	}
	return c.state
}

// MarkDirty forces a recomputation of the cached state.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// WorldToScreen converts world coordinates to top-left screen coordinates
// inside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	w, h := float32(c.Viewport.Width), float32(c.Viewport.Height)
	p := WorldToScreen(mgl32.Vec2{float32(wx), float32(wy)}, c.State(), w, h)
	return c.Viewport.X + float64(p.X()), c.Viewport.Y + float64(h-p.Y())
}

// ScreenToWorld converts top-left screen coordinates to world coordinates.
// ok is false when the viewport is degenerate.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64, ok bool) {
	cursor := CursorFromTopLeft(
		float32(sx-c.Viewport.X), float32(sy-c.Viewport.Y),
		float32(c.Viewport.Width), float32(c.Viewport.Height),
	)
	p, ok := MapToWorld(cursor, c.State())
	return float64(p.X()), float64(p.Y()), ok
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space (Y up, so X/Y is the bottom-left corner).
func (c *Camera) VisibleBounds() Rect {
	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0, _ := c.ScreenToWorld(vx, vy)
	x1, y1, _ := c.ScreenToWorld(vr, vy)
	x2, y2, _ := c.ScreenToWorld(vr, vb)
	x3, y3, _ := c.ScreenToWorld(vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
