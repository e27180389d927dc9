package ldeditor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FootprintKind tags the variant held by a Footprint.
type FootprintKind uint8

const (
	FootprintNone  FootprintKind = iota // no explicit size; resolved from Object.Asset
	FootprintFixed                      // fixed image footprint
	FootprintAtlas                      // atlas cell footprint with a frame count
)

// Footprint is the world-space size an object occupies for hit testing.
// Width and Height are the full extents; the hit box is centered on the
// object's position.
type Footprint struct {
	Kind          FootprintKind
	Width, Height float32
	Frames        int // atlas only
}

// FixedFootprint returns the footprint of a single image.
func FixedFootprint(w, h float32) Footprint {
	return Footprint{Kind: FootprintFixed, Width: w, Height: h}
}

// AtlasFootprint returns the footprint of an atlas cell with the given number
// of frames.
func AtlasFootprint(cellW, cellH float32, frames int) Footprint {
	return Footprint{Kind: FootprintAtlas, Width: cellW, Height: cellH, Frames: frames}
}

// Valid reports whether f is a usable footprint: a known kind, strictly
// positive in both axes, and at least one frame for atlas footprints.
func (f Footprint) Valid() bool {
	if f.Width <= 0 || f.Height <= 0 {
		return false
	}
	switch f.Kind {
	case FootprintFixed:
		return true
	case FootprintAtlas:
		return f.Frames > 0
	default:
		return false
	}
}

// HalfExtents returns half the footprint on each axis.
func (f Footprint) HalfExtents() mgl32.Vec2 {
	return mgl32.Vec2{f.Width / 2, f.Height / 2}
}

// --- ID counter ---

// objectIDCounter is a plain counter (no atomic; ldeditor is single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// Object is an interactive sprite in the scene. The hit tester reads its
// position and size source and writes Hovered and Frame; every other field
// belongs to the caller.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// World-space position of the sprite center. Z is ignored by hit testing.
	X, Y, Z float32

	// Size source. When Footprint.Kind is FootprintNone the footprint is
	// looked up through the scene's FootprintResolver using Asset.
	Footprint Footprint
	Asset     string

	// HoverAsset names an image the host draws instead of Asset while the
	// object is hovered. Empty means no swap.
	HoverAsset string

	// Highlight state written by the hit tester.
	Hovered bool
	// Frame is the current atlas frame, in [0, frame count).
	Frame int

	// Metadata
	UserData any
	EntityID uint32

	// Per-object callbacks (nil by default)
	OnHoverEnter func(HoverEvent)
	OnHoverLeave func(HoverEvent)
}

// NewImageObject creates an object with a fixed image footprint of w x h
// centered at (x, y).
func NewImageObject(name string, x, y, w, h float32) (*Object, error) {
	return newObject(name, x, y, FixedFootprint(w, h))
}

// NewAtlasObject creates an atlas-backed object whose cells are cellW x cellH
// and that cycles through frames frames, starting at frame 0.
func NewAtlasObject(name string, x, y, cellW, cellH float32, frames int) (*Object, error) {
	return newObject(name, x, y, AtlasFootprint(cellW, cellH, frames))
}

// NewAssetObject creates an object whose footprint is resolved each frame
// from the named asset. Whether it behaves as an image or an atlas object is
// decided by what the asset resolves to.
func NewAssetObject(name, asset string, x, y float32) (*Object, error) {
	if asset == "" {
		return nil, fmt.Errorf("%w: object %q has no footprint and no asset", ErrInvalidFootprint, name)
	}
	o := &Object{ID: nextObjectID(), Name: name, X: x, Y: y, Asset: asset}
	return o, nil
}

func newObject(name string, x, y float32, fp Footprint) (*Object, error) {
	if !fp.Valid() {
		return nil, fmt.Errorf("%w: object %q: %gx%g, %d frames", ErrInvalidFootprint, name, fp.Width, fp.Height, fp.Frames)
	}
	o := &Object{ID: nextObjectID(), Name: name, X: x, Y: y, Footprint: fp}
	return o, nil
}

// SetPosition sets the object's world-space center.
func (o *Object) SetPosition(x, y float32) {
	o.X = x
	o.Y = y
}

// Position returns the object's world-space center, dropping Z.
func (o *Object) Position() mgl32.Vec2 {
	return mgl32.Vec2{o.X, o.Y}
}

// Bounds returns the world-space hit box for the given footprint.
func (o *Object) Bounds(fp Footprint) Rect {
	return Rect{
		X:      float64(o.X - fp.Width/2),
		Y:      float64(o.Y - fp.Height/2),
		Width:  float64(fp.Width),
		Height: float64(fp.Height),
	}
}
