package ldeditor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// HoverEvent carries a highlight transition for the event sink and per-object
// callbacks.
type HoverEvent struct {
	Type     EventType
	ObjectID uint32
	EntityID uint32
	Name     string
	UserData any
	// WorldX and WorldY are the cursor's world position. Both are zero for
	// leave events caused by the cursor leaving the window.
	WorldX, WorldY float32
	// Frame is the object's frame after the transition.
	Frame int
}

// EventSink is the interface for optional hover event forwarding, e.g. into
// an ECS world (see package ldeditor/ecs).
type EventSink interface {
	EmitHover(event HoverEvent)
}

// FrameStats summarizes one hit-testing pass.
type FrameStats struct {
	Tested   int // objects whose footprint resolved
	Hovered  int // objects under the cursor after the pass
	Skipped  int // objects skipped with ErrUnresolvedFootprint
	Advanced int // atlas objects whose frame advanced
}

// HitTester runs the per-object Idle/Hovered state machine.
//
// Highlighting is level-triggered: Hovered always reflects the latest
// containment result. Frame advance is edge-triggered: an atlas object moves
// to its next frame only on the Idle -> Hovered transition.
type HitTester struct {
	// Resolver supplies footprints for asset-bound objects. May be nil when
	// every object has an explicit footprint.
	Resolver FootprintResolver
	// Sink receives hover transitions. May be nil.
	Sink EventSink

	diagnostics []Diagnostic
}

// NewHitTester creates a HitTester that resolves asset footprints through r.
func NewHitTester(r FootprintResolver) *HitTester {
	return &HitTester{Resolver: r}
}

// Diagnostics returns the problems recorded by the last Update. The returned
// slice is reused and MUST NOT be retained across calls.
func (h *HitTester) Diagnostics() []Diagnostic {
	return h.diagnostics
}

// Update tests every object against point and updates Hovered and Frame in
// place. When ok is false (no cursor this frame) every highlight is cleared
// and no frame advances.
//
// An object whose footprint cannot be resolved is left untouched and
// reported through Diagnostics; the remaining objects are still processed.
func (h *HitTester) Update(point mgl32.Vec2, ok bool, objects []*Object) FrameStats {
	h.diagnostics = h.diagnostics[:0]
	var stats FrameStats

	if !ok {
		for _, o := range objects {
			if o != nil && o.Hovered {
				o.Hovered = false
				h.fire(EventHoverLeave, o, mgl32.Vec2{})
			}
		}
		return stats
	}

	for _, o := range objects {
		if o == nil {
			continue
		}
		fp, resolved := h.resolve(o)
		if !resolved {
			stats.Skipped++
			h.diagnostics = append(h.diagnostics, Diagnostic{
				ObjectID: o.ID,
				Name:     o.Name,
				Err:      unresolvedError(o),
			})
			continue
		}
		stats.Tested++

		inside := footprintContains(o.Position(), fp, point)
		switch {
		case inside && !o.Hovered:
			if fp.Kind == FootprintAtlas {
				advanceFrame(o, fp.Frames)
				stats.Advanced++
			}
			o.Hovered = true
			h.fire(EventHoverEnter, o, point)
		case !inside && o.Hovered:
			o.Hovered = false
			h.fire(EventHoverLeave, o, point)
		}
		if inside {
			stats.Hovered++
		}
	}
	return stats
}

// resolve returns the footprint to test o against this frame.
func (h *HitTester) resolve(o *Object) (Footprint, bool) {
	if o.Footprint.Kind != FootprintNone {
		return o.Footprint, o.Footprint.Valid()
	}
	if o.Asset == "" || h.Resolver == nil {
		return Footprint{}, false
	}
	fp, ok := h.Resolver.ResolveFootprint(o.Asset, o.Frame)
	return fp, ok && fp.Valid()
}

func unresolvedError(o *Object) error {
	if o.Footprint.Kind != FootprintNone {
		return fmt.Errorf("%w: invalid explicit footprint %gx%g", ErrUnresolvedFootprint, o.Footprint.Width, o.Footprint.Height)
	}
	if o.Asset == "" {
		return fmt.Errorf("%w: no footprint and no asset", ErrUnresolvedFootprint)
	}
	return fmt.Errorf("%w: asset %q not loaded", ErrUnresolvedFootprint, o.Asset)
}

// footprintContains reports whether p lies inside the box of size fp centered
// at center. Points exactly on an edge are inside.
func footprintContains(center mgl32.Vec2, fp Footprint, p mgl32.Vec2) bool {
	half := fp.HalfExtents()
	d := p.Sub(center)
	dx := abs32(d.X()) - half.X()
	dy := abs32(d.Y()) - half.Y()
	return max(dx, dy) <= 0
}

// advanceFrame moves o to its next atlas frame, wrapping at frames.
func advanceFrame(o *Object, frames int) {
	if o.Frame < 0 || o.Frame >= frames {
		invalidFrameIndex(o, frames)
	}
	o.Frame = (o.Frame + 1) % frames
}

func (h *HitTester) fire(t EventType, o *Object, p mgl32.Vec2) {
	ev := HoverEvent{
		Type:     t,
		ObjectID: o.ID,
		EntityID: o.EntityID,
		Name:     o.Name,
		UserData: o.UserData,
		WorldX:   p.X(),
		WorldY:   p.Y(),
		Frame:    o.Frame,
	}
	if h.Sink != nil {
		h.Sink.EmitHover(ev)
	}
	switch t {
	case EventHoverEnter:
		if o.OnHoverEnter != nil {
			o.OnHoverEnter(ev)
		}
	case EventHoverLeave:
		if o.OnHoverLeave != nil {
			o.OnHoverLeave(ev)
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
