package ecs

import (
	"github.com/phanxgames/ldeditor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverEventType is the Donburi event type for ldeditor hover events.
// Events are queued on publish; call ProcessEvents (or
// events.ProcessAllEvents) from a system to deliver them.
var HoverEventType = events.NewEventType[ldeditor.HoverEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) ldeditor.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitHover(event ldeditor.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}
