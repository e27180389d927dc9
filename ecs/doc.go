// Package ecs provides ECS adapters for ldeditor's hover events.
//
// The primary adapter is [NewDonburiSink], which forwards hover enter/leave
// transitions into a [Donburi] world as typed events. Subscribe to
// [HoverEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
