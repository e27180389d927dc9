// Package ldeditor is the pointer hit-testing core of a minimal 2D scene
// editor built on [Ebitengine].
//
// Each frame the cursor position is mapped from screen space into world
// space through the designated camera's inverse view-projection, and every
// interactive object under it is highlighted. Atlas-backed objects advance to
// their next frame each time the cursor enters them.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := ldeditor.NewScene()
//	ball, _ := ldeditor.NewImageObject("ball", 300, 0, 32, 32)
//	scene.Add(ball)
//	ldeditor.Run(scene, ldeditor.DefaultRunConfig)
//
// For full control, drive the core yourself once per frame:
//
//	cursor := ldeditor.CursorFromTopLeft(mx, my, w, h)
//	if err := scene.Update(cursor); err != nil {
//		// ErrCameraUnavailable: frame skipped, state unchanged
//	}
//
// or, without a Scene, call [MapToWorld] and [HitTester.Update] directly.
//
// # Coordinates
//
// World space is Y-up with the camera at its center. [ScreenCursor] uses
// bottom-left pixel coordinates; [CursorFromTopLeft] converts from
// Ebitengine's top-left cursor position.
//
// # Highlight state
//
// Every [Object] is either Idle or Hovered. Hovered always mirrors the latest
// containment test (closed bounds: a point on the edge is inside). Entering an
// atlas object advances its Frame by one, wrapping at the frame count; staying
// inside does not. When the cursor leaves the window every highlight clears.
//
// Hover transitions are reported to per-object callbacks and to an optional
// [EventSink]; package ldeditor/ecs forwards them into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package ldeditor
