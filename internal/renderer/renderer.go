package renderer

import (
	"GopherVR/internal/behaviour"
	"GopherVR/internal/vr"
)

// Render is what the engine needs from a renderer. Calls happen on the thread
// that owns the window's GL context.
type Render interface {
	Init(width, height int32)
	Render(viewer vr.Viewer, objects []*behaviour.GameObject, width, height int32)
	UpdateViewport(width, height int32)
	Cleanup()
}

var _ Render = (*Presenter)(nil)
