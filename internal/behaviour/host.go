package behaviour

import (
	"GopherVR/internal/random"
	"GopherVR/internal/vr"
)

// Application is the running program as seen by scripts.
type Application interface {
	// Quit asks the host to exit after the current frame.
	Quit()
}

// QuitFunc adapts a function to Application.
type QuitFunc func()

func (f QuitFunc) Quit() { f() }

// Host carries the engine services scripts may use. It is handed to script
// constructors so scripts never reach for globals.
type Host struct {
	Viewer vr.Viewer
	App    Application
	Random random.Source
}
