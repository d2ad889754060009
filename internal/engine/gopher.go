package engine

import (
	"fmt"
	"runtime"

	"GopherVR/internal/behaviour"
	"GopherVR/internal/gaze"
	"GopherVR/internal/logger"
	"GopherVR/internal/renderer"
	"GopherVR/internal/vr"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var _ behaviour.Application = (*Gopher)(nil)

// Gopher owns the window and runs the frame loop
type Gopher struct {
	Width  int32
	Height int32
	Title  string

	Viewer    *vr.Device
	Input     *Input
	Scene     *behaviour.ComponentManager
	Scheduler *behaviour.Scheduler
	Pointer   *gaze.Pointer
	Presenter renderer.Render

	window       *glfw.Window
	mouse        *vr.MouseTracker
	lastX, lastY float64
	firstMouse   bool
	quitting     bool
	shownTitle   string
	frames       uint64
}

func NewGopher(viewer *vr.Device, input *Input, scene *behaviour.ComponentManager, pointer *gaze.Pointer, presenter renderer.Render) *Gopher {
	return &Gopher{
		Width:      1024,
		Height:     768,
		Title:      "GopherVR",
		Viewer:     viewer,
		Input:      input,
		Scene:      scene,
		Scheduler:  behaviour.NewScheduler(scene),
		Pointer:    pointer,
		Presenter:  presenter,
		firstMouse: true,
	}
}

// SetMouseTracker routes right-button drags to tracker.
func (gopher *Gopher) SetMouseTracker(tracker *vr.MouseTracker) {
	gopher.mouse = tracker
}

// Quit closes the window after the current frame.
func (gopher *Gopher) Quit() {
	gopher.quitting = true
	if gopher.window != nil {
		gopher.window.SetShouldClose(true)
	}
	logger.Log.Info("Quit requested", zap.Uint64("frames", gopher.frames))
}

// Render opens the window at (x, y) and blocks in the frame loop until the
// window closes. Negative coordinates leave placement to the window system.
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	gopher.window = window
	defer window.Destroy()

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	glfw.SwapInterval(1)

	if x >= 0 && y >= 0 {
		window.SetPos(x, y)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(gopher.mouseCallback)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gopher.Presenter.Init(int32(fbWidth), int32(fbHeight))
	defer gopher.Presenter.Cleanup()

	logger.Log.Info("GopherVR running",
		zap.Int32("width", gopher.Width),
		zap.Int32("height", gopher.Height),
		zap.Int("objects", len(gopher.Scene.GetAllGameObjects())))

	if gopher.quitting {
		window.SetShouldClose(true)
	}
	defer gopher.Scene.Clear()
	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastWidth, lastHeight := gopher.window.GetFramebufferSize()

	for !gopher.window.ShouldClose() {
		width, height := gopher.window.GetFramebufferSize()
		if width != lastWidth || height != lastHeight {
			gopher.Presenter.UpdateViewport(int32(width), int32(height))
			lastWidth, lastHeight = width, height
		}

		gopher.Step()

		gopher.Presenter.Render(gopher.Viewer, gopher.Scene.GetAllGameObjects(), int32(width), int32(height))
		gopher.updateTitle()

		gopher.window.SwapBuffers()
		gopher.frames++
		glfw.PollEvents()
	}
	logger.Log.Info("Window closed", zap.Uint64("frames", gopher.frames))
}

// Step runs input, scripts and gaze for one frame. Scripts refresh the viewer
// state from their LateUpdate; the engine refreshes it afterwards for scenes
// without such a script.
func (gopher *Gopher) Step() {
	gopher.Viewer.BeginFrame()
	gopher.Input.Poll(gopher.window)
	if gopher.Input.TriggerPressed() {
		gopher.Pointer.Trigger()
	}

	gopher.Scheduler.Tick()
	gopher.Viewer.UpdateState()

	pose := gopher.Viewer.HeadPose()
	gopher.Pointer.Update(gaze.Ray{Origin: pose.Position, Direction: pose.Forward()})
}

// updateTitle shows the viewer settings in the title bar.
func (gopher *Gopher) updateTitle() {
	settings := gopher.Viewer.Settings()
	mode := "mono"
	if settings.VRModeEnabled {
		mode = "stereo"
	}
	target := "buffered"
	if settings.DirectRender {
		target = "direct"
	}
	title := fmt.Sprintf("%s [%s | distortion: %s | %s]", gopher.Title, mode, settings.DistortionCorrection, target)
	if title != gopher.shownTitle {
		gopher.window.SetTitle(title)
		gopher.shownTitle = title
	}
}

// Mouse callback function
func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if gopher.mouse != nil && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if gopher.firstMouse {
			gopher.lastX = xpos
			gopher.lastY = ypos
			gopher.firstMouse = false
			return
		}

		xoffset := xpos - gopher.lastX
		yoffset := gopher.lastY - ypos // Reversed since y-coordinates go from bottom to top
		gopher.lastX = xpos
		gopher.lastY = ypos

		gopher.mouse.Move(float32(xoffset), float32(yoffset))
	} else {
		gopher.firstMouse = true
	}
}
