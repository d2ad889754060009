package injector

import (
	"GopherVR/internal/app"
	"GopherVR/internal/behaviour"
	"GopherVR/internal/config"
	"GopherVR/internal/engine"
	"GopherVR/internal/gaze"
	"GopherVR/internal/random"
	"GopherVR/internal/renderer"
	"GopherVR/internal/vr"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	ProvideInput,
	ProvideMouseTracker,
	ProvideHeadTracker,
	ProvideViewer,
	ProvideRandom,
	ProvideScene,
	ProvidePointer,
	ProvidePresenter,
	ProvideEngine,
	ProvideHost,
	app.New,
)

func ProvideInput() *engine.Input {
	return engine.NewInput()
}

func ProvideMouseTracker(cfg *config.Config) *vr.MouseTracker {
	return vr.NewMouseTracker(cfg.HeadPose(), cfg.Viewer.Sensitivity)
}

// ProvideHeadTracker picks the configured tracker. The mouse tracker is always
// built so the engine can feed it, even when another tracker is active.
func ProvideHeadTracker(cfg *config.Config, mouse *vr.MouseTracker) vr.HeadTracker {
	switch cfg.Viewer.Tracker {
	case config.TrackerNoise:
		return vr.NewNoiseTracker(cfg.HeadPose(), cfg.Viewer.SwayDegrees, cfg.Seed)
	case config.TrackerStatic:
		return vr.StaticTracker{Fixed: cfg.HeadPose()}
	default:
		return mouse
	}
}

func ProvideViewer(cfg *config.Config, tracker vr.HeadTracker, input *engine.Input) *vr.Device {
	return vr.NewDevice(cfg.ViewerSettings(), tracker, input)
}

func ProvideRandom(cfg *config.Config) random.Source {
	return random.NewSource(cfg.Seed)
}

func ProvideScene() *behaviour.ComponentManager {
	return behaviour.NewComponentManager()
}

func ProvidePointer(cfg *config.Config, scene *behaviour.ComponentManager) *gaze.Pointer {
	return gaze.NewPointer(scene, cfg.Gaze.MaxDistance)
}

func ProvidePresenter(cfg *config.Config) *renderer.Presenter {
	return renderer.NewPresenter(renderer.NewStereoCamera(cfg.Viewer.FOV, cfg.Viewer.IPD))
}

func ProvideEngine(cfg *config.Config, viewer *vr.Device, input *engine.Input, scene *behaviour.ComponentManager, pointer *gaze.Pointer, presenter *renderer.Presenter, mouse *vr.MouseTracker) *engine.Gopher {
	gopher := engine.NewGopher(viewer, input, scene, pointer, presenter)
	gopher.Width = cfg.Window.Width
	gopher.Height = cfg.Window.Height
	gopher.Title = cfg.Window.Title
	if cfg.Viewer.Tracker == config.TrackerMouse {
		gopher.SetMouseTracker(mouse)
	}
	return gopher
}

func ProvideHost(viewer *vr.Device, gopher *engine.Gopher, rnd random.Source) *behaviour.Host {
	return &behaviour.Host{Viewer: viewer, App: gopher, Random: rnd}
}
