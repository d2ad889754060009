package app

import (
	"errors"
	"fmt"

	"GopherVR/internal/behaviour"
	"GopherVR/internal/config"
	"GopherVR/internal/engine"
	"GopherVR/internal/logger"
	"GopherVR/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	ErrUnknownScript   = errors.New("unknown script")
	ErrDuplicateObject = errors.New("duplicate scene object")
)

// App is a configured engine with its scene loaded.
type App struct {
	Config *config.Config
	Engine *engine.Gopher
	Host   *behaviour.Host
}

func New(cfg *config.Config, gopher *engine.Gopher, host *behaviour.Host) (*App, error) {
	a := &App{Config: cfg, Engine: gopher, Host: host}
	if err := a.LoadScene(); err != nil {
		return nil, err
	}
	if err := a.BindControls(); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadScene creates the configured objects and registers them with the
// engine's scene.
func (a *App) LoadScene() error {
	for _, oc := range a.Config.Scene {
		if a.Engine.Scene.FindGameObject(oc.Name) != nil {
			return fmt.Errorf("%w %q", ErrDuplicateObject, oc.Name)
		}
		obj := behaviour.NewGameObject(oc.Name)
		obj.Tag = oc.Tag
		obj.Transform.LocalPosition = mgl32.Vec3(oc.Position)

		meshRenderer := behaviour.NewMeshRenderer()
		meshRenderer.SetColor(mgl32.Vec4(oc.Color))
		obj.AddComponent(meshRenderer)
		obj.AddComponent(behaviour.NewSphereCollider(oc.Radius))

		for _, name := range oc.Scripts {
			script := behaviour.CreateScript(name, a.Host)
			if script == nil {
				return fmt.Errorf("%w %q on %q (available: %v)", ErrUnknownScript, name, oc.Name, behaviour.GetAvailableScripts())
			}
			obj.AddComponent(behaviour.NewScriptComponent(name, script))
		}

		a.Engine.Scene.RegisterGameObject(obj)
		logger.Log.Info("Scene object loaded",
			zap.String("name", obj.Name),
			zap.Stringer("id", obj.ID),
			zap.Strings("scripts", oc.Scripts))
	}
	return nil
}

// Teleports returns every Teleport script in the scene.
func (a *App) Teleports() []*scripts.Teleport {
	var result []*scripts.Teleport
	for _, obj := range a.Engine.Scene.GetAllGameObjects() {
		result = append(result, behaviour.GetComponents[*scripts.Teleport](obj)...)
	}
	return result
}

// BindControls maps the configured keys to Teleport actions. Viewer toggles
// go through the first Teleport only, since the viewer is shared.
func (a *App) BindControls() error {
	b := a.Config.Bindings
	input := a.Engine.Input

	if b.Back != "" {
		if err := input.SetBackKey(b.Back); err != nil {
			return fmt.Errorf("back binding: %w", err)
		}
	}
	if b.Trigger != "" {
		if err := input.BindTrigger(b.Trigger); err != nil {
			return fmt.Errorf("trigger binding: %w", err)
		}
	}

	teleports := a.Teleports()
	if len(teleports) == 0 {
		logger.Log.Warn("No Teleport script in scene, viewer controls are unbound")
		return nil
	}
	first := teleports[0]

	each := func(fn func(*scripts.Teleport)) func() {
		return func() {
			for _, t := range teleports {
				fn(t)
			}
		}
	}

	bindings := []struct {
		name   string
		key    string
		action func()
	}{
		{"reset", b.Reset, each((*scripts.Teleport).Reset)},
		{"teleport_randomly", b.TeleportRandomly, each((*scripts.Teleport).TeleportRandomly)},
		{"toggle_vr_mode", b.ToggleVRMode, first.ToggleVRMode},
		{"toggle_distortion", b.ToggleDistortion, first.ToggleDistortionCorrection},
		{"toggle_direct_render", b.ToggleDirectRender, first.ToggleDirectRender},
	}
	for _, binding := range bindings {
		if binding.key == "" {
			continue
		}
		if err := input.Bind(binding.key, binding.action); err != nil {
			return fmt.Errorf("%s binding: %w", binding.name, err)
		}
		logger.Log.Debug("Key bound", zap.String("action", binding.name), zap.String("key", binding.key))
	}
	return nil
}

// Run opens the window and blocks until the application quits.
func (a *App) Run() error {
	return a.Engine.Render(-1, -1)
}
