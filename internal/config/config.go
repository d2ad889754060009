package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"GopherVR/internal/vr"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Gaze     GazeConfig     `yaml:"gaze"`
	Log      LogConfig      `yaml:"log"`
	Seed     int64          `yaml:"seed"` // 0 seeds from the clock
	Bindings BindingsConfig `yaml:"bindings"`
	Scene    []ObjectConfig `yaml:"scene"`
}

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

type ViewerConfig struct {
	VRMode       bool                    `yaml:"vr_mode"`
	Distortion   vr.DistortionCorrection `yaml:"distortion"`
	DirectRender bool                    `yaml:"direct_render"`
	IPD          float32                 `yaml:"ipd"` // meters
	FOV          float32                 `yaml:"fov"` // degrees, per eye
	Tracker      string                  `yaml:"tracker"`
	HeadPosition [3]float32              `yaml:"head_position"`
	Sensitivity  float32                 `yaml:"sensitivity"`
	SwayDegrees  float32                 `yaml:"sway_degrees"`
}

type GazeConfig struct {
	MaxDistance float32 `yaml:"max_distance"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// BindingsConfig maps actions to key names such as "V", "Escape" or "F1".
type BindingsConfig struct {
	Back               string `yaml:"back"`
	Trigger            string `yaml:"trigger"`
	Reset              string `yaml:"reset"`
	ToggleVRMode       string `yaml:"toggle_vr_mode"`
	ToggleDistortion   string `yaml:"toggle_distortion"`
	ToggleDirectRender string `yaml:"toggle_direct_render"`
	TeleportRandomly   string `yaml:"teleport_randomly"`
}

type ObjectConfig struct {
	Name     string     `yaml:"name"`
	Tag      string     `yaml:"tag"`
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	Color    [4]float32 `yaml:"color"`
	Scripts  []string   `yaml:"scripts"`
}

const (
	TrackerMouse  = "mouse"
	TrackerNoise  = "noise"
	TrackerStatic = "static"
)

func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "GopherVR"},
		Viewer: ViewerConfig{
			VRMode:       true,
			Distortion:   vr.DistortionEngine,
			DirectRender: false,
			IPD:          0.064,
			FOV:          90,
			Tracker:      TrackerMouse,
			Sensitivity:  0.1,
			SwayDegrees:  2,
		},
		Gaze: GazeConfig{MaxDistance: 100},
		Log:  LogConfig{Level: "info", Development: true},
		Bindings: BindingsConfig{
			Back:               "Escape",
			Trigger:            "Space",
			Reset:              "R",
			ToggleVRMode:       "V",
			ToggleDistortion:   "C",
			ToggleDirectRender: "D",
			TeleportRandomly:   "T",
		},
		Scene: []ObjectConfig{
			{
				Name:     "Cube",
				Tag:      "Teleport",
				Position: [3]float32{0, 1, -3},
				Radius:   0.5,
				Color:    [4]float32{0.8, 0.8, 0.8, 1},
				Scripts:  []string{"Teleport"},
			},
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("could not parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Viewer.FOV <= 0 || c.Viewer.FOV >= 180 {
		return fmt.Errorf("%w: fov %v must be in (0, 180)", ErrInvalidConfig, c.Viewer.FOV)
	}
	if c.Viewer.IPD < 0 {
		return fmt.Errorf("%w: negative ipd %v", ErrInvalidConfig, c.Viewer.IPD)
	}
	switch c.Viewer.Tracker {
	case TrackerMouse, TrackerNoise, TrackerStatic:
	default:
		return fmt.Errorf("%w: unknown tracker %q", ErrInvalidConfig, c.Viewer.Tracker)
	}
	if c.Gaze.MaxDistance <= 0 {
		return fmt.Errorf("%w: gaze max_distance must be positive", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(c.Scene))
	for i, obj := range c.Scene {
		if obj.Name == "" {
			return fmt.Errorf("%w: scene object %d has no name", ErrInvalidConfig, i)
		}
		if names[obj.Name] {
			return fmt.Errorf("%w: duplicate scene object %q", ErrInvalidConfig, obj.Name)
		}
		names[obj.Name] = true
		if obj.Radius <= 0 {
			return fmt.Errorf("%w: scene object %q needs a positive radius", ErrInvalidConfig, obj.Name)
		}
	}
	return nil
}

// ViewerSettings converts the viewer section into initial VR settings.
func (c *Config) ViewerSettings() vr.Settings {
	return vr.Settings{
		VRModeEnabled:        c.Viewer.VRMode,
		DistortionCorrection: c.Viewer.Distortion,
		DirectRender:         c.Viewer.DirectRender,
	}
}

// HeadPose returns the initial head pose, looking down -Z.
func (c *Config) HeadPose() vr.HeadPose {
	pose := vr.DefaultHeadPose()
	pose.Position[0] = c.Viewer.HeadPosition[0]
	pose.Position[1] = c.Viewer.HeadPosition[1]
	pose.Position[2] = c.Viewer.HeadPosition[2]
	return pose
}
