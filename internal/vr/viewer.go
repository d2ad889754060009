package vr

import (
	"sync"

	"GopherVR/internal/logger"

	"go.uber.org/zap"
)

// Viewer is the host-global VR settings service. Scripts receive it through
// dependency injection rather than a global lookup.
type Viewer interface {
	// UpdateState refreshes head tracking and the per-frame button state.
	// Only the first call in a frame has an effect.
	UpdateState()
	// BackButtonPressed reports whether back was pressed since the previous
	// UpdateState. It resets on the next UpdateState.
	BackButtonPressed() bool

	VRModeEnabled() bool
	SetVRModeEnabled(enabled bool)

	DistortionCorrection() DistortionCorrection
	SetDistortionCorrection(mode DistortionCorrection)

	DirectRender() bool
	SetDirectRender(enabled bool)

	HeadPose() HeadPose
}

// ButtonSource reports back button presses. BackPressed consumes the press.
type ButtonSource interface {
	BackPressed() bool
}

type Settings struct {
	VRModeEnabled        bool
	DistortionCorrection DistortionCorrection
	DirectRender         bool
}

func DefaultSettings() Settings {
	return Settings{
		VRModeEnabled:        true,
		DistortionCorrection: DistortionEngine,
		DirectRender:         false,
	}
}

// Device is the Viewer used by the engine. It is safe for concurrent use; the
// renderer and scripts both read it during a frame.
type Device struct {
	mu       sync.RWMutex
	settings Settings
	pose     HeadPose
	back     bool
	frame    uint64
	sampled  bool

	tracker HeadTracker
	buttons ButtonSource
}

var _ Viewer = (*Device)(nil)

// NewDevice creates a viewer. tracker and buttons may be nil, in which case
// the pose stays at DefaultHeadPose and back is never pressed.
func NewDevice(settings Settings, tracker HeadTracker, buttons ButtonSource) *Device {
	return &Device{
		settings: settings,
		pose:     DefaultHeadPose(),
		tracker:  tracker,
		buttons:  buttons,
	}
}

// BeginFrame starts a new frame so the next UpdateState samples the tracker
// and buttons again.
func (d *Device) BeginFrame() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame++
	d.sampled = false
}

// Frame returns the number of frames begun so far.
func (d *Device) Frame() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.frame
}

func (d *Device) UpdateState() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sampled {
		return
	}
	d.sampled = true

	if d.tracker != nil {
		d.pose = d.tracker.Pose()
	}
	d.back = d.buttons != nil && d.buttons.BackPressed()
}

func (d *Device) BackButtonPressed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.back
}

func (d *Device) VRModeEnabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.VRModeEnabled
}

func (d *Device) SetVRModeEnabled(enabled bool) {
	d.mu.Lock()
	d.settings.VRModeEnabled = enabled
	d.mu.Unlock()
	logger.Log.Info("VR mode changed", zap.Bool("enabled", enabled))
}

func (d *Device) DistortionCorrection() DistortionCorrection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.DistortionCorrection
}

func (d *Device) SetDistortionCorrection(mode DistortionCorrection) {
	d.mu.Lock()
	d.settings.DistortionCorrection = mode
	d.mu.Unlock()
	logger.Log.Info("Distortion correction changed", zap.Stringer("mode", mode))
}

func (d *Device) DirectRender() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.DirectRender
}

func (d *Device) SetDirectRender(enabled bool) {
	d.mu.Lock()
	d.settings.DirectRender = enabled
	d.mu.Unlock()
	logger.Log.Info("Direct render changed", zap.Bool("enabled", enabled))
}

func (d *Device) HeadPose() HeadPose {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.pose
}

// Settings returns a snapshot of the current settings.
func (d *Device) Settings() Settings {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings
}
