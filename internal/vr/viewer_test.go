package vr

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type scriptedButtons struct {
	presses []bool
}

func (s *scriptedButtons) BackPressed() bool {
	if len(s.presses) == 0 {
		return false
	}
	pressed := s.presses[0]
	s.presses = s.presses[1:]
	return pressed
}

func TestDeviceBackButtonLastsOneFrame(t *testing.T) {
	buttons := &scriptedButtons{presses: []bool{true, false}}
	device := NewDevice(DefaultSettings(), nil, buttons)

	assert.False(t, device.BackButtonPressed())

	device.UpdateState()
	assert.True(t, device.BackButtonPressed())
	assert.True(t, device.BackButtonPressed(), "state holds for the whole frame")

	device.BeginFrame()
	device.UpdateState()
	assert.False(t, device.BackButtonPressed())
}

func TestDeviceUpdateStateSamplesTracker(t *testing.T) {
	pose := HeadPose{Position: mgl32.Vec3{0, 1.7, 0}, Yaw: 10, Pitch: -5}
	device := NewDevice(DefaultSettings(), StaticTracker{Fixed: pose}, nil)

	assert.Equal(t, DefaultHeadPose(), device.HeadPose())

	device.UpdateState()
	assert.Equal(t, pose, device.HeadPose())
}

type countingTracker struct {
	calls int
}

func (c *countingTracker) Pose() HeadPose {
	c.calls++
	pose := DefaultHeadPose()
	pose.Yaw += float32(c.calls)
	return pose
}

func TestDeviceUpdateStateOncePerFrame(t *testing.T) {
	tracker := &countingTracker{}
	buttons := &scriptedButtons{presses: []bool{true, true}}
	device := NewDevice(DefaultSettings(), tracker, buttons)

	device.UpdateState()
	device.UpdateState()
	device.UpdateState()
	assert.Equal(t, 1, tracker.calls)
	assert.Len(t, buttons.presses, 1, "buttons read once per frame")
	assert.True(t, device.BackButtonPressed())

	device.BeginFrame()
	assert.Equal(t, uint64(1), device.Frame())
	device.UpdateState()
	device.UpdateState()
	assert.Equal(t, 2, tracker.calls)
	assert.Equal(t, DefaultHeadPose().Yaw+2, device.HeadPose().Yaw)
}

func TestDeviceSettings(t *testing.T) {
	device := NewDevice(DefaultSettings(), nil, nil)

	device.SetVRModeEnabled(false)
	device.SetDirectRender(true)
	device.SetDistortionCorrection(DistortionVendor)

	assert.Equal(t, Settings{
		VRModeEnabled:        false,
		DistortionCorrection: DistortionVendor,
		DirectRender:         true,
	}, device.Settings())
}

func TestHeadPoseDefaultLooksDownNegativeZ(t *testing.T) {
	forward := DefaultHeadPose().Forward()
	assert.True(t, forward.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "got %v", forward)

	right := DefaultHeadPose().Right()
	assert.True(t, right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "got %v", right)

	up := DefaultHeadPose().Up()
	assert.True(t, up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5), "got %v", up)
}

func TestNoiseTrackerStaysNearBase(t *testing.T) {
	base := DefaultHeadPose()
	tracker := NewNoiseTracker(base, 3, 7)

	for i := 0; i < 500; i++ {
		pose := tracker.Pose()
		assert.InDelta(t, base.Yaw, pose.Yaw, 3.01)
		assert.InDelta(t, base.Pitch, pose.Pitch, 3.01)
	}
}

func TestMouseTrackerMove(t *testing.T) {
	tracker := NewMouseTracker(DefaultHeadPose(), 0.1)

	tracker.Move(100, 50)

	pose := tracker.Pose()
	assert.InDelta(t, -80, pose.Yaw, 1e-4)
	assert.InDelta(t, 5, pose.Pitch, 1e-4)
}

func TestMouseTrackerClampsPitch(t *testing.T) {
	tracker := NewMouseTracker(DefaultHeadPose(), 1)
	tracker.InvertMouse = true

	tracker.Move(0, 1000)

	assert.Equal(t, float32(-89), tracker.Pose().Pitch)
}
