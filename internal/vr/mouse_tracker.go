package vr

import "sync"

// MouseTracker turns mouse drags into head rotation for desktop use.
type MouseTracker struct {
	Sensitivity float32
	InvertMouse bool

	mu   sync.Mutex
	pose HeadPose
}

func NewMouseTracker(start HeadPose, sensitivity float32) *MouseTracker {
	return &MouseTracker{Sensitivity: sensitivity, pose: start.ClampPitch()}
}

// Move applies a cursor offset in pixels. yoffset is positive upwards.
func (m *MouseTracker) Move(xoffset, yoffset float32) {
	xoffset *= m.Sensitivity
	yoffset *= m.Sensitivity

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pose.Yaw += xoffset
	if m.InvertMouse {
		m.pose.Pitch -= yoffset
	} else {
		m.pose.Pitch += yoffset
	}
	m.pose = m.pose.ClampPitch()
}

func (m *MouseTracker) Pose() HeadPose {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pose
}
