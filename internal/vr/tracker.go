package vr

import (
	"github.com/aquilax/go-perlin"
)

// HeadTracker supplies the latest head pose. Viewer.UpdateState samples it
// once per frame.
type HeadTracker interface {
	Pose() HeadPose
}

// StaticTracker always reports the same pose.
type StaticTracker struct {
	Fixed HeadPose
}

func (s StaticTracker) Pose() HeadPose {
	return s.Fixed
}

// NoiseTracker simulates a resting head: the pose drifts around Base along
// smooth Perlin noise curves, one per axis.
type NoiseTracker struct {
	Base      HeadPose
	Amplitude float32 // degrees
	Step      float64 // noise distance advanced per sample

	noise *perlin.Perlin
	t     float64
}

func NewNoiseTracker(base HeadPose, amplitude float32, seed int64) *NoiseTracker {
	return &NoiseTracker{
		Base:      base,
		Amplitude: amplitude,
		Step:      0.01,
		noise:     perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (n *NoiseTracker) Pose() HeadPose {
	n.t += n.Step

	pose := n.Base
	pose.Yaw += n.Amplitude * n.sample(n.t)
	// Offset into the noise field so pitch does not mirror yaw.
	pose.Pitch += n.Amplitude * n.sample(n.t+100)
	return pose.ClampPitch()
}

// sample returns octave noise limited to [-1, 1].
func (n *NoiseTracker) sample(x float64) float32 {
	v := n.noise.Noise1D(x)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return float32(v)
}
