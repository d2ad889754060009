package vr

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var WorldUp = mgl32.Vec3{0, 1, 0}

// HeadPose is the tracked head position and orientation. Yaw and Pitch are in
// degrees; Yaw -90 with Pitch 0 looks down -Z.
type HeadPose struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

func DefaultHeadPose() HeadPose {
	return HeadPose{Yaw: -90}
}

func (p HeadPose) Forward() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(p.Yaw))
	pitchRad := float64(mgl32.DegToRad(p.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	return front.Normalize()
}

func (p HeadPose) Right() mgl32.Vec3 {
	return p.Forward().Cross(WorldUp).Normalize()
}

func (p HeadPose) Up() mgl32.Vec3 {
	return p.Right().Cross(p.Forward()).Normalize()
}

// ClampPitch keeps the pose short of looking straight up or down, where the
// right vector degenerates.
func (p HeadPose) ClampPitch() HeadPose {
	p.Pitch = mgl32.Clamp(p.Pitch, -89.0, 89.0)
	return p
}
