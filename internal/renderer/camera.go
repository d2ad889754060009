package renderer

import (
	"math"
	"sort"

	"GopherVR/internal/vr"

	"github.com/go-gl/mathgl/mgl32"
)

type Eye int

const (
	EyeCenter Eye = iota
	EyeLeft
	EyeRight
)

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	default:
		return "center"
	}
}

// Viewport is a pixel rectangle with its origin at the bottom left, as
// OpenGL expects.
type Viewport struct {
	X, Y, Width, Height int32
}

func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

func (v Viewport) Center() (int32, int32) {
	return v.X + v.Width/2, v.Y + v.Height/2
}

// Intersect returns the overlap of v and o, empty when they do not overlap.
func (v Viewport) Intersect(o Viewport) Viewport {
	x0 := max32(v.X, o.X)
	y0 := max32(v.Y, o.Y)
	x1 := min32(v.X+v.Width, o.X+o.Width)
	y1 := min32(v.Y+v.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Viewport{}
	}
	return Viewport{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

type EyeViewport struct {
	Eye      Eye
	Viewport Viewport
}

// EyeViewports splits the window side by side in stereo mode, or returns the
// whole window for a single centred eye.
func EyeViewports(width, height int32, stereo bool) []EyeViewport {
	if !stereo {
		return []EyeViewport{{Eye: EyeCenter, Viewport: Viewport{0, 0, width, height}}}
	}
	half := width / 2
	return []EyeViewport{
		{Eye: EyeLeft, Viewport: Viewport{0, 0, half, height}},
		{Eye: EyeRight, Viewport: Viewport{half, 0, width - half, height}},
	}
}

// StereoCamera builds per-eye view and projection matrices from the head pose.
type StereoCamera struct {
	Fov  float32 // vertical, degrees
	Near float32
	Far  float32
	IPD  float32 // distance between the eyes
}

func NewStereoCamera(fov, ipd float32) *StereoCamera {
	return &StereoCamera{
		Fov:  fov,
		Near: 0.1,
		Far:  1000.0,
		IPD:  ipd,
	}
}

// EyePosition offsets the head position half the IPD along the head's right
// vector.
func (c *StereoCamera) EyePosition(pose vr.HeadPose, eye Eye) mgl32.Vec3 {
	switch eye {
	case EyeLeft:
		return pose.Position.Sub(pose.Right().Mul(c.IPD / 2))
	case EyeRight:
		return pose.Position.Add(pose.Right().Mul(c.IPD / 2))
	default:
		return pose.Position
	}
}

func (c *StereoCamera) ViewMatrix(pose vr.HeadPose, eye Eye) mgl32.Mat4 {
	position := c.EyePosition(pose, eye)
	return mgl32.LookAtV(position, position.Add(pose.Forward()), pose.Up())
}

func (c *StereoCamera) ProjectionMatrix(viewport Viewport) mgl32.Mat4 {
	aspect := float32(1)
	if viewport.Height > 0 {
		aspect = float32(viewport.Width) / float32(viewport.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// ProjectSphere returns the screen square covering a sphere and its view
// depth. ok is false when the sphere is entirely behind the near plane.
func (c *StereoCamera) ProjectSphere(center mgl32.Vec3, radius float32, view mgl32.Mat4, viewport Viewport) (rect Viewport, depth float32, ok bool) {
	viewPos := mgl32.TransformCoordinate(center, view)
	depth = -viewPos.Z()
	if depth-radius < c.Near {
		return Viewport{}, 0, false
	}

	// Element (1,1) of the projection is 1/tan(fov/2).
	focal := c.ProjectionMatrix(viewport).At(1, 1) * float32(viewport.Height) / 2
	screenX := float32(viewport.X) + float32(viewport.Width)/2 + viewPos.X()/depth*focal
	screenY := float32(viewport.Y) + float32(viewport.Height)/2 + viewPos.Y()/depth*focal
	screenRadius := radius / depth * focal

	rect = Viewport{
		X:      round32(screenX - screenRadius),
		Y:      round32(screenY - screenRadius),
		Width:  round32(2 * screenRadius),
		Height: round32(2 * screenRadius),
	}
	return rect, depth, true
}

// Drawable is a filled screen square to paint.
type Drawable struct {
	Rect  Viewport
	Depth float32
	Color mgl32.Vec4
}

// SortBackToFront orders drawables so nearer ones paint last.
func SortBackToFront(items []Drawable) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Depth > items[j].Depth
	})
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func round32(v float32) int32 {
	return int32(math.Round(float64(v)))
}
