package scripts

import (
	"math"

	"GopherVR/internal/behaviour"
	"GopherVR/internal/logger"
	"GopherVR/internal/random"
	"GopherVR/internal/vr"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	FocusedColor   = mgl32.Vec4{0, 1, 0, 1}
	UnfocusedColor = mgl32.Vec4{1, 0, 0, 1}
)

// Teleport targets stay in the upper part of a shell around the parent
// origin: direction height in [0.5, 1], distance in [1.5, 3.5).
const (
	minTeleportHeight   = 0.5
	maxTeleportHeight   = 1.0
	minTeleportDistance = 1.5
	teleportRange       = 2.0
)

// maxTeleportDistance is the largest float32 below 3.5. The float32 sum can
// round up onto the open bound for draws close to 1.
var maxTeleportDistance = math.Nextafter32(minTeleportDistance+teleportRange, 0)

// Teleport highlights its object while gazed at and moves it to a random spot
// when the trigger is used. It also forwards viewer toggles and quits the
// application on the back button. The object needs a MeshRenderer.
type Teleport struct {
	behaviour.BaseComponent

	viewer vr.Viewer
	app    behaviour.Application
	rand   random.Source

	startingPosition mgl32.Vec3
}

var _ behaviour.GazeResponder = (*Teleport)(nil)

func init() {
	behaviour.RegisterScript("Teleport", func(host *behaviour.Host) behaviour.Component {
		return NewTeleport(host.Viewer, host.App, host.Random)
	})
}

func NewTeleport(viewer vr.Viewer, app behaviour.Application, rand random.Source) *Teleport {
	return &Teleport{viewer: viewer, app: app, rand: rand}
}

func (t *Teleport) Start() {
	t.startingPosition = t.GetGameObject().Transform.LocalPosition
	t.SetGazedAt(false)
}

func (t *Teleport) LateUpdate() {
	t.viewer.UpdateState()
	if t.viewer.BackButtonPressed() {
		logger.Log.Info("Back button pressed, quitting")
		t.app.Quit()
	}
}

func (t *Teleport) SetGazedAt(gazedAt bool) {
	// A missing MeshRenderer is a setup error and panics here.
	meshRenderer, _ := behaviour.GetComponent[*behaviour.MeshRenderer](t.GetGameObject())
	if gazedAt {
		meshRenderer.SetColor(FocusedColor)
	} else {
		meshRenderer.SetColor(UnfocusedColor)
	}
}

// Reset moves the object back to where it was when the script started.
func (t *Teleport) Reset() {
	t.GetGameObject().Transform.LocalPosition = t.startingPosition
}

func (t *Teleport) ToggleVRMode() {
	t.viewer.SetVRModeEnabled(!t.viewer.VRModeEnabled())
}

func (t *Teleport) ToggleDistortionCorrection() {
	t.viewer.SetDistortionCorrection(t.viewer.DistortionCorrection().Next())
}

func (t *Teleport) ToggleDirectRender() {
	t.viewer.SetDirectRender(!t.viewer.DirectRender())
}

func (t *Teleport) TeleportRandomly() {
	direction := t.rand.OnUnitSphere()
	direction[1] = mgl32.Clamp(direction.Y(), minTeleportHeight, maxTeleportHeight)
	distance := min(teleportRange*t.rand.Float32()+minTeleportDistance, maxTeleportDistance)

	obj := t.GetGameObject()
	obj.Transform.LocalPosition = direction.Mul(distance)
	logger.Log.Debug("Teleported",
		zap.String("object", obj.Name),
		zap.Float32("distance", distance),
		zap.Float32s("position", obj.Transform.LocalPosition[:]))
}

func (t *Teleport) OnGazeEnter() {
	t.SetGazedAt(true)
}

func (t *Teleport) OnGazeExit() {
	t.SetGazedAt(false)
}

func (t *Teleport) OnGazeTrigger() {
	t.TeleportRandomly()
}

// StartingPosition returns the local position captured on Start.
func (t *Teleport) StartingPosition() mgl32.Vec3 {
	return t.startingPosition
}
