package gaze

import (
	"GopherVR/internal/behaviour"
	"GopherVR/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultMaxDistance limits how far the reticle reaches.
const DefaultMaxDistance = 100.0

// SceneSource lists the objects gaze can hit.
type SceneSource interface {
	GetAllGameObjects() []*behaviour.GameObject
}

// Hit is the result of a gaze cast.
type Hit struct {
	Object   *behaviour.GameObject
	Distance float32
	Point    mgl32.Vec3
}

// Pointer tracks which object the user is looking at and routes gaze events
// to that object's responders.
type Pointer struct {
	Scene       SceneSource
	MaxDistance float32

	target *behaviour.GameObject
	hit    Hit
}

func NewPointer(scene SceneSource, maxDistance float32) *Pointer {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	return &Pointer{Scene: scene, MaxDistance: maxDistance}
}

// Cast returns the nearest active object with a sphere collider and at least
// one gaze responder along ray, within MaxDistance.
func (p *Pointer) Cast(ray Ray) (Hit, bool) {
	var best Hit
	found := false

	for _, obj := range p.Scene.GetAllGameObjects() {
		if !obj.Active {
			continue
		}
		if len(behaviour.GazeResponders(obj)) == 0 {
			continue
		}
		for _, collider := range behaviour.GetComponents[*behaviour.SphereCollider](obj) {
			if !collider.GetEnabled() {
				continue
			}
			center, radius := collider.WorldBounds()
			ok, dist, point := RayIntersectSphere(ray, center, radius)
			if !ok || dist > p.MaxDistance {
				continue
			}
			if !found || dist < best.Distance {
				best = Hit{Object: obj, Distance: dist, Point: point}
				found = true
			}
		}
	}
	return best, found
}

// Update casts ray and dispatches enter/exit events when the target changes.
func (p *Pointer) Update(ray Ray) {
	hit, ok := p.Cast(ray)

	var next *behaviour.GameObject
	if ok {
		next = hit.Object
		p.hit = hit
	} else {
		p.hit = Hit{}
	}

	if next == p.target {
		return
	}

	if p.target != nil {
		logger.Log.Debug("Gaze exit", zap.String("object", p.target.Name), zap.Stringer("id", p.target.ID))
		for _, responder := range behaviour.GazeResponders(p.target) {
			responder.OnGazeExit()
		}
	}

	p.target = next

	if next != nil {
		logger.Log.Debug("Gaze enter", zap.String("object", next.Name), zap.Stringer("id", next.ID))
		for _, responder := range behaviour.GazeResponders(next) {
			responder.OnGazeEnter()
		}
	}
}

// Trigger sends OnGazeTrigger to the current target. Without a target it does
// nothing.
func (p *Pointer) Trigger() {
	if p.target == nil {
		return
	}
	logger.Log.Debug("Gaze trigger", zap.String("object", p.target.Name), zap.Stringer("id", p.target.ID))
	for _, responder := range behaviour.GazeResponders(p.target) {
		responder.OnGazeTrigger()
	}
}

// Target returns the object under the reticle, or nil.
func (p *Pointer) Target() *behaviour.GameObject {
	return p.target
}

// LastHit returns the hit from the latest Update. Zero when nothing was hit.
func (p *Pointer) LastHit() Hit {
	return p.hit
}
