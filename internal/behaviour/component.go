package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()       // Called when component is first created
	Start()       // Called before first Update (after all Awakes)
	Update()      // Called every frame
	LateUpdate()  // Called every frame after all Updates
	FixedUpdate() // Called at fixed frame intervals
	OnDestroy()   // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()       {}
func (c *BaseComponent) Start()       {}
func (c *BaseComponent) Update()      {}
func (c *BaseComponent) LateUpdate()  {}
func (c *BaseComponent) FixedUpdate() {}
func (c *BaseComponent) OnDestroy()   {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an object in the scene
type GameObject struct {
	ID         uuid.UUID
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component

	started bool
}

// Transform holds an object's placement relative to its parent
type Transform struct {
	LocalPosition mgl32.Vec3
	Rotation      mgl32.Quat
	Scale         mgl32.Vec3
	Parent        *Transform
	Children      []*Transform
}

func NewTransform() *Transform {
	return &Transform{
		LocalPosition: mgl32.Vec3{0, 0, 0},
		Rotation:      mgl32.QuatIdent(),
		Scale:         mgl32.Vec3{1, 1, 1},
	}
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.LocalPosition = t.LocalPosition.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t *Transform) SetLocalPosition(pos mgl32.Vec3) {
	t.LocalPosition = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// SetParent reparents t, keeping its local values.
func (t *Transform) SetParent(parent *Transform) {
	if t.Parent != nil {
		siblings := t.Parent.Children
		for i, child := range siblings {
			if child == t {
				t.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	t.Parent = parent
	if parent != nil {
		parent.Children = append(parent.Children, t)
	}
}

func (t *Transform) LocalMatrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.LocalPosition.X(), t.LocalPosition.Y(), t.LocalPosition.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

func (t *Transform) WorldMatrix() mgl32.Mat4 {
	if t.Parent == nil {
		return t.LocalMatrix()
	}
	return t.Parent.WorldMatrix().Mul4(t.LocalMatrix())
}

func (t *Transform) WorldPosition() mgl32.Vec3 {
	if t.Parent == nil {
		return t.LocalPosition
	}
	return mgl32.TransformCoordinate(t.LocalPosition, t.Parent.WorldMatrix())
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	return &GameObject{
		ID:         uuid.New(),
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform:  NewTransform(),
	}
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// GetComponent returns the first component of type T on obj. Scripts added
// through a ScriptComponent are matched by their script type.
func GetComponent[T any](obj *GameObject) (T, bool) {
	for _, comp := range obj.Components {
		if typed, ok := unwrap(comp).(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// GetComponents returns every component of type T on obj.
func GetComponents[T any](obj *GameObject) []T {
	var result []T
	for _, comp := range obj.Components {
		if typed, ok := unwrap(comp).(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

func unwrap(comp Component) Component {
	if script, ok := comp.(*ScriptComponent); ok && script.Script != nil {
		return script.Script
	}
	return comp
}

func (obj *GameObject) internalStart() {
	if !obj.Active || obj.started {
		return
	}
	obj.started = true

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

func (obj *GameObject) internalLateUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.LateUpdate()
		}
	}
}

func (obj *GameObject) internalFixedUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
