package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript   ComponentType = "Script"
	ComponentTypeRenderer ComponentType = "Renderer"
	ComponentTypeCollider ComponentType = "Collider"
	ComponentTypeCustom   ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// Material describes how a renderer fills its object
type Material struct {
	Color mgl32.Vec4 `yaml:"color"` // RGBA, 0..1
}

// MeshRenderer makes an object visible. The presenter draws it as its
// collider's bounding sphere filled with the material color.
type MeshRenderer struct {
	BaseComponent
	Material Material
	Visible  bool
}

func NewMeshRenderer() *MeshRenderer {
	return &MeshRenderer{
		Material: Material{Color: mgl32.Vec4{0.8, 0.8, 0.8, 1.0}},
		Visible:  true,
	}
}

func (m *MeshRenderer) GetComponentType() ComponentType {
	return ComponentTypeRenderer
}

func (m *MeshRenderer) GetTypeName() string {
	return "MeshRenderer"
}

func (m *MeshRenderer) SetColor(color mgl32.Vec4) {
	m.Material.Color = color
}

// SphereCollider makes an object a target for ray casts such as gaze
type SphereCollider struct {
	BaseComponent
	Center mgl32.Vec3 // offset from the object's position
	Radius float32
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) GetComponentType() ComponentType {
	return ComponentTypeCollider
}

func (s *SphereCollider) GetTypeName() string {
	return "SphereCollider"
}

// WorldBounds returns the collider's center and radius in world space.
// Radius is scaled by the largest axis of the transform scale.
func (s *SphereCollider) WorldBounds() (mgl32.Vec3, float32) {
	obj := s.GetGameObject()
	if obj == nil {
		return s.Center, s.Radius
	}
	t := obj.Transform
	center := mgl32.TransformCoordinate(s.Center, t.WorldMatrix())
	scale := t.Scale
	maxScale := scale.X()
	if scale.Y() > maxScale {
		maxScale = scale.Y()
	}
	if scale.Z() > maxScale {
		maxScale = scale.Z()
	}
	return center, s.Radius * maxScale
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) SetEnabled(enabled bool) {
	s.BaseComponent.SetEnabled(enabled)
	if s.Script != nil {
		s.Script.SetEnabled(enabled)
	}
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) LateUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.LateUpdate()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
