package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.LocalPosition != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.LocalPosition)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformSetLocalPosition(t *testing.T) {
	transform := NewTransform()

	transform.SetLocalPosition(mgl32.Vec3{10, 20, 30})

	if transform.LocalPosition != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("Expected position (10,20,30), got %v", transform.LocalPosition)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := NewTransform()
	transform.LocalPosition = mgl32.Vec3{5, 5, 5}

	transform.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if transform.LocalPosition != expected {
		t.Errorf("Expected position %v, got %v", expected, transform.LocalPosition)
	}
}

func TestTransformSetScale(t *testing.T) {
	transform := NewTransform()

	transform.SetScale(mgl32.Vec3{2, 3, 4})

	if transform.Scale != (mgl32.Vec3{2, 3, 4}) {
		t.Errorf("Expected scale (2,3,4), got %v", transform.Scale)
	}
}

type MockComponent struct {
	BaseComponent
	startCalls   int
	updateCalled bool
	lateCalled   bool
	fixedCalled  bool
	destroyed    bool
	order        []string
}

func (m *MockComponent) OnDestroy() {
	m.destroyed = true
}

func (m *MockComponent) Start() {
	m.startCalls++
	m.order = append(m.order, "start")
}

func (m *MockComponent) Update() {
	m.updateCalled = true
	m.order = append(m.order, "update")
}

func (m *MockComponent) LateUpdate() {
	m.lateCalled = true
	m.order = append(m.order, "late")
}

func (m *MockComponent) FixedUpdate() {
	m.fixedCalled = true
	m.order = append(m.order, "fixed")
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
}

func TestNewGameObjectHasUniqueID(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("A")

	if a.ID == b.ID {
		t.Error("GameObjects with the same name should still get distinct IDs")
	}
}

func TestGetComponentByType(t *testing.T) {
	obj := NewGameObject("Test")
	meshRenderer := NewMeshRenderer()
	collider := NewSphereCollider(1)
	obj.AddComponent(meshRenderer)
	obj.AddComponent(collider)

	gotRenderer, ok := GetComponent[*MeshRenderer](obj)
	if !ok || gotRenderer != meshRenderer {
		t.Error("GetComponent should find the MeshRenderer")
	}

	gotCollider, ok := GetComponent[*SphereCollider](obj)
	if !ok || gotCollider != collider {
		t.Error("GetComponent should find the SphereCollider")
	}

	if _, ok := GetComponent[*MockComponent](obj); ok {
		t.Error("GetComponent should not find a component that was never added")
	}
}

func TestGetComponentUnwrapsScripts(t *testing.T) {
	obj := NewGameObject("Test")
	script := &MockComponent{}
	obj.AddComponent(NewScriptComponent("Mock", script))

	got, ok := GetComponent[*MockComponent](obj)
	if !ok || got != script {
		t.Error("GetComponent should return the wrapped script")
	}
	if script.GetGameObject() != obj {
		t.Error("Wrapped script's GameObject reference not set on Awake")
	}
	if !script.GetEnabled() {
		t.Error("Wrapped script should be enabled with its wrapper")
	}
}

func TestTransformWorldPositionFollowsParent(t *testing.T) {
	parent := NewTransform()
	parent.LocalPosition = mgl32.Vec3{0, 1, 0}
	parent.Scale = mgl32.Vec3{2, 2, 2}

	child := NewTransform()
	child.LocalPosition = mgl32.Vec3{1, 0, 0}
	child.SetParent(parent)

	expected := mgl32.Vec3{2, 1, 0}
	if !child.WorldPosition().ApproxEqual(expected) {
		t.Errorf("Expected world position %v, got %v", expected, child.WorldPosition())
	}

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Error("SetParent should register the child with its parent")
	}

	child.SetParent(nil)
	if len(parent.Children) != 0 {
		t.Error("Reparenting should remove the child from its old parent")
	}
	if child.WorldPosition() != child.LocalPosition {
		t.Error("A root transform's world position is its local position")
	}
}

func TestSphereColliderWorldBounds(t *testing.T) {
	obj := NewGameObject("Ball")
	obj.Transform.LocalPosition = mgl32.Vec3{0, 2, -3}
	obj.Transform.Scale = mgl32.Vec3{1, 3, 1}
	collider := NewSphereCollider(0.5)
	obj.AddComponent(collider)

	center, radius := collider.WorldBounds()

	if !center.ApproxEqual(mgl32.Vec3{0, 2, -3}) {
		t.Errorf("Expected center (0,2,-3), got %v", center)
	}
	if radius != 1.5 {
		t.Errorf("Expected radius scaled by largest axis to 1.5, got %v", radius)
	}
}

type mockResponder struct {
	MockComponent
	enters, exits, triggers int
}

func (m *mockResponder) OnGazeEnter()   { m.enters++ }
func (m *mockResponder) OnGazeExit()    { m.exits++ }
func (m *mockResponder) OnGazeTrigger() { m.triggers++ }

func TestGazeRespondersSkipsDisabled(t *testing.T) {
	obj := NewGameObject("Target")
	enabled := &mockResponder{}
	disabled := &mockResponder{}
	obj.AddComponent(enabled)
	obj.AddComponent(NewScriptComponent("Disabled", disabled))
	obj.Components[1].SetEnabled(false)
	obj.AddComponent(NewMeshRenderer())

	responders := GazeResponders(obj)

	if len(responders) != 1 || responders[0] != enabled {
		t.Errorf("Expected only the enabled responder, got %d responders", len(responders))
	}
}
