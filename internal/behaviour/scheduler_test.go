package behaviour

import (
	"reflect"
	"testing"
)

func TestSchedulerPhaseOrder(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	s := NewScheduler(cm)
	s.Tick()
	s.Tick()
	s.Tick()

	expected := []string{
		"start",
		"update", "late",
		"update", "late",
		"fixed", "update", "late",
	}
	if !reflect.DeepEqual(comp.order, expected) {
		t.Errorf("Expected phases %v, got %v", expected, comp.order)
	}
}

func TestSchedulerNoFixedWhenIntervalZero(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	s := NewScheduler(cm)
	s.FixedInterval = 0
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	if comp.fixedCalled {
		t.Error("FixedUpdate should not run when the interval is zero")
	}
}
