package engine

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestParseKey(t *testing.T) {
	cases := map[string]glfw.Key{
		"V":      glfw.KeyV,
		"r":      glfw.KeyR,
		"7":      glfw.Key7,
		"Escape": glfw.KeyEscape,
		" space": glfw.KeySpace,
		"F5":     glfw.KeyF5,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		if err != nil {
			t.Errorf("ParseKey(%q) returned error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseKey(%q) = %v, expected %v", name, got, want)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "ctrl+v", "F13", "?"} {
		if _, err := ParseKey(name); err == nil {
			t.Errorf("Expected error for key %q", name)
		}
	}
}

func TestBindRejectsUnknownKey(t *testing.T) {
	in := NewInput()
	if err := in.Bind("nope", func() {}); err == nil {
		t.Error("Expected Bind to fail for unknown key")
	}
	if len(in.bindings) != 0 {
		t.Errorf("Expected no bindings, got %d", len(in.bindings))
	}
	if err := in.SetBackKey("nope"); err == nil {
		t.Error("Expected SetBackKey to fail for unknown key")
	}
	if in.backKey != glfw.KeyEscape {
		t.Errorf("Expected back key to stay Escape, got %v", in.backKey)
	}
}

func TestButtonLatchesClearOnRead(t *testing.T) {
	in := NewInput()
	in.back = true
	in.trigger = true

	if !in.BackPressed() {
		t.Error("Expected back press to be reported")
	}
	if in.BackPressed() {
		t.Error("Expected back press to be reported only once")
	}
	if !in.TriggerPressed() {
		t.Error("Expected trigger press to be reported")
	}
	if in.TriggerPressed() {
		t.Error("Expected trigger press to be reported only once")
	}
}

func TestBindTriggerAction(t *testing.T) {
	in := NewInput()
	if err := in.BindTrigger("Space"); err != nil {
		t.Fatalf("BindTrigger failed: %v", err)
	}
	if len(in.bindings) != 1 || in.bindings[0].key != glfw.KeySpace {
		t.Fatalf("Expected one Space binding, got %+v", in.bindings)
	}
	in.bindings[0].action()
	if !in.TriggerPressed() {
		t.Error("Expected bound action to raise the trigger")
	}
}
