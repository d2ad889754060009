package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyNames = map[string]glfw.Key{
	"space": glfw.KeySpace, "escape": glfw.KeyEscape, "enter": glfw.KeyEnter,
	"tab": glfw.KeyTab, "backspace": glfw.KeyBackspace,
	"left": glfw.KeyLeft, "right": glfw.KeyRight, "up": glfw.KeyUp, "down": glfw.KeyDown,
	"f1": glfw.KeyF1, "f2": glfw.KeyF2, "f3": glfw.KeyF3, "f4": glfw.KeyF4,
	"f5": glfw.KeyF5, "f6": glfw.KeyF6, "f7": glfw.KeyF7, "f8": glfw.KeyF8,
	"f9": glfw.KeyF9, "f10": glfw.KeyF10, "f11": glfw.KeyF11, "f12": glfw.KeyF12,
}

// ParseKey maps names like "V", "7", "Escape" or "F5" to glfw keys.
func ParseKey(name string) (glfw.Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if key, ok := keyNames[lower]; ok {
		return key, nil
	}
	if len(lower) == 1 {
		c := lower[0]
		switch {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}

type binding struct {
	key    glfw.Key
	name   string
	action func()
}

// Input polls the keyboard and mouse once per frame and turns presses into
// one-shot events. It also serves as the viewer's back button source.
type Input struct {
	backKey glfw.Key

	mu       sync.Mutex
	back     bool
	trigger  bool
	previous map[glfw.Key]bool
	mouseWas bool
	bindings []binding
}

func NewInput() *Input {
	return &Input{
		backKey:  glfw.KeyEscape,
		previous: make(map[glfw.Key]bool),
	}
}

// SetBackKey changes the key that acts as the viewer's back button.
func (in *Input) SetBackKey(name string) error {
	key, err := ParseKey(name)
	if err != nil {
		return err
	}
	in.backKey = key
	return nil
}

// Bind runs action once each time the named key goes down.
func (in *Input) Bind(name string, action func()) error {
	key, err := ParseKey(name)
	if err != nil {
		return err
	}
	in.bindings = append(in.bindings, binding{key: key, name: name, action: action})
	return nil
}

// BindTrigger makes the named key fire the gaze trigger, in addition to the
// left mouse button.
func (in *Input) BindTrigger(name string) error {
	return in.Bind(name, func() {
		in.mu.Lock()
		in.trigger = true
		in.mu.Unlock()
	})
}

// Poll samples the window and runs bound actions for new presses.
func (in *Input) Poll(window *glfw.Window) {
	if in.pressedOnce(window, in.backKey) {
		in.mu.Lock()
		in.back = true
		in.mu.Unlock()
	}

	for _, b := range in.bindings {
		if in.pressedOnce(window, b.key) {
			b.action()
		}
	}

	mouseDown := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	if mouseDown && !in.mouseWas {
		in.mu.Lock()
		in.trigger = true
		in.mu.Unlock()
	}
	in.mouseWas = mouseDown
}

func (in *Input) pressedOnce(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	was := in.previous[key]
	in.previous[key] = down
	return down && !was
}

// BackPressed implements vr.ButtonSource.
func (in *Input) BackPressed() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	pressed := in.back
	in.back = false
	return pressed
}

// TriggerPressed reports and clears a pending trigger press.
func (in *Input) TriggerPressed() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	pressed := in.trigger
	in.trigger = false
	return pressed
}
