// Package scenetest provides collaborators for driving scenes in tests.
package scenetest

import (
	"github.com/younwookim/playscene/internal/application/scene"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/application/system"
	"github.com/younwookim/playscene/internal/infrastructure/config"
	"github.com/younwookim/playscene/internal/infrastructure/overlay"
)

// Director records quit and scene change requests
type Director struct {
	Quits   int
	Changes []state.SceneState
}

func (d *Director) Quit() { d.Quits++ }

func (d *Director) ChangeSceneState(next state.SceneState) {
	d.Changes = append(d.Changes, next)
}

// Sounder counts clicks
type Sounder struct {
	Clicks int
}

func (s *Sounder) PlayClick() { s.Clicks++ }

// Clipboard stores written text, or fails with Err
type Clipboard struct {
	Text string
	Err  error
}

func (c *Clipboard) WriteAll(s string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = s
	return nil
}

// Harness wires a scene to fake collaborators. Set Input before each
// HandleEvents call; the event manager reads it once per frame.
type Harness struct {
	Input     system.InputState
	Events    *system.InputSystem
	Director  *Director
	Sound     *Sounder
	Clipboard *Clipboard
	GUI       *overlay.WindowManager
	Config    *config.GameConfig
}

// NewHarness creates a harness with the default config and a visible
// debug window.
func NewHarness() *Harness {
	h := &Harness{
		Director:  &Director{},
		Sound:     &Sounder{},
		Clipboard: &Clipboard{},
		GUI:       overlay.NewWindowManager(),
		Config:    config.Default(),
	}
	h.Events = system.NewInputSystemWithSource(func() system.InputState { return h.Input })
	h.GUI.SetVisible(true)
	return h
}

// Services returns the collaborators to hand to a scene
func (h *Harness) Services() scene.Services {
	return scene.Services{
		Director:  h.Director,
		Events:    h.Events,
		GUI:       h.GUI,
		Sound:     h.Sound,
		Clipboard: h.Clipboard,
		Config:    h.Config,
	}
}

// Frame runs one frame of s with the given input: events, update and the
// debug window.
func (h *Harness) Frame(s scene.Scene, in system.InputState) error {
	h.Input = in
	s.HandleEvents()
	s.Update(h.Config.Timestep())
	return h.BuildGUI()
}

// BuildGUI builds one debug window frame through debugui
func (h *Harness) BuildGUI() error {
	return h.GUI.Update()
}

// Click returns an input state pressing the mouse at (x, y)
func Click(x, y float64) system.InputState {
	return system.InputState{MouseX: int(x), MouseY: int(y), MouseDown: true, MouseClick: true}
}

// Hold returns an input state holding the mouse down at (x, y)
func Hold(x, y float64) system.InputState {
	return system.InputState{MouseX: int(x), MouseY: int(y), MouseDown: true}
}
