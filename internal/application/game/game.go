// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playscene/internal/application/scene"
	"github.com/younwookim/playscene/internal/application/state"
)

// ToggleDebugKey shows or hides the debug window
const ToggleDebugKey = ebiten.KeyBackquote

var colorBG = color.RGBA{26, 26, 46, 255}

// SceneFactory builds a fresh scene for a state
type SceneFactory func(svc scene.Services) scene.Scene

// DebugWindow is the overlay toggled, built and drawn by the game each frame
type DebugWindow interface {
	scene.GUIHost
	Toggle()
	Visible() bool
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game and manages Scene transitions.
// It is also the Director scenes use to quit or change scene.
type Game struct {
	factories    map[state.SceneState]SceneFactory
	current      scene.Scene
	currentState state.SceneState
	pending      state.SceneState
	quit         bool

	// Keys held when the current scene started. Scene change requests are
	// ignored until all of them are released, so a held key that opened
	// this scene cannot also trigger its bindings.
	heldKeys []ebiten.Key

	services scene.Services
	gui      DebugWindow
	screenW  int
	screenH  int
	dt       float64
}

// New creates a Game. The services are handed to every scene, with
// Director set to the game and GUI set to gui.
func New(services scene.Services, gui DebugWindow, screenW, screenH int) *Game {
	g := &Game{
		factories: map[state.SceneState]SceneFactory{},
		gui:       gui,
		screenW:   screenW,
		screenH:   screenH,
		dt:        1.0 / 60.0, // Default to 60 FPS
	}
	services.Director = g
	services.GUI = gui
	g.services = services
	return g
}

// Register sets the factory used when changing to s
func (g *Game) Register(s state.SceneState, f SceneFactory) {
	g.factories[s] = f
}

// Start switches to the initial scene immediately
func (g *Game) Start(initial state.SceneState) error {
	if _, ok := g.factories[initial]; !ok {
		return fmt.Errorf("scene %s is not registered", initial)
	}
	g.pending = initial
	return g.applyPending()
}

// ChangeSceneState requests a transition. It takes effect at the start of
// the next Update; a later request in the same frame replaces it.
// Requests for the current state are ignored, as are requests made while
// a key that was held when the current scene started is still down.
func (g *Game) ChangeSceneState(next state.SceneState) {
	if g.current != nil && next == g.currentState {
		return
	}
	if g.holdingSwitchKey() {
		return
	}
	g.pending = next
}

// Quit makes the next Update end the game loop
func (g *Game) Quit() {
	g.quit = true
}

// CurrentState returns the state of the running scene
func (g *Game) CurrentState() state.SceneState {
	return g.currentState
}

// Scene returns the running scene
func (g *Game) Scene() scene.Scene {
	return g.current
}

// GUI returns the debug window
func (g *Game) GUI() DebugWindow {
	return g.gui
}

// applyPending cleans the current scene and starts the requested one
func (g *Game) applyPending() error {
	if g.pending == state.NoScene {
		return nil
	}
	next := g.pending
	g.pending = state.NoScene

	factory, ok := g.factories[next]
	if !ok {
		return fmt.Errorf("scene %s is not registered", next)
	}

	if g.current != nil {
		g.current.Clean()
	}
	g.gui.SetGuiFunction(nil)

	g.current = factory(g.services)
	g.currentState = next
	g.heldKeys = nil
	if events := g.services.Events; events != nil {
		g.heldKeys = slices.Clone(events.State().Keys)
	}
	g.current.Start()

	if titled, ok := g.current.(interface{ Title() string }); ok {
		log.Printf("Scene changed to %s (%s)", next, titled.Title())
	} else {
		log.Printf("Scene changed to %s", next)
	}
	return nil
}

// holdingSwitchKey reports whether a key held at the last scene change is
// still down in the current frame
func (g *Game) holdingSwitchKey() bool {
	events := g.services.Events
	if events == nil {
		return false
	}
	return slices.ContainsFunc(g.heldKeys, events.IsKeyDown)
}

// releaseSwitchKeys forgets keys from the last scene change once released
func (g *Game) releaseSwitchKeys() {
	if len(g.heldKeys) == 0 {
		return
	}
	events := g.services.Events
	g.heldKeys = slices.DeleteFunc(g.heldKeys, func(k ebiten.Key) bool {
		return !events.IsKeyDown(k)
	})
}

// Update runs one frame of the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if err := g.applyPending(); err != nil {
		return err
	}
	if g.current == nil {
		return errors.New("no scene started")
	}

	g.current.HandleEvents()
	if g.quit {
		return ebiten.Termination
	}
	g.releaseSwitchKeys()

	if g.services.Events.IsKeyJustPressed(ToggleDebugKey) {
		g.gui.Toggle()
	}

	g.current.Update(g.dt)

	return g.gui.Update()
}

// Close cleans the running scene; call once the game loop has returned
func (g *Game) Close() {
	if g.current != nil {
		g.current.Clean()
		g.current = nil
	}
	g.gui.SetGuiFunction(nil)
}

// Draw renders the current scene and the debug window on top.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if g.current != nil {
		g.current.Draw(screen)
	}
	g.gui.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
