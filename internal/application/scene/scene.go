// Package scene defines the Scene interface for game screens and the
// collaborators a scene is given.
//
// Each game screen (start, play, end) implements the Scene interface.
// The game loop calls HandleEvents, Update and Draw once per frame, Start
// when the scene becomes current and Clean when it is replaced.
package scene

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/application/system"
	"github.com/younwookim/playscene/internal/infrastructure/config"
	"github.com/younwookim/playscene/internal/infrastructure/overlay"
)

// Scene represents a game screen
type Scene interface {
	// Start builds the scene's children and registers its debug window.
	Start()

	// HandleEvents pulls the frame's input and reacts to it.
	HandleEvents()

	// Update advances the scene by dt seconds (typically 1/60).
	Update(dt float64)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// Clean releases every child the scene owns.
	Clean()
}

// Director accepts quit and scene change requests
type Director interface {
	Quit()
	ChangeSceneState(next state.SceneState)
}

// EventManager provides the per-frame input snapshot
type EventManager interface {
	Update()
	IsKeyDown(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	State() system.InputState
}

// GUIHost runs one debug window function per frame
type GUIHost interface {
	SetGuiFunction(fn overlay.GuiFunction)
}

// Sounder plays UI feedback sounds
type Sounder interface {
	PlayClick()
}

// Clipboard receives text copied from the debug window
type Clipboard interface {
	WriteAll(s string) error
}

// Services bundles the collaborators handed to every scene
type Services struct {
	Director  Director
	Events    EventManager
	GUI       GUIHost
	Sound     Sounder
	Clipboard Clipboard
	Config    *config.GameConfig
}

// PlayClick plays the click sound if a sounder is configured
func (s Services) PlayClick() {
	if s.Sound != nil {
		s.Sound.PlayClick()
	}
}

// Copy writes text to the clipboard, logging failures
func (s Services) Copy(text string) {
	if s.Clipboard == nil {
		return
	}
	if err := s.Clipboard.WriteAll(text); err != nil {
		log.Printf("Failed to copy to clipboard: %v", err)
	}
}

// Cfg returns the configured game config, or the defaults
func (s Services) Cfg() *config.GameConfig {
	if s.Config == nil {
		return config.Default()
	}
	return s.Config
}
