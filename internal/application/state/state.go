package state

import (
	"fmt"
	"strings"
)

// SceneState identifies which scene the game is showing
type SceneState int

const (
	NoScene SceneState = iota
	StartScene
	PlayScene
	EndScene
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case NoScene:
		return "NoScene"
	case StartScene:
		return "Start"
	case PlayScene:
		return "Play"
	case EndScene:
		return "End"
	default:
		return "Unknown"
	}
}

// ParseSceneState maps a scene name, as printed by String, to its state
func ParseSceneState(name string) (SceneState, error) {
	for _, s := range []SceneState{StartScene, PlayScene, EndScene} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return NoScene, fmt.Errorf("unknown scene %q", name)
}

// InputType selects which devices drive the player
type InputType int

const (
	KeyboardMouse InputType = iota
	GameController
	All
)

// String returns the string representation of the input type
func (t InputType) String() string {
	switch t {
	case KeyboardMouse:
		return "KeyboardMouse"
	case GameController:
		return "GameController"
	case All:
		return "All"
	default:
		return "Unknown"
	}
}

// UsesKeyboard reports whether keyboard input moves the player
func (t InputType) UsesKeyboard() bool {
	return t == KeyboardMouse || t == All
}

// UsesController reports whether gamepad input moves the player
func (t InputType) UsesController() bool {
	return t == GameController || t == All
}
