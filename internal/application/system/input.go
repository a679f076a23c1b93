package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/playscene/internal/domain/geom"
)

// InputState holds one frame's input snapshot
type InputState struct {
	Keys       []ebiten.Key
	MouseX     int
	MouseY     int
	MouseDown  bool
	MouseClick bool
	// Left stick horizontal axis of the first standard gamepad, in [-1, 1]
	Axis float64
}

// KeyDown reports whether k was held in this snapshot
func (s InputState) KeyDown(k ebiten.Key) bool {
	return slices.Contains(s.Keys, k)
}

// Mouse returns the cursor position in screen pixels
func (s InputState) Mouse() geom.Vec2 {
	return geom.Vec2{X: float64(s.MouseX), Y: float64(s.MouseY)}
}

// Source produces the next input snapshot
type Source func() InputState

// InputSystem is the per-frame event manager. It keeps the current and
// previous snapshot so scenes can ask for held keys and fresh presses.
type InputSystem struct {
	source   Source
	current  InputState
	previous InputState

	// OnFrame, if set, receives every snapshot pulled by Update
	OnFrame func(InputState)
}

// NewInputSystem creates an input system that polls ebiten
func NewInputSystem() *InputSystem {
	return NewInputSystemWithSource(PollEbiten)
}

// NewInputSystemWithSource creates an input system fed by src
func NewInputSystemWithSource(src Source) *InputSystem {
	return &InputSystem{source: src}
}

// Update pulls the latest snapshot from the source
func (s *InputSystem) Update() {
	s.previous = s.current
	s.current = s.source()

	if s.OnFrame != nil {
		s.OnFrame(s.current)
	}
}

// IsKeyDown reports whether k is held. It stays true on every frame the key is held.
func (s *InputSystem) IsKeyDown(k ebiten.Key) bool {
	return s.current.KeyDown(k)
}

// IsKeyJustPressed reports whether k went down since the previous snapshot
func (s *InputSystem) IsKeyJustPressed(k ebiten.Key) bool {
	return s.current.KeyDown(k) && !s.previous.KeyDown(k)
}

// State returns the current snapshot
func (s *InputSystem) State() InputState {
	return s.current
}

// MousePosition returns the current cursor position
func (s *InputSystem) MousePosition() geom.Vec2 {
	return s.current.Mouse()
}

// PollEbiten reads the live input state from ebiten
func PollEbiten() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Keys:       inpututil.AppendPressedKeys(nil),
		MouseX:     mx,
		MouseY:     my,
		MouseDown:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Axis:       pollAxis(),
	}
}

// pollAxis returns the left stick of the first gamepad with a standard layout
func pollAxis() float64 {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	}
	return 0
}
