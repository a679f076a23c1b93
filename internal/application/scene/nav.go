package scene

import (
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/domain/geom"
	"github.com/younwookim/playscene/internal/infrastructure/overlay"
	"github.com/younwookim/playscene/internal/ui"
)

// NewNavButton creates a button that changes scene when clicked.
// A click deactivates the button, plays the click sound and requests
// target; hovering dims the button to the configured hover alpha.
func (s Services) NewNavButton(texture, name string, typ ui.ObjectType, pos geom.Vec2, target state.SceneState) *ui.Button {
	b := ui.NewButton(texture, name, typ)
	b.Transform().Position = pos

	b.AddEventListener(ui.EventClick, func() {
		b.SetActive(false)
		s.PlayClick()
		s.Director.ChangeSceneState(target)
	})

	b.AddEventListener(ui.EventMouseOver, func() {
		b.SetAlpha(s.Cfg().UI.HoverAlpha)
	})

	b.AddEventListener(ui.EventMouseOut, func() {
		b.SetAlpha(255)
	})

	return b
}

// SetGuiFunction registers fn with the GUI host, if there is one
func (s Services) SetGuiFunction(fn overlay.GuiFunction) {
	if s.GUI != nil {
		s.GUI.SetGuiFunction(fn)
	}
}
