// Package start provides the title scene shown before play.
package start

import (
	"image"

	"github.com/ebitengine/debugui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playscene/internal/application/scene"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/domain/geom"
	"github.com/younwookim/playscene/internal/ui"
)

const (
	guiTitle   = "Start Scene"
	titleText  = "START SCENE"
	promptText = "Press 1 to Play"
	titleSize  = 32
)

var windowRect = image.Rect(10, 10, 250, 90)

// Scene is the start scene
type Scene struct {
	scene.DisplayList

	svc scene.Services

	title       *ui.Label
	prompt      *ui.Label
	startButton *ui.Button
}

// New creates a start scene. Children are built in Start.
func New(svc scene.Services) *Scene {
	return &Scene{svc: svc}
}

// Factory adapts New to the scene manager's factory signature
func Factory(svc scene.Services) scene.Scene {
	return New(svc)
}

// Title returns the scene's name as shown in logs
func (s *Scene) Title() string {
	return guiTitle
}

func (s *Scene) Start() {
	s.RemoveAllChildren()

	cfg := s.svc.Cfg()
	centerX := float64(cfg.Display.ScreenWidth) * 0.5

	s.title = ui.NewLabelSized(titleText, "Consolas", titleSize)
	s.title.Transform().Position = geom.Vec2{X: centerX, Y: 200}
	s.AddChild(s.title)

	s.prompt = ui.NewLabel(promptText, "Consolas")
	s.prompt.Transform().Position = geom.Vec2{X: centerX, Y: 260}
	if fade := cfg.UI.LabelFadeSeconds; fade > 0 {
		s.prompt.FadeIn(float32(fade))
	}
	s.AddChild(s.prompt)

	s.startButton = s.svc.NewNavButton("textures/startButton.png", "startButton", ui.TypeStartButton,
		geom.Vec2{X: centerX, Y: 400}, state.PlayScene)
	s.AddChild(s.startButton)

	s.svc.SetGuiFunction(s.drawGUI)
}

func (s *Scene) HandleEvents() {
	events := s.svc.Events
	events.Update()
	s.DispatchPointer(events.State())

	if events.IsKeyDown(ebiten.KeyEscape) {
		s.svc.Director.Quit()
	}
	if events.IsKeyDown(ebiten.Key1) {
		s.svc.Director.ChangeSceneState(state.PlayScene)
	}
}

func (s *Scene) Update(dt float64) {
	s.UpdateDisplayList(dt)
}

func (s *Scene) Draw(screen *ebiten.Image) {
	s.DrawDisplayList(screen)
}

func (s *Scene) Clean() {
	s.RemoveAllChildren()
}

func (s *Scene) drawGUI(ctx *debugui.Context) {
	ctx.Window(guiTitle, windowRect, func(layout debugui.ContainerLayout) {
		ctx.Text("Press Start or 1 to play")
		ctx.Button("Play").On(func() {
			s.svc.Director.ChangeSceneState(state.PlayScene)
		})
	})
}
