// Package end provides the scene shown after play, offering a restart.
package end

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
	guiTitle   = "End Scene"
	titleText  = "END SCENE"
	promptText = "Press 1 to Play Again, 2 for Start"
	titleSize  = 32
)

var windowRect = image.Rect(10, 10, 250, 90)

// Scene is the end scene
type Scene struct {
	scene.DisplayList

	svc scene.Services

	title         *ui.Label
	prompt        *ui.Label
	restartButton *ui.Button
}

// New creates an end scene. Children are built in Start.
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
	s.AddChild(s.prompt)

	s.restartButton = s.svc.NewNavButton("textures/restartButton.png", "restartButton", ui.TypeRestartButton,
		geom.Vec2{X: centerX, Y: 400}, state.PlayScene)
	s.AddChild(s.restartButton)

	s.svc.SetGuiFunction(s.drawGUI)
}

func (s *Scene) HandleEvents() {
	events := s.svc.Events
	events.Update()
	s.DispatchPointer(events.State())

	director := s.svc.Director
	if events.IsKeyDown(ebiten.KeyEscape) {
		director.Quit()
	}
	if events.IsKeyDown(ebiten.Key1) {
		director.ChangeSceneState(state.PlayScene)
	}
	if events.IsKeyDown(ebiten.Key2) {
		director.ChangeSceneState(state.StartScene)
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
		ctx.SetGridLayout([]int{-1, -1}, nil)
		ctx.Button("Play Again").On(func() {
			s.svc.Director.ChangeSceneState(state.PlayScene)
		})
		ctx.Button("Back to Start").On(func() {
			s.svc.Director.ChangeSceneState(state.StartScene)
		})
	})
}
