// Package play provides the play scene: a plane on a circular path, a
// controllable player, navigation buttons and a debug window for tuning
// launch parameters.
package play

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/ebitengine/debugui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/playscene/internal/application/scene"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/domain/geom"
	"github.com/younwookim/playscene/internal/domain/motion"
	"github.com/younwookim/playscene/internal/infrastructure/config"
	"github.com/younwookim/playscene/internal/ui"
)

const (
	guiTitle     = "Play Scene"
	windowTitle  = "Your Window Title Goes Here"
	instructions = "Press the backtick (`) character to toggle Debug View"
	labelFont    = "Consolas"
	labelY       = 500

	// Controller stick values inside the dead zone are ignored
	stickDeadZone = 0.05
)

var (
	backButtonPos = geom.Vec2{X: 300, Y: 400}
	nextButtonPos = geom.Vec2{X: 500, Y: 400}
	lineEnd       = geom.Vec2{X: 100, Y: 100}

	colorLine = color.RGBA{255, 255, 125, 255}

	windowRect = image.Rect(10, 10, 330, 330)

	// Radio group for the player input mode
	inputTypes      = []state.InputType{state.KeyboardMouse, state.GameController, state.All}
	inputTypeLabels = []string{"Keyboard / Mouse", "Game Controller", "Both"}
)

// Scene is the play scene
type Scene struct {
	scene.DisplayList

	svc scene.Services
	cfg *config.GameConfig
	dt  float64

	plane        *ui.Plane
	player       *ui.Player
	backButton   *ui.Button
	nextButton   *ui.Button
	instructions *ui.Label
	motion       *motion.Oscillator

	// Debug window bindings
	inputType    int
	launchAngle  float64
	launchSpeed  float64
	launchOrigin geom.Vec2
}

// New creates a play scene. Children are built in Start.
func New(svc scene.Services) *Scene {
	cfg := svc.Cfg()
	return &Scene{
		svc:       svc,
		cfg:       cfg,
		dt:        cfg.Timestep(),
		inputType: int(state.KeyboardMouse),
	}
}

// Factory adapts New to the scene manager's factory signature
func Factory(svc scene.Services) scene.Scene {
	return New(svc)
}

// Title returns the scene's name as shown in logs
func (s *Scene) Title() string {
	return guiTitle
}

// Start builds the scene's children and registers the debug window.
// Calling it again rebuilds the scene from scratch.
func (s *Scene) Start() {
	s.RemoveAllChildren()

	screenW := float64(s.cfg.Display.ScreenWidth)
	screenH := float64(s.cfg.Display.ScreenHeight)

	s.inputType = int(state.KeyboardMouse)
	s.launchAngle = geom.Clamp(s.cfg.Launch.Angle, 0, config.MaxLaunchAngle)
	s.launchSpeed = geom.Clamp(s.cfg.Launch.Speed, 0, config.MaxLaunchSpeed)
	s.launchOrigin = geom.Vec2{
		X: geom.Clamp(s.cfg.Launch.Origin.X, 0, config.MaxLaunchOrigin),
		Y: geom.Clamp(s.cfg.Launch.Origin.Y, 0, config.MaxLaunchOrigin),
	}

	s.motion = motion.NewOscillator(motion.Params{
		A:  s.cfg.Motion.A,
		B:  s.cfg.Motion.B,
		C:  s.cfg.Motion.C,
		D:  s.cfg.Motion.D,
		Dt: s.dt,
	})

	s.plane = ui.NewPlane()
	s.plane.Transform().Position = s.motion.Position()
	s.AddChild(s.plane)

	s.player = ui.NewPlayer(screenW)
	s.player.Transform().Position = geom.Vec2{X: screenW * 0.5, Y: screenH * 0.5}
	s.AddChild(s.player)

	s.backButton = s.svc.NewNavButton("textures/backButton.png", "backButton", ui.TypeBackButton, backButtonPos, state.StartScene)
	s.AddChild(s.backButton)

	s.nextButton = s.svc.NewNavButton("textures/nextButton.png", "nextButton", ui.TypeNextButton, nextButtonPos, state.EndScene)
	s.AddChild(s.nextButton)

	s.instructions = ui.NewLabel(instructions, labelFont)
	s.instructions.Transform().Position = geom.Vec2{X: screenW * 0.5, Y: labelY}
	if fade := s.cfg.UI.LabelFadeSeconds; fade > 0 {
		s.instructions.FadeIn(float32(fade))
	}
	s.AddChild(s.instructions)

	s.svc.SetGuiFunction(s.drawGUI)
}

// HandleEvents pulls the frame's input, then routes it to the buttons,
// the player and the scene's key bindings.
func (s *Scene) HandleEvents() {
	events := s.svc.Events
	events.Update()

	in := events.State()
	s.DispatchPointer(in)
	s.handlePlayerInput(in.KeyDown(ebiten.KeyA), in.KeyDown(ebiten.KeyD), in.Axis)
	s.handleKeyboardInput()
}

func (s *Scene) handlePlayerInput(left, right bool, axis float64) {
	input := state.InputType(s.inputType)
	dir := 0.0

	if input.UsesKeyboard() {
		if left {
			dir--
		}
		if right {
			dir++
		}
	}
	if input.UsesController() && math.Abs(axis) > stickDeadZone {
		dir += axis
	}

	s.player.Move(geom.Clamp(dir, -1, 1), s.dt)
}

// handleKeyboardInput fires every frame a key is held
func (s *Scene) handleKeyboardInput() {
	events := s.svc.Events
	director := s.svc.Director

	if events.IsKeyDown(ebiten.KeyEscape) {
		director.Quit()
	}
	if events.IsKeyDown(ebiten.Key1) {
		director.ChangeSceneState(state.StartScene)
	}
	if events.IsKeyDown(ebiten.Key2) {
		director.ChangeSceneState(state.EndScene)
	}
}

// Update moves the plane one step along its path and updates children
func (s *Scene) Update(dt float64) {
	s.plane.Transform().Position = s.motion.Step()
	s.UpdateDisplayList(dt)
}

// Draw renders the children and the launch line
func (s *Scene) Draw(screen *ebiten.Image) {
	s.DrawDisplayList(screen)
	ebitenutil.DrawLine(screen, s.launchOrigin.X, s.launchOrigin.Y, lineEnd.X, lineEnd.Y, colorLine)
}

// Clean releases every child
func (s *Scene) Clean() {
	s.RemoveAllChildren()
}

// Velocity returns the launch velocity from the current angle and speed
func (s *Scene) Velocity() geom.Vec2 {
	return geom.AngleLengthToVector(s.launchAngle, s.launchSpeed)
}

// InputType returns the selected input mode
func (s *Scene) InputType() state.InputType {
	return state.InputType(s.inputType)
}

// velocityText formats the launch velocity as shown and copied
func (s *Scene) velocityText() string {
	v := s.Velocity()
	return fmt.Sprintf("x:%f, y:%f", v.X, v.Y)
}

func (s *Scene) copyVelocity() {
	s.svc.Copy(s.velocityText())
}

func (s *Scene) selectInputType(t state.InputType) {
	s.inputType = int(t)
}

// clampLaunch pulls the launch parameters back into their slider ranges
func (s *Scene) clampLaunch() {
	s.launchAngle = geom.Clamp(s.launchAngle, 0, config.MaxLaunchAngle)
	s.launchSpeed = geom.Clamp(s.launchSpeed, 0, config.MaxLaunchSpeed)
	s.launchOrigin.X = geom.Clamp(s.launchOrigin.X, 0, config.MaxLaunchOrigin)
	s.launchOrigin.Y = geom.Clamp(s.launchOrigin.Y, 0, config.MaxLaunchOrigin)
}

func (s *Scene) drawGUI(ctx *debugui.Context) {
	ctx.Window(windowTitle, windowRect, func(layout debugui.ContainerLayout) {
		ctx.Text("Player Input")
		ctx.SetGridLayout([]int{-1, -1, -1}, nil)
		ctx.Loop(len(inputTypes), func(i int) {
			t := inputTypes[i]
			selected := s.InputType() == t
			ctx.Checkbox(&selected, inputTypeLabels[i]).On(func() {
				s.selectInputType(t)
			})
		})
		ctx.SetGridLayout(nil, nil)

		ctx.Button("My Button").On(func() {
			log.Println("My Button Pressed")
		})

		ctx.Text("Launch Angle")
		ctx.SliderF(&s.launchAngle, 0, config.MaxLaunchAngle, 1, 1)
		ctx.Text("Launch Speed")
		ctx.SliderF(&s.launchSpeed, 0, config.MaxLaunchSpeed, 1, 1)
		ctx.Text("Launch Origin")
		ctx.SetGridLayout([]int{-1, -1}, nil)
		ctx.SliderF(&s.launchOrigin.X, 0, config.MaxLaunchOrigin, 1, 1)
		ctx.SliderF(&s.launchOrigin.Y, 0, config.MaxLaunchOrigin, 1, 1)
		ctx.SetGridLayout(nil, nil)

		ctx.Text("Velocity Vector " + s.velocityText())
		ctx.Button("Copy Velocity").On(s.copyVelocity)
	})

	s.clampLaunch()
}
