package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/younwookim/playscene/internal/application/game"
	"github.com/younwookim/playscene/internal/application/replay"
	"github.com/younwookim/playscene/internal/application/scene"
	"github.com/younwookim/playscene/internal/application/scene/end"
	"github.com/younwookim/playscene/internal/application/scene/play"
	"github.com/younwookim/playscene/internal/application/scene/start"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/application/system"
	"github.com/younwookim/playscene/internal/infrastructure/config"
	"github.com/younwookim/playscene/internal/infrastructure/overlay"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads the game config from dir, or from the embedded
// configs when dir is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// buildGame registers every scene and starts the game at initial.
// sound and clip may be nil.
func buildGame(cfg *config.GameConfig, events *system.InputSystem, sound scene.Sounder, clip scene.Clipboard, initial state.SceneState) (*game.Game, error) {
	gui := overlay.NewWindowManager()
	gui.SetVisible(cfg.UI.DebugVisible)

	services := scene.Services{
		Events:    events,
		Sound:     sound,
		Clipboard: clip,
		Config:    cfg,
	}

	g := game.New(services, gui, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(cfg.Timestep())
	g.Register(state.StartScene, start.Factory)
	g.Register(state.PlayScene, play.Factory)
	g.Register(state.EndScene, end.Factory)

	if err := g.Start(initial); err != nil {
		return nil, err
	}
	return g, nil
}

// saveRecording writes the session to filename, or to a timestamped
// file when filename is "auto"
func saveRecording(recorder *replay.Recorder, filename string) {
	if filename == "auto" {
		filename = replay.GenerateFilename()
	}

	if err := recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, recorder.FrameCount())
	}
}
