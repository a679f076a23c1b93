package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playscene/internal/application/replay"
	"github.com/younwookim/playscene/internal/application/scene"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/application/system"
	"github.com/younwookim/playscene/internal/infrastructure/audio"
	"github.com/younwookim/playscene/internal/infrastructure/clipboard"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load game.json or game.yaml from this directory instead of the embedded config")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	replayFlag := flag.String("replay", "", "Play back input recorded with -record")
	sceneFlag := flag.String("scene", "start", "Initial scene: start, play or end")
	mute := flag.Bool("mute", false, "Disable the button click sound")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initial, err := state.ParseSceneState(*sceneFlag)
	if err != nil {
		log.Fatalf("Invalid -scene: %v", err)
	}

	// Input comes from ebiten, or from a recording
	events := system.NewInputSystem()
	var recorder *replay.Recorder
	switch {
	case *replayFlag != "":
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*data)
		if s, err := state.ParseSceneState(replayer.Scene()); err == nil {
			initial = s
		}
		events = system.NewInputSystemWithSource(replayer.Source())
		log.Printf("Replaying %s (%d frames)", *replayFlag, replayer.TotalFrames())

	case *recordFlag != "":
		recorder = replay.NewRecorder(initial.String())
		events.OnFrame = recorder.RecordFrame
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	var sound scene.Sounder
	var click *audio.ClickPlayer
	if cfg.Audio.Enabled && !*mute {
		click = audio.NewClickPlayer(cfg.Audio.ClickFrequency,
			time.Duration(cfg.Audio.ClickMillis)*time.Millisecond, cfg.Audio.Volume)
		if err := click.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
			click = nil
		} else {
			sound = click
		}
	}

	var clip scene.Clipboard
	if sys := (clipboard.System{}); sys.Unsupported() {
		log.Printf("Clipboard unavailable, Copy Velocity is disabled")
	} else {
		clip = sys
	}

	g, err := buildGame(cfg, events, sound, clip, initial)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game; Quit ends the loop with a nil error
	runErr := ebiten.RunGame(g)

	g.Close()
	if recorder != nil {
		saveRecording(recorder, *recordFlag)
	}
	if click != nil {
		click.Cleanup()
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
