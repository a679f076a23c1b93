package main

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/playscene/internal/application/replay"
	"github.com/younwookim/playscene/internal/application/state"
	"github.com/younwookim/playscene/internal/application/system"
	"github.com/younwookim/playscene/internal/infrastructure/config"
)

// session walks start -> play -> end and then quits
func session() []system.InputState {
	return []system.InputState{
		{},
		{Keys: []ebiten.Key{ebiten.Key1}},
		{},
		{MouseX: 500, MouseY: 400, MouseDown: true, MouseClick: true},
		{},
		{Keys: []ebiten.Key{ebiten.KeyEscape}},
	}
}

// sessionStates is the scene running after each frame of session
var sessionStates = []state.SceneState{
	state.StartScene,
	state.StartScene,
	state.PlayScene,
	state.PlayScene,
	state.EndScene,
	state.EndScene,
}

// runFrames updates g once per frame and returns the scene after each
// frame, stopping early when the game asks to terminate
func runFrames(t *testing.T, g interface {
	Update() error
	CurrentState() state.SceneState
}, frames int) ([]state.SceneState, error) {
	t.Helper()
	var states []state.SceneState
	for i := 0; i < frames; i++ {
		err := g.Update()
		states = append(states, g.CurrentState())
		if err != nil {
			return states, err
		}
	}
	return states, nil
}

func scripted(frames []system.InputState) system.Source {
	i := 0
	return func() system.InputState {
		if i >= len(frames) {
			return system.InputState{}
		}
		in := frames[i]
		i++
		return in
	}
}

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
}

func TestLoadConfig_Directory(t *testing.T) {
	cfg, err := loadConfig("configs")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Launch, cfg.Launch)

	_, err = loadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestBuildGame_SceneFlow(t *testing.T) {
	events := system.NewInputSystemWithSource(scripted(session()))
	g, err := buildGame(config.Default(), events, nil, nil, state.StartScene)
	require.NoError(t, err)
	defer g.Close()

	states, err := runFrames(t, g, len(session()))

	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, sessionStates, states)
}

func TestBuildGame_UnknownInitialScene(t *testing.T) {
	events := system.NewInputSystemWithSource(scripted(nil))
	_, err := buildGame(config.Default(), events, nil, nil, state.NoScene)
	assert.Error(t, err)
}

func TestRecordThenReplay(t *testing.T) {
	// Record a live session
	recorder := replay.NewRecorder(state.StartScene.String())
	events := system.NewInputSystemWithSource(scripted(session()))
	events.OnFrame = recorder.RecordFrame

	g, err := buildGame(config.Default(), events, nil, nil, state.StartScene)
	require.NoError(t, err)
	recorded, err := runFrames(t, g, len(session()))
	require.ErrorIs(t, err, ebiten.Termination)
	g.Close()

	assert.Equal(t, len(session()), recorder.FrameCount())

	filename := filepath.Join(t.TempDir(), "session.json")
	saveRecording(recorder, filename)

	// Play it back through a fresh game
	data, err := replay.LoadReplay(filename)
	require.NoError(t, err)
	replayer := replay.NewReplayer(*data)

	initial, err := state.ParseSceneState(replayer.Scene())
	require.NoError(t, err)

	g, err = buildGame(config.Default(), system.NewInputSystemWithSource(replayer.Source()), nil, nil, initial)
	require.NoError(t, err)
	defer g.Close()

	replayed, err := runFrames(t, g, replayer.TotalFrames())
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, recorded, replayed, "replay reproduces the recorded scene flow")
	assert.True(t, replayer.Done())
}
