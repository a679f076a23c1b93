package config

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadShippedConfig(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 100.0, cfg.Motion.B)
	assert.Equal(t, 200.0, cfg.Launch.Speed)
	assert.Equal(t, PointConfig{X: 0, Y: 400}, cfg.Launch.Origin)
	assert.Equal(t, uint8(128), cfg.UI.HoverAlpha)
}

func TestLoader_JSONOverlaysDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"launch": {"angle": 45}, "display": {"framerate": 30}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadGame("game.json")
	require.NoError(t, err)

	assert.Equal(t, 45.0, cfg.Launch.Angle)
	assert.Equal(t, 200.0, cfg.Launch.Speed, "unset fields keep defaults")
	assert.Equal(t, 30, cfg.Display.Framerate)
	assert.InDelta(t, 1.0/30.0, cfg.Timestep(), 1e-12)
	assert.Equal(t, 800, cfg.Display.ScreenWidth)
}

func TestLoader_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte(`
display:
  title: YAML Scene
  screenWidth: 1024
motion:
  a: 2
  b: 50
launch:
  origin:
    x: 120
    y: 300
audio:
  enabled: false
`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, "YAML Scene", cfg.Display.Title)
	assert.Equal(t, 1024, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, MotionConfig{A: 2, B: 50, C: 100, D: 100}, cfg.Motion)
	assert.Equal(t, PointConfig{X: 120, Y: 300}, cfg.Launch.Origin)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoader_LoadAllPrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"display": {"title": "json"}}`)},
		"game.yaml": {Data: []byte("display:\n  title: yaml\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Display.Title)
}

func TestLoader_LoadAllMissing(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadAll()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json":    {Data: []byte(`{"display": `)},
		"game.toml":   {Data: []byte(`title = "x"`)},
		"invalid.yml": {Data: []byte("display:\n  framerate: 0\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadGame("bad.json")
	assert.ErrorContains(t, err, "failed to parse bad.json")

	_, err = loader.LoadGame("game.toml")
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = loader.LoadGame("invalid.yml")
	assert.ErrorContains(t, err, "framerate must be positive")

	_, err = loader.LoadGame("missing.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		errMsg string
	}{
		{"defaults are valid", func(*GameConfig) {}, ""},
		{"zero width", func(c *GameConfig) { c.Display.ScreenWidth = 0 }, "screen size"},
		{"zero scale", func(c *GameConfig) { c.Display.Scale = 0 }, "scale"},
		{"angle too large", func(c *GameConfig) { c.Launch.Angle = 361 }, "angle"},
		{"negative speed", func(c *GameConfig) { c.Launch.Speed = -1 }, "speed"},
		{"origin out of range", func(c *GameConfig) { c.Launch.Origin.Y = 801 }, "origin"},
		{"negative fade", func(c *GameConfig) { c.UI.LabelFadeSeconds = -1 }, "labelFadeSeconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
