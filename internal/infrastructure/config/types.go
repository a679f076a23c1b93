package config

import (
	"errors"
	"fmt"
)

// Launch parameter ranges exposed by the debug panel
const (
	MaxLaunchAngle  = 360.0
	MaxLaunchSpeed  = 1000.0
	MaxLaunchOrigin = 800.0
)

// GameConfig is the root config for game.json / game.yaml
type GameConfig struct {
	Display DisplayConfig `json:"display" yaml:"display"`
	Motion  MotionConfig  `json:"motion" yaml:"motion"`
	Launch  LaunchConfig  `json:"launch" yaml:"launch"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
	Audio   AudioConfig   `json:"audio" yaml:"audio"`
}

type DisplayConfig struct {
	Title        string `json:"title" yaml:"title"`
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight"`
	Scale        int    `json:"scale" yaml:"scale"`
	Framerate    int    `json:"framerate" yaml:"framerate"`
}

// MotionConfig drives the plane's path: x = D + cos(t*A)*B, y = C + sin(t*A)*B
type MotionConfig struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
	D float64 `json:"d" yaml:"d"`
}

type LaunchConfig struct {
	Angle  float64     `json:"angle" yaml:"angle"` // Degrees
	Speed  float64     `json:"speed" yaml:"speed"`
	Origin PointConfig `json:"origin" yaml:"origin"`
}

type PointConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type UIConfig struct {
	HoverAlpha       uint8   `json:"hoverAlpha" yaml:"hoverAlpha"`
	LabelFadeSeconds float64 `json:"labelFadeSeconds" yaml:"labelFadeSeconds"`
	DebugVisible     bool    `json:"debugVisible" yaml:"debugVisible"`
}

type AudioConfig struct {
	Enabled        bool    `json:"enabled" yaml:"enabled"`
	ClickFrequency float64 `json:"clickFrequency" yaml:"clickFrequency"` // Hz
	ClickMillis    int     `json:"clickMillis" yaml:"clickMillis"`
	Volume         float64 `json:"volume" yaml:"volume"`
}

// Default returns the built-in configuration. Loaded files overlay it.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:        "Play Scene",
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Motion: MotionConfig{A: 1, B: 100, C: 100, D: 100},
		Launch: LaunchConfig{
			Angle:  0,
			Speed:  200,
			Origin: PointConfig{X: 0, Y: 400},
		},
		UI: UIConfig{
			HoverAlpha:       128,
			LabelFadeSeconds: 0.5,
		},
		Audio: AudioConfig{
			Enabled:        true,
			ClickFrequency: 880,
			ClickMillis:    40,
			Volume:         0.3,
		},
	}
}

// Timestep returns seconds per frame at the configured framerate
func (c *GameConfig) Timestep() float64 {
	return 1.0 / float64(c.Display.Framerate)
}

// Validate checks the config for values the game cannot run with
func (c *GameConfig) Validate() error {
	var errs []error

	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight))
	}
	if d.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display: scale must be positive, got %d", d.Scale))
	}
	if d.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display: framerate must be positive, got %d", d.Framerate))
	}

	l := c.Launch
	if l.Angle < 0 || l.Angle > MaxLaunchAngle {
		errs = append(errs, fmt.Errorf("launch: angle %v outside [0, %v]", l.Angle, MaxLaunchAngle))
	}
	if l.Speed < 0 || l.Speed > MaxLaunchSpeed {
		errs = append(errs, fmt.Errorf("launch: speed %v outside [0, %v]", l.Speed, MaxLaunchSpeed))
	}
	if outside(l.Origin.X, MaxLaunchOrigin) || outside(l.Origin.Y, MaxLaunchOrigin) {
		errs = append(errs, fmt.Errorf("launch: origin (%v, %v) outside [0, %v]", l.Origin.X, l.Origin.Y, MaxLaunchOrigin))
	}

	if c.UI.LabelFadeSeconds < 0 {
		errs = append(errs, fmt.Errorf("ui: labelFadeSeconds must not be negative, got %v", c.UI.LabelFadeSeconds))
	}

	return errors.Join(errs...)
}

func outside(v, hi float64) bool {
	return v < 0 || v > hi
}
