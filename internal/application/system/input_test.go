package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/playscene/internal/domain/geom"
)

// scriptedSource returns the given frames in order, then empty snapshots
func scriptedSource(frames ...InputState) Source {
	i := 0
	return func() InputState {
		if i >= len(frames) {
			return InputState{}
		}
		f := frames[i]
		i++
		return f
	}
}

func TestInputSystem_IsKeyDown_RepeatsWhileHeld(t *testing.T) {
	held := InputState{Keys: []ebiten.Key{ebiten.KeyEscape}}
	s := NewInputSystemWithSource(scriptedSource(held, held, held))

	for i := 0; i < 3; i++ {
		s.Update()
		assert.True(t, s.IsKeyDown(ebiten.KeyEscape), "frame %d", i)
	}

	s.Update()
	assert.False(t, s.IsKeyDown(ebiten.KeyEscape), "released after script ends")
}

func TestInputSystem_IsKeyJustPressed(t *testing.T) {
	down := InputState{Keys: []ebiten.Key{ebiten.KeyBackquote}}
	s := NewInputSystemWithSource(scriptedSource(down, down, InputState{}, down))

	s.Update()
	assert.True(t, s.IsKeyJustPressed(ebiten.KeyBackquote), "first frame down")

	s.Update()
	assert.False(t, s.IsKeyJustPressed(ebiten.KeyBackquote), "still held")
	assert.True(t, s.IsKeyDown(ebiten.KeyBackquote))

	s.Update()
	assert.False(t, s.IsKeyJustPressed(ebiten.KeyBackquote), "released")

	s.Update()
	assert.True(t, s.IsKeyJustPressed(ebiten.KeyBackquote), "pressed again")
}

func TestInputSystem_StateAndMouse(t *testing.T) {
	frame := InputState{MouseX: 120, MouseY: 45, MouseDown: true, MouseClick: true, Axis: -0.5}
	s := NewInputSystemWithSource(scriptedSource(frame))

	assert.Equal(t, InputState{}, s.State(), "empty before first update")

	s.Update()
	assert.Equal(t, frame, s.State())
	assert.Equal(t, geom.Vec2{X: 120, Y: 45}, s.MousePosition())
}

func TestInputSystem_OnFrameHook(t *testing.T) {
	frames := []InputState{{MouseX: 1}, {MouseX: 2}}
	s := NewInputSystemWithSource(scriptedSource(frames...))

	var seen []int
	s.OnFrame = func(in InputState) {
		seen = append(seen, in.MouseX)
	}

	s.Update()
	s.Update()
	assert.Equal(t, []int{1, 2}, seen)
}

func TestInputState_KeyDown(t *testing.T) {
	in := InputState{Keys: []ebiten.Key{ebiten.KeyA, ebiten.Key1}}

	assert.True(t, in.KeyDown(ebiten.KeyA))
	assert.True(t, in.KeyDown(ebiten.Key1))
	assert.False(t, in.KeyDown(ebiten.Key2))
}
