// Package motion provides the parametric motion used by the play scene's plane.
package motion

import (
	"math"

	"github.com/younwookim/playscene/internal/domain/geom"
)

// DefaultTimestep is the fixed time advanced per frame (60 FPS)
const DefaultTimestep = 1.0 / 60.0

// Params configures the sinusoidal path.
// A is the angular rate, B the amplitude, C and D the vertical and
// horizontal offsets, Dt the time advanced per Step.
type Params struct {
	A  float64
	B  float64
	C  float64
	D  float64
	Dt float64
}

// DefaultParams returns the path used by the play scene
func DefaultParams() Params {
	return Params{A: 1, B: 100, C: 100, D: 100, Dt: DefaultTimestep}
}

// Oscillator walks a point around a circle:
//
//	x = D + cos(T*A)*B
//	y = C + sin(T*A)*B
type Oscillator struct {
	Params
	T float64
}

// NewOscillator creates an oscillator at T=0
func NewOscillator(p Params) *Oscillator {
	return &Oscillator{Params: p}
}

// Position returns the point for the current T
func (o *Oscillator) Position() geom.Vec2 {
	return geom.Vec2{
		X: o.D + math.Cos(o.T*o.A)*o.B,
		Y: o.C + math.Sin(o.T*o.A)*o.B,
	}
}

// Step samples the current position and then advances T by Dt
func (o *Oscillator) Step() geom.Vec2 {
	pos := o.Position()
	o.T += o.Dt
	return pos
}

// Reset rewinds T to zero
func (o *Oscillator) Reset() {
	o.T = 0
}
