// Package geom provides the small 2D math used by scenes and widgets.
package geom

import "math"

// Deg2Rad converts degrees to radians when multiplied
const Deg2Rad = math.Pi / 180

// Vec2 is a 2D point or displacement in screen pixels
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// AngleLengthToVector converts an angle in degrees and a magnitude
// into a Cartesian displacement.
func AngleLengthToVector(angle, magnitude float64) Vec2 {
	rad := angle * Deg2Rad
	return Vec2{
		X: math.Cos(rad) * magnitude,
		Y: math.Sin(rad) * magnitude,
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Centered returns a w*h rectangle centered on c
func Centered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Contains reports whether p lies inside r (right and bottom edges excluded)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}
