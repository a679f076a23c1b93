package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestAngleLengthToVector_Cardinal(t *testing.T) {
	tests := []struct {
		name      string
		angle     float64
		magnitude float64
		want      Vec2
	}{
		{"zero degrees", 0, 200, Vec2{200, 0}},
		{"ninety degrees", 90, 200, Vec2{0, 200}},
		{"one eighty", 180, 50, Vec2{-50, 0}},
		{"two seventy", 270, 10, Vec2{0, -10}},
		{"zero magnitude", 45, 0, Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleLengthToVector(tt.angle, tt.magnitude)
			assert.InDelta(t, tt.want.X, got.X, epsilon)
			assert.InDelta(t, tt.want.Y, got.Y, epsilon)
		})
	}
}

func TestAngleLengthToVector_MatchesFormula(t *testing.T) {
	for angle := 0.0; angle <= 360; angle += 7.5 {
		for _, m := range []float64{1, 33.3, 1000} {
			got := AngleLengthToVector(angle, m)
			assert.InDelta(t, m*math.Cos(angle*math.Pi/180), got.X, epsilon)
			assert.InDelta(t, m*math.Sin(angle*math.Pi/180), got.Y, epsilon)
			assert.InDelta(t, m, got.Len(), 1e-6, "length preserved at %v deg", angle)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 360))
	assert.Equal(t, 360.0, Clamp(361, 0, 360))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 360))
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 2}

	assert.Equal(t, Vec2{4, 6}, a.Add(b))
	assert.Equal(t, Vec2{2, 2}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Scale(2))
	assert.Equal(t, 5.0, a.Len())
}

func TestRect_Contains(t *testing.T) {
	r := Centered(Vec2{100, 100}, 20, 10)

	assert.Equal(t, Rect{X: 90, Y: 95, W: 20, H: 10}, r)
	assert.True(t, r.Contains(Vec2{100, 100}))
	assert.True(t, r.Contains(Vec2{90, 95}), "top-left edge is inside")
	assert.False(t, r.Contains(Vec2{110, 100}), "right edge is outside")
	assert.False(t, r.Contains(Vec2{100, 105}), "bottom edge is outside")
}
