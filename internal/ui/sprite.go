package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/playscene/internal/domain/geom"
)

var (
	colorPlaneBody = color.RGBA{200, 200, 210, 255}
	colorPlaneWing = color.RGBA{150, 150, 170, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorPlayerEye = color.RGBA{20, 20, 20, 255}
)

// Plane is the sprite moved along the play scene's motion path
type Plane struct {
	base
}

// NewPlane creates a plane at the origin
func NewPlane() *Plane {
	return &Plane{base: newBase(TypePlane)}
}

// Update is a no-op; the owning scene positions the plane
func (p *Plane) Update(_ float64) {}

// Draw renders the plane as a fuselage with a crossing wing
func (p *Plane) Draw(dst *ebiten.Image) {
	if !p.active {
		return
	}
	pos := p.transform.Position
	ebitenutil.DrawRect(dst, pos.X-8, pos.Y-32, 16, 64, colorPlaneBody)
	ebitenutil.DrawRect(dst, pos.X-32, pos.Y-8, 64, 16, colorPlaneWing)
}

// Player sizes and default speed
const (
	PlayerWidth  = 32
	PlayerHeight = 48
	PlayerSpeed  = 240.0 // pixels per second at full input
)

// Player is the controllable sprite. It moves horizontally within [MinX, MaxX].
type Player struct {
	base
	Speed       float64
	MinX        float64
	MaxX        float64
	FacingRight bool
}

// NewPlayer creates a player bounded to [0, maxX]
func NewPlayer(maxX float64) *Player {
	return &Player{
		base:        newBase(TypePlayer),
		Speed:       PlayerSpeed,
		MinX:        PlayerWidth / 2,
		MaxX:        maxX - PlayerWidth/2,
		FacingRight: true,
	}
}

// Move shifts the player by dir*Speed*dt, dir in [-1, 1]
func (p *Player) Move(dir, dt float64) {
	if dir == 0 {
		return
	}
	p.FacingRight = dir > 0

	pos := &p.transform.Position
	pos.X = geom.Clamp(pos.X+geom.Clamp(dir, -1, 1)*p.Speed*dt, p.MinX, p.MaxX)
}

// Update is a no-op; the owning scene feeds Move from input
func (p *Player) Update(_ float64) {}

// Draw renders the player as a body with an eye on its facing side
func (p *Player) Draw(dst *ebiten.Image) {
	if !p.active {
		return
	}
	pos := p.transform.Position
	ebitenutil.DrawRect(dst, pos.X-PlayerWidth/2, pos.Y-PlayerHeight/2, PlayerWidth, PlayerHeight, colorPlayer)

	eyeX := pos.X + 6
	if !p.FacingRight {
		eyeX = pos.X - 10
	}
	ebitenutil.DrawRect(dst, eyeX, pos.Y-PlayerHeight/2+8, 4, 4, colorPlayerEye)
}
