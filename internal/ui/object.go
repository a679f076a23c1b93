// Package ui provides the display objects scenes are built from: sprites,
// buttons and labels. Objects draw themselves with ebiten and carry their
// own event listeners.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playscene/internal/domain/geom"
)

// ObjectType tags a display object with its role in a scene
type ObjectType int

const (
	TypeNone ObjectType = iota
	TypePlane
	TypePlayer
	TypeBackButton
	TypeNextButton
	TypeStartButton
	TypeRestartButton
	TypeLabel
)

// String returns the string representation of the object type
func (t ObjectType) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypePlane:
		return "Plane"
	case TypePlayer:
		return "Player"
	case TypeBackButton:
		return "BackButton"
	case TypeNextButton:
		return "NextButton"
	case TypeStartButton:
		return "StartButton"
	case TypeRestartButton:
		return "RestartButton"
	case TypeLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Transform holds an object's placement. Position is the object's center.
type Transform struct {
	Position geom.Vec2
}

// Object is anything a scene can own in its display list
type Object interface {
	Transform() *Transform
	Type() ObjectType
	Active() bool
	SetActive(active bool)
	Update(dt float64)
	Draw(dst *ebiten.Image)
}

// PointerTarget is implemented by objects that react to the mouse
type PointerTarget interface {
	HandlePointer(mouse geom.Vec2, clicked bool)
}

// base carries the state shared by every display object
type base struct {
	transform Transform
	typ       ObjectType
	active    bool
}

func newBase(typ ObjectType) base {
	return base{typ: typ, active: true}
}

// Transform returns the object's transform for in-place edits
func (b *base) Transform() *Transform { return &b.transform }

// Type returns the object's type tag
func (b *base) Type() ObjectType { return b.typ }

// Active reports whether the object updates, draws and takes input
func (b *base) Active() bool { return b.active }

// SetActive enables or disables the object
func (b *base) SetActive(active bool) { b.active = active }
