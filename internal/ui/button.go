package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/playscene/internal/domain/geom"
)

// Button size in pixels
const (
	ButtonWidth  = 120
	ButtonHeight = 48
)

var (
	colorButtonFill    = color.RGBA{60, 110, 180, 255}
	colorButtonCaption = color.RGBA{240, 240, 240, 255}
)

// Button is a clickable rectangle with click and hover listeners.
// Its texture is named by key; the button draws itself as a filled
// rectangle with a caption.
type Button struct {
	base
	texture string
	name    string
	caption string
	alpha   uint8
	hovered bool
	face    *text.GoXFace

	listeners listeners
}

// NewButton creates an active, fully opaque button
func NewButton(texture, name string, typ ObjectType) *Button {
	return &Button{
		base:      newBase(typ),
		texture:   texture,
		name:      name,
		caption:   captionFor(typ, name),
		alpha:     255,
		face:      Face("Consolas", DefaultFontSize),
		listeners: listeners{},
	}
}

func captionFor(typ ObjectType, name string) string {
	switch typ {
	case TypeBackButton:
		return "Back"
	case TypeNextButton:
		return "Next"
	case TypeStartButton:
		return "Start"
	case TypeRestartButton:
		return "Restart"
	default:
		return name
	}
}

// Name returns the button's identifier
func (b *Button) Name() string { return b.name }

// Texture returns the texture key the button was created with
func (b *Button) Texture() string { return b.texture }

// Caption returns the text drawn on the button
func (b *Button) Caption() string { return b.caption }

// Alpha returns the current opacity (0-255)
func (b *Button) Alpha() uint8 { return b.alpha }

// SetAlpha sets the opacity (0-255)
func (b *Button) SetAlpha(a uint8) { b.alpha = a }

// Hovered reports whether the pointer is over the button
func (b *Button) Hovered() bool { return b.hovered }

// Bounds returns the screen rectangle centered on the button position
func (b *Button) Bounds() geom.Rect {
	return geom.Centered(b.transform.Position, ButtonWidth, ButtonHeight)
}

// AddEventListener registers fn to run when kind fires
func (b *Button) AddEventListener(kind EventKind, fn Listener) {
	b.listeners.add(kind, fn)
}

// ListenerCount returns how many listeners are registered for kind
func (b *Button) ListenerCount(kind EventKind) int {
	return b.listeners.count(kind)
}

// HandlePointer fires MouseOver when the pointer enters, MouseOut when it
// leaves, and Click when a press lands inside. Inactive buttons ignore the pointer.
func (b *Button) HandlePointer(mouse geom.Vec2, clicked bool) {
	if !b.active {
		b.hovered = false
		return
	}

	inside := b.Bounds().Contains(mouse)
	switch {
	case inside && !b.hovered:
		b.hovered = true
		b.listeners.fire(EventMouseOver)
	case !inside && b.hovered:
		b.hovered = false
		b.listeners.fire(EventMouseOut)
	}

	if inside && clicked {
		b.listeners.fire(EventClick)
	}
}

// Update is a no-op; buttons only change through pointer events
func (b *Button) Update(_ float64) {}

// Draw renders the button with its current alpha
func (b *Button) Draw(dst *ebiten.Image) {
	if !b.active {
		return
	}

	r := b.Bounds()
	fill := color.NRGBA{colorButtonFill.R, colorButtonFill.G, colorButtonFill.B, b.alpha}
	ebitenutil.DrawRect(dst, r.X, r.Y, r.W, r.H, fill)

	caption := color.NRGBA{colorButtonCaption.R, colorButtonCaption.G, colorButtonCaption.B, b.alpha}
	drawCentered(dst, b.caption, b.face, b.transform.Position.X, b.transform.Position.Y, caption)
}
