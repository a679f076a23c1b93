package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var colorLabel = color.RGBA{255, 255, 255, 255}

// Label is a line of text centered on its position
type Label struct {
	base
	text     string
	fontName string
	face     *text.GoXFace
	color    color.RGBA
	alpha    uint8
	fade     *gween.Tween
}

// NewLabel creates a white, fully opaque label using the named font
func NewLabel(s, fontName string) *Label {
	return NewLabelSized(s, fontName, DefaultFontSize)
}

// NewLabelSized creates a label with an explicit point size
func NewLabelSized(s, fontName string, size float64) *Label {
	return &Label{
		base:     newBase(TypeLabel),
		text:     s,
		fontName: fontName,
		face:     Face(fontName, size),
		color:    colorLabel,
		alpha:    255,
	}
}

// Text returns the label text
func (l *Label) Text() string { return l.text }

// SetText replaces the label text
func (l *Label) SetText(s string) { l.text = s }

// FontName returns the font the label was created with
func (l *Label) FontName() string { return l.fontName }

// SetColor sets the text color; its alpha is ignored in favor of the label alpha
func (l *Label) SetColor(c color.RGBA) { l.color = c }

// Alpha returns the current opacity (0-255)
func (l *Label) Alpha() uint8 { return l.alpha }

// SetAlpha sets the opacity and cancels any running fade
func (l *Label) SetAlpha(a uint8) {
	l.alpha = a
	l.fade = nil
}

// Fading reports whether a fade is still running
func (l *Label) Fading() bool { return l.fade != nil }

// FadeIn animates the alpha from 0 to 255 over duration seconds
func (l *Label) FadeIn(duration float32) {
	l.alpha = 0
	l.fade = gween.New(0, 255, duration, ease.OutQuad)
}

// Update advances the fade tween
func (l *Label) Update(dt float64) {
	if l.fade == nil {
		return
	}

	v, finished := l.fade.Update(float32(dt))
	l.alpha = toAlpha(v)
	if finished {
		l.alpha = 255
		l.fade = nil
	}
}

func toAlpha(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Draw renders the label centered on its position
func (l *Label) Draw(dst *ebiten.Image) {
	if !l.active || l.alpha == 0 {
		return
	}

	pos := l.transform.Position
	drawCentered(dst, l.text, l.face, pos.X, pos.Y, color.NRGBA{l.color.R, l.color.G, l.color.B, l.alpha})
}
