package ui

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is the point size used for labels and button captions
const DefaultFontSize = 16

type faceKey struct {
	name string
	size float64
}

var faceCache = map[faceKey]*text.GoXFace{}

// Face returns a text face for the named font at size points.
// Monospace names map to Go Mono, everything else to Go Regular.
// If the font cannot be parsed the 7x13 bitmap face is used.
func Face(name string, size float64) *text.GoXFace {
	key := faceKey{name: name, size: size}
	if face, ok := faceCache[key]; ok {
		return face
	}

	xface, err := newFace(fontData(name), size)
	if err != nil {
		log.Printf("Failed to load font %q, using fallback: %v", name, err)
		xface = basicfont.Face7x13
	}

	face := text.NewGoXFace(xface)
	faceCache[key] = face
	return face
}

func fontData(name string) []byte {
	switch name {
	case "Consolas", "Mono", "Monospace":
		return gomono.TTF
	default:
		return goregular.TTF
	}
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// measure returns the rendered width and line height of s
func measure(face text.Face, s string) (w, h float64) {
	m := face.Metrics()
	return text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
}

// drawCentered draws s centered on (cx, cy)
func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}
