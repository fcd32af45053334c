package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The draw primitives are variables so tests can capture calls without a
// graphics device.
var (
	drawRect = func(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
	}
	drawCircle = func(dst *ebiten.Image, x, y, r, stroke float64, c color.Color) {
		vector.StrokeCircle(dst, float32(x), float32(y), float32(r), float32(stroke), c, true)
	}
	drawLine = func(dst *ebiten.Image, x0, y0, x1, y1, stroke float64, c color.Color) {
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(stroke), c, true)
	}
	drawText = func(dst *ebiten.Image, s string, x, y int) {
		ebitenutil.DebugPrintAt(dst, s, x, y)
	}
)

func fade(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
