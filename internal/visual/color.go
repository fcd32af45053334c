package visual

import (
	"image/color"
	"math"

	"github.com/ingyamilmolinar/seedloop/internal/utils"
)

// HSV is a colour with all components in [0,1].
type HSV struct{ H, S, V float64 }

// RGBA converts to an opaque 8-bit colour.
func (c HSV) RGBA() color.RGBA {
	h := math.Mod(c.H, 1)
	if h < 0 {
		h++
	}
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = c.V, t, p
	case 1:
		r, g, b = q, c.V, p
	case 2:
		r, g, b = p, c.V, t
	case 3:
		r, g, b = p, q, c.V
	case 4:
		r, g, b = t, p, c.V
	default:
		r, g, b = c.V, p, q
	}
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

func to8(v float64) uint8 {
	return uint8(utils.Clamp(v, 0, 1) * 255)
}
