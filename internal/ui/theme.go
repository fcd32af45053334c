package ui

import "image/color"

var (
	colBG       = color.RGBA{8, 8, 12, 255}
	colScanline = color.RGBA{0, 0, 0, 255}
	colOverlay  = color.RGBA{200, 200, 200, 255}
)
