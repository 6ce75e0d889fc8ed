package render

import "image/color"

// Fixed poster canvas. Every poster has exactly these dimensions.
const (
	PosterWidth  = 600
	PosterHeight = 900
)

var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
