package render

import (
	"image"
	"image/color"
)

// TextMeasurer measures text in one of the canvas font roles.
type TextMeasurer interface {
	MeasureText(text string, style TextStyle) TextMetrics
}

// Canvas is the drawing surface a poster is composed on. It hides the
// raster and font libraries from layout code.
type Canvas interface {
	TextMeasurer

	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	// FillRow paints every pixel of row y with c.
	FillRow(y int, c color.Color)
	FillRect(rect image.Rectangle, c color.Color)

	// DrawText draws text anchored at (x, y) according to style.
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// DrawImage scales img into rect.
	DrawImage(img image.Image, rect image.Rectangle)
}

// FontRole selects one of the faces a canvas was built with.
type FontRole int

const (
	FontBody FontRole = iota
	FontTitle
	FontSubtitle
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// VerticalAnchor controls how the y coordinate of DrawText is interpreted.
type VerticalAnchor int

const (
	// AnchorTop places the ascender line at y.
	AnchorTop VerticalAnchor = iota
	// AnchorMiddle places the midpoint between ascender and descender at y.
	AnchorMiddle
	// AnchorBaseline places the baseline at y.
	AnchorBaseline
)

// TextStyle describes how to render text.
// For X, Align controls how x is interpreted; for Y, Anchor does.
type TextStyle struct {
	Color  color.Color
	Role   FontRole
	Align  TextAlign
	Anchor VerticalAnchor
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int

	// Advance is the unrounded horizontal advance in pixels.
	Advance float64
}
