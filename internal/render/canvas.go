package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas is a Canvas backed by an in-memory RGBA image.
type RasterCanvas struct {
	img   *image.RGBA
	faces Faces
}

var _ Canvas = (*RasterCanvas)(nil)

func NewRasterCanvas(width, height int, faces Faces) *RasterCanvas {
	return &RasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: faces,
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA { return c.img }

func (c *RasterCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *RasterCanvas) FillRow(y int, col color.Color) {
	b := c.img.Bounds()
	c.FillRect(image.Rect(b.Min.X, y, b.Max.X, y+1), col)
}

func (c *RasterCanvas) FillRect(rect image.Rectangle, col color.Color) {
	rect = rect.Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *RasterCanvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.faces.face(style.Role)
	m := face.Metrics()
	advance := font.MeasureString(face, text)
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	return TextMetrics{
		Width:      advance.Ceil(),
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: m.Height.Ceil(),
		Advance:    float64(advance) / 64,
	}
}

func (c *RasterCanvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	metrics := c.MeasureText(text, style)
	if text == "" {
		return metrics
	}
	switch style.Align {
	case TextAlignCenter:
		x -= metrics.Width / 2
	case TextAlignRight:
		x -= metrics.Width
	}
	baseline := y
	switch style.Anchor {
	case AnchorTop:
		baseline = y + metrics.Ascent
	case AnchorMiddle:
		baseline = y + (metrics.Ascent-metrics.Descent)/2
	}
	col := style.Color
	if col == nil {
		col = Black
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.faces.face(style.Role),
		Dot:  fixed.P(x, baseline),
	}
	drawer.DrawString(text)
	return metrics
}

func (c *RasterCanvas) DrawImage(img image.Image, rect image.Rectangle) {
	if img == nil || img.Bounds().Empty() || rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}

// DrawShadowedText draws a black copy of text offset by (offset, offset)
// and then the text itself in style.Color at (x, y).
func DrawShadowedText(c Canvas, text string, x, y, offset int, style TextStyle) TextMetrics {
	shadow := style
	shadow.Color = Black
	c.DrawText(text, x+offset, y+offset, shadow)
	return c.DrawText(text, x, y, style)
}
