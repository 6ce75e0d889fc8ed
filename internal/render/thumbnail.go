package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Thumbnail scales img down to width pixels wide, keeping the aspect ratio.
// Widths outside (0, img width] return the image unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || width >= img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// Letterbox fits img inside a width×height frame, centered on black.
func Letterbox(img image.Image, width, height int) *image.NRGBA {
	fitted := imaging.Fit(img, width, height, imaging.Lanczos)
	frame := imaging.New(width, height, color.NRGBA{A: 0xFF})
	return imaging.PasteCenter(frame, fitted)
}
