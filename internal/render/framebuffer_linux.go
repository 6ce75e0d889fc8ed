//go:build linux && cgo

package render

import (
	"fmt"
	"image"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
)

// ShowOnFramebuffer letterboxes img onto the framebuffer device at path.
func ShowOnFramebuffer(path string, img image.Image) error {
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	frame := Letterbox(img, bounds.Dx(), bounds.Dy())
	draw.Draw(dev, bounds, frame, image.Point{}, draw.Src)
	return nil
}
