//go:build !linux || !cgo

package render

import (
	"errors"
	"image"
)

// ShowOnFramebuffer is only available on Linux.
func ShowOnFramebuffer(path string, img image.Image) error {
	return errors.New("framebuffer preview is only supported on linux")
}
