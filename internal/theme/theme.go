package theme

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Color returns c as a fully opaque color.RGBA.
func (c RGB) Color() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

// Hex formats c as #rrggbb.
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Theme is a named palette applied uniformly to one poster.
type Theme struct {
	Name             string
	BackgroundTop    RGB
	BackgroundBottom RGB
	Text             RGB
	Accent           RGB
}

const (
	Modern   = "modern"
	Sunset   = "sunset"
	Forest   = "forest"
	Midnight = "midnight"

	// Default is used for empty or unknown theme names.
	Default = Modern
)

var white = RGB{255, 255, 255}

var builtins = map[string]Theme{
	Modern: {
		Name:             Modern,
		BackgroundTop:    RGB{58, 123, 213},
		BackgroundBottom: RGB{0, 210, 255},
		Text:             white,
		Accent:           white,
	},
	Sunset: {
		Name:             Sunset,
		BackgroundTop:    RGB{255, 94, 98},
		BackgroundBottom: RGB{255, 195, 113},
		Text:             white,
		Accent:           white,
	},
	Forest: {
		Name:             Forest,
		BackgroundTop:    RGB{34, 139, 34},
		BackgroundBottom: RGB{107, 142, 35},
		Text:             white,
		Accent:           white,
	},
	Midnight: {
		Name:             Midnight,
		BackgroundTop:    RGB{25, 25, 112},
		BackgroundBottom: RGB{0, 0, 50},
		Text:             RGB{230, 230, 250},
		Accent:           RGB{173, 216, 230},
	},
}

// order is the presentation order used by UIs.
var order = []string{Modern, Sunset, Forest, Midnight}

// Lookup returns the theme registered under name. Matching is case-sensitive.
func Lookup(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Resolve returns the named theme, or the default theme when name is empty or unknown.
func Resolve(name string) Theme {
	if t, ok := builtins[name]; ok {
		return t
	}
	return builtins[Default]
}

// Names returns the built-in theme names in presentation order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// All returns every built-in theme in presentation order.
func All() []Theme {
	out := make([]Theme, 0, len(order))
	for _, name := range order {
		out = append(out, builtins[name])
	}
	return out
}
