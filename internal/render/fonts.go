package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Point sizes of the three font roles, rendered at 72 DPI so that one
// point is one pixel.
const (
	TitleSize    = 48
	SubtitleSize = 24
	BodySize     = 20

	fontDPI = 72
)

// FontConfig names the TrueType files used for the bold and regular faces.
// Empty paths select the embedded Go fonts.
type FontConfig struct {
	BoldPath    string `yaml:"bold,omitempty" json:"bold,omitempty"`
	RegularPath string `yaml:"regular,omitempty" json:"regular,omitempty"`
}

// FontSet holds parsed fonts. Parsed fonts are read-only and can be shared
// between goroutines; faces cannot, so callers obtain fresh Faces per canvas.
type FontSet struct {
	bold    *truetype.Font
	regular *truetype.Font
}

// LoadFontSet parses the configured fonts. On any failure it returns the
// fallback set together with the error, so callers can log and carry on.
func LoadFontSet(cfg FontConfig) (*FontSet, error) {
	bold, err := loadFont(cfg.BoldPath, gobold.TTF)
	if err != nil {
		return FallbackFontSet(), fmt.Errorf("bold font: %w", err)
	}
	regular, err := loadFont(cfg.RegularPath, goregular.TTF)
	if err != nil {
		return FallbackFontSet(), fmt.Errorf("regular font: %w", err)
	}
	return &FontSet{bold: bold, regular: regular}, nil
}

// FallbackFontSet renders every role with the built-in 7x13 bitmap face.
func FallbackFontSet() *FontSet { return &FontSet{} }

func (fs *FontSet) IsFallback() bool {
	return fs == nil || fs.bold == nil || fs.regular == nil
}

// Name describes the set for status output.
func (fs *FontSet) Name() string {
	if fs.IsFallback() {
		return "basicfont"
	}
	return "truetype"
}

// Faces returns new faces for the title, subtitle and body roles.
func (fs *FontSet) Faces() Faces {
	if fs.IsFallback() {
		return FallbackFaces()
	}
	return Faces{
		Title:    newFace(fs.bold, TitleSize),
		Subtitle: newFace(fs.regular, SubtitleSize),
		Body:     newFace(fs.regular, BodySize),
	}
}

// Faces maps each FontRole to a font.Face.
type Faces struct {
	Title    font.Face
	Subtitle font.Face
	Body     font.Face
}

func FallbackFaces() Faces {
	return Faces{Title: basicfont.Face7x13, Subtitle: basicfont.Face7x13, Body: basicfont.Face7x13}
}

func (f Faces) face(role FontRole) font.Face {
	var face font.Face
	switch role {
	case FontTitle:
		face = f.Title
	case FontSubtitle:
		face = f.Subtitle
	default:
		face = f.Body
	}
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}

func (f Faces) Close() error {
	for _, face := range []font.Face{f.Title, f.Subtitle, f.Body} {
		if face == nil {
			continue
		}
		if err := face.Close(); err != nil {
			return err
		}
	}
	return nil
}

func loadFont(path string, embedded []byte) (*truetype.Font, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return f, nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
}
