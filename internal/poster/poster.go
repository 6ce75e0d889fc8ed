// Package poster composes themed, fixed-size text posters.
package poster

import (
	"image"
	"io"
	"log/slog"

	"github.com/rook-computer/postermaker/internal/render"
	"github.com/rook-computer/postermaker/internal/render/layout"
	"github.com/rook-computer/postermaker/internal/theme"
)

// Layout constants, in pixels.
const (
	Margin       = 50
	TitleY       = 80
	SubtitleGap  = 50
	BodyGap      = 60
	LineAdvance  = 30
	FooterHeight = 50
	ShadowOffset = 1

	// footerTextRise is how far above the bottom edge the footer text is centered.
	footerTextRise = 30
	qrInset        = 3
)

const (
	DefaultSubtitle = "Presented by AI Poster Generator"
	DefaultFooter   = "www.generatedposter.ai"
)

// Request is the input of one composition.
type Request struct {
	Title string
	Body  string
	Theme string
}

// Composer draws posters. It is safe for concurrent use: each call gets its
// own canvas and font faces.
type Composer struct {
	fonts    *render.FontSet
	fontCfg  render.FontConfig
	subtitle string
	footer   string
	footerQR bool
	logger   *slog.Logger
}

type Option func(*Composer)

// WithFonts selects the font files. Load failures fall back to the built-in
// bitmap face and are logged, never returned.
func WithFonts(cfg render.FontConfig) Option {
	return func(c *Composer) {
		c.fonts = nil
		c.fontCfg = cfg
	}
}

// WithFontSet uses already parsed fonts.
func WithFontSet(fs *render.FontSet) Option {
	return func(c *Composer) { c.fonts = fs }
}

func WithSubtitle(s string) Option {
	return func(c *Composer) { c.subtitle = s }
}

func WithFooterText(s string) Option {
	return func(c *Composer) { c.footer = s }
}

// WithFooterQR adds a QR code of the footer text to the right end of the footer.
func WithFooterQR(enabled bool) Option {
	return func(c *Composer) { c.footerQR = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(opts ...Option) *Composer {
	c := &Composer{
		subtitle: DefaultSubtitle,
		footer:   DefaultFooter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fonts == nil {
		fs, err := render.LoadFontSet(c.fontCfg)
		if err != nil {
			c.logger.Warn("font load failed, using built-in face", slog.String("error", err.Error()))
		}
		c.fonts = fs
	}
	return c
}

// Fonts reports the font set in use.
func (c *Composer) Fonts() *render.FontSet { return c.fonts }

// FooterQR reports whether footer QR codes are drawn.
func (c *Composer) FooterQR() bool { return c.footerQR }

// WithQR returns a copy of c with the footer QR code toggled.
func (c *Composer) WithQR(enabled bool) *Composer {
	cp := *c
	cp.footerQR = enabled
	return &cp
}

// Compose renders req onto a new PosterWidth×PosterHeight image.
func (c *Composer) Compose(req Request) *image.RGBA {
	faces := c.fonts.Faces()
	defer faces.Close()

	canvas := render.NewRasterCanvas(render.PosterWidth, render.PosterHeight, faces)
	c.Draw(canvas, req)
	return canvas.Image()
}

// Draw composes req onto canvas.
func (c *Composer) Draw(canvas render.Canvas, req Request) {
	t := theme.Resolve(req.Theme)
	width, height := canvas.Size()

	FillGradient(canvas, t.BackgroundTop, t.BackgroundBottom)

	centerX := width / 2
	render.DrawShadowedText(canvas, req.Title, centerX, TitleY, ShadowOffset, render.TextStyle{
		Color:  t.Text.Color(),
		Role:   render.FontTitle,
		Align:  render.TextAlignCenter,
		Anchor: render.AnchorMiddle,
	})

	subtitleY := TitleY + SubtitleGap
	render.DrawShadowedText(canvas, c.subtitle, centerX, subtitleY, ShadowOffset, render.TextStyle{
		Color:  t.Accent.Color(),
		Role:   render.FontSubtitle,
		Align:  render.TextAlignCenter,
		Anchor: render.AnchorMiddle,
	})

	bounds := image.Rect(0, 0, width, height)
	bodyStyle := render.TextStyle{Color: t.Text.Color(), Role: render.FontBody}
	y := subtitleY + BodyGap
	for _, line := range Wrap(req.Body, MaxChars(canvas, layout.Inset(bounds, Margin).Dx())) {
		canvas.DrawText(line, Margin, y, bodyStyle)
		y += LineAdvance
	}

	c.drawFooter(canvas, bounds)
}

func (c *Composer) drawFooter(canvas render.Canvas, bounds image.Rectangle) {
	_, footer := layout.SplitFooter(bounds, FooterHeight)
	canvas.FillRect(footer, render.Black)
	canvas.DrawText(c.footer, footer.Min.X+footer.Dx()/2, bounds.Max.Y-footerTextRise, render.TextStyle{
		Color:  render.White,
		Role:   render.FontSubtitle,
		Align:  render.TextAlignCenter,
		Anchor: render.AnchorMiddle,
	})

	if !c.footerQR {
		return
	}
	rect := layout.TrailingSquare(footer, qrInset)
	qr, err := render.GenerateQRCodeImage(c.footer, rect.Dx())
	if err != nil {
		c.logger.Warn("footer qr code skipped", slog.String("error", err.Error()))
		return
	}
	canvas.DrawImage(qr, rect)
}

// FillGradient paints a vertical gradient from top to bottom, one row at a time.
func FillGradient(canvas render.Canvas, top, bottom theme.RGB) {
	_, height := canvas.Size()
	for y := 0; y < height; y++ {
		canvas.FillRow(y, GradientAt(top, bottom, y, height).Color())
	}
}

// GradientAt returns the color of row y of a height-row gradient.
// Channels are interpolated independently and truncated.
func GradientAt(top, bottom theme.RGB, y, height int) theme.RGB {
	ratio := float64(y) / float64(height)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
	}
	return theme.RGB{
		R: mix(top.R, bottom.R),
		G: mix(top.G, bottom.G),
		B: mix(top.B, bottom.B),
	}
}

// MaxChars estimates how many body characters fit in width pixels, using
// the advance of "A" as the width of every character.
func MaxChars(m render.TextMeasurer, width int) int {
	advance := m.MeasureText("A", render.TextStyle{Role: render.FontBody}).Advance
	if advance <= 0 {
		return width
	}
	n := int(float64(width) / advance)
	if n < 1 {
		return 1
	}
	return n
}

var defaultComposer = New()

// Compose renders a poster with the embedded fonts and default literals.
// Unknown or empty theme names use the modern theme.
func Compose(title, body, themeName string) *image.RGBA {
	return defaultComposer.Compose(Request{Title: title, Body: body, Theme: themeName})
}
