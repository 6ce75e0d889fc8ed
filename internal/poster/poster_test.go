package poster

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rook-computer/postermaker/internal/render"
	"github.com/rook-computer/postermaker/internal/theme"
)

func TestComposeSize(t *testing.T) {
	for _, name := range append(theme.Names(), "", "unknown") {
		t.Run(name, func(t *testing.T) {
			img := Compose("Live Fully", "Life is great.", name)
			if b := img.Bounds(); b.Dx() != render.PosterWidth || b.Dy() != render.PosterHeight {
				t.Errorf("bounds = %v, want 600x900", b)
			}
		})
	}
}

func TestComposeUnknownThemeMatchesModern(t *testing.T) {
	want := Compose("Live Fully", "Life is great.", theme.Modern)
	for _, name := range []string{"", "unknown", "Modern"} {
		got := Compose("Live Fully", "Life is great.", name)
		if !bytes.Equal(want.Pix, got.Pix) {
			t.Errorf("theme %q differs from modern", name)
		}
	}
}

func TestComposeThemesDiffer(t *testing.T) {
	modern := Compose("", "", theme.Modern)
	sunset := Compose("", "", theme.Sunset)
	if bytes.Equal(modern.Pix, sunset.Pix) {
		t.Error("modern and sunset render identically")
	}
}

func TestComposeEmptyInputs(t *testing.T) {
	img := Compose("", "", "")
	if img.Bounds().Dx() != render.PosterWidth || img.Bounds().Dy() != render.PosterHeight {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	top := theme.Resolve(theme.Modern).BackgroundTop
	if got := img.RGBAAt(0, 0); got != top.Color() {
		t.Errorf("first row = %v, want %v", got, top.Color())
	}
}

func TestGradientMonotonic(t *testing.T) {
	for _, th := range theme.All() {
		t.Run(th.Name, func(t *testing.T) {
			img := Compose("", "", th.Name)
			prev := img.RGBAAt(0, 0)
			for y := 1; y < render.PosterHeight-FooterHeight; y++ {
				cur := img.RGBAAt(0, y)
				checkMonotonic(t, "R", th.BackgroundTop.R, th.BackgroundBottom.R, prev.R, cur.R, y)
				checkMonotonic(t, "G", th.BackgroundTop.G, th.BackgroundBottom.G, prev.G, cur.G, y)
				checkMonotonic(t, "B", th.BackgroundTop.B, th.BackgroundBottom.B, prev.B, cur.B, y)
				prev = cur
			}
		})
	}
}

func checkMonotonic(t *testing.T, channel string, top, bottom, prev, cur uint8, y int) {
	t.Helper()
	if top <= bottom && cur < prev {
		t.Fatalf("%s decreased at y=%d: %d -> %d", channel, y, prev, cur)
	}
	if top >= bottom && cur > prev {
		t.Fatalf("%s increased at y=%d: %d -> %d", channel, y, prev, cur)
	}
}

func TestGradientAt(t *testing.T) {
	top := theme.RGB{R: 58, G: 123, B: 213}
	bottom := theme.RGB{R: 0, G: 210, B: 255}
	tests := []struct {
		y    int
		want theme.RGB
	}{
		{0, top},
		{450, theme.RGB{R: 29, G: 166, B: 234}},
		{899, theme.RGB{R: 0, G: 209, B: 254}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, GradientAt(top, bottom, tt.y, 900)); diff != "" {
			t.Errorf("y=%d: %s", tt.y, diff)
		}
	}
}

func TestComposeFooter(t *testing.T) {
	c := New(WithFontSet(render.FallbackFontSet()))
	img := c.Compose(Request{Title: "T", Body: "B", Theme: theme.Forest})
	for _, p := range []image.Point{{0, 850}, {599, 899}, {560, 870}} {
		if got := img.RGBAAt(p.X, p.Y); got != render.Black {
			t.Errorf("footer pixel %v = %v, want black", p, got)
		}
	}
	if !hasColor(img, image.Rect(200, 850, 400, 900), render.White) {
		t.Error("footer text not drawn")
	}
	if hasColor(img, image.Rect(550, 850, 600, 900), render.White) {
		t.Error("footer corner should be empty without qr")
	}

	withQR := New(WithFontSet(render.FallbackFontSet()), WithFooterQR(true))
	img = withQR.Compose(Request{Theme: theme.Forest})
	if !hasColor(img, image.Rect(550, 850, 600, 900), render.White) {
		t.Error("footer qr not drawn")
	}
	if withQR.WithQR(false).FooterQR() || !withQR.FooterQR() {
		t.Error("WithQR must return a toggled copy")
	}
}

func TestComposeTitleShadowAndBody(t *testing.T) {
	c := New(WithFontSet(render.FallbackFontSet()))
	img := c.Compose(Request{Title: "Live Fully", Body: "Life is great.", Theme: theme.Forest})
	if !hasColor(img, image.Rect(0, 60, 600, 100), render.Black) {
		t.Error("title shadow not drawn")
	}
	if !hasColor(img, image.Rect(0, 60, 600, 100), render.White) {
		t.Error("title not drawn")
	}
	if !hasColor(img, image.Rect(Margin, 190, 550, 220), render.White) {
		t.Error("body not drawn")
	}
	if hasColor(img, image.Rect(Margin, 220, 550, 250), render.White) {
		t.Error("short body should fit on one line")
	}
}

func TestDrawBodyLayout(t *testing.T) {
	fake := &fakeCanvas{advance: 10}
	c := New(WithFontSet(render.FallbackFontSet()), WithSubtitle("sub"), WithFooterText("foot"))
	body := "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd eeeeeeeeee ffffffffff"
	c.Draw(fake, Request{Title: "title", Body: body})

	want := []textCall{
		{"title", 301, 81, render.FontTitle},
		{"title", 300, 80, render.FontTitle},
		{"sub", 301, 131, render.FontSubtitle},
		{"sub", 300, 130, render.FontSubtitle},
		{"aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd", 50, 190, render.FontBody},
		{"eeeeeeeeee ffffffffff", 50, 220, render.FontBody},
		{"foot", 300, 870, render.FontSubtitle},
	}
	if diff := cmp.Diff(want, fake.calls, cmp.AllowUnexported(textCall{})); diff != "" {
		t.Error(diff)
	}
	if fake.rows != render.PosterHeight {
		t.Errorf("filled %d rows, want %d", fake.rows, render.PosterHeight)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 850, 600, 900)}, fake.rects); diff != "" {
		t.Error(diff)
	}
}

func TestMaxChars(t *testing.T) {
	canvas := render.NewRasterCanvas(render.PosterWidth, render.PosterHeight, render.FallbackFaces())
	if got := MaxChars(canvas, 500); got != 71 {
		t.Errorf("MaxChars = %d, want 71", got)
	}
	if got := MaxChars(&fakeCanvas{advance: 1000}, 500); got != 1 {
		t.Errorf("MaxChars = %d, want 1", got)
	}
}

func hasColor(img *image.RGBA, rect image.Rectangle, c color.RGBA) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

type textCall struct {
	text string
	x, y int
	role render.FontRole
}

type fakeCanvas struct {
	advance float64
	calls   []textCall
	rows    int
	rects   []image.Rectangle
}

func (f *fakeCanvas) Size() (int, int) { return render.PosterWidth, render.PosterHeight }

func (f *fakeCanvas) MeasureText(text string, style render.TextStyle) render.TextMetrics {
	adv := f.advance * float64(len([]rune(text)))
	return render.TextMetrics{Width: int(adv), Advance: adv}
}

func (f *fakeCanvas) FillRow(int, color.Color) { f.rows++ }

func (f *fakeCanvas) FillRect(rect image.Rectangle, _ color.Color) {
	f.rects = append(f.rects, rect)
}

func (f *fakeCanvas) DrawText(text string, x, y int, style render.TextStyle) render.TextMetrics {
	f.calls = append(f.calls, textCall{text: text, x: x, y: y, role: style.Role})
	return f.MeasureText(text, style)
}

func (f *fakeCanvas) DrawImage(image.Image, image.Rectangle) {}

func TestNewFallsBackOnMissingFont(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	missing := filepath.Join(t.TempDir(), "missing.ttf")

	c := New(WithFonts(render.FontConfig{BoldPath: missing}), WithLogger(logger))
	if !c.Fonts().IsFallback() {
		t.Errorf("fonts = %s, want fallback", c.Fonts().Name())
	}
	img := c.Compose(Request{Title: "Live Fully", Body: "Life is great.", Theme: theme.Sunset})
	if b := img.Bounds(); b.Dx() != render.PosterWidth || b.Dy() != render.PosterHeight {
		t.Errorf("bounds = %v, want 600x900", b)
	}
	out := logs.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "missing.ttf") {
		t.Errorf("no font warning logged: %q", out)
	}
}
