package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInset(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		padding int
		want    image.Rectangle
	}{
		{"poster margin", image.Rect(0, 0, 600, 900), 50, image.Rect(50, 50, 550, 850)},
		{"zero padding", image.Rect(0, 0, 10, 10), 0, image.Rect(0, 0, 10, 10)},
		{"negative padding", image.Rect(0, 0, 10, 10), -3, image.Rect(0, 0, 10, 10)},
		{"collapsed", image.Rect(0, 0, 10, 10), 8, image.Rect(2, 2, 8, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inset(tt.rect, tt.padding)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestSplitHorizontal(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 600, 900), 850)
	if diff := cmp.Diff(image.Rect(0, 0, 600, 850), top); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(image.Rect(0, 850, 600, 900), bottom); diff != "" {
		t.Error(diff)
	}

	top, bottom = SplitHorizontal(image.Rect(0, 0, 600, 900), 1000)
	if bottom.Dy() != 0 || top.Dy() != 900 {
		t.Errorf("clamp failed: top=%v bottom=%v", top, bottom)
	}
}

func TestSplitVertical(t *testing.T) {
	left, right := SplitVertical(image.Rect(0, 850, 600, 900), 550)
	if diff := cmp.Diff(image.Rect(0, 850, 550, 900), left); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(image.Rect(550, 850, 600, 900), right); diff != "" {
		t.Error(diff)
	}
}

func TestFitSquare(t *testing.T) {
	got := FitSquare(image.Rect(10, 20, 110, 60))
	if diff := cmp.Diff(image.Rect(10, 20, 50, 60), got); diff != "" {
		t.Error(diff)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(image.Rectangle{Min: image.Pt(10, 10), Max: image.Pt(0, 0)})
	if diff := cmp.Diff(image.Rect(0, 0, 10, 10), got); diff != "" {
		t.Error(diff)
	}
}

func TestSplitFooter(t *testing.T) {
	tests := []struct {
		name        string
		height      int
		wantContent image.Rectangle
		wantFooter  image.Rectangle
	}{
		{"poster footer", 50, image.Rect(0, 0, 600, 850), image.Rect(0, 850, 600, 900)},
		{"no footer", 0, image.Rect(0, 0, 600, 900), image.Rect(0, 900, 600, 900)},
		{"footer taller than rect", 1000, image.Rect(0, 0, 600, 0), image.Rect(0, 0, 600, 900)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, footer := SplitFooter(image.Rect(0, 0, 600, 900), tt.height)
			if diff := cmp.Diff(tt.wantContent, content); diff != "" {
				t.Error(diff)
			}
			if diff := cmp.Diff(tt.wantFooter, footer); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestTrailingSquare(t *testing.T) {
	tests := []struct {
		name  string
		strip image.Rectangle
		inset int
		want  image.Rectangle
	}{
		{"footer qr", image.Rect(0, 850, 600, 900), 3, image.Rect(553, 853, 597, 897)},
		{"no inset", image.Rect(0, 850, 600, 900), 0, image.Rect(550, 850, 600, 900)},
		{"strip narrower than tall", image.Rect(0, 0, 20, 50), 0, image.Rect(0, 0, 20, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, TrailingSquare(tt.strip, tt.inset)); diff != "" {
				t.Error(diff)
			}
		})
	}
}
