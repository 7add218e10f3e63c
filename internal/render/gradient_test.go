package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/slidesmith/ppt-tools-mcp/internal/scheme"
)

func TestGradient_EndpointColors(t *testing.T) {
	start := scheme.Color{R: 255, G: 0, B: 0}
	end := scheme.Color{R: 0, G: 0, B: 255}

	img, err := Gradient(100, 50, start, end, DirHorizontal)
	if err != nil {
		t.Fatalf("Gradient() error: %v", err)
	}

	left := img.NRGBAAt(0, 25)
	if left.R != 255 || left.B != 0 {
		t.Errorf("left edge should be the start color, got %+v", left)
	}
	right := img.NRGBAAt(99, 25)
	if right.B < 200 || right.R > 60 {
		t.Errorf("right edge should be close to the end color, got %+v", right)
	}
}

func TestGradient_Directions(t *testing.T) {
	start := scheme.Color{R: 0, G: 0, B: 0}
	end := scheme.Color{R: 255, G: 255, B: 255}

	vert, err := Gradient(40, 40, start, end, DirVertical)
	if err != nil {
		t.Fatalf("vertical: %v", err)
	}
	// Vertical gradients do not vary along x.
	if vert.NRGBAAt(0, 20) != vert.NRGBAAt(39, 20) {
		t.Error("vertical gradient varies horizontally")
	}
	if vert.NRGBAAt(5, 2).R >= vert.NRGBAAt(5, 38).R {
		t.Error("vertical gradient should brighten downward")
	}

	diag, err := Gradient(40, 40, start, end, DirDiagonal)
	if err != nil {
		t.Fatalf("diagonal: %v", err)
	}
	if diag.NRGBAAt(2, 2).R >= diag.NRGBAAt(38, 38).R {
		t.Error("diagonal gradient should brighten toward bottom-right")
	}
}

func TestGradient_UnknownDirection(t *testing.T) {
	_, err := Gradient(10, 10, scheme.Color{}, scheme.Color{}, "radial")
	if err == nil {
		t.Fatal("expected error for unsupported direction")
	}
}

func TestGradientPNG(t *testing.T) {
	data, err := GradientPNG(scheme.Color{R: 10}, scheme.Color{B: 10}, DirVertical)
	if err != nil {
		t.Fatalf("GradientPNG() error: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if cfg.Width != gradientWidth || cfg.Height != gradientHeight {
		t.Errorf("got %dx%d, want %dx%d", cfg.Width, cfg.Height, gradientWidth, gradientHeight)
	}
}

func TestGradientStyleColors(t *testing.T) {
	s, _ := scheme.Lookup("modern_blue")

	cases := []struct {
		style      string
		start, end scheme.Color
	}{
		{"subtle", s.Light, s.Secondary},
		{"bold", s.Primary, s.Accent1},
		{"accent", s.Accent1, s.Accent2},
	}
	for _, tc := range cases {
		start, end, err := GradientStyleColors(s, tc.style)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.style, err)
			continue
		}
		if start != tc.start || end != tc.end {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tc.style, start, end, tc.start, tc.end)
		}
	}

	if _, _, err := GradientStyleColors(s, "neon"); err == nil {
		t.Error("expected error for unknown style")
	}
}
