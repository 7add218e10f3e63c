package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: 100, B: uint8(y * 16), A: 255})
		}
	}
	return img
}

func TestEnhancePreset(t *testing.T) {
	for _, style := range []string{"presentation", "bright", "soft"} {
		if _, ok := EnhancePreset(style); !ok {
			t.Errorf("preset %q not found", style)
		}
	}

	opts, ok := EnhancePreset("dramatic")
	if ok {
		t.Error("unknown preset reported as known")
	}
	want, _ := EnhancePreset("presentation")
	if opts != want {
		t.Errorf("unknown preset should fall back to presentation: %+v", opts)
	}
}

func TestEnhance_NeutralIsNoop(t *testing.T) {
	img := testImage()
	out := Enhance(img, NeutralEnhance())
	// Neutral options must not trigger any adjustment pass.
	if out != image.Image(img) {
		t.Error("neutral enhance should return the input unchanged")
	}
}

func TestEnhance_BrightnessIncreases(t *testing.T) {
	img := testImage()
	out := Enhance(img, EnhanceOptions{Brightness: 1.3, Contrast: 1, Saturation: 1, Sharpness: 1})

	before := color.NRGBAModel.Convert(img.At(8, 8)).(color.NRGBA)
	after := color.NRGBAModel.Convert(out.At(8, 8)).(color.NRGBA)
	if after.G <= before.G {
		t.Errorf("brightness boost should raise channel values: %d -> %d", before.G, after.G)
	}
}

func TestFactorToChange(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.0, 0},
		{1.2, 0.2},
		{0.8, -0.2},
		{3.0, 1},
		{-1.0, -1},
	}
	for _, tc := range cases {
		got := factorToChange(tc.in)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("factorToChange(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestEnhanceFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "photo.png")
	if err := imaging.Save(testImage(), in); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts, _ := EnhancePreset("bright")
	out, err := EnhanceFile(in, "", opts)
	if err != nil {
		t.Fatalf("EnhanceFile() error: %v", err)
	}
	if out != filepath.Join(dir, "photo_enhanced.png") {
		t.Errorf("unexpected default output path %q", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestEnhanceFile_MissingInput(t *testing.T) {
	_, err := EnhanceFile("/nonexistent/image.png", "", NeutralEnhance())
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}
