package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// EnhanceOptions are multiplicative adjustment factors in the 1.0 = no
// change convention. BlurRadius is in pixels, 0 disables blur.
type EnhanceOptions struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Saturation float64 `json:"saturation"`
	Sharpness  float64 `json:"sharpness"`
	BlurRadius float64 `json:"blur_radius"`
}

// NeutralEnhance returns options that leave the image untouched.
func NeutralEnhance() EnhanceOptions {
	return EnhanceOptions{Brightness: 1, Contrast: 1, Saturation: 1, Sharpness: 1}
}

// EnhancePreset returns the named enhancement preset. Supported styles are
// "presentation", "bright", and "soft"; unknown names fall back to
// "presentation" with ok=false.
func EnhancePreset(style string) (EnhanceOptions, bool) {
	switch style {
	case "presentation":
		return EnhanceOptions{Brightness: 1.1, Contrast: 1.15, Saturation: 1.1, Sharpness: 1.2}, true
	case "bright":
		return EnhanceOptions{Brightness: 1.2, Contrast: 1.1, Saturation: 1.2, Sharpness: 1.1}, true
	case "soft":
		return EnhanceOptions{Brightness: 1.05, Contrast: 0.95, Saturation: 0.95, Sharpness: 0.9, BlurRadius: 0.5}, true
	default:
		opts, _ := EnhancePreset("presentation")
		return opts, false
	}
}

// factorToChange maps the 1.0-neutral factor convention onto bild's
// -1..1 change convention.
func factorToChange(factor float64) float64 {
	change := factor - 1
	if change > 1 {
		change = 1
	}
	if change < -1 {
		change = -1
	}
	return change
}

// Enhance applies the adjustments in a fixed order: brightness, contrast,
// saturation, sharpness, blur. Neutral factors are skipped.
func Enhance(img image.Image, opts EnhanceOptions) image.Image {
	out := img
	if opts.Brightness != 1 && opts.Brightness != 0 {
		out = adjust.Brightness(out, factorToChange(opts.Brightness))
	}
	if opts.Contrast != 1 && opts.Contrast != 0 {
		out = adjust.Contrast(out, factorToChange(opts.Contrast))
	}
	if opts.Saturation != 1 && opts.Saturation != 0 {
		out = adjust.Saturation(out, factorToChange(opts.Saturation))
	}
	if opts.Sharpness > 1 {
		out = imaging.Sharpen(out, opts.Sharpness-1)
	}
	if opts.BlurRadius > 0 {
		out = blur.Gaussian(out, opts.BlurRadius)
	}
	return out
}

// EnhanceFile reads an image, applies the adjustments, and writes the result.
// When outputPath is empty the result lands next to the input with an
// "_enhanced" suffix (always PNG). Returns the written path.
func EnhanceFile(inputPath, outputPath string, opts EnhanceOptions) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("image file not found: %s", inputPath)
	}
	img, err := imaging.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	out := Enhance(img, opts)

	if outputPath == "" {
		ext := filepath.Ext(inputPath)
		outputPath = strings.TrimSuffix(inputPath, ext) + "_enhanced.png"
	}
	if err := imaging.Save(imaging.Clone(out), outputPath); err != nil {
		return "", fmt.Errorf("failed to save enhanced image: %w", err)
	}
	return outputPath, nil
}
