package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/slidesmith/ppt-tools-mcp/internal/scheme"
)

// Gradient directions.
const (
	DirHorizontal = "horizontal"
	DirVertical   = "vertical"
	DirDiagonal   = "diagonal"
)

// Background image dimensions. Matches a 16:9 slide at full HD.
const (
	gradientWidth  = 1920
	gradientHeight = 1080
)

// Gradient renders a linear gradient between two colors.
func Gradient(width, height int, start, end scheme.Color, direction string) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	var ratio func(x, y int) float64
	switch direction {
	case DirHorizontal:
		ratio = func(x, _ int) float64 { return float64(x) / float64(width) }
	case DirVertical:
		ratio = func(_, y int) float64 { return float64(y) / float64(height) }
	case DirDiagonal:
		ratio = func(x, y int) float64 { return float64(x+y) / float64(width+height) }
	default:
		return nil, fmt.Errorf("unknown gradient direction %q (supported: horizontal, vertical, diagonal)", direction)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := start.Blend(end, ratio(x, y))
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img, nil
}

// GradientPNG renders a slide-sized gradient and encodes it as PNG.
func GradientPNG(start, end scheme.Color, direction string) ([]byte, error) {
	img, err := Gradient(gradientWidth, gradientHeight, start, end, direction)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode gradient: %w", err)
	}
	return buf.Bytes(), nil
}

// GradientStyleColors picks the start/end colors for a named gradient style
// from a color scheme: "subtle" fades light into secondary, "bold" primary
// into accent1, "accent" accent1 into accent2.
func GradientStyleColors(s scheme.Scheme, style string) (start, end scheme.Color, err error) {
	switch style {
	case "subtle":
		return s.Light, s.Secondary, nil
	case "bold":
		return s.Primary, s.Accent1, nil
	case "accent":
		return s.Accent1, s.Accent2, nil
	default:
		return scheme.Color{}, scheme.Color{}, fmt.Errorf("unknown gradient style %q (supported: subtle, bold, accent)", style)
	}
}
