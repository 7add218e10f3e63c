// Package scheme holds the built-in presentation color schemes and font
// presets, plus small color-math helpers used when deriving gradient and
// accent colors.
//
// A scheme is a set of five coordinated colors (primary, secondary, two
// accents, and a light fill) plus a default text color. Schemes are static,
// read-only tables; callers receive copies and cannot mutate the catalog.
package scheme

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexVal returns the color as an uppercase "RRGGBB" string without the
// leading hash, the form DrawingML srgbClr values use.
func (c Color) HexVal() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// colorful converts to a go-colorful color for blending and HSL math.
func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	cl := c.Clamped()
	return Color{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
	}
}

// Blend linearly interpolates between c and other in RGB space.
// t=0 returns c, t=1 returns other.
func (c Color) Blend(other Color, t float64) Color {
	return fromColorful(c.colorful().BlendRgb(other.colorful(), t))
}

// Lighten moves the color toward white in HSL space by the given amount (0-1).
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l += (1 - l) * amount
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// Darken moves the color toward black in HSL space by the given amount (0-1).
func (c Color) Darken(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l *= 1 - amount
	if l < 0 {
		l = 0
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// ParseHex parses "#RRGGBB" (hash optional) into a Color.
func ParseHex(s string) (Color, error) {
	if len(s) == 6 {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// FromTriple validates an [r,g,b] triple with 0-255 components.
func FromTriple(rgb []int) (Color, error) {
	if len(rgb) != 3 {
		return Color{}, fmt.Errorf("color must be an [r,g,b] triple, got %d components", len(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("color component %d out of range 0-255", v)
		}
	}
	return Color{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}, nil
}

// Scheme is a named set of coordinated colors.
type Scheme struct {
	Name      string `json:"name"`
	Primary   Color  `json:"primary"`
	Secondary Color  `json:"secondary"`
	Accent1   Color  `json:"accent1"`
	Accent2   Color  `json:"accent2"`
	Light     Color  `json:"light"`
	Text      Color  `json:"text"`
}

// Role returns the color for a named role. Unknown roles fall back to the
// primary color, mirroring how templates degrade rather than fail.
func (s Scheme) Role(role string) Color {
	switch role {
	case "primary":
		return s.Primary
	case "secondary":
		return s.Secondary
	case "accent1":
		return s.Accent1
	case "accent2":
		return s.Accent2
	case "light":
		return s.Light
	case "text":
		return s.Text
	default:
		return s.Primary
	}
}

// DefaultName is the scheme used when a caller names an unknown scheme.
const DefaultName = "modern_blue"

var schemes = map[string]Scheme{
	"modern_blue": {
		Name:      "modern_blue",
		Primary:   Color{0, 120, 215},
		Secondary: Color{40, 40, 40},
		Accent1:   Color{0, 176, 240},
		Accent2:   Color{255, 192, 0},
		Light:     Color{247, 247, 247},
		Text:      Color{68, 68, 68},
	},
	"corporate_gray": {
		Name:      "corporate_gray",
		Primary:   Color{68, 68, 68},
		Secondary: Color{0, 120, 215},
		Accent1:   Color{89, 89, 89},
		Accent2:   Color{217, 217, 217},
		Light:     Color{242, 242, 242},
		Text:      Color{51, 51, 51},
	},
	"elegant_green": {
		Name:      "elegant_green",
		Primary:   Color{70, 136, 71},
		Secondary: Color{255, 255, 255},
		Accent1:   Color{146, 208, 80},
		Accent2:   Color{112, 173, 71},
		Light:     Color{238, 236, 225},
		Text:      Color{89, 89, 89},
	},
	"warm_red": {
		Name:      "warm_red",
		Primary:   Color{192, 80, 77},
		Secondary: Color{68, 68, 68},
		Accent1:   Color{230, 126, 34},
		Accent2:   Color{241, 196, 15},
		Light:     Color{253, 253, 253},
		Text:      Color{44, 62, 80},
	},
}

// Lookup returns the named scheme. Unknown names return the default scheme
// and ok=false so callers can decide whether to warn or reject.
func Lookup(name string) (Scheme, bool) {
	if s, ok := schemes[name]; ok {
		return s, true
	}
	return schemes[DefaultName], false
}

// Names returns the available scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every scheme keyed by name. The map is a copy.
func All() map[string]Scheme {
	out := make(map[string]Scheme, len(schemes))
	for k, v := range schemes {
		out[k] = v
	}
	return out
}

// FontPreset describes typography for one text role at three size steps.
type FontPreset struct {
	Name        string `json:"name"`
	SizeLargePt int    `json:"size_large_pt"`
	SizeMedPt   int    `json:"size_medium_pt"`
	SizeSmallPt int    `json:"size_small_pt"`
	Bold        bool   `json:"bold"`
}

var fonts = map[string]FontPreset{
	"title":    {Name: "Segoe UI", SizeLargePt: 36, SizeMedPt: 28, SizeSmallPt: 24, Bold: true},
	"subtitle": {Name: "Segoe UI Light", SizeLargePt: 20, SizeMedPt: 18, SizeSmallPt: 16},
	"body":     {Name: "Segoe UI", SizeLargePt: 16, SizeMedPt: 14, SizeSmallPt: 12},
	"caption":  {Name: "Segoe UI", SizeLargePt: 12, SizeMedPt: 10, SizeSmallPt: 9},
}

// Font returns the preset for a text role ("title", "subtitle", "body",
// "caption"). Unknown roles fall back to "body".
func Font(role string) FontPreset {
	if f, ok := fonts[role]; ok {
		return f
	}
	return fonts["body"]
}

// SizeFor picks the point size for a size step ("large", "medium", "small").
// Unknown steps resolve to medium.
func (f FontPreset) SizeFor(step string) int {
	switch step {
	case "large":
		return f.SizeLargePt
	case "small":
		return f.SizeSmallPt
	default:
		return f.SizeMedPt
	}
}
