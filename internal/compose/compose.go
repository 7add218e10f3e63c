// Package compose provides the built-in slide templates: named arrangements
// of positioned text elements that pull their colors from a scheme and their
// typography from the font presets, with automatic font sizing for elements
// whose content length varies.
package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slidesmith/ppt-tools-mcp/internal/deck"
	"github.com/slidesmith/ppt-tools-mcp/internal/scheme"
	"github.com/slidesmith/ppt-tools-mcp/internal/textfit"
)

// Dynamic sizing bounds for template elements.
const (
	dynamicMinPt = 8
	dynamicMaxPt = 36
)

// Element is one text slot of a template. Geometry is in inches on a 16:9
// slide; the deck clamps it to the actual slide size on apply.
type Element struct {
	Slot      string  `json:"slot"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FontRole  string  `json:"font_role"`
	SizeStep  string  `json:"size_step"`
	ColorRole string  `json:"color_role"`
	Align     string  `json:"align"`
	Italic    bool    `json:"italic,omitempty"`
	// Dynamic elements size their font to the content via the text-fit
	// estimate instead of using the preset size directly.
	Dynamic bool `json:"dynamic,omitempty"`
}

// Template is a named slide arrangement.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Elements    []Element `json:"elements"`
}

var templates = map[string]Template{
	"title_slide": {
		ID: "title_slide", Name: "Title Slide",
		Description: "Large centered title with a subtitle below",
		Elements: []Element{
			{Slot: "title", X: 0.8, Y: 2.2, Width: 11.7, Height: 1.6, FontRole: "title", SizeStep: "large", ColorRole: "primary", Align: "center"},
			{Slot: "subtitle", X: 1.5, Y: 4.0, Width: 10.3, Height: 1.0, FontRole: "subtitle", SizeStep: "medium", ColorRole: "secondary", Align: "center"},
		},
	},
	"title_content": {
		ID: "title_content", Name: "Title and Content",
		Description: "Heading with a single body area",
		Elements: []Element{
			{Slot: "title", X: 0.6, Y: 0.4, Width: 12.1, Height: 1.1, FontRole: "title", SizeStep: "medium", ColorRole: "primary", Align: "left"},
			{Slot: "body", X: 0.8, Y: 1.8, Width: 11.7, Height: 5.0, FontRole: "body", SizeStep: "medium", ColorRole: "text", Align: "left", Dynamic: true},
		},
	},
	"two_content": {
		ID: "two_content", Name: "Two Content",
		Description: "Heading with side-by-side body areas",
		Elements: []Element{
			{Slot: "title", X: 0.6, Y: 0.4, Width: 12.1, Height: 1.1, FontRole: "title", SizeStep: "medium", ColorRole: "primary", Align: "left"},
			{Slot: "left", X: 0.8, Y: 1.8, Width: 5.6, Height: 5.0, FontRole: "body", SizeStep: "medium", ColorRole: "text", Align: "left", Dynamic: true},
			{Slot: "right", X: 6.9, Y: 1.8, Width: 5.6, Height: 5.0, FontRole: "body", SizeStep: "medium", ColorRole: "text", Align: "left", Dynamic: true},
		},
	},
	"section_header": {
		ID: "section_header", Name: "Section Header",
		Description: "Divider slide with a section title and subtext",
		Elements: []Element{
			{Slot: "title", X: 0.8, Y: 2.8, Width: 11.7, Height: 1.4, FontRole: "title", SizeStep: "large", ColorRole: "primary", Align: "center"},
			{Slot: "subtitle", X: 1.5, Y: 4.4, Width: 10.3, Height: 0.9, FontRole: "subtitle", SizeStep: "small", ColorRole: "accent1", Align: "center"},
		},
	},
	"quote_slide": {
		ID: "quote_slide", Name: "Quote",
		Description: "Centered quotation with an attribution line",
		Elements: []Element{
			{Slot: "quote", X: 1.5, Y: 2.3, Width: 10.3, Height: 2.4, FontRole: "subtitle", SizeStep: "large", ColorRole: "secondary", Align: "center", Italic: true, Dynamic: true},
			{Slot: "attribution", X: 4.0, Y: 5.0, Width: 8.0, Height: 0.7, FontRole: "caption", SizeStep: "large", ColorRole: "accent1", Align: "right"},
		},
	},
	"blank": {
		ID: "blank", Name: "Blank",
		Description: "No predefined elements",
	},
}

// Lookup returns the template with the given id.
func Lookup(id string) (Template, error) {
	t, ok := templates[id]
	if !ok {
		return Template{}, fmt.Errorf("unknown slide template %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return t, nil
}

// IDs lists the available template ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns all templates sorted by id.
func List() []Template {
	out := make([]Template, 0, len(templates))
	for _, id := range IDs() {
		out = append(out, templates[id])
	}
	return out
}

// Applied reports one element placed by Apply.
type Applied struct {
	Slot   string `json:"slot"`
	SizePt int    `json:"size_pt"`
}

// Apply places the template's elements on an existing slide. content maps
// slot names to text; slots without content are skipped. Unknown scheme
// names fall back to the default scheme.
func Apply(d *deck.Deck, slideIndex int, templateID, schemeName string, content map[string]string) ([]Applied, error) {
	tmpl, err := Lookup(templateID)
	if err != nil {
		return nil, err
	}
	sch, _ := scheme.Lookup(schemeName)

	var applied []Applied
	for _, el := range tmpl.Elements {
		text, ok := content[el.Slot]
		if !ok || text == "" {
			continue
		}

		preset := scheme.Font(el.FontRole)
		sizePt := preset.SizeFor(el.SizeStep)
		x, y, w, h, _ := d.ClampBox(el.X, el.Y, el.Width, el.Height)
		if el.Dynamic {
			sizePt = textfit.OptimalSize(text, w, h, dynamicMinPt, sizePt)
			text = textfit.Wrap(text, w, sizePt)
		}

		style := deck.TextStyle{
			SizePt:   float64(sizePt),
			FontName: preset.Name,
			Bold:     preset.Bold,
			Italic:   el.Italic,
			ColorHex: sch.Role(el.ColorRole).HexVal(),
		}
		if _, err := d.AddTextBox(slideIndex, deck.TextBoxSpec{
			X: x, Y: y, Width: w, Height: h,
			Text:  text,
			Align: el.Align,
			Style: style,
		}); err != nil {
			return nil, fmt.Errorf("failed to place %q element: %w", el.Slot, err)
		}
		applied = append(applied, Applied{Slot: el.Slot, SizePt: sizePt})
	}
	return applied, nil
}

// CreateSlide appends a blank slide and applies the template to it. Returns
// the new slide index and the placed elements.
func CreateSlide(d *deck.Deck, templateID, schemeName string, content map[string]string) (int, []Applied, error) {
	if _, err := Lookup(templateID); err != nil {
		return 0, nil, err
	}
	idx := d.AddBlankSlide()
	applied, err := Apply(d, idx, templateID, schemeName, content)
	if err != nil {
		_ = d.RemoveSlide(idx)
		return 0, nil, err
	}
	return idx, applied, nil
}
