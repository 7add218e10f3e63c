package compose

import (
	"strings"
	"testing"

	"github.com/slidesmith/ppt-tools-mcp/internal/deck"
)

func TestLookupAndIDs(t *testing.T) {
	ids := IDs()
	if len(ids) != len(templates) {
		t.Fatalf("IDs() returned %d entries, want %d", len(ids), len(templates))
	}
	for _, id := range ids {
		tmpl, err := Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q): %v", id, err)
		}
		if tmpl.ID != id {
			t.Errorf("template %q carries id %q", id, tmpl.ID)
		}
	}

	if _, err := Lookup("fancy_slide"); err == nil {
		t.Error("expected error for unknown template")
	} else if !strings.Contains(err.Error(), "title_slide") {
		t.Errorf("error should list available templates: %v", err)
	}
}

func TestList_SortedAndComplete(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("list not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}

func TestApply_PlacesOnlyProvidedSlots(t *testing.T) {
	d := deck.New()
	idx := d.AddBlankSlide()

	applied, err := Apply(d, idx, "title_slide", "modern_blue", map[string]string{
		"title": "Annual Report",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(applied) != 1 || applied[0].Slot != "title" {
		t.Fatalf("applied = %+v, want only title", applied)
	}

	shapes, err := d.SlideShapes(idx)
	if err != nil {
		t.Fatalf("SlideShapes: %v", err)
	}
	if len(shapes) != 1 || shapes[0].Text != "Annual Report" {
		t.Errorf("unexpected shapes: %+v", shapes)
	}
}

func TestApply_DynamicSizing(t *testing.T) {
	d := deck.New()
	idx := d.AddBlankSlide()

	long := strings.Repeat("a fairly long sentence about quarterly results ", 12)
	applied, err := Apply(d, idx, "title_content", "corporate_gray", map[string]string{
		"title": "Results",
		"body":  long,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	var bodySize, titleSize int
	for _, a := range applied {
		switch a.Slot {
		case "body":
			bodySize = a.SizePt
		case "title":
			titleSize = a.SizePt
		}
	}
	if bodySize < dynamicMinPt {
		t.Errorf("dynamic size %d below floor", bodySize)
	}
	if titleSize != 28 {
		t.Errorf("static title size = %d, want the preset 28", titleSize)
	}
}

func TestApply_UnknownTemplateAndScheme(t *testing.T) {
	d := deck.New()
	idx := d.AddBlankSlide()

	if _, err := Apply(d, idx, "nope", "modern_blue", nil); err == nil {
		t.Error("expected error for unknown template")
	}

	// Unknown schemes fall back rather than fail.
	if _, err := Apply(d, idx, "section_header", "neon_dreams", map[string]string{"title": "x"}); err != nil {
		t.Errorf("unknown scheme should fall back: %v", err)
	}
}

func TestCreateSlide(t *testing.T) {
	d := deck.New()
	idx, applied, err := CreateSlide(d, "quote_slide", "warm_red", map[string]string{
		"quote":       "Simplicity is the ultimate sophistication.",
		"attribution": "— Someone",
	})
	if err != nil {
		t.Fatalf("CreateSlide: %v", err)
	}
	if idx != 0 {
		t.Errorf("slide index = %d, want 0", idx)
	}
	if len(applied) != 2 {
		t.Errorf("applied = %+v, want 2 elements", applied)
	}

	if _, _, err := CreateSlide(d, "nope", "", nil); err != nil && d.SlideCount() != 1 {
		t.Errorf("failed create should not add slides, count = %d", d.SlideCount())
	}
}

func TestCreateSlide_RemovesSlideOnApplyFailure(t *testing.T) {
	templates["broken"] = Template{
		ID: "broken",
		Elements: []Element{
			{Slot: "title", X: 1, Y: 1, Width: 5, Height: 1, FontRole: "title", SizeStep: "medium", ColorRole: "primary", Align: "diagonal"},
		},
	}
	defer delete(templates, "broken")

	d := deck.New()
	if _, _, err := CreateSlide(d, "broken", "modern_blue", map[string]string{"title": "x"}); err == nil {
		t.Fatal("expected error from bad alignment")
	}
	if d.SlideCount() != 0 {
		t.Errorf("failed create left %d slides behind, want 0", d.SlideCount())
	}
}
