package deck

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClampBox(t *testing.T) {
	d := New()
	sw, sh := d.SlideSize()

	cases := []struct {
		name           string
		x, y, w, h     float64
		wantAdjusted   bool
		wantFullyInBox bool
	}{
		{"fits", 1, 1, 2, 2, false, true},
		{"negative origin", -1, -2, 2, 2, true, true},
		{"overhangs right", sw - 1, 1, 3, 2, true, true},
		{"oversized", 0, 0, sw + 5, sh + 5, true, true},
	}
	for _, tc := range cases {
		cx, cy, cw, ch, adjusted := d.ClampBox(tc.x, tc.y, tc.w, tc.h)
		if adjusted != tc.wantAdjusted {
			t.Errorf("%s: adjusted = %v, want %v", tc.name, adjusted, tc.wantAdjusted)
		}
		if cx < 0 || cy < 0 || cx+cw > sw+1e-9 || cy+ch > sh+1e-9 {
			t.Errorf("%s: box (%f,%f,%f,%f) escapes slide %fx%f", tc.name, cx, cy, cw, ch, sw, sh)
		}
	}
}

func TestAddAndRemoveSlides(t *testing.T) {
	d := New()
	if d.SlideCount() != 0 {
		t.Fatalf("new deck has %d slides", d.SlideCount())
	}
	first := d.AddBlankSlide()
	second := d.AddBlankSlide()
	if first != 0 || second != 1 {
		t.Errorf("unexpected slide indexes %d, %d", first, second)
	}
	if err := d.RemoveSlide(0); err != nil {
		t.Fatalf("RemoveSlide: %v", err)
	}
	if d.SlideCount() != 1 {
		t.Errorf("slide count after remove = %d", d.SlideCount())
	}
	if err := d.RemoveSlide(5); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestAddSlide_InvalidLayout(t *testing.T) {
	d := New()
	if _, err := d.AddSlide(999); err == nil {
		t.Error("expected error for invalid layout index")
	}
}

func TestMoveSlide(t *testing.T) {
	d := New()
	for _, label := range []string{"one", "two", "three"} {
		idx := d.AddBlankSlide()
		if _, err := d.AddTextBox(idx, TextBoxSpec{X: 1, Y: 1, Width: 3, Height: 1, Text: label}); err != nil {
			t.Fatalf("AddTextBox: %v", err)
		}
	}
	if err := d.MoveSlide(2, 0); err != nil {
		t.Fatalf("MoveSlide: %v", err)
	}
	for i, want := range []string{"three", "one", "two"} {
		got, err := d.SlideText(i)
		if err != nil {
			t.Fatalf("SlideText(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("slide %d text = %q, want %q", i, got, want)
		}
	}
	if err := d.MoveSlide(0, 9); err == nil {
		t.Error("expected error for out-of-range target")
	}

	// Removing the moved slide must take its content with it; the
	// remaining slides keep theirs.
	if err := d.RemoveSlide(0); err != nil {
		t.Fatalf("RemoveSlide: %v", err)
	}
	for i, want := range []string{"one", "two"} {
		got, err := d.SlideText(i)
		if err != nil {
			t.Fatalf("SlideText(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("after remove, slide %d text = %q, want %q", i, got, want)
		}
	}
}

func TestAddTextBox(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()

	shapeIdx, err := d.AddTextBox(idx, TextBoxSpec{
		X: 1, Y: 2, Width: 4, Height: 1,
		Text:  "Hello\nWorld",
		Align: "center",
		Style: TextStyle{SizePt: 24, Bold: true, ColorHex: "1F4E79"},
	})
	if err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	if shapeIdx != 0 {
		t.Errorf("shape index = %d, want 0", shapeIdx)
	}

	shapes, err := d.SlideShapes(idx)
	if err != nil {
		t.Fatalf("SlideShapes: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("shape count = %d", len(shapes))
	}
	if shapes[0].Text != "Hello\nWorld" {
		t.Errorf("text = %q", shapes[0].Text)
	}
	if !shapes[0].HasGeometry || shapes[0].X < 0.99 || shapes[0].X > 1.01 {
		t.Errorf("geometry not applied: %+v", shapes[0])
	}

	e, err := d.shapeAt(idx, shapeIdx)
	if err != nil {
		t.Fatalf("shapeAt: %v", err)
	}
	rpr := e.textBody().P[0].EG_TextRun[0].R.RPr
	if rpr == nil {
		t.Fatal("run has no properties")
	}
	if rpr.BAttr == nil || !*rpr.BAttr {
		t.Error("bold not applied to run")
	}
	if rpr.SzAttr == nil || *rpr.SzAttr != 2400 {
		t.Error("font size not applied to run")
	}

	if _, err := d.AddTextBox(idx, TextBoxSpec{Text: "x", Align: "diagonal"}); err == nil {
		t.Error("expected error for bad alignment")
	}
}

func TestFormatAndReplaceShapeText(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()
	shapeIdx, err := d.AddTextBox(idx, TextBoxSpec{X: 0, Y: 0, Width: 3, Height: 1, Text: "before"})
	if err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}

	if err := d.FormatShapeText(idx, shapeIdx, TextStyle{Italic: true, FontName: "Georgia"}, "right"); err != nil {
		t.Fatalf("FormatShapeText: %v", err)
	}
	if err := d.ReplaceShapeText(idx, shapeIdx, "after"); err != nil {
		t.Fatalf("ReplaceShapeText: %v", err)
	}
	got, _ := d.SlideText(idx)
	if got != "after" {
		t.Errorf("text = %q, want %q", got, "after")
	}

	if err := d.FormatShapeText(idx, 99, TextStyle{}, ""); err == nil {
		t.Error("expected error for missing shape")
	}
}

func TestAddShape(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()

	shapeIdx, err := d.AddShape(idx, ShapeSpec{
		Name: "star", X: 1, Y: 1, Width: 2, Height: 2,
		Text: "Wow", FillHex: "FFC000", LineHex: "000000", LineWidthPt: 2,
		Style: TextStyle{Bold: true},
	})
	if err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	shapes, _ := d.SlideShapes(idx)
	if shapes[shapeIdx].Text != "Wow" {
		t.Errorf("shape label = %q", shapes[shapeIdx].Text)
	}
	e, err := d.shapeAt(idx, shapeIdx)
	if err != nil {
		t.Fatalf("shapeAt: %v", err)
	}
	if rpr := e.textBody().P[0].EG_TextRun[0].R.RPr; rpr == nil || rpr.BAttr == nil || !*rpr.BAttr {
		t.Error("label style not applied")
	}

	if _, err := d.AddShape(idx, ShapeSpec{Name: "dodecahedron"}); err == nil {
		t.Error("expected error for unknown shape name")
	}
	if _, err := d.AddShape(idx, ShapeSpec{Name: "oval", FillHex: "zzz"}); err == nil {
		t.Error("expected error for bad fill color")
	}
	if _, err := d.AddShape(idx, ShapeSpec{Name: "oval", LineHex: "#12345"}); err == nil {
		t.Error("expected error for bad line color")
	}
	// Rejected colors must not leave a half-built shape behind.
	if shapes, _ = d.SlideShapes(idx); len(shapes) != 1 {
		t.Errorf("shape count after rejected colors = %d, want 1", len(shapes))
	}

	if err := d.SetShapeFill(idx, shapeIdx, "00B050"); err != nil {
		t.Errorf("SetShapeFill: %v", err)
	}
}

func TestAddConnector(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()

	// Endpoints given right-to-left must normalize into a flipped box.
	shapeIdx, err := d.AddConnector(idx, ConnectorSpec{Kind: "straight", X1: 5, Y1: 4, X2: 1, Y2: 1})
	if err != nil {
		t.Fatalf("AddConnector: %v", err)
	}
	shapes, _ := d.SlideShapes(idx)
	s := shapes[shapeIdx]
	if s.X < 0.99 || s.X > 1.01 || s.Width < 3.99 || s.Width > 4.01 {
		t.Errorf("connector box not normalized: %+v", s)
	}

	if _, err := d.AddConnector(idx, ConnectorSpec{Kind: "zigzag"}); err == nil {
		t.Error("expected error for unknown connector kind")
	}
	if _, err := d.AddConnector(idx, ConnectorSpec{Kind: "straight", LineHex: "nope"}); err == nil {
		t.Error("expected error for bad line color")
	}
	if shapes, _ = d.SlideShapes(idx); len(shapes) != 1 {
		t.Errorf("shape count after rejected color = %d, want 1", len(shapes))
	}
}

func TestDeleteShape(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()
	d.AddTextBox(idx, TextBoxSpec{Text: "a", Width: 1, Height: 1})
	d.AddTextBox(idx, TextBoxSpec{Text: "b", Width: 1, Height: 1})

	if err := d.DeleteShape(idx, 0); err != nil {
		t.Fatalf("DeleteShape: %v", err)
	}
	shapes, _ := d.SlideShapes(idx)
	if len(shapes) != 1 || shapes[0].Text != "b" {
		t.Errorf("unexpected shapes after delete: %+v", shapes)
	}
	if err := d.DeleteShape(idx, 5); err == nil {
		t.Error("expected error for out-of-range shape index")
	}
}

func TestTableLifecycle(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()

	spec := TableSpec{
		Rows: 3, Cols: 2, X: 1, Y: 1, Width: 8, Height: 3,
		Data:          [][]string{{"Name", "Value"}, {"alpha", "1"}},
		HeaderFillHex: "1F4E79",
		HeaderStyle:   TextStyle{Bold: true, ColorHex: "FFFFFF"},
	}
	shapeIdx, err := d.AddTable(idx, spec)
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}

	shapes, _ := d.SlideShapes(idx)
	if shapes[shapeIdx].Kind != "table" {
		t.Errorf("kind = %q, want table", shapes[shapeIdx].Kind)
	}

	if err := d.SetTableCell(idx, shapeIdx, 2, 1, "42"); err != nil {
		t.Fatalf("SetTableCell: %v", err)
	}
	if err := d.SetTableCell(idx, shapeIdx, 9, 0, "x"); err == nil {
		t.Error("expected error for out-of-range row")
	}
	if err := d.FormatTableCell(idx, shapeIdx, 0, 0, TextStyle{Underline: true}, "D9E2F3", "center"); err != nil {
		t.Fatalf("FormatTableCell: %v", err)
	}

	tbl, err := d.tableAt(idx, shapeIdx)
	if err != nil {
		t.Fatalf("tableAt: %v", err)
	}
	if len(tbl.Tr) != 3 || len(tbl.Tr[0].Tc) != 2 {
		t.Errorf("table is %dx%d, want 3x2", len(tbl.Tr), len(tbl.Tr[0].Tc))
	}

	if _, err := d.AddTable(idx, TableSpec{Rows: 0, Cols: 2}); err == nil {
		t.Error("expected error for zero rows")
	}
}

func TestTransitions(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()

	if err := d.SetTransition(idx, "fade", "slow", 3000); err != nil {
		t.Fatalf("SetTransition: %v", err)
	}
	slide, _ := d.slide(idx)
	tr := slide.X().Transition
	if tr == nil || tr.Choice == nil || tr.Choice.Fade == nil {
		t.Fatal("fade transition not set")
	}
	if tr.AdvTmAttr == nil || *tr.AdvTmAttr != 3000 {
		t.Error("auto-advance not set")
	}

	if err := d.SetTransition(idx, "none", "", 0); err != nil {
		t.Fatalf("SetTransition(none): %v", err)
	}
	if slide.X().Transition != nil {
		t.Error("transition not cleared")
	}

	if err := d.SetTransition(idx, "swirl", "", 0); err == nil {
		t.Error("expected error for unknown transition")
	}
	if err := d.SetTransition(idx, "fade", "warp", 0); err == nil {
		t.Error("expected error for unknown speed")
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestImages(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()

	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(path, pngBytes(t, 192, 96), 0o644); err != nil {
		t.Fatal(err)
	}

	shapeIdx, err := d.AddImageFile(idx, path, ImageSpec{X: 1, Y: 1, Width: 4})
	if err != nil {
		t.Fatalf("AddImageFile: %v", err)
	}
	shapes, _ := d.SlideShapes(idx)
	s := shapes[shapeIdx]
	if s.Kind != "picture" {
		t.Errorf("kind = %q, want picture", s.Kind)
	}
	// Height derived from the 2:1 aspect ratio.
	if s.Height < 1.99 || s.Height > 2.01 {
		t.Errorf("derived height = %f, want 2", s.Height)
	}

	before, err := d.shapeAt(idx, shapeIdx)
	if err != nil {
		t.Fatalf("shapeAt: %v", err)
	}
	embedBefore := *before.pic.BlipFill.Blip.EmbedAttr

	if err := d.ReplacePicture(idx, shapeIdx, pngBytes(t, 64, 64)); err != nil {
		t.Fatalf("ReplacePicture: %v", err)
	}
	shapes, _ = d.SlideShapes(idx)
	if len(shapes) != 1 {
		t.Errorf("replacement left %d shapes, want 1", len(shapes))
	}
	after, err := d.shapeAt(idx, shapeIdx)
	if err != nil {
		t.Fatalf("shapeAt: %v", err)
	}
	if *after.pic.BlipFill.Blip.EmbedAttr == embedBefore {
		t.Error("picture still references the old image relationship")
	}

	if _, err := d.AddImageFile(idx, filepath.Join(dir, "missing.png"), ImageSpec{}); err == nil {
		t.Error("expected error for missing file")
	}
	if err := d.ReplacePicture(idx, 99, pngBytes(t, 8, 8)); err == nil {
		t.Error("expected error for bad shape index")
	}
}

func TestSetBackgroundImage(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()
	d.AddTextBox(idx, TextBoxSpec{Text: "front", Width: 2, Height: 1})

	if err := d.SetBackgroundImage(idx, pngBytes(t, 32, 18)); err != nil {
		t.Fatalf("SetBackgroundImage: %v", err)
	}
	shapes, _ := d.SlideShapes(idx)
	if len(shapes) != 2 {
		t.Fatalf("shape count = %d", len(shapes))
	}
	if shapes[0].Kind != "picture" {
		t.Errorf("background not at the back of the z-order: %+v", shapes)
	}
}

func TestCoreProperties(t *testing.T) {
	d := New()
	d.SetCoreProperties(CoreProps{Title: "Q3 Review", Author: "pat", Category: "finance", Status: "draft"})

	got := d.CoreProperties()
	if got.Title != "Q3 Review" || got.Author != "pat" || got.Category != "finance" || got.Status != "draft" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Partial update keeps existing fields.
	d.SetCoreProperties(CoreProps{Status: "final"})
	got = d.CoreProperties()
	if got.Title != "Q3 Review" || got.Status != "final" {
		t.Errorf("partial update broke fields: %+v", got)
	}
}

func TestSaveAndReopen(t *testing.T) {
	d := New()
	idx := d.AddBlankSlide()
	d.AddTextBox(idx, TextBoxSpec{X: 1, Y: 1, Width: 5, Height: 1, Text: "persisted"})

	path := filepath.Join(t.TempDir(), "out.pptx")
	if err := d.Save(path); err != nil {
		if strings.Contains(err.Error(), "license required") {
			t.Skipf("skipping round-trip check: no unioffice license configured: %v", err)
		}
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reopened.Close()
	if reopened.SlideCount() != 1 {
		t.Errorf("slide count = %d, want 1", reopened.SlideCount())
	}
	text, err := reopened.SlideText(0)
	if err != nil {
		t.Fatalf("SlideText: %v", err)
	}
	if !strings.Contains(text, "persisted") {
		t.Errorf("text %q lost across save", text)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/deck.pptx"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := OpenTemplate("/nonexistent/deck.potx"); err == nil {
		t.Error("expected error for missing template")
	}
}
