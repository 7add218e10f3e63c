package deck

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
)

func (d *Deck) slide(index int) (presentation.Slide, error) {
	slides := d.ppt.Slides()
	if index < 0 || index >= len(slides) {
		return presentation.Slide{}, fmt.Errorf("invalid slide index %d: presentation has %d slides", index, len(slides))
	}
	return slides[index], nil
}

// AddSlide appends a slide using the given layout index and returns the new
// slide's index.
func (d *Deck) AddSlide(layoutIndex int) (int, error) {
	layouts := d.ppt.SlideLayouts()
	if layoutIndex < 0 || layoutIndex >= len(layouts) {
		return 0, fmt.Errorf("invalid layout index %d: presentation has %d layouts", layoutIndex, len(layouts))
	}
	if _, err := d.ppt.AddDefaultSlideWithLayout(layouts[layoutIndex]); err != nil {
		return 0, fmt.Errorf("failed to add slide: %w", err)
	}
	return d.SlideCount() - 1, nil
}

// AddBlankSlide appends a slide without a layout and returns its index.
func (d *Deck) AddBlankSlide() int {
	d.ppt.AddSlide()
	return d.SlideCount() - 1
}

// RemoveSlide deletes the slide at index.
func (d *Deck) RemoveSlide(index int) error {
	slide, err := d.slide(index)
	if err != nil {
		return err
	}
	if err := d.ppt.RemoveSlide(slide); err != nil {
		return fmt.Errorf("failed to remove slide %d: %w", index, err)
	}
	return nil
}

// MoveSlide reorders the slide at from so it ends up at position to. The
// library pairs id entries, document parts, and relationships with slide
// content positionally, so those lists must keep their order; the move
// rotates the slide payloads through the existing parts instead.
func (d *Deck) MoveSlide(from, to int) error {
	slides := d.ppt.Slides()
	n := len(slides)
	if from < 0 || from >= n {
		return fmt.Errorf("invalid slide index %d: presentation has %d slides", from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("invalid target index %d: presentation has %d slides", to, n)
	}
	if from == to {
		return nil
	}

	payloads := make([]pml.Sld, n)
	for i, sl := range slides {
		payloads[i] = *sl.X()
	}
	moved := payloads[from]
	if from < to {
		copy(payloads[from:to], payloads[from+1:to+1])
	} else {
		copy(payloads[to+1:from+1], payloads[to:from])
	}
	payloads[to] = moved
	for i, sl := range slides {
		*sl.X() = payloads[i]
	}
	return nil
}

// shapeEntry points at one top-level shape within a slide's shape tree.
type shapeEntry struct {
	kind      string
	name      string
	choiceIdx int

	sp    *pml.CT_Shape
	pic   *pml.CT_Picture
	frame *pml.CT_GraphicalObjectFrame
	cxn   *pml.CT_Connector
}

const tableGraphicURI = "http://schemas.openxmlformats.org/drawingml/2006/table"

// shapes flattens the slide's shape tree in document order.
func (d *Deck) shapes(slideIndex int) ([]shapeEntry, error) {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return nil, err
	}
	tree := slide.X().CSld.SpTree
	var entries []shapeEntry
	for ci, choice := range tree.Choice {
		for _, sp := range choice.Sp {
			e := shapeEntry{kind: "shape", choiceIdx: ci, sp: sp}
			if sp.NvSpPr != nil {
				if sp.NvSpPr.CNvPr != nil {
					e.name = sp.NvSpPr.CNvPr.NameAttr
				}
				if sp.NvSpPr.NvPr != nil && sp.NvSpPr.NvPr.Ph != nil {
					e.kind = "placeholder"
				} else if sp.NvSpPr.CNvSpPr != nil && sp.NvSpPr.CNvSpPr.TxBoxAttr != nil && *sp.NvSpPr.CNvSpPr.TxBoxAttr {
					e.kind = "text_box"
				}
			}
			entries = append(entries, e)
		}
		for _, pic := range choice.Pic {
			e := shapeEntry{kind: "picture", choiceIdx: ci, pic: pic}
			if pic.NvPicPr != nil && pic.NvPicPr.CNvPr != nil {
				e.name = pic.NvPicPr.CNvPr.NameAttr
			}
			entries = append(entries, e)
		}
		for _, gf := range choice.GraphicFrame {
			e := shapeEntry{kind: "graphic_frame", choiceIdx: ci, frame: gf}
			if gf.Graphic != nil && gf.Graphic.GraphicData != nil && gf.Graphic.GraphicData.UriAttr == tableGraphicURI {
				e.kind = "table"
			}
			if gf.NvGraphicFramePr != nil && gf.NvGraphicFramePr.CNvPr != nil {
				e.name = gf.NvGraphicFramePr.CNvPr.NameAttr
			}
			entries = append(entries, e)
		}
		for _, cxn := range choice.CxnSp {
			e := shapeEntry{kind: "connector", choiceIdx: ci, cxn: cxn}
			if cxn.NvCxnSpPr != nil && cxn.NvCxnSpPr.CNvPr != nil {
				e.name = cxn.NvCxnSpPr.CNvPr.NameAttr
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (d *Deck) shapeAt(slideIndex, shapeIndex int) (shapeEntry, error) {
	entries, err := d.shapes(slideIndex)
	if err != nil {
		return shapeEntry{}, err
	}
	if shapeIndex < 0 || shapeIndex >= len(entries) {
		return shapeEntry{}, fmt.Errorf("invalid shape index %d: slide %d has %d shapes", shapeIndex, slideIndex, len(entries))
	}
	return entries[shapeIndex], nil
}

func (e shapeEntry) xfrm() *dml.CT_Transform2D {
	switch {
	case e.sp != nil && e.sp.SpPr != nil:
		return e.sp.SpPr.Xfrm
	case e.pic != nil && e.pic.SpPr != nil:
		return e.pic.SpPr.Xfrm
	case e.frame != nil:
		return e.frame.Xfrm
	case e.cxn != nil && e.cxn.SpPr != nil:
		return e.cxn.SpPr.Xfrm
	}
	return nil
}

func (e shapeEntry) textBody() *dml.CT_TextBody {
	if e.sp != nil {
		return e.sp.TxBody
	}
	return nil
}

func bodyText(body *dml.CT_TextBody) string {
	if body == nil {
		return ""
	}
	var lines []string
	for _, p := range body.P {
		var sb strings.Builder
		for _, tr := range p.EG_TextRun {
			if tr.R != nil {
				sb.WriteString(tr.R.T)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// ShapeInfo describes one shape for inspection tools. Geometry is in inches
// and only meaningful when HasGeometry is set.
type ShapeInfo struct {
	Index       int     `json:"index"`
	Kind        string  `json:"kind"`
	Name        string  `json:"name,omitempty"`
	Text        string  `json:"text,omitempty"`
	HasGeometry bool    `json:"has_geometry"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
}

// SlideShapes lists the top-level shapes of a slide.
func (d *Deck) SlideShapes(slideIndex int) ([]ShapeInfo, error) {
	entries, err := d.shapes(slideIndex)
	if err != nil {
		return nil, err
	}
	infos := make([]ShapeInfo, len(entries))
	for i, e := range entries {
		info := ShapeInfo{Index: i, Kind: e.kind, Name: e.name, Text: bodyText(e.textBody())}
		if xf := e.xfrm(); xf != nil {
			if xf.Off != nil && xf.Off.XAttr.ST_CoordinateUnqualified != nil && xf.Off.YAttr.ST_CoordinateUnqualified != nil {
				info.X = inches(*xf.Off.XAttr.ST_CoordinateUnqualified)
				info.Y = inches(*xf.Off.YAttr.ST_CoordinateUnqualified)
				info.HasGeometry = true
			}
			if xf.Ext != nil {
				info.Width = inches(xf.Ext.CxAttr)
				info.Height = inches(xf.Ext.CyAttr)
				info.HasGeometry = true
			}
		}
		infos[i] = info
	}
	return infos, nil
}

// DeleteShape removes the shape at shapeIndex from the slide.
func (d *Deck) DeleteShape(slideIndex, shapeIndex int) error {
	e, err := d.shapeAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	tree := slide.X().CSld.SpTree
	choice := tree.Choice[e.choiceIdx]
	switch {
	case e.sp != nil:
		choice.Sp = removeShape(choice.Sp, e.sp)
	case e.pic != nil:
		choice.Pic = removeShape(choice.Pic, e.pic)
	case e.frame != nil:
		choice.GraphicFrame = removeShape(choice.GraphicFrame, e.frame)
	case e.cxn != nil:
		choice.CxnSp = removeShape(choice.CxnSp, e.cxn)
	}
	if len(choice.Sp) == 0 && len(choice.Pic) == 0 && len(choice.GraphicFrame) == 0 &&
		len(choice.CxnSp) == 0 && len(choice.GrpSp) == 0 {
		tree.Choice = append(tree.Choice[:e.choiceIdx], tree.Choice[e.choiceIdx+1:]...)
	}
	return nil
}

func removeShape[T comparable](s []T, target T) []T {
	for i, v := range s {
		if v == target {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// SlideText joins all text content of a slide, one shape per block.
func (d *Deck) SlideText(slideIndex int) (string, error) {
	entries, err := d.shapes(slideIndex)
	if err != nil {
		return "", err
	}
	var blocks []string
	for _, e := range entries {
		if t := bodyText(e.textBody()); t != "" {
			blocks = append(blocks, t)
		}
	}
	return strings.Join(blocks, "\n"), nil
}

// PlaceholderInfo describes a placeholder on a slide.
type PlaceholderInfo struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
}

// Placeholders lists the placeholders of a slide.
func (d *Deck) Placeholders(slideIndex int) ([]PlaceholderInfo, error) {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return nil, err
	}
	var infos []PlaceholderInfo
	for _, ph := range slide.PlaceHolders() {
		infos = append(infos, PlaceholderInfo{
			Index: int(ph.Index()),
			Type:  ph.Type().String(),
			Text:  bodyText(ph.X().TxBody),
		})
	}
	return infos, nil
}

// SetPlaceholderText replaces the contents of the placeholder with the given
// placeholder idx value.
func (d *Deck) SetPlaceholderText(slideIndex, placeholderIndex int, text string) error {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	for _, ph := range slide.PlaceHolders() {
		if int(ph.Index()) == placeholderIndex {
			ph.SetText(text)
			return nil
		}
	}
	return fmt.Errorf("slide %d has no placeholder with index %d", slideIndex, placeholderIndex)
}

// SetTitle sets the slide title placeholder text. Both title and centered
// title placeholders qualify.
func (d *Deck) SetTitle(slideIndex int, title string) error {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	for _, ph := range slide.PlaceHolders() {
		t := ph.Type()
		if t == pml.ST_PlaceholderTypeTitle || t == pml.ST_PlaceholderTypeCtrTitle {
			ph.SetText(title)
			return nil
		}
	}
	return fmt.Errorf("slide %d has no title placeholder", slideIndex)
}

// Bullet is one entry of a bulleted list. Level 0 is the outermost level.
type Bullet struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// SetBullets replaces the body placeholder contents with a bulleted list.
func (d *Deck) SetBullets(slideIndex int, bullets []Bullet) error {
	if len(bullets) == 0 {
		return fmt.Errorf("bullet list is empty")
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	var target presentation.PlaceHolder
	found := false
	for _, ph := range slide.PlaceHolders() {
		t := ph.Type()
		if t == pml.ST_PlaceholderTypeBody || t == pml.ST_PlaceholderTypeUnset {
			target = ph
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("slide %d has no body placeholder", slideIndex)
	}

	target.ClearAll()
	for _, b := range bullets {
		para := target.AddParagraph()
		level := b.Level
		if level < 0 {
			level = 0
		}
		if level > 8 {
			level = 8
		}
		para.Properties().SetLevel(int32(level))
		para.Properties().SetBulletChar("•")
		para.AddRun().SetText(b.Text)
	}
	return nil
}

// Transition kinds accepted by SetTransition.
var transitionKinds = []string{"none", "fade", "push", "wipe", "circle", "dissolve", "random"}

// SetTransition sets the slide transition. kind "none" removes any
// transition. speed is "slow", "med", or "fast" (empty keeps the default).
// advanceAfterMs > 0 makes the slide auto-advance.
func (d *Deck) SetTransition(slideIndex int, kind, speed string, advanceAfterMs int) error {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return err
	}
	if kind == "none" {
		slide.X().Transition = nil
		return nil
	}

	tr := pml.NewCT_SlideTransition()
	tr.Choice = pml.NewCT_SlideTransitionChoice()
	switch kind {
	case "fade":
		tr.Choice.Fade = pml.NewCT_OptionalBlackTransition()
	case "push":
		tr.Choice.Push = pml.NewCT_SideDirectionTransition()
	case "wipe":
		tr.Choice.Wipe = pml.NewCT_SideDirectionTransition()
	case "circle":
		tr.Choice.Circle = pml.NewCT_Empty()
	case "dissolve":
		tr.Choice.Dissolve = pml.NewCT_Empty()
	case "random":
		tr.Choice.Random = pml.NewCT_Empty()
	default:
		return fmt.Errorf("unsupported transition %q (supported: %s)", kind, strings.Join(transitionKinds, ", "))
	}

	switch speed {
	case "", "fast":
		// fast is the format default
	case "slow":
		tr.SpdAttr = pml.ST_TransitionSpeedSlow
	case "med":
		tr.SpdAttr = pml.ST_TransitionSpeedMed
	default:
		return fmt.Errorf("unsupported transition speed %q (supported: slow, med, fast)", speed)
	}

	if advanceAfterMs > 0 {
		tr.AdvTmAttr = unioffice.Uint32(uint32(advanceAfterMs))
		tr.AdvClickAttr = unioffice.Bool(true)
	}
	slide.X().Transition = tr
	return nil
}
