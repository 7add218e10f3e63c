package deck

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/dml"
)

// TextStyle carries run-level formatting. Zero values mean "leave as is".
type TextStyle struct {
	SizePt    float64 `json:"size_pt,omitempty"`
	FontName  string  `json:"font_name,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	// ColorHex is RRGGBB without the leading '#'.
	ColorHex string `json:"color_hex,omitempty"`
}

// TextBoxSpec describes a new text box. Geometry is in inches.
type TextBoxSpec struct {
	X, Y          float64
	Width, Height float64
	Text          string
	Align         string
	Style         TextStyle
}

func alignType(name string) (dml.ST_TextAlignType, error) {
	switch name {
	case "", "left":
		return dml.ST_TextAlignTypeL, nil
	case "center":
		return dml.ST_TextAlignTypeCtr, nil
	case "right":
		return dml.ST_TextAlignTypeR, nil
	case "justify":
		return dml.ST_TextAlignTypeJust, nil
	default:
		return dml.ST_TextAlignTypeL, fmt.Errorf("unsupported alignment %q (supported: left, center, right, justify)", name)
	}
}

func applyRunStyle(rp *dml.CT_TextCharacterProperties, st TextStyle) {
	if st.SizePt > 0 {
		rp.SzAttr = unioffice.Int32(int32(st.SizePt * 100))
	}
	if st.Bold {
		rp.BAttr = unioffice.Bool(true)
	}
	if st.Italic {
		rp.IAttr = unioffice.Bool(true)
	}
	if st.Underline {
		rp.UAttr = dml.ST_TextUnderlineTypeSng
	}
	if st.FontName != "" {
		rp.Latin = dml.NewCT_TextFont()
		rp.Latin.TypefaceAttr = st.FontName
	}
	if st.ColorHex != "" {
		fill := dml.NewCT_SolidColorFillProperties()
		fill.SrgbClr = dml.NewCT_SRgbColor()
		fill.SrgbClr.ValAttr = st.ColorHex
		rp.SolidFill = fill
	}
}

// AddTextBox places a text box on the slide and returns its shape index.
// Newlines in the text become separate paragraphs.
func (d *Deck) AddTextBox(slideIndex int, spec TextBoxSpec) (int, error) {
	slide, err := d.slide(slideIndex)
	if err != nil {
		return 0, err
	}
	align, err := alignType(spec.Align)
	if err != nil {
		return 0, err
	}

	tb := slide.AddTextBox()
	tb.Properties().SetPosition(
		measurement.Distance(spec.X)*measurement.Inch,
		measurement.Distance(spec.Y)*measurement.Inch)
	tb.Properties().SetSize(
		measurement.Distance(spec.Width)*measurement.Inch,
		measurement.Distance(spec.Height)*measurement.Inch)

	// Wrap inside the box instead of growing past the slide edge.
	if x := tb.X(); x.TxBody != nil && x.TxBody.BodyPr != nil {
		x.TxBody.BodyPr.WrapAttr = dml.ST_TextWrappingTypeSquare
	}

	for _, line := range strings.Split(spec.Text, "\n") {
		para := tb.AddParagraph()
		para.Properties().SetAlign(align)
		run := para.AddRun()
		run.SetText(line)
		run.Properties()
		applyRunStyle(run.X().R.RPr, spec.Style)
	}

	entries, err := d.shapes(slideIndex)
	if err != nil {
		return 0, err
	}
	return len(entries) - 1, nil
}

// FormatShapeText applies run formatting and paragraph alignment to all text
// of an existing shape. An empty align keeps the current alignment.
func (d *Deck) FormatShapeText(slideIndex, shapeIndex int, style TextStyle, align string) error {
	e, err := d.shapeAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	body := e.textBody()
	if body == nil {
		return fmt.Errorf("shape %d on slide %d has no text", shapeIndex, slideIndex)
	}

	for _, p := range body.P {
		if align != "" {
			a, err := alignType(align)
			if err != nil {
				return err
			}
			if p.PPr == nil {
				p.PPr = dml.NewCT_TextParagraphProperties()
			}
			p.PPr.AlgnAttr = a
		}
		for _, tr := range p.EG_TextRun {
			if tr.R == nil {
				continue
			}
			if tr.R.RPr == nil {
				tr.R.RPr = dml.NewCT_TextCharacterProperties()
			}
			applyRunStyle(tr.R.RPr, style)
		}
	}
	return nil
}

// ReplaceShapeText swaps the text content of a shape while keeping the
// formatting of its first run.
func (d *Deck) ReplaceShapeText(slideIndex, shapeIndex int, text string) error {
	e, err := d.shapeAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	body := e.textBody()
	if body == nil {
		return fmt.Errorf("shape %d on slide %d has no text", shapeIndex, slideIndex)
	}

	var keep *dml.CT_TextCharacterProperties
	for _, p := range body.P {
		for _, tr := range p.EG_TextRun {
			if tr.R != nil && tr.R.RPr != nil {
				keep = tr.R.RPr
				break
			}
		}
		if keep != nil {
			break
		}
	}

	body.P = nil
	for _, line := range strings.Split(text, "\n") {
		para := dml.NewCT_TextParagraph()
		run := dml.NewCT_RegularTextRun()
		run.T = line
		run.RPr = keep
		tr := dml.NewEG_TextRun()
		tr.R = run
		para.EG_TextRun = append(para.EG_TextRun, tr)
		body.P = append(body.P, para)
	}
	return nil
}
