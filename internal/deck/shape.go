package deck

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/dml"
)

// shapeTypes maps tool-facing shape names onto preset geometries.
var shapeTypes = map[string]dml.ST_ShapeType{
	"rectangle":            dml.ST_ShapeTypeRect,
	"rounded_rectangle":    dml.ST_ShapeTypeRoundRect,
	"oval":                 dml.ST_ShapeTypeEllipse,
	"triangle":             dml.ST_ShapeTypeTriangle,
	"right_triangle":       dml.ST_ShapeTypeRtTriangle,
	"diamond":              dml.ST_ShapeTypeDiamond,
	"pentagon":             dml.ST_ShapeTypePentagon,
	"hexagon":              dml.ST_ShapeTypeHexagon,
	"octagon":              dml.ST_ShapeTypeOctagon,
	"star":                 dml.ST_ShapeTypeStar5,
	"arrow":                dml.ST_ShapeTypeRightArrow,
	"left_arrow":           dml.ST_ShapeTypeLeftArrow,
	"up_arrow":             dml.ST_ShapeTypeUpArrow,
	"down_arrow":           dml.ST_ShapeTypeDownArrow,
	"double_arrow":         dml.ST_ShapeTypeLeftRightArrow,
	"heart":                dml.ST_ShapeTypeHeart,
	"lightning_bolt":       dml.ST_ShapeTypeLightningBolt,
	"sun":                  dml.ST_ShapeTypeSun,
	"moon":                 dml.ST_ShapeTypeMoon,
	"cloud":                dml.ST_ShapeTypeCloud,
	"smiley_face":          dml.ST_ShapeTypeSmileyFace,
	"donut":                dml.ST_ShapeTypeDonut,
	"cube":                 dml.ST_ShapeTypeCube,
	"can":                  dml.ST_ShapeTypeCan,
	"bevel":                dml.ST_ShapeTypeBevel,
	"frame":                dml.ST_ShapeTypeFrame,
	"plus":                 dml.ST_ShapeTypePlus,
	"flowchart_process":    dml.ST_ShapeTypeFlowChartProcess,
	"flowchart_decision":   dml.ST_ShapeTypeFlowChartDecision,
	"flowchart_terminator": dml.ST_ShapeTypeFlowChartTerminator,
}

// ShapeNames lists the supported autoshape names, sorted.
func ShapeNames() []string {
	names := make([]string, 0, len(shapeTypes))
	for name := range shapeTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseHexRGB(hex string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q: want RRGGBB hex", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: want RRGGBB hex", hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// ShapeSpec describes a new autoshape. Geometry is in inches, colors are
// RRGGBB hex. Empty FillHex leaves the default fill, empty LineHex the
// default outline.
type ShapeSpec struct {
	Name          string
	X, Y          float64
	Width, Height float64
	Text          string
	FillHex       string
	LineHex       string
	LineWidthPt   float64
	Style         TextStyle
}

// AddShape places an autoshape on the slide and returns its shape index.
func (d *Deck) AddShape(slideIndex int, spec ShapeSpec) (int, error) {
	geom, ok := shapeTypes[spec.Name]
	if !ok {
		return 0, fmt.Errorf("unsupported shape %q (supported: %s)", spec.Name, strings.Join(ShapeNames(), ", "))
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	// Parse the colors before touching the slide so a bad value leaves no
	// half-built shape behind.
	var fill, line color.Color
	hasFill, hasLine := spec.FillHex != "", spec.LineHex != ""
	if hasFill {
		r, g, b, err := parseHexRGB(spec.FillHex)
		if err != nil {
			return 0, err
		}
		fill = color.RGB(r, g, b)
	}
	if hasLine {
		r, g, b, err := parseHexRGB(spec.LineHex)
		if err != nil {
			return 0, err
		}
		line = color.RGB(r, g, b)
	}

	sp := slide.AddTextBox()
	// The box starts life as a text box; the preset geometry turns it into
	// a drawn shape.
	if nv := sp.X().NvSpPr; nv != nil && nv.CNvSpPr != nil {
		nv.CNvSpPr.TxBoxAttr = nil
	}
	props := sp.Properties()
	props.SetGeometry(geom)
	props.SetPosition(
		measurement.Distance(spec.X)*measurement.Inch,
		measurement.Distance(spec.Y)*measurement.Inch)
	props.SetSize(
		measurement.Distance(spec.Width)*measurement.Inch,
		measurement.Distance(spec.Height)*measurement.Inch)

	if hasFill {
		props.SetSolidFill(fill)
	}
	if hasLine {
		ln := props.LineProperties()
		ln.SetSolidFill(line)
		if spec.LineWidthPt > 0 {
			ln.SetWidth(measurement.Distance(spec.LineWidthPt) * measurement.Point)
		}
	}

	if spec.Text != "" {
		para := sp.AddParagraph()
		para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
		run := para.AddRun()
		run.SetText(spec.Text)
		run.Properties()
		applyRunStyle(run.X().R.RPr, spec.Style)
	}

	entries, err := d.shapes(slideIndex)
	if err != nil {
		return 0, err
	}
	return len(entries) - 1, nil
}

// Connector kinds.
var connectorGeoms = map[string]dml.ST_ShapeType{
	"straight": dml.ST_ShapeTypeLine,
	"elbow":    dml.ST_ShapeTypeBentConnector3,
	"curved":   dml.ST_ShapeTypeCurvedConnector3,
}

// ConnectorSpec describes a line from one point to another, in inches.
type ConnectorSpec struct {
	Kind        string
	X1, Y1      float64
	X2, Y2      float64
	LineHex     string
	LineWidthPt float64
}

// AddConnector draws a connector between two points and returns its shape
// index.
func (d *Deck) AddConnector(slideIndex int, spec ConnectorSpec) (int, error) {
	geom, ok := connectorGeoms[spec.Kind]
	if !ok {
		return 0, fmt.Errorf("unsupported connector %q (supported: straight, elbow, curved)", spec.Kind)
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	lineHex := spec.LineHex
	if lineHex == "" {
		lineHex = "000000"
	}
	r, g, b, err := parseHexRGB(lineHex)
	if err != nil {
		return 0, err
	}

	x, w := spec.X1, spec.X2-spec.X1
	y, h := spec.Y1, spec.Y2-spec.Y1
	flipH, flipV := false, false
	if w < 0 {
		x, w, flipH = spec.X2, -w, true
	}
	if h < 0 {
		y, h, flipV = spec.Y2, -h, true
	}

	sp := slide.AddTextBox()
	if nv := sp.X().NvSpPr; nv != nil && nv.CNvSpPr != nil {
		nv.CNvSpPr.TxBoxAttr = nil
	}
	props := sp.Properties()
	props.SetGeometry(geom)
	props.SetPosition(
		measurement.Distance(x)*measurement.Inch,
		measurement.Distance(y)*measurement.Inch)
	props.SetSize(
		measurement.Distance(w)*measurement.Inch,
		measurement.Distance(h)*measurement.Inch)
	props.SetNoFill()
	if xf := props.X().Xfrm; xf != nil {
		if flipH {
			xf.FlipHAttr = unioffice.Bool(true)
		}
		if flipV {
			xf.FlipVAttr = unioffice.Bool(true)
		}
	}

	ln := props.LineProperties()
	ln.SetSolidFill(color.RGB(r, g, b))
	widthPt := spec.LineWidthPt
	if widthPt <= 0 {
		widthPt = 1
	}
	ln.SetWidth(measurement.Distance(widthPt) * measurement.Point)

	entries, err := d.shapes(slideIndex)
	if err != nil {
		return 0, err
	}
	return len(entries) - 1, nil
}

// SetShapeFill sets a solid fill color on an existing shape.
func (d *Deck) SetShapeFill(slideIndex, shapeIndex int, fillHex string) error {
	e, err := d.shapeAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	if e.sp == nil || e.sp.SpPr == nil {
		return fmt.Errorf("shape %d on slide %d cannot take a fill", shapeIndex, slideIndex)
	}
	r, g, b, err := parseHexRGB(fillHex)
	if err != nil {
		return err
	}
	fill := dml.NewCT_SolidColorFillProperties()
	fill.SrgbClr = dml.NewCT_SRgbColor()
	fill.SrgbClr.ValAttr = fmt.Sprintf("%02X%02X%02X", r, g, b)
	e.sp.SpPr.NoFill = nil
	e.sp.SpPr.SolidFill = fill
	return nil
}
