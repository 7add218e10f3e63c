package deck

import (
	"fmt"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
)

// TableSpec describes a new table. Geometry is in inches. Data may be nil or
// ragged; missing cells stay empty, extra cells are ignored.
type TableSpec struct {
	Rows, Cols    int
	X, Y          float64
	Width, Height float64
	Data          [][]string
	// HeaderFillHex fills the first row's cells when non-empty.
	HeaderFillHex string
	HeaderStyle   TextStyle
}

func coord(v int64) dml.ST_Coordinate {
	return dml.ST_Coordinate{ST_CoordinateUnqualified: &v}
}

// nextShapeID returns an unused non-visual drawing id for the slide.
func (d *Deck) nextShapeID(slideIndex int) uint32 {
	entries, err := d.shapes(slideIndex)
	if err != nil {
		return 1000
	}
	var max uint32
	for _, e := range entries {
		var id uint32
		switch {
		case e.sp != nil && e.sp.NvSpPr != nil && e.sp.NvSpPr.CNvPr != nil:
			id = e.sp.NvSpPr.CNvPr.IdAttr
		case e.pic != nil && e.pic.NvPicPr != nil && e.pic.NvPicPr.CNvPr != nil:
			id = e.pic.NvPicPr.CNvPr.IdAttr
		case e.frame != nil && e.frame.NvGraphicFramePr != nil && e.frame.NvGraphicFramePr.CNvPr != nil:
			id = e.frame.NvGraphicFramePr.CNvPr.IdAttr
		case e.cxn != nil && e.cxn.NvCxnSpPr != nil && e.cxn.NvCxnSpPr.CNvPr != nil:
			id = e.cxn.NvCxnSpPr.CNvPr.IdAttr
		}
		if id > max {
			max = id
		}
	}
	return max + 1
}

func newTableCell(text string, style TextStyle) *dml.CT_TableCell {
	tc := dml.NewCT_TableCell()
	tc.TxBody = dml.NewCT_TextBody()
	para := dml.NewCT_TextParagraph()
	if text != "" {
		run := dml.NewCT_RegularTextRun()
		run.T = text
		run.RPr = dml.NewCT_TextCharacterProperties()
		applyRunStyle(run.RPr, style)
		tr := dml.NewEG_TextRun()
		tr.R = run
		para.EG_TextRun = append(para.EG_TextRun, tr)
	}
	tc.TxBody.P = append(tc.TxBody.P, para)
	tc.TcPr = dml.NewCT_TableCellProperties()
	return tc
}

// AddTable places a table on the slide and returns its shape index.
func (d *Deck) AddTable(slideIndex int, spec TableSpec) (int, error) {
	if spec.Rows < 1 || spec.Cols < 1 {
		return 0, fmt.Errorf("table needs at least one row and one column, got %dx%d", spec.Rows, spec.Cols)
	}
	slide, err := d.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	tbl := dml.NewCT_Table()
	tbl.TblPr = dml.NewCT_TableProperties()
	tbl.TblPr.FirstRowAttr = unioffice.Bool(spec.HeaderFillHex != "")
	tbl.TblPr.BandRowAttr = unioffice.Bool(true)

	colWidth := emu(spec.Width) / int64(spec.Cols)
	for c := 0; c < spec.Cols; c++ {
		gc := dml.NewCT_TableCol()
		gc.WAttr = coord(colWidth)
		tbl.TblGrid.GridCol = append(tbl.TblGrid.GridCol, gc)
	}

	rowHeight := emu(spec.Height) / int64(spec.Rows)
	for r := 0; r < spec.Rows; r++ {
		row := dml.NewCT_TableRow()
		row.HAttr = coord(rowHeight)
		for c := 0; c < spec.Cols; c++ {
			text := ""
			if r < len(spec.Data) && c < len(spec.Data[r]) {
				text = spec.Data[r][c]
			}
			style := TextStyle{}
			if r == 0 && spec.HeaderFillHex != "" {
				style = spec.HeaderStyle
			}
			tc := newTableCell(text, style)
			if r == 0 && spec.HeaderFillHex != "" {
				if err := fillCell(tc, spec.HeaderFillHex); err != nil {
					return 0, err
				}
			}
			row.Tc = append(row.Tc, tc)
		}
		tbl.Tr = append(tbl.Tr, row)
	}

	gf := pml.NewCT_GraphicalObjectFrame()
	gf.NvGraphicFramePr.CNvPr.IdAttr = d.nextShapeID(slideIndex)
	gf.NvGraphicFramePr.CNvPr.NameAttr = fmt.Sprintf("Table %d", gf.NvGraphicFramePr.CNvPr.IdAttr)
	gf.Xfrm.Off = dml.NewCT_Point2D()
	gf.Xfrm.Off.XAttr = coord(emu(spec.X))
	gf.Xfrm.Off.YAttr = coord(emu(spec.Y))
	gf.Xfrm.Ext = dml.NewCT_PositiveSize2D()
	gf.Xfrm.Ext.CxAttr = emu(spec.Width)
	gf.Xfrm.Ext.CyAttr = emu(spec.Height)
	gf.Graphic.GraphicData.UriAttr = tableGraphicURI
	gf.Graphic.GraphicData.Any = append(gf.Graphic.GraphicData.Any, tbl)

	choice := pml.NewCT_GroupShapeChoice()
	choice.GraphicFrame = append(choice.GraphicFrame, gf)
	tree := slide.X().CSld.SpTree
	tree.Choice = append(tree.Choice, choice)

	entries, err := d.shapes(slideIndex)
	if err != nil {
		return 0, err
	}
	return len(entries) - 1, nil
}

func (d *Deck) tableAt(slideIndex, shapeIndex int) (*dml.CT_Table, error) {
	e, err := d.shapeAt(slideIndex, shapeIndex)
	if err != nil {
		return nil, err
	}
	if e.kind != "table" || e.frame == nil {
		return nil, fmt.Errorf("shape %d on slide %d is not a table", shapeIndex, slideIndex)
	}
	for _, any := range e.frame.Graphic.GraphicData.Any {
		if tbl, ok := any.(*dml.CT_Table); ok {
			return tbl, nil
		}
	}
	return nil, fmt.Errorf("table data missing from shape %d on slide %d", shapeIndex, slideIndex)
}

func tableCell(tbl *dml.CT_Table, row, col int) (*dml.CT_TableCell, error) {
	if row < 0 || row >= len(tbl.Tr) {
		return nil, fmt.Errorf("invalid row %d: table has %d rows", row, len(tbl.Tr))
	}
	cells := tbl.Tr[row].Tc
	if col < 0 || col >= len(cells) {
		return nil, fmt.Errorf("invalid column %d: table has %d columns", col, len(cells))
	}
	return cells[col], nil
}

// SetTableCell replaces the text of one cell.
func (d *Deck) SetTableCell(slideIndex, shapeIndex, row, col int, text string) error {
	tbl, err := d.tableAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	tc, err := tableCell(tbl, row, col)
	if err != nil {
		return err
	}
	fresh := newTableCell(text, TextStyle{})
	tc.TxBody = fresh.TxBody
	return nil
}

func fillCell(tc *dml.CT_TableCell, fillHex string) error {
	r, g, b, err := parseHexRGB(fillHex)
	if err != nil {
		return err
	}
	if tc.TcPr == nil {
		tc.TcPr = dml.NewCT_TableCellProperties()
	}
	fill := dml.NewCT_SolidColorFillProperties()
	fill.SrgbClr = dml.NewCT_SRgbColor()
	fill.SrgbClr.ValAttr = fmt.Sprintf("%02X%02X%02X", r, g, b)
	tc.TcPr.NoFill = nil
	tc.TcPr.SolidFill = fill
	return nil
}

// FormatTableCell applies text formatting, an optional background fill, and
// an optional alignment to one cell.
func (d *Deck) FormatTableCell(slideIndex, shapeIndex, row, col int, style TextStyle, fillHex, align string) error {
	tbl, err := d.tableAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}
	tc, err := tableCell(tbl, row, col)
	if err != nil {
		return err
	}
	if fillHex != "" {
		if err := fillCell(tc, fillHex); err != nil {
			return err
		}
	}
	if tc.TxBody == nil {
		return nil
	}
	for _, p := range tc.TxBody.P {
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
