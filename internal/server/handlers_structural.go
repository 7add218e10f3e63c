package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidesmith/ppt-tools-mcp/internal/deck"
	"github.com/slidesmith/ppt-tools-mcp/internal/render"
)

// Chart pictures are rendered at double screen resolution so they stay crisp
// when projected.
const chartRenderDPI = 192

// chartKey identifies a chart picture within a document's chart registry.
func chartKey(slideIndex, shapeIndex int) string {
	return fmt.Sprintf("%d:%d", slideIndex, shapeIndex)
}

// === Tables ===

type addTableArgs struct {
	PresentationID string     `json:"presentation_id"`
	SlideIndex     int        `json:"slide_index"`
	Rows           int        `json:"rows"`
	Cols           int        `json:"cols"`
	X              *float64   `json:"x"`
	Y              *float64   `json:"y"`
	Width          *float64   `json:"width"`
	Height         *float64   `json:"height"`
	Data           [][]string `json:"data"`
	HeaderFill     []int      `json:"header_fill"`
}

func (s *Server) handleAddTable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addTableArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	headerHex, err := hexFromTriple(a.HeaderFill)
	if err != nil {
		return errResult(err)
	}

	x, y, w, h, adjusted := doc.Deck.ClampBox(
		val(a.X, 1), val(a.Y, 1), val(a.Width, 8), val(a.Height, 3))

	spec := deck.TableSpec{
		Rows: a.Rows, Cols: a.Cols,
		X: x, Y: y, Width: w, Height: h,
		Data:          a.Data,
		HeaderFillHex: headerHex,
	}
	if headerHex != "" {
		spec.HeaderStyle = deck.TextStyle{Bold: true, ColorHex: "FFFFFF"}
	}
	shapeIdx, err := doc.Deck.AddTable(a.SlideIndex, spec)
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message         string `json:"message"`
		PresentationID  string `json:"presentation_id"`
		SlideIndex      int    `json:"slide_index"`
		ShapeIndex      int    `json:"shape_index"`
		Rows            int    `json:"rows"`
		Cols            int    `json:"cols"`
		PositionClamped bool   `json:"position_clamped,omitempty"`
	}{"Added table", doc.ID, a.SlideIndex, shapeIdx, a.Rows, a.Cols, adjusted}), nil
}

type formatTableCellArgs struct {
	PresentationID string  `json:"presentation_id"`
	SlideIndex     int     `json:"slide_index"`
	ShapeIndex     int     `json:"shape_index"`
	Row            int     `json:"row"`
	Col            int     `json:"col"`
	Text           *string `json:"text"`
	FontSize       float64 `json:"font_size"`
	Bold           bool    `json:"bold"`
	Italic         bool    `json:"italic"`
	Color          []int   `json:"color"`
	Fill           []int   `json:"fill"`
	Alignment      string  `json:"alignment"`
}

func (s *Server) handleFormatTableCell(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a formatTableCellArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	colorHex, err := hexFromTriple(a.Color)
	if err != nil {
		return errResult(err)
	}
	fillHex, err := hexFromTriple(a.Fill)
	if err != nil {
		return errResult(err)
	}

	if a.Text != nil {
		if err := doc.Deck.SetTableCell(a.SlideIndex, a.ShapeIndex, a.Row, a.Col, *a.Text); err != nil {
			return errResult(err)
		}
	}
	style := deck.TextStyle{
		SizePt:   clampFontSize(a.FontSize),
		Bold:     a.Bold,
		Italic:   a.Italic,
		ColorHex: colorHex,
	}
	if err := doc.Deck.FormatTableCell(a.SlideIndex, a.ShapeIndex, a.Row, a.Col, style, fillHex, a.Alignment); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		ShapeIndex     int    `json:"shape_index"`
		Row            int    `json:"row"`
		Col            int    `json:"col"`
	}{"Formatted table cell", doc.ID, a.SlideIndex, a.ShapeIndex, a.Row, a.Col}), nil
}

// === Shapes ===

type addShapeArgs struct {
	PresentationID string   `json:"presentation_id"`
	SlideIndex     int      `json:"slide_index"`
	ShapeType      string   `json:"shape_type"`
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	Width          *float64 `json:"width"`
	Height         *float64 `json:"height"`
	Text           string   `json:"text"`
	FillColor      []int    `json:"fill_color"`
	LineColor      []int    `json:"line_color"`
	LineWidth      float64  `json:"line_width"`
	FontSize       float64  `json:"font_size"`
	FontColor      []int    `json:"font_color"`
}

func (s *Server) handleAddShape(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addShapeArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	fillHex, err := hexFromTriple(a.FillColor)
	if err != nil {
		return errResult(err)
	}
	lineHex, err := hexFromTriple(a.LineColor)
	if err != nil {
		return errResult(err)
	}
	fontHex, err := hexFromTriple(a.FontColor)
	if err != nil {
		return errResult(err)
	}

	x, y, w, h, adjusted := doc.Deck.ClampBox(
		val(a.X, 1), val(a.Y, 1), val(a.Width, 2), val(a.Height, 1))

	shapeIdx, err := doc.Deck.AddShape(a.SlideIndex, deck.ShapeSpec{
		Name: a.ShapeType,
		X:    x, Y: y, Width: w, Height: h,
		Text:        a.Text,
		FillHex:     fillHex,
		LineHex:     lineHex,
		LineWidthPt: a.LineWidth,
		Style: deck.TextStyle{
			SizePt:   clampFontSize(a.FontSize),
			ColorHex: fontHex,
		},
	})
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message         string `json:"message"`
		PresentationID  string `json:"presentation_id"`
		SlideIndex      int    `json:"slide_index"`
		ShapeIndex      int    `json:"shape_index"`
		ShapeType       string `json:"shape_type"`
		PositionClamped bool   `json:"position_clamped,omitempty"`
	}{"Added shape", doc.ID, a.SlideIndex, shapeIdx, a.ShapeType, adjusted}), nil
}

type addConnectorArgs struct {
	PresentationID string  `json:"presentation_id"`
	SlideIndex     int     `json:"slide_index"`
	ConnectorType  string  `json:"connector_type"`
	X1             float64 `json:"x1"`
	Y1             float64 `json:"y1"`
	X2             float64 `json:"x2"`
	Y2             float64 `json:"y2"`
	LineColor      []int   `json:"line_color"`
	LineWidth      float64 `json:"line_width"`
}

func (s *Server) handleAddConnector(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addConnectorArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	lineHex, err := hexFromTriple(a.LineColor)
	if err != nil {
		return errResult(err)
	}
	kind := a.ConnectorType
	if kind == "" {
		kind = "straight"
	}

	shapeIdx, err := doc.Deck.AddConnector(a.SlideIndex, deck.ConnectorSpec{
		Kind: kind,
		X1:   a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2,
		LineHex:     lineHex,
		LineWidthPt: a.LineWidth,
	})
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		ShapeIndex     int    `json:"shape_index"`
	}{"Added connector", doc.ID, a.SlideIndex, shapeIdx}), nil
}

// === Charts ===

type addChartArgs struct {
	PresentationID string      `json:"presentation_id"`
	SlideIndex     int         `json:"slide_index"`
	ChartType      string      `json:"chart_type"`
	Categories     []string    `json:"categories"`
	SeriesNames    []string    `json:"series_names"`
	SeriesValues   [][]float64 `json:"series_values"`
	X              *float64    `json:"x"`
	Y              *float64    `json:"y"`
	Width          *float64    `json:"width"`
	Height         *float64    `json:"height"`
	Title          string      `json:"title"`
	Legend         bool        `json:"legend"`
}

func (s *Server) handleAddChart(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addChartArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	x, y, w, h, adjusted := doc.Deck.ClampBox(
		val(a.X, 1), val(a.Y, 1), val(a.Width, 8), val(a.Height, 4.5))

	spec := render.ChartSpec{
		Kind:         a.ChartType,
		Title:        a.Title,
		Categories:   a.Categories,
		SeriesNames:  a.SeriesNames,
		SeriesValues: a.SeriesValues,
		Legend:       a.Legend,
		WidthPx:      int(w * chartRenderDPI),
		HeightPx:     int(h * chartRenderDPI),
	}
	data, err := render.RenderChart(spec)
	if err != nil {
		return errResult(err)
	}
	shapeIdx, err := doc.Deck.AddImageBytes(a.SlideIndex, data,
		deck.ImageSpec{X: x, Y: y, Width: w, Height: h})
	if err != nil {
		return errResult(err)
	}
	doc.Charts[chartKey(a.SlideIndex, shapeIdx)] = spec

	return textResult(struct {
		Message         string `json:"message"`
		PresentationID  string `json:"presentation_id"`
		SlideIndex      int    `json:"slide_index"`
		ShapeIndex      int    `json:"shape_index"`
		ChartType       string `json:"chart_type"`
		PositionClamped bool   `json:"position_clamped,omitempty"`
	}{"Added chart", doc.ID, a.SlideIndex, shapeIdx, a.ChartType, adjusted}), nil
}

type updateChartDataArgs struct {
	PresentationID string      `json:"presentation_id"`
	SlideIndex     int         `json:"slide_index"`
	ShapeIndex     int         `json:"shape_index"`
	Categories     []string    `json:"categories"`
	SeriesNames    []string    `json:"series_names"`
	SeriesValues   [][]float64 `json:"series_values"`
}

func (s *Server) handleUpdateChartData(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a updateChartDataArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	key := chartKey(a.SlideIndex, a.ShapeIndex)
	spec, ok := doc.Charts[key]
	if !ok {
		return errResult(fmt.Errorf("shape %d on slide %d is not a chart created by add_chart", a.ShapeIndex, a.SlideIndex))
	}

	spec.Categories = a.Categories
	spec.SeriesNames = a.SeriesNames
	spec.SeriesValues = a.SeriesValues
	data, err := render.RenderChart(spec)
	if err != nil {
		return errResult(err)
	}
	if err := doc.Deck.ReplacePicture(a.SlideIndex, a.ShapeIndex, data); err != nil {
		return errResult(err)
	}
	doc.Charts[key] = spec

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		ShapeIndex     int    `json:"shape_index"`
	}{"Updated chart data", doc.ID, a.SlideIndex, a.ShapeIndex}), nil
}
