package render

import (
	"bytes"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart kinds accepted by ChartSpec. "column" and "bar" are synonyms: the
// renderer has no horizontal bar layout, so both produce vertical bars.
var chartKinds = []string{
	"column", "bar", "stacked_column", "line", "line_markers",
	"pie", "doughnut", "area", "scatter",
}

// ChartSpec describes a chart to be rendered into a PNG. Specs are retained
// per document so chart data can be updated and the picture re-rendered.
type ChartSpec struct {
	Kind         string      `json:"kind"`
	Title        string      `json:"title,omitempty"`
	Categories   []string    `json:"categories"`
	SeriesNames  []string    `json:"series_names"`
	SeriesValues [][]float64 `json:"series_values"`
	Legend       bool        `json:"legend"`

	// Output size in pixels. Zero means the 960x540 default.
	WidthPx  int `json:"width_px,omitempty"`
	HeightPx int `json:"height_px,omitempty"`
}

// Validate checks the spec shape before any rendering happens.
func (s ChartSpec) Validate() error {
	known := false
	for _, k := range chartKinds {
		if s.Kind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unsupported chart type %q (supported: %s)", s.Kind, strings.Join(chartKinds, ", "))
	}
	if len(s.Categories) == 0 {
		return fmt.Errorf("chart needs at least one category")
	}
	if len(s.SeriesNames) == 0 || len(s.SeriesNames) != len(s.SeriesValues) {
		return fmt.Errorf("number of series names (%d) must match number of series values (%d)",
			len(s.SeriesNames), len(s.SeriesValues))
	}
	for i, vals := range s.SeriesValues {
		if len(vals) != len(s.Categories) {
			return fmt.Errorf("series %q has %d values for %d categories",
				s.SeriesNames[i], len(vals), len(s.Categories))
		}
	}
	if (s.Kind == "pie" || s.Kind == "doughnut") && len(s.SeriesValues) != 1 {
		return fmt.Errorf("%s charts take exactly one series, got %d", s.Kind, len(s.SeriesValues))
	}
	return nil
}

func (s ChartSpec) size() (w, h int) {
	w, h = s.WidthPx, s.HeightPx
	if w <= 0 {
		w = 960
	}
	if h <= 0 {
		h = 540
	}
	return w, h
}

// RenderChart renders the spec to PNG bytes.
func RenderChart(s ChartSpec) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var err error
	switch s.Kind {
	case "pie":
		err = s.renderPie(&buf, false)
	case "doughnut":
		err = s.renderPie(&buf, true)
	case "column", "bar":
		err = s.renderBars(&buf)
	case "stacked_column":
		err = s.renderStacked(&buf)
	default: // line, line_markers, area, scatter
		err = s.renderXY(&buf)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", s.Kind, err)
	}
	return buf.Bytes(), nil
}

func (s ChartSpec) values(series int) []chart.Value {
	vals := make([]chart.Value, len(s.Categories))
	for i, cat := range s.Categories {
		vals[i] = chart.Value{Label: cat, Value: s.SeriesValues[series][i]}
	}
	return vals
}

func (s ChartSpec) renderPie(buf *bytes.Buffer, donut bool) error {
	w, h := s.size()
	if donut {
		graph := chart.DonutChart{Title: s.Title, Width: w, Height: h, Values: s.values(0)}
		return graph.Render(chart.PNG, buf)
	}
	graph := chart.PieChart{Title: s.Title, Width: w, Height: h, Values: s.values(0)}
	return graph.Render(chart.PNG, buf)
}

// renderBars draws vertical bars. Multiple series fall through to the
// stacked layout since the renderer has no grouped-bar mode.
func (s ChartSpec) renderBars(buf *bytes.Buffer) error {
	if len(s.SeriesValues) > 1 {
		return s.renderStacked(buf)
	}
	w, h := s.size()
	graph := chart.BarChart{
		Title:    s.Title,
		Width:    w,
		Height:   h,
		BarWidth: 60,
		Bars:     s.values(0),
	}
	return graph.Render(chart.PNG, buf)
}

func (s ChartSpec) renderStacked(buf *bytes.Buffer) error {
	w, h := s.size()
	bars := make([]chart.StackedBar, len(s.Categories))
	for i, cat := range s.Categories {
		vals := make([]chart.Value, len(s.SeriesNames))
		for j, name := range s.SeriesNames {
			vals[j] = chart.Value{Label: name, Value: s.SeriesValues[j][i]}
		}
		bars[i] = chart.StackedBar{Name: cat, Values: vals}
	}
	graph := chart.StackedBarChart{
		Title:  s.Title,
		Width:  w,
		Height: h,
		Bars:   bars,
	}
	return graph.Render(chart.PNG, buf)
}

func (s ChartSpec) renderXY(buf *bytes.Buffer) error {
	w, h := s.size()

	ticks := make([]chart.Tick, len(s.Categories))
	xs := make([]float64, len(s.Categories))
	for i, cat := range s.Categories {
		ticks[i] = chart.Tick{Value: float64(i), Label: cat}
		xs[i] = float64(i)
	}

	series := make([]chart.Series, len(s.SeriesNames))
	for i, name := range s.SeriesNames {
		style := chart.Style{StrokeColor: chart.GetDefaultColor(i)}
		switch s.Kind {
		case "line_markers":
			style.DotWidth = 4
			style.DotColor = chart.GetDefaultColor(i)
		case "area":
			style.FillColor = chart.GetDefaultColor(i).WithAlpha(64)
		case "scatter":
			style.StrokeWidth = chart.Disabled
			style.DotWidth = 5
			style.DotColor = chart.GetDefaultColor(i)
		}
		series[i] = chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: s.SeriesValues[i],
			Style:   style,
		}
	}

	graph := chart.Chart{
		Title:  s.Title,
		Width:  w,
		Height: h,
		XAxis:  chart.XAxis{Ticks: ticks},
		Series: series,
	}
	if s.Legend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	return graph.Render(chart.PNG, buf)
}
