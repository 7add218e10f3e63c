package render

import (
	"bytes"
	"image/png"
	"testing"
)

func baseSpec(kind string) ChartSpec {
	return ChartSpec{
		Kind:         kind,
		Title:        "Quarterly revenue",
		Categories:   []string{"Q1", "Q2", "Q3", "Q4"},
		SeriesNames:  []string{"2025"},
		SeriesValues: [][]float64{{10, 14, 9, 17}},
	}
}

func TestRenderChart_AllKinds(t *testing.T) {
	for _, kind := range chartKinds {
		spec := baseSpec(kind)
		if kind == "stacked_column" {
			spec.SeriesNames = append(spec.SeriesNames, "2026")
			spec.SeriesValues = append(spec.SeriesValues, []float64{11, 12, 13, 14})
		}
		data, err := RenderChart(spec)
		if err != nil {
			t.Errorf("%s: render failed: %v", kind, err)
			continue
		}
		if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
			t.Errorf("%s: output is not valid PNG: %v", kind, err)
		}
	}
}

func TestRenderChart_CustomSize(t *testing.T) {
	spec := baseSpec("column")
	spec.WidthPx, spec.HeightPx = 400, 300
	data, err := RenderChart(spec)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Errorf("got %dx%d, want 400x300", cfg.Width, cfg.Height)
	}
}

func TestRenderChart_LegendForLines(t *testing.T) {
	spec := baseSpec("line")
	spec.Legend = true
	spec.SeriesNames = []string{"2025", "2026"}
	spec.SeriesValues = [][]float64{{1, 2, 3, 4}, {4, 3, 2, 1}}
	if _, err := RenderChart(spec); err != nil {
		t.Fatalf("legend render failed: %v", err)
	}
}

func TestChartSpec_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ChartSpec)
	}{
		{"unknown kind", func(s *ChartSpec) { s.Kind = "bubble" }},
		{"no categories", func(s *ChartSpec) { s.Categories = nil }},
		{"no series", func(s *ChartSpec) { s.SeriesNames = nil; s.SeriesValues = nil }},
		{"name/value mismatch", func(s *ChartSpec) { s.SeriesNames = []string{"a", "b"} }},
		{"ragged values", func(s *ChartSpec) { s.SeriesValues = [][]float64{{1, 2}} }},
		{"multi-series pie", func(s *ChartSpec) {
			s.Kind = "pie"
			s.SeriesNames = []string{"a", "b"}
			s.SeriesValues = [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}
		}},
	}
	for _, tc := range cases {
		spec := baseSpec("column")
		tc.mutate(&spec)
		if err := spec.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	if err := baseSpec("area").Validate(); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}
}
