// Package textfit estimates whether text fits a shape container and picks
// font sizes that do.
//
// The estimates are deliberately crude: a four-bucket character-width table
// scaled by font size, no real font metrics. That is enough to stop obvious
// overflow before a document is saved, and it keeps the package free of
// font-file dependencies. All container dimensions are in inches, font
// sizes in points.
package textfit

import (
	"fmt"
	"strings"
)

// Relative character widths. Derived from eyeballing common UI fonts;
// multiplied by font size and an empirical 0.6 correction factor.
const (
	widthNarrow = 0.6
	widthNormal = 1.0
	widthWide   = 1.3
	widthSpace  = 0.5

	widthFactor = 0.6
	lineSpacing = 1.2
	heightFudge = 1.3

	// Containers are never filled edge to edge.
	fillRatio = 0.9
)

// MinFontSize is the absolute floor for any suggested or applied size.
const MinFontSize = 8

// EstimateWidth returns the estimated rendered width of a single line of
// text, in points. Multi-line input is measured by its widest line.
func EstimateWidth(text string, sizePt int) float64 {
	widest := 0.0
	for _, line := range strings.Split(text, "\n") {
		w := 0.0
		for _, r := range line {
			switch {
			case strings.ContainsRune("iltj", r):
				w += widthNarrow
			case strings.ContainsRune("mwMW", r):
				w += widthWide
			case r == ' ':
				w += widthSpace
			default:
				w += widthNormal
			}
		}
		if w > widest {
			widest = w
		}
	}
	return widest * float64(sizePt) * widthFactor
}

// EstimateHeight returns the estimated rendered height of the text block,
// in points, assuming 1.2 line spacing.
func EstimateHeight(text string, sizePt int) float64 {
	lines := strings.Count(text, "\n") + 1
	return float64(lines) * float64(sizePt) * lineSpacing * heightFudge
}

// OptimalSize finds the largest font size in [minPt, maxPt] whose estimated
// width and height both fit within 90% of the container. If nothing fits it
// returns minPt: the size never drops below the caller's floor.
func OptimalSize(text string, widthIn, heightIn float64, minPt, maxPt int) int {
	if minPt < MinFontSize {
		minPt = MinFontSize
	}
	if maxPt < minPt {
		maxPt = minPt
	}
	widthPt := widthIn * 72 * fillRatio
	heightPt := heightIn * 72 * fillRatio

	for size := maxPt; size >= minPt; size-- {
		if EstimateWidth(text, size) <= widthPt && EstimateHeight(text, size) <= heightPt {
			return size
		}
	}
	return minPt
}

// Wrap greedily wraps text so each line's estimated width stays within the
// container width. Words longer than the container stay on their own line
// rather than being split.
func Wrap(text string, widthIn float64, sizePt int) string {
	if text == "" {
		return text
	}
	maxPt := widthIn * 72

	var lines []string
	var current []string
	for _, word := range strings.Fields(text) {
		candidate := strings.Join(append(current, word), " ")
		if EstimateWidth(candidate, sizePt) <= maxPt || len(current) == 0 {
			current = append(current, word)
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

// Report is the result of a fit check against a container.
type Report struct {
	Fits              bool     `json:"fits"`
	EstimatedOverflow bool     `json:"estimated_overflow"`
	SuggestedSizePt   int      `json:"suggested_font_size"`
	SuggestedWidthPt  float64  `json:"suggested_width_pt,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
	NeedsOptimization bool     `json:"needs_optimization"`
}

// longLineThreshold flags lines likely to wrap badly regardless of size.
const longLineThreshold = 100

// CheckFit reports whether text at the given size fits a container, and if
// not, suggests a smaller size (never below MinFontSize) and a wider box.
func CheckFit(text string, widthIn, heightIn float64, sizePt int) *Report {
	rep := &Report{Fits: true, SuggestedSizePt: sizePt}
	if text == "" {
		return rep
	}

	widthPt := widthIn * 72
	estimated := EstimateWidth(text, sizePt)
	if estimated > widthPt {
		rep.Fits = false
		rep.EstimatedOverflow = true
		rep.NeedsOptimization = true

		suggested := OptimalSize(text, widthIn, heightIn, MinFontSize, sizePt)
		rep.SuggestedSizePt = suggested
		rep.SuggestedWidthPt = estimated * 1.2
		rep.Warnings = append(rep.Warnings, fmt.Sprintf(
			"text may overflow; consider font size %dpt or width %.1fpt",
			suggested, rep.SuggestedWidthPt))
	}

	for _, line := range strings.Split(text, "\n") {
		if len(line) > longLineThreshold {
			rep.Warnings = append(rep.Warnings, "very long lines detected; consider adding line breaks")
			rep.NeedsOptimization = true
			break
		}
	}
	return rep
}
