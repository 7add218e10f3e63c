package deck

import (
	"fmt"
	"os"

	"github.com/unidoc/unioffice/presentation"
)

// EMU (English Metric Units) per inch and per point, the native coordinate
// unit of OOXML drawing.
const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// Default slide size (16:9) used when the presentation carries no sldSz.
const (
	defaultSlideWidthIn  = 13.333
	defaultSlideHeightIn = 7.5
)

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

func inches(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// Deck is an open presentation document.
type Deck struct {
	ppt *presentation.Presentation
}

// New creates an empty presentation.
func New() *Deck {
	return &Deck{ppt: presentation.New()}
}

// Open reads an existing .pptx file.
func Open(path string) (*Deck, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("presentation file not found: %s", path)
	}
	ppt, err := presentation.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open presentation %s: %w", path, err)
	}
	return &Deck{ppt: ppt}, nil
}

// OpenTemplate reads a .pptx or .potx file as a template: its layouts and
// masters are kept, its slides are not.
func OpenTemplate(path string) (*Deck, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("template file not found: %s", path)
	}
	ppt, err := presentation.OpenTemplate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", path, err)
	}
	return &Deck{ppt: ppt}, nil
}

// Validate checks the document against the schema constraints the
// underlying library enforces.
func (d *Deck) Validate() error {
	if err := d.ppt.Validate(); err != nil {
		return fmt.Errorf("presentation failed validation: %w", err)
	}
	return nil
}

// Save validates the presentation and writes it to path.
func (d *Deck) Save(path string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.ppt.SaveToFile(path); err != nil {
		return fmt.Errorf("failed to save presentation to %s: %w", path, err)
	}
	return nil
}

// Close releases temporary resources held by the underlying document.
func (d *Deck) Close() error {
	return d.ppt.Close()
}

// SlideCount reports the number of slides.
func (d *Deck) SlideCount() int {
	return len(d.ppt.Slides())
}

// SlideSize reports the slide dimensions in inches.
func (d *Deck) SlideSize() (w, h float64) {
	if sz := d.ppt.X().SldSz; sz != nil {
		return inches(int64(sz.CxAttr)), inches(int64(sz.CyAttr))
	}
	return defaultSlideWidthIn, defaultSlideHeightIn
}

// ClampBox fits an x/y/w/h box (inches) onto the slide. Sizes are capped to
// the slide dimensions, positions shifted so the box stays fully visible.
// The second return reports whether anything was changed.
func (d *Deck) ClampBox(x, y, w, h float64) (cx, cy, cw, ch float64, adjusted bool) {
	sw, sh := d.SlideSize()
	cx, cy, cw, ch = x, y, w, h

	if cw < 0 {
		cw = 0
	}
	if ch < 0 {
		ch = 0
	}
	if cw > sw {
		cw = sw
	}
	if ch > sh {
		ch = sh
	}
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	if cx+cw > sw {
		cx = sw - cw
	}
	if cy+ch > sh {
		cy = sh - ch
	}
	adjusted = cx != x || cy != y || cw != w || ch != h
	return cx, cy, cw, ch, adjusted
}

// LayoutInfo describes one slide layout of the presentation.
type LayoutInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Layouts lists the slide layouts in master order.
func (d *Deck) Layouts() []LayoutInfo {
	layouts := d.ppt.SlideLayouts()
	infos := make([]LayoutInfo, len(layouts))
	for i, l := range layouts {
		infos[i] = LayoutInfo{Index: i, Name: l.Name()}
	}
	return infos
}

// CoreProps are the document properties surfaced to tools.
type CoreProps struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
}

// CoreProperties reads the current document properties.
func (d *Deck) CoreProperties() CoreProps {
	cp := d.ppt.CoreProperties
	props := CoreProps{
		Title:    cp.Title(),
		Author:   cp.Author(),
		Category: cp.Category(),
	}
	if cs := cp.X().ContentStatus; cs != nil {
		props.Status = *cs
	}
	return props
}

// SetCoreProperties updates document properties. Empty fields are left
// untouched so callers can set a subset.
func (d *Deck) SetCoreProperties(props CoreProps) {
	cp := d.ppt.CoreProperties
	if props.Title != "" {
		cp.SetTitle(props.Title)
	}
	if props.Author != "" {
		cp.SetAuthor(props.Author)
	}
	if props.Category != "" {
		cp.SetCategory(props.Category)
	}
	if props.Status != "" {
		status := props.Status
		cp.X().ContentStatus = &status
	}
}
