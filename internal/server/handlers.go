package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidesmith/ppt-tools-mcp/internal/deck"
	"github.com/slidesmith/ppt-tools-mcp/internal/registry"
	"github.com/slidesmith/ppt-tools-mcp/internal/render"
	"github.com/slidesmith/ppt-tools-mcp/internal/scheme"
	"github.com/slidesmith/ppt-tools-mcp/internal/textfit"
)

// Direct font-size bounds. Sizes outside this range are clamped, not
// rejected.
const (
	minDirectFontPt = 1
	maxDirectFontPt = 512
)

// val resolves an optional numeric parameter against its default.
func val(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// clampFontSize clamps a requested point size to the allowed range. Zero
// means "not requested" and passes through.
func clampFontSize(size float64) float64 {
	if size <= 0 {
		return 0
	}
	if size < minDirectFontPt {
		return minDirectFontPt
	}
	if size > maxDirectFontPt {
		return maxDirectFontPt
	}
	return size
}

// hexFromTriple converts an optional [r,g,b] parameter to an RRGGBB string.
// A nil triple yields the empty string (no color requested).
func hexFromTriple(rgb []int) (string, error) {
	if rgb == nil {
		return "", nil
	}
	c, err := scheme.FromTriple(rgb)
	if err != nil {
		return "", err
	}
	return c.HexVal(), nil
}

// === Presentation lifecycle ===

type createPresentationArgs struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (s *Server) handleCreatePresentation(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a createPresentationArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}

	d := deck.New()
	doc, err := s.store.Add(a.ID, d, "")
	if err != nil {
		return errResult(err)
	}
	d.SetCoreProperties(deck.CoreProps{Title: a.Title, Author: a.Author})
	s.log.Info("created presentation", "id", doc.ID)

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideCount     int    `json:"slide_count"`
	}{"Created new presentation", doc.ID, 0}), nil
}

type createFromTemplateArgs struct {
	TemplatePath string `json:"template_path"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
}

func (s *Server) handleCreateFromTemplate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a createFromTemplateArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}

	resolved, err := s.findTemplate(a.TemplatePath)
	if err != nil {
		return errResult(err)
	}
	d, err := deck.OpenTemplate(resolved)
	if err != nil {
		return errResult(err)
	}
	doc, err := s.store.Add(a.ID, d, "")
	if err != nil {
		d.Close()
		return errResult(err)
	}
	d.SetCoreProperties(deck.CoreProps{Title: a.Title, Author: a.Author})
	s.log.Info("created presentation from template", "id", doc.ID, "template", resolved)

	return textResult(struct {
		Message        string            `json:"message"`
		PresentationID string            `json:"presentation_id"`
		TemplatePath   string            `json:"template_path"`
		Layouts        []deck.LayoutInfo `json:"layouts"`
	}{"Created presentation from template", doc.ID, resolved, d.Layouts()}), nil
}

type openPresentationArgs struct {
	Path string `json:"path"`
	ID   string `json:"id"`
}

func (s *Server) handleOpenPresentation(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a openPresentationArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}

	d, err := deck.Open(a.Path)
	if err != nil {
		return errResult(err)
	}
	doc, err := s.store.Add(a.ID, d, a.Path)
	if err != nil {
		d.Close()
		return errResult(err)
	}
	s.log.Info("opened presentation", "id", doc.ID, "path", a.Path)

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		Path           string `json:"path"`
		SlideCount     int    `json:"slide_count"`
	}{"Opened presentation", doc.ID, a.Path, d.SlideCount()}), nil
}

type savePresentationArgs struct {
	PresentationID string `json:"presentation_id"`
	Path           string `json:"path"`
}

func (s *Server) handleSavePresentation(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a savePresentationArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	path := a.Path
	if path == "" {
		path = doc.Path
	}
	if path == "" {
		return errResult(fmt.Errorf("presentation %q has no known path: pass one to save_presentation", doc.ID))
	}
	if err := doc.Deck.Save(path); err != nil {
		return errResult(err)
	}
	if err := s.store.SetPath(doc.ID, path); err != nil {
		return errResult(err)
	}
	s.log.Info("saved presentation", "id", doc.ID, "path", path)

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		Path           string `json:"path"`
		SlideCount     int    `json:"slide_count"`
	}{"Saved presentation", doc.ID, path, doc.Deck.SlideCount()}), nil
}

type closePresentationArgs struct {
	PresentationID string `json:"presentation_id"`
}

func (s *Server) handleClosePresentation(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a closePresentationArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	if err := s.store.Remove(doc.ID); err != nil {
		return errResult(err)
	}
	s.log.Info("closed presentation", "id", doc.ID)

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		DefaultID      string `json:"default_id,omitempty"`
	}{"Closed presentation", doc.ID, s.store.DefaultID()}), nil
}

func (s *Server) handleListPresentations(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := s.store.List()
	return textResult(struct {
		Count         int                  `json:"count"`
		Presentations []registry.ListEntry `json:"presentations"`
	}{len(entries), entries}), nil
}

type presentationInfoArgs struct {
	PresentationID string `json:"presentation_id"`
}

func (s *Server) handleGetPresentationInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a presentationInfoArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	w, h := doc.Deck.SlideSize()
	return textResult(struct {
		PresentationID string            `json:"presentation_id"`
		Path           string            `json:"path,omitempty"`
		SlideCount     int               `json:"slide_count"`
		SlideWidthIn   float64           `json:"slide_width_in"`
		SlideHeightIn  float64           `json:"slide_height_in"`
		Layouts        []deck.LayoutInfo `json:"layouts"`
		CoreProperties deck.CoreProps    `json:"core_properties"`
	}{doc.ID, doc.Path, doc.Deck.SlideCount(), w, h, doc.Deck.Layouts(), doc.Deck.CoreProperties()}), nil
}

type templateFileInfoArgs struct {
	TemplatePath string `json:"template_path"`
}

func (s *Server) handleGetTemplateFileInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a templateFileInfoArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	resolved, err := s.findTemplate(a.TemplatePath)
	if err != nil {
		return errResult(err)
	}
	d, err := deck.OpenTemplate(resolved)
	if err != nil {
		return errResult(err)
	}
	defer d.Close()

	return textResult(struct {
		TemplatePath string            `json:"template_path"`
		Layouts      []deck.LayoutInfo `json:"layouts"`
	}{resolved, d.Layouts()}), nil
}

type setCorePropertiesArgs struct {
	PresentationID string `json:"presentation_id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	Category       string `json:"category"`
	Status         string `json:"status"`
}

func (s *Server) handleSetCoreProperties(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a setCorePropertiesArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	doc.Deck.SetCoreProperties(deck.CoreProps{
		Title:    a.Title,
		Author:   a.Author,
		Category: a.Category,
		Status:   a.Status,
	})

	return textResult(struct {
		Message        string         `json:"message"`
		PresentationID string         `json:"presentation_id"`
		CoreProperties deck.CoreProps `json:"core_properties"`
	}{"Updated core properties", doc.ID, doc.Deck.CoreProperties()}), nil
}

// === Slide content ===

type addSlideArgs struct {
	PresentationID string `json:"presentation_id"`
	LayoutIndex    *int   `json:"layout_index"`
	Title          string `json:"title"`
}

func (s *Server) handleAddSlide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addSlideArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	var idx int
	if a.LayoutIndex != nil {
		idx, err = doc.Deck.AddSlide(*a.LayoutIndex)
		if err != nil {
			return errResult(err)
		}
	} else {
		idx = doc.Deck.AddBlankSlide()
	}

	if a.Title != "" {
		// Blank slides and layouts without a title placeholder get a
		// title-styled text box instead.
		if err := doc.Deck.SetTitle(idx, a.Title); err != nil {
			preset := scheme.Font("title")
			if _, err := doc.Deck.AddTextBox(idx, deck.TextBoxSpec{
				X: 0.5, Y: 0.3, Width: 9, Height: 1,
				Text: a.Title,
				Style: deck.TextStyle{
					SizePt:   float64(preset.SizeFor("medium")),
					FontName: preset.Name,
					Bold:     preset.Bold,
				},
			}); err != nil {
				return errResult(err)
			}
		}
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		SlideCount     int    `json:"slide_count"`
	}{"Added slide", doc.ID, idx, doc.Deck.SlideCount()}), nil
}

type deleteSlideArgs struct {
	PresentationID string `json:"presentation_id"`
	SlideIndex     int    `json:"slide_index"`
}

func (s *Server) handleDeleteSlide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a deleteSlideArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	if err := doc.Deck.RemoveSlide(a.SlideIndex); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideCount     int    `json:"slide_count"`
	}{fmt.Sprintf("Deleted slide %d", a.SlideIndex), doc.ID, doc.Deck.SlideCount()}), nil
}

type moveSlideArgs struct {
	PresentationID string `json:"presentation_id"`
	FromIndex      int    `json:"from_index"`
	ToIndex        int    `json:"to_index"`
}

func (s *Server) handleMoveSlide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a moveSlideArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	if err := doc.Deck.MoveSlide(a.FromIndex, a.ToIndex); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
	}{fmt.Sprintf("Moved slide %d to position %d", a.FromIndex, a.ToIndex), doc.ID}), nil
}

type slideIndexArgs struct {
	PresentationID string `json:"presentation_id"`
	SlideIndex     int    `json:"slide_index"`
}

func (s *Server) handleGetSlideInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a slideIndexArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	shapes, err := doc.Deck.SlideShapes(a.SlideIndex)
	if err != nil {
		return errResult(err)
	}
	placeholders, err := doc.Deck.Placeholders(a.SlideIndex)
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		PresentationID string                 `json:"presentation_id"`
		SlideIndex     int                    `json:"slide_index"`
		ShapeCount     int                    `json:"shape_count"`
		Shapes         []deck.ShapeInfo       `json:"shapes"`
		Placeholders   []deck.PlaceholderInfo `json:"placeholders,omitempty"`
	}{doc.ID, a.SlideIndex, len(shapes), shapes, placeholders}), nil
}

func (s *Server) handleExtractSlideText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a slideIndexArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	text, err := doc.Deck.SlideText(a.SlideIndex)
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		Text           string `json:"text"`
	}{doc.ID, a.SlideIndex, text}), nil
}

type slideTextEntry struct {
	SlideIndex int    `json:"slide_index"`
	Text       string `json:"text"`
}

func (s *Server) handleExtractPresentationText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a presentationInfoArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	entries := make([]slideTextEntry, doc.Deck.SlideCount())
	for i := range entries {
		text, err := doc.Deck.SlideText(i)
		if err != nil {
			return errResult(err)
		}
		entries[i] = slideTextEntry{SlideIndex: i, Text: text}
	}

	return textResult(struct {
		PresentationID string           `json:"presentation_id"`
		SlideCount     int              `json:"slide_count"`
		Slides         []slideTextEntry `json:"slides"`
	}{doc.ID, len(entries), entries}), nil
}

type populatePlaceholderArgs struct {
	PresentationID string `json:"presentation_id"`
	SlideIndex     int    `json:"slide_index"`
	PlaceholderIdx int    `json:"placeholder_idx"`
	Text           string `json:"text"`
}

func (s *Server) handlePopulatePlaceholder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a populatePlaceholderArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	if err := doc.Deck.SetPlaceholderText(a.SlideIndex, a.PlaceholderIdx, a.Text); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		PlaceholderIdx int    `json:"placeholder_idx"`
	}{"Populated placeholder", doc.ID, a.SlideIndex, a.PlaceholderIdx}), nil
}

type addBulletPointsArgs struct {
	PresentationID string `json:"presentation_id"`
	SlideIndex     int    `json:"slide_index"`
	Bullets        []any  `json:"bullets"`
}

func (s *Server) handleAddBulletPoints(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addBulletPointsArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	bullets := make([]deck.Bullet, 0, len(a.Bullets))
	for i, raw := range a.Bullets {
		switch v := raw.(type) {
		case string:
			bullets = append(bullets, deck.Bullet{Text: v})
		case map[string]any:
			text, _ := v["text"].(string)
			if text == "" {
				return errResult(fmt.Errorf("bullet %d is missing its text field", i))
			}
			level, _ := v["level"].(float64)
			bullets = append(bullets, deck.Bullet{Text: text, Level: int(level)})
		default:
			return errResult(fmt.Errorf("bullet %d must be a string or a {text, level} object", i))
		}
	}
	if err := doc.Deck.SetBullets(a.SlideIndex, bullets); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		BulletCount    int    `json:"bullet_count"`
	}{"Added bullet points", doc.ID, a.SlideIndex, len(bullets)}), nil
}

type addTextboxArgs struct {
	PresentationID string   `json:"presentation_id"`
	SlideIndex     int      `json:"slide_index"`
	Text           string   `json:"text"`
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	Width          *float64 `json:"width"`
	Height         *float64 `json:"height"`
	FontSize       float64  `json:"font_size"`
	FontName       string   `json:"font_name"`
	Bold           bool     `json:"bold"`
	Italic         bool     `json:"italic"`
	Color          []int    `json:"color"`
	Alignment      string   `json:"alignment"`
}

func (s *Server) handleAddTextbox(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addTextboxArgs
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

	x, y, w, h, adjusted := doc.Deck.ClampBox(
		val(a.X, 1), val(a.Y, 1), val(a.Width, 8), val(a.Height, 1))

	shapeIdx, err := doc.Deck.AddTextBox(a.SlideIndex, deck.TextBoxSpec{
		X: x, Y: y, Width: w, Height: h,
		Text:  a.Text,
		Align: a.Alignment,
		Style: deck.TextStyle{
			SizePt:   clampFontSize(a.FontSize),
			FontName: a.FontName,
			Bold:     a.Bold,
			Italic:   a.Italic,
			ColorHex: colorHex,
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
		PositionClamped bool   `json:"position_clamped,omitempty"`
	}{"Added text box", doc.ID, a.SlideIndex, shapeIdx, adjusted}), nil
}

type formatTextArgs struct {
	PresentationID string  `json:"presentation_id"`
	SlideIndex     int     `json:"slide_index"`
	ShapeIndex     int     `json:"shape_index"`
	Text           *string `json:"text"`
	FontSize       float64 `json:"font_size"`
	FontName       string  `json:"font_name"`
	Bold           bool    `json:"bold"`
	Italic         bool    `json:"italic"`
	Underline      bool    `json:"underline"`
	Color          []int   `json:"color"`
	Alignment      string  `json:"alignment"`
	WordWrap       bool    `json:"word_wrap"`
}

func (s *Server) handleFormatText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a formatTextArgs
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

	if a.Text != nil {
		if err := doc.Deck.ReplaceShapeText(a.SlideIndex, a.ShapeIndex, *a.Text); err != nil {
			return errResult(err)
		}
	}

	rewrapped := false
	if a.WordWrap {
		shapes, err := doc.Deck.SlideShapes(a.SlideIndex)
		if err != nil {
			return errResult(err)
		}
		for _, sh := range shapes {
			if sh.Index != a.ShapeIndex {
				continue
			}
			if sh.Text == "" || !sh.HasGeometry || sh.Width <= 0 {
				break
			}
			size := 18
			if a.FontSize > 0 {
				size = int(clampFontSize(a.FontSize))
			}
			wrapped := textfit.Wrap(strings.ReplaceAll(sh.Text, "\n", " "), sh.Width, size)
			if wrapped != sh.Text {
				if err := doc.Deck.ReplaceShapeText(a.SlideIndex, a.ShapeIndex, wrapped); err != nil {
					return errResult(err)
				}
				rewrapped = true
			}
			break
		}
	}

	if err := doc.Deck.FormatShapeText(a.SlideIndex, a.ShapeIndex, deck.TextStyle{
		SizePt:    clampFontSize(a.FontSize),
		FontName:  a.FontName,
		Bold:      a.Bold,
		Italic:    a.Italic,
		Underline: a.Underline,
		ColorHex:  colorHex,
	}, a.Alignment); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		ShapeIndex     int    `json:"shape_index"`
		Rewrapped      bool   `json:"rewrapped,omitempty"`
	}{"Formatted text", doc.ID, a.SlideIndex, a.ShapeIndex, rewrapped}), nil
}

type addImageArgs struct {
	PresentationID string   `json:"presentation_id"`
	SlideIndex     int      `json:"slide_index"`
	ImagePath      string   `json:"image_path"`
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
	EnhanceStyle   string   `json:"enhance_style"`
}

func (s *Server) handleAddImage(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addImageArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	spec := deck.ImageSpec{X: val(a.X, 1), Y: val(a.Y, 1), Width: a.Width, Height: a.Height}

	var shapeIdx int
	if a.EnhanceStyle != "" {
		opts, known := render.EnhancePreset(a.EnhanceStyle)
		if !known {
			return errResult(fmt.Errorf("unknown enhancement style %q (supported: presentation, bright, soft)", a.EnhanceStyle))
		}
		img, err := imaging.Open(a.ImagePath)
		if err != nil {
			return errResult(fmt.Errorf("failed to read image %s: %w", a.ImagePath, err))
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, render.Enhance(img, opts)); err != nil {
			return errResult(fmt.Errorf("failed to encode enhanced image: %w", err))
		}
		shapeIdx, err = doc.Deck.AddImageBytes(a.SlideIndex, buf.Bytes(), spec)
		if err != nil {
			return errResult(err)
		}
	} else {
		shapeIdx, err = doc.Deck.AddImageFile(a.SlideIndex, a.ImagePath, spec)
		if err != nil {
			return errResult(err)
		}
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		ShapeIndex     int    `json:"shape_index"`
		Enhanced       bool   `json:"enhanced,omitempty"`
	}{"Added image", doc.ID, a.SlideIndex, shapeIdx, a.EnhanceStyle != ""}), nil
}

type addImageBase64Args struct {
	PresentationID string   `json:"presentation_id"`
	SlideIndex     int      `json:"slide_index"`
	ImageData      string   `json:"image_data"`
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
}

func (s *Server) handleAddImageFromBase64(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a addImageBase64Args
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	data, err := base64.StdEncoding.DecodeString(a.ImageData)
	if err != nil {
		return errResult(fmt.Errorf("invalid base64 image data: %w", err))
	}
	shapeIdx, err := doc.Deck.AddImageBytes(a.SlideIndex, data,
		deck.ImageSpec{X: val(a.X, 1), Y: val(a.Y, 1), Width: a.Width, Height: a.Height})
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		ShapeIndex     int    `json:"shape_index"`
	}{"Added image", doc.ID, a.SlideIndex, shapeIdx}), nil
}
