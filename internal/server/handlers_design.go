package server

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/slidesmith/ppt-tools-mcp/internal/compose"
	"github.com/slidesmith/ppt-tools-mcp/internal/deck"
	"github.com/slidesmith/ppt-tools-mcp/internal/render"
	"github.com/slidesmith/ppt-tools-mcp/internal/scheme"
	"github.com/slidesmith/ppt-tools-mcp/internal/textfit"
)

// === Color and theming ===

func (s *Server) handleListColorSchemes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textResult(struct {
		Schemes     map[string]scheme.Scheme     `json:"color_schemes"`
		FontPresets map[string]scheme.FontPreset `json:"font_presets"`
	}{
		Schemes: scheme.All(),
		FontPresets: map[string]scheme.FontPreset{
			"title":    scheme.Font("title"),
			"subtitle": scheme.Font("subtitle"),
			"body":     scheme.Font("body"),
			"caption":  scheme.Font("caption"),
		},
	}), nil
}

type applyThemeArgs struct {
	PresentationID string `json:"presentation_id"`
	ColorScheme    string `json:"color_scheme"`
}

// titleLike reports whether a shape should receive title styling.
func titleLike(sh deck.ShapeInfo) bool {
	name := strings.ToLower(sh.Name)
	return strings.Contains(name, "title") || strings.Contains(name, "heading")
}

func (s *Server) handleApplyTheme(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a applyThemeArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	sch, _ := scheme.Lookup(a.ColorScheme)
	titleFont := scheme.Font("title")
	bodyFont := scheme.Font("body")

	styled := 0
	for slide := 0; slide < doc.Deck.SlideCount(); slide++ {
		shapes, err := doc.Deck.SlideShapes(slide)
		if err != nil {
			return errResult(err)
		}
		for _, sh := range shapes {
			if sh.Text == "" {
				continue
			}
			style := deck.TextStyle{FontName: bodyFont.Name, ColorHex: sch.Text.HexVal()}
			if titleLike(sh) {
				style = deck.TextStyle{
					FontName: titleFont.Name,
					Bold:     titleFont.Bold,
					ColorHex: sch.Primary.HexVal(),
				}
			}
			if err := doc.Deck.FormatShapeText(slide, sh.Index, style, ""); err != nil {
				return errResult(err)
			}
			styled++
		}
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		ColorScheme    string `json:"color_scheme"`
		ShapesStyled   int    `json:"shapes_styled"`
	}{"Applied theme", doc.ID, sch.Name, styled}), nil
}

type gradientBackgroundArgs struct {
	PresentationID string `json:"presentation_id"`
	SlideIndex     int    `json:"slide_index"`
	Style          string `json:"style"`
	ColorScheme    string `json:"color_scheme"`
	StartColor     []int  `json:"start_color"`
	EndColor       []int  `json:"end_color"`
	Direction      string `json:"direction"`
}

func (s *Server) handleSetGradientBackground(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a gradientBackgroundArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}

	var start, end scheme.Color
	switch {
	case len(a.StartColor) > 0 || len(a.EndColor) > 0:
		if start, err = scheme.FromTriple(a.StartColor); err != nil {
			return errResult(err)
		}
		if end, err = scheme.FromTriple(a.EndColor); err != nil {
			return errResult(err)
		}
	default:
		style := a.Style
		if style == "" {
			style = "subtle"
		}
		sch, _ := scheme.Lookup(a.ColorScheme)
		if start, end, err = render.GradientStyleColors(sch, style); err != nil {
			return errResult(err)
		}
	}

	direction := a.Direction
	if direction == "" {
		direction = render.DirDiagonal
	}
	data, err := render.GradientPNG(start, end, direction)
	if err != nil {
		return errResult(err)
	}
	if err := doc.Deck.SetBackgroundImage(a.SlideIndex, data); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		StartColor     string `json:"start_color"`
		EndColor       string `json:"end_color"`
		Direction      string `json:"direction"`
	}{"Set gradient background", doc.ID, a.SlideIndex, start.Hex(), end.Hex(), direction}), nil
}

type enhanceImageArgs struct {
	ImagePath  string   `json:"image_path"`
	OutputPath string   `json:"output_path"`
	Style      string   `json:"style"`
	Brightness *float64 `json:"brightness"`
	Contrast   *float64 `json:"contrast"`
	Saturation *float64 `json:"saturation"`
	Sharpness  *float64 `json:"sharpness"`
	BlurRadius *float64 `json:"blur_radius"`
}

func (s *Server) handleEnhanceImage(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a enhanceImageArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}

	style := a.Style
	if style == "" {
		style = "presentation"
	}
	opts, _ := render.EnhancePreset(style)
	if a.Brightness != nil {
		opts.Brightness = *a.Brightness
	}
	if a.Contrast != nil {
		opts.Contrast = *a.Contrast
	}
	if a.Saturation != nil {
		opts.Saturation = *a.Saturation
	}
	if a.Sharpness != nil {
		opts.Sharpness = *a.Sharpness
	}
	if a.BlurRadius != nil {
		opts.BlurRadius = *a.BlurRadius
	}

	outPath, err := render.EnhanceFile(a.ImagePath, a.OutputPath, opts)
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message    string                `json:"message"`
		InputPath  string                `json:"input_path"`
		OutputPath string                `json:"output_path"`
		Applied    render.EnhanceOptions `json:"applied"`
	}{"Enhanced image", a.ImagePath, outPath, opts}), nil
}

// === Slide templates ===

func (s *Server) handleListSlideTemplates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textResult(struct {
		Templates []compose.Template `json:"templates"`
	}{compose.List()}), nil
}

// contentMap converts the loosely typed content object into slot text.
// Non-string values are ignored rather than rejected.
func contentMap(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for slot, v := range raw {
		if text, ok := v.(string); ok {
			out[slot] = text
		}
	}
	return out
}

type applySlideTemplateArgs struct {
	PresentationID string         `json:"presentation_id"`
	SlideIndex     int            `json:"slide_index"`
	TemplateID     string         `json:"template_id"`
	ColorScheme    string         `json:"color_scheme"`
	Content        map[string]any `json:"content"`
}

func (s *Server) handleApplySlideTemplate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a applySlideTemplateArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	applied, err := compose.Apply(doc.Deck, a.SlideIndex, a.TemplateID, a.ColorScheme, contentMap(a.Content))
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string            `json:"message"`
		PresentationID string            `json:"presentation_id"`
		SlideIndex     int               `json:"slide_index"`
		TemplateID     string            `json:"template_id"`
		Placed         []compose.Applied `json:"placed"`
	}{"Applied slide template", doc.ID, a.SlideIndex, a.TemplateID, applied}), nil
}

type createSlideFromTemplateArgs struct {
	PresentationID string         `json:"presentation_id"`
	TemplateID     string         `json:"template_id"`
	ColorScheme    string         `json:"color_scheme"`
	Content        map[string]any `json:"content"`
}

func (s *Server) handleCreateSlideFromTemplate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a createSlideFromTemplateArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	idx, applied, err := compose.CreateSlide(doc.Deck, a.TemplateID, a.ColorScheme, contentMap(a.Content))
	if err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string            `json:"message"`
		PresentationID string            `json:"presentation_id"`
		SlideIndex     int               `json:"slide_index"`
		TemplateID     string            `json:"template_id"`
		Placed         []compose.Applied `json:"placed"`
	}{"Created slide from template", doc.ID, idx, a.TemplateID, applied}), nil
}

type slideTransitionArgs struct {
	PresentationID string `json:"presentation_id"`
	SlideIndex     int    `json:"slide_index"`
	Transition     string `json:"transition"`
	Speed          string `json:"speed"`
	AdvanceAfterMs int    `json:"advance_after_ms"`
}

func (s *Server) handleSetSlideTransition(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a slideTransitionArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	if err := doc.Deck.SetTransition(a.SlideIndex, a.Transition, a.Speed, a.AdvanceAfterMs); err != nil {
		return errResult(err)
	}

	return textResult(struct {
		Message        string `json:"message"`
		PresentationID string `json:"presentation_id"`
		SlideIndex     int    `json:"slide_index"`
		Transition     string `json:"transition"`
	}{"Set slide transition", doc.ID, a.SlideIndex, a.Transition}), nil
}

// === Text fit ===

type validateTextFitArgs struct {
	Text     string   `json:"text"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	FontSize *float64 `json:"font_size"`
}

func (s *Server) handleValidateTextFit(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a validateTextFitArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	size := int(val(a.FontSize, 18))
	return textResult(textfit.CheckFit(a.Text, a.Width, a.Height, size)), nil
}

type optimizeSlideTextArgs struct {
	PresentationID string   `json:"presentation_id"`
	SlideIndex     int      `json:"slide_index"`
	MinSize        *float64 `json:"min_size"`
	MaxSize        *float64 `json:"max_size"`
}

// textAdjustment reports one shape resized by optimize_slide_text.
type textAdjustment struct {
	ShapeIndex int    `json:"shape_index"`
	FontSizePt int    `json:"font_size_pt"`
	Rewrapped  bool   `json:"rewrapped"`
	Kind       string `json:"kind"`
}

func (s *Server) handleOptimizeSlideText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a optimizeSlideTextArgs
	if err := req.BindArguments(&a); err != nil {
		return errResult(err)
	}
	doc, err := s.store.Resolve(a.PresentationID)
	if err != nil {
		return errResult(err)
	}
	minPt := int(val(a.MinSize, 8))
	maxPt := int(val(a.MaxSize, 36))

	shapes, err := doc.Deck.SlideShapes(a.SlideIndex)
	if err != nil {
		return errResult(err)
	}

	adjustments := []textAdjustment{}
	for _, sh := range shapes {
		if sh.Text == "" || !sh.HasGeometry || sh.Width <= 0 || sh.Height <= 0 {
			continue
		}
		switch sh.Kind {
		case "text_box", "shape", "placeholder":
		default:
			continue
		}

		size := textfit.OptimalSize(sh.Text, sh.Width, sh.Height, minPt, maxPt)
		wrapped := textfit.Wrap(strings.ReplaceAll(sh.Text, "\n", " "), sh.Width, size)
		rewrapped := wrapped != sh.Text
		if rewrapped {
			if err := doc.Deck.ReplaceShapeText(a.SlideIndex, sh.Index, wrapped); err != nil {
				return errResult(err)
			}
		}
		if err := doc.Deck.FormatShapeText(a.SlideIndex, sh.Index, deck.TextStyle{SizePt: float64(size)}, ""); err != nil {
			return errResult(err)
		}
		adjustments = append(adjustments, textAdjustment{
			ShapeIndex: sh.Index,
			FontSizePt: size,
			Rewrapped:  rewrapped,
			Kind:       sh.Kind,
		})
	}

	return textResult(struct {
		Message        string           `json:"message"`
		PresentationID string           `json:"presentation_id"`
		SlideIndex     int              `json:"slide_index"`
		Adjustments    []textAdjustment `json:"adjustments"`
	}{"Optimized slide text", doc.ID, a.SlideIndex, adjustments}), nil
}
