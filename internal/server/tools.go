package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// presentationID is the parameter shared by every document-targeting tool.
func presentationID() mcp.ToolOption {
	return mcp.WithString("presentation_id",
		mcp.Description("Target presentation ID; empty targets the default (most recently created or opened)"))
}

// registerTools builds the tool catalog. Handler implementations live in the
// handlers_*.go files, grouped the same way as the sections below.
func (s *Server) registerTools() {
	// === Presentation lifecycle ===

	s.mcp.AddTool(mcp.NewTool("create_presentation",
		mcp.WithDescription("Create a new empty presentation in memory and make it the default target. Returns its presentation_id."),
		mcp.WithString("id", mcp.Description("Custom presentation ID; autogenerated when omitted")),
		mcp.WithString("title", mcp.Description("Document title core property")),
		mcp.WithString("author", mcp.Description("Document author core property")),
	), s.handleCreatePresentation)

	s.mcp.AddTool(mcp.NewTool("create_presentation_from_template",
		mcp.WithDescription("Create a presentation from a .pptx/.potx template file. Relative paths are searched in the working directory, ./templates, $PPT_TEMPLATE_PATH, and configured template directories."),
		mcp.WithString("template_path", mcp.Required(), mcp.Description("Template file path (.pptx or .potx)")),
		mcp.WithString("id", mcp.Description("Custom presentation ID; autogenerated when omitted")),
		mcp.WithString("title", mcp.Description("Document title core property")),
		mcp.WithString("author", mcp.Description("Document author core property")),
	), s.handleCreateFromTemplate)

	s.mcp.AddTool(mcp.NewTool("open_presentation",
		mcp.WithDescription("Open an existing .pptx file and make it the default target."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the .pptx file")),
		mcp.WithString("id", mcp.Description("Custom presentation ID; autogenerated when omitted")),
	), s.handleOpenPresentation)

	s.mcp.AddTool(mcp.NewTool("save_presentation",
		mcp.WithDescription("Write a presentation to disk. Uses the path it was opened from or last saved to when none is given."),
		presentationID(),
		mcp.WithString("path", mcp.Description("Output .pptx path; defaults to the document's known path")),
	), s.handleSavePresentation)

	s.mcp.AddTool(mcp.NewTool("close_presentation",
		mcp.WithDescription("Close a presentation and drop it from the registry. Unsaved changes are lost."),
		presentationID(),
	), s.handleClosePresentation)

	s.mcp.AddTool(mcp.NewTool("list_presentations",
		mcp.WithDescription("List all open presentations with their IDs, paths, and slide counts."),
	), s.handleListPresentations)

	s.mcp.AddTool(mcp.NewTool("get_presentation_info",
		mcp.WithDescription("Report a presentation's slide count, available layouts, core properties, and file path."),
		presentationID(),
	), s.handleGetPresentationInfo)

	s.mcp.AddTool(mcp.NewTool("get_template_file_info",
		mcp.WithDescription("Inspect a template file without opening it as a document: slide count and available layouts."),
		mcp.WithString("template_path", mcp.Required(), mcp.Description("Template file path (.pptx or .potx)")),
	), s.handleGetTemplateFileInfo)

	s.mcp.AddTool(mcp.NewTool("set_core_properties",
		mcp.WithDescription("Set document core properties. Omitted fields are left unchanged."),
		presentationID(),
		mcp.WithString("title", mcp.Description("Document title")),
		mcp.WithString("author", mcp.Description("Document author")),
		mcp.WithString("category", mcp.Description("Document category")),
		mcp.WithString("status", mcp.Description("Content status, e.g. draft or final")),
	), s.handleSetCoreProperties)

	// === Slide content ===

	s.mcp.AddTool(mcp.NewTool("add_slide",
		mcp.WithDescription("Append a slide. With layout_index the slide uses that layout's placeholders; without it a blank slide is added."),
		presentationID(),
		mcp.WithNumber("layout_index", mcp.Description("0-based layout index; omit for a blank slide")),
		mcp.WithString("title", mcp.Description("Title placeholder text, when the layout has one")),
	), s.handleAddSlide)

	s.mcp.AddTool(mcp.NewTool("delete_slide",
		mcp.WithDescription("Delete the slide at slide_index."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
	), s.handleDeleteSlide)

	s.mcp.AddTool(mcp.NewTool("move_slide",
		mcp.WithDescription("Move a slide to a new position, shifting the slides in between."),
		presentationID(),
		mcp.WithNumber("from_index", mcp.Required(), mcp.Description("0-based index of the slide to move")),
		mcp.WithNumber("to_index", mcp.Required(), mcp.Description("0-based destination index")),
	), s.handleMoveSlide)

	s.mcp.AddTool(mcp.NewTool("get_slide_info",
		mcp.WithDescription("List a slide's shapes (kind, name, text, geometry in inches) and placeholders."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
	), s.handleGetSlideInfo)

	s.mcp.AddTool(mcp.NewTool("extract_slide_text",
		mcp.WithDescription("Extract all text content of one slide."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
	), s.handleExtractSlideText)

	s.mcp.AddTool(mcp.NewTool("extract_presentation_text",
		mcp.WithDescription("Extract all text content of every slide."),
		presentationID(),
	), s.handleExtractPresentationText)

	s.mcp.AddTool(mcp.NewTool("populate_placeholder",
		mcp.WithDescription("Set the text of a layout placeholder by its placeholder idx (see get_slide_info)."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithNumber("placeholder_idx", mcp.Required(), mcp.Description("Placeholder idx value")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Replacement text")),
	), s.handlePopulatePlaceholder)

	s.mcp.AddTool(mcp.NewTool("add_bullet_points",
		mcp.WithDescription("Replace the body placeholder content with a bulleted list."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithArray("bullets", mcp.Required(), mcp.Description("Bullet items: strings, or {text, level} objects with level 0-8")),
	), s.handleAddBulletPoints)

	s.mcp.AddTool(mcp.NewTool("add_textbox",
		mcp.WithDescription("Add a text box. Position and size are in inches and are clamped to the slide; newlines split paragraphs."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text content")),
		mcp.WithNumber("x", mcp.Description("Left edge in inches (default 1)")),
		mcp.WithNumber("y", mcp.Description("Top edge in inches (default 1)")),
		mcp.WithNumber("width", mcp.Description("Width in inches (default 8)")),
		mcp.WithNumber("height", mcp.Description("Height in inches (default 1)")),
		mcp.WithNumber("font_size", mcp.Description("Font size in points, clamped to 1-512")),
		mcp.WithString("font_name", mcp.Description("Font family name")),
		mcp.WithBoolean("bold", mcp.Description("Bold text")),
		mcp.WithBoolean("italic", mcp.Description("Italic text")),
		mcp.WithArray("color", mcp.Description("Text color as [r,g,b] 0-255")),
		mcp.WithString("alignment", mcp.Description("Paragraph alignment"), mcp.Enum("left", "center", "right", "justify")),
	), s.handleAddTextbox)

	s.mcp.AddTool(mcp.NewTool("format_text",
		mcp.WithDescription("Format the text of an existing shape, optionally replacing it. Zero-value style fields leave the current formatting in place."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithNumber("shape_index", mcp.Required(), mcp.Description("0-based shape index on the slide")),
		mcp.WithString("text", mcp.Description("Replacement text; omit to keep the current text")),
		mcp.WithNumber("font_size", mcp.Description("Font size in points, clamped to 1-512")),
		mcp.WithString("font_name", mcp.Description("Font family name")),
		mcp.WithBoolean("bold", mcp.Description("Bold text")),
		mcp.WithBoolean("italic", mcp.Description("Italic text")),
		mcp.WithBoolean("underline", mcp.Description("Underline text")),
		mcp.WithArray("color", mcp.Description("Text color as [r,g,b] 0-255")),
		mcp.WithString("alignment", mcp.Description("Paragraph alignment"), mcp.Enum("left", "center", "right", "justify")),
		mcp.WithBoolean("word_wrap", mcp.Description("Rewrap the text to the shape width at the target size")),
	), s.handleFormatText)

	s.mcp.AddTool(mcp.NewTool("add_image",
		mcp.WithDescription("Insert an image from a file. Omit width/height to keep the native size and aspect ratio; give one to scale proportionally."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("image_path", mcp.Required(), mcp.Description("Path to the image file")),
		mcp.WithNumber("x", mcp.Description("Left edge in inches (default 1)")),
		mcp.WithNumber("y", mcp.Description("Top edge in inches (default 1)")),
		mcp.WithNumber("width", mcp.Description("Width in inches; 0 derives from the image")),
		mcp.WithNumber("height", mcp.Description("Height in inches; 0 derives from the image")),
		mcp.WithString("enhance_style", mcp.Description("Optional enhancement preset applied before insertion"), mcp.Enum("presentation", "bright", "soft")),
	), s.handleAddImage)

	s.mcp.AddTool(mcp.NewTool("add_image_from_base64",
		mcp.WithDescription("Insert an image from base64-encoded bytes."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("image_data", mcp.Required(), mcp.Description("Base64-encoded image bytes (PNG, JPEG, or GIF)")),
		mcp.WithNumber("x", mcp.Description("Left edge in inches (default 1)")),
		mcp.WithNumber("y", mcp.Description("Top edge in inches (default 1)")),
		mcp.WithNumber("width", mcp.Description("Width in inches; 0 derives from the image")),
		mcp.WithNumber("height", mcp.Description("Height in inches; 0 derives from the image")),
	), s.handleAddImageFromBase64)

	// === Tables, shapes, charts ===

	s.mcp.AddTool(mcp.NewTool("add_table",
		mcp.WithDescription("Add a table with a uniform grid. data fills cells row by row; the optional header styling colors the first row."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithNumber("rows", mcp.Required(), mcp.Description("Number of rows (>=1)")),
		mcp.WithNumber("cols", mcp.Required(), mcp.Description("Number of columns (>=1)")),
		mcp.WithNumber("x", mcp.Description("Left edge in inches (default 1)")),
		mcp.WithNumber("y", mcp.Description("Top edge in inches (default 1)")),
		mcp.WithNumber("width", mcp.Description("Width in inches (default 8)")),
		mcp.WithNumber("height", mcp.Description("Height in inches (default 3)")),
		mcp.WithArray("data", mcp.Description("Cell text as an array of string rows")),
		mcp.WithArray("header_fill", mcp.Description("First-row background as [r,g,b]; enables header styling")),
	), s.handleAddTable)

	s.mcp.AddTool(mcp.NewTool("format_table_cell",
		mcp.WithDescription("Format one table cell: text replacement, font, color, background fill, and alignment."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithNumber("shape_index", mcp.Required(), mcp.Description("0-based shape index of the table (see get_slide_info)")),
		mcp.WithNumber("row", mcp.Required(), mcp.Description("0-based row")),
		mcp.WithNumber("col", mcp.Required(), mcp.Description("0-based column")),
		mcp.WithString("text", mcp.Description("Replacement cell text")),
		mcp.WithNumber("font_size", mcp.Description("Font size in points, clamped to 1-512")),
		mcp.WithBoolean("bold", mcp.Description("Bold text")),
		mcp.WithBoolean("italic", mcp.Description("Italic text")),
		mcp.WithArray("color", mcp.Description("Text color as [r,g,b]")),
		mcp.WithArray("fill", mcp.Description("Cell background as [r,g,b]")),
		mcp.WithString("alignment", mcp.Description("Cell text alignment"), mcp.Enum("left", "center", "right", "justify")),
	), s.handleFormatTableCell)

	s.mcp.AddTool(mcp.NewTool("add_shape",
		mcp.WithDescription("Add an autoshape with optional centered label, fill, and outline."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("shape_type", mcp.Required(), mcp.Description("Shape name, e.g. rectangle, oval, star, arrow, flowchart_decision")),
		mcp.WithNumber("x", mcp.Description("Left edge in inches (default 1)")),
		mcp.WithNumber("y", mcp.Description("Top edge in inches (default 1)")),
		mcp.WithNumber("width", mcp.Description("Width in inches (default 2)")),
		mcp.WithNumber("height", mcp.Description("Height in inches (default 1)")),
		mcp.WithString("text", mcp.Description("Centered label text")),
		mcp.WithArray("fill_color", mcp.Description("Fill as [r,g,b]")),
		mcp.WithArray("line_color", mcp.Description("Outline as [r,g,b]")),
		mcp.WithNumber("line_width", mcp.Description("Outline width in points")),
		mcp.WithNumber("font_size", mcp.Description("Label font size in points")),
		mcp.WithArray("font_color", mcp.Description("Label color as [r,g,b]")),
	), s.handleAddShape)

	s.mcp.AddTool(mcp.NewTool("add_connector",
		mcp.WithDescription("Draw a connector line between two points."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("connector_type", mcp.Description("Connector kind (default straight)"), mcp.Enum("straight", "elbow", "curved")),
		mcp.WithNumber("x1", mcp.Required(), mcp.Description("Start X in inches")),
		mcp.WithNumber("y1", mcp.Required(), mcp.Description("Start Y in inches")),
		mcp.WithNumber("x2", mcp.Required(), mcp.Description("End X in inches")),
		mcp.WithNumber("y2", mcp.Required(), mcp.Description("End Y in inches")),
		mcp.WithArray("line_color", mcp.Description("Line color as [r,g,b] (default black)")),
		mcp.WithNumber("line_width", mcp.Description("Line width in points (default 1)")),
	), s.handleAddConnector)

	s.mcp.AddTool(mcp.NewTool("add_chart",
		mcp.WithDescription("Render a chart and place it on the slide as a picture. series_values is one numeric array per series, each matching categories in length."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("chart_type", mcp.Required(), mcp.Description("Chart kind"),
			mcp.Enum("column", "bar", "stacked_column", "line", "line_markers", "pie", "doughnut", "area", "scatter")),
		mcp.WithArray("categories", mcp.Required(), mcp.Description("Category labels")),
		mcp.WithArray("series_names", mcp.Required(), mcp.Description("One name per series")),
		mcp.WithArray("series_values", mcp.Required(), mcp.Description("One numeric array per series")),
		mcp.WithNumber("x", mcp.Description("Left edge in inches (default 1)")),
		mcp.WithNumber("y", mcp.Description("Top edge in inches (default 1)")),
		mcp.WithNumber("width", mcp.Description("Width in inches (default 8)")),
		mcp.WithNumber("height", mcp.Description("Height in inches (default 4.5)")),
		mcp.WithString("title", mcp.Description("Chart title")),
		mcp.WithBoolean("legend", mcp.Description("Show a legend (line-family charts)")),
	), s.handleAddChart)

	s.mcp.AddTool(mcp.NewTool("update_chart_data",
		mcp.WithDescription("Replace the data of a chart created by add_chart and re-render its picture in place."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithNumber("shape_index", mcp.Required(), mcp.Description("Shape index returned by add_chart")),
		mcp.WithArray("categories", mcp.Required(), mcp.Description("New category labels")),
		mcp.WithArray("series_names", mcp.Required(), mcp.Description("New series names")),
		mcp.WithArray("series_values", mcp.Required(), mcp.Description("New series values")),
	), s.handleUpdateChartData)

	// === Design ===

	s.mcp.AddTool(mcp.NewTool("list_color_schemes",
		mcp.WithDescription("List the built-in color schemes with their RGB values and the font presets."),
	), s.handleListColorSchemes)

	s.mcp.AddTool(mcp.NewTool("apply_theme",
		mcp.WithDescription("Apply a color scheme's typography and colors to all existing text: titles get the primary color and title font, other text the scheme text color and body font."),
		presentationID(),
		mcp.WithString("color_scheme", mcp.Description("Scheme name (default modern_blue)"),
			mcp.Enum("modern_blue", "corporate_gray", "elegant_green", "warm_red")),
	), s.handleApplyTheme)

	s.mcp.AddTool(mcp.NewTool("set_gradient_background",
		mcp.WithDescription("Give a slide a gradient background, either from a scheme style or explicit start/end colors."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("style", mcp.Description("Scheme-based gradient style"), mcp.Enum("subtle", "bold", "accent")),
		mcp.WithString("color_scheme", mcp.Description("Scheme providing the style colors (default modern_blue)")),
		mcp.WithArray("start_color", mcp.Description("Explicit start color [r,g,b]; overrides style")),
		mcp.WithArray("end_color", mcp.Description("Explicit end color [r,g,b]; overrides style")),
		mcp.WithString("direction", mcp.Description("Gradient direction (default diagonal)"), mcp.Enum("horizontal", "vertical", "diagonal")),
	), s.handleSetGradientBackground)

	s.mcp.AddTool(mcp.NewTool("enhance_image",
		mcp.WithDescription("Enhance an image file for presentation use (brightness, contrast, saturation, sharpness, blur) and write the result."),
		mcp.WithString("image_path", mcp.Required(), mcp.Description("Input image file")),
		mcp.WithString("output_path", mcp.Description("Output path; defaults to <input>_enhanced.png")),
		mcp.WithString("style", mcp.Description("Enhancement preset (default presentation)"), mcp.Enum("presentation", "bright", "soft")),
		mcp.WithNumber("brightness", mcp.Description("Brightness factor, 1.0 = unchanged; overrides the preset")),
		mcp.WithNumber("contrast", mcp.Description("Contrast factor, 1.0 = unchanged")),
		mcp.WithNumber("saturation", mcp.Description("Saturation factor, 1.0 = unchanged")),
		mcp.WithNumber("sharpness", mcp.Description("Sharpness factor, 1.0 = unchanged")),
		mcp.WithNumber("blur_radius", mcp.Description("Gaussian blur radius in pixels, 0 = none")),
	), s.handleEnhanceImage)

	s.mcp.AddTool(mcp.NewTool("list_slide_templates",
		mcp.WithDescription("List the built-in slide templates and their content slots."),
	), s.handleListSlideTemplates)

	s.mcp.AddTool(mcp.NewTool("apply_slide_template",
		mcp.WithDescription("Place a slide template's text elements on an existing slide. content maps slot names (title, subtitle, body, left, right, quote, attribution) to text."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Template id (see list_slide_templates)")),
		mcp.WithString("color_scheme", mcp.Description("Color scheme name (default modern_blue)")),
		mcp.WithObject("content", mcp.Required(), mcp.Description("Slot name to text mapping")),
	), s.handleApplySlideTemplate)

	s.mcp.AddTool(mcp.NewTool("create_slide_from_template",
		mcp.WithDescription("Append a new slide and fill it from a slide template."),
		presentationID(),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Template id (see list_slide_templates)")),
		mcp.WithString("color_scheme", mcp.Description("Color scheme name (default modern_blue)")),
		mcp.WithObject("content", mcp.Required(), mcp.Description("Slot name to text mapping")),
	), s.handleCreateSlideFromTemplate)

	s.mcp.AddTool(mcp.NewTool("set_slide_transition",
		mcp.WithDescription("Set or clear a slide transition, with optional speed and auto-advance."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithString("transition", mcp.Required(), mcp.Description("Transition kind"),
			mcp.Enum("none", "fade", "push", "wipe", "circle", "dissolve", "random")),
		mcp.WithString("speed", mcp.Description("Transition speed (default fast)"), mcp.Enum("slow", "med", "fast")),
		mcp.WithNumber("advance_after_ms", mcp.Description("Auto-advance after this many milliseconds; 0 = click only")),
	), s.handleSetSlideTransition)

	// === Text fit ===

	s.mcp.AddTool(mcp.NewTool("validate_text_fit",
		mcp.WithDescription("Check whether text fits a container of the given size and suggest a font size when it does not."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to measure")),
		mcp.WithNumber("width", mcp.Required(), mcp.Description("Container width in inches")),
		mcp.WithNumber("height", mcp.Required(), mcp.Description("Container height in inches")),
		mcp.WithNumber("font_size", mcp.Description("Intended font size in points (default 18)")),
	), s.handleValidateTextFit)

	s.mcp.AddTool(mcp.NewTool("optimize_slide_text",
		mcp.WithDescription("Shrink and re-wrap overflowing text shapes on a slide so their content fits, never going below the minimum size."),
		presentationID(),
		mcp.WithNumber("slide_index", mcp.Required(), mcp.Description("0-based slide index")),
		mcp.WithNumber("min_size", mcp.Description("Smallest allowed font size in points (default 8)")),
		mcp.WithNumber("max_size", mcp.Description("Largest considered font size in points (default 36)")),
	), s.handleOptimizeSlideText)
}
