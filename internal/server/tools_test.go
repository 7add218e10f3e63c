package server

import (
	"context"
	"encoding/json"
	"testing"
)

// listTools drives the registered catalog through the MCP message layer.
func listTools(t *testing.T, s *Server) []struct {
	Name        string `json:"name"`
	Description string `json:"description"`
} {
	t.Helper()
	ctx := context.Background()

	init := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"initialize",
		"params":{"protocolVersion":"2025-03-26","capabilities":{},
		"clientInfo":{"name":"test","version":"0"}}}`)
	if resp := s.mcp.HandleMessage(ctx, init); resp == nil {
		t.Fatal("initialize returned nil")
	}

	list := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	resp := s.mcp.HandleMessage(ctx, list)
	if resp == nil {
		t.Fatal("tools/list returned nil")
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to re-encode response: %v", err)
	}
	var decoded struct {
		Result struct {
			Tools []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"tools"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to decode tools/list response: %v", err)
	}
	if decoded.Error != nil {
		t.Fatalf("tools/list failed: %s", decoded.Error.Message)
	}
	return decoded.Result.Tools
}

func TestToolCatalog(t *testing.T) {
	s := newTestServer(t)
	tools := listTools(t, s)

	expected := []string{
		"create_presentation",
		"create_presentation_from_template",
		"open_presentation",
		"save_presentation",
		"close_presentation",
		"list_presentations",
		"get_presentation_info",
		"get_template_file_info",
		"set_core_properties",
		"add_slide",
		"delete_slide",
		"move_slide",
		"get_slide_info",
		"extract_slide_text",
		"extract_presentation_text",
		"populate_placeholder",
		"add_bullet_points",
		"add_textbox",
		"format_text",
		"add_image",
		"add_image_from_base64",
		"add_table",
		"format_table_cell",
		"add_shape",
		"add_connector",
		"add_chart",
		"update_chart_data",
		"list_color_schemes",
		"apply_theme",
		"set_gradient_background",
		"enhance_image",
		"list_slide_templates",
		"apply_slide_template",
		"create_slide_from_template",
		"set_slide_transition",
		"validate_text_fit",
		"optimize_slide_text",
	}

	byName := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if byName[tool.Name] {
			t.Errorf("duplicate tool registration: %s", tool.Name)
		}
		byName[tool.Name] = true
	}

	for _, name := range expected {
		if !byName[name] {
			t.Errorf("tool %s not registered", name)
		}
	}
	if len(tools) != len(expected) {
		t.Errorf("catalog has %d tools, want %d", len(tools), len(expected))
	}
}

func TestToolCatalog_Descriptions(t *testing.T) {
	s := newTestServer(t)
	for _, tool := range listTools(t, s) {
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
	}
}
