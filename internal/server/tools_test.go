package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"canvas_new",
		"canvas_resize",
		"canvas_state",
		"canvas_render",
		"canvas_press",
		"canvas_move",
		"canvas_release",
		"canvas_paint",
		"canvas_fill",
		"canvas_sample",
		"canvas_colors",
		"canvas_import",
		"canvas_export",
		"tool_set",
		"color_set_rgb",
		"color_set_hsb",
		"color_set_hex",
		"color_get",
		"palette_add",
		"palette_select",
		"palette_list",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}
			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties is not a map")
			}

			// every required field must be a declared property
			required, _ := tool.InputSchema["required"].([]string)
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required field %q not in properties", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RequiredCell(t *testing.T) {
	toolsRequiringCell := []string{
		"canvas_press",
		"canvas_move",
		"canvas_release",
		"canvas_paint",
		"canvas_sample",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringCell {
		t.Run(name, func(t *testing.T) {
			tool, ok := toolMap[name]
			if !ok {
				t.Fatalf("tool %s not found", name)
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			if len(required) != 2 || required[0] != "x" || required[1] != "y" {
				t.Errorf("required: got %v, want [x y]", required)
			}
		})
	}
}
