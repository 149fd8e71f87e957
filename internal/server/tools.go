package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// cellSchema is the input schema for tools addressing one cell.
func cellSchema(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Cell column (0-based, from left)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Cell row (0-based, from top)",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   []string{"x", "y"},
	}
}

func sizeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cols": map[string]interface{}{
				"type":        "integer",
				"description": "Grid width in cells (must be positive)",
			},
			"rows": map[string]interface{}{
				"type":        "integer",
				"description": "Grid height in cells (must be positive)",
			},
		},
		"required": []string{"cols", "rows"},
	}
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Canvas
		{
			Name:        "canvas_new",
			Description: "Replace the canvas with a new transparent grid of the given size. Any selection is discarded.",
			InputSchema: sizeSchema(),
		},
		{
			Name:        "canvas_resize",
			Description: "Resize the canvas, keeping the content that overlaps the new size. Any selection is discarded.",
			InputSchema: sizeSchema(),
		},
		{
			Name:        "canvas_state",
			Description: "Report the canvas size, painted cell count, active tool, selection, working colour and palette.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "canvas_render",
			Description: "Return the current view as a base64 PNG: cells magnified with grid lines, a checkerboard for transparency and the selection outline.",
			InputSchema: emptySchema(),
		},

		// Pointer gestures
		{
			Name:        "canvas_press",
			Description: "Press the pointer on a cell with the active tool. Must be followed by canvas_release before the next press.",
			InputSchema: cellSchema(nil),
		},
		{
			Name:        "canvas_move",
			Description: "Move the pressed pointer to a cell. Ignored when the pointer is not pressed.",
			InputSchema: cellSchema(nil),
		},
		{
			Name:        "canvas_release",
			Description: "Release the pointer on a cell, completing the gesture (stroke, selection, move or rectangle).",
			InputSchema: cellSchema(nil),
		},

		// Direct editing
		{
			Name:        "canvas_paint",
			Description: "Paint one cell with the working colour, or make it transparent when erase is true.",
			InputSchema: cellSchema(map[string]interface{}{
				"erase": map[string]interface{}{
					"type":        "boolean",
					"description": "Make the cell transparent instead of painting it. Default false",
					"default":     false,
				},
			}),
		},
		{
			Name:        "canvas_fill",
			Description: "Fill with the working colour: the whole canvas, a rectangle given by two opposite corners, or the current selection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"target": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"all", "rect", "selection"},
						"description": "What to fill. Default all",
						"default":     "all",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "First corner column (target rect)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "First corner row (target rect)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Opposite corner column, inclusive (target rect)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Opposite corner row, inclusive (target rect)",
					},
				},
			},
		},

		// Inspection
		{
			Name:        "canvas_sample",
			Description: "Read the colour of one cell in hex, RGB and HSB. Transparent cells report painted=false.",
			InputSchema: cellSchema(nil),
		},
		{
			Name:        "canvas_colors",
			Description: "List the most used colours on the canvas with cell counts and percentages.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colours to return. Default 8",
						"default":     8,
					},
				},
			},
		},

		// Import/Export
		{
			Name:        "canvas_import",
			Description: "Replace the canvas with an image, one cell per pixel. Pixels with alpha below 128 become transparent. Supports PNG, JPEG, GIF, BMP, TIFF and WebP.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"data_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded image data, used when path is not given",
					},
					"max_cols": map[string]interface{}{
						"type":        "integer",
						"description": "Downsample wider images to at most this many columns. Default 0 (no limit)",
					},
					"max_rows": map[string]interface{}{
						"type":        "integer",
						"description": "Downsample taller images to at most this many rows. Default 0 (no limit)",
					},
				},
			},
		},
		{
			Name:        "canvas_export",
			Description: "Encode the canvas with each cell magnified to scale x scale pixels. Writes to path if given, otherwise returns base64 data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "lossless", "jpeg", "jpg", "lossy", "ico", "icon", "gif", "bmp", "pdf"},
						"description": "Output format. Default from DOTART_EXPORT_FORMAT (png)",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per cell. Default from DOTART_EXPORT_SCALE (1)",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional absolute output path",
					},
				},
			},
		},

		// Tools and colour
		{
			Name:        "tool_set",
			Description: "Choose the tool used by pointer gestures. Leaving the select tool discards the selection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tool": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"pencil", "eraser", "select", "rect", "eyedropper"},
						"description": "Tool name",
					},
				},
				"required": []string{"tool"},
			},
		},
		{
			Name:        "color_set_rgb",
			Description: "Set the working colour from red, green and blue (0-255, clamped).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{"type": "integer", "description": "Red 0-255"},
					"g": map[string]interface{}{"type": "integer", "description": "Green 0-255"},
					"b": map[string]interface{}{"type": "integer", "description": "Blue 0-255"},
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_set_hsb",
			Description: "Set the working colour from hue (degrees, wrapped), saturation and brightness (0-100, clamped).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{"type": "integer", "description": "Hue 0-359"},
					"s": map[string]interface{}{"type": "integer", "description": "Saturation 0-100"},
					"b": map[string]interface{}{"type": "integer", "description": "Brightness 0-100"},
				},
				"required": []string{"h", "s", "b"},
			},
		},
		{
			Name:        "color_set_hex",
			Description: "Set the working colour from a hex string such as #FF8040 or #F84.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour, with or without the leading #",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_get",
			Description: "Return the working colour as RGB, HSB, hex and CSS text.",
			InputSchema: emptySchema(),
		},

		// Palette
		{
			Name:        "palette_add",
			Description: "Save a colour to the palette (10 entries, oldest evicted). Saves the working colour unless hex is given. Duplicates are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Optional colour to save instead of the working colour",
					},
				},
			},
		},
		{
			Name:        "palette_select",
			Description: "Make a saved palette colour the working colour.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"index": map[string]interface{}{
						"type":        "integer",
						"description": "Palette entry, 0 is the oldest",
					},
				},
				"required": []string{"index"},
			},
		},
		{
			Name:        "palette_list",
			Description: "List the saved palette colours, oldest first.",
			InputSchema: emptySchema(),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
