package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ironsheep/dotart-mcp/internal/colors"
	"github.com/ironsheep/dotart-mcp/internal/editor"
	"github.com/ironsheep/dotart-mcp/internal/imaging"
	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// errInvalidArgs marks tool arguments that could not be decoded.
var errInvalidArgs = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "canvas_press", "color_set_rgb").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Undecodable arguments return code -32602; other tool errors return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Printf("Tool %s failed: %v", params.Name, err)
		if errors.Is(err, errInvalidArgs) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Decodes arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the session
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Canvas
	case "canvas_new":
		return s.handleCanvasNew(args)
	case "canvas_resize":
		return s.handleCanvasResize(args)
	case "canvas_state":
		return s.session.State(), nil
	case "canvas_render":
		return s.renderer.PNG()

	// Pointer gestures
	case "canvas_press":
		return s.handleCanvasPress(args)
	case "canvas_move":
		return s.handleCanvasMove(args)
	case "canvas_release":
		return s.handleCanvasRelease(args)

	// Direct editing
	case "canvas_paint":
		return s.handleCanvasPaint(args)
	case "canvas_fill":
		return s.handleCanvasFill(args)

	// Inspection
	case "canvas_sample":
		return s.handleCanvasSample(args)
	case "canvas_colors":
		return s.handleCanvasColors(args)

	// Import/Export
	case "canvas_import":
		return s.handleCanvasImport(args)
	case "canvas_export":
		return s.handleCanvasExport(args)

	// Tools and colour
	case "tool_set":
		return s.handleToolSet(args)
	case "color_set_rgb":
		return s.handleColorSetRGB(args)
	case "color_set_hsb":
		return s.handleColorSetHSB(args)
	case "color_set_hex":
		return s.handleColorSetHex(args)
	case "color_get":
		return s.session.Color(), nil

	// Palette
	case "palette_add":
		return s.handlePaletteAdd(args)
	case "palette_select":
		return s.handlePaletteSelect(args)
	case "palette_list":
		return paletteResult{Colors: hexList(s.session.Palette())}, nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// decodeArgs unmarshals tool arguments into v. Missing arguments decode as
// an empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Canvas Handlers ===

type canvasSizeArgs struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

func (s *Server) handleCanvasNew(args json.RawMessage) (interface{}, error) {
	var a canvasSizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.Reset(a.Cols, a.Rows); err != nil {
		return nil, err
	}
	return s.session.State(), nil
}

func (s *Server) handleCanvasResize(args json.RawMessage) (interface{}, error) {
	var a canvasSizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.Resize(a.Cols, a.Rows); err != nil {
		return nil, err
	}
	return s.session.State(), nil
}

// === Pointer Gesture Handlers ===

type cellArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// gestureResult reports the session after a pointer event.
type gestureResult struct {
	Tool      editor.Tool `json:"tool"`
	Selection string      `json:"selection"`
	Rect      *pixel.Rect `json:"selection_rect,omitempty"`
	Painted   int         `json:"painted"`
	Color     string      `json:"color"`
}

func (s *Server) gestureResult() gestureResult {
	st := s.session.State()
	return gestureResult{
		Tool:      st.Tool,
		Selection: st.Selection,
		Rect:      st.Rect,
		Painted:   st.Painted,
		Color:     st.Color.Hex,
	}
}

func (s *Server) handleCanvasPress(args json.RawMessage) (interface{}, error) {
	var a cellArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.Press(a.X, a.Y); err != nil {
		return nil, err
	}
	return s.gestureResult(), nil
}

func (s *Server) handleCanvasMove(args json.RawMessage) (interface{}, error) {
	var a cellArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	s.session.Move(a.X, a.Y)
	return s.gestureResult(), nil
}

func (s *Server) handleCanvasRelease(args json.RawMessage) (interface{}, error) {
	var a cellArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.Release(a.X, a.Y); err != nil {
		return nil, err
	}
	return s.gestureResult(), nil
}

// === Direct Editing Handlers ===

type canvasPaintArgs struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Erase bool `json:"erase"`
}

func (s *Server) handleCanvasPaint(args json.RawMessage) (interface{}, error) {
	var a canvasPaintArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	var err error
	if a.Erase {
		err = s.session.Erase(a.X, a.Y)
	} else {
		err = s.session.Paint(a.X, a.Y)
	}
	if err != nil {
		return nil, err
	}
	return s.session.Sample(a.X, a.Y)
}

type canvasFillArgs struct {
	Target string `json:"target"`
	X1     int    `json:"x1"`
	Y1     int    `json:"y1"`
	X2     int    `json:"x2"`
	Y2     int    `json:"y2"`
}

// fillResult reports the filled area.
type fillResult struct {
	Filled  pixel.Rect `json:"filled"`
	Cells   int        `json:"cells"`
	Color   string     `json:"color"`
	Painted int        `json:"painted"`
}

func (s *Server) handleCanvasFill(args json.RawMessage) (interface{}, error) {
	var a canvasFillArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Target == "" {
		a.Target = "all"
	}

	var filled pixel.Rect
	var err error
	switch a.Target {
	case "all":
		if err = s.session.FillAll(); err == nil {
			filled = s.session.Grid().Bounds()
		}
	case "rect":
		filled, err = s.session.FillRect(pixel.Rect{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2})
	case "selection":
		filled, err = s.session.FillSelection()
	default:
		return nil, fmt.Errorf("%w: unknown fill target %q", errInvalidArgs, a.Target)
	}
	if err != nil {
		return nil, err
	}

	st := s.session.State()
	return fillResult{
		Filled:  filled,
		Cells:   filled.Width() * filled.Height(),
		Color:   st.Color.Hex,
		Painted: st.Painted,
	}, nil
}

// === Inspection Handlers ===

func (s *Server) handleCanvasSample(args json.RawMessage) (interface{}, error) {
	var a cellArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.session.Sample(a.X, a.Y)
}

type canvasColorsArgs struct {
	Count int `json:"count"`
}

func (s *Server) handleCanvasColors(args json.RawMessage) (interface{}, error) {
	var a canvasColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	return s.session.ColorStats(a.Count), nil
}

// === Import/Export Handlers ===

type canvasImportArgs struct {
	Path       string `json:"path"`
	DataBase64 string `json:"data_base64"`
	MaxCols    int    `json:"max_cols"`
	MaxRows    int    `json:"max_rows"`
}

func (s *Server) handleCanvasImport(args json.RawMessage) (interface{}, error) {
	var a canvasImportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var data []byte
	var err error
	switch {
	case a.Path != "":
		data, err = imaging.ReadFile(a.Path)
	case a.DataBase64 != "":
		data, err = base64.StdEncoding.DecodeString(a.DataBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: data_base64: %v", errInvalidArgs, err)
		}
	default:
		return nil, fmt.Errorf("%w: path or data_base64 is required", errInvalidArgs)
	}
	if err != nil {
		return nil, err
	}

	return s.session.Import(data, a.MaxCols, a.MaxRows)
}

type canvasExportArgs struct {
	Format string `json:"format"`
	Scale  int    `json:"scale"`
	Path   string `json:"path"`
}

func (s *Server) handleCanvasExport(args json.RawMessage) (interface{}, error) {
	var a canvasExportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	exp, err := s.session.Export(a.Scale, a.Format)
	if err != nil {
		return nil, err
	}

	res := imaging.NewExportResult(exp.Data, exp.Format, exp.Width, exp.Height, a.Path == "")
	if a.Path != "" {
		if err := os.WriteFile(a.Path, exp.Data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write export: %w", err)
		}
		res.Path = a.Path
	}
	return res, nil
}

// === Tool and Colour Handlers ===

type toolSetArgs struct {
	Tool string `json:"tool"`
}

func (s *Server) handleToolSet(args json.RawMessage) (interface{}, error) {
	var a toolSetArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.SetTool(editor.Tool(a.Tool)); err != nil {
		return nil, err
	}
	return s.gestureResult(), nil
}

type colorRGBArgs struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) handleColorSetRGB(args json.RawMessage) (interface{}, error) {
	var a colorRGBArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.session.SetRGB(a.R, a.G, a.B), nil
}

type colorHSBArgs struct {
	H int `json:"h"`
	S int `json:"s"`
	B int `json:"b"`
}

func (s *Server) handleColorSetHSB(args json.RawMessage) (interface{}, error) {
	var a colorHSBArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.session.SetHSB(a.H, a.S, a.B), nil
}

type colorHexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorSetHex(args json.RawMessage) (interface{}, error) {
	var a colorHexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.session.SetHex(a.Hex)
}

// === Palette Handlers ===

// paletteResult lists the palette as hex strings.
type paletteResult struct {
	Added  *bool    `json:"added,omitempty"`
	Colors []string `json:"colors"`
}

func hexList(cs []colors.RGB) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hex()
	}
	return out
}

func (s *Server) handlePaletteAdd(args json.RawMessage) (interface{}, error) {
	var a colorHexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var added bool
	if a.Hex != "" {
		c, err := colors.ParseHex(a.Hex)
		if err != nil {
			return nil, err
		}
		added = s.session.AddColor(c)
	} else {
		added = s.session.SaveColor()
	}
	return paletteResult{Added: &added, Colors: hexList(s.session.Palette())}, nil
}

type paletteSelectArgs struct {
	Index int `json:"index"`
}

func (s *Server) handlePaletteSelect(args json.RawMessage) (interface{}, error) {
	var a paletteSelectArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.session.UsePaletteColor(a.Index)
}
