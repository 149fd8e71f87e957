// Package server implements the MCP (Model Context Protocol) server for the
// dot-art editor.
//
// This package provides a JSON-RPC 2.0 server that exposes one editing
// session through the MCP protocol, so an MCP client can draw, select, move,
// recolour, import and export pixel art cell by cell.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Canvas:
//   - canvas_new, canvas_resize: Replace or resize the grid
//   - canvas_state: Summarise the session
//   - canvas_render: The current view as PNG
//
// Pointer gestures (routed by the active tool):
//   - canvas_press, canvas_move, canvas_release
//
// Direct editing and inspection:
//   - canvas_paint, canvas_fill
//   - canvas_sample, canvas_colors
//
// Import/Export:
//   - canvas_import: Image file or base64 data to grid
//   - canvas_export: Grid to PNG, JPEG, ICO, GIF, BMP or PDF
//
// Tools, colour and palette:
//   - tool_set
//   - color_set_rgb, color_set_hsb, color_set_hex, color_get
//   - palette_add, palette_select, palette_list
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 for undecodable arguments, -32000 for any other failure
//   - message: Human-readable error description
//   - data: The Go error string
package server
