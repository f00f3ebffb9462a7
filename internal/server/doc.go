// Package server implements the MCP (Model Context Protocol) server for the
// pixel transformation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes resizing,
// convolution filtering and color readouts through the MCP protocol.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Pixel Transformations:
//   - image_resize: Nearest-neighbour resize by pixels or percent
//   - image_filter: 3x3 convolution with a preset or custom kernel
//   - image_filter_presets: List the preset kernels
//
// Color Operations:
//   - image_sample_color: Eyedropper readout at a pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_contrast: Contrast ratio between two pixels
//   - color_convert: Readout for a color given as text
//   - color_contrast: Contrast ratio between two colors given as text
//
// Transformed images are returned as base64-encoded PNG and can optionally
// be written to an output path.
//
// # Image Caching
//
// The server keeps decoded pixel buffers in memory, keyed by path, for the
// lifetime of the process. Transformations never modify cached buffers.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// Serve reads requests from any reader and writes responses to any writer;
// the pixel-mcp command passes its stdin and stdout:
//
//	srv := server.New(server.WithVersion(version))
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Run is shorthand for Serve(os.Stdin, os.Stdout).
package server
