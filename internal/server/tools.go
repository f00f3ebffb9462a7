package server

import "github.com/ironsheep/pixel-tools-mcp/internal/convolve"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that reads an image file.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// pointSchema describes a labeled pixel coordinate.
func pointSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x":     map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
			"y":     map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
			"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
		},
		"required": []string{"x", "y"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	presetNames := make([]string, 0, 4)
	for _, k := range convolve.Presets() {
		presetNames = append(presetNames, k.Name)
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, transparency and size. The decoded pixels are cached for later tool calls on the same path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Pixel Transformations
		{
			Name:        "image_resize",
			Description: "Resize an image with nearest-neighbour sampling and return it as base64-encoded PNG. Give the target size in pixels (width/height) or as percentages (width_percent/height_percent). With keep_aspect, a missing axis follows the aspect ratio of the source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
					"width_percent": map[string]interface{}{
						"type":        "integer",
						"description": "Target width as a percentage of the source width",
					},
					"height_percent": map[string]interface{}{
						"type":        "integer",
						"description": "Target height as a percentage of the source height",
					},
					"keep_aspect": map[string]interface{}{
						"type":        "boolean",
						"description": "Derive the missing axis from the source aspect ratio. Default false",
						"default":     false,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also save the result to (format from extension)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_filter",
			Description: "Apply a 3x3 convolution filter and return the result as base64-encoded PNG. Use a named preset or give 9 custom kernel weights in row-major order. Custom weights are used as-is without normalization. Edges are handled by replicating border pixels; alpha of the result is always opaque.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"preset": map[string]interface{}{
						"type":        "string",
						"enum":        presetNames,
						"description": "Named filter preset",
					},
					"kernel": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"minItems":    9,
						"maxItems":    9,
						"description": "Custom kernel weights, 9 values in row-major order",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also save the result to (format from extension)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_filter_presets",
			Description: "List the named convolution presets with their weights and divisors.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel as hex, RGB, RGBA, HSL, CIE XYZ, CIE Lab, relative luminance and brightness.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color readouts at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type":        "array",
						"items":       pointSchema("Point to sample"),
						"description": "Points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_contrast",
			Description: "Compare the colors of two pixels (typically text and background) and report the contrast ratio, whether it meets the 4.5:1 threshold, and the CIEDE2000 color difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"foreground": pointSchema("Foreground pixel, e.g. on the text"),
					"background": pointSchema("Background pixel"),
				},
				"required": []string{"path", "foreground", "background"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color given as \"#RRGGBB\", \"#RGB\" or \"r,g,b\" into hex, RGB, HSL, CIE XYZ, CIE Lab, luminance and brightness.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color to convert",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_contrast",
			Description: "Report the contrast ratio and CIEDE2000 difference between two colors given as \"#RRGGBB\", \"#RGB\" or \"r,g,b\".",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Foreground color",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color",
					},
				},
				"required": []string{"foreground", "background"},
			},
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
