package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/pixel-tools-mcp/internal/colorconv"
	"github.com/ironsheep/pixel-tools-mcp/internal/convolve"
	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
	"github.com/ironsheep/pixel-tools-mcp/internal/resample"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_filter").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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

// errUnknownTool is returned by executeTool for unrecognized tool names.
var errUnknownTool = errors.New("unknown tool")

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the resample, convolve, imaging or colorconv package
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Pixel Transformations
	case "image_resize":
		return s.handleImageResize(args)
	case "image_filter":
		return s.handleImageFilter(args)
	case "image_filter_presets":
		return s.handleFilterPresets(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_contrast":
		return s.handleImageContrast(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_contrast":
		return s.handleColorContrast(args)

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
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

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Pixel Transformation Handlers ===

// transformResult is returned by the resize and filter tools.
type transformResult struct {
	imaging.EncodedImage
	SourceWidth  int              `json:"source_width"`
	SourceHeight int              `json:"source_height"`
	Kernel       *convolve.Kernel `json:"kernel,omitempty"`
}

type imageResizeArgs struct {
	Path string `json:"path"`
	resample.Target
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	w, h, err := a.Size(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("resize %s: %dx%d -> %dx%d", a.Path, src.Width(), src.Height(), w, h)
	}

	dst, err := resample.Resize(src, w, h)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodeAndSave(dst, a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &transformResult{
		EncodedImage: *encoded,
		SourceWidth:  src.Width(),
		SourceHeight: src.Height(),
	}, nil
}

type imageFilterArgs struct {
	Path       string    `json:"path"`
	Preset     string    `json:"preset"`
	Kernel     []float64 `json:"kernel"`
	OutputPath string    `json:"output_path"`
}

// kernel resolves the preset or custom weights into a Kernel.
func (a imageFilterArgs) kernel() (convolve.Kernel, error) {
	switch {
	case a.Preset != "" && len(a.Kernel) > 0:
		return convolve.Kernel{}, fmt.Errorf("%w: give either preset or kernel, not both", convolve.ErrInvalidKernel)
	case len(a.Kernel) > 0:
		return convolve.KernelFromSlice(a.Kernel)
	case a.Preset != "":
		return convolve.PresetByName(a.Preset)
	default:
		return convolve.Kernel{}, fmt.Errorf("%w: preset or kernel is required", convolve.ErrInvalidKernel)
	}
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	k, err := a.kernel()
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("filter %s: %s kernel on %dx%d", a.Path, k.Name, src.Width(), src.Height())
	}

	dst, err := convolve.Apply(src, k)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodeAndSave(dst, a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &transformResult{
		EncodedImage: *encoded,
		SourceWidth:  src.Width(),
		SourceHeight: src.Height(),
		Kernel:       &k,
	}, nil
}

type filterPresetsResult struct {
	Presets []convolve.Kernel `json:"presets"`
}

func (s *Server) handleFilterPresets(_ json.RawMessage) (interface{}, error) {
	return &filterPresetsResult{Presets: convolve.Presets()}, nil
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(buf, a.Points)
}

type imageContrastArgs struct {
	Path       string               `json:"path"`
	Foreground imaging.LabeledPoint `json:"foreground"`
	Background imaging.LabeledPoint `json:"background"`
}

func (s *Server) handleImageContrast(args json.RawMessage) (interface{}, error) {
	var a imageContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Foreground.Label == "" {
		a.Foreground.Label = "foreground"
	}
	if a.Background.Label == "" {
		a.Background.Label = "background"
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareColors(buf, a.Foreground, a.Background)
}

type colorConvertArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sample, err := colorconv.ParseSample(a.Color)
	if err != nil {
		return nil, err
	}
	readout := colorconv.Describe(sample)
	return &readout, nil
}

type colorContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fg, err := colorconv.ParseSample(a.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := colorconv.ParseSample(a.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return imaging.CompareSamples(fg, bg), nil
}
