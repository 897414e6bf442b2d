package server

import (
	"encoding/json"
	"fmt"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
	"github.com/hueforge/color-tools-mcp/internal/contrast"
	"github.com/hueforge/color-tools-mcp/internal/extract"
	"github.com/hueforge/color-tools-mcp/internal/imaging"
	"github.com/hueforge/color-tools-mcp/internal/palette"
)

// Server-side defaults for optional extraction arguments.
const (
	defaultExtractCount        = 6
	defaultExtractMaxDimension = 512
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "palette_generate").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Math
	case "color_convert":
		return s.handleColorConvert(args)
	case "contrast_check":
		return s.handleContrastCheck(args)

	// Palettes
	case "palette_generate":
		return s.handlePaletteGenerate(args)
	case "palette_export":
		return s.handlePaletteExport(args)
	case "palette_swatch":
		return s.handlePaletteSwatch(args)

	// Images
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_extract_colors":
		return s.handleImageExtractColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
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

// parseHexList parses tool arguments that carry a palette as hex strings.
func parseHexList(hexes []string) ([]colorspace.RGB, error) {
	colors := make([]colorspace.RGB, 0, len(hexes))
	for i, h := range hexes {
		c, err := colorspace.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// === Color Math Handlers ===

type colorConvertArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return colorspace.Convert(a.Color)
}

type contrastCheckArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type contrastCheckResult struct {
	Foreground string          `json:"foreground"`
	Background string          `json:"background"`
	Contrast   contrast.Result `json:"contrast"`
}

func (s *Server) handleContrastCheck(args json.RawMessage) (interface{}, error) {
	var a contrastCheckArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	fg, err := colorspace.ParseHex(a.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := colorspace.ParseHex(a.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	return &contrastCheckResult{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Contrast:   contrast.Evaluate(fg, bg),
	}, nil
}

// === Palette Handlers ===

type paletteGenerateArgs struct {
	Color   string `json:"color"`
	Harmony string `json:"harmony"`
}

type paletteGenerateResult struct {
	Harmony string                   `json:"harmony"`
	Colors  []colorspace.ColorResult `json:"colors"`
}

func (s *Server) handlePaletteGenerate(args json.RawMessage) (interface{}, error) {
	var a paletteGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	base, err := colorspace.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	colors, err := palette.Generate(base, palette.Harmony(a.Harmony))
	if err != nil {
		return nil, err
	}

	results := make([]colorspace.ColorResult, len(colors))
	for i, c := range colors {
		results[i] = *c.Result()
	}
	return &paletteGenerateResult{Harmony: a.Harmony, Colors: results}, nil
}

type paletteExportArgs struct {
	Colors []string `json:"colors"`
	Format string   `json:"format"`
}

type paletteExportResult struct {
	Format  string `json:"format"`
	Snippet string `json:"snippet"`
}

func (s *Server) handlePaletteExport(args json.RawMessage) (interface{}, error) {
	var a paletteExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	colors, err := parseHexList(a.Colors)
	if err != nil {
		return nil, err
	}
	snippet, err := palette.Export(colors, palette.ExportFormat(a.Format))
	if err != nil {
		return nil, err
	}
	return &paletteExportResult{Format: a.Format, Snippet: snippet}, nil
}

type paletteSwatchArgs struct {
	Colors   []string `json:"colors"`
	CellSize int      `json:"cell_size"`
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a paletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	colors, err := parseHexList(a.Colors)
	if err != nil {
		return nil, err
	}
	return imaging.Swatch(colors, a.CellSize)
}

// === Image Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

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
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageExtractColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Stride int    `json:"stride"`
	// Pointers distinguish "omitted" from an explicit zero: alpha_threshold 0
	// and max_dimension 0 are both meaningful.
	AlphaThreshold *int `json:"alpha_threshold"`
	MaxDimension   *int `json:"max_dimension"`
}

type imageExtractColorsResult struct {
	Requested int                      `json:"requested"`
	Count     int                      `json:"count"`
	Colors    []colorspace.ColorResult `json:"colors"`
}

func (s *Server) handleImageExtractColors(args json.RawMessage) (interface{}, error) {
	var a imageExtractColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultExtractCount
	}

	opts := extract.DefaultOptions()
	opts.MaxDimension = defaultExtractMaxDimension
	if a.Stride > 0 {
		opts.Stride = a.Stride
	}
	if a.AlphaThreshold != nil {
		t := *a.AlphaThreshold
		if t < 0 || t > 255 {
			return nil, fmt.Errorf("alpha_threshold %d out of range 0-255", t)
		}
		opts.AlphaThreshold = uint8(t)
	}
	if a.MaxDimension != nil {
		opts.MaxDimension = *a.MaxDimension
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	colors, err := extract.FromImage(img, a.Count, opts)
	if err != nil {
		return nil, err
	}

	results := make([]colorspace.ColorResult, len(colors))
	for i, c := range colors {
		results[i] = *c.Result()
	}
	return &imageExtractColorsResult{
		Requested: a.Count,
		Count:     len(results),
		Colors:    results,
	}, nil
}
