package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/freeassetfilter/color-tools-mcp/internal/imaging"
	"github.com/freeassetfilter/color-tools-mcp/internal/lut"
	"github.com/freeassetfilter/color-tools-mcp/internal/palette"
)

// flattenMaxDim bounds the image->buffer conversion; the engine's own
// sampling stride covers the rest of the way down to its grid.
const flattenMaxDim = 512

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "palette_extract").
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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Palette Extraction
	case "palette_extract":
		return s.handlePaletteExtract(args)

	// Color Utilities
	case "color_rgb_to_lab":
		return s.handleRGBToLab(args)
	case "color_lab_to_rgb":
		return s.handleLabToRGB(args)
	case "color_ciede2000":
		return s.handleCIEDE2000(args)

	// Preview Rendering
	case "lut_preview":
		return s.handleLUTPreview(args)
	case "image_thumbnail":
		return s.handleThumbnail(args)

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

// === Palette Extraction Handlers ===

type paletteExtractArgs struct {
	Path         string  `json:"path"`
	NumColors    int     `json:"num_colors"`
	MinDistance  float64 `json:"min_distance"`
	MaxSampleDim int     `json:"max_sample_dim"`
	Seed         *int64  `json:"seed,omitempty"`
}

// PaletteColor is one palette entry in the representations UI callers
// need: CSS hex, 8-bit RGB and the Lab value the engine selected.
type PaletteColor struct {
	Hex string      `json:"hex"`
	RGB palette.RGB `json:"rgb"`
	Lab palette.Lab `json:"lab"`
}

// PaletteResult contains the extracted palette, most prominent color
// first.
type PaletteResult struct {
	Colors []PaletteColor `json:"colors"`
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := palette.Options{
		NumColors:    a.NumColors,
		MinDistance:  a.MinDistance,
		MaxSampleDim: a.MaxSampleDim,
	}
	if a.Seed != nil {
		opts.Rand = rand.New(rand.NewSource(*a.Seed))
	}
	engine := palette.New(opts)

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	buf := imaging.ToPixelBuffer(img, flattenMaxDim)
	colors, err := engine.Extract(buf)
	if err != nil {
		return nil, err
	}

	result := &PaletteResult{Colors: make([]PaletteColor, len(colors))}
	for i, c := range colors {
		result.Colors[i] = PaletteColor{
			Hex: colorful.Color{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
			}.Hex(),
			RGB: c,
			Lab: palette.RGBToLab(c.R, c.G, c.B),
		}
	}
	return result, nil
}

// === Color Utility Handlers ===

type rgbToLabArgs struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) handleRGBToLab(args json.RawMessage) (interface{}, error) {
	var a rgbToLabArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.R < 0 || a.R > 255 || a.G < 0 || a.G > 255 || a.B < 0 || a.B > 255 {
		return nil, fmt.Errorf("rgb components must be in [0,255], got (%d,%d,%d)", a.R, a.G, a.B)
	}
	return palette.RGBToLab(uint8(a.R), uint8(a.G), uint8(a.B)), nil
}

type labToRGBArgs struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

func (s *Server) handleLabToRGB(args json.RawMessage) (interface{}, error) {
	var a labToRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rgb := palette.LabToRGB(palette.Lab{L: a.L, A: a.A, B: a.B})
	return PaletteColor{
		Hex: colorful.Color{
			R: float64(rgb.R) / 255.0,
			G: float64(rgb.G) / 255.0,
			B: float64(rgb.B) / 255.0,
		}.Hex(),
		RGB: rgb,
		Lab: palette.Lab{L: a.L, A: a.A, B: a.B},
	}, nil
}

type ciede2000Args struct {
	L1 float64 `json:"l1"`
	A1 float64 `json:"a1"`
	B1 float64 `json:"b1"`
	L2 float64 `json:"l2"`
	A2 float64 `json:"a2"`
	B2 float64 `json:"b2"`
}

// DistanceResult contains a CIEDE2000 color difference.
type DistanceResult struct {
	DeltaE float64 `json:"delta_e"`
}

func (s *Server) handleCIEDE2000(args json.RawMessage) (interface{}, error) {
	var a ciede2000Args
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d := palette.CIEDE2000(
		palette.Lab{L: a.L1, A: a.A1, B: a.B1},
		palette.Lab{L: a.L2, A: a.A2, B: a.B2},
	)
	return DistanceResult{DeltaE: d}, nil
}

// === Preview Rendering Handlers ===

type lutPreviewArgs struct {
	ImagePath string `json:"image_path"`
	LUTPath   string `json:"lut_path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func (s *Server) handleLUTPreview(args json.RawMessage) (interface{}, error) {
	var a lutPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 320
	}
	if a.Height == 0 {
		a.Height = 180
	}

	f, err := os.Open(a.LUTPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open LUT: %w", err)
	}
	defer f.Close()

	table, err := lut.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LUT: %w", err)
	}

	img, err := s.cache.Load(a.ImagePath)
	if err != nil {
		return nil, err
	}

	return lut.Preview(table, img, a.Width, a.Height)
}

type thumbnailArgs struct {
	Path      string `json:"path"`
	MaxWidth  int    `json:"max_width"`
	MaxHeight int    `json:"max_height"`
}

func (s *Server) handleThumbnail(args json.RawMessage) (interface{}, error) {
	var a thumbnailArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxWidth == 0 {
		a.MaxWidth = 256
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = 256
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Thumbnail(img, a.MaxWidth, a.MaxHeight)
}
