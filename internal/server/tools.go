package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and metadata. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
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
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Palette Extraction
		{
			Name:        "palette_extract",
			Description: "Extract a perceptually diverse accent-color palette from an image using k-means clustering in Lab space with the CIEDE2000 distance. Always returns exactly num_colors entries, most prominent first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"num_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Palette size. Default 5",
						"default":     5,
					},
					"min_distance": map[string]interface{}{
						"type":        "number",
						"description": "CIEDE2000 distance two palette entries must keep from each other. Default 20.0",
						"default":     20.0,
					},
					"max_sample_dim": map[string]interface{}{
						"type":        "integer",
						"description": "Sampling grid cap per axis. Default 150",
						"default":     150,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional random seed for reproducible extraction",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Utilities
		{
			Name:        "color_rgb_to_lab",
			Description: "Convert an 8-bit sRGB color to CIE L*a*b* (D65).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{"type": "integer", "description": "Red component (0-255)"},
					"g": map[string]interface{}{"type": "integer", "description": "Green component (0-255)"},
					"b": map[string]interface{}{"type": "integer", "description": "Blue component (0-255)"},
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_lab_to_rgb",
			Description: "Convert a CIE L*a*b* color to 8-bit sRGB. Out-of-gamut values are clamped per channel, never wrapped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"l": map[string]interface{}{"type": "number", "description": "Lightness (0-100)"},
					"a": map[string]interface{}{"type": "number", "description": "Green-red axis (-128 to 127)"},
					"b": map[string]interface{}{"type": "number", "description": "Blue-yellow axis (-128 to 127)"},
				},
				"required": []string{"l", "a", "b"},
			},
		},
		{
			Name:        "color_ciede2000",
			Description: "Compute the CIEDE2000 perceptual color difference between two Lab colors. Values under ~1.0 are imperceptible; 20+ reads as clearly distinct.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"l1": map[string]interface{}{"type": "number"},
					"a1": map[string]interface{}{"type": "number"},
					"b1": map[string]interface{}{"type": "number"},
					"l2": map[string]interface{}{"type": "number"},
					"a2": map[string]interface{}{"type": "number"},
					"b2": map[string]interface{}{"type": "number"},
				},
				"required": []string{"l1", "a1", "b1", "l2", "a2", "b2"},
			},
		},

		// Preview Rendering
		{
			Name:        "lut_preview",
			Description: "Render a downscaled preview of an image graded through a .cube LUT (1D or 3D) and return it as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"lut_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the .cube LUT file",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Preview width in pixels. Default 320",
						"default":     320,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Preview height in pixels. Default 180",
						"default":     180,
					},
				},
				"required": []string{"image_path", "lut_path"},
			},
		},
		{
			Name:        "image_thumbnail",
			Description: "Generate an aspect-preserving thumbnail of an image as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum thumbnail width. Default 256",
						"default":     256,
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum thumbnail height. Default 256",
						"default":     256,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
