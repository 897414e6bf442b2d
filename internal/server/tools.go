package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// hexProperty builds the schema fragment for a hex color argument.
func hexProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + " as a hex color, e.g. \"#FF8040\"",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Math
		{
			Name:        "color_convert",
			Description: "Convert a hex color into all supported representations: HEX, RGB, HSL, HSV, and CMYK.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexProperty("Color to convert"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "contrast_check",
			Description: "Compute the WCAG contrast ratio between two colors and classify it against the AA/AAA thresholds for normal and large text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": hexProperty("Foreground (text) color"),
					"background": hexProperty("Background color"),
				},
				"required": []string{"foreground", "background"},
			},
		},

		// Palettes
		{
			Name:        "palette_generate",
			Description: "Generate a color harmony palette from a base color. Harmonies: complementary (2 colors), triadic (3), analogous (5), split-complementary (3), tetradic (4), monochromatic (6).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexProperty("Base color"),
					"harmony": map[string]interface{}{
						"type":        "string",
						"description": "Harmony name",
						"enum": []string{
							"complementary", "triadic", "analogous",
							"split-complementary", "tetradic", "monochromatic",
						},
					},
				},
				"required": []string{"color", "harmony"},
			},
		},
		{
			Name:        "palette_export",
			Description: "Render a list of colors as a copy-pasteable stylesheet snippet.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"description": "Palette colors as hex strings, in order",
						"items":       map[string]interface{}{"type": "string"},
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Snippet dialect",
						"enum":        []string{"css", "scss", "tailwind", "json"},
					},
				},
				"required": []string{"colors", "format"},
			},
		},
		{
			Name:        "palette_swatch",
			Description: "Render a palette as a horizontal strip of color cells and return it as base64-encoded PNG for inline preview.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"description": "Palette colors as hex strings, left to right",
						"items":       map[string]interface{}{"type": "string"},
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Square cell edge in pixels (default 64)",
					},
				},
				"required": []string{"colors"},
			},
		},

		// Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha-channel presence, and file size. The image stays cached for subsequent operations.",
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
		{
			Name:        "image_sample_color",
			Description: "Get the color of a single pixel in all representations (HEX, RGB, HSL, HSV, CMYK) plus its alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_extract_colors",
			Description: "Extract the dominant colors of an image via median-cut quantization. May return fewer colors than requested for low-variety or mostly-transparent images.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to extract (default 6)",
					},
					"stride": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel sampling interval: 1 inspects every pixel (default 4)",
					},
					"alpha_threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum alpha (0-255) for a pixel to count as visible (default 128)",
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Downsample the image so its longer side is at most this many pixels before sampling (default 512, 0 disables)",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
