package imaging

import (
	"fmt"
	"image"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

// SampleResult is a sampled pixel color in every representation, plus the
// pixel's alpha. The hex value excludes alpha.
type SampleResult struct {
	X     int                    `json:"x"`     // Sampled X coordinate
	Y     int                    `json:"y"`     // Sampled Y coordinate
	Alpha uint8                  `json:"alpha"` // Opacity: 0=transparent, 255=opaque
	Color colorspace.ColorResult `json:"color"` // Hex, RGB, HSL, HSV, CMYK
}

// SampleColor reads the pixel at (x, y) and reports its color in every
// supported representation.
//
// Coordinates are 0-based from the top-left corner; out-of-bounds
// coordinates are an error. 16-bit source channels are scaled down to
// 8 bits before conversion.
func SampleColor(img image.Image, x, y int) (*SampleResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	c := colorspace.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}

	return &SampleResult{
		X:     x,
		Y:     y,
		Alpha: uint8(a >> 8),
		Color: *c.Result(),
	}, nil
}
