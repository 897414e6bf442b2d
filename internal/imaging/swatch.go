package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

// Swatch geometry limits. Cells are square; oversized requests are scaled
// back down so a careless caller cannot ask for a megapixel strip.
const (
	defaultCellSize = 64
	maxStripWidth   = 1024
)

// SwatchResult contains a rendered palette strip as base64 PNG.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Hex         []string `json:"hex"` // Cell colors, left to right
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// Swatch renders the palette as a horizontal strip of solid square cells
// and returns it base64-encoded, ready for inline display by an MCP
// client.
//
// cellSize is the square cell edge in pixels; values below 1 use the
// default of 64. Strips wider than 1024 pixels are resized down to fit.
// An empty palette is an error.
func Swatch(colors []colorspace.RGB, cellSize int) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("cannot render an empty palette")
	}
	if cellSize < 1 {
		cellSize = defaultCellSize
	}

	width := cellSize * len(colors)
	strip := image.NewRGBA(image.Rect(0, 0, width, cellSize))
	for i, c := range colors {
		cell := image.Rect(i*cellSize, 0, (i+1)*cellSize, cellSize)
		fill := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		for y := cell.Min.Y; y < cell.Max.Y; y++ {
			for x := cell.Min.X; x < cell.Max.X; x++ {
				strip.SetRGBA(x, y, fill)
			}
		}
	}

	out := image.Image(strip)
	if width > maxStripWidth {
		scale := float64(maxStripWidth) / float64(width)
		height := int(float64(cellSize) * scale)
		if height < 1 {
			height = 1
		}
		out = imaging.Resize(strip, maxStripWidth, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.Hex()
	}

	b := out.Bounds()
	return &SwatchResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Hex:         hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
