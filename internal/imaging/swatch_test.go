package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

var swatchColors = []colorspace.RGB{
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
}

func TestSwatch(t *testing.T) {
	result, err := Swatch(swatchColors, 32)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}

	if result.Width != 96 || result.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 96x32", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type: got %s", result.MimeType)
	}

	wantHex := []string{"#FF0000", "#00FF00", "#0000FF"}
	for i, h := range wantHex {
		if result.Hex[i] != h {
			t.Errorf("hex %d: got %s, want %s", i, result.Hex[i], h)
		}
	}

	// The payload must decode back to a valid PNG with each cell filled
	// with its palette color.
	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not valid PNG: %v", err)
	}

	for i, c := range swatchColors {
		r, g, b, _ := img.At(i*32+16, 16).RGBA()
		got := colorspace.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if got != c {
			t.Errorf("cell %d: got %s, want %s", i, got.Hex(), c.Hex())
		}
	}
}

func TestSwatch_DefaultCellSize(t *testing.T) {
	result, err := Swatch(swatchColors, 0)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}
	if result.Width != 192 || result.Height != 64 {
		t.Errorf("dimensions: got %dx%d, want 192x64", result.Width, result.Height)
	}
}

func TestSwatch_EmptyPalette(t *testing.T) {
	if _, err := Swatch(nil, 32); err == nil {
		t.Error("Swatch should fail for an empty palette")
	}
}

func TestSwatch_WideStripResized(t *testing.T) {
	colors := make([]colorspace.RGB, 40)
	for i := range colors {
		colors[i] = colorspace.RGB{R: uint8(i * 6)}
	}

	// 40 cells at 64px is 2560px wide; the strip must come back capped.
	result, err := Swatch(colors, 64)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}
	if result.Width > 1024 {
		t.Errorf("width: got %d, want <= 1024", result.Width)
	}
	if len(result.Hex) != 40 {
		t.Errorf("hex list: got %d entries, want 40", len(result.Hex))
	}
}
