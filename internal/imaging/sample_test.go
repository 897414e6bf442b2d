package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := solidImage(50, 50, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 25, 25)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.X != 25 || result.Y != 25 {
		t.Errorf("coordinates: got (%d,%d), want (25,25)", result.X, result.Y)
	}
	if result.Color.Hex != "#FF8040" {
		t.Errorf("hex: got %s, want #FF8040", result.Color.Hex)
	}
	if result.Color.RGB != (colorspace.RGB{R: 255, G: 128, B: 64}) {
		t.Errorf("rgb: got %+v", result.Color.RGB)
	}
	if result.Alpha != 255 {
		t.Errorf("alpha: got %d, want 255", result.Alpha)
	}
}

func TestSampleColor_AllRepresentations(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{255, 128, 0, 255})

	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Color.HSL != (colorspace.HSL{H: 30, S: 100, L: 50}) {
		t.Errorf("hsl: got %+v", result.Color.HSL)
	}
	if result.Color.HSV != (colorspace.HSV{H: 30, S: 100, V: 100}) {
		t.Errorf("hsv: got %+v", result.Color.HSV)
	}
	if result.Color.CMYK != (colorspace.CMYK{C: 0, M: 50, Y: 100, K: 0}) {
		t.Errorf("cmyk: got %+v", result.Color.CMYK)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := solidImage(20, 20, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 10},
		{"negative y", 10, -1},
		{"x at width", 20, 10},
		{"y at height", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Errorf("SampleColor(%d,%d) should fail", tt.x, tt.y)
			}
		})
	}
}

func TestSampleColor_EdgePixels(t *testing.T) {
	img := solidImage(20, 20, color.RGBA{9, 9, 9, 255})
	for _, p := range [][2]int{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if _, err := SampleColor(img, p[0], p[1]); err != nil {
			t.Errorf("SampleColor(%d,%d) failed: %v", p[0], p[1], err)
		}
	}
}

func TestSampleColor_TransparentPixel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{0, 0, 0, 0})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Alpha != 0 {
		t.Errorf("alpha: got %d, want 0", result.Alpha)
	}
}
