package palette

import (
	"testing"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

func TestGenerate_Cardinality(t *testing.T) {
	tests := []struct {
		harmony Harmony
		want    int
	}{
		{Complementary, 2},
		{Triadic, 3},
		{Analogous, 5},
		{SplitComplementary, 3},
		{Tetradic, 4},
		{Monochromatic, 6},
	}

	base := colorspace.RGB{R: 200, G: 50, B: 100}
	for _, tt := range tests {
		t.Run(string(tt.harmony), func(t *testing.T) {
			colors, err := Generate(base, tt.harmony)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if len(colors) != tt.want {
				t.Errorf("got %d colors, want %d", len(colors), tt.want)
			}
		})
	}
}

func TestGenerate_BaseColorLeads(t *testing.T) {
	// Every hue-rotation palette starts with the base color exactly, even
	// for bases whose HSL representation rounds.
	bases := []colorspace.RGB{
		{R: 255, G: 0, B: 0},
		{R: 200, G: 50, B: 100},
		{R: 17, G: 93, B: 241},
		{R: 1, G: 2, B: 3},
	}
	harmonies := []Harmony{Complementary, Triadic, Analogous, SplitComplementary, Tetradic}

	for _, base := range bases {
		for _, h := range harmonies {
			colors, err := Generate(base, h)
			if err != nil {
				t.Fatalf("Generate(%s, %s) failed: %v", base.Hex(), h, err)
			}
			if colors[0] != base {
				t.Errorf("%s palette of %s starts with %s, want base color",
					h, base.Hex(), colors[0].Hex())
			}
		}
	}
}

func TestGenerate_UnknownHarmony(t *testing.T) {
	if _, err := Generate(colorspace.RGB{R: 10, G: 20, B: 30}, Harmony("vaporwave")); err == nil {
		t.Error("Generate should fail for an unknown harmony")
	}
}

func TestGetComplementary_RedGivesCyan(t *testing.T) {
	red := colorspace.RGB{R: 255, G: 0, B: 0}
	colors := GetComplementary(red)

	if len(colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(colors))
	}
	if colors[0] != red {
		t.Errorf("first color: got %s, want #FF0000", colors[0].Hex())
	}
	// Hue 0 rotated 180 degrees lands on cyan.
	if colors[1] != (colorspace.RGB{R: 0, G: 255, B: 255}) {
		t.Errorf("complement: got %s, want #00FFFF", colors[1].Hex())
	}
}

func TestGetTriadic_PrimariesStayPrimaries(t *testing.T) {
	red := colorspace.RGB{R: 255, G: 0, B: 0}
	colors := GetTriadic(red)

	want := []colorspace.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}
	if len(colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(colors))
	}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("color %d: got %s, want %s", i, colors[i].Hex(), want[i].Hex())
		}
	}
}

func TestGetAnalogous_HueWraparound(t *testing.T) {
	// A red base sends the -60 and -30 offsets across the 0-degree
	// boundary; they must come back as 300 and 330, not negative hues.
	red := colorspace.RGB{R: 255, G: 0, B: 0}
	colors := GetAnalogous(red)

	if len(colors) != 5 {
		t.Fatalf("got %d colors, want 5", len(colors))
	}

	wantHues := []int{0, 300, 330, 30, 60}
	for i, c := range colors {
		hsl := c.HSL()
		if diff := hueDistance(hsl.H, wantHues[i]); diff > 1 {
			t.Errorf("color %d: hue %d, want ~%d", i, hsl.H, wantHues[i])
		}
	}
}

func TestGetSplitComplementary_Hues(t *testing.T) {
	blue := colorspace.RGB{R: 0, G: 0, B: 255} // hue 240
	colors := GetSplitComplementary(blue)

	wantHues := []int{240, 30, 90}
	for i, c := range colors {
		hsl := c.HSL()
		if diff := hueDistance(hsl.H, wantHues[i]); diff > 1 {
			t.Errorf("color %d: hue %d, want ~%d", i, hsl.H, wantHues[i])
		}
	}
}

func TestGetTetradic_Hues(t *testing.T) {
	green := colorspace.RGB{R: 0, G: 255, B: 0} // hue 120
	colors := GetTetradic(green)

	wantHues := []int{120, 210, 300, 30}
	for i, c := range colors {
		hsl := c.HSL()
		if diff := hueDistance(hsl.H, wantHues[i]); diff > 1 {
			t.Errorf("color %d: hue %d, want ~%d", i, hsl.H, wantHues[i])
		}
	}
}

func TestGetMonochromatic_LightnessLadder(t *testing.T) {
	base := colorspace.RGB{R: 255, G: 128, B: 0}
	colors := GetMonochromatic(base)

	if len(colors) != 6 {
		t.Fatalf("got %d colors, want 6", len(colors))
	}

	wantL := []int{10, 25, 40, 55, 70, 85}
	baseHue := base.HSL().H
	for i, c := range colors {
		hsl := c.HSL()
		if hsl.L != wantL[i] {
			t.Errorf("step %d: lightness %d, want %d", i, hsl.L, wantL[i])
		}
		if diff := hueDistance(hsl.H, baseHue); diff > 2 {
			t.Errorf("step %d: hue %d drifted from base hue %d", i, hsl.H, baseHue)
		}
	}
}

func TestGetMonochromatic_GrayBase(t *testing.T) {
	// An achromatic base keeps saturation 0: the ladder is pure grays.
	colors := GetMonochromatic(colorspace.RGB{R: 128, G: 128, B: 128})
	for i, c := range colors {
		if c.R != c.G || c.G != c.B {
			t.Errorf("step %d: %s is not gray", i, c.Hex())
		}
	}
}

func TestGenerate_SaturationLightnessHeld(t *testing.T) {
	// Hue rotations keep saturation and lightness within rounding of the
	// base values.
	base := colorspace.RGB{R: 200, G: 50, B: 100}
	baseHSL := base.HSL()

	colors, err := Generate(base, Tetradic)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, c := range colors {
		hsl := c.HSL()
		if intDiff(hsl.S, baseHSL.S) > 1 {
			t.Errorf("color %d: saturation %d, base %d", i, hsl.S, baseHSL.S)
		}
		if intDiff(hsl.L, baseHSL.L) > 1 {
			t.Errorf("color %d: lightness %d, base %d", i, hsl.L, baseHSL.L)
		}
	}
}

func hueDistance(a, b int) int {
	d := intDiff(colorspace.NormalizeHue(a), colorspace.NormalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func intDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
