package palette

import (
	"fmt"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

// Harmony identifies a named hue-wheel relationship.
type Harmony string

const (
	// Complementary pairs the base color with its opposite on the hue wheel.
	Complementary Harmony = "complementary"

	// Triadic spaces three colors evenly (120 degrees) around the wheel.
	Triadic Harmony = "triadic"

	// Analogous picks neighbors of the base hue at 30-degree intervals.
	Analogous Harmony = "analogous"

	// SplitComplementary pairs the base with the two hues flanking its
	// complement.
	SplitComplementary Harmony = "split-complementary"

	// Tetradic spaces four colors evenly (90 degrees) around the wheel.
	Tetradic Harmony = "tetradic"

	// Monochromatic keeps hue and saturation and steps through fixed
	// lightness levels. The base color's own lightness is not preserved.
	Monochromatic Harmony = "monochromatic"
)

// hueOffsets maps each hue-rotation harmony to its rotations in degrees.
// Offset 0 always comes first so the base color leads the palette.
var hueOffsets = map[Harmony][]int{
	Complementary:      {0, 180},
	Triadic:            {0, 120, 240},
	Analogous:          {0, -60, -30, 30, 60},
	SplitComplementary: {0, 150, 210},
	Tetradic:           {0, 90, 180, 270},
}

// monochromeLightness is the fixed lightness ladder for monochromatic
// palettes, dark to light.
var monochromeLightness = []int{10, 25, 40, 55, 70, 85}

// Harmonies returns every supported harmony name.
func Harmonies() []Harmony {
	return []Harmony{
		Complementary,
		Triadic,
		Analogous,
		SplitComplementary,
		Tetradic,
		Monochromatic,
	}
}

// Generate derives a palette from the base color.
//
// For hue-rotation harmonies, each palette entry is the base color's HSL
// with the hue rotated by a fixed offset (wrapped into [0,360)), converted
// back to RGB. The zero-offset entry is the base color unchanged, so
// rounding at the HSL boundary never disturbs the first swatch.
//
// Monochromatic palettes hold the base hue and saturation and substitute
// the fixed lightness ladder 10/25/40/55/70/85.
//
// Palette sizes: complementary 2, triadic 3, analogous 5,
// split-complementary 3, tetradic 4, monochromatic 6.
//
// Returns an error for an unknown harmony name.
func Generate(base colorspace.RGB, h Harmony) ([]colorspace.RGB, error) {
	hsl := base.HSL()

	if h == Monochromatic {
		colors := make([]colorspace.RGB, 0, len(monochromeLightness))
		for _, l := range monochromeLightness {
			step := colorspace.HSL{H: hsl.H, S: hsl.S, L: l}
			colors = append(colors, step.RGB())
		}
		return colors, nil
	}

	offsets, ok := hueOffsets[h]
	if !ok {
		return nil, fmt.Errorf("unknown harmony: %s", h)
	}

	colors := make([]colorspace.RGB, 0, len(offsets))
	for _, offset := range offsets {
		if offset == 0 {
			colors = append(colors, base)
			continue
		}
		rotated := colorspace.HSL{
			H: colorspace.NormalizeHue(hsl.H + offset),
			S: hsl.S,
			L: hsl.L,
		}
		colors = append(colors, rotated.RGB())
	}
	return colors, nil
}

// GetComplementary returns the base color and its complement.
func GetComplementary(base colorspace.RGB) []colorspace.RGB {
	return mustGenerate(base, Complementary)
}

// GetTriadic returns three colors spaced 120 degrees apart.
func GetTriadic(base colorspace.RGB) []colorspace.RGB {
	return mustGenerate(base, Triadic)
}

// GetAnalogous returns the base color and its four nearest 30-degree
// neighbors.
func GetAnalogous(base colorspace.RGB) []colorspace.RGB {
	return mustGenerate(base, Analogous)
}

// GetSplitComplementary returns the base color and the two hues flanking
// its complement.
func GetSplitComplementary(base colorspace.RGB) []colorspace.RGB {
	return mustGenerate(base, SplitComplementary)
}

// GetTetradic returns four colors spaced 90 degrees apart.
func GetTetradic(base colorspace.RGB) []colorspace.RGB {
	return mustGenerate(base, Tetradic)
}

// GetMonochromatic returns six lightness steps of the base hue.
func GetMonochromatic(base colorspace.RGB) []colorspace.RGB {
	return mustGenerate(base, Monochromatic)
}

// mustGenerate backs the per-harmony helpers, which only pass known names.
func mustGenerate(base colorspace.RGB, h Harmony) []colorspace.RGB {
	colors, err := Generate(base, h)
	if err != nil {
		panic(err)
	}
	return colors
}
