package colorspace

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// ParseHex parses a strict hex color string into RGB channels.
//
// The input must be exactly six hex digits with an optional leading "#".
// Digits are case-insensitive. Anything else (shorthand "#FFF", alpha
// suffixes, stray characters) is an error.
//
// Callers that want the permissive fall-back-to-black behavior should use
// ParseHexOrBlack instead; the two modes are intentionally not combined.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// ParseHexOrBlack parses a hex color string, substituting black for any
// input ParseHex would reject.
//
// This is the legacy permissive mode for callers handling user input as it
// is typed: a half-edited color field produces a stable black swatch rather
// than an error state.
func ParseHexOrBlack(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		return RGB{}
	}
	return c
}

// Hex formats the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// FromFloats builds an RGB color from float channels, clamping each to
// [0, 255] and rounding to the nearest integer.
func FromFloats(r, g, b float64) RGB {
	return RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

// Result returns the color in every supported representation.
func (c RGB) Result() *ColorResult {
	return &ColorResult{
		Hex:  c.Hex(),
		RGB:  c,
		HSL:  c.HSL(),
		HSV:  c.HSV(),
		CMYK: c.CMYK(),
	}
}

// Convert parses a strict hex color and returns it in every supported
// representation.
func Convert(hexColor string) (*ColorResult, error) {
	c, err := ParseHex(hexColor)
	if err != nil {
		return nil, err
	}
	return c.Result(), nil
}

// HSL converts the color to the HSL model.
//
// The conversion uses the max-channel branch method: lightness is the
// midpoint of the extreme channels, saturation is the normalized channel
// spread, and hue depends on which channel is largest. Achromatic colors
// (all channels equal) have hue and saturation 0.
func (c RGB) HSL() HSL {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max, min := maxMin(rf, gf, bf)
	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: round(l * 100)}
	}

	d := max - min
	var s float64
	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2.0 - max - min)
	}

	return HSL{
		H: hueOf(rf, gf, bf, max, d),
		S: round(s * 100),
		L: round(l * 100),
	}
}

// RGB converts an HSL color back to RGB channels.
//
// Hue is normalized into [0, 360) first, so out-of-range or negative hues
// (as produced by hue-wheel arithmetic) are accepted.
func (h HSL) RGB() RGB {
	hue := float64(NormalizeHue(h.H))
	s := clampPercent(h.S) / 100.0
	l := clampPercent(h.L) / 100.0

	chroma := (1.0 - math.Abs(2.0*l-1.0)) * s
	x := chroma * (1.0 - math.Abs(math.Mod(hue/60.0, 2.0)-1.0))
	m := l - chroma/2.0

	rf, gf, bf := sextant(hue, chroma, x)
	return FromFloats((rf+m)*255.0, (gf+m)*255.0, (bf+m)*255.0)
}

// HSV converts the color to the HSV model.
//
// Value is the maximum channel. Saturation is 0 for pure black, which has
// no defined saturation, avoiding a divide by zero.
func (c RGB) HSV() HSV {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max, min := maxMin(rf, gf, bf)
	d := max - min

	var s float64
	if max > 0 {
		s = d / max
	}

	hue := 0
	if d > 0 {
		hue = hueOf(rf, gf, bf, max, d)
	}

	return HSV{H: hue, S: round(s * 100), V: round(max * 100)}
}

// RGB converts an HSV color back to RGB channels.
func (h HSV) RGB() RGB {
	hue := float64(NormalizeHue(h.H))
	s := clampPercent(h.S) / 100.0
	v := clampPercent(h.V) / 100.0

	chroma := v * s
	x := chroma * (1.0 - math.Abs(math.Mod(hue/60.0, 2.0)-1.0))
	m := v - chroma

	rf, gf, bf := sextant(hue, chroma, x)
	return FromFloats((rf+m)*255.0, (gf+m)*255.0, (bf+m)*255.0)
}

// CMYK converts the color to the subtractive CMYK model.
//
// Pure black is special-cased to {0,0,0,100}: the general formula divides
// by 1-K, which is zero there.
func (c RGB) CMYK() CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max, _ := maxMin(rf, gf, bf)
	k := 1.0 - max

	return CMYK{
		C: round((1.0 - rf - k) / (1.0 - k) * 100),
		M: round((1.0 - gf - k) / (1.0 - k) * 100),
		Y: round((1.0 - bf - k) / (1.0 - k) * 100),
		K: round(k * 100),
	}
}

// RGB converts a CMYK color back to RGB channels.
func (k CMYK) RGB() RGB {
	c := clampPercent(k.C) / 100.0
	m := clampPercent(k.M) / 100.0
	y := clampPercent(k.Y) / 100.0
	kk := clampPercent(k.K) / 100.0

	return FromFloats(
		255.0*(1.0-c)*(1.0-kk),
		255.0*(1.0-m)*(1.0-kk),
		255.0*(1.0-y)*(1.0-kk),
	)
}

// NormalizeHue wraps a hue in degrees into [0, 360), handling negative
// inputs from hue-wheel rotation arithmetic.
func NormalizeHue(h int) int {
	return (h%360 + 360) % 360
}

// hueOf computes the hue in degrees via the max-channel branch method.
// d must be max-min and non-zero.
func hueOf(rf, gf, bf, max, d float64) int {
	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/d
	case bf:
		h = 4.0 + (rf-gf)/d
	}
	// Rounding can land exactly on 360; wrap back to 0.
	return round(h*60) % 360
}

// sextant returns the base RGB contributions for a hue in [0, 360).
func sextant(hue, chroma, x float64) (rf, gf, bf float64) {
	switch {
	case hue < 60:
		return chroma, x, 0
	case hue < 120:
		return x, chroma, 0
	case hue < 180:
		return 0, chroma, x
	case hue < 240:
		return 0, x, chroma
	case hue < 300:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

func maxMin(a, b, c float64) (max, min float64) {
	max, min = a, a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}
	if b < min {
		min = b
	}
	if c < min {
		min = c
	}
	return max, min
}

func round(f float64) int {
	return int(math.Round(f))
}

func clampByte(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(math.Round(f))
}

func clampPercent(p int) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return float64(p)
}
