package contrast

import (
	"math"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

// WCAG 2.x minimum contrast ratios. Thresholds are inclusive.
const (
	ThresholdAA       = 4.5 // AA, normal text
	ThresholdAALarge  = 3.0 // AA, large text
	ThresholdAAA      = 7.0 // AAA, normal text
	ThresholdAAALarge = 4.5 // AAA, large text
)

// Result classifies a foreground/background pair against the WCAG
// thresholds.
type Result struct {
	Ratio          float64 `json:"ratio"`            // Contrast ratio, 1.0-21.0
	PassesAA       bool    `json:"passes_aa"`        // Ratio >= 4.5
	PassesAALarge  bool    `json:"passes_aa_large"`  // Ratio >= 3.0
	PassesAAA      bool    `json:"passes_aaa"`       // Ratio >= 7.0
	PassesAAALarge bool    `json:"passes_aaa_large"` // Ratio >= 4.5
}

// RelativeLuminance computes the WCAG relative luminance of a color.
//
// Each channel is normalized to [0,1], linearized with the piecewise sRGB
// gamma curve, and the channels are combined with the 0.2126/0.7152/0.0722
// perceptual weights. The result ranges from 0.0 (black) to 1.0 (white).
func RelativeLuminance(c colorspace.RGB) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize applies the piecewise sRGB gamma correction to a normalized
// channel value.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Ratio computes the contrast ratio between two colors.
//
// The ratio is symmetric (foreground and background are interchangeable)
// and ranges from 1.0, when both colors have identical relative luminance,
// to 21.0 for black against white.
func Ratio(a, b colorspace.RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Evaluate computes the contrast ratio of a color pair and classifies it
// against the WCAG AA and AAA thresholds for normal and large text.
func Evaluate(fg, bg colorspace.RGB) Result {
	ratio := Ratio(fg, bg)
	return Result{
		Ratio:          ratio,
		PassesAA:       ratio >= ThresholdAA,
		PassesAALarge:  ratio >= ThresholdAALarge,
		PassesAAA:      ratio >= ThresholdAAA,
		PassesAAALarge: ratio >= ThresholdAAALarge,
	}
}
