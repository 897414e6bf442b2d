// Package contrast evaluates text readability per WCAG 2.x.
//
// The contrast ratio between two colors is derived from their relative
// luminance (gamma-corrected, perceptually weighted brightness) and ranges
// from 1.0 (identical luminance) to 21.0 (black on white). WCAG thresholds
// are inclusive: a ratio of exactly 4.5 passes AA for normal text.
package contrast
