// Package colorspace implements conversions between the HEX, RGB, HSL, HSV,
// and CMYK color models.
//
// RGB is the pivot representation: every conversion is defined either from
// RGB or to RGB, so any path between two models goes through 8-bit integer
// channels. Non-RGB components are stored as rounded integers (degrees for
// hue, percent for everything else), and the rounding is part of the
// contract: converting a rounded value back and forth again produces the
// same rounded value rather than drifting on repeated round trips.
//
// # Value Ranges
//
//   - RGB: each channel 0-255
//   - HSL: H 0-359 degrees, S and L 0-100 percent
//   - HSV: H 0-359 degrees, S and V 0-100 percent
//   - CMYK: each component 0-100 percent
//   - HEX: "#RRGGBB", uppercase on output, case-insensitive on input
//
// # Parsing Modes
//
// ParseHex is strict and returns an error for anything that is not six hex
// digits with an optional leading "#". ParseHexOrBlack is the permissive
// variant for UI-style callers: malformed input yields black instead of an
// error, so a color field being edited character-by-character never flashes
// a failure state. The two modes are deliberately separate functions.
//
// # Degenerate Inputs
//
// Pure black has no defined hue or saturation; the conversions special-case
// it (HSV saturation 0, CMYK {0,0,0,100}) so no NaN can escape into results.
package colorspace
