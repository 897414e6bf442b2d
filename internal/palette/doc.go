// Package palette generates color harmonies from a base color and exports
// palettes as copy-pasteable stylesheet snippets.
//
// Harmonies are defined as fixed rotations around the HSL hue wheel with
// saturation and lightness held constant. Monochromatic palettes are the
// exception: they hold hue and saturation and step through fixed lightness
// levels instead.
//
// The first color of every hue-rotation palette is the base color itself,
// byte-for-byte: a zero-degree rotation returns the original RGB value
// rather than a value that has been round-tripped through HSL.
package palette
