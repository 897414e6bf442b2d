package colorspace

// RGB represents a color as 8-bit red, green, and blue channels.
//
// Each channel ranges from 0 to 255, where 0 is no intensity and 255 is
// full intensity.
type RGB struct {
	R uint8 `json:"r"` // Red channel (0-255)
	G uint8 `json:"g"` // Green channel (0-255)
	B uint8 `json:"b"` // Blue channel (0-255)
}

// HSL represents a color in the HSL (Hue, Saturation, Lightness) model.
//
// HSL is often more intuitive for color manipulation than RGB: hue selects
// the color family, saturation runs from gray to vivid, and lightness runs
// from black to white.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// HSV represents a color in the HSV (Hue, Saturation, Value) model.
//
// HSV shares its hue circle with HSL but measures brightness as the maximum
// channel (value) rather than the channel midpoint.
type HSV struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent (0=black, 100=full brightness)
}

// CMYK represents a color in the subtractive CMYK (Cyan, Magenta, Yellow,
// Key/black) model used for print.
type CMYK struct {
	C int `json:"c"` // Cyan: 0-100 percent
	M int `json:"m"` // Magenta: 0-100 percent
	Y int `json:"y"` // Yellow: 0-100 percent
	K int `json:"k"` // Key (black): 0-100 percent
}

// ColorResult contains one color in every representation this package
// supports. It is the standard payload for tools that accept a color in one
// model and need to report all of them.
type ColorResult struct {
	Hex  string `json:"hex"`  // Hex format "#RRGGBB"
	RGB  RGB    `json:"rgb"`  // RGB channels
	HSL  HSL    `json:"hsl"`  // HSL representation
	HSV  HSV    `json:"hsv"`  // HSV representation
	CMYK CMYK   `json:"cmyk"` // CMYK representation
}
