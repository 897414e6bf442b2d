// Package imaging handles the image-facing side of the color tools: loading
// and caching decoded images, sampling pixel colors, and rendering palette
// swatch strips.
//
// # Image Loading
//
// ImageCache caches decoded images by path so repeated tool calls against
// the same file avoid redundant disk reads. PNG, JPEG, and GIF are
// supported. The cache is safe for concurrent use; cached images remain in
// memory until evicted.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Color Representation
//
// Sampled colors are reported in every representation the colorspace
// package supports (hex, RGB, HSL, HSV, CMYK) plus the pixel's alpha, so a
// single sample answers both "what color is this" and "how opaque it is".
//
// # Swatch Rendering
//
// Swatch renders a palette as a horizontal strip of color cells encoded as
// base64 PNG, which MCP clients can display inline without touching the
// filesystem.
package imaging
