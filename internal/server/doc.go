// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion,
// palette generation, contrast checking, and image color extraction through
// the MCP protocol, so MCP-compatible clients can work with precise color
// math instead of eyeballing values.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color math:
//   - color_convert: One color in HEX/RGB/HSL/HSV/CMYK
//   - contrast_check: WCAG contrast ratio and AA/AAA classification
//
// Palettes:
//   - palette_generate: Color harmonies from a base color
//   - palette_export: CSS/SCSS/Tailwind/JSON snippets
//   - palette_swatch: Palette preview strip as base64 PNG
//
// Images:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Color at a pixel, all representations
//   - image_extract_colors: Dominant colors via median-cut quantization
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are
// cached by path and reused across tool calls, so extracting, sampling, and
// re-extracting from the same file decodes it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
