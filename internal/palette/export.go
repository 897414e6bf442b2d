package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

// ExportFormat selects the stylesheet dialect for Export.
type ExportFormat string

const (
	// FormatCSS emits custom properties inside a :root block.
	FormatCSS ExportFormat = "css"

	// FormatSCSS emits Sass variables.
	FormatSCSS ExportFormat = "scss"

	// FormatTailwind emits a colors entry for a Tailwind config.
	FormatTailwind ExportFormat = "tailwind"

	// FormatJSON emits a JSON array of hex strings.
	FormatJSON ExportFormat = "json"
)

// ExportFormats returns every supported export format.
func ExportFormats() []ExportFormat {
	return []ExportFormat{FormatCSS, FormatSCSS, FormatTailwind, FormatJSON}
}

// Export renders a palette as a copy-pasteable snippet in the requested
// format. Colors are numbered 1-based in palette order.
//
// Returns an error for an empty palette or an unknown format.
func Export(colors []colorspace.RGB, format ExportFormat) (string, error) {
	if len(colors) == 0 {
		return "", fmt.Errorf("cannot export an empty palette")
	}

	switch format {
	case FormatCSS:
		var b strings.Builder
		b.WriteString(":root {\n")
		for i, c := range colors {
			fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, strings.ToLower(c.Hex()))
		}
		b.WriteString("}\n")
		return b.String(), nil

	case FormatSCSS:
		var b strings.Builder
		for i, c := range colors {
			fmt.Fprintf(&b, "$color-%d: %s;\n", i+1, strings.ToLower(c.Hex()))
		}
		return b.String(), nil

	case FormatTailwind:
		var b strings.Builder
		b.WriteString("colors: {\n")
		for i, c := range colors {
			fmt.Fprintf(&b, "  'palette-%d': '%s',\n", i+1, strings.ToLower(c.Hex()))
		}
		b.WriteString("},\n")
		return b.String(), nil

	case FormatJSON:
		hexes := make([]string, len(colors))
		for i, c := range colors {
			hexes[i] = strings.ToLower(c.Hex())
		}
		out, err := json.MarshalIndent(hexes, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode palette: %w", err)
		}
		return string(out), nil

	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
}
