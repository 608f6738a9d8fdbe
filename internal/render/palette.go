package render

import (
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/attview/internal/highlight"
)

// Palette assigns a color to each syntax category.
// Categories without an explicit color use Foreground.
type Palette struct {
	Background chroma.Colour
	Foreground chroma.Colour
	Colors     map[highlight.Category]chroma.Colour
}

// DefaultPalette is a dark palette.
// Keywords, strings, numbers, and comments are colored;
// everything else is drawn in the foreground color.
var DefaultPalette = &Palette{
	Background: chroma.MustParseColour("#2b2b2b"),
	Foreground: chroma.MustParseColour("#ffffff"),
	Colors: map[highlight.Category]chroma.Colour{
		highlight.Keyword: chroma.MustParseColour("#ffbf00"),
		highlight.String:  chroma.MustParseColour("#8bc34a"),
		highlight.Comment: chroma.MustParseColour("#808080"),
		highlight.Number:  chroma.MustParseColour("#f76b6b"),
	},
}

// Color returns the color for spans of the given category.
func (p *Palette) Color(c highlight.Category) chroma.Colour {
	if col, ok := p.Colors[c]; ok {
		return col
	}
	return p.Foreground
}

// IsNeutral reports whether spans of the given category
// are drawn in the foreground color.
func (p *Palette) IsNeutral(c highlight.Category) bool {
	return p.Color(c) == p.Foreground
}
