package render

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"go.abhg.dev/attview/internal/highlight"
)

// _tokenTypes maps syntax categories to the Chroma token types
// used to style them.
var _tokenTypes = map[highlight.Category]chroma.TokenType{
	highlight.Identifier: chroma.Name,
	highlight.Whitespace: chroma.TextWhitespace,
	highlight.Keyword:    chroma.Keyword,
	highlight.String:     chroma.LiteralString,
	highlight.Number:     chroma.LiteralNumber,
	highlight.Operator:   chroma.Operator,
	highlight.Comment:    chroma.Comment,
}

// TokenType returns the Chroma token type for a category.
func TokenType(c highlight.Category) chroma.TokenType {
	if tt, ok := _tokenTypes[c]; ok {
		return tt
	}
	return chroma.Text
}

// DefaultStyleName is the name under which [DefaultStyle]
// is registered with Chroma.
const DefaultStyleName = "attview"

// DefaultStyle is the Chroma style for [DefaultPalette].
var DefaultStyle = NewStyle(DefaultStyleName, DefaultPalette)

func init() {
	styles.Register(DefaultStyle)
}

// NewStyle builds a Chroma style that draws categories
// in the colors of the given palette.
func NewStyle(name string, p *Palette) *chroma.Style {
	base := p.Foreground.String() + " bg:" + p.Background.String()
	entries := map[chroma.TokenType]string{
		chroma.Background: base,
		chroma.PreWrapper: base,
	}
	for _, c := range highlight.Categories {
		if !p.IsNeutral(c) {
			entries[TokenType(c)] = p.Color(c).String()
		}
	}
	return chroma.MustNewStyle(name, entries)
}

// Tokens converts classified lines into a Chroma token stream,
// with a newline token after every line.
func Tokens(lines [][]highlight.Span) []chroma.Token {
	var tokens []chroma.Token
	for _, spans := range lines {
		for _, s := range spans {
			tokens = append(tokens, chroma.Token{
				Type:  TokenType(s.Category),
				Value: s.Text,
			})
		}
		tokens = append(tokens, chroma.Token{Type: chroma.Text, Value: "\n"})
	}
	return tokens
}
