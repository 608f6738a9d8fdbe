package highlight

import (
	"regexp"

	"go.abhg.dev/attview/internal/grammar"
)

// _tokenPattern recognizes the tokens of a comment-free piece of code.
// Alternatives are tried in order at each position.
//
// Numbers are tried before words so that "0" is a number,
// but must end on a word boundary so that "1abc" stays a word.
// Strings honor backslash escapes
// and absorb the rest of the line if they are never closed.
var _tokenPattern = regexp.MustCompile(
	`(?P<space>\s+)` +
		`|(?P<number>\b[0-9]+\.?[0-9]*\b)` +
		`|(?P<word>\b\w+\b)` +
		`|(?P<string>"(?:[^"\\]|\\.?)*(?:"|$)|'(?:[^'\\]|\\.?)*(?:'|$))` +
		`|(?P<operator>[-+*/%=<>!&|^~\[\]{}().,;:])`,
)

var (
	_spaceGroup    = _tokenPattern.SubexpIndex("space")
	_numberGroup   = _tokenPattern.SubexpIndex("number")
	_wordGroup     = _tokenPattern.SubexpIndex("word")
	_stringGroup   = _tokenPattern.SubexpIndex("string")
	_operatorGroup = _tokenPattern.SubexpIndex("operator")
)

// tokenize classifies code that holds no comments
// and appends the resulting spans to spans.
//
// Text between matches is reported as Identifier
// so that nothing from src is dropped.
func tokenize(spans []Span, src string, g *grammar.Grammar) []Span {
	if src == "" {
		return spans
	}

	var last int
	for _, m := range _tokenPattern.FindAllStringSubmatchIndex(src, -1) {
		start, end := m[0], m[1]
		if start > last {
			spans = append(spans, Span{Text: src[last:start], Category: Identifier})
		}

		text := src[start:end]
		spans = append(spans, Span{Text: text, Category: tokenCategory(m, text, g)})
		last = end
	}

	if last < len(src) {
		spans = append(spans, Span{Text: src[last:], Category: Identifier})
	}
	return spans
}

func tokenCategory(m []int, text string, g *grammar.Grammar) Category {
	matched := func(group int) bool { return m[2*group] >= 0 }

	switch {
	case matched(_spaceGroup):
		return Whitespace
	case matched(_numberGroup):
		return Number
	case matched(_wordGroup):
		if g.IsKeyword(text) {
			return Keyword
		}
		return Identifier
	case matched(_stringGroup):
		return String
	case matched(_operatorGroup):
		return Operator
	default:
		return Identifier
	}
}
