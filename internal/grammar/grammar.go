// Package grammar holds the per-language configuration
// used to classify source code:
// which words are reserved and how comments are delimited.
//
// Grammars are looked up by file extension through a [Registry].
// Both are immutable once built and safe to share between goroutines.
package grammar

// Grammar describes the lexical features of a programming language
// that the highlighter cares about.
type Grammar struct {
	// Name of the language, e.g. "python".
	// Empty for the default grammar.
	Name string

	// Keywords is the set of reserved words.
	// Membership is case-sensitive.
	Keywords map[string]struct{}

	// LineComment introduces a comment that runs to the end of the line.
	// Empty if the language has none.
	LineComment string

	// BlockStart and BlockEnd delimit block comments.
	// Either both are set or neither is.
	BlockStart, BlockEnd string
}

// IsKeyword reports whether word is reserved in this grammar.
func (g *Grammar) IsKeyword(word string) bool {
	_, ok := g.Keywords[word]
	return ok
}

// HasBlockComments reports whether the grammar has block comment delimiters.
func (g *Grammar) HasBlockComments() bool {
	return g.BlockStart != "" && g.BlockEnd != ""
}

// Default is the grammar used for files with unrecognized extensions.
// It has no keywords but recognizes C-style comments.
var Default = &Grammar{
	Keywords:    map[string]struct{}{},
	LineComment: "//",
	BlockStart:  "/*",
	BlockEnd:    "*/",
}

func keywordSet(words ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, ws := range words {
		for _, w := range ws {
			set[w] = struct{}{}
		}
	}
	return set
}
