package highlight

import (
	"strings"

	"go.abhg.dev/attview/internal/grammar"
)

// part is a piece of a line that is either entirely comment
// or entirely code.
type part struct {
	text    string
	comment bool
}

// carve splits a line into comment and code parts.
//
// inBlock reports whether the line starts inside a block comment.
// The returned bool reports whether the line ends inside one.
func carve(line string, inBlock bool, g *grammar.Grammar) (parts []part, _ bool) {
	rest := line
	if inBlock {
		end := strings.Index(rest, g.BlockEnd)
		if end < 0 {
			if rest != "" {
				parts = append(parts, part{text: rest, comment: true})
			}
			return parts, true
		}

		n := end + len(g.BlockEnd)
		parts = append(parts, part{text: rest[:n], comment: true})
		rest = rest[n:]
	}

	for rest != "" {
		pos, block := findComment(rest, g)
		if pos < 0 {
			parts = append(parts, part{text: rest})
			break
		}
		if pos > 0 {
			parts = append(parts, part{text: rest[:pos]})
		}

		if !block {
			parts = append(parts, part{text: rest[pos:], comment: true})
			break
		}

		body := pos + len(g.BlockStart)
		end := strings.Index(rest[body:], g.BlockEnd)
		if end < 0 {
			parts = append(parts, part{text: rest[pos:], comment: true})
			return parts, true
		}

		n := body + end + len(g.BlockEnd)
		parts = append(parts, part{text: rest[pos:n], comment: true})
		rest = rest[n:]
	}

	return parts, false
}

// findComment returns the offset of the first comment marker in src
// that is not inside a string literal, or -1.
// block reports whether it starts a block comment.
func findComment(src string, g *grammar.Grammar) (pos int, block bool) {
	hasBlock := g.HasBlockComments()
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '"', '\'':
			end := skipString(src, i)
			if end < 0 {
				// Unterminated strings run to the end of the line.
				return -1, false
			}
			i = end
			continue
		}

		if hasBlock && strings.HasPrefix(src[i:], g.BlockStart) {
			return i, true
		}
		if g.LineComment != "" && strings.HasPrefix(src[i:], g.LineComment) {
			return i, false
		}
	}
	return -1, false
}

// skipString returns the offset of the quote closing
// the string literal that opens at src[start],
// or -1 if the literal is unterminated.
func skipString(src string, start int) int {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++ // skip escaped character
		case quote:
			return i
		}
	}
	return -1
}
