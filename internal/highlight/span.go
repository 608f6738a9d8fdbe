package highlight

import "fmt"

// Category is the syntactic class of a [Span].
type Category int

// Categories recognized by the classifier.
const (
	// Identifier is the default category:
	// names and any text the classifier doesn't recognize.
	Identifier Category = iota
	Whitespace
	Keyword
	String
	Number
	Operator
	Comment
)

// Categories lists all categories in declaration order.
var Categories = []Category{
	Identifier, Whitespace, Keyword, String, Number, Operator, Comment,
}

var _categoryNames = map[Category]string{
	Identifier: "identifier",
	Whitespace: "whitespace",
	Keyword:    "keyword",
	String:     "string",
	Number:     "number",
	Operator:   "operator",
	Comment:    "comment",
}

func (c Category) String() string {
	if name, ok := _categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Span is a contiguous piece of a source line
// with a single syntax category.
type Span struct {
	Text     string
	Category Category
}

func (s Span) String() string {
	return fmt.Sprintf("%v(%q)", s.Category, s.Text)
}

// Join concatenates the text of the given spans.
// For the spans of a line, this reproduces the line.
func Join(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}

	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
