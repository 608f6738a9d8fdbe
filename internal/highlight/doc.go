// Package highlight classifies lines of source code
// into syntax categories for highlighting.
//
// A line is split into a sequence of [Span]s,
// each tagged with a [Category].
// The spans of a line always concatenate back to the line verbatim.
//
// Classification is driven by a [grammar.Grammar]
// and has no failure modes:
// text that isn't recognized is reported as [Identifier].
//
// [ClassifyLine] treats every line in isolation.
// Use a [Scanner] or [Highlight] to classify a whole file
// so that block comments spanning several lines are tracked.
package highlight
