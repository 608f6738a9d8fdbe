package highlight

import "sort"

// SpanIndex is a searchable view of the spans of a single line,
// addressed by byte offset into the line.
type SpanIndex struct {
	spans  []Span
	starts []int // start offset in the line of spans[i]
	ends   []int // end offset in the line of spans[i]
}

// NewSpanIndex builds an index over the spans of one line.
func NewSpanIndex(spans []Span) *SpanIndex {
	starts := make([]int, len(spans))
	ends := make([]int, len(spans))
	for i, s := range spans {
		var start int
		if i > 0 {
			start = ends[i-1]
		}
		starts[i] = start
		ends[i] = start + len(s.Text)
	}

	return &SpanIndex{
		spans:  spans,
		starts: starts,
		ends:   ends,
	}
}

// Len returns the length in bytes of the indexed line.
func (idx *SpanIndex) Len() int {
	if len(idx.ends) == 0 {
		return 0
	}
	return idx.ends[len(idx.ends)-1]
}

// Interval returns the spans covering the range [start, end) of the line.
//
// Spans that straddle start or end are cut at that offset
// and keep their category,
// so the result always joins to exactly line[start:end].
func (idx *SpanIndex) Interval(start, end int) []Span {
	start = max(start, 0)
	end = min(end, idx.Len())
	if start >= end {
		return nil
	}

	// First span that ends after start.
	// It contains start, possibly in its middle.
	first := sort.Search(len(idx.ends), func(i int) bool {
		return idx.ends[i] > start
	})

	var out []Span
	for i := first; i < len(idx.spans) && idx.starts[i] < end; i++ {
		s := idx.spans[i]
		lo := max(start, idx.starts[i]) - idx.starts[i]
		hi := min(end, idx.ends[i]) - idx.starts[i]
		if lo > 0 || hi < len(s.Text) {
			s.Text = s.Text[lo:hi]
		}
		out = append(out, s)
	}
	return out
}
