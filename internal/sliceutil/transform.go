// Package sliceutil holds generic helpers for slices.
package sliceutil

// Transform builds a slice by applying f to every element of from.
// It returns nil for an empty slice.
func Transform[From, To any](from []From, f func(From) To) []To {
	if len(from) == 0 {
		return nil
	}
	to := make([]To, len(from))
	for i, v := range from {
		to[i] = f(v)
	}
	return to
}
