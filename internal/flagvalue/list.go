package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attview/internal/sliceutil"
)

// List is a flag.Getter that may be passed any number of times,
// collecting each value in order.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice of flag.Getter values into a repeatable flag.
//
//	flag.Var(flagvalue.ListOf(&aliases), "lang", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values collected so far.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String joins the collected values with "; ".
func (lv *List[T, PT]) String() string {
	return strings.Join(sliceutil.Transform(*lv, func(v T) string {
		return fmt.Sprint(PT(&v))
	}), "; ")
}

// Set parses and appends a single value.
// The list is unchanged if the value is invalid.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
