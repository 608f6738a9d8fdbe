// Package errdefer runs deferred cleanup that can fail,
// folding its error into the surrounding function's named error return.
package errdefer

import (
	"errors"
	"io"
)

// Close closes closer and joins any error it returns into *err.
//
//	defer errdefer.Close(&err, f)
func Close(err *error, closer io.Closer) {
	Run(err, closer.Close)
}

// Run calls fn and joins any error it returns into *err.
// Use it for cleanup functions that aren't io.Closers.
//
//	defer errdefer.Run(&err, closeLog)
func Run(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
