// Package iotest holds IO helpers for tests.
package iotest

import (
	"io"
	"testing"

	"go.abhg.dev/attview/internal/linebuf"
)

// Writer builds an io.Writer that logs each line written to it
// to the given testing.TB.
//
// Partial lines are held until their newline arrives,
// or until the test finishes.
func Writer(t testing.TB) io.Writer {
	w, flush := linebuf.Writer(func(line []byte) {
		t.Logf("%s", line)
	})
	t.Cleanup(flush)
	return w
}
