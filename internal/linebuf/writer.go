// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer returns an io.Writer that splits its input into lines,
// calling fn for each line without its "\n" or "\r\n" terminator.
//
// Text after the last newline is held until more input arrives.
// Call done after the last write to pass it to fn.
// The slice passed to fn is only valid for the duration of the call.
func Writer(fn func(line []byte)) (_ io.Writer, done func()) {
	w := writer{emit: fn}
	return &w, w.flush
}

type writer struct {
	emit func([]byte)

	mu      sync.Mutex   // guards partial
	partial bytes.Buffer // text of an unterminated line
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for {
		line, rest, ok := bytes.Cut(bs, []byte{'\n'})
		if !ok {
			w.partial.Write(bs)
			break
		}
		bs = rest

		if w.partial.Len() > 0 {
			w.partial.Write(line)
			line = w.partial.Bytes()
		}
		w.emit(bytes.TrimSuffix(line, []byte{'\r'}))
		w.partial.Reset()
	}
	return total, nil
}

// flush passes a final unterminated line to fn, if any.
// A trailing "\r" is dropped as it is for terminated lines.
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.partial.Len() > 0 {
		w.emit(bytes.TrimSuffix(w.partial.Bytes(), []byte{'\r'}))
		w.partial.Reset()
	}
}
