package linebuf

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string

		writes []string // individual write calls
		want   []string // expected lines
	}{
		{
			desc:   "empty strings",
			writes: []string{"", "", ""},
		},
		{
			desc:   "no newline",
			writes: []string{"int", " x", ";"},
			want:   []string{"int x;"},
		},
		{
			desc:   "newline separated",
			writes: []string{"/* a\n", "b */\n", "c\n\n", "d"},
			want:   []string{"/* a", "b */", "c", "", "d"},
		},
		{
			desc:   "partial line",
			writes: []string{"ret", "urn 1;\n// do", "ne"},
			want:   []string{"return 1;", "// done"},
		},
		{
			desc:   "crlf",
			writes: []string{"a\r\nb\r", "\nc\r"},
			want:   []string{"a", "b", "c"},
		},
		{
			desc:   "lone carriage return",
			writes: []string{"\r"},
			want:   []string{""},
		},
		{
			desc:   "many lines in one write",
			writes: []string{"1\n2\n3\n"},
			want:   []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var got []string
			w, done := Writer(func(line []byte) {
				got = append(got, string(line))
			})

			for _, input := range tt.writes {
				n, err := io.WriteString(w, input)
				assert.NoError(t, err)
				assert.Equal(t, len(input), n)
			}

			done()
			done() // no-op the second time

			assert.Equal(t, tt.want, got)
		})
	}
}

// Ensures that there are no data races in Writer
// by writing to it from multiple concurrent goroutines.
// 'go test -race' will explode if there's a data race.
func TestWriterRace(t *testing.T) {
	t.Parallel()

	const N = 100 // number of concurrent writers

	var numLines int
	w, done := Writer(func([]byte) {
		numLines++
	})

	var wg sync.WaitGroup
	wg.Add(N)
	for range N {
		go func() {
			defer wg.Done()

			_, err := io.WriteString(w, "int x;\n")
			assert.NoError(t, err)
			_, err = io.WriteString(w, "int y;\n")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	done()

	require.Equal(t, 2*N, numLines)
}
