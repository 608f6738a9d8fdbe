package preview

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/attview/internal/grammar"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Kind
	}{
		{"text", Text},
		{"IMAGE", Image},
		{" video ", Video},
		{"audio", Audio},
		{"code", Code},
		{"pdf", PDF},
		{"docx", DOCX},
		{"1", Text},
		{"5", Code},
		{"7", DOCX},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind_errors(t *testing.T) {
	t.Parallel()

	for _, give := range []string{"", "unknown", "0", "8", "spreadsheet"} {
		_, err := ParseKind(give)
		assert.ErrorContains(t, err, "unknown kind", "input %q", give)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "code", Code.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKind_Highlighted(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{Text, Image, Video, Audio, PDF, DOCX} {
		assert.False(t, k.Highlighted(), "%v", k)
	}
	assert.True(t, Code.Highlighted())
}

func TestKind_flag(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var k Kind
	fset.Var(&k, "kind", "")
	require.NoError(t, fset.Parse([]string{"-kind", "docx"}))
	assert.Equal(t, DOCX, k)
	assert.Equal(t, DOCX, k.Get())

	assert.Error(t, fset.Parse([]string{"-kind", "spreadsheet"}))
}

func TestDetectKind(t *testing.T) {
	t.Parallel()

	reg := grammar.Builtin()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	mp3 := []byte("ID3\x03\x00\x00\x00\x00\x00\x00")
	pdf := []byte("%PDF-1.7\n")

	tests := []struct {
		desc string
		path string
		head []byte
		want Kind
	}{
		{desc: "registered grammar", path: "main.CPP", want: Code},
		{desc: "python", path: "x.pyw", want: Code},
		{desc: "other code", path: "index.html", want: Code},
		{desc: "text", path: "notes.md", want: Text},
		{desc: "image extension", path: "a.JPG", want: Image},
		{desc: "audio extension", path: "a.flac", want: Audio},
		{desc: "video extension", path: "a.mkv", want: Video},
		{desc: "pdf extension", path: "a.pdf", want: PDF},
		{desc: "docx extension", path: "a.docx", want: DOCX},
		{desc: "sniffed image", path: "picture", head: png, want: Image},
		{desc: "sniffed audio", path: "song.bin", head: mp3, want: Audio},
		{desc: "sniffed pdf", path: "paper", head: pdf, want: PDF},
		{desc: "utf-8 text", path: "README", head: []byte("hello, 世界"), want: Text},
		{desc: "truncated rune", path: "README", head: []byte("hi \xe4\xb8"), want: Text},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := DetectKind(reg, tt.path, tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectKind_unknown(t *testing.T) {
	t.Parallel()

	reg := grammar.Builtin()
	for _, head := range [][]byte{nil, {0xc3, 0x28, 0xa0, 0xa1}, {0xff}} {
		_, err := DetectKind(reg, "blob", head)
		assert.ErrorIs(t, err, ErrUnknownKind)
	}
}
