package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    []byte
		charset string
		want    string
	}{
		{desc: "default", give: []byte("héllo"), want: "héllo"},
		{desc: "utf-8 bom", give: []byte("\xef\xbb\xbfhi"), charset: "utf-8", want: "hi"},
		{desc: "gbk", give: []byte{0xc4, 0xe3, 0xba, 0xc3}, charset: "GBK", want: "你好"},
		{desc: "gb2312", give: []byte{0xc4, 0xe3, 0xba, 0xc3}, charset: "gb2312", want: "你好"},
		{desc: "latin-1", give: []byte{'c', 'a', 'f', 0xe9}, charset: "ISO-8859-1", want: "café"},
		{desc: "utf-16 big endian", give: []byte{0x00, 'h', 0x00, 'i'}, charset: "UTF-16", want: "hi"},
		{desc: "utf-16 bom", give: []byte{0xff, 0xfe, 'h', 0x00, 'i', 0x00}, charset: "UTF-16", want: "hi"},
		{desc: "utf-32", give: []byte{0, 0, 0, 'A', 0, 0, 0x4f, 0x60}, charset: "UTF-32", want: "A你"},
		{desc: "iana name", give: []byte{0x93, 'q', 0x94}, charset: "windows-1252", want: "“q”"},
		{desc: "invalid utf-8", give: []byte{'a', 0xff, 'b'}, want: "a�b"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.give, tt.charset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_unknownCharset(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("x"), "klingon")
	require.ErrorIs(t, err, ErrUnknownCharset)
	assert.ErrorContains(t, err, `"klingon"`)
}

func TestCharsets(t *testing.T) {
	t.Parallel()

	got := Charsets()
	assert.Contains(t, got, DefaultCharset)
	assert.Contains(t, got, "GBK")

	for _, name := range got {
		_, err := lookupCharset(name)
		assert.NoError(t, err, "charset %v", name)
	}
}
