package preview

import (
	"errors"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrUnknownCharset indicates that a character encoding isn't supported.
var ErrUnknownCharset = errors.New("unknown charset")

// DefaultCharset is used when no charset is requested.
const DefaultCharset = "UTF-8"

// _charsets are the encodings offered for text attachments.
// GB2312 text is a subset of GBK, so it's decoded as GBK.
// UTF-16 and UTF-32 are big-endian unless a BOM says otherwise.
var _charsets = []struct {
	name string
	enc  encoding.Encoding
}{
	{"UTF-8", unicode.UTF8BOM},
	{"GBK", simplifiedchinese.GBK},
	{"GB2312", simplifiedchinese.GBK},
	{"ISO-8859-1", charmap.ISO8859_1},
	{"UTF-16", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
	{"UTF-32", utf32.UTF32(utf32.BigEndian, utf32.UseBOM)},
}

// Charsets lists the names of the commonly used charsets.
// Other IANA-registered names are also accepted by [Decode].
func Charsets() []string {
	names := make([]string, len(_charsets))
	for i, cs := range _charsets {
		names[i] = cs.name
	}
	return names
}

func lookupCharset(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultCharset
	}
	for _, cs := range _charsets {
		if strings.EqualFold(cs.name, name) {
			return cs.enc, nil
		}
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, errtrace.Errorf("%w %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// Decode decodes b from the named charset into a string.
// Byte sequences that are invalid in the charset
// are replaced with U+FFFD.
func Decode(b []byte, charset string) (string, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errtrace.Errorf("decode %v: %w", charset, err)
	}
	return string(out), nil
}
