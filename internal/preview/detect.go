package preview

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/h2non/filetype"
	"go.abhg.dev/attview/internal/grammar"
)

// ErrUnknownKind indicates that the kind of a file could not be determined.
var ErrUnknownKind = errors.New("unknown attachment kind")

// _extKinds maps lowercase extensions to attachment kinds.
// Extensions with a registered grammar are always Code.
var _extKinds = map[string]Kind{
	".txt": Text, ".md": Text, ".log": Text, ".csv": Text,
	".json": Text, ".xml": Text, ".yaml": Text, ".yml": Text,

	".js": Code, ".ts": Code, ".html": Code, ".css": Code,
	".go": Code, ".rs": Code, ".sh": Code, ".sql": Code,

	".png": Image, ".jpg": Image, ".jpeg": Image, ".gif": Image,
	".bmp": Image, ".webp": Image, ".tif": Image, ".tiff": Image,

	".mp3": Audio, ".wav": Audio, ".flac": Audio, ".ogg": Audio,
	".m4a": Audio, ".aac": Audio,

	".mp4": Video, ".mkv": Video, ".webm": Video, ".avi": Video,
	".mov": Video, ".flv": Video,

	".pdf":  PDF,
	".docx": DOCX,
}

const _docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DetectKind determines the kind of a file
// from its name and the first bytes of its contents.
//
// The extension is consulted first.
// Failing that, the contents are sniffed for known binary formats,
// and finally treated as text if they are valid UTF-8.
func DetectKind(reg *grammar.Registry, path string, head []byte) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" && reg.Lookup(ext) != grammar.Default {
		return Code, nil
	}
	if k, ok := _extKinds[ext]; ok {
		return k, nil
	}

	if t, err := filetype.Match(head); err == nil && t != filetype.Unknown {
		switch {
		case t.MIME.Type == "image":
			return Image, nil
		case t.MIME.Type == "audio":
			return Audio, nil
		case t.MIME.Type == "video":
			return Video, nil
		case t.MIME.Value == "application/pdf":
			return PDF, nil
		case t.MIME.Value == _docxMIME:
			return DOCX, nil
		}
	}

	if len(head) > 0 && validUTF8Prefix(head) {
		return Text, nil
	}

	return Unknown, errtrace.Wrap(ErrUnknownKind)
}

// validUTF8Prefix reports whether b is valid UTF-8,
// tolerating a rune cut off at the end.
func validUTF8Prefix(b []byte) bool {
	for trim := 0; trim < utf8.UTFMax && trim < len(b); trim++ {
		if utf8.Valid(b[:len(b)-trim]) {
			return true
		}
	}
	return false
}
