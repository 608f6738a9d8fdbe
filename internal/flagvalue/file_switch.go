package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that may be passed as "-x" or "-x=FILE".
// It picks where optional output, such as a debug log, goes.
type FileSwitch string

// _fallbackValue records "-x" passed without a file.
const _fallbackValue = "-"

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file name, "-" if the flag was passed without one,
// or "" if it wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = _fallbackValue
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination picked by this flag.
// close must be called when the writer is no longer needed.
//
//   - flag not passed: [io.Discard]
//   - flag passed without a value: fallback
//   - flag passed with a file name: the file, created or truncated
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case _fallbackValue:
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
