package preview

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Kind is the kind of an attachment.
// It decides how the attachment is previewed.
//
// Numeric values match the codes attachments are stored with.
type Kind int

// Supported attachment kinds.
const (
	Unknown Kind = 0
	Text    Kind = 1
	Image   Kind = 2
	Video   Kind = 3
	Audio   Kind = 4
	Code    Kind = 5
	PDF     Kind = 6
	DOCX    Kind = 7
)

var _kindNames = map[Kind]string{
	Unknown: "unknown",
	Text:    "text",
	Image:   "image",
	Video:   "video",
	Audio:   "audio",
	Code:    "code",
	PDF:     "pdf",
	DOCX:    "docx",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := _kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Highlighted reports whether attachments of this kind
// go through the syntax highlighter.
func (k Kind) Highlighted() bool {
	return k == Code
}

// ParseKind parses a kind from its name (case-insensitive)
// or its numeric code.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range _kindNames {
		if k != Unknown && name == s {
			return k, nil
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k != Unknown {
			if _, ok := _kindNames[k]; ok {
				return k, nil
			}
		}
	}

	names := make([]string, 0, len(_kindNames)-1)
	for k, name := range _kindNames {
		if k != Unknown {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return Unknown, errtrace.Errorf("unknown kind %q: valid values are %q", s, names)
}

var _ flag.Getter = (*Kind)(nil)

// Get returns the kind.
// This is to comply with the [flag.Getter] interface.
func (k *Kind) Get() any { return *k }

// Set receives a command line value.
func (k *Kind) Set(s string) error {
	v, err := ParseKind(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*k = v
	return nil
}
