package extstore

import (
	"io/fs"
	"os"
	"strings"
)

// Mode is an open mode string.
type Mode string

const (
	// ModeRead opens an existing file for reading.
	ModeRead Mode = "r"
	// ModeWrite creates or truncates a file for writing.
	ModeWrite Mode = "w"
)

// canonical folds the long spellings onto the short ones.
func (m Mode) canonical() Mode {
	switch m {
	case "read":
		return ModeRead
	case "write":
		return ModeWrite
	default:
		return m
	}
}

// externalFlag maps m to open flags for the external backend, which only
// knows read and write streams.
func (m Mode) externalFlag() (int, bool) {
	switch m.canonical() {
	case ModeRead:
		return os.O_RDONLY, true
	case ModeWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, true
	default:
		return 0, false
	}
}

// hostFlag parses an fopen-style mode: one of r, w, a or x, an optional "+",
// and at most one of "b" or "t" anywhere in the string. The long spellings
// are not accepted here, as a native open would reject them.
func (m Mode) hostFlag() (int, error) {
	s := string(m)
	if strings.Count(s, "b")+strings.Count(s, "t") > 1 {
		return 0, fs.ErrInvalid
	}
	s = strings.NewReplacer("b", "", "t", "").Replace(s)

	plus := strings.HasSuffix(s, "+")
	s = strings.TrimSuffix(s, "+")
	if len(s) != 1 {
		return 0, fs.ErrInvalid
	}

	var flag int
	switch s {
	case "r":
		flag = 0
	case "w":
		flag = os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_CREATE | os.O_APPEND
	case "x":
		flag = os.O_CREATE | os.O_EXCL
	default:
		return 0, fs.ErrInvalid
	}

	switch {
	case plus:
		flag |= os.O_RDWR
	case s == "r":
		flag |= os.O_RDONLY
	default:
		flag |= os.O_WRONLY
	}
	return flag, nil
}

// writable reports whether flag permits writing.
func writable(flag int) bool {
	return flag&(os.O_WRONLY|os.O_RDWR) != 0
}
