package signpostz

import (
	"errors"
	"strings"
	"sync"
)

// Name is a validated marker or channel name with a trailing zero
// terminator, interned for the process lifetime.
//
// Construct names once, in package-level var declarations, rather than on
// every emission:
//
//	var nameDecode = signpostz.MustName("Decode frame")
//
// The zero Name is valid and renders as the empty string.
type Name struct {
	// cstr holds the name plus a trailing NUL byte.
	cstr string
}

// ErrEmbeddedNUL is returned when a candidate name contains a NUL byte.
var ErrEmbeddedNUL = errors.New("signpostz: name contains embedded NUL byte")

// interned caches validated names so repeated construction of the same
// literal is allocation-free after the first call.
var interned sync.Map // string -> Name

// NewName validates s and returns it as an interned, zero-terminated Name.
// Fails if s contains an embedded NUL byte.
func NewName(s string) (Name, error) {
	if cached, ok := interned.Load(s); ok {
		return cached.(Name), nil
	}
	if strings.IndexByte(s, 0) >= 0 {
		return Name{}, ErrEmbeddedNUL
	}
	n := Name{cstr: s + "\x00"}
	actual, _ := interned.LoadOrStore(s, n)
	return actual.(Name), nil
}

// MustName is like NewName but panics on an invalid name. Intended for
// package-level var declarations, where the panic surfaces at program start.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the name without its terminator.
func (n Name) String() string {
	if n.cstr == "" {
		return ""
	}
	return n.cstr[:len(n.cstr)-1]
}

// CString returns the zero-terminated backing string, terminator included.
// Backends that hand names to native facilities pass this through unchanged.
func (n Name) CString() string {
	if n.cstr == "" {
		return "\x00"
	}
	return n.cstr
}

// IsZero reports whether the name was never constructed.
func (n Name) IsZero() bool {
	return n.cstr == ""
}
