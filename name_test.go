package signpostz

import (
	"errors"
	"strings"
	"testing"
)

func TestNewNameValid(t *testing.T) {
	n, err := NewName("Decode frame")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n.String() != "Decode frame" {
		t.Errorf("Expected 'Decode frame', got %q", n.String())
	}
}

func TestNewNameRejectsEmbeddedNUL(t *testing.T) {
	_, err := NewName("bad\x00name")
	if !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("Expected ErrEmbeddedNUL, got %v", err)
	}
}

func TestMustNamePanicsOnEmbeddedNUL(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustName to panic on embedded NUL")
		}
	}()
	MustName("bad\x00name")
}

func TestNameZeroTerminated(t *testing.T) {
	n := MustName("Compute result")

	c := n.CString()
	if c[len(c)-1] != 0 {
		t.Error("Expected trailing NUL terminator")
	}
	if strings.IndexByte(c[:len(c)-1], 0) >= 0 {
		t.Error("Expected no embedded NUL before the terminator")
	}
	if c[:len(c)-1] != n.String() {
		t.Errorf("Expected CString to be String plus terminator, got %q vs %q", c, n.String())
	}
}

func TestNameInterning(t *testing.T) {
	a := MustName("interned name")
	b := MustName("interned name")

	if a != b {
		t.Error("Expected repeated construction to return the interned value")
	}
}

func TestZeroName(t *testing.T) {
	var n Name

	if !n.IsZero() {
		t.Error("Expected zero Name to report IsZero")
	}
	if n.String() != "" {
		t.Errorf("Expected empty string, got %q", n.String())
	}
	if n.CString() != "\x00" {
		t.Errorf("Expected bare terminator, got %q", n.CString())
	}
}

func TestEmptyNameIsValid(t *testing.T) {
	n, err := NewName("")
	if err != nil {
		t.Fatalf("Expected no error for empty name, got %v", err)
	}
	if n.CString() != "\x00" {
		t.Errorf("Expected bare terminator, got %q", n.CString())
	}
}
