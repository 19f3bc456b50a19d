package dualstr

import (
	"strings"
	"unsafe"
)

// Cow is either a View (borrowed) or a Buffer (owned).
type Cow interface {
	IsOwned() bool
	String() string

	cow()
}

// View is borrowed text.
type View string

// Buffer is an owned, exact-capacity byte buffer holding UTF-8 text.
type Buffer []byte

func (View) cow()   {}
func (Buffer) cow() {}

func (View) IsOwned() bool   { return false }
func (Buffer) IsOwned() bool { return true }

func (v View) String() string   { return string(v) }
func (b Buffer) String() string { return string(b) }

// IntoBytes consumes s and returns its content. An owned Str hands over its
// allocation, so the result starts at s.Ptr(). A borrowed Str is copied.
func (s *Str) IntoBytes() []byte {
	if s.IsOwned() {
		b := s.view()
		s.consume()
		return b
	}
	b := make([]byte, s.Len())
	copy(b, s.AsString())
	s.consume()
	return b
}

// IntoString consumes s and returns its content. An owned Str's allocation
// becomes the string's backing array. A borrowed Str is copied.
func (s *Str) IntoString() string {
	if s.IsOwned() {
		b := s.view()
		s.consume()
		if len(b) == 0 {
			return ""
		}
		return unsafe.String(unsafe.SliceData(b), len(b))
	}
	out := strings.Clone(s.AsString())
	s.consume()
	return out
}

// IntoCow consumes s. An owned Str becomes a Buffer over the same
// allocation, a borrowed one a View over the same text.
func (s *Str) IntoCow() Cow {
	if s.IsOwned() {
		b := s.view()
		s.consume()
		return Buffer(b)
	}
	v := View(s.AsString())
	s.consume()
	return v
}

// Clone returns a Str with the same content and ownership. A borrowed clone
// views the same text. An owned clone gets its own allocation.
func (s Str) Clone() Str {
	if s.IsBorrowed() {
		return Str{ptr: s.ptr, n: s.n}
	}
	return ownCopy(s.AsString())
}

// Release drops s. For an owned Str this gives up the allocation. s is
// consumed afterwards and further calls are no-ops.
func (s *Str) Release() {
	s.consume()
}
