// Package dualstr provides Str, an immutable string value that is either a
// borrowed view into text owned by someone else or the sole owner of its own
// heap allocation, in two machine words.
//
// A borrowed Str must not be used after the text it views is released or
// modified. Go has no way to check this, so it is the caller's contract.
//
// Copying a Str value copies the view, not the ownership: at most one copy
// may be consumed (IntoBytes, IntoString, IntoCow) or released. Use Clone to
// get an independent value.
package dualstr

import (
	"math/bits"
	"reflect"
	"unsafe"
)

const (
	// tag is the high bit of the length word. Set means owned.
	tag uint = 1 << (bits.UintSize - 1)
	// mask keeps every bit except tag.
	mask = ^tag
	// consumed is stored in the length word once a value was moved out or
	// released. A real length never reaches the tag bit, so it is unambiguous.
	consumed = ^uint(0)
)

// emptyBase is the canonical location behind Default.
var emptyBase byte

// Str is a two-word string that is either borrowed or owned.
//
// The zero value is an empty borrowed Str.
type Str struct {
	_ [0]func() // not comparable, use Equal

	ptr unsafe.Pointer
	n   uint
}

// Source is anything Own accepts.
type Source interface {
	~string | ~[]byte
}

func newStr(p *byte, n int, owned bool) Str {
	u := uint(n)
	if u&tag != 0 {
		panic(ErrTooLong)
	}
	if owned {
		u |= tag
	}
	return Str{ptr: unsafe.Pointer(p), n: u}
}

// Borrow returns a borrowed Str viewing s. Nothing is copied.
func Borrow(s string) Str {
	return newStr(unsafe.StringData(s), len(s), false)
}

// BorrowBytes returns a borrowed Str viewing b. Nothing is copied, so b must
// hold valid UTF-8 and must not be modified while the Str is in use.
func BorrowBytes(b []byte) Str {
	return newStr(unsafe.SliceData(b), len(b), false)
}

// Own returns an owned Str.
//
// A []byte is taken over by the Str and must not be used by the caller
// afterwards. If its capacity equals its length the allocation is reused as
// is, otherwise it is reallocated to fit exactly. A string is copied into a
// fresh allocation.
func Own[S Source](s S) Str {
	switch v := any(s).(type) {
	case string:
		return ownCopy(v)
	case View:
		return ownCopy(string(v))
	case []byte:
		return ownBytes(v)
	case Buffer:
		return ownBytes(v)
	}
	rv := reflect.ValueOf(s)
	if rv.Kind() == reflect.String {
		return ownCopy(rv.String())
	}
	return ownBytes(rv.Bytes())
}

func ownBytes(b []byte) Str {
	if cap(b) != len(b) {
		exact := make([]byte, len(b))
		copy(exact, b)
		b = exact
	}
	return newStr(unsafe.SliceData(b), len(b), true)
}

func ownCopy(s string) Str {
	b := make([]byte, len(s))
	copy(b, s)
	return newStr(unsafe.SliceData(b), len(b), true)
}

// FromCow returns a borrowed Str for a View and an owned Str for a Buffer.
// A Buffer goes through Own and may be reallocated. A nil Cow gives Default.
func FromCow(c Cow) Str {
	switch v := c.(type) {
	case View:
		return Borrow(string(v))
	case Buffer:
		return ownBytes(v)
	}
	return Default()
}

// Default returns an empty borrowed Str.
func Default() Str {
	return Str{ptr: unsafe.Pointer(&emptyBase)}
}

func (s Str) live() {
	if s.n == consumed && s.ptr == nil {
		panic(ErrConsumed)
	}
}

// IsOwned reports whether s owns its allocation.
// Exactly one of IsOwned and IsBorrowed is true.
func (s Str) IsOwned() bool {
	s.live()
	return s.n&tag != 0
}

// IsBorrowed reports whether s views text owned elsewhere.
func (s Str) IsBorrowed() bool {
	s.live()
	return s.n&tag == 0
}

// Len returns the length of s in bytes.
func (s Str) Len() int {
	s.live()
	return int(s.n & mask)
}

// IsEmpty reports whether s has length 0.
func (s Str) IsEmpty() bool {
	return s.Len() == 0
}

// Ptr returns the address of the first byte of s. It must never be written
// through, even when s is owned.
func (s Str) Ptr() *byte {
	s.live()
	return (*byte)(s.ptr)
}

// AsString returns the content of s without copying. The text is not
// validated again.
func (s Str) AsString() string {
	n := s.Len()
	if n == 0 {
		return ""
	}
	return unsafe.String((*byte)(s.ptr), n)
}
