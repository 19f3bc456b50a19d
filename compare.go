package dualstr

import (
	"bytes"
	"hash/maphash"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and o have the same content. Ownership and
// address are ignored.
func (s Str) Equal(o Str) bool {
	return s.AsString() == o.AsString()
}

// EqualString reports whether s holds exactly t.
func (s Str) EqualString(t string) bool {
	return s.AsString() == t
}

// EqualBytes reports whether s holds exactly b.
func (s Str) EqualBytes(b []byte) bool {
	return s.AsString() == string(b)
}

// Compare compares s and o lexicographically by bytes.
// The result is 0 if s == o, -1 if s < o, and +1 if s > o.
func (s Str) Compare(o Str) int {
	return strings.Compare(s.AsString(), o.AsString())
}

// CompareString compares s with t lexicographically by bytes.
func (s Str) CompareString(t string) int {
	return strings.Compare(s.AsString(), t)
}

// CompareBytes compares s with b lexicographically by bytes.
func (s Str) CompareBytes(b []byte) int {
	return bytes.Compare(s.view(), b)
}

// Less reports whether s sorts before o.
func (s Str) Less(o Str) bool {
	return s.AsString() < o.AsString()
}

// Equal reports whether a and b have the same content.
func Equal(a, b Str) bool { return a.Equal(b) }

// Compare is Str.Compare as a function, for slices.SortFunc and friends.
func Compare(a, b Str) int { return a.Compare(b) }

// Hash returns maphash.String(seed, s.AsString()).
func (s Str) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, s.AsString())
}

// Sum64 returns the xxhash of the content. Unlike Hash it is stable across
// processes.
func (s Str) Sum64() uint64 {
	return xxhash.Sum64String(s.AsString())
}

// Key returns the content as a string usable as a map key. It shares memory
// with s, so a borrowed key is only valid as long as s's source is.
func (s Str) Key() string {
	return s.AsString()
}
