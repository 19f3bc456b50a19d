package dualstr

import (
	"fmt"
	"io"
	"strconv"
)

// String returns the content of s. It implements fmt.Stringer.
func (s Str) String() string {
	return s.AsString()
}

// GoString returns the content quoted, the same for borrowed and owned values.
func (s Str) GoString() string {
	return strconv.Quote(s.AsString())
}

// Format implements fmt.Formatter. Every verb formats the content as a
// string would.
func (s Str) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.AsString())
}

// Addr returns the address of the first byte in %p form. It shows which
// allocation s uses and plays no part in equality.
func (s Str) Addr() string {
	return fmt.Sprintf("%p", s.Ptr())
}

// AppendTo appends the content of s to dst.
func (s Str) AppendTo(dst []byte) []byte {
	return append(dst, s.AsString()...)
}

// WriteTo writes the content of s to w.
func (s Str) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.view())
	return int64(n), err
}
