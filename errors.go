package dualstr

import "go.trai.ch/zerr"

var (
	// ErrConsumed is the panic value when a Str is used after IntoBytes,
	// IntoString, IntoCow or Release.
	ErrConsumed = zerr.New("dualstr: use of consumed Str")

	// ErrTooLong is the panic value when a length would overlap the ownership bit.
	ErrTooLong = zerr.New("dualstr: length overlaps ownership bit")
)
