// Package strwire encodes lists of dualstr.Str values into self-checking
// binary frames.
//
// Frame layout (little endian):
//
//	[0:2]   magic "DS"
//	[2]     version
//	[3]     flags
//	[4:8]   total frame length, CRC included
//	[8:n-4] body
//	[n-4:n] CRC32 (IEEE) over bytes [2:n-4]
//
// The body is a varint count followed by a varint length and the raw bytes of
// every string. With FlagCompressed the body is a varint holding the raw body
// length followed by the zstd-compressed raw body.
package strwire

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"go.trai.ch/zerr"
)

const (
	Magic0  byte = 'D'
	Magic1  byte = 'S'
	Version byte = 1

	// FlagCompressed marks a zstd-compressed body.
	FlagCompressed byte = 1 << 0

	headerSize = 8
	crcSize    = 4

	// MaxFrameSize is the largest frame the length field can describe.
	MaxFrameSize = math.MaxUint32

	// DefaultMaxBodySize bounds the decompressed body when
	// Options.MaxBodySize is zero.
	DefaultMaxBodySize = 64 << 20
)

var (
	ErrShortFrame     = zerr.New("strwire: frame too short")
	ErrBadMagic       = zerr.New("strwire: bad magic")
	ErrBadVersion     = zerr.New("strwire: unsupported version")
	ErrLengthMismatch = zerr.New("strwire: length mismatch")
	ErrCRCMismatch    = zerr.New("strwire: crc mismatch")
	ErrTruncated      = zerr.New("strwire: truncated body")
	ErrFrameTooLarge  = zerr.New("strwire: frame too large")
	ErrCompress       = zerr.New("strwire: compression failed")
	ErrDecompress     = zerr.New("strwire: decompression failed")
)

// Options controls how frames are written and read.
type Options struct {
	// Compress writes zstd-compressed bodies. Readers detect compression
	// from the frame flags.
	Compress bool

	// BorrowStrings makes Decode return borrowed values that view the input
	// frame instead of owned copies. The caller must keep the frame alive and
	// unmodified while the values are in use. Compressed frames always decode
	// to owned values.
	BorrowStrings bool

	// MaxBodySize bounds the decompressed body a reader accepts.
	// Zero means DefaultMaxBodySize.
	MaxBodySize uint64
}

func (o Options) maxBodySize() uint64 {
	if o.MaxBodySize == 0 {
		return DefaultMaxBodySize
	}
	return o.MaxBodySize
}

// withField attaches key/value to sentinel while keeping it in the chain
// for errors.Is.
func withField(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}

func writePreamble(buf []byte, flags byte) []byte {
	buf = append(buf, Magic0, Magic1, Version, flags)
	return append(buf, 0, 0, 0, 0) // length placeholder
}

// seal fills in the length field and appends the CRC.
func seal(out []byte) ([]byte, error) {
	total := len(out) + crcSize
	if uint64(total) > MaxFrameSize {
		return nil, withField(ErrFrameTooLarge, "size", total)
	}
	binary.LittleEndian.PutUint32(out[4:], uint32(total))
	crc := crc32.ChecksumIEEE(out[2:])
	return binary.LittleEndian.AppendUint32(out, crc), nil
}

// readPreamble validates magic, version, length and CRC and returns the flags
// and the body.
func readPreamble(data []byte) (byte, []byte, error) {
	if len(data) < headerSize+crcSize {
		return 0, nil, withField(ErrShortFrame, "size", len(data))
	}
	if data[0] != Magic0 || data[1] != Magic1 {
		return 0, nil, ErrBadMagic
	}
	if data[2] != Version {
		return 0, nil, withField(ErrBadVersion, "version", data[2])
	}
	length := binary.LittleEndian.Uint32(data[4:])
	if int64(length) != int64(len(data)) {
		err := withField(ErrLengthMismatch, "declared", length)
		return 0, nil, zerr.With(err, "actual", len(data))
	}
	end := len(data) - crcSize
	want := binary.LittleEndian.Uint32(data[end:])
	if got := crc32.ChecksumIEEE(data[2:end]); got != want {
		return 0, nil, ErrCRCMismatch
	}
	return data[3], data[headerSize:end], nil
}
