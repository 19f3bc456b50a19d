package strwire

import (
	"errors"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/zerr"

	"github.com/rawbytedev/dualstr"
	"github.com/rawbytedev/dualstr/internal/common"
)

// Decoder reads frames. It is not safe for concurrent use.
type Decoder struct {
	Opts Options

	zdec *zstd.Decoder
}

// NewDecoder returns a Decoder using opts.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{Opts: opts}
}

// Decode parses a frame produced by Encoder.Encode.
//
// Owned results share one exact-size allocation, carved so that no value
// can grow into its neighbour.
func (d *Decoder) Decode(data []byte) ([]dualstr.Str, error) {
	flags, body, err := readPreamble(data)
	if err != nil {
		return nil, err
	}

	borrow := d.Opts.BorrowStrings
	if flags&FlagCompressed != 0 {
		if body, err = d.decompress(body); err != nil {
			return nil, err
		}
		// the decompressed buffer belongs to us alone
		return parseBody(body, false)
	}
	if !borrow {
		// one copy for the whole list instead of one per value
		own := make([]byte, len(body))
		copy(own, body)
		body = own
	}
	return parseBody(body, borrow)
}

func (d *Decoder) decompress(body []byte) ([]byte, error) {
	rawLen, n := common.ReadVarUint(body)
	if n == 0 {
		return nil, withField(ErrTruncated, "field", "raw length")
	}
	limit := d.Opts.maxBodySize()
	if rawLen > limit {
		err := withField(ErrFrameTooLarge, "size", rawLen)
		return nil, zerr.With(err, "limit", limit)
	}
	if d.zdec == nil {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecodeAllCapLimit(true),
			zstd.WithDecoderMaxMemory(limit),
		)
		if err != nil {
			return nil, errors.Join(ErrDecompress, err)
		}
		d.zdec = dec
	}
	// the cap limit stops decoding once the declared length is exceeded
	raw, err := d.zdec.DecodeAll(body[n:], make([]byte, 0, rawLen))
	if err != nil {
		return nil, zerr.With(errors.Join(ErrDecompress, err), "declared", rawLen)
	}
	if uint64(len(raw)) != rawLen {
		err := withField(ErrLengthMismatch, "declared", rawLen)
		return nil, zerr.With(err, "actual", len(raw))
	}
	return raw, nil
}

// Close releases the decompressor, if one was created.
func (d *Decoder) Close() {
	if d.zdec != nil {
		d.zdec.Close()
		d.zdec = nil
	}
}

func parseBody(body []byte, borrow bool) ([]dualstr.Str, error) {
	count, n := common.ReadVarUint(body)
	if n == 0 {
		return nil, withField(ErrTruncated, "field", "count")
	}
	pos := n
	// every value needs at least one length byte
	if count > uint64(len(body)-pos) {
		return nil, withField(ErrTruncated, "count", count)
	}

	out := make([]dualstr.Str, 0, count)
	for i := uint64(0); i < count; i++ {
		l, n := common.ReadVarUint(body[pos:])
		if n == 0 {
			return nil, withField(ErrTruncated, "index", i)
		}
		pos += n
		if l > uint64(len(body)-pos) {
			return nil, withField(ErrTruncated, "index", i)
		}
		end := pos + int(l)
		v := body[pos:end:end]
		if borrow {
			out = append(out, dualstr.BorrowBytes(v))
		} else {
			out = append(out, dualstr.Own(v))
		}
		pos = end
	}
	if pos != len(body) {
		err := withField(ErrLengthMismatch, "parsed", pos)
		return nil, zerr.With(err, "body", len(body))
	}
	return out, nil
}
