package strwire

import (
	"errors"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/dualstr"
	"github.com/rawbytedev/dualstr/internal/common"
)

// Encoder writes frames. It reuses internal buffers between calls and is not
// safe for concurrent use.
type Encoder struct {
	Opts Options

	body []byte
	zenc *zstd.Encoder
}

// NewEncoder returns an Encoder using opts.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{Opts: opts}
}

// Encode serializes strs into a new frame. The values are only read.
func (e *Encoder) Encode(strs []dualstr.Str) ([]byte, error) {
	e.body = appendBody(e.body[:0], strs)

	var flags byte
	if e.Opts.Compress {
		flags |= FlagCompressed
	}
	out := writePreamble(make([]byte, 0, headerSize+len(e.body)+crcSize), flags)
	if !e.Opts.Compress {
		out = append(out, e.body...)
		return seal(out)
	}

	if e.zenc == nil {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, errors.Join(ErrCompress, err)
		}
		e.zenc = enc
	}
	out = common.WriteVarUint(out, uint64(len(e.body)))
	out = e.zenc.EncodeAll(e.body, out)
	return seal(out)
}

// Close releases the compressor, if one was created.
func (e *Encoder) Close() error {
	if e.zenc == nil {
		return nil
	}
	err := e.zenc.Close()
	e.zenc = nil
	return err
}

func appendBody(buf []byte, strs []dualstr.Str) []byte {
	buf = common.WriteVarUint(buf, uint64(len(strs)))
	for _, s := range strs {
		buf = common.WriteVarUint(buf, uint64(s.Len()))
		buf = s.AppendTo(buf)
	}
	return buf
}
