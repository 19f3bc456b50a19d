package common

import (
	"encoding/binary"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestVarUintRoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 127, 128, 300, 1 << 32, math.MaxUint64} {
		a := WriteVarUint(nil, x)
		require.Equal(t, binary.AppendUvarint(nil, x), a)
		require.LessOrEqual(t, len(a), MaxVarintLen)

		got, n := ReadVarUint(a)
		require.Equal(t, x, got)
		require.Equal(t, len(a), n)
	}
}

func TestVarUintProperty(t *testing.T) {
	f := func(x uint64) bool {
		buf := WriteVarUint([]byte{0xAA}, x)
		got, n := ReadVarUint(buf[1:])
		return buf[0] == 0xAA && got == x && n == len(buf)-1
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestReadVarUintTruncated(t *testing.T) {
	_, n := ReadVarUint([]byte{0x80, 0x80})
	require.Zero(t, n)

	_, n = ReadVarUint(nil)
	require.Zero(t, n)
}

func TestReadVarUintTooLong(t *testing.T) {
	b := make([]byte, 12)
	for i := range b {
		b[i] = 0x80
	}
	_, n := ReadVarUint(b)
	require.Zero(t, n)
}

func BenchmarkWriteVarUint_Small(b *testing.B) {
	buf := make([]byte, 0, MaxVarintLen)
	for i := 0; i < b.N; i++ {
		buf = WriteVarUint(buf[:0], 127)
	}
}

func BenchmarkWriteVarUint_Large(b *testing.B) {
	buf := make([]byte, 0, MaxVarintLen)
	for i := 0; i < b.N; i++ {
		buf = WriteVarUint(buf[:0], math.MaxUint64)
	}
}
