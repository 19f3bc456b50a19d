package strproto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/rawbytedev/dualstr"
)

func TestRoundTripAlwaysOwned(t *testing.T) {
	for _, s := range []dualstr.Str{dualstr.Borrow("baz"), dualstr.Own("baz")} {
		data, err := Marshal(s)
		require.NoError(t, err)

		out, err := Unmarshal(data)
		require.NoError(t, err)
		require.True(t, out.IsOwned())
		require.True(t, out.Equal(s))
		require.NotSame(t, s.Ptr(), out.Ptr())
	}
}

func TestWireCompatible(t *testing.T) {
	data, err := proto.Marshal(wrapperspb.String("i like frogs"))
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, "i like frogs", out.String())

	// the decoder's buffer may be reused freely
	for i := range data {
		data[i] = 0
	}
	require.Equal(t, "i like frogs", out.String())
}

func TestFromNil(t *testing.T) {
	s := FromProto(nil)
	require.True(t, s.IsOwned())
	require.True(t, s.IsEmpty())
}

func TestUnmarshalError(t *testing.T) {
	_, err := Unmarshal([]byte{0x0A, 0x05, 'a'})
	require.Error(t, err)
}
