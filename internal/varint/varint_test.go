package varint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/internal/varint"
)

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 14, 1<<21 - 1, 1 << 35, 1<<63 + 7}
	for _, v := range values {
		buf := varint.Append(nil, v)
		require.Len(t, buf, varint.Size(v))

		got, n, err := varint.Decode(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), n)
	}
}

func TestDecodeOffset(t *testing.T) {
	buf := append([]byte{0xFF, 0xEE}, varint.Append(nil, 300)...)
	got, n, err := varint.Decode(buf, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
	require.Equal(t, 2, n)
}

func TestDecodeUnexpectedEnd(t *testing.T) {
	_, _, err := varint.Decode([]byte{0x80, 0x80}, 0)
	require.ErrorIs(t, err, errs.ErrUnexpectedEnd)
}

func TestDecodeTooLong(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	_, _, err := varint.Decode(buf, 0)
	require.ErrorIs(t, err, errs.ErrInvalidVarint)
}

func TestPutMatchesAppend(t *testing.T) {
	for _, v := range []uint64{0, 42, 1 << 20, 1 << 40} {
		want := varint.Append(nil, v)
		got := make([]byte, varint.Size(v))
		n := varint.Put(got, v)
		require.Equal(t, len(want), n)
		require.Equal(t, want, got)
	}
}
