package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/codec"
	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/value"
)

func TestDecodeRoundTripScenarios(t *testing.T) {
	cases := []value.Value{
		value.Null(),
		value.Bool(true),
		value.Bool(false),
		value.Int(0),
		value.Int(-1),
		value.Int(42),
		value.String("hello"),
		value.String(""),
		value.Bytes([]byte{0xde, 0xad, 0xbe, 0xef}),
		value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)}),
		value.Object([]value.Entry{
			{Key: []byte("foo"), Value: value.Bool(true)},
			{Key: []byte("bar"), Value: value.String("baz")},
		}),
	}

	for _, v := range cases {
		b, err := codec.Encode(v)
		require.NoError(t, err)

		decoded, err := codec.Decode(b)
		require.NoError(t, err)
		require.True(t, value.Equal(v, decoded))
	}
}

func TestDecodeDuplicateKeysFirstWins(t *testing.T) {
	v := value.Object([]value.Entry{
		{Key: []byte("a"), Value: value.Int(1)},
		{Key: []byte("a"), Value: value.Int(2)},
	})

	b, err := codec.Encode(v)
	require.NoError(t, err)

	decoded, err := codec.Decode(b)
	require.NoError(t, err)

	got, ok := decoded.Get("a")
	require.True(t, ok)
	i, ok := got.AsInt()
	require.True(t, ok)
	require.Equal(t, int64(1), i)
}

func TestDecodeTruncatedAtEveryOffset(t *testing.T) {
	v := value.Object([]value.Entry{
		{Key: []byte("name"), Value: value.String("bipf")},
		{Key: []byte("nested"), Value: value.Array([]value.Value{value.Int(1), value.Null()})},
	})

	b, err := codec.Encode(v)
	require.NoError(t, err)

	for n := 0; n < len(b); n++ {
		_, err := codec.Decode(b[:n])
		require.Error(t, err, "truncating to %d bytes must fail", n)
	}

	_, err = codec.Decode(b)
	require.NoError(t, err)
}

func TestDecodeInvalidBoolNull(t *testing.T) {
	b := []byte{0x0E, 0x02}
	_, err := codec.Decode(b)
	require.ErrorIs(t, err, errs.ErrInvalidBoolNull)
}

func TestDecodeIntSizeMismatch(t *testing.T) {
	b := []byte{0x1A, 0x00, 0x00, 0x00}
	_, err := codec.Decode(b)
	require.ErrorIs(t, err, errs.ErrIntSizeMismatch)
}

func TestDecodeNonStringKey(t *testing.T) {
	// OBJECT frame whose "key" is an INT frame instead of a STRING.
	intFrame := []byte{0x22, 0x00, 0x00, 0x00, 0x00}
	boolFrame := []byte{0x0E, 0x01}
	body := append(append([]byte{}, intFrame...), boolFrame...)
	objTag := byte(len(body)<<3) | 5
	b := append([]byte{objTag}, body...)

	_, err := codec.Decode(b)
	require.ErrorIs(t, err, errs.ErrNonStringKey)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	b := []byte{0x10, 0xff, 0xfe} // STRING frame of length 2 with invalid UTF-8
	_, err := codec.Decode(b)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestDecodeDepthExceeded(t *testing.T) {
	v := value.Array([]value.Value{value.Array([]value.Value{value.Null()})})
	b, err := codec.Encode(v)
	require.NoError(t, err)

	_, err = codec.Decode(b, codec.WithMaxDepth(1))
	require.ErrorIs(t, err, errs.ErrDepthExceeded)
}

func TestDecodeBodyPastBufferEndIsUnexpectedEnd(t *testing.T) {
	// ARRAY claims a body of 10 bytes but only 2 remain.
	b := []byte{(10 << 3) | 4, 0x06, 0x06}
	_, err := codec.Decode(b)
	require.ErrorIs(t, err, errs.ErrUnexpectedEnd)
}

func TestDecodeChildOverrunsDeclaredParentBound(t *testing.T) {
	intFrame := []byte{0x22, 0x00, 0x00, 0x00, 0x00} // 5-byte INT frame
	arrayTag := byte((2 << 3) | 4)                   // declares a body of only 2 bytes
	b := append([]byte{arrayTag}, intFrame...)

	_, err := codec.Decode(b)
	require.ErrorIs(t, err, errs.ErrFrameOverrun)
}

func TestDecodeAtOffset(t *testing.T) {
	v1, err := codec.Encode(value.Int(7))
	require.NoError(t, err)
	v2, err := codec.Encode(value.String("tail"))
	require.NoError(t, err)

	buf := append(append([]byte{}, v1...), v2...)

	decoded, err := codec.DecodeAt(buf, len(v1))
	require.NoError(t, err)
	s, ok := decoded.AsString()
	require.True(t, ok)
	require.Equal(t, "tail", s)
}
