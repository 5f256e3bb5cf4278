package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/codec"
	"github.com/bipfgo/bipf/value"
)

func TestEncodeNull(t *testing.T) {
	b, err := codec.Encode(value.Null())
	require.NoError(t, err)
	require.Equal(t, []byte{0x06}, b)
}

func TestEncodeBoolTrue(t *testing.T) {
	b, err := codec.Encode(value.Bool(true))
	require.NoError(t, err)
	require.Equal(t, []byte{0x0E, 0x01}, b)
}

func TestEncodeBoolFalse(t *testing.T) {
	b, err := codec.Encode(value.Bool(false))
	require.NoError(t, err)
	require.Equal(t, []byte{0x0E, 0x00}, b)
}

func TestEncodeZero(t *testing.T) {
	b, err := codec.Encode(value.Int(0))
	require.NoError(t, err)
	require.Equal(t, []byte{0x22, 0x00, 0x00, 0x00, 0x00}, b)
}

func TestEncodeHello(t *testing.T) {
	b, err := codec.Encode(value.String("hello"))
	require.NoError(t, err)
	require.Equal(t, append([]byte{0x28}, "hello"...), b)
}

func TestEncodeFooTrueObject(t *testing.T) {
	v := value.Object([]value.Entry{
		{Key: []byte("foo"), Value: value.Bool(true)},
	})

	b, err := codec.Encode(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x35, 0x18, 'f', 'o', 'o', 0x0E, 0x01}, b)
}

func TestEncodingLengthMatchesEncode(t *testing.T) {
	v := value.Array([]value.Value{value.Int(1), value.String("x"), value.Null()})

	n, err := codec.EncodingLength(v)
	require.NoError(t, err)

	b, err := codec.Encode(v)
	require.NoError(t, err)
	require.Len(t, b, n)
}

func TestEncodeIntBoundary(t *testing.T) {
	// 2^32 - 1 still fits the INT rule (|v| < 2^32).
	b, err := codec.Encode(value.Int(1<<32 - 1))
	require.NoError(t, err)
	wireType, length := tagOf(t, b)
	require.Equal(t, byte(2), wireType)
	require.Equal(t, 4, length)

	// 2^32 must fall through to DOUBLE.
	b, err = codec.Encode(value.Int(1 << 32))
	require.NoError(t, err)
	wireType, length = tagOf(t, b)
	require.Equal(t, byte(3), wireType)
	require.Equal(t, 8, length)
}

func TestEncodeIntegralFloatUsesIntWire(t *testing.T) {
	b, err := codec.Encode(value.Float(5.0))
	require.NoError(t, err)
	wireType, length := tagOf(t, b)
	require.Equal(t, byte(2), wireType)
	require.Equal(t, 4, length)

	decoded, err := codec.Decode(b)
	require.NoError(t, err)
	require.Equal(t, value.KindInt, decoded.Kind())
	i, ok := decoded.AsInt()
	require.True(t, ok)
	require.Equal(t, int64(5), i)
}

func TestEncodeFractionalFloatUsesDoubleWire(t *testing.T) {
	b, err := codec.Encode(value.Float(5.5))
	require.NoError(t, err)
	wireType, length := tagOf(t, b)
	require.Equal(t, byte(3), wireType)
	require.Equal(t, 8, length)
}

func TestEncodeNegativeInt(t *testing.T) {
	b, err := codec.Encode(value.Int(-1))
	require.NoError(t, err)
	decoded, err := codec.Decode(b)
	require.NoError(t, err)
	i, ok := decoded.AsInt()
	require.True(t, ok)
	require.Equal(t, int64(-1), i)
}

func TestEncodeDepthExceeded(t *testing.T) {
	v := value.Array([]value.Value{value.Array([]value.Value{value.Null()})})
	_, err := codec.Encode(v, codec.WithMaxDepth(1))
	require.Error(t, err)
}

func TestEncodeEmptyContainers(t *testing.T) {
	b, err := codec.Encode(value.Array(nil))
	require.NoError(t, err)
	require.Equal(t, []byte{0x04}, b)

	b, err = codec.Encode(value.Object(nil))
	require.NoError(t, err)
	require.Equal(t, []byte{0x05}, b)

	b, err = codec.Encode(value.String(""))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, b)
}

func tagOf(t *testing.T, buf []byte) (byte, int) {
	t.Helper()
	require.NotEmpty(t, buf)
	tagByte := buf[0]
	wireType := tagByte & 0x07
	length := int(tagByte >> 3)

	return wireType, length
}
