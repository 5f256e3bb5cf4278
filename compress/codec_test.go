package compress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/compress"
	"github.com/bipfgo/bipf/format"
)

func allCodecs(t *testing.T) map[format.CompressionType]compress.Codec {
	t.Helper()

	return map[format.CompressionType]compress.Codec{
		format.CompressionNone: compress.NewNoOpCodec(),
		format.CompressionZstd: compress.NewZstdCodec(),
		format.CompressionS2:   compress.NewS2Codec(),
		format.CompressionLZ4:  compress.NewLZ4Codec(),
	}
}

func TestRoundTripAllCodecs(t *testing.T) {
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 64)

	for typ, c := range allCodecs(t) {
		t.Run(typ.String(), func(t *testing.T) {
			compressed, err := c.Compress(payload)
			require.NoError(t, err)

			decompressed, err := c.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestRoundTripEmptyInput(t *testing.T) {
	for typ, c := range allCodecs(t) {
		t.Run(typ.String(), func(t *testing.T) {
			compressed, err := c.Compress(nil)
			require.NoError(t, err)

			decompressed, err := c.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCreateCodecUnknownType(t *testing.T) {
	_, err := compress.CreateCodec(format.CompressionType(99), "test")
	require.Error(t, err)
}

func TestGetCodecReturnsSharedInstance(t *testing.T) {
	c1, err := compress.GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	c2, err := compress.GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}
