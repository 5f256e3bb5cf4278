package compress

import (
	"fmt"

	"github.com/bipfgo/bipf/codec"
	"github.com/bipfgo/bipf/format"
	"github.com/bipfgo/bipf/value"
)

// EncodeCompressed encodes v to a bipf frame and compresses the whole
// frame with the given algorithm. The compressed buffer does not record
// which algorithm was used: DecodeCompressed must be called with the same
// compressionType.
func EncodeCompressed(v value.Value, compressionType format.CompressionType, opts ...codec.Option) ([]byte, error) {
	raw, err := codec.Encode(v, opts...)
	if err != nil {
		return nil, err
	}

	c, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	compressed, err := c.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress: %s compression failed: %w", compressionType, err)
	}

	return compressed, nil
}

// DecodeCompressed reverses EncodeCompressed: it decompresses buf with
// compressionType, then decodes the resulting bipf frame.
func DecodeCompressed(buf []byte, compressionType format.CompressionType, opts ...codec.Option) (value.Value, error) {
	c, err := GetCodec(compressionType)
	if err != nil {
		return value.Value{}, err
	}

	raw, err := c.Decompress(buf)
	if err != nil {
		return value.Value{}, fmt.Errorf("compress: %s decompression failed: %w", compressionType, err)
	}

	return codec.Decode(raw, opts...)
}
