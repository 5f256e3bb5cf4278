package compress

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize bounds how far Decompress will grow its guessed
// output buffer before giving up.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// lz4Codec compresses with LZ4 block format, favoring compression and
// decompression speed over ratio. Unlike a streaming ingestion path that
// compresses many small values back to back, whole-buffer compression here
// runs once per Encode/Decode call, so a fresh lz4.Compressor per call costs
// nothing worth pooling.
type lz4Codec struct{}

var _ Codec = lz4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() Codec { return emptyPassthrough{lz4Codec{}} }

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var lc lz4.Compressor

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress grows its output buffer geometrically since the LZ4 block
// format does not record the decompressed size: it starts at 4x the
// compressed size and doubles up to lz4MaxDecompressedSize.
func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	return growingDecompress(len(data)*4, lz4MaxDecompressedSize,
		func(dst []byte) (int, error) { return lz4.UncompressBlock(data, dst) },
		func(err error) bool { return errors.Is(err, lz4.ErrInvalidSourceShortBuffer) },
	)
}
