// Package compress layers whole-buffer compression outside the bipf frame
// format. A compressed buffer is not self-describing: callers must record
// which format.CompressionType was used and supply it again on decode.
package compress

import (
	"fmt"

	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/format"
)

// Compressor compresses an encoded bipf buffer.
type Compressor interface {
	// Compress returns data compressed. The input slice is never
	// modified. The compressing codecs return a new slice; NoOpCodec
	// returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transformation.
type Decompressor interface {
	// Decompress returns the original bytes. The input slice is never
	// modified. The compressing codecs return a new slice; NoOpCodec
	// returns data itself.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// factories builds every built-in Codec, keyed by the compression type it
// implements. All of them are stateless: whole-buffer compression runs
// once per Encode/Decode call rather than in a hot per-element ingestion
// loop, so there is no warmed-up resource worth pooling here, and
// CreateCodec and GetCodec below can share one table instead of keeping a
// pooled-instance map separate from a fresh-instance switch.
var factories = map[format.CompressionType]func() Codec{
	format.CompressionNone: func() Codec { return NewNoOpCodec() },
	format.CompressionZstd: func() Codec { return NewZstdCodec() },
	format.CompressionS2:   func() Codec { return NewS2Codec() },
	format.CompressionLZ4:  func() Codec { return NewLZ4Codec() },
}

// CreateCodec builds a fresh Codec for the given compression type.
// target names the caller's use (e.g. "encode options") for error context.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	factory, ok := factories[compressionType]
	if !ok {
		return nil, fmt.Errorf("%w: invalid %s compression %s", errs.ErrInvalidCompressionType, target, compressionType)
	}

	return factory(), nil
}

// shared caches one instance per compression type for GetCodec. Safe to
// share across goroutines because every built-in Codec is stateless.
var shared = buildShared()

func buildShared() map[format.CompressionType]Codec {
	m := make(map[format.CompressionType]Codec, len(factories))
	for t, factory := range factories {
		m[t] = factory()
	}

	return m
}

// GetCodec retrieves a shared, stateless Codec for the given compression
// type. All of the built-in codecs are safe for concurrent use, so callers
// needing only the default configuration can skip CreateCodec entirely.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if c, ok := shared[compressionType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", errs.ErrInvalidCompressionType, compressionType)
}
