// Package bipf implements BIPF, a binary in-place format for encoding
// structured values (null, bool, string, bytes, int, float, array, object)
// into a compact, self-delimiting byte frame.
//
// # Core features
//
//   - Tag-framed values: every frame starts with a varint (length<<3)|type
//     header, so a frame's extent is known without decoding its body.
//   - Single-pass encoding: a sizing pass computes every frame's length
//     before any byte is written, so encode never reallocates.
//   - In-place navigation: SeekKey walks an OBJECT frame's key/value pairs
//     looking for one key, without decoding any value - useful for reading
//     one field out of a large encoded document.
//   - A pluggable Adapter boundary (see the adapter package) that converts
//     between a host application's own value type and the generic
//     value.Value tree the codec encodes and decodes.
//   - Optional whole-buffer compression (see the compress package) layered
//     outside the frame format itself.
//
// # Basic usage
//
//	v := value.Object([]value.Entry{
//		{Key: []byte("name"), Value: value.String("bipf")},
//		{Key: []byte("version"), Value: value.Int(1)},
//	})
//
//	buf, err := bipf.Encode(v)
//	...
//	decoded, err := bipf.Decode(buf)
//	...
//	off, ok := bipf.SeekKey(buf, 0, []byte("version"))
//
// # Package structure
//
// This package is a thin convenience wrapper around the codec package,
// which holds the actual value-model, encoder, decoder, and seek_key
// implementation. Use the codec package directly for EncodeInto,
// EncodeWithPool, BuildKeyIndex and SeekKeyIndexed, which this package
// does not wrap.
package bipf

import (
	"github.com/bipfgo/bipf/codec"
	"github.com/bipfgo/bipf/value"
)

// Option configures an Encode, Decode, or EncodingLength call. See
// codec.WithMaxDepth.
type Option = codec.Option

// WithMaxDepth overrides the maximum recursion depth for nested
// arrays/objects. The default is codec.DefaultMaxDepth.
func WithMaxDepth(depth int) Option { return codec.WithMaxDepth(depth) }

// Encode serializes v into a freshly-allocated, exactly-sized byte slice.
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// EncodingLength returns the exact number of bytes Encode would produce
// for v, without allocating the output buffer.
func EncodingLength(v value.Value, opts ...Option) (int, error) {
	return codec.EncodingLength(v, opts...)
}

// Decode parses a single top-level frame starting at offset 0.
func Decode(buf []byte, opts ...Option) (value.Value, error) {
	return codec.Decode(buf, opts...)
}

// DecodeAt parses a single frame starting at the given offset.
func DecodeAt(buf []byte, offset int, opts ...Option) (value.Value, error) {
	return codec.DecodeAt(buf, offset, opts...)
}

// SeekKey scans a single OBJECT frame starting at start for key, without
// decoding any value, and returns the offset of the matching value's frame.
// It returns (0, false) if the key is absent or the buffer is malformed in
// any way - SeekKey never returns an error.
func SeekKey(buf []byte, start int, key []byte) (int, bool) {
	return codec.SeekKey(buf, start, key)
}
