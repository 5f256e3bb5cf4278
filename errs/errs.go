// Package errs defines the sentinel errors returned by the bipf codec.
//
// All errors the codec can return wrap one of these sentinels, so callers
// can test for a specific condition with errors.Is regardless of the
// contextual message attached at the call site.
package errs

import "errors"

var (
	// ErrUnexpectedEnd is returned when a buffer ends before a frame or
	// varint that was declared complete by its own length prefix.
	ErrUnexpectedEnd = errors.New("bipf: unexpected end of buffer")

	// ErrInvalidVarint is returned when a varint is longer than 10 bytes
	// or otherwise cannot be decoded from the available bytes.
	ErrInvalidVarint = errors.New("bipf: invalid varint")

	// ErrInvalidType is returned for the reserved type code 7, or for a
	// BUFFER frame decoded into a value tree with no bytes variant.
	ErrInvalidType = errors.New("bipf: invalid wire type")

	// ErrInvalidBoolNull is returned when a BOOLNULL frame's body length
	// is greater than 1, or its single body byte is not 0 or 1.
	ErrInvalidBoolNull = errors.New("bipf: invalid boolnull frame")

	// ErrInvalidUTF8 is returned when a STRING frame's body is not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("bipf: invalid utf-8 string")

	// ErrNonStringKey is returned when an OBJECT entry's key frame is not
	// a STRING frame.
	ErrNonStringKey = errors.New("bipf: object key is not a string frame")

	// ErrFrameOverrun is returned when the cumulative size of an
	// aggregate's children exceeds its declared body length.
	ErrFrameOverrun = errors.New("bipf: frame overrun")

	// ErrIntSizeMismatch is returned when an INT frame's body length is
	// not exactly 4 bytes.
	ErrIntSizeMismatch = errors.New("bipf: int frame must be 4 bytes")

	// ErrDoubleSizeMismatch is returned when a DOUBLE frame's body length
	// is not exactly 8 bytes.
	ErrDoubleSizeMismatch = errors.New("bipf: double frame must be 8 bytes")

	// ErrDepthExceeded is returned when recursive encode or decode
	// exceeds the configured maximum nesting depth.
	ErrDepthExceeded = errors.New("bipf: nesting depth exceeded")

	// ErrEncodeOverflow is returned when a computed frame length does not
	// fit the machine word used to hold it.
	ErrEncodeOverflow = errors.New("bipf: length overflow while encoding")

	// ErrUnsupportedValue is returned when the value tree being encoded
	// contains a kind the encoder does not recognize.
	ErrUnsupportedValue = errors.New("bipf: unsupported value kind")

	// ErrInvalidCompressionType is returned by the compress package for
	// an unrecognized format.CompressionType.
	ErrInvalidCompressionType = errors.New("bipf: invalid compression type")
)
