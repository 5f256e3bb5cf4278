package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/format"
	"github.com/bipfgo/bipf/internal/tag"
	"github.com/bipfgo/bipf/internal/varint"
	"github.com/bipfgo/bipf/value"
)

// Decode parses a single top-level frame starting at offset 0.
func Decode(buf []byte, opts ...Option) (value.Value, error) {
	return DecodeAt(buf, 0, opts...)
}

// DecodeAt parses a single frame starting at the given offset. The frame
// may read up to the end of buf; callers that know a tighter bound (e.g.
// a sibling frame's start) should slice buf themselves first.
func DecodeAt(buf []byte, offset int, opts ...Option) (value.Value, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return value.Value{}, err
	}

	if offset < 0 || offset > len(buf) {
		return value.Value{}, fmt.Errorf("%w: offset %d out of range", errs.ErrUnexpectedEnd, offset)
	}

	v, _, err := decodeFrame(buf, offset, len(buf), 0, cfg.maxDepth)

	return v, err
}

// decodeFrame decodes exactly one frame starting at off, never reading past
// limit (the end of the enclosing frame, or len(buf) at the top level). It
// returns the decoded value and the offset immediately after the frame.
func decodeFrame(buf []byte, off, limit, depth, maxDepth int) (value.Value, int, error) {
	if depth > maxDepth {
		return value.Value{}, 0, fmt.Errorf("%w: depth %d exceeds limit %d", errs.ErrDepthExceeded, depth, maxDepth)
	}

	tagVal, consumed, err := varint.Decode(buf, off)
	if err != nil {
		return value.Value{}, 0, err
	}

	wireType, length := tag.Unpack(tagVal)
	if length < 0 {
		return value.Value{}, 0, fmt.Errorf("%w: negative frame length", errs.ErrFrameOverrun)
	}

	bodyStart := off + consumed
	bodyEnd := bodyStart + length

	// A body that runs past the physical buffer is truncated data; a body
	// that runs past the enclosing frame's declared bound (but still
	// within buf) is a well-formed sibling overrunning its own frame.
	// Check the harder physical bound first so the two are distinguishable.
	if bodyEnd > len(buf) {
		return value.Value{}, 0, fmt.Errorf("%w: frame at %d claims %d bytes past buffer end", errs.ErrUnexpectedEnd, off, length)
	}

	if bodyStart > limit || bodyEnd > limit {
		return value.Value{}, 0, fmt.Errorf("%w: frame at %d claims %d bytes past its enclosing bound", errs.ErrFrameOverrun, off, length)
	}

	switch wireType {
	case format.TypeString:
		raw := buf[bodyStart:bodyEnd]
		if !utf8.Valid(raw) {
			return value.Value{}, 0, fmt.Errorf("%w: string at %d", errs.ErrInvalidUTF8, bodyStart)
		}

		return value.String(string(raw)), bodyEnd, nil

	case format.TypeBuffer:
		b := make([]byte, length)
		copy(b, buf[bodyStart:bodyEnd])

		return value.Bytes(b), bodyEnd, nil

	case format.TypeInt:
		if length != 4 {
			return value.Value{}, 0, fmt.Errorf("%w: int frame at %d has length %d", errs.ErrIntSizeMismatch, off, length)
		}

		u := binary.LittleEndian.Uint32(buf[bodyStart:bodyEnd])

		return value.Int(int64(int32(u))), bodyEnd, nil

	case format.TypeDouble:
		if length != 8 {
			return value.Value{}, 0, fmt.Errorf("%w: double frame at %d has length %d", errs.ErrDoubleSizeMismatch, off, length)
		}

		bits := binary.LittleEndian.Uint64(buf[bodyStart:bodyEnd])

		return value.Float(math.Float64frombits(bits)), bodyEnd, nil

	case format.TypeBoolNull:
		switch length {
		case 0:
			return value.Null(), bodyEnd, nil
		case 1:
			b := buf[bodyStart]
			if b > 1 {
				return value.Value{}, 0, fmt.Errorf("%w: boolnull byte %d at %d", errs.ErrInvalidBoolNull, b, bodyStart)
			}

			return value.Bool(b == 1), bodyEnd, nil
		default:
			return value.Value{}, 0, fmt.Errorf("%w: boolnull frame at %d has length %d", errs.ErrInvalidBoolNull, off, length)
		}

	case format.TypeArray:
		var children []value.Value

		cursor := bodyStart
		for cursor < bodyEnd {
			child, next, err := decodeFrame(buf, cursor, bodyEnd, depth+1, maxDepth)
			if err != nil {
				return value.Value{}, 0, err
			}

			children = append(children, child)
			cursor = next
		}

		return value.Array(children), bodyEnd, nil

	case format.TypeObject:
		var entries []value.Entry

		cursor := bodyStart
		for cursor < bodyEnd {
			keyTagVal, keyConsumed, err := varint.Decode(buf, cursor)
			if err != nil {
				return value.Value{}, 0, err
			}

			keyType, keyLen := tag.Unpack(keyTagVal)
			if keyType != format.TypeString {
				return value.Value{}, 0, fmt.Errorf("%w: object key at %d has wire type %s", errs.ErrNonStringKey, cursor, keyType)
			}

			keyBodyStart := cursor + keyConsumed
			keyBodyEnd := keyBodyStart + keyLen
			if keyLen < 0 || keyBodyEnd > bodyEnd {
				return value.Value{}, 0, fmt.Errorf("%w: object key at %d overruns its frame", errs.ErrFrameOverrun, cursor)
			}

			keyRaw := buf[keyBodyStart:keyBodyEnd]
			if !utf8.Valid(keyRaw) {
				return value.Value{}, 0, fmt.Errorf("%w: object key at %d", errs.ErrInvalidUTF8, keyBodyStart)
			}

			key := make([]byte, len(keyRaw))
			copy(key, keyRaw)

			val, next, err := decodeFrame(buf, keyBodyEnd, bodyEnd, depth+1, maxDepth)
			if err != nil {
				return value.Value{}, 0, err
			}

			entries = append(entries, value.Entry{Key: key, Value: val})
			cursor = next
		}

		return value.Object(entries), bodyEnd, nil

	default:
		return value.Value{}, 0, fmt.Errorf("%w: wire type %d at %d", errs.ErrInvalidType, wireType, off)
	}
}
