package codec

import (
	"fmt"

	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/format"
	"github.com/bipfgo/bipf/internal/keyhash"
	"github.com/bipfgo/bipf/internal/tag"
	"github.com/bipfgo/bipf/internal/varint"
)

// BuildKeyIndex scans the single OBJECT frame starting at start and
// returns a keyhash.Index over its immediate key/value pairs. Unlike
// SeekKey, this walks the whole frame once and is meant to be reused across
// many subsequent lookups on the same object - amortizing the scan cost
// instead of repeating it per key.
//
// BuildKeyIndex does not recurse into nested objects: call it again on a
// value offset returned by Index.Lookup to index the next level down.
func BuildKeyIndex(buf []byte, start int) (*keyhash.Index, error) {
	if start < 0 || start > len(buf) {
		return nil, fmt.Errorf("%w: offset %d out of range", errs.ErrUnexpectedEnd, start)
	}

	tagVal, consumed, err := varint.Decode(buf, start)
	if err != nil {
		return nil, err
	}

	wireType, length := tag.Unpack(tagVal)
	if wireType != format.TypeObject {
		return nil, fmt.Errorf("%w: offset %d is not an object frame", errs.ErrInvalidType, start)
	}

	bodyStart := start + consumed
	bodyEnd := bodyStart + length
	if length < 0 || bodyEnd > len(buf) {
		return nil, fmt.Errorf("%w: object frame at %d", errs.ErrUnexpectedEnd, start)
	}

	var entries []keyhash.Entry

	cursor := bodyStart
	for cursor < bodyEnd {
		keyTagVal, keyConsumed, err := varint.Decode(buf, cursor)
		if err != nil {
			return nil, err
		}

		keyType, keyLen := tag.Unpack(keyTagVal)
		if keyType != format.TypeString {
			return nil, fmt.Errorf("%w: object key at %d", errs.ErrNonStringKey, cursor)
		}

		keyBodyStart := cursor + keyConsumed
		keyBodyEnd := keyBodyStart + keyLen
		if keyLen < 0 || keyBodyEnd > bodyEnd {
			return nil, fmt.Errorf("%w: object key at %d", errs.ErrFrameOverrun, cursor)
		}

		valueOffset := keyBodyEnd

		valTagVal, valConsumed, err := varint.Decode(buf, valueOffset)
		if err != nil {
			return nil, err
		}

		_, valLen := tag.Unpack(valTagVal)
		valBodyEnd := valueOffset + valConsumed + valLen
		if valLen < 0 || valBodyEnd > bodyEnd {
			return nil, fmt.Errorf("%w: object value at %d", errs.ErrFrameOverrun, valueOffset)
		}

		entries = append(entries, keyhash.Entry{
			KeyOff:   keyBodyStart,
			KeyLen:   keyLen,
			ValueOff: valueOffset,
		})

		cursor = valBodyEnd
	}

	return keyhash.Build(buf, entries), nil
}

// SeekKeyIndexed looks key up in a previously-built Index. It is the
// accelerated counterpart to SeekKey: O(1) amortized instead of a linear
// scan, at the cost of having built the index first.
func SeekKeyIndexed(idx *keyhash.Index, key []byte) (int, bool) {
	return idx.Lookup(key)
}
