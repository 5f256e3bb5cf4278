package codec

import (
	"bytes"

	"github.com/bipfgo/bipf/format"
	"github.com/bipfgo/bipf/internal/tag"
	"github.com/bipfgo/bipf/internal/varint"
)

// SeekKey scans a single OBJECT frame starting at start for key, without
// decoding any value. It returns the offset of the matching value's frame
// (ready to pass to DecodeAt, or back into SeekKey for the next path
// segment) and true, or (0, false) if the key is absent or the buffer at
// start is malformed in any way.
//
// SeekKey never returns an error: any structural problem - a bad varint, a
// frame that isn't an OBJECT, a length that overruns buf - simply means no
// match. It also never allocates: no entry is decoded, only scanned over.
func SeekKey(buf []byte, start int, key []byte) (int, bool) {
	if start < 0 || start > len(buf) {
		return 0, false
	}

	tagVal, consumed, err := varint.Decode(buf, start)
	if err != nil {
		return 0, false
	}

	wireType, length := tag.Unpack(tagVal)
	if wireType != format.TypeObject || length < 0 {
		return 0, false
	}

	bodyStart := start + consumed
	bodyEnd := bodyStart + length
	if bodyEnd > len(buf) {
		return 0, false
	}

	cursor := bodyStart
	for cursor < bodyEnd {
		keyTagVal, keyConsumed, err := varint.Decode(buf, cursor)
		if err != nil {
			return 0, false
		}

		keyType, keyLen := tag.Unpack(keyTagVal)
		if keyType != format.TypeString || keyLen < 0 {
			return 0, false
		}

		keyBodyStart := cursor + keyConsumed
		keyBodyEnd := keyBodyStart + keyLen
		if keyBodyEnd > bodyEnd {
			return 0, false
		}

		valueOffset := keyBodyEnd

		valTagVal, valConsumed, err := varint.Decode(buf, valueOffset)
		if err != nil {
			return 0, false
		}

		_, valLen := tag.Unpack(valTagVal)
		if valLen < 0 {
			return 0, false
		}

		valBodyEnd := valueOffset + valConsumed + valLen
		if valBodyEnd > bodyEnd {
			return 0, false
		}

		if bytes.Equal(buf[keyBodyStart:keyBodyEnd], key) {
			return valueOffset, true
		}

		cursor = valBodyEnd
	}

	return 0, false
}
