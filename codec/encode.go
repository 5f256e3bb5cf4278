// Package codec implements the BIPF wire format: a value-model sizing pass
// followed by a single-pass encoder, a recursive decoder, and an in-place
// seek_key navigator.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bipfgo/bipf/format"
	"github.com/bipfgo/bipf/internal/tag"
	"github.com/bipfgo/bipf/internal/varint"
	"github.com/bipfgo/bipf/value"
)

// EncodingLength returns the exact number of bytes Encode would produce for
// v, without allocating the output buffer.
func EncodingLength(v value.Value, opts ...Option) (int, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	m, err := buildModel(v, 0, cfg.maxDepth)
	if err != nil {
		return 0, err
	}

	return m.frameSize(), nil
}

// Encode serializes v into a freshly-allocated, exactly-sized byte slice.
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	m, err := buildModel(v, 0, cfg.maxDepth)
	if err != nil {
		return nil, err
	}

	total := m.frameSize()
	buf := make([]byte, total)

	n := emit(buf, 0, m)
	if n != total {
		return nil, fmt.Errorf("codec: internal invariant violated: emitted %d bytes, expected %d", n, total)
	}

	return buf, nil
}

// EncodeInto writes v's frame into dst, which must be at least
// EncodingLength(v) bytes long, and returns the number of bytes written.
// It lets callers reuse a pooled buffer instead of allocating on every
// Encode call.
func EncodeInto(dst []byte, v value.Value, opts ...Option) (int, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	m, err := buildModel(v, 0, cfg.maxDepth)
	if err != nil {
		return 0, err
	}

	total := m.frameSize()
	if len(dst) < total {
		return 0, fmt.Errorf("codec: destination buffer too small: have %d bytes, need %d", len(dst), total)
	}

	n := emit(dst, 0, m)
	if n != total {
		return 0, fmt.Errorf("codec: internal invariant violated: emitted %d bytes, expected %d", n, total)
	}

	return n, nil
}

// emit writes m's frame starting at off and returns the offset just past it.
// Every branch writes exactly m.frameSize() bytes, matching the length the
// sizing pass already computed.
func emit(buf []byte, off int, m model) int {
	off = putTag(buf, off, m.wireType, m.bodyLen)

	switch m.wireType {
	case format.TypeString:
		off += copy(buf[off:], m.strVal)

	case format.TypeBuffer:
		off += copy(buf[off:], m.rawVal)

	case format.TypeInt:
		binary.LittleEndian.PutUint32(buf[off:], uint32(m.i32))
		off += 4

	case format.TypeDouble:
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(m.f64))
		off += 8

	case format.TypeBoolNull:
		if m.bodyLen == 1 {
			if m.boolVal {
				buf[off] = 1
			} else {
				buf[off] = 0
			}
			off++
		}

	case format.TypeArray:
		for _, child := range m.children {
			off = emit(buf, off, child)
		}

	case format.TypeObject:
		for _, p := range m.pairs {
			off = putTag(buf, off, format.TypeString, len(p.key))
			off += copy(buf[off:], p.key)
			off = emit(buf, off, p.val)
		}
	}

	return off
}

func putTag(buf []byte, off int, t format.WireType, length int) int {
	return off + varint.Put(buf[off:], tag.Pack(t, length))
}
