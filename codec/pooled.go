package codec

import (
	"fmt"

	"github.com/bipfgo/bipf/internal/pool"
	"github.com/bipfgo/bipf/value"
)

// EncodeWithPool encodes v into a *pool.Buffer borrowed from p instead of a
// fresh allocation. The caller owns the returned buffer and must return it
// with p.Put when done; its bytes are only valid until then.
func EncodeWithPool(p *pool.Pool, v value.Value, opts ...Option) (*pool.Buffer, error) {
	total, err := EncodingLength(v, opts...)
	if err != nil {
		return nil, err
	}

	buf := p.Get()
	buf.Reset()
	buf.Grow(total)
	buf.SetLength(total)

	n, err := EncodeInto(buf.Bytes(), v, opts...)
	if err != nil {
		p.Put(buf)

		return nil, err
	}

	if n != total {
		p.Put(buf)

		return nil, fmt.Errorf("codec: internal invariant violated: wrote %d bytes, expected %d", n, total)
	}

	return buf, nil
}
