package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/internal/pool"
)

func TestGetPutReuse(t *testing.T) {
	p := pool.New(16, 1024)

	buf := p.Get()
	buf.Grow(8)
	buf.SetLength(8)
	require.Equal(t, 8, buf.Len())

	p.Put(buf)

	buf2 := p.Get()
	require.Equal(t, 0, buf2.Len())
}

func TestPutDiscardsOversizedBuffer(t *testing.T) {
	p := pool.New(16, 32)

	buf := pool.NewBuffer(64)
	buf.SetLength(64)
	p.Put(buf) // should be discarded, not panic

	buf2 := p.Get()
	require.NotNil(t, buf2)
}

func TestGrowPreservesContents(t *testing.T) {
	buf := pool.NewBuffer(2)
	buf.B = append(buf.B, 1, 2)
	buf.Grow(100)
	require.Equal(t, []byte{1, 2}, buf.Bytes())
	require.GreaterOrEqual(t, buf.Cap(), 102)
}
