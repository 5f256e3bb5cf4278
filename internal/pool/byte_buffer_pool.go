// Package pool provides a reusable byte-buffer pool for the bipf encoder,
// adapted from the buffer-pool used throughout the wider blob-encoding
// lineage this codec is drawn from.
package pool

import "sync"

// DefaultSize is the capacity a freshly allocated Buffer starts with when
// obtained from a pool for the first time.
const DefaultSize = 4 * 1024 // 4KiB

// MaxThreshold is the capacity above which a returned Buffer is discarded
// instead of being kept in the pool, to avoid retaining outsized buffers
// after an unusually large encode.
const MaxThreshold = 256 * 1024 // 256KiB

// Buffer is a growable byte slice meant to be reused across encode calls.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given starting capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.B }

// Reset empties the buffer while retaining its underlying array.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.B) }

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int { return cap(b.B) }

// Grow ensures the buffer has room for at least n more bytes without a
// further reallocation, without changing its length.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	grown := make([]byte, len(b.B), len(b.B)+n)
	copy(grown, b.B)
	b.B = grown
}

// SetLength extends or truncates the buffer to exactly n bytes, which must
// not exceed its capacity.
func (b *Buffer) SetLength(n int) {
	if n < 0 || n > cap(b.B) {
		panic("pool: SetLength out of range")
	}
	b.B = b.B[:n]
}

// Pool is a sync.Pool of Buffers, discarding any buffer whose capacity
// exceeds maxThreshold when it is returned.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// New creates a Pool whose buffers start at defaultSize and are discarded
// on Put if their capacity exceeds maxThreshold.
func New(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool, allocating a new one if empty.
func (p *Pool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the pool for reuse, discarding it instead if its
// capacity exceeds the pool's max threshold.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && buf.Cap() > p.maxThreshold {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

var defaultPool = New(DefaultSize, MaxThreshold)

// GetBuffer retrieves a Buffer from the package-level default pool.
func GetBuffer() *Buffer { return defaultPool.Get() }

// PutBuffer returns a Buffer to the package-level default pool.
func PutBuffer(buf *Buffer) { defaultPool.Put(buf) }
