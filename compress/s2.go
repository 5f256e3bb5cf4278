package compress

import "github.com/klauspost/compress/s2"

// s2Codec compresses with S2, a Snappy-compatible format tuned for speed
// over ratio - a good fit for buffers that are compressed and decompressed
// often rather than archived.
type s2Codec struct{}

var _ Codec = s2Codec{}

// NewS2Codec creates a new S2 codec.
func NewS2Codec() Codec { return emptyPassthrough{s2Codec{}} }

func (s2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}
