package compress

// emptyPassthrough wraps a Codec so every concrete algorithm in this
// package only has to handle non-empty input: an empty buffer compresses
// and decompresses to nil without ever reaching the wrapped algorithm.
type emptyPassthrough struct {
	Codec
}

func (e emptyPassthrough) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return e.Codec.Compress(data)
}

func (e emptyPassthrough) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return e.Codec.Decompress(data)
}
