package compress

import "fmt"

// growingDecompress calls attempt with successively larger destination
// buffers until it succeeds, starting at startSize and doubling each time
// attempt reports the buffer was too small (shortBuffer), up to maxSize.
// It exists for block-style compression formats that, unlike s2 and zstd's
// own frame formats, do not record the decompressed size up front and so
// must be decoded against a guessed-then-grown buffer.
func growingDecompress(startSize, maxSize int, attempt func(dst []byte) (int, error), shortBuffer func(error) bool) ([]byte, error) {
	size := startSize

	for size <= maxSize {
		dst := make([]byte, size)

		n, err := attempt(dst)
		if err == nil {
			return dst[:n], nil
		}

		if !shortBuffer(err) || size == maxSize {
			return nil, err
		}

		size *= 2
		if size > maxSize {
			size = maxSize
		}
	}

	return nil, fmt.Errorf("compress: decompressed size exceeds %d byte limit", maxSize)
}
