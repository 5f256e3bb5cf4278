//go:build cgo

package compress

import "github.com/valyala/gozstd"

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	return gozstd.Decompress(nil, data)
}
