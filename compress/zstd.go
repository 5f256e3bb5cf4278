package compress

// zstdCodec compresses with Zstandard, favoring compression ratio over
// speed - a good fit for buffers that are written once and read rarely.
// Its Compress/Decompress methods are implemented in zstd_pure.go (pure Go,
// selected whenever CGO_ENABLED=0) or zstd_cgo.go (cgo, selected when cgo
// is available), via the implicit "cgo" build tag.
type zstdCodec struct{}

var _ Codec = zstdCodec{}

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() Codec { return emptyPassthrough{zstdCodec{}} }
