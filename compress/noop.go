package compress

// NoOpCodec bypasses compression and returns the input data unchanged.
// It exists so callers can select format.CompressionNone through the same
// Codec interface as the real algorithms, without a special case.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that performs no compression.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

// Compress returns data as-is. The returned slice shares memory with data.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data as-is. The returned slice shares memory with data.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
