package compress

// NoOpCompressor stores payloads uncompressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a codec that passes data through.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result shares memory with the input, so callers
// that recycle the input buffer must copy it first.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimited returns data itself if it is at most limit bytes long.
func (c NoOpCompressor) DecompressLimited(data []byte, limit int) ([]byte, error) {
	if len(data) > limit {
		return nil, errSizeExceeded(uint64(len(data)), limit)
	}

	return data, nil
}
