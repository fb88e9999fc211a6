//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses data with the cgo zstd bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses data with the cgo zstd bindings.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressLimited rejects a frame that declares more than limit bytes before decoding.
// Frames without a content size are checked after decoding. Empty input yields nil.
func (c ZstdCompressor) DecompressLimited(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	capacity, err := zstdOutputCap(data, limit)
	if err != nil {
		return nil, err
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, capacity), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if len(decompressed) > limit {
		return nil, errSizeExceeded(uint64(len(decompressed)), limit)
	}

	return decompressed, nil
}
