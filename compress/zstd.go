package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses payloads with Zstandard.
//
// The default build uses the pure Go klauspost/compress implementation with pooled
// encoders and decoders. Building with the gozstd tag and cgo enabled switches to the
// valyala/gozstd bindings. Both produce standard zstd frames and can read each other's
// output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdOutputCap reads the first frame header of data and returns the capacity to
// decompress into: the declared content size if the frame records one, limit otherwise.
func zstdOutputCap(data []byte, limit int) (int, error) {
	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return 0, fmt.Errorf("zstd frame header: %w", err)
	}

	if !header.HasFCS {
		return limit, nil
	}

	if header.FrameContentSize > uint64(limit) { //nolint:gosec
		return 0, errSizeExceeded(header.FrameContentSize, limit)
	}

	return int(header.FrameContentSize), nil //nolint:gosec
}
