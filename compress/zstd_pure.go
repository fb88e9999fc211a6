//go:build !(cgo && gozstd)

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/cdp/errs"
)

// The klauspost decoder runs without allocations once warmed up, so decoders and
// encoders are pooled rather than created per call.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdLimitedDecoderPool holds decoders that never grow the DecodeAll destination
// past its capacity.
var zstdLimitedDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // envelopes carry their own xxHash64
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses data with a pooled encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data with a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressLimited decompresses data into a buffer capped at limit bytes. A frame that
// declares a larger content size is rejected before any allocation. Empty input yields nil.
func (c ZstdCompressor) DecompressLimited(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	capacity, err := zstdOutputCap(data, limit)
	if err != nil {
		return nil, err
	}

	decoder, _ := zstdLimitedDecoderPool.Get().(*zstd.Decoder)
	defer zstdLimitedDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, capacity))
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrDecompressedSize, capacity)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
