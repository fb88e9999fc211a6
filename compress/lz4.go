package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/cdp/errs"
)

// lz4CompressorPool reuses lz4.Compressor hash tables across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxDecompressedSize bounds the decompression buffer for corrupted input.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// LZ4Compressor compresses payloads as raw LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block.
//
// An LZ4 block does not record whether it was stored, so incompressible input yields
// an empty result. Callers must detect that and store the data uncompressed instead;
// envelope.Seal does so.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block.
//
// The block does not carry its decompressed size, so the buffer starts at 4x the input
// and doubles on lz4.ErrInvalidSourceShortBuffer, up to lz4MaxDecompressedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= lz4MaxDecompressedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressLimited decompresses an LZ4 block into a buffer of exactly limit bytes.
// A block that needs more room fails with errs.ErrDecompressedSize.
func (c LZ4Compressor) DecompressLimited(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := make([]byte, limit)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrDecompressedSize, limit)
		}

		return nil, err
	}

	return buf[:n], nil
}
