package compress

import (
	"fmt"

	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
)

// Compressor compresses an envelope payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original data, or an error if data is corrupted or was
	// produced by another algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressLimited is Decompress for output of at most limit bytes. The size the
	// compressed data declares is checked before the output buffer is allocated, and
	// anything larger fails with errs.ErrDecompressedSize.
	DecompressLimited(data []byte, limit int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type.
//
// Parameters:
//   - compressionType: None, Zstd, S2 or LZ4
//   - target: Description of what the codec is for, used in error messages
//
// Returns:
//   - Codec: Codec instance for the type
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %d", errs.ErrInvalidCompression, target, uint8(compressionType))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compressionType))
}

func errSizeExceeded(size uint64, limit int) error {
	return fmt.Errorf("%w: %d bytes, limit %d", errs.ErrDecompressedSize, size, limit)
}
