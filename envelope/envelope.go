// Package envelope wraps a payload into a self-describing, checksummed frame and line-codes
// the whole frame with CDP.
//
// A plain frame is a HeaderSize-byte header followed by the payload:
//
//	0-1    options (little-endian): endianness bit, reserved bits, magic 0xCD1
//	2      compression type
//	3      reserved
//	4-7    raw data length
//	8-11   payload length
//	12-19  xxHash64 of the raw data
//
// Seal compresses the data (if requested), prepends the header and returns the line-coded
// frame, twice the size of the plain frame. Open reverses every step and checks each
// length and the checksum. An envelope describes exactly one buffer; locating envelopes
// inside a longer stream is left to the caller.
package envelope

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/cdp/compress"
	"github.com/arloliu/cdp/encoding"
	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
	"github.com/arloliu/cdp/internal/hash"
	"github.com/arloliu/cdp/internal/pool"
)

// Seal builds a line-coded envelope around data.
//
// When the requested compression does not make the payload smaller, the data is stored
// uncompressed and the header records CompressionNone.
//
// Parameters:
//   - data: Raw data to wrap, at most math.MaxUint32 bytes
//   - opts: WithCompression, WithBigEndian, WithLittleEndian
//
// Returns:
//   - []byte: Line-coded envelope
//   - error: errs.ErrInvalidCompression, errs.ErrPayloadLength, or a compression error
func Seal(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceeds the 32-bit length field", errs.ErrPayloadLength, len(data))
	}

	payload, compression, err := compressPayload(data, cfg.compression)
	if err != nil {
		return nil, err
	}

	header := NewHeader()
	header.Flag.Compression = compression
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.RawLength = uint32(len(data))       //nolint:gosec
	header.PayloadLength = uint32(len(payload)) //nolint:gosec
	header.Checksum = hash.Checksum(data)

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	header.Put(buf.ExtendOrGrow(HeaderSize))
	buf.MustWrite(payload)

	return encoding.AppendEncode(make([]byte, 0, encoding.EncodedLen(buf.Len())), buf.Bytes()), nil
}

// Open decodes a line-coded envelope and returns the original data.
//
// Decoding is strict: invalid symbols and odd lengths are rejected. The payload is never
// decompressed to more than the raw length recorded in the header.
//
// Returns:
//   - []byte: The original data, owned by the caller
//   - error: errs.ErrInvalidSymbol, errs.ErrOddLength, header errors, errs.ErrPayloadLength,
//     errs.ErrChecksumMismatch, or a decompression error
func Open(line []byte) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	plain, err := encoding.AppendDecode(buf.B, line, encoding.WithStrictSymbols(), encoding.WithStrictLength())
	if err != nil {
		return nil, fmt.Errorf("envelope line decode: %w", err)
	}
	buf.B = plain

	header, err := ParseHeader(plain)
	if err != nil {
		return nil, err
	}

	payload := plain[HeaderSize:]
	if len(payload) != int(header.PayloadLength) {
		return nil, fmt.Errorf("%w: header says %d payload bytes, frame has %d",
			errs.ErrPayloadLength, header.PayloadLength, len(payload))
	}

	codec, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return nil, err
	}

	if uint64(header.RawLength) > math.MaxInt {
		return nil, fmt.Errorf("%w: %d raw bytes exceeds int", errs.ErrPayloadLength, header.RawLength)
	}

	raw, err := codec.DecompressLimited(payload, int(header.RawLength))
	if err != nil {
		if errors.Is(err, errs.ErrDecompressedSize) {
			return nil, fmt.Errorf("%w: header says %d raw bytes: %w", errs.ErrPayloadLength, header.RawLength, err)
		}

		return nil, fmt.Errorf("envelope payload: %w", err)
	}

	if header.Flag.Compression == format.CompressionNone {
		// payload still points into the pooled buffer
		raw = bytes.Clone(raw)
	}

	if len(raw) != int(header.RawLength) {
		return nil, fmt.Errorf("%w: header says %d raw bytes, payload has %d",
			errs.ErrPayloadLength, header.RawLength, len(raw))
	}

	if !hash.Verify(raw, header.Checksum) {
		return nil, fmt.Errorf("%w: expected 0x%016x", errs.ErrChecksumMismatch, header.Checksum)
	}

	return raw, nil
}

// PeekHeader decodes and parses only the header of a line-coded envelope.
func PeekHeader(line []byte) (Header, error) {
	encodedHeaderSize := encoding.EncodedLen(HeaderSize)
	if len(line) < encodedHeaderSize {
		return Header{}, fmt.Errorf("%w: %d line-coded bytes", errs.ErrInvalidHeaderSize, len(line))
	}

	var plain [HeaderSize]byte
	if _, err := encoding.Decode(plain[:], line[:encodedHeaderSize], encoding.WithStrictSymbols()); err != nil {
		return Header{}, fmt.Errorf("envelope line decode: %w", err)
	}

	return ParseHeader(plain[:])
}

// compressPayload compresses data and falls back to storing it when compression does
// not help. A raw LZ4 block of incompressible data comes back empty, which lands here too.
func compressPayload(data []byte, compression format.CompressionType) ([]byte, format.CompressionType, error) {
	if compression == format.CompressionNone {
		return data, format.CompressionNone, nil
	}

	codec, err := compress.CreateCodec(compression, "payload")
	if err != nil {
		return nil, 0, err
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return nil, 0, fmt.Errorf("envelope payload: %w", err)
	}

	if len(payload) == 0 || len(payload) >= len(data) {
		return data, format.CompressionNone, nil
	}

	return payload, compression, nil
}
