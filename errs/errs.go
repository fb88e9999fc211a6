// Package errs defines the sentinel errors returned across the cdp packages.
//
// Callers should match them with errors.Is, since most call sites wrap them with
// additional context such as buffer sizes or byte offsets.
package errs

import "errors"

// Transcoder errors.
var (
	// ErrShortBuffer is returned when the output buffer cannot hold the result.
	ErrShortBuffer = errors.New("output buffer too small")
	// ErrInvalidSymbol is returned by strict decoding when a symbol is neither "10" nor "01".
	ErrInvalidSymbol = errors.New("invalid line code symbol")
	// ErrOddLength is returned by strict decoding when the encoded input has an odd length.
	ErrOddLength = errors.New("encoded input has odd length")
)

// Envelope errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid envelope header size")
	ErrInvalidMagic       = errors.New("invalid envelope magic number")
	ErrInvalidHeaderFlags = errors.New("invalid envelope header flags")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrPayloadLength      = errors.New("envelope payload length mismatch")
	ErrChecksumMismatch   = errors.New("envelope checksum mismatch")
)

// Compression errors.
var (
	// ErrDecompressedSize is returned when a payload would decompress to more bytes than allowed.
	ErrDecompressedSize = errors.New("decompressed size exceeds limit")
)
