// Package cdp implements Conditional DePhase line coding, also known as Differential
// Manchester code (IEEE 802.5).
//
// Every raw bit becomes a 2-bit symbol whose value depends on the bit and on the signal
// level left by the previous bit. One raw byte becomes one 16-bit unit, stored as two
// bytes with the high byte first, so encoded data is exactly twice the size of the raw
// data. The signal level starts High at the beginning of every call and carries over from
// byte to byte.
//
// # Core Features
//
//   - Buffer-to-buffer Encode and Decode with capacity checks
//   - Append variants that grow the destination
//   - Opt-in strict decoding that rejects invalid symbols and odd lengths
//   - Sealed envelopes: checksummed, optionally compressed (Zstd, S2, LZ4), line-coded frames
//
// # Basic Usage
//
// Encoding and decoding a buffer:
//
//	import "github.com/arloliu/cdp"
//
//	raw := []byte{0b01110100}
//	line := cdp.EncodeToBytes(raw) // {0x5A, 0xA6}
//
//	decoded, err := cdp.DecodeToBytes(line, cdp.WithStrictSymbols())
//	if err != nil {
//	    return err
//	}
//
// Caller-provided buffers:
//
//	dst := make([]byte, cdp.EncodedLen(len(raw)))
//	n, err := cdp.Encode(dst, raw)
//
// Sealing data into a self-checking envelope:
//
//	line, _ := cdp.Seal(data, envelope.WithCompression(format.CompressionS2))
//	data, err := cdp.Open(line)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding and envelope
// packages. For bit- and byte-level access, use the encoding package directly.
package cdp

import (
	"github.com/arloliu/cdp/encoding"
	"github.com/arloliu/cdp/envelope"
)

// DecodeOption configures Decode and DecodeToBytes.
type DecodeOption = encoding.DecodeOption

// WithStrictSymbols rejects encoded units that contain a 00 or 11 symbol.
func WithStrictSymbols() DecodeOption {
	return encoding.WithStrictSymbols()
}

// WithStrictLength rejects encoded input of odd length.
func WithStrictLength() DecodeOption {
	return encoding.WithStrictLength()
}

// EncodedLen returns the length of the encoding of n raw bytes.
func EncodedLen(n int) int {
	return encoding.EncodedLen(n)
}

// DecodedLen returns the number of raw bytes decoded from n encoded bytes.
func DecodedLen(n int) int {
	return encoding.DecodedLen(n)
}

// Encode line-codes src into dst.
//
// Parameters:
//   - dst: Output buffer, must hold at least EncodedLen(len(src)) bytes
//   - src: Raw input bytes
//
// Returns:
//   - int: Number of bytes written
//   - error: errs.ErrShortBuffer if dst is too small
func Encode(dst, src []byte) (int, error) {
	return encoding.Encode(dst, src)
}

// Decode recovers raw bytes from the line-coded src into dst.
//
// Parameters:
//   - dst: Output buffer, len(dst)*2 must be at least len(src)
//   - src: Encoded input bytes
//   - opts: WithStrictSymbols, WithStrictLength
//
// Returns:
//   - int: Number of bytes written
//   - error: errs.ErrShortBuffer, errs.ErrOddLength or errs.ErrInvalidSymbol
func Decode(dst, src []byte, opts ...DecodeOption) (int, error) {
	return encoding.Decode(dst, src, opts...)
}

// EncodeToBytes returns the line coding of src in a new slice.
func EncodeToBytes(src []byte) []byte {
	return encoding.AppendEncode(make([]byte, 0, EncodedLen(len(src))), src)
}

// DecodeToBytes decodes src into a new slice.
func DecodeToBytes(src []byte, opts ...DecodeOption) ([]byte, error) {
	dst, err := encoding.AppendDecode(make([]byte, 0, DecodedLen(len(src))), src, opts...)
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// Seal wraps data into a checksummed, line-coded envelope.
//
// See envelope.Seal for the frame layout and the available options.
func Seal(data []byte, opts ...envelope.Option) ([]byte, error) {
	return envelope.Seal(data, opts...)
}

// Open verifies and unwraps an envelope created by Seal.
func Open(line []byte) ([]byte, error) {
	return envelope.Open(line)
}
