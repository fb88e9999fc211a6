package encoding

import (
	"fmt"
	"slices"

	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
)

// EncodedLen returns the length of the encoding of n raw bytes.
func EncodedLen(n int) int {
	return n * UnitSize
}

// DecodedLen returns the number of raw bytes decoded from n encoded bytes.
// A trailing odd byte does not count.
func DecodedLen(n int) int {
	return n / UnitSize
}

// Encode line-codes src into dst and returns the number of bytes written.
//
// Each input byte becomes one big-endian 16-bit unit, in input order. The signal level
// starts at format.InitialLevel and carries over from byte to byte.
//
// Parameters:
//   - dst: Output buffer, must hold at least EncodedLen(len(src)) bytes
//   - src: Raw input bytes
//
// Returns:
//   - int: Number of bytes written (EncodedLen(len(src)))
//   - error: errs.ErrShortBuffer if dst is too small; nothing is written in that case
func Encode(dst, src []byte) (int, error) {
	need := EncodedLen(len(src))
	if len(dst) < need {
		return 0, fmt.Errorf("%w: encode needs %d bytes, have %d", errs.ErrShortBuffer, need, len(dst))
	}

	encode(dst, src)

	return need, nil
}

// Decode recovers raw bytes from the line-coded src into dst and returns the number of
// bytes written.
//
// Input is consumed two bytes at a time. The signal level starts at format.InitialLevel
// and carries over from unit to unit. By default a trailing odd byte is ignored and
// invalid symbols decode leniently; see WithStrictLength and WithStrictSymbols.
//
// Parameters:
//   - dst: Output buffer, len(dst)*2 must be at least len(src)
//   - src: Encoded input bytes
//   - opts: Optional strictness options
//
// Returns:
//   - int: Number of bytes written (DecodedLen(len(src)))
//   - error: errs.ErrShortBuffer, errs.ErrOddLength or errs.ErrInvalidSymbol; nothing is
//     written when an error is returned
func Decode(dst, src []byte, opts ...DecodeOption) (int, error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return 0, err
	}

	if len(dst)*UnitSize < len(src) {
		return 0, fmt.Errorf("%w: decode needs %d bytes, have %d", errs.ErrShortBuffer, DecodedLen(len(src)), len(dst))
	}

	if err := cfg.validate(src); err != nil {
		return 0, err
	}

	return decode(dst, src), nil
}

// AppendEncode appends the encoding of src to dst and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	n := len(dst)
	dst = slices.Grow(dst, EncodedLen(len(src)))
	dst = dst[:n+EncodedLen(len(src))]
	encode(dst[n:], src)

	return dst
}

// AppendDecode appends the decoding of src to dst and returns the extended buffer.
// On error dst is returned unchanged.
func AppendDecode(dst, src []byte, opts ...DecodeOption) ([]byte, error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return dst, err
	}

	if err := cfg.validate(src); err != nil {
		return dst, err
	}

	n := len(dst)
	dst = slices.Grow(dst, DecodedLen(len(src)))
	dst = dst[:n+DecodedLen(len(src))]
	decode(dst[n:], src)

	return dst, nil
}

// validate runs the opt-in strictness checks over the whole input before any write.
func (c decodeConfig) validate(src []byte) error {
	if c.strictLength && len(src)%UnitSize != 0 {
		return fmt.Errorf("%w: %d bytes", errs.ErrOddLength, len(src))
	}

	if !c.strictSymbols {
		return nil
	}

	for i := 0; i+1 < len(src); i += UnitSize {
		if !ValidUnit(readUnit(src[i:])) {
			return fmt.Errorf("%w: unit at offset %d (%08b %08b)", errs.ErrInvalidSymbol, i, src[i], src[i+1])
		}
	}

	return nil
}

// encode assumes dst holds EncodedLen(len(src)) bytes.
func encode(dst, src []byte) {
	level := format.InitialLevel

	var unit uint16
	for i, b := range src {
		unit, level = EncodeByte(b, level)
		putUnit(dst[i*UnitSize:], unit)
	}
}

// decode assumes dst holds DecodedLen(len(src)) bytes.
func decode(dst, src []byte) int {
	level := format.InitialLevel
	n := DecodedLen(len(src))

	for i := range n {
		dst[i], level = DecodeByte(readUnit(src[i*UnitSize:]), level)
	}

	return n
}
