package encoding

import "github.com/arloliu/cdp/format"

const (
	// UnitSize is the number of encoded bytes produced per raw byte.
	UnitSize = 2

	bitsPerByte = 8
)

// symbolPos maps raw bit i to the position of its symbol inside the 16-bit unit.
// Symbols start at bit 8 and wrap to bit 0 after bit 14, so raw bits 0-3 land in
// the high byte and raw bits 4-7 in the low byte.
var symbolPos = [bitsPerByte]uint{8, 10, 12, 14, 0, 2, 4, 6}

// putSymbol stores sym at pair position pos: the symbol's high bit at pos and its
// low bit at pos+1.
func putSymbol(unit uint16, sym format.Symbol, pos uint) uint16 {
	unit |= uint16((sym>>1)&0x01) << pos
	unit |= uint16(sym&0x01) << (pos + 1)

	return unit
}

// symbolAt reads the symbol stored at pair position pos.
func symbolAt(unit uint16, pos uint) format.Symbol {
	hi := (unit >> pos) & 0x01
	lo := (unit >> (pos + 1)) & 0x01

	return format.Symbol(hi<<1 | lo)
}

// EncodeByte encodes the 8 bits of b, least-significant first, into one 16-bit unit.
//
// The level is threaded through all eight bits; the returned level is the one to use
// for the next byte of the same buffer.
func EncodeByte(b byte, level format.Level) (uint16, format.Level) {
	var (
		unit uint16
		sym  format.Symbol
	)

	for i, pos := range symbolPos {
		sym, level = EncodeBit(b>>i, level)
		unit = putSymbol(unit, sym, pos)
	}

	return unit, level
}

// DecodeByte decodes one 16-bit unit back into a raw byte.
//
// Symbols are read in the order EncodeByte wrote them: the four pairs of the high byte
// first, then the four pairs of the low byte.
func DecodeByte(unit uint16, level format.Level) (byte, format.Level) {
	var (
		b   byte
		bit byte
	)

	for i, pos := range symbolPos {
		bit, level = DecodeBit(symbolAt(unit, pos), level)
		b |= bit << i
	}

	return b, level
}

// ValidUnit reports whether every symbol of unit is "10" or "01".
func ValidUnit(unit uint16) bool {
	// Within each pair the two bits must differ.
	return (unit^(unit>>1))&0x5555 == 0x5555
}

// putUnit writes unit big-endian into dst[0:2].
func putUnit(dst []byte, unit uint16) {
	dst[0] = byte(unit >> 8)
	dst[1] = byte(unit)
}

// readUnit reads a big-endian unit from src[0:2].
func readUnit(src []byte) uint16 {
	return uint16(src[0])<<8 | uint16(src[1])
}
