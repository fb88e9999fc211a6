package encoding

import "github.com/arloliu/cdp/format"

// EncodeBit encodes one raw data bit with the IEEE 802.5 Differential Manchester rule.
//
// Only the least-significant bit of bit is used. The returned level is the signal level
// after the symbol and must be passed to the next EncodeBit call.
//
// Truth table (c = level, d = bit):
//
//	cd  | 00 | 01 | 10 | 11
//	sym | 10 | 01 | 01 | 10
func EncodeBit(bit byte, level format.Level) (format.Symbol, format.Level) {
	if format.LevelOf(bit) == level {
		return format.SymbolMid, format.Low
	}

	return format.SymbolNoMid, format.High
}

// DecodeBit recovers one raw data bit from a symbol. It is the exact inverse of EncodeBit.
//
// Any symbol other than "10", including the invalid "00" and "11", is treated as "01".
func DecodeBit(sym format.Symbol, level format.Level) (byte, format.Level) {
	if sym == format.SymbolMid {
		return level.Bit(), format.Low
	}

	return level.Not().Bit(), format.High
}
