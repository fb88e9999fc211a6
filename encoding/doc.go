// Package encoding implements Conditional DePhase (CDP) line coding, also known as
// Differential Manchester Code as defined by IEEE 802.5.
//
// Every raw bit becomes a 2-bit symbol chosen from the current signal level:
//
//	bit == level  ->  "10", level becomes Low
//	bit != level  ->  "01", level becomes High
//
// so a raw byte expands to a 16-bit unit and a buffer of n bytes to 2n bytes. The signal
// level starts at format.InitialLevel (High) on every Encode and Decode call and is
// carried across all bytes of that call. It is threaded explicitly through EncodeBit,
// EncodeByte and their decode counterparts; the package keeps no state.
//
// # Wire Layout
//
// The symbol of raw bit i (least-significant first) occupies bit pair (8+2i) mod 16 of
// the unit, with the symbol's first bit at the lower position. Units are written
// big-endian, so raw bits 0-3 travel in the first byte and bits 4-7 in the second:
//
//	raw 0b01110100 -> 0x5A 0xA6
//	raw 0x00       -> 0xAA 0xAA
//	raw 0xFF       -> 0x99 0x99
//
// # Strictness
//
// The decoder is lenient by default: a "00" or "11" symbol decodes as "01" and a trailing
// odd input byte is ignored. WithStrictSymbols and WithStrictLength turn those cases into
// errs.ErrInvalidSymbol and errs.ErrOddLength.
//
// # Thread Safety
//
// All functions are safe for concurrent use as long as each call gets its own buffers.
package encoding
