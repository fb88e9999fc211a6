package encoding

import (
	"iter"

	"github.com/arloliu/cdp/format"
)

// Symbols returns an iterator over the symbols of an encoded buffer in decode order.
//
// Each symbol is yielded with the index of the raw bit it carries, counted from the
// start of the buffer (unit*8 + bit). A trailing odd byte is not visited.
//
// Example:
//
//	for bit, sym := range encoding.Symbols(encoded) {
//	    fmt.Printf("bit %d: %s\n", bit, sym)
//	}
func Symbols(src []byte) iter.Seq2[int, format.Symbol] {
	return func(yield func(int, format.Symbol) bool) {
		for u := range DecodedLen(len(src)) {
			unit := readUnit(src[u*UnitSize:])
			for i, pos := range symbolPos {
				if !yield(u*bitsPerByte+i, symbolAt(unit, pos)) {
					return
				}
			}
		}
	}
}
