package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cdp/format"
)

func TestSymbols(t *testing.T) {
	// 0b01110100 from High: bits 0..7 are 0,0,1,0,1,1,1,0.
	want := []format.Symbol{
		format.SymbolNoMid, format.SymbolNoMid, format.SymbolMid, format.SymbolMid,
		format.SymbolNoMid, format.SymbolMid, format.SymbolNoMid, format.SymbolNoMid,
	}

	var (
		got  []format.Symbol
		bits []int
	)
	for bit, sym := range Symbols([]byte{0x5A, 0xA6}) {
		bits = append(bits, bit)
		got = append(got, sym)
	}

	require.Equal(t, want, got)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, bits)
}

func TestSymbols_MatchesDecode(t *testing.T) {
	data := randomBytes(t, 32, 5)
	encoded := AppendEncode(nil, data)

	level := format.InitialLevel
	decoded := make([]byte, len(data))
	for bit, sym := range Symbols(encoded) {
		var b byte
		b, level = DecodeBit(sym, level)
		decoded[bit/8] |= b << (bit % 8)
	}

	require.Equal(t, data, decoded)
}

func TestSymbols_EarlyStopAndOddInput(t *testing.T) {
	count := 0
	for range Symbols([]byte{0xAA, 0xAA, 0x99, 0x99}) {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)

	count = 0
	for range Symbols([]byte{0xAA, 0xAA, 0x99}) {
		count++
	}
	require.Equal(t, 8, count)

	for range Symbols(nil) {
		t.Fatal("no symbols expected")
	}
}
