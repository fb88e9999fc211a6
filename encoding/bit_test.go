package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cdp/format"
)

func TestEncodeBit_TruthTable(t *testing.T) {
	tests := []struct {
		name      string
		level     format.Level
		bit       byte
		sym       format.Symbol
		nextLevel format.Level
	}{
		{"high level, bit 1", format.High, 1, format.SymbolMid, format.Low},
		{"high level, bit 0", format.High, 0, format.SymbolNoMid, format.High},
		{"low level, bit 0", format.Low, 0, format.SymbolMid, format.Low},
		{"low level, bit 1", format.Low, 1, format.SymbolNoMid, format.High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, next := EncodeBit(tt.bit, tt.level)
			require.Equal(t, tt.sym, sym)
			require.Equal(t, tt.nextLevel, next)

			bit, decNext := DecodeBit(sym, tt.level)
			require.Equal(t, tt.bit, bit)
			require.Equal(t, tt.nextLevel, decNext)
		})
	}
}

func TestEncodeBit_UsesOnlyLowBit(t *testing.T) {
	sym, next := EncodeBit(0xFF, format.High)
	require.Equal(t, format.SymbolMid, sym)
	require.Equal(t, format.Low, next)

	sym, next = EncodeBit(0xFE, format.High)
	require.Equal(t, format.SymbolNoMid, sym)
	require.Equal(t, format.High, next)
}

func TestDecodeBit_InvalidSymbolsActAsNoMid(t *testing.T) {
	for _, sym := range []format.Symbol{0b00, 0b11} {
		for _, level := range []format.Level{format.Low, format.High} {
			bit, next := DecodeBit(sym, level)
			wantBit, wantNext := DecodeBit(format.SymbolNoMid, level)
			require.Equal(t, wantBit, bit, "symbol %s at level %s", sym, level)
			require.Equal(t, wantNext, next)
		}
	}
}
