package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	require.Equal(t, High, InitialLevel)
	require.Equal(t, Low, High.Not())
	require.Equal(t, High, Low.Not())

	require.Equal(t, Low, LevelOf(0xFE))
	require.Equal(t, High, LevelOf(0x01))
	require.Equal(t, byte(1), High.Bit())
	require.Equal(t, byte(0), Low.Bit())

	require.Equal(t, "High", High.String())
	require.Equal(t, "Low", Low.String())
	require.Equal(t, "Unknown", Level(7).String())
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		sym   Symbol
		valid bool
		str   string
	}{
		{SymbolMid, true, "10"},
		{SymbolNoMid, true, "01"},
		{Symbol(0b00), false, "00"},
		{Symbol(0b11), false, "11"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			require.Equal(t, tt.valid, tt.sym.IsValid())
			require.Equal(t, tt.str, tt.sym.String())
		})
	}
}

func TestCompressionType(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		require.True(t, ct.IsValid(), ct.String())

		parsed, err := ParseCompressionType(ct.String())
		require.NoError(t, err)
		require.Equal(t, ct, parsed)
	}

	require.False(t, CompressionType(0).IsValid())
	require.False(t, CompressionType(5).IsValid())
	require.Equal(t, "Unknown", CompressionType(5).String())

	parsed, err := ParseCompressionType("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, parsed)

	parsed, err = ParseCompressionType("ZSTD")
	require.NoError(t, err)
	require.Equal(t, CompressionZstd, parsed)

	_, err = ParseCompressionType("brotli")
	require.Error(t, err)
}
