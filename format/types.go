package format

import (
	"fmt"
	"strings"
)

type (
	Level           uint8
	Symbol          uint8
	CompressionType uint8
)

const (
	Low  Level = 0 // Low represents the low signal level.
	High Level = 1 // High represents the high signal level.

	// InitialLevel is the signal level every encode and decode call starts from.
	InitialLevel = High
)

const (
	SymbolNoMid Symbol = 0b01 // SymbolNoMid is "01": no mid-cell transition.
	SymbolMid   Symbol = 0b10 // SymbolMid is "10": mid-cell transition.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// LevelOf returns the level matching the least-significant bit of b.
func LevelOf(b byte) Level {
	return Level(b & 0x01)
}

// Not returns the complementary level.
func (l Level) Not() Level {
	return l ^ High
}

// Bit returns the level as a 0 or 1 bit value.
func (l Level) Bit() byte {
	return byte(l & 0x01)
}

func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the two symbols a valid stream can carry.
func (s Symbol) IsValid() bool {
	return s == SymbolMid || s == SymbolNoMid
}

func (s Symbol) String() string {
	return fmt.Sprintf("%02b", uint8(s&0b11))
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType parses a compression name as printed by CompressionType.String.
// Matching is case-insensitive.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", name)
	}
}
