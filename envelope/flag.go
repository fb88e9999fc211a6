package envelope

import (
	"fmt"

	"github.com/arloliu/cdp/endian"
	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
)

const (
	// Bit masks of the Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicV1Opt is the version 1 magic number of the envelope format.
	MagicV1Opt = 0xCD10
)

// Flag holds the packed options and the compression type of an envelope header.
type Flag struct {
	// Options is a packed field, always stored little-endian.
	// Bit 0 is the endianness of the remaining header fields, 0 little-endian, 1 big-endian.
	// Bit 1-3 are reserved, must be 0.
	// Bit 4-15 are the magic number, 0xCD1 for version 1.
	Options uint16

	// Compression is the algorithm the payload was compressed with.
	Compression format.CompressionType
}

// NewFlag returns a version 1 flag: little-endian, no compression.
func NewFlag() Flag {
	return Flag{
		Options:     MagicV1Opt,
		Compression: format.CompressionNone,
	}
}

func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// GetEndianEngine returns the engine for the header fields after the Options field.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

func (f Flag) IsValidMagicNumber() bool {
	return f.Options&MagicNumberMask == MagicV1Opt
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagic, f.Options&MagicNumberMask)
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04X", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if !f.Compression.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(f.Compression))
	}

	return nil
}
