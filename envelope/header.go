package envelope

import (
	"fmt"

	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
)

// HeaderSize is the size of the plain (not line-coded) envelope header in bytes.
const HeaderSize = 20

// Header is the fixed-size section at the start of every envelope.
type Header struct {
	// Flag holds the magic number, endianness and compression type.
	Flag Flag // byte offset 0-2, byte 3 is reserved
	// RawLength is the length of the original data.
	RawLength uint32 // byte offset 4-7
	// PayloadLength is the length of the payload following the header.
	PayloadLength uint32 // byte offset 8-11
	// Checksum is the xxHash64 of the original data.
	Checksum uint64 // byte offset 12-19
}

// NewHeader creates a header with a default flag and zero lengths.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Put serializes the header into b, which must hold at least HeaderSize bytes.
func (h *Header) Put(b []byte) {
	_ = b[HeaderSize-1]

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = byte(h.Flag.Compression)
	b[3] = 0

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.RawLength)
	engine.PutUint32(b[8:12], h.PayloadLength)
	engine.PutUint64(b[12:20], h.Checksum)
}

// AppendTo appends the HeaderSize-byte serialization of the header to b.
func (h *Header) AppendTo(b []byte) []byte {
	b = append(b, byte(h.Flag.Options), byte(h.Flag.Options>>8), byte(h.Flag.Compression), 0)

	engine := h.Flag.GetEndianEngine()
	b = engine.AppendUint32(b, h.RawLength)
	b = engine.AppendUint32(b, h.PayloadLength)

	return engine.AppendUint64(b, h.Checksum)
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagic, ErrInvalidHeaderFlags or ErrInvalidCompression
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = format.CompressionType(data[2])
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte 0x%02X", errs.ErrInvalidHeaderFlags, data[3])
	}

	engine := h.Flag.GetEndianEngine()
	h.RawLength = engine.Uint32(data[4:8])
	h.PayloadLength = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return nil
}

// ParseHeader parses a Header from the start of data.
//
// Parameters:
//   - data: Plain envelope bytes (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header
//   - error: Size or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
