package envelope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cdp/endian"
	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader()

	require.NotNil(t, h)
	require.True(t, h.Flag.IsValidMagicNumber())
	require.False(t, h.Flag.IsBigEndian())
	require.Equal(t, format.CompressionNone, h.Flag.Compression)
	require.NoError(t, h.Flag.Validate())
}

func TestHeader_BytesParse(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		name := "little endian"
		if bigEndian {
			name = "big endian"
		}

		t.Run(name, func(t *testing.T) {
			original := NewHeader()
			if bigEndian {
				original.Flag.WithBigEndian()
			}
			original.Flag.Compression = format.CompressionS2
			original.RawLength = 4096
			original.PayloadLength = 1234
			original.Checksum = 0x0123456789ABCDEF

			data := original.Bytes()
			require.Len(t, data, HeaderSize)

			parsed := &Header{}
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *original, *parsed)
		})
	}
}

func TestHeader_Layout(t *testing.T) {
	h := NewHeader()
	h.Flag.WithBigEndian()
	h.Flag.Compression = format.CompressionLZ4
	h.RawLength = 0x01020304
	h.PayloadLength = 0x0A0B0C0D
	h.Checksum = 0x1122334455667788

	data := h.Bytes()
	require.Equal(t, []byte{0x11, 0xCD, 0x04, 0x00}, data[0:4], "options are always little-endian")
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data[4:8])
	require.Equal(t, []byte{0x0A, 0x0B, 0x0C, 0x0D}, data[8:12])
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, data[12:20])

	h.Flag.WithLittleEndian()
	data = h.Bytes()
	require.Equal(t, []byte{0x10, 0xCD}, data[0:2])
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, data[4:8])
}

func TestHeader_AppendToMatchesPut(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := NewHeader()
		if bigEndian {
			h.Flag.WithBigEndian()
		}
		h.Flag.Compression = format.CompressionZstd
		h.RawLength = 0xDEADBEEF
		h.PayloadLength = 0x00C0FFEE
		h.Checksum = 0xFEEDFACECAFEBEEF

		put := make([]byte, HeaderSize)
		h.Put(put)

		out := h.AppendTo([]byte{0xAA, 0x99})
		require.Len(t, out, 2+HeaderSize)
		require.Equal(t, []byte{0xAA, 0x99}, out[:2])
		require.Equal(t, put, out[2:])
	}
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := NewHeader().Bytes()

	t.Run("invalid size", func(t *testing.T) {
		err := (&Header{}).Parse(valid[:3])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("invalid magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[1] = 0xEA
		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("reserved bits", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] |= 0x04
		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("reserved byte", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[3] = 0x01
		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("invalid compression", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[2] = 0x09
		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestParseHeader(t *testing.T) {
	h := NewHeader()
	h.RawLength = 7
	frame := append(h.Bytes(), 1, 2, 3)

	parsed, err := ParseHeader(frame)
	require.NoError(t, err)
	require.Equal(t, uint32(7), parsed.RawLength)

	_, err = ParseHeader(frame[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestFlag_Endianness(t *testing.T) {
	f := NewFlag()
	require.Equal(t, endian.GetLittleEndianEngine(), f.GetEndianEngine())

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), f.GetEndianEngine())
	require.True(t, f.IsValidMagicNumber(), "endianness bit must not disturb the magic")

	f.WithLittleEndian()
	require.False(t, f.IsBigEndian())
}
