package cdp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cdp/envelope"
	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
)

// TestEncodeToBytes_KnownVector verifies the wire layout of 0b01110100
func TestEncodeToBytes_KnownVector(t *testing.T) {
	line := EncodeToBytes([]byte{0b01110100})
	require.Equal(t, []byte{0x5A, 0xA6}, line)

	raw, err := DecodeToBytes(line, WithStrictSymbols(), WithStrictLength())
	require.NoError(t, err)
	require.Equal(t, []byte{0b01110100}, raw)
}

// TestEncodeDecode_CallerBuffers verifies the buffer entry points and their capacity checks
func TestEncodeDecode_CallerBuffers(t *testing.T) {
	src := []byte("cdp")

	dst := make([]byte, EncodedLen(len(src)))
	n, err := Encode(dst, src)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	out := make([]byte, DecodedLen(n))
	n, err = Decode(out, dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, src, out)

	_, err = Encode(make([]byte, 1), []byte{0x01})
	require.ErrorIs(t, err, errs.ErrShortBuffer)

	_, err = Decode(make([]byte, 1), make([]byte, 4))
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

// TestDecodeToBytes_Strict verifies options are forwarded
func TestDecodeToBytes_Strict(t *testing.T) {
	raw, err := DecodeToBytes([]byte{0xAA, 0xAA, 0x99})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, raw)

	_, err = DecodeToBytes([]byte{0xAA, 0xAA, 0x99}, WithStrictLength())
	require.ErrorIs(t, err, errs.ErrOddLength)

	_, err = DecodeToBytes([]byte{0x00, 0x00}, WithStrictSymbols())
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
}

// TestEncodeToBytes_Empty verifies zero-length input
func TestEncodeToBytes_Empty(t *testing.T) {
	require.Empty(t, EncodeToBytes(nil))

	raw, err := DecodeToBytes(nil)
	require.NoError(t, err)
	require.Empty(t, raw)
}

// TestSealOpen verifies the envelope wrappers
func TestSealOpen(t *testing.T) {
	data := []byte("a sealed line-coded payload, a sealed line-coded payload")

	line, err := Seal(data, envelope.WithCompression(format.CompressionZstd), envelope.WithBigEndian())
	require.NoError(t, err)

	restored, err := Open(line)
	require.NoError(t, err)
	require.Equal(t, data, restored)

	line[0] ^= 0x01
	_, err = Open(line)
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
}
