package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses payloads with S2, a Snappy-compatible block format.
//
// An S2 block starts with a varint of its decoded length, so the output size is known
// before anything is decoded.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes one S2 block, allocating the length the block declares.
// Empty input yields nil.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressLimited rejects a block whose declared length exceeds limit before
// allocating. Empty input yields nil.
func (c S2Compressor) DecompressLimited(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	if size > limit {
		return nil, errSizeExceeded(uint64(size), limit)
	}

	return s2.Decode(make([]byte, size), data)
}
