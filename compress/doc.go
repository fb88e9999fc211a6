// Package compress provides the payload codecs used by envelope frames.
//
// Line coding doubles the size of its input, so envelope payloads are compressed before
// they are line-coded. Four algorithms are available:
//   - None: payload stored as-is
//   - Zstd: best ratio; pure Go (klauspost/compress) by default, cgo (valyala/gozstd)
//     with the gozstd build tag
//   - S2: fast, moderate ratio
//   - LZ4: fastest decompression
//
// All codecs implement Codec:
//
//	codec, err := compress.CreateCodec(format.CompressionS2, "payload")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(data)
//
// Codecs are stateless values; pooled encoder state is shared through sync.Pool, so every
// codec is safe for concurrent use.
package compress
