package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/cdp/bitfmt"
	"github.com/arloliu/cdp/encoding"
	"github.com/arloliu/cdp/envelope"
)

const knownByte = 0b01110100

const separator = "--------------------------------"

func runChecks(w io.Writer, log *zap.Logger, cfg config) bool {
	ok := true

	data := randomBytes(cfg.size, cfg.seed)
	results := []struct {
		name string
		pass bool
	}{
		{"CHECK 0", checkKnownByte(w, log)},
		{"CHECK 1", checkRandom(w, log, data, cfg.show)},
	}
	if cfg.envelope {
		results = append(results, struct {
			name string
			pass bool
		}{"CHECK 2", checkEnvelope(w, log, data, cfg)})
	}

	fmt.Fprintf(w, "\n%s\n\n", separator)
	for _, r := range results {
		status := "OK"
		if !r.pass {
			status = "FAIL"
			ok = false
		}
		fmt.Fprintf(w, "%s Result - %s\n", r.name, status)
	}

	return ok
}

func checkKnownByte(w io.Writer, log *zap.Logger) bool {
	fmt.Fprintf(w, "\n%s\n\nCHECK 0:\n\n", separator)

	line := make([]byte, encoding.EncodedLen(1))
	if _, err := encoding.Encode(line, []byte{knownByte}); err != nil {
		log.Error("encode failed", zap.Error(err))
		return false
	}

	decoded := make([]byte, 1)
	if _, err := encoding.Decode(decoded, line, encoding.WithStrictSymbols()); err != nil {
		log.Error("decode failed", zap.Error(err))
		return false
	}

	fmt.Fprintf(w, "Input data:   %s\n", bitfmt.Byte(knownByte))
	fmt.Fprintf(w, "Encoded data: %s\n", bitfmt.Bytes(line, ", "))
	fmt.Fprintf(w, "Decoded data: %s\n", bitfmt.Byte(decoded[0]))
	fmt.Fprintf(w, "Symbols:      %s\n", symbolDump(line))

	if decoded[0] != knownByte {
		log.Error("decoded byte differs from input",
			zap.String("input", bitfmt.Byte(knownByte)),
			zap.String("decoded", bitfmt.Byte(decoded[0])))

		return false
	}

	return true
}

func checkRandom(w io.Writer, log *zap.Logger, data []byte, show bool) bool {
	fmt.Fprintf(w, "\n%s\n\nCHECK 1:\n\n", separator)
	log.Debug("random round trip", zap.Int("size", len(data)))

	line := make([]byte, encoding.EncodedLen(len(data)))
	if _, err := encoding.Encode(line, data); err != nil {
		log.Error("encode failed", zap.Int("size", len(data)), zap.Error(err))
		return false
	}

	decoded := make([]byte, len(data))
	if _, err := encoding.Decode(decoded, line, encoding.WithStrictSymbols(), encoding.WithStrictLength()); err != nil {
		log.Error("decode failed", zap.Int("size", len(data)), zap.Error(err))
		return false
	}

	if show {
		fmt.Fprintf(w, "Input data:\n%s\n\n", bitfmt.Bytes(data, ""))
		fmt.Fprintf(w, "Encoded data:\n%s\n\n", bitfmt.Bytes(line, ""))
		fmt.Fprintf(w, "Decoded data:\n%s\n\n", bitfmt.Bytes(decoded, ""))
	}

	fmt.Fprintln(w, "Comparing decoded bytes with original input bytes...")
	if mismatches := compareBytes(w, data, decoded); mismatches > 0 {
		log.Error("decoded data differs from input", zap.Int("mismatches", mismatches))
		fmt.Fprintln(w, "Error, decoded data != input data.")

		return false
	}
	fmt.Fprintln(w, "Ok, decoded data == input data.")

	return true
}

func checkEnvelope(w io.Writer, log *zap.Logger, data []byte, cfg config) bool {
	fmt.Fprintf(w, "\n%s\n\nCHECK 2:\n\n", separator)

	line, err := envelope.Seal(data, envelope.WithCompression(cfg.compression))
	if err != nil {
		log.Error("seal failed", zap.Stringer("compression", cfg.compression), zap.Error(err))
		return false
	}

	header, err := envelope.PeekHeader(line)
	if err != nil {
		log.Error("header decode failed", zap.Error(err))
		return false
	}
	log.Debug("sealed envelope",
		zap.Stringer("requested", cfg.compression),
		zap.Stringer("compression", header.Flag.Compression),
		zap.Uint32("raw", header.RawLength),
		zap.Uint32("payload", header.PayloadLength),
		zap.Int("line", len(line)))

	fmt.Fprintf(w, "Envelope: %d raw bytes, %d payload bytes (%s), %d line-coded bytes\n",
		header.RawLength, header.PayloadLength, header.Flag.Compression, len(line))

	restored, err := envelope.Open(line)
	if err != nil {
		log.Error("open failed", zap.Error(err))
		return false
	}

	if !bytes.Equal(data, restored) {
		log.Error("envelope data differs from input", zap.Int("mismatches", compareBytes(w, data, restored)))
		return false
	}
	fmt.Fprintln(w, "Ok, opened envelope == input data.")

	return true
}

// compareBytes prints every differing byte and returns how many differ.
func compareBytes(w io.Writer, want, got []byte) int {
	mismatches := 0
	for i := range max(len(want), len(got)) {
		if i < len(want) && i < len(got) && want[i] == got[i] {
			continue
		}

		mismatches++
		if i >= len(want) || i >= len(got) {
			fmt.Fprintf(w, "Byte %d - FAIL! length %d != %d\n", i, len(want), len(got))
			break
		}
		fmt.Fprintf(w, "Byte %d - FAIL!\n    Input byte != Decoded byte\n", i)
		fmt.Fprintf(w, "%s != %s\n", bitfmt.Byte(want[i]), bitfmt.Byte(got[i]))
	}

	return mismatches
}

func symbolDump(line []byte) string {
	var sb strings.Builder
	for i, sym := range encoding.Symbols(line) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym.String())
	}

	return sb.String()
}

func randomBytes(n int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rng.Uint32())
	}

	return data
}
