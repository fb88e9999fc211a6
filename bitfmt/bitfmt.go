// Package bitfmt renders bytes as binary strings, most-significant bit first.
package bitfmt

import "strings"

// AppendByte appends the 8-character binary form of b to dst.
func AppendByte(dst []byte, b byte) []byte {
	for i := 7; i >= 0; i-- {
		dst = append(dst, '0'+(b>>i)&0x01)
	}

	return dst
}

// Byte returns the binary form of b, e.g. Byte(0x74) == "01110100".
func Byte(b byte) string {
	return string(AppendByte(make([]byte, 0, 8), b))
}

// Bytes returns the binary form of every byte in bs, joined by sep.
func Bytes(bs []byte, sep string) string {
	if len(bs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(bs)*8 + (len(bs)-1)*len(sep))
	buf := make([]byte, 0, 8)
	for i, b := range bs {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.Write(AppendByte(buf[:0], b))
	}

	return sb.String()
}
