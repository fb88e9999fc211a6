// Package endian provides the byte order abstraction used by the envelope header.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a single value can
// both fill a preallocated header and append one to a buffer.
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(hdr[4:8], rawLen)
//	hdr = engine.AppendUint64(hdr, sum)
//
// The engines are the immutable binary.LittleEndian and binary.BigEndian values and are safe
// for concurrent use.
package endian

import "encoding/binary"

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
