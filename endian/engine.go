// Package endian provides the EndianEngine abstraction config.Config
// selects between, plus Probe and PutWidth, the two byte-order-aware
// helpers the magic record and wire.Writer build their width-
// parameterized fields on top of.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a
// config can hold a single value that both encodes into an existing
// buffer and appends to a growing one. binary.LittleEndian and
// binary.BigEndian both already satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order, probed by
// reading the low byte of a known uint16 value back out as a byte.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native
// byte order, i.e. whether a trace section written with engine will need
// byte-swapping when read on this host.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Probe returns a width-byte buffer containing the integer 0x...03020100
// (bytes 0x00, 0x01, 0x02, ... up to width-1) serialized with engine.
//
// This is the magic record's endianness probe: a host-side decoder
// reads these bytes back and compares them against 0, 1, 2, ... to
// learn which byte order the rest of the section was written in.
func Probe(engine EndianEngine, width int) []byte {
	b := make([]byte, width)
	for i := range b {
		b[i] = byte(i)
	}

	// b already holds the probe pattern in ascending-byte-index order;
	// re-encoding it as an integer and writing it back out with engine
	// ensures the result reflects engine's byte order rather than the
	// host's, which matters when engine differs from the native order.
	switch width {
	case 1:
		return b
	case 2:
		v := uint16(b[0]) | uint16(b[1])<<8
		engine.PutUint16(b, v)
	case 4:
		v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		engine.PutUint32(b, v)
	case 8:
		var v uint64
		for i := 0; i < 8; i++ {
			v |= uint64(b[i]) << (8 * i)
		}
		engine.PutUint64(b, v)
	case 16:
		var lo, hi uint64
		for i := 0; i < 8; i++ {
			lo |= uint64(b[i]) << (8 * i)
		}
		for i := 0; i < 8; i++ {
			hi |= uint64(b[8+i]) << (8 * i)
		}
		if engine == GetBigEndianEngine() {
			engine.PutUint64(b[0:8], hi)
			engine.PutUint64(b[8:16], lo)
		} else {
			engine.PutUint64(b[0:8], lo)
			engine.PutUint64(b[8:16], hi)
		}
	}

	return b
}

// PutWidth encodes v into a freshly allocated width-byte buffer using
// engine's byte order. width must be 1, 2, 4, 8, or 16; for 16, v fills
// the low 64 bits and the high 64 bits are always zero, since Go has no
// native 128-bit integer (see DESIGN.md).
func PutWidth(engine EndianEngine, v uint64, width int) []byte {
	b := make([]byte, width)
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		engine.PutUint16(b, uint16(v))
	case 4:
		engine.PutUint32(b, uint32(v))
	case 8:
		engine.PutUint64(b, v)
	case 16:
		lo, hi := v, uint64(0)
		if engine == GetBigEndianEngine() {
			engine.PutUint64(b[0:8], hi)
			engine.PutUint64(b[8:16], lo)
		} else {
			engine.PutUint64(b[0:8], lo)
			engine.PutUint64(b[8:16], hi)
		}
	}

	return b
}
