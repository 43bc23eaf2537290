// Package magic builds the single fixed record a host-side decoder uses
// to anchor itself in a running program's section image: a constant
// identifier, the ABI widths the rest of the section was written with,
// an endianness probe, and the two dynamic-size sentinel values.
package magic

import (
	"unsafe"

	"github.com/gizzmodev/emtrace/config"
	"github.com/gizzmodev/emtrace/endian"
	"github.com/gizzmodev/emtrace/section"
	"github.com/gizzmodev/emtrace/sink"
	"github.com/gizzmodev/emtrace/wire"
)

// HeaderLen is the fixed byte length of the magic record's header (the
// 32-byte identifier plus the four ABI bytes), recorded in the record itself so a
// decoder can sanity-check its own layout assumptions.
const HeaderLen = 36

// id is the 32-byte fixed identifier a decoder scans a section for.
var id = [32]byte{
	0xd1, 0x97, 0xf5, 0x22, 0xd9, 0x26, 0x9f, 0xd1,
	0xad, 0x70, 0x33, 0x92, 0xf6, 0x59, 0xdf, 0xd0,
	0xfb, 0xec, 0xbd, 0x60, 0x97, 0x13, 0x25, 0xe8,
	0x92, 0x01, 0xb2, 0x5a, 0x38, 0x5d, 0x9e, 0xc7,
}

// ID returns the 32-byte fixed identifier a decoder scans a section for.
func ID() [32]byte { return id }

// Record is one built magic record: its exact on-wire bytes and the
// address a decoder reaches it at.
type Record struct {
	cfg   *config.Config
	bytes []byte
}

// New builds the magic record for cfg: the 32-byte identifier, the
// header length and ABI widths, an endianness probe, and the
// NullTerminated/LengthPrefixed sentinel values, all encoded with
// cfg.Engine.
func New(cfg *config.Config) *Record {
	w := cfg.SizeWidth
	size := len(id) + 4 + 3*w
	// Place the record at an address aligned to 2^AlignmentPower, like a
	// descriptor, so AlignedAddr's shift loses no set bits.
	align := int(cfg.Alignment())
	raw := make([]byte, size+align-1)
	off := 0
	if r := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(align)); r != 0 {
		off = align - r
	}
	b := raw[off : off : off+size]
	b = append(b, id[:]...)
	b = append(b, byte(HeaderLen), byte(w), byte(cfg.PointerWidth), byte(cfg.AlignmentPower))
	b = append(b, endian.Probe(cfg.Engine, w)...)

	nt, lp := cfg.Sentinels()
	b = append(b, endian.PutWidth(cfg.Engine, nt, w)...)
	b = append(b, endian.PutWidth(cfg.Engine, lp, w)...)

	return &Record{cfg: cfg, bytes: b}
}

// Bytes returns the record's exact on-wire byte image.
func (r *Record) Bytes() []byte { return r.bytes }

// AlignedAddr returns the record's backing-array address shifted right
// by cfg.AlignmentPower, the same treatment every descriptor address
// gets before going on the wire.
func (r *Record) AlignedAddr() uintptr {
	return uintptr(unsafe.Pointer(&r.bytes[0])) >> uint(r.cfg.AlignmentPower)
}

// Init builds the magic record for cfg, installs it as reg's magic
// record, and serializes its aligned address into s. This anchors a
// decoder reading s's output to the running program's load address; it
// must run before the first Trace/Traceln call that shares reg and s.
func Init(cfg *config.Config, reg *section.Registry, s sink.Sink) error {
	rec := New(cfg)
	if err := reg.SetMagic(rec.Bytes()); err != nil {
		return err
	}

	w := wire.New(s, cfg.Engine, cfg.PointerWidth, cfg.SizeWidth)
	w.PutPointer(rec.AlignedAddr())

	return w.Err()
}
