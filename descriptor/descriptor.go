// Package descriptor builds the fixed-size byte image a call site's
// format string, argument schema tree, and source location compile
// down to: an offset table of size-field-wide entries followed by a
// data blob of null-terminated strings.
//
// Go has no constexpr-style compile-time byte construction, so a
// Descriptor is instead built once, at package `var` initialization
// time, and self-registers into a section.Registry the moment it is
// built — the closest Go analog to populating each descriptor into a
// reserved, section-placed byte array on program start.
package descriptor

import (
	"unsafe"

	"github.com/gizzmodev/emtrace/config"
	"github.com/gizzmodev/emtrace/endian"
	"github.com/gizzmodev/emtrace/internal/options"
	"github.com/gizzmodev/emtrace/schema"
	"github.com/gizzmodev/emtrace/section"
)

// Descriptor is one call site's built byte image.
type Descriptor struct {
	cfg     *config.Config
	bytes   []byte
	format  string
	file    string
	line    int
	args    []schema.Schema
	section string
}

// New builds the descriptor for a call site with format string format,
// source file file, line number line, and argument schemas args (in
// declared order), applies opts, self-registers into the resolved
// section.Registry, and returns the built Descriptor.
func New(cfg *config.Config, format, file string, line int, args []schema.Schema, opts ...Option) (*Descriptor, error) {
	bo := &buildOpts{section: cfg.Section}
	if err := options.Apply(bo, opts...); err != nil {
		return nil, err
	}

	formatter := config.NoFormat
	if len(args) > 0 {
		formatter = config.PyFormat
	}
	if bo.formatter != nil {
		formatter = *bo.formatter
	}

	entries := 2 // n, format-string offset
	for _, a := range args {
		entries += 3 + 4*len(a.Descendants)
	}
	entries += 3 // formatter, src offset, line
	tableLen := entries * cfg.SizeWidth

	var blob []byte
	appendStr := func(s string) int {
		off := tableLen + len(blob)
		blob = append(blob, s...)
		blob = append(blob, 0)

		return off
	}

	fmtOffset := appendStr(format)

	type argOffsets struct {
		id          int
		descendants []descendantOffsets
	}
	offs := make([]argOffsets, len(args))
	for i, a := range args {
		ao := argOffsets{id: appendStr(a.ID)}
		ao.descendants = make([]descendantOffsets, len(a.Descendants))
		for j, d := range a.Descendants {
			ao.descendants[j] = descendantOffsets{name: appendStr(d.Name), id: appendStr(d.ID)}
		}
		offs[i] = ao
	}

	srcOffset := appendStr(file)

	var table []byte
	putWord := func(v uint64) {
		table = append(table, endian.PutWidth(cfg.Engine, v, cfg.SizeWidth)...)
	}
	putSizeClass := func(sc schema.SizeClass) {
		putWord(sizeClassWord(cfg, sc))
	}

	putWord(uint64(len(args)))
	putWord(uint64(fmtOffset))
	for i, a := range args {
		putWord(uint64(offs[i].id))
		putSizeClass(a.Size)
		putWord(uint64(a.NumChildren))
		for j, d := range a.Descendants {
			putWord(uint64(offs[i].descendants[j].name))
			putWord(uint64(offs[i].descendants[j].id))
			putSizeClass(d.Size)
			putWord(uint64(d.NumChildren))
		}
	}
	putWord(uint64(formatter))
	putWord(uint64(srcOffset))
	putWord(uint64(line))

	// Place the image at an address aligned to 2^AlignmentPower, so the
	// shifted address AlignedAddr puts on the wire loses no set bits.
	n := len(table) + len(blob)
	align := int(cfg.Alignment())
	raw := make([]byte, n+align-1)
	off := 0
	if r := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(align)); r != 0 {
		off = align - r
	}
	img := append(append(raw[off:off:off+n], table...), blob...)

	d := &Descriptor{
		cfg:     cfg,
		bytes:   img,
		format:  format,
		file:    file,
		line:    line,
		args:    args,
		section: bo.section,
	}

	if err := section.For(d.section).Add(d.bytes); err != nil {
		return nil, err
	}

	return d, nil
}

type descendantOffsets struct {
	name int
	id   int
}

func sizeClassWord(cfg *config.Config, sc schema.SizeClass) uint64 {
	switch sc.Kind {
	case schema.NullTerminated:
		nt, _ := cfg.Sentinels()
		return nt
	case schema.LengthPrefixed:
		_, lp := cfg.Sentinels()
		return lp
	default:
		return uint64(sc.N)
	}
}

// Bytes returns the descriptor's exact on-wire byte image.
func (d *Descriptor) Bytes() []byte { return d.bytes }

// Args returns the descriptor's argument schemas, in declared order.
func (d *Descriptor) Args() []schema.Schema { return d.args }

// Section returns the name of the section.Registry this descriptor
// registered itself into.
func (d *Descriptor) Section() string { return d.section }

// Config returns the build configuration this descriptor was built with.
func (d *Descriptor) Config() *config.Config { return d.cfg }

// AlignedAddr returns the descriptor's backing-array address shifted
// right by cfg.AlignmentPower, the value that actually goes on the wire.
func (d *Descriptor) AlignedAddr() uintptr {
	return uintptr(unsafe.Pointer(&d.bytes[0])) >> uint(d.cfg.AlignmentPower)
}
