// Package wire provides the low-level byte writer used by the emit
// primitive and the type schema serializers to push width-parameterized
// pointer and size fields into a sink.Sink.
package wire

import (
	"fmt"

	"github.com/gizzmodev/emtrace/endian"
	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/sink"
)

// Writer streams bytes directly to a sink.Sink, one Out call per Put.
// Each width-parameterized field is encoded by endian.PutWidth, which
// allocates a fresh buffer per field, and then copied into a fixed-size
// scratch array before the Out call; the emit path is not allocation-free.
type Writer struct {
	sink      sink.Sink
	engine    endian.EndianEngine
	ptrWidth  int
	sizeWidth int
	scratch   [16]byte
	err       error
}

// New creates a Writer that serializes pointer fields with ptrWidth bytes
// and size fields with sizeWidth bytes, in engine's byte order, writing
// through to s.
func New(s sink.Sink, engine endian.EndianEngine, ptrWidth, sizeWidth int) *Writer {
	return &Writer{sink: s, engine: engine, ptrWidth: ptrWidth, sizeWidth: sizeWidth}
}

// Err returns the first error encountered by any Put call, if any.
// Subsequent Put calls after an error become no-ops.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) putWidth(v uint64, width int) {
	if w.err != nil {
		return
	}

	switch width {
	case 1, 2, 4, 8, 16:
	default:
		w.err = fmt.Errorf("%w: %d", errs.ErrInvalidSizeWidth, width)
		return
	}

	b := w.scratch[:width]
	copy(b, endian.PutWidth(w.engine, v, width))

	if err := w.sink.Out(b); err != nil {
		w.err = fmt.Errorf("%w: %w", errs.ErrOut, err)
	}
}

// PutPointer serializes v as a pointer-width field.
func (w *Writer) PutPointer(v uintptr) {
	w.putWidth(uint64(v), w.ptrWidth)
}

// PutSize serializes v as a size-field-width field.
func (w *Writer) PutSize(v uint64) {
	w.putWidth(v, w.sizeWidth)
}

// PutBytes writes b through to the sink unmodified (the caller is
// responsible for byte order of any multi-byte values within b).
func (w *Writer) PutBytes(b []byte) {
	if w.err != nil || len(b) == 0 {
		return
	}
	if err := w.sink.Out(b); err != nil {
		w.err = fmt.Errorf("%w: %w", errs.ErrOut, err)
	}
}

// PutByte writes a single byte through to the sink.
func (w *Writer) PutByte(b byte) {
	if w.err != nil {
		return
	}
	w.scratch[0] = b
	if err := w.sink.Out(w.scratch[:1]); err != nil {
		w.err = fmt.Errorf("%w: %w", errs.ErrOut, err)
	}
}

// PutNativeInt writes v's width bytes in engine's byte order, using
// exactly width bytes (1, 2, 4, or 8). This is used to serialize
// fixed-size numeric arguments; engine is the configured wire byte
// order, which need not be the host's native order.
func (w *Writer) PutNativeInt(v uint64, width int) {
	w.putWidth(v, width)
}

// PointerWidth returns the configured pointer field width in bytes.
func (w *Writer) PointerWidth() int { return w.ptrWidth }

// SizeWidth returns the configured size field width in bytes.
func (w *Writer) SizeWidth() int { return w.sizeWidth }

// Engine returns the configured endian engine.
func (w *Writer) Engine() endian.EndianEngine { return w.engine }
