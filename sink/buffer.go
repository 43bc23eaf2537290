package sink

import (
	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/internal/pool"
)

// Buffer is an in-memory sink backed by a pooled, growable byte buffer,
// with an optional fixed capacity.
type Buffer struct {
	buf      *pool.ByteBuffer
	capacity uint64 // 0 means unbounded
}

// NewBuffer creates an unbounded in-memory sink.
func NewBuffer() *Buffer {
	return &Buffer{buf: pool.GetBuffer()}
}

// NewBoundedBuffer creates an in-memory sink whose Begin rejects, with
// errs.ErrSinkCapacityExceeded, any record whose reported total size
// exceeds capacity bytes.
func NewBoundedBuffer(capacity uint64) *Buffer {
	return &Buffer{buf: pool.GetBuffer(), capacity: capacity}
}

var _ Sink = (*Buffer)(nil)

// Begin checks totalSize against the buffer's capacity, if bounded. A
// record with a dynamically-sized argument carries a sentinel bit set
// high in totalSize (see config.Sentinels), so a bounded buffer whose
// capacity is below that sentinel value rejects it outright, since its
// true byte length can't be known ahead of serialization.
func (b *Buffer) Begin(_ uintptr, totalSize uint64) error {
	if b.capacity > 0 && totalSize > b.capacity {
		return errs.ErrSinkCapacityExceeded
	}

	return nil
}

// Out appends p to the buffer.
func (b *Buffer) Out(p []byte) error {
	_, err := b.buf.Write(p)
	return err
}

// Bytes returns the buffer's accumulated bytes.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.buf.Len() }

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() { b.buf.Reset() }

// Release returns the buffer's backing storage to the shared pool; the
// Buffer must not be used afterward.
func (b *Buffer) Release() { pool.PutBuffer(b.buf) }
