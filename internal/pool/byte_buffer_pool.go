// Package pool provides a sync.Pool-backed byte buffer used by the
// in-memory sink (sink.NewBuffer) to avoid per-call allocation.
package pool

import (
	"io"
	"sync"
)

// RecordBufferDefaultSize is the default capacity of a ByteBuffer obtained
// from the default pool, sized for a typical trace record (pointer field
// plus a handful of small arguments).
const (
	RecordBufferDefaultSize  = 256        // 256B, comfortably covers most trace records
	RecordBufferMaxThreshold = 1024 * 128 // 128KiB, buffers larger than this are discarded rather than pooled
)

// ByteBuffer is a reusable, growable byte slice, sized for buffering one
// trace record's bytes between sink.Out calls (sink.NewBuffer's backing
// store).
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with defaultSize bytes of capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffer's contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer without releasing its backing array, so it
// can absorb the next record.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently buffered.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer if needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating; a no-op if it already can.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RecordBufferDefaultSize
	if cap(bb.B) > 4*RecordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer by appending data.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// WriteTo implements io.WriterTo, writing the buffered bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers so emitting a record doesn't allocate
// a fresh buffer every call.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize
// bytes; a buffer grown past maxThreshold bytes is dropped on Put
// instead of being retained, so one outsized record doesn't permanently
// bloat the pool.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool, resetting it first.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)

// GetBuffer retrieves a ByteBuffer from the package-level default pool.
func GetBuffer() *ByteBuffer {
	return defaultPool.Get()
}

// PutBuffer returns bb to the package-level default pool.
func PutBuffer(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
