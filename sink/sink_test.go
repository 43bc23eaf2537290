package sink

import (
	"bytes"
	"sync"
	"testing"

	"github.com/gizzmodev/emtrace/errs"
	"github.com/stretchr/testify/require"
)

func TestBufferUnboundedAccumulates(t *testing.T) {
	require := require.New(t)

	b := NewBuffer()
	defer b.Release()

	require.NoError(b.Begin(0x1000, 12))
	require.NoError(b.Out([]byte{1, 2, 3}))
	require.NoError(b.Out([]byte{4, 5}))

	require.Equal([]byte{1, 2, 3, 4, 5}, b.Bytes())
	require.Equal(5, b.Len())
}

func TestBoundedBufferRejectsOversizedRecord(t *testing.T) {
	require := require.New(t)

	b := NewBoundedBuffer(4)
	defer b.Release()

	require.ErrorIs(b.Begin(0, 5), errs.ErrSinkCapacityExceeded)
}

func TestBoundedBufferRejectsDynamicSizeSentinel(t *testing.T) {
	require := require.New(t)

	b := NewBoundedBuffer(4)
	defer b.Release()

	// a record containing a dynamically-sized argument carries a high
	// sentinel bit regardless of the buffer's small capacity.
	require.ErrorIs(b.Begin(0, 1<<63), errs.ErrSinkCapacityExceeded)
}

func TestBoundedBufferAcceptsFittingRecord(t *testing.T) {
	require := require.New(t)

	b := NewBoundedBuffer(4)
	defer b.Release()

	require.NoError(b.Begin(0, 4))
}

func TestFileSinkWritesThrough(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	s := NewFile(&buf)

	require.NoError(s.Begin(0, 3))
	require.NoError(s.Out([]byte{1, 2, 3}))
	require.Equal([]byte{1, 2, 3}, buf.Bytes())
}

func TestGuardLocksOnBeginAndUnlocksOnEnd(t *testing.T) {
	require := require.New(t)

	var mu sync.Mutex
	s := Guard(&mu, NewBuffer())

	require.NoError(s.Begin(0, 0))

	locked := mu.TryLock()
	require.False(locked, "Begin should have locked mu")

	s.(Ender).End()

	locked = mu.TryLock()
	require.True(locked, "End should have unlocked mu")
	mu.Unlock()
}

func TestStdoutImplementsEnder(t *testing.T) {
	s := Stdout()
	_, ok := s.(Ender)
	require.True(t, ok)
}
