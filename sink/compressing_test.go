package sink

import (
	"errors"
	"testing"

	"github.com/gizzmodev/emtrace/compress"
	"github.com/gizzmodev/emtrace/errs"
	"github.com/stretchr/testify/require"
)

func TestCompressingFlushesOnEnd(t *testing.T) {
	require := require.New(t)

	inner := NewBuffer()
	defer inner.Release()

	s := NewCompressing(compress.NewNoOpCompressor(), inner)

	require.NoError(s.Begin(0, 5))
	require.NoError(s.Out([]byte("hel")))
	require.NoError(s.Out([]byte("lo")))
	require.Empty(inner.Bytes(), "inner should not receive bytes before End")

	s.(Ender).End()

	require.Equal([]byte("hello"), inner.Bytes())
}

// failingCodec fails every Compress call, to exercise the sticky-error
// path compressing.End takes when it can't return an error directly.
type failingCodec struct{}

func (failingCodec) Compress([]byte) ([]byte, error)   { return nil, errors.New("boom") }
func (failingCodec) Decompress([]byte) ([]byte, error) { return nil, errors.New("boom") }

// failingOutSink accepts Begin but fails every Out call.
type failingOutSink struct{}

func (failingOutSink) Begin(uintptr, uint64) error { return nil }
func (failingOutSink) Out([]byte) error            { return errors.New("disk full") }

func TestCompressingSurfacesCompressErrorOnNextBegin(t *testing.T) {
	require := require.New(t)

	inner := NewBuffer()
	defer inner.Release()

	s := NewCompressing(failingCodec{}, inner)

	require.NoError(s.Begin(0, 3))
	require.NoError(s.Out([]byte("abc")))
	s.(Ender).End()

	err := s.Begin(0, 3)
	require.ErrorIs(err, errs.ErrCompressFailed)
}

func TestCompressingSurfacesInnerOutErrorOnNextBegin(t *testing.T) {
	require := require.New(t)

	s := NewCompressing(compress.NewNoOpCompressor(), failingOutSink{})

	require.NoError(s.Begin(0, 3))
	require.NoError(s.Out([]byte("abc")))
	s.(Ender).End()

	err := s.Begin(0, 3)
	require.ErrorIs(err, errs.ErrOut)
}

func TestCompressingStickyErrorClearsAfterSurfacing(t *testing.T) {
	require := require.New(t)

	inner := NewBuffer()
	defer inner.Release()

	s := NewCompressing(failingCodec{}, inner)

	require.NoError(s.Begin(0, 3))
	require.NoError(s.Out([]byte("abc")))
	s.(Ender).End()

	require.Error(s.Begin(0, 3))
	require.NoError(s.Begin(0, 3), "sticky error should surface once, not repeat")
}
