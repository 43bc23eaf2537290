package wire

import (
	"testing"

	"github.com/gizzmodev/emtrace/endian"
	"github.com/gizzmodev/emtrace/errs"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	out [][]byte
	err error
}

func (s *recordingSink) Begin(uintptr, uint64) error { return nil }

func (s *recordingSink) Out(b []byte) error {
	if s.err != nil {
		return s.err
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	s.out = append(s.out, cp)
	return nil
}

func TestWriterPutPointerLittleEndian(t *testing.T) {
	require := require.New(t)

	s := &recordingSink{}
	w := New(s, endian.GetLittleEndianEngine(), 8, 8)

	w.PutPointer(0x0102)

	require.NoError(w.Err())
	require.Equal([]byte{0x02, 0x01, 0, 0, 0, 0, 0, 0}, s.out[0])
}

func TestWriterPutSizeNarrowWidth(t *testing.T) {
	require := require.New(t)

	s := &recordingSink{}
	w := New(s, endian.GetLittleEndianEngine(), 2, 2)

	w.PutSize(300)

	require.NoError(w.Err())
	require.Equal([]byte{0x2C, 0x01}, s.out[0])
}

func TestWriterPutBytesAndByte(t *testing.T) {
	require := require.New(t)

	s := &recordingSink{}
	w := New(s, endian.GetLittleEndianEngine(), 8, 8)

	w.PutBytes([]byte("hi"))
	w.PutByte(0)

	require.NoError(w.Err())
	require.Equal([]byte("hi"), s.out[0])
	require.Equal([]byte{0}, s.out[1])
}

func TestWriterStopsAfterSinkError(t *testing.T) {
	require := require.New(t)

	sinkErr := errs.ErrSinkCapacityExceeded
	s := &recordingSink{err: sinkErr}
	w := New(s, endian.GetLittleEndianEngine(), 8, 8)

	w.PutPointer(1)
	require.ErrorIs(w.Err(), errs.ErrOut)
	require.ErrorIs(w.Err(), sinkErr)

	// a second call after an error is a no-op, not a second failed write.
	w.PutByte(9)
	require.Empty(s.out)
}

func TestWriterInvalidWidth(t *testing.T) {
	require := require.New(t)

	s := &recordingSink{}
	w := New(s, endian.GetLittleEndianEngine(), 8, 8)

	w.putWidth(1, 3)
	require.ErrorIs(w.Err(), errs.ErrInvalidSizeWidth)
}
