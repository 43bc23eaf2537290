package schema

import (
	"testing"

	"github.com/gizzmodev/emtrace/endian"
	"github.com/gizzmodev/emtrace/sink"
	"github.com/gizzmodev/emtrace/wire"
	"github.com/stretchr/testify/require"
)

func newTestWriter(s sink.Sink) *wire.Writer {
	return wire.New(s, endian.GetLittleEndianEngine(), 8, 8)
}

func TestArgWriteFramedStatic(t *testing.T) {
	require := require.New(t)

	buf := sink.NewBuffer()
	arg := Signed64[int32]().Arg(7)

	w := newTestWriter(buf)
	arg.WriteFramed(w)

	require.NoError(w.Err())
	require.Equal([]byte{7, 0, 0, 0}, buf.Bytes())
}

func TestArgWriteFramedString(t *testing.T) {
	require := require.New(t)

	buf := sink.NewBuffer()
	arg := Str().Arg("hi")

	w := newTestWriter(buf)
	arg.WriteFramed(w)

	require.NoError(w.Err())
	require.Equal([]byte{'h', 'i', 0}, buf.Bytes())
}

func TestArgWriteFramedListCarriesElementCount(t *testing.T) {
	require := require.New(t)

	buf := sink.NewBuffer()
	arg := List(Signed64[int32]()).Arg([]int32{1, 3, 4, 6})

	w := newTestWriter(buf)
	arg.WriteFramed(w)

	require.NoError(w.Err())
	// 8-byte size field holding element count 4, then the four i32s.
	want := []byte{4, 0, 0, 0, 0, 0, 0, 0}
	want = append(want, 1, 0, 0, 0)
	want = append(want, 3, 0, 0, 0)
	want = append(want, 4, 0, 0, 0)
	want = append(want, 6, 0, 0, 0)
	require.Equal(want, buf.Bytes())
}

func TestArgWriteFramedListOfStringsIgnoresOuterElementRepresentation(t *testing.T) {
	require := require.New(t)

	fromSlice := List(Str()).Arg([]string{"A", "vector", "of", "strings"})

	buf := sink.NewBuffer()
	w := newTestWriter(buf)
	fromSlice.WriteFramed(w)
	require.NoError(w.Err())

	out := buf.Bytes()
	require.Equal(uint64(4), leUint64(out[:8]))
	require.Equal(byte('A'), out[8])
	require.Equal(byte(0), out[9])

	// the same strings held through pointers serialize identically.
	a, b, c, d := "A", "vector", "of", "strings"
	fromRefs := List(Ref(Str())).Arg([]*string{&a, &b, &c, &d})

	refBuf := sink.NewBuffer()
	refW := newTestWriter(refBuf)
	fromRefs.WriteFramed(refW)
	require.NoError(refW.Err())
	require.Equal(out, refBuf.Bytes())
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
