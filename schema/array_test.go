package schema

import (
	"testing"

	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/sink"
	"github.com/gizzmodev/emtrace/wire"
	"github.com/stretchr/testify/require"
)

func TestArraySchema(t *testing.T) {
	require := require.New(t)

	ty := Array(Signed64[int32](), 3)
	require.Equal("list", ty.ID())
	require.Equal(SizeClass{Kind: Static, N: 3 * 4}, ty.Size())
	require.Equal(1, ty.NumChildren())
	require.Len(ty.Descendants(), 1)
	require.Equal("signed", ty.Descendants()[0].ID)
}

func TestArraySharesDescendantsWithList(t *testing.T) {
	require := require.New(t)

	elem := Signed64[int32]()
	require.Equal(List(elem).Descendants(), Array(elem, 5).Descendants())
}

func TestArrayOfDynamicElementPanics(t *testing.T) {
	require := require.New(t)

	require.PanicsWithValue(errs.ErrDynamicArrayElement, func() {
		Array(Str(), 4)
	})
}

func TestArrayLengthMismatchPanics(t *testing.T) {
	require := require.New(t)

	ty := Array(Signed64[int32](), 3)
	w := wire.New(nil, nil, 8, 8)

	require.PanicsWithValue(errs.ErrArrayLengthMismatch, func() {
		ty.Serialize([]int32{1, 2}, w)
	})
}

func TestArraySerializesElementsInOrder(t *testing.T) {
	require := require.New(t)

	ty := Array(Unsigned64[uint8](), 3)
	arg := ty.Arg([]uint8{1, 2, 3})

	require.Equal(SizeClass{Kind: Static, N: 3}, arg.Schema().Size)

	buf := sink.NewBuffer()
	w := newTestWriter(buf)
	arg.WriteFramed(w)
	require.NoError(w.Err())
	require.Equal([]byte{1, 2, 3}, buf.Bytes())
}
