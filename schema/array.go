package schema

import (
	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/wire"
)

// Array constructs the schema for a fixed-count sequence of elem: id
// "list", size class Static(n*elemSize) since the element count is
// baked into the schema rather than carried on the wire. elem must
// itself be Static-sized, since the array's own byte count can only be
// known at schema-construction time when each element's size is too;
// Array panics with errs.ErrDynamicArrayElement otherwise.
//
// A value passed to the resulting Type's Arg must have exactly n
// elements; serialization panics with errs.ErrArrayLengthMismatch
// otherwise.
func Array[T any](elem Type[T], n int) Type[[]T] {
	if elem.size.Kind != Static {
		panic(errs.ErrDynamicArrayElement)
	}

	s := Schema{
		ID:          "list",
		Size:        SizeClass{Kind: Static, N: n * elem.size.N},
		NumChildren: 1,
		Descendants: sequenceDescendants(elem),
	}
	checkBound(s)

	return Type[[]T]{
		id:          s.ID,
		size:        s.Size,
		numChildren: s.NumChildren,
		descendants: s.Descendants,
		write: func(v []T, w *wire.Writer) {
			if len(v) != n {
				panic(errs.ErrArrayLengthMismatch)
			}
			for _, el := range v {
				elem.write(el, w)
			}
		},
	}
}
