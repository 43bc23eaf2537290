package schema

import "github.com/gizzmodev/emtrace/wire"

// sequenceDescendants builds the descendant listing common to every
// finite-sequence schema: elem's own Node followed by elem's
// descendants, so a decoder can walk the element type without
// re-deriving it from the runtime value.
func sequenceDescendants[T any](elem Type[T]) []Node {
	descendants := make([]Node, 0, 1+len(elem.descendants))
	descendants = append(descendants, elem.Node(""))
	descendants = append(descendants, elem.descendants...)

	return descendants
}

// List constructs the schema for a runtime-length sequence of elem: id
// "list", size class LengthPrefixed.
//
// The sequence's own LengthPrefixed framing carries the element count,
// not a byte length. This also applies recursively when a List is itself
// nested as an element of an outer List.
func List[T any](elem Type[T]) Type[[]T] {
	s := Schema{
		ID:          "list",
		Size:        SizeClass{Kind: LengthPrefixed},
		NumChildren: 1,
		Descendants: sequenceDescendants(elem),
	}
	checkBound(s)

	return Type[[]T]{
		id:          s.ID,
		size:        s.Size,
		numChildren: s.NumChildren,
		descendants: s.Descendants,
		count: func(v []T) uint64 {
			return uint64(len(v))
		},
		write: func(v []T, w *wire.Writer) {
			for _, el := range v {
				writeChildFramed(elem, el, w)
			}
		},
	}
}
