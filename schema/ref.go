package schema

import "github.com/gizzmodev/emtrace/wire"

// Ref constructs the schema for a Go pointer to elem's type: it inherits
// elem's id, size class, child count, and descendants verbatim, and
// serializes by dereferencing and delegating to elem. A reference
// contributes nothing of its own to the schema, only its pointee's shape.
func Ref[T any](elem Type[T]) Type[*T] {
	return Type[*T]{
		id:          elem.id,
		size:        elem.size,
		numChildren: elem.numChildren,
		descendants: elem.descendants,
		count: func(v *T) uint64 {
			if elem.count == nil {
				return 0
			}
			return elem.count(*v)
		},
		write: func(v *T, w *wire.Writer) {
			elem.write(*v, w)
		},
	}
}
