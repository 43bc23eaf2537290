package schema

import "github.com/gizzmodev/emtrace/wire"

// Str constructs the schema for a text string: null-terminated on the
// wire, id "string".
func Str() Type[string] {
	return Type[string]{
		id:   "string",
		size: SizeClass{Kind: NullTerminated},
		write: func(v string, w *wire.Writer) {
			w.PutBytes([]byte(v))
		},
	}
}
