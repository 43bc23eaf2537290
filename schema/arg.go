package schema

import "github.com/gizzmodev/emtrace/wire"

// Arg packages one call-site argument: its Schema (for validating against
// the descriptor it is passed to), the precomputed LengthPrefixed framing
// value if applicable, and a closure that serializes its raw value bytes.
// Arg is what Trace/Traceln accept as variadic parameters; build one with
// Type[T].Arg(v).
type Arg struct {
	schema    Schema
	prefixVal uint64
	write     func(w *wire.Writer)
}

// Schema returns the argument's compile-time type schema.
func (a Arg) Schema() Schema { return a.schema }

// WriteFramed serializes the argument with the framing its SizeClass
// calls for: a length prefix carrying the element count for
// LengthPrefixed (sequence) arguments, a trailing zero byte for
// NullTerminated arguments, or nothing extra for Static arguments.
func (a Arg) WriteFramed(w *wire.Writer) {
	switch a.schema.Size.Kind {
	case LengthPrefixed:
		w.PutSize(a.prefixVal)
		a.write(w)
	case NullTerminated:
		a.write(w)
		w.PutByte(0)
	default:
		a.write(w)
	}
}
