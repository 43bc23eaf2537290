// Package schema implements emtrace's compile-time-flavored type schema
// contract (the "Traceable" concept): for each emittable Go type, a wire
// size class, a textual type id, and a recursive description of any
// contained element types.
//
// Go has no constexpr/const-fn byte construction, so "compile time" here
// means package-init time: Type[T] values are small and meant to be
// built once (typically into a package-level var) and reused
// across every call site and every Trace call for that argument.
package schema

import "github.com/gizzmodev/emtrace/errs"

// MaxDescendants bounds the flattened descendant array produced by List
// and Array. Exceeding it panics at schema-construction time, the closest
// Go analog to a build-time failure.
const MaxDescendants = 4096

// Kind identifies a size class: fixed-width, null-terminated, or
// length-prefixed framing on the wire.
type Kind uint8

const (
	// Static means the value occupies a fixed, statically-known number of bytes.
	Static Kind = iota
	// NullTerminated means the value's bytes are followed by a single 0x00 byte.
	NullTerminated
	// LengthPrefixed means the value's bytes are preceded by a size-field-width length.
	LengthPrefixed
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case NullTerminated:
		return "null_terminated"
	case LengthPrefixed:
		return "length_prefixed"
	default:
		return "unknown"
	}
}

// SizeClass is a type's wire size class: Static(n) for a fixed byte
// count, or one of the two dynamic framings.
type SizeClass struct {
	Kind Kind
	N    int // byte count, meaningful only when Kind == Static
}

// IsDynamic reports whether values of this size class carry their own
// framing (a length prefix or a null terminator) rather than a fixed size.
func (s SizeClass) IsDynamic() bool {
	return s.Kind == NullTerminated || s.Kind == LengthPrefixed
}

// Node is one entry of a flattened, pre-order descendant listing: a
// (name, id, size class, child count) tuple, the quadruple the
// descriptor's offset table records per descendant.
type Node struct {
	Name        string
	ID          string
	Size        SizeClass
	NumChildren int
}

// Schema is the full compile-time description of one argument type: its
// own id and size class, immediate child count, and the flattened,
// pre-order array of all descendants.
type Schema struct {
	ID          string
	Size        SizeClass
	NumChildren int
	Descendants []Node
}

func countDescendants(s Schema) int {
	n := len(s.Descendants)
	return n
}

func checkBound(s Schema) {
	if countDescendants(s) > MaxDescendants {
		panic(errs.ErrTooManyDescendants)
	}
}
