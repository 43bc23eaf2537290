package schema

import (
	"math"

	"github.com/gizzmodev/emtrace/wire"
)

// Signed is the type set of Go signed integer kinds emtrace can trace.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is the type set of Go unsigned integer kinds emtrace can trace.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// FloatKind is the type set of Go floating point kinds emtrace can trace.
type FloatKind interface {
	~float32 | ~float64
}

// Type is the compile-time-flavored schema for one emittable Go type T:
// its wire size class, textual id, and serializer. Values are meant to
// be constructed once (by a constructor below) and reused.
type Type[T any] struct {
	id          string
	size        SizeClass
	numChildren int
	descendants []Node
	write       func(v T, w *wire.Writer)
	// count returns the LengthPrefixed framing value for a value of this
	// type (the element count for a sequence). Only meaningful when
	// size.Kind == LengthPrefixed; nil otherwise.
	count func(v T) uint64
}

// ID returns the type's textual id (e.g. "signed", "string", "list").
func (t Type[T]) ID() string { return t.id }

// Size returns the type's wire size class.
func (t Type[T]) Size() SizeClass { return t.size }

// NumChildren returns the count of immediate child types (0 for primitives
// and strings, 1 for sequences; a reference reports its pointee's count).
func (t Type[T]) NumChildren() int { return t.numChildren }

// Descendants returns the flattened, pre-order descendant listing.
func (t Type[T]) Descendants() []Node { return t.descendants }

// Schema returns t's Schema value (id, size class, child count, descendants).
func (t Type[T]) Schema() Schema {
	return Schema{ID: t.id, Size: t.size, NumChildren: t.numChildren, Descendants: t.descendants}
}

// Node returns t's top-level Node representation (used when t appears as
// a descendant of an enclosing composite type).
func (t Type[T]) Node(name string) Node {
	return Node{Name: name, ID: t.id, Size: t.size, NumChildren: t.numChildren}
}

// Serialize writes v's on-wire bytes (in w's configured byte order, which
// need not be the host's native order; no framing) via w.
func (t Type[T]) Serialize(v T, w *wire.Writer) {
	t.write(v, w)
}

// Arg packages a concrete value v together with its Type for a variadic
// Trace/Traceln call. For a LengthPrefixed type the framing value (the
// element count) is computed eagerly here.
func (t Type[T]) Arg(v T) Arg {
	var prefixVal uint64
	if t.size.Kind == LengthPrefixed && t.count != nil {
		prefixVal = t.count(v)
	}

	return Arg{
		schema:    t.Schema(),
		prefixVal: prefixVal,
		write: func(w *wire.Writer) {
			t.write(v, w)
		},
	}
}

// writeChildFramed serializes one element of a composite type, adding the
// framing its own SizeClass calls for: a length prefix carrying the
// nested value's element count (for a nested LengthPrefixed type, e.g. a
// list of lists) or a trailing zero byte (NullTerminated), matching the framing
// trace.Trace applies to top-level arguments.
func writeChildFramed[E any](elem Type[E], v E, w *wire.Writer) {
	switch elem.size.Kind {
	case LengthPrefixed:
		var n uint64
		if elem.count != nil {
			n = elem.count(v)
		}
		w.PutSize(n)
		elem.write(v, w)
	case NullTerminated:
		elem.write(v, w)
		w.PutByte(0)
	default:
		elem.write(v, w)
	}
}

func widthOf[T Signed | Unsigned | FloatKind]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64, int, uint:
		return 8
	default:
		return 8
	}
}

// Signed64 constructs the schema for a signed integer type of T's width.
func Signed64[T Signed]() Type[T] {
	width := widthOf[T]()
	return Type[T]{
		id:   signedID(width),
		size: SizeClass{Kind: Static, N: width},
		write: func(v T, w *wire.Writer) {
			w.PutNativeInt(uint64(int64(v)), width)
		},
	}
}

func signedID(width int) string {
	if width == 1 {
		return "signed char"
	}
	return "signed"
}

// Unsigned64 constructs the schema for an unsigned integer type of T's width.
func Unsigned64[T Unsigned]() Type[T] {
	width := widthOf[T]()
	return Type[T]{
		id:   unsignedID(width),
		size: SizeClass{Kind: Static, N: width},
		write: func(v T, w *wire.Writer) {
			w.PutNativeInt(uint64(v), width)
		},
	}
}

func unsignedID(width int) string {
	if width == 1 {
		return "char"
	}
	return "unsigned"
}

// Float32 constructs the schema for the float32 type.
func Float32() Type[float32] {
	return Type[float32]{
		id:   "float",
		size: SizeClass{Kind: Static, N: 4},
		write: func(v float32, w *wire.Writer) {
			w.PutNativeInt(uint64(math.Float32bits(v)), 4)
		},
	}
}

// Float64 constructs the schema for the float64 type.
func Float64() Type[float64] {
	return Type[float64]{
		id:   "double",
		size: SizeClass{Kind: Static, N: 8},
		write: func(v float64, w *wire.Writer) {
			w.PutNativeInt(math.Float64bits(v), 8)
		},
	}
}

// Bool constructs the schema for the bool type, wire-encoded as one byte.
func Bool() Type[bool] {
	return Type[bool]{
		id:   "bool",
		size: SizeClass{Kind: Static, N: 1},
		write: func(v bool, w *wire.Writer) {
			if v {
				w.PutByte(1)
			} else {
				w.PutByte(0)
			}
		},
	}
}
