// Package errs defines the sentinel errors returned by emtrace's
// descriptor builder, sink adapters, and emit primitive.
package errs

import "errors"

var (
	// ErrInvalidPointerWidth is returned when a configured pointer width is not
	// one of the supported sizes (1, 2, 4, 8, 16 bytes).
	ErrInvalidPointerWidth = errors.New("emtrace: invalid pointer width")

	// ErrInvalidSizeWidth is returned when a configured size-field width is not
	// one of the supported sizes (1, 2, 4, 8, 16 bytes).
	ErrInvalidSizeWidth = errors.New("emtrace: invalid size-field width")

	// ErrInvalidAlignmentPower is returned when the configured alignment power
	// falls outside the supported range (0..10).
	ErrInvalidAlignmentPower = errors.New("emtrace: invalid alignment power")

	// ErrTooManyDescendants is the panic value raised when a type schema's
	// flattened descendant list exceeds schema.MaxDescendants.
	ErrTooManyDescendants = errors.New("emtrace: descendant schema exceeds configured bound")

	// ErrSinkOptionConflict is returned when both WithSink and WithSinkGuard
	// are supplied to the same call site.
	ErrSinkOptionConflict = errors.New("emtrace: sink and sink_guard options are mutually exclusive")

	// ErrArgumentCountMismatch is returned when the number of arguments passed
	// to Trace/Traceln does not match the descriptor's argument schema.
	ErrArgumentCountMismatch = errors.New("emtrace: argument count does not match descriptor schema")

	// ErrArgumentSchemaMismatch is returned when an argument's runtime schema
	// does not match the schema baked into the descriptor at the same position.
	ErrArgumentSchemaMismatch = errors.New("emtrace: argument schema does not match descriptor")

	// ErrBegin wraps a sink error returned from Sink.Begin.
	ErrBegin = errors.New("emtrace: sink begin failed")

	// ErrOut wraps a sink error returned from Sink.Out.
	ErrOut = errors.New("emtrace: sink out failed")

	// ErrSinkCapacityExceeded is returned by bounded sinks (e.g. a fixed-size
	// buffer) when a record would not fit.
	ErrSinkCapacityExceeded = errors.New("emtrace: sink capacity exceeded")

	// ErrRegistryClosed is returned when a descriptor or magic record is
	// registered into a section registry after Close has been called.
	ErrRegistryClosed = errors.New("emtrace: section registry already dumped")

	// ErrDuplicateMagic is returned if a section registry already holds a
	// magic record and a second one is registered.
	ErrDuplicateMagic = errors.New("emtrace: magic record already registered for this section")

	// ErrUnsupportedCompression is returned by the compress package's factory
	// when asked for a compression type it does not implement.
	ErrUnsupportedCompression = errors.New("emtrace: unsupported compression type")

	// ErrDynamicArrayElement is raised when schema.Array is built over an
	// element type whose own size class is not Static: a fixed-count
	// array's total byte size can only be baked in when each element's
	// size is itself known at schema-construction time.
	ErrDynamicArrayElement = errors.New("emtrace: fixed-size array requires a statically-sized element type")

	// ErrArrayLengthMismatch is raised when a value passed to a
	// schema.Array-built Type's Arg does not have exactly the element
	// count the array schema was built with.
	ErrArrayLengthMismatch = errors.New("emtrace: array value length does not match schema element count")

	// ErrCompressFailed wraps an error returned by a compress.Codec used
	// by sink.NewCompressing.
	ErrCompressFailed = errors.New("emtrace: compression failed")
)
