// Package trace implements the emit primitive: given a built descriptor
// and the call's argument values, it resolves a sink, computes the
// record's total size, and serializes the descriptor's aligned address
// followed by each argument's framed bytes.
package trace

import (
	"fmt"
	"reflect"

	"github.com/gizzmodev/emtrace/descriptor"
	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/internal/options"
	"github.com/gizzmodev/emtrace/schema"
	"github.com/gizzmodev/emtrace/sink"
	"github.com/gizzmodev/emtrace/wire"
)

// OnFatal is invoked when an emit call's sink fails and the call did
// not opt into WithErrorHandling. It defaults to panicking, mirroring
// the process-abort default; tests and embedders that want a softer
// failure mode may override it.
var OnFatal = func(err error) { panic(err) }

// Trace serializes one trace record: the descriptor's aligned address
// followed by args, in declared order, to the resolved sink.
func Trace(d *descriptor.Descriptor, args []schema.Arg, opts ...CallOption) error {
	return trace(d, args, opts...)
}

// Traceln is identical to Trace; it does not add a newline. A trailing
// newline, if wanted, must already be part of the format string passed
// to descriptor.New.
func Traceln(d *descriptor.Descriptor, args []schema.Arg, opts ...CallOption) error {
	return trace(d, args, opts...)
}

func trace(d *descriptor.Descriptor, args []schema.Arg, opts ...CallOption) error {
	co := &callOpts{}
	if err := options.Apply(co, opts...); err != nil {
		return handleError(co, err)
	}

	if err := validateArgs(d, args); err != nil {
		return handleError(co, err)
	}

	if err := emit(d, args, co); err != nil {
		return handleError(co, err)
	}

	return nil
}

func validateArgs(d *descriptor.Descriptor, args []schema.Arg) error {
	want := d.Args()
	if len(args) != len(want) {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrArgumentCountMismatch, len(args), len(want))
	}

	for i, a := range args {
		if !reflect.DeepEqual(a.Schema(), want[i]) {
			return fmt.Errorf("%w: argument %d", errs.ErrArgumentSchemaMismatch, i)
		}
	}

	return nil
}

func totalSize(d *descriptor.Descriptor, args []schema.Arg) uint64 {
	cfg := d.Config()
	total := uint64(cfg.PointerWidth)

	nullTerminated, lengthPrefixed := cfg.Sentinels()

	for _, a := range args {
		sc := a.Schema().Size
		switch sc.Kind {
		case schema.NullTerminated:
			total |= nullTerminated
		case schema.LengthPrefixed:
			total |= lengthPrefixed
		default:
			total += uint64(sc.N)
		}
	}

	return total
}

func emit(d *descriptor.Descriptor, args []schema.Arg, co *callOpts) error {
	s := co.sink
	if s == nil {
		s = sink.Stdout()
	}

	if err := s.Begin(d.AlignedAddr(), totalSize(d, args)); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrBegin, err)
	}

	if e, ok := s.(sink.Ender); ok {
		defer e.End()
	}

	cfg := d.Config()
	w := wire.New(s, cfg.Engine, cfg.PointerWidth, cfg.SizeWidth)

	w.PutPointer(d.AlignedAddr())
	for _, a := range args {
		a.WriteFramed(w)
	}

	return w.Err()
}

func handleError(co *callOpts, err error) error {
	if co.handleErrors {
		return err
	}

	OnFatal(err)

	return err
}
