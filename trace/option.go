package trace

import (
	"sync"

	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/internal/options"
	"github.com/gizzmodev/emtrace/sink"
)

type callOpts struct {
	sink         sink.Sink
	handleErrors bool
}

// CallOption configures one Trace/Traceln call: the runtime option
// group, as opposed to descriptor.Option's build-time group.
type CallOption = options.Option[*callOpts]

// WithSink borrows s for the duration of this call only.
func WithSink(s sink.Sink) CallOption {
	return options.New(func(o *callOpts) error {
		if o.sink != nil {
			return errs.ErrSinkOptionConflict
		}
		o.sink = s
		return nil
	})
}

// WithSinkGuard wraps s with mu via sink.Guard and moves the guarded
// sink into this call, so the lock acquired in Begin is released when
// the call completes, even on error.
func WithSinkGuard(mu sync.Locker, s sink.Sink) CallOption {
	return options.New(func(o *callOpts) error {
		if o.sink != nil {
			return errs.ErrSinkOptionConflict
		}
		o.sink = sink.Guard(mu, s)
		return nil
	})
}

// WithErrorHandling returns a tagged error instead of aborting the
// process when the sink fails.
func WithErrorHandling() CallOption {
	return options.NoError(func(o *callOpts) { o.handleErrors = true })
}
