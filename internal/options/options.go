// Package options implements the generic functional-option plumbing
// shared by config.Option, descriptor.Option, and trace.CallOption: each
// is built as options.Func[T] values over its own package's target
// struct, so the apply-in-order-and-bail-on-first-error logic lives here
// once instead of three times.
package options

// Option applies one configuration step to a *T, returning an error if
// the step is invalid for the current target state.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an Option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps fn, which can't fail, as an Option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
