package descriptor

import (
	"github.com/gizzmodev/emtrace/config"
	"github.com/gizzmodev/emtrace/internal/options"
)

type buildOpts struct {
	formatter *config.Formatter
	section   string
}

// Option configures one descriptor at build time: call-shaped options
// that are actually compile-time, baked into the static descriptor
// rather than resolved at each emit.
type Option = options.Option[*buildOpts]

// WithFormatter overrides the default formatter dialect (PyFormat when
// the call has arguments, NoFormat otherwise).
func WithFormatter(f config.Formatter) Option {
	return options.NoError(func(o *buildOpts) { o.formatter = &f })
}

// WithSection places this descriptor in a named section instead of the
// registry-wide default.
func WithSection(name string) Option {
	return options.NoError(func(o *buildOpts) { o.section = name })
}
