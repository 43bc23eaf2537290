package sink

import (
	"fmt"

	"github.com/gizzmodev/emtrace/compress"
	"github.com/gizzmodev/emtrace/errs"
)

// compressing buffers one record's bytes and flushes them through codec
// as a single compressed Out call to inner. The compressed length is
// only known once every Out call for the record has been seen, so
// compression happens at End rather than incrementally.
//
// Ender.End returns no error, so a Compress or inner Out failure there
// cannot be reported to the record it belongs to. It is instead stashed
// in err and returned by the following record's Begin call, the same
// sticky-error shape wire.Writer uses for its own Put calls.
type compressing struct {
	codec compress.Codec
	inner Sink
	buf   []byte
	err   error
}

// NewCompressing wraps inner so every record passed through Out is
// compressed with codec before reaching inner.
func NewCompressing(codec compress.Codec, inner Sink) Sink {
	return &compressing{codec: codec, inner: inner}
}

func (c *compressing) Begin(descriptorAddr uintptr, totalSize uint64) error {
	if c.err != nil {
		err := c.err
		c.err = nil
		return err
	}

	c.buf = c.buf[:0]
	return c.inner.Begin(descriptorAddr, totalSize)
}

func (c *compressing) Out(b []byte) error {
	if c.err != nil {
		return c.err
	}

	c.buf = append(c.buf, b...)
	return nil
}

// End compresses the buffered record and forwards it to inner, then
// releases any lock inner holds if it implements Ender. A failure in
// either step is recorded in c.err rather than dropped; see the
// compressing doc comment.
func (c *compressing) End() {
	if len(c.buf) > 0 {
		compressed, compressErr := c.codec.Compress(c.buf)
		switch {
		case compressErr != nil:
			c.err = fmt.Errorf("%w: %w", errs.ErrCompressFailed, compressErr)
		default:
			if outErr := c.inner.Out(compressed); outErr != nil {
				c.err = fmt.Errorf("%w: %w", errs.ErrOut, outErr)
			}
		}
	}

	if e, ok := c.inner.(Ender); ok {
		e.End()
	}
}

var _ Sink = (*compressing)(nil)
var _ Ender = (*compressing)(nil)
