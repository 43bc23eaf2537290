package sink

import "sync"

// Ender is an optional extra a Sink may implement when it holds a
// resource, such as a lock, that must be released once a full trace
// record has been written. trace.Trace calls End, if the sink it
// resolved implements Ender, after the record's last Out call — Go's
// stand-in for the Rust port's RAII MutexGuard release.
type Ender interface {
	End()
}

type guarded struct {
	mu    sync.Locker
	inner Sink
}

// Guard wraps inner so that Begin acquires mu and an eventual End call
// releases it, letting one caller serialize an entire trace record
// against other users of the same lock (the sink_guard call option).
func Guard(mu sync.Locker, inner Sink) Sink {
	return &guarded{mu: mu, inner: inner}
}

func (g *guarded) Begin(descriptorAddr uintptr, totalSize uint64) error {
	g.mu.Lock()
	if err := g.inner.Begin(descriptorAddr, totalSize); err != nil {
		// No End call follows a failed Begin, so release the lock here.
		g.mu.Unlock()
		return err
	}

	return nil
}

func (g *guarded) Out(b []byte) error {
	return g.inner.Out(b)
}

func (g *guarded) End() {
	g.mu.Unlock()
}
