// Package section approximates the linker section a real build would
// place the magic record and every call-site descriptor into. Since this
// port never emits an object file, a Registry plays that role in
// process: it collects the exact bytes that would have landed in the
// section, in the order they would have landed there, and Dump streams
// them out for inspection or for a test to compare against.
package section

import (
	"io"
	"sync"

	"github.com/gizzmodev/emtrace/errs"
)

// Registry collects one section's byte image: a magic record, set
// exactly once, followed by every descriptor registered into it, in
// registration order.
type Registry struct {
	mu          sync.Mutex
	name        string
	magic       []byte
	descriptors [][]byte
	closed      bool
}

var (
	registriesMu sync.Mutex
	registries   = map[string]*Registry{}
)

// For returns the Registry for the given section name, creating it on
// first use. A descriptor self-registers into one of these by name
// (default ".emtrace") the moment it is built; magic.Init installs a
// magic record into the Registry it is given.
func For(name string) *Registry {
	registriesMu.Lock()
	defer registriesMu.Unlock()

	r, ok := registries[name]
	if !ok {
		r = &Registry{name: name}
		registries[name] = r
	}

	return r
}

// Name returns the section's name.
func (r *Registry) Name() string { return r.name }

// SetMagic installs the section's magic record bytes. Calling it twice
// on the same Registry reports errs.ErrDuplicateMagic.
func (r *Registry) SetMagic(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errs.ErrRegistryClosed
	}
	if r.magic != nil {
		return errs.ErrDuplicateMagic
	}
	r.magic = b

	return nil
}

// Add appends one descriptor's bytes, in registration order. It is a
// no-op, returning errs.ErrRegistryClosed, once Close has been called.
func (r *Registry) Add(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errs.ErrRegistryClosed
	}
	r.descriptors = append(r.descriptors, b)

	return nil
}

// Close freezes the registry: further SetMagic/Add calls fail with
// errs.ErrRegistryClosed. A program image is normally dumped once after
// every call site has registered, so Close guards against a descriptor
// built after that point silently going missing from the dump.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Len returns the number of descriptors registered so far, not counting
// the magic record.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.descriptors)
}

// Dump writes the section's full byte image to w: the magic record
// first (if set), then every registered descriptor in registration
// order, exactly as they would sit in a linked section.
func (r *Registry) Dump(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.magic != nil {
		if _, err := w.Write(r.magic); err != nil {
			return err
		}
	}

	for _, d := range r.descriptors {
		if _, err := w.Write(d); err != nil {
			return err
		}
	}

	return nil
}
