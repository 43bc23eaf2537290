package sink

import (
	"os"
	"sync"
)

var stdoutMu sync.Mutex

type stdoutSink struct{}

func (stdoutSink) Begin(uintptr, uint64) error { return nil }

func (stdoutSink) Out(b []byte) error {
	_, err := os.Stdout.Write(b)
	return err
}

// Stdout returns the process-wide standard-output sink: every call
// competes for the same package-level lock, so one trace record's bytes
// never interleave with another's.
func Stdout() Sink {
	return Guard(&stdoutMu, stdoutSink{})
}
