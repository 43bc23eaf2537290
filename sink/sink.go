// Package sink defines emtrace's byte-absorber boundary: the only I/O
// surface the core touches. A Sink is a two-method capability (Begin,
// Out), deliberately tiny so adapters for stdout, in-memory buffers,
// files, mutex-guarded sharing, and compression can all be expressed as
// thin wrappers over the same contract.
package sink

// Sink absorbs the bytes of one emitted trace record.
//
// Begin is called exactly once per record, before any bytes are written,
// with the aligned descriptor address and the record's total byte count
// (see the Begin method below). Out is called one or more times afterward with the
// record's raw bytes, in order.
//
// A Sink implementation is borrowed for the duration of one emit call;
// concurrent use by multiple goroutines requires routing through Guard.
type Sink interface {
	// Begin prepares the sink for one trace record. descriptorAddr is the
	// aligned address of the record's format descriptor; totalSize is
	// either the exact byte count (fixed-size records) or the minimum byte
	// count bitwise-or'd with the NullTerminated or LengthPrefixed sentinel
	// from config.Sentinels when the record contains a dynamically-sized
	// argument.
	Begin(descriptorAddr uintptr, totalSize uint64) error

	// Out appends raw bytes to the sink.
	Out(b []byte) error
}

// totalSize's dynamic-size sentinel bits are width-dependent (for 1-, 2-,
// 4- and 8-byte size fields they occupy the field's top two bits; for a
// 16-byte field they are bits 63 and 62) and are computed by
// config.Sentinels; see that package
// for the NullTerminated/LengthPrefixed bit values a Begin implementation
// should test for.
