package compress

// NoOpCompressor is the Algorithm None codec: it passes a record's bytes
// through unmodified. Useful when sink.NewCompressing's per-record
// buffering is wanted without actually shrinking anything, e.g. while
// comparing ratios against a real codec.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The returned slice aliases data;
// callers must not mutate data afterward.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The returned slice aliases data;
// callers must not mutate data afterward.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
