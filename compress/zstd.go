package compress

// ZstdCompressor provides Zstandard compression: best ratio among the
// supported codecs, suited to a sink that buffers records for archival
// or network transport rather than a hot path sensitive to latency.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default encoder/decoder settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
