package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is the Algorithm S2 codec: Snappy-compatible compression
// tuned for throughput, a reasonable default when a record's argument
// bytes are large enough that None's passthrough cost outweighs S2's
// encode time.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes one record's bytes with S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
