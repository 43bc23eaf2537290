package compress

import (
	"fmt"

	"github.com/gizzmodev/emtrace/errs"
)

// Compressor compresses a byte slice: one emtrace record's raw bytes
// before an inner sink.Sink receives them.
//
// Memory management: the input slice is never modified. The real codecs
// return a newly allocated slice owned by the caller; NoOpCompressor
// returns the input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies a compression algorithm a Codec implements.
type Algorithm uint8

const (
	// None means no compression.
	None Algorithm = 0x1
	// Zstd selects Zstandard compression: best ratio, moderate speed.
	Zstd Algorithm = 0x2
	// S2 selects S2 compression: balanced ratio and speed.
	S2 Algorithm = 0x3
	// LZ4 selects LZ4 compression: fastest decompression.
	LZ4 Algorithm = 0x4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// CreateCodec constructs a Codec for algorithm. target names the caller,
// for error messages.
func CreateCodec(algorithm Algorithm, target string) (Codec, error) {
	switch algorithm {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, algorithm)
	}
}

var builtinCodecs = map[Algorithm]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for algorithm.
func GetCodec(algorithm Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[algorithm]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, algorithm)
}

// CompressionStats summarizes one compression operation, useful for a
// caller deciding whether compressing a sink's records is worth the CPU
// cost.
type CompressionStats struct {
	Algorithm         Algorithm
	OriginalSize      int64
	CompressedSize    int64
	CompressionTimeNs int64
}

// Ratio returns CompressedSize / OriginalSize; values below 1.0 mean the
// data shrank.
func (s CompressionStats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}
