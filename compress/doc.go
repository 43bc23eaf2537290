// Package compress provides the compression codecs sink.NewCompressing
// layers over an inner sink.Sink, so a trace record's bytes can be
// shrunk before they leave the process.
//
// # Supported algorithms
//
//   - None: no compression, lowest latency
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec and GetCodec build a Codec from an Algorithm value;
// sink.NewCompressing takes a Codec directly.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
