package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgorithmString(t *testing.T) {
	require := require.New(t)

	require.Equal("none", None.String())
	require.Equal("zstd", Zstd.String())
	require.Equal("s2", S2.String())
	require.Equal("lz4", LZ4.String())
	require.Equal("unknown", Algorithm(0xFF).String())
}

func TestCreateCodecForEachAlgorithm(t *testing.T) {
	require := require.New(t)

	for _, alg := range []Algorithm{None, Zstd, S2, LZ4} {
		codec, err := CreateCodec(alg, "test")
		require.NoError(err)
		require.NotNil(codec)
	}
}

func TestCreateCodecUnknownAlgorithm(t *testing.T) {
	_, err := CreateCodec(Algorithm(0xFF), "test")
	require.Error(t, err)
}

func TestGetCodecReturnsBuiltin(t *testing.T) {
	require := require.New(t)

	codec, err := GetCodec(Zstd)
	require.NoError(err)
	require.NotNil(codec)
}

func TestNoOpCompressorRoundTrip(t *testing.T) {
	require := require.New(t)

	c := NewNoOpCompressor()
	data := []byte("hello world")

	compressed, err := c.Compress(data)
	require.NoError(err)
	require.Equal(data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(err)
	require.Equal(data, decompressed)
}

func TestS2CompressorRoundTrip(t *testing.T) {
	require := require.New(t)

	c := NewS2Compressor()
	data := []byte("hello hello hello hello world world world")

	compressed, err := c.Compress(data)
	require.NoError(err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(err)
	require.Equal(data, decompressed)
}

func TestLZ4CompressorRoundTrip(t *testing.T) {
	require := require.New(t)

	c := NewLZ4Compressor()
	data := []byte("hello hello hello hello world world world")

	compressed, err := c.Compress(data)
	require.NoError(err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(err)
	require.Equal(data, decompressed)
}

func TestCompressionStatsRatio(t *testing.T) {
	require := require.New(t)

	s := CompressionStats{OriginalSize: 100, CompressedSize: 40}
	require.InDelta(0.4, s.Ratio(), 0.0001)

	s = CompressionStats{}
	require.Zero(s.Ratio())
}
