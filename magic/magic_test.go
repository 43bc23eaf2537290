package magic

import (
	"testing"

	"github.com/gizzmodev/emtrace/config"
	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/section"
	"github.com/gizzmodev/emtrace/sink"
	"github.com/stretchr/testify/require"
)

func TestNewRecordLayout(t *testing.T) {
	require := require.New(t)

	cfg, err := config.New(config.WithPointerWidth(8), config.WithSizeWidth(8), config.WithAlignmentPower(6))
	require.NoError(err)

	rec := New(cfg)
	b := rec.Bytes()

	require.Equal(id[:], b[:32])
	require.Equal(byte(HeaderLen), b[32])
	require.Equal(byte(8), b[33]) // size width
	require.Equal(byte(8), b[34]) // pointer width
	require.Equal(byte(6), b[35]) // alignment power

	// total length: 32 id + 4 header + 3 size-width fields (probe, nt, lp)
	require.Len(b, 32+4+3*8)
}

func TestRecordAlignedAddrIsDeterministic(t *testing.T) {
	require := require.New(t)

	cfg, err := config.New(config.WithAlignmentPower(4))
	require.NoError(err)

	rec := New(cfg)
	require.Equal(rec.AlignedAddr(), rec.AlignedAddr(), "deterministic for a fixed backing array")
}

func TestInitWritesAlignedAddressToSink(t *testing.T) {
	require := require.New(t)

	cfg := config.Default()
	buf := sink.NewBuffer()
	defer buf.Release()

	require.NoError(Init(cfg, section.For(".test-magic-writes-addr"), buf))

	// Init writes only the pointer-width address, no Begin-style framing.
	require.Equal(cfg.PointerWidth, buf.Len())
}

func TestInitInstallsRegistryMagic(t *testing.T) {
	require := require.New(t)

	cfg := config.Default()
	buf := sink.NewBuffer()
	defer buf.Release()

	reg := section.For(".test-magic-installs")
	require.NoError(Init(cfg, reg, buf))
	require.Equal(0, reg.Len())
	require.ErrorIs(reg.SetMagic([]byte{0}), errs.ErrDuplicateMagic, "Init should have installed the magic record")
}
