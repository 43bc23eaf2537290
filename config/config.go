// Package config implements emtrace's build-time configuration surface:
// byte order, pointer field width, size field width, descriptor
// alignment power, and default section, expressed as functional options
// over a package-level Config using the internal/options helper. It also
// defines the Formatter dialect values; Config has no formatter option,
// the dialect is chosen per descriptor (descriptor.WithFormatter).
package config

import (
	"fmt"

	"github.com/gizzmodev/emtrace/endian"
	"github.com/gizzmodev/emtrace/errs"
	"github.com/gizzmodev/emtrace/internal/options"
)

// Formatter identifies the dialect a host-side decoder should use to
// interpret a descriptor's format string.
type Formatter uint8

const (
	// PyFormat selects Python-style "{}" placeholders.
	PyFormat Formatter = 0
	// NoFormat means the format string has no placeholders.
	NoFormat Formatter = 1
	// CStyleFormat selects C printf-style "%d" placeholders.
	CStyleFormat Formatter = 2
)

func (f Formatter) String() string {
	switch f {
	case PyFormat:
		return "py_format"
	case NoFormat:
		return "no_format"
	case CStyleFormat:
		return "c_style_format"
	default:
		return "unknown"
	}
}

// DefaultSection is the linker section descriptors register into absent
// a per-call override.
const DefaultSection = ".emtrace"

// Config is the registry-wide build configuration: pointer/size field
// widths, descriptor alignment, byte order, and default section name.
type Config struct {
	Engine         endian.EndianEngine
	PointerWidth   int // bytes: 1, 2, 4, 8, or 16
	SizeWidth      int // bytes: 1, 2, 4, 8, or 16
	AlignmentPower int // 0..10; descriptor alignment is 2^AlignmentPower
	Section        string
}

// Option configures a Config.
type Option = options.Option[*Config]

// Default returns the recommended configuration: little-endian,
// 8-byte pointer and size fields (native word size on every mainstream
// Go target), alignment power 6 (64-byte alignment), default section.
func Default() *Config {
	return &Config{
		Engine:         endian.GetLittleEndianEngine(),
		PointerWidth:   8,
		SizeWidth:      8,
		AlignmentPower: 6,
		Section:        DefaultSection,
	}
}

// New builds a Config from Default with opts applied.
func New(opts ...Option) (*Config, error) {
	c := Default()
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func validWidth(w int) bool {
	switch w {
	case 1, 2, 4, 8, 16:
		return true
	default:
		return false
	}
}

// WithLittleEndian selects little-endian byte order for all wire fields.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) { c.Engine = endian.GetLittleEndianEngine() })
}

// WithBigEndian selects big-endian byte order for all wire fields.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) { c.Engine = endian.GetBigEndianEngine() })
}

// WithPointerWidth sets the pointer field width in bytes (1, 2, 4, 8, or 16).
func WithPointerWidth(bytes int) Option {
	return options.New(func(c *Config) error {
		if !validWidth(bytes) {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPointerWidth, bytes)
		}
		c.PointerWidth = bytes
		return nil
	})
}

// WithSizeWidth sets the size field width in bytes (1, 2, 4, 8, or 16).
func WithSizeWidth(bytes int) Option {
	return options.New(func(c *Config) error {
		if !validWidth(bytes) {
			return fmt.Errorf("%w: %d", errs.ErrInvalidSizeWidth, bytes)
		}
		c.SizeWidth = bytes
		return nil
	})
}

// WithAlignmentPower sets the descriptor alignment to 2^power (power in 0..10).
func WithAlignmentPower(power int) Option {
	return options.New(func(c *Config) error {
		if power < 0 || power > 10 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidAlignmentPower, power)
		}
		c.AlignmentPower = power
		return nil
	})
}

// WithSection overrides the default linker section new descriptors
// register into.
func WithSection(name string) Option {
	return options.NoError(func(c *Config) { c.Section = name })
}

// Sentinels returns the NullTerminated and LengthPrefixed sentinel
// values for a size field of the given width: the top bit and the
// second-from-top bit of that field, respectively. For a 16-byte field
// the values are bits 63 and 62, not the field's top two bits, since the
// result is a uint64.
func Sentinels(sizeWidthBytes int) (nullTerminated, lengthPrefixed uint64) {
	bits := uint(sizeWidthBytes * 8)
	if bits >= 64 {
		return 1 << 63, 1 << 62
	}

	return 1 << (bits - 1), 1 << (bits - 2)
}

// Alignment returns 2^AlignmentPower.
func (c *Config) Alignment() uintptr {
	return 1 << uint(c.AlignmentPower)
}

// Sentinels returns this Config's NullTerminated and LengthPrefixed
// sentinel values, derived from SizeWidth.
func (c *Config) Sentinels() (nullTerminated, lengthPrefixed uint64) {
	return Sentinels(c.SizeWidth)
}
