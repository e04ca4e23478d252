package compression

import (
	"fmt"

	"github.com/glidekv/compression/compress"
	"github.com/glidekv/compression/errs"
	"github.com/glidekv/compression/format"
)

const (
	// DefaultMinSize is the default minimum value size, in bytes, for a
	// value to be considered for compression. Values below the threshold
	// would typically grow once header overhead is added.
	DefaultMinSize = 64

	// maxMinSize caps the configurable minimum size at 1 MiB.
	maxMinSize = 1024 * 1024
)

// Config describes whether, when and how values are compressed.
//
// Config is a plain immutable value: the With* setters return modified
// copies and never touch the receiver, so configurations can be shared
// freely. Validation happens once, when a Manager is constructed, not on
// every mutation.
type Config struct {
	enabled bool
	backend format.BackendType
	level   *int
	minSize int
	maxSize *int
}

// NewConfig returns an enabled configuration for the given backend with the
// backend's default level, the default minimum size and no maximum size.
func NewConfig(backend format.BackendType) Config {
	return Config{
		enabled: true,
		backend: backend,
		level:   backend.DefaultLevel(),
		minSize: DefaultMinSize,
	}
}

// DisabledConfig returns a configuration with compression turned off.
// The backend field defaults to zstd but is irrelevant while disabled.
func DisabledConfig() Config {
	return Config{
		enabled: false,
		backend: format.BackendZstd,
		minSize: DefaultMinSize,
	}
}

// WithLevel returns a copy of the configuration with the compression level
// set. Levels are backend-specific and validated by Validate, not here.
func (c Config) WithLevel(level int) Config {
	c.level = &level

	return c
}

// WithMinSize returns a copy of the configuration with the minimum
// compressible value size set.
func (c Config) WithMinSize(size int) Config {
	c.minSize = size

	return c
}

// WithMaxSize returns a copy of the configuration with the maximum
// compressible value size set.
func (c Config) WithMaxSize(size int) Config {
	c.maxSize = &size

	return c
}

// Enabled reports whether compression is enabled.
func (c Config) Enabled() bool { return c.enabled }

// Backend returns the configured backend identity.
func (c Config) Backend() format.BackendType { return c.backend }

// Level returns the configured compression level, or nil when the backend
// default applies.
func (c Config) Level() *int {
	if c.level == nil {
		return nil
	}
	level := *c.level

	return &level
}

// MinSize returns the minimum compressible value size in bytes.
func (c Config) MinSize() int { return c.minSize }

// MaxSize returns the maximum compressible value size, or nil when no
// maximum applies.
func (c Config) MaxSize() *int {
	if c.maxSize == nil {
		return nil
	}
	size := *c.maxSize

	return &size
}

// Validate checks the configuration invariants.
//
// It fails with errs.ErrInvalidConfiguration when the minimum size is zero
// or negative, the minimum size exceeds 1 MiB, a maximum size is set that
// does not exceed the minimum, or the level is invalid for the backend
// (zstd: 1-22; lz4 does not accept levels). An unknown backend identity
// fails with errs.ErrUnsupportedBackend.
func (c Config) Validate() error {
	if !c.backend.IsValid() {
		return fmt.Errorf("%w: id 0x%02X", errs.ErrUnsupportedBackend, c.backend.ID())
	}

	if c.minSize <= 0 {
		return fmt.Errorf("%w: minimum compression size must be greater than 0", errs.ErrInvalidConfiguration)
	}

	if c.minSize > maxMinSize {
		return fmt.Errorf("%w: minimum compression size must not exceed 1MB", errs.ErrInvalidConfiguration)
	}

	if c.maxSize != nil && *c.maxSize <= c.minSize {
		return fmt.Errorf("%w: maximum compression size must be greater than minimum compression size",
			errs.ErrInvalidConfiguration)
	}

	if c.level != nil {
		switch c.backend {
		case format.BackendZstd:
			if *c.level < compress.MinZstdLevel || *c.level > compress.MaxZstdLevel {
				return fmt.Errorf("%w: zstd compression level must be between %d and %d",
					errs.ErrInvalidConfiguration, compress.MinZstdLevel, compress.MaxZstdLevel)
			}
		case format.BackendLz4:
			return fmt.Errorf("%w: lz4 backend does not support compression levels", errs.ErrInvalidConfiguration)
		}
	}

	return nil
}

// ShouldCompress reports whether a value of the given size is eligible for
// compression under this configuration. It has no side effects.
func (c Config) ShouldCompress(size int) bool {
	if !c.enabled {
		return false
	}

	if size < c.minSize {
		return false
	}

	if c.maxSize != nil && size > *c.maxSize {
		return false
	}

	return true
}
