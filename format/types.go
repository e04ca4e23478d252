// Package format defines the closed set of compression backend identities
// and their wire-level properties.
package format

import (
	"fmt"
	"strings"

	"github.com/glidekv/compression/errs"
)

// BackendType identifies a compression backend. The value is the single
// byte written into the magic header of every compressed payload, so the
// constants below are part of the wire format and must never be reassigned.
type BackendType uint8

const (
	// BackendZstd represents Zstandard compression. Supports levels 1-22,
	// with 3 as the default.
	BackendZstd BackendType = 0x01

	// BackendLz4 represents LZ4 block compression. LZ4 does not use
	// compression levels.
	BackendLz4 BackendType = 0x02
)

const zstdDefaultLevel = 3

// ID returns the backend identifier byte used in the magic header.
func (b BackendType) ID() byte {
	return byte(b)
}

func (b BackendType) String() string {
	switch b {
	case BackendZstd:
		return "zstd"
	case BackendLz4:
		return "lz4"
	default:
		return "unknown"
	}
}

// DefaultLevel returns the default compression level for the backend,
// or nil for backends that do not use levels.
func (b BackendType) DefaultLevel() *int {
	if b == BackendZstd {
		level := zstdDefaultLevel

		return &level
	}

	return nil
}

// IsValid reports whether b is one of the known backend identities.
func (b BackendType) IsValid() bool {
	return b == BackendZstd || b == BackendLz4
}

// ParseBackendType parses a backend name into its BackendType.
//
// Accepts "zstd", "zstandard" and "lz4", case-insensitively. Returns
// errs.ErrUnsupportedBackend for anything else.
func ParseBackendType(s string) (BackendType, error) {
	switch strings.ToLower(s) {
	case "zstd", "zstandard":
		return BackendZstd, nil
	case "lz4":
		return BackendLz4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedBackend, s)
	}
}
