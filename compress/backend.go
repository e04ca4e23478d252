package compress

import (
	"fmt"

	"github.com/glidekv/compression/errs"
	"github.com/glidekv/compression/format"
	"github.com/glidekv/compression/header"
)

// Backend pairs a raw codec with its wire identity.
//
// A Backend frames every compressed payload with the 5-byte magic header,
// recognizes payloads framed with its own id, and enforces the codec's
// level policy. Implementations are immutable after construction and safe
// for concurrent use.
type Backend interface {
	// Compress compresses data and returns the framed result. A nil level
	// selects the backend's default level.
	Compress(data []byte, level *int) ([]byte, error)

	// Decompress strips the frame and reverses the codec. It fails with
	// errs.ErrDecompressionFailed when data is not framed for this backend
	// or the codec rejects the payload.
	Decompress(data []byte) ([]byte, error)

	// IsCompressed reports whether data is framed for this backend.
	IsCompressed(data []byte) bool

	// Name returns the backend's display name.
	Name() string

	// DefaultLevel returns the backend's default compression level, or nil
	// for levels-free backends.
	DefaultLevel() *int

	// ID returns the backend id byte written into the magic header.
	ID() byte
}

// NewBackend constructs the Backend for the given identity.
// Returns errs.ErrUnsupportedBackend for identities outside the known set.
func NewBackend(backendType format.BackendType) (Backend, error) {
	switch backendType {
	case format.BackendZstd:
		return NewZstdBackend(), nil
	case format.BackendLz4:
		return NewLZ4Backend(), nil
	default:
		return nil, fmt.Errorf("%w: id 0x%02X", errs.ErrUnsupportedBackend, backendType.ID())
	}
}

// frame prepends the backend's magic header to a compressed payload.
func frame(backendID byte, compressed []byte) []byte {
	h := header.Make(backendID)
	result := make([]byte, 0, header.Size+len(compressed))
	result = append(result, h[:]...)

	return append(result, compressed...)
}

// isFramedFor reports whether buf carries a magic header with the given id.
func isFramedFor(backendID byte, buf []byte) bool {
	id, ok := header.BackendID(buf)

	return ok && id == backendID
}

// ZstdBackend is the Zstandard compression backend (wire id 0x01).
type ZstdBackend struct {
	defaultLevel int
	codec        zstdCodec
}

var _ Backend = (*ZstdBackend)(nil)

// NewZstdBackend creates a Zstd backend with the standard default level (3).
func NewZstdBackend() *ZstdBackend {
	return &ZstdBackend{defaultLevel: *format.BackendZstd.DefaultLevel()}
}

// NewZstdBackendWithLevel creates a Zstd backend with a custom default
// compression level. Fails with errs.ErrBackendInitializationFailed when
// the level is outside 1-22.
func NewZstdBackendWithLevel(level int) (*ZstdBackend, error) {
	if level < MinZstdLevel || level > MaxZstdLevel {
		return nil, fmt.Errorf("%w: zstd compression level must be between %d and %d, got %d",
			errs.ErrBackendInitializationFailed, MinZstdLevel, MaxZstdLevel, level)
	}

	return &ZstdBackend{defaultLevel: level}, nil
}

// Compress compresses data with Zstandard and frames the result.
//
// The level resolves to the supplied value or the backend default, and is
// validated on every call regardless of where it came from.
func (b *ZstdBackend) Compress(data []byte, level *int) ([]byte, error) {
	resolved := b.defaultLevel
	if level != nil {
		resolved = *level
	}

	if resolved < MinZstdLevel || resolved > MaxZstdLevel {
		return nil, fmt.Errorf("%w: zstd compression level must be between %d and %d, got %d",
			errs.ErrInvalidConfiguration, MinZstdLevel, MaxZstdLevel, resolved)
	}

	compressed, err := b.codec.Compress(data, resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrCompressionFailed, err)
	}

	return frame(b.ID(), compressed), nil
}

// Decompress strips the frame and reverses the Zstandard codec.
func (b *ZstdBackend) Decompress(data []byte) ([]byte, error) {
	if !b.IsCompressed(data) {
		return nil, fmt.Errorf("%w: data does not carry a valid %s header",
			errs.ErrDecompressionFailed, b.Name())
	}

	decompressed, err := b.codec.Decompress(data[header.Size:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDecompressionFailed, err)
	}

	return decompressed, nil
}

// IsCompressed reports whether data is framed for the Zstd backend.
func (b *ZstdBackend) IsCompressed(data []byte) bool {
	return isFramedFor(b.ID(), data)
}

// Name returns "zstd".
func (b *ZstdBackend) Name() string { return format.BackendZstd.String() }

// DefaultLevel returns the backend's default compression level.
func (b *ZstdBackend) DefaultLevel() *int {
	level := b.defaultLevel

	return &level
}

// ID returns the Zstd backend id byte (0x01).
func (b *ZstdBackend) ID() byte { return format.BackendZstd.ID() }

// LZ4Backend is the LZ4 frame compression backend (wire id 0x02).
//
// LZ4 is levels-free: DefaultLevel returns nil and any level supplied to
// Compress is ignored.
type LZ4Backend struct {
	codec lz4Codec
}

var _ Backend = (*LZ4Backend)(nil)

// NewLZ4Backend creates an LZ4 backend.
func NewLZ4Backend() *LZ4Backend {
	return &LZ4Backend{}
}

// Compress compresses data with LZ4 and frames the result.
func (b *LZ4Backend) Compress(data []byte, _ *int) ([]byte, error) {
	compressed, err := b.codec.Compress(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrCompressionFailed, err)
	}

	return frame(b.ID(), compressed), nil
}

// Decompress strips the frame and reverses the LZ4 codec.
func (b *LZ4Backend) Decompress(data []byte) ([]byte, error) {
	if !b.IsCompressed(data) {
		return nil, fmt.Errorf("%w: data does not carry a valid %s header",
			errs.ErrDecompressionFailed, b.Name())
	}

	decompressed, err := b.codec.Decompress(data[header.Size:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDecompressionFailed, err)
	}

	return decompressed, nil
}

// IsCompressed reports whether data is framed for the LZ4 backend.
func (b *LZ4Backend) IsCompressed(data []byte) bool {
	return isFramedFor(b.ID(), data)
}

// Name returns "lz4".
func (b *LZ4Backend) Name() string { return format.BackendLz4.String() }

// DefaultLevel returns nil: LZ4 does not use compression levels.
func (b *LZ4Backend) DefaultLevel() *int { return nil }

// ID returns the LZ4 backend id byte (0x02).
func (b *LZ4Backend) ID() byte { return format.BackendLz4.ID() }
