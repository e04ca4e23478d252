package compression

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/glidekv/compression/compress"
	"github.com/glidekv/compression/errs"
)

// Manager coordinates compression and decompression for one client session.
//
// A Manager owns exactly one backend and one validated Config. It is
// immutable after construction and safe for concurrent use from any number
// of in-flight commands; no method acquires a lock.
//
// The strict CompressValue/DecompressValue pair surfaces errors to the
// caller. The fail-open TryCompressValue/TryDecompressValue pair never does:
// on any internal failure it degrades to the original bytes, because a
// compression hiccup must never turn into a command failure. The live
// command pipeline uses the fail-open pair.
type Manager struct {
	backend compress.Backend
	config  Config
	logger  *zap.Logger
}

// ManagerOption customizes a Manager at construction time.
type ManagerOption func(*Manager)

// WithLogger sets the logger the fail-open methods use to record swallowed
// errors. The default is a nop logger, keeping the library silent.
func WithLogger(logger *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager from a backend and a configuration.
//
// The configuration is validated first; the backend's id must then match
// the configured backend identity, otherwise construction fails with
// errs.ErrInvalidConfiguration. A manager is never silently "fixed up".
func NewManager(backend compress.Backend, config Config, opts ...ManagerOption) (*Manager, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend must not be nil", errs.ErrInvalidConfiguration)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if backend.ID() != config.Backend().ID() {
		return nil, fmt.Errorf("%w: backend mismatch: configuration expects %s (0x%02X), got backend with id 0x%02X",
			errs.ErrInvalidConfiguration, config.Backend(), config.Backend().ID(), backend.ID())
	}

	m := &Manager{
		backend: backend,
		config:  config,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// ShouldCompress reports whether the value is eligible for compression
// under the manager's configuration.
func (m *Manager) ShouldCompress(value []byte) bool {
	return m.config.ShouldCompress(len(value))
}

// CompressValue compresses a value using the configured backend.
//
// It fails with errs.ErrInvalidConfiguration when compression is disabled
// or the value does not meet the compression criteria. A value already
// framed for this backend is returned unchanged, preventing double
// compression.
func (m *Manager) CompressValue(value []byte) ([]byte, error) {
	if !m.config.Enabled() {
		return nil, fmt.Errorf("%w: compression is disabled", errs.ErrInvalidConfiguration)
	}

	if !m.ShouldCompress(value) {
		return nil, fmt.Errorf("%w: value does not meet compression criteria", errs.ErrInvalidConfiguration)
	}

	if m.backend.IsCompressed(value) {
		return value, nil
	}

	return m.backend.Compress(value, m.config.Level())
}

// DecompressValue decompresses a value using the configured backend.
//
// Data not framed for this backend passes through unchanged: it is either
// uncompressed or belongs to a foreign backend, and in both cases the bytes
// are returned as-is. When compression is disabled the value also passes
// through unchanged.
func (m *Manager) DecompressValue(value []byte) ([]byte, error) {
	if !m.config.Enabled() {
		return value, nil
	}

	if !m.backend.IsCompressed(value) {
		return value, nil
	}

	return m.backend.Decompress(value)
}

// TryCompressValue compresses a value with graceful fallback: on any
// failure, or when the value is not eligible, the original value is
// returned instead.
func (m *Manager) TryCompressValue(value []byte) []byte {
	if !m.config.Enabled() || !m.ShouldCompress(value) {
		return value
	}

	compressed, err := m.CompressValue(value)
	if err != nil {
		m.logger.Debug("compression failed, keeping original value",
			zap.String("backend", m.backend.Name()),
			zap.Int("size", len(value)),
			zap.Error(err))

		return value
	}

	return compressed
}

// TryDecompressValue decompresses a value with graceful fallback: on any
// failure the original value is returned instead.
func (m *Manager) TryDecompressValue(value []byte) []byte {
	decompressed, err := m.DecompressValue(value)
	if err != nil {
		m.logger.Debug("decompression failed, keeping original value",
			zap.String("backend", m.backend.Name()),
			zap.Int("size", len(value)),
			zap.Error(err))

		return value
	}

	return decompressed
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config { return m.config }

// BackendName returns the display name of the manager's backend.
func (m *Manager) BackendName() string { return m.backend.Name() }

// IsEnabled reports whether compression is enabled.
func (m *Manager) IsEnabled() bool { return m.config.Enabled() }
