// Package errs defines the sentinel errors shared by all compression
// packages.
//
// Callers should match errors with errors.Is rather than comparing strings;
// every error returned by this module wraps exactly one of these sentinels.
package errs

import "errors"

var (
	// ErrCompressionFailed indicates the codec rejected the input data.
	ErrCompressionFailed = errors.New("compression failed")

	// ErrDecompressionFailed indicates the data does not carry a valid
	// header for the backend, or the codec rejected the compressed payload.
	ErrDecompressionFailed = errors.New("decompression failed")

	// ErrUnsupportedBackend indicates an unknown or unparseable backend
	// identity.
	ErrUnsupportedBackend = errors.New("unsupported compression backend")

	// ErrInvalidConfiguration indicates a configuration validation failure,
	// use of a disabled configuration, or a backend/configuration mismatch.
	ErrInvalidConfiguration = errors.New("invalid compression configuration")

	// ErrBackendInitializationFailed indicates a backend could not be
	// constructed, e.g. an out-of-range custom default level.
	ErrBackendInitializationFailed = errors.New("backend initialization failed")
)
