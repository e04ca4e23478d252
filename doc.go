// Package compression provides a transparent, pluggable compression layer
// for a key-value client's command path.
//
// The layer sits between command dispatch and the wire. Per command and per
// value it decides whether to compress outgoing payloads and decompress
// incoming ones, using a self-describing 5-byte magic header so compressed
// and uncompressed values coexist safely on the same connection and across
// backend changes.
//
// # Core Pieces
//
//   - Config: immutable, validated settings describing whether/when/how to
//     compress (backend, level, size thresholds).
//   - Manager: owns one backend and one validated Config; exposes a strict
//     API that surfaces errors and a fail-open API that never does.
//   - ClassifyCommand: pure, total mapping from a command identifier to its
//     compression behavior.
//   - ProcessCommandArgs / ProcessResponse: the two pipeline adapters that
//     splice the manager into the outgoing argument path and the incoming
//     response path.
//
// # Basic Usage
//
//	backend := compress.NewZstdBackend()
//	cfg := compression.NewConfig(format.BackendZstd).
//	    WithMinSize(64).
//	    WithMaxSize(1024 * 1024)
//
//	manager, err := compression.NewManager(backend, cfg)
//	if err != nil {
//	    return err
//	}
//
//	// Outgoing: compress the SET value in place when eligible.
//	args := [][]byte{[]byte("key"), payload}
//	_ = compression.ProcessCommandArgs(args, protocol.Set, manager)
//
//	// Incoming: decompress the GET reply when eligible.
//	reply = compression.ProcessResponse(reply, protocol.Get, manager)
//
// # Fail-Open Semantics
//
// Compression is an optimization, never allowed to change command semantics
// on failure. The pipeline adapters and the manager's TryCompressValue and
// TryDecompressValue degrade to the original bytes on any internal error;
// only the strict CompressValue and DecompressValue surface errors, for
// callers that must observe them. Configuration and construction errors are
// always fail-fast.
//
// # Concurrency
//
// A Manager is immutable after construction and safe for concurrent use
// without external locking; one instance is expected to be shared by every
// command issued over a client session.
package compression
