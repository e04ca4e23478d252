// Package compress provides the compression backends used for transparent
// value compression.
//
// The package is split into two layers:
//
//   - Codec: a raw compression algorithm (zstd, lz4). Codecs know nothing
//     about framing; they transform bytes to bytes.
//   - Backend: a codec paired with its wire identity. Backends frame every
//     compressed payload with the 5-byte magic header from the header
//     package, recognize their own framed output, and enforce the codec's
//     level policy.
//
// # Backends
//
// **Zstandard** (format.BackendZstd, id 0x01)
//
//	backend := compress.NewZstdBackend()
//	framed, _ := backend.Compress(data, nil) // default level 3
//
// Levels 1-22 are accepted; the level is validated on every compress call.
// Two codec implementations are provided behind build tags: a cgo binding
// (valyala/gozstd) with native level granularity, and a pure Go fallback
// (klauspost/compress/zstd) that maps zstd levels onto the library's speed
// levels. Exactly one of the two compiles into any given build.
//
// **LZ4** (format.BackendLz4, id 0x02)
//
//	backend := compress.NewLZ4Backend()
//	framed, _ := backend.Compress(data, nil)
//
// LZ4 frame compression is levels-free: the backend has no default level
// and ignores any supplied level. The frame format stores incompressible
// input as raw blocks, so any byte sequence round-trips.
//
// # Identity and coexistence
//
// A backend only claims payloads framed with its own id byte:
//
//	zstd := compress.NewZstdBackend()
//	lz4 := compress.NewLZ4Backend()
//	framed, _ := lz4.Compress(data, nil)
//	zstd.IsCompressed(framed) // false: foreign id, treated as plain bytes
//
// This keeps mixed-backend data safe on one connection and across backend
// changes: decompression simply passes foreign or unframed data through.
//
// # Thread safety
//
// Backends are immutable after construction and safe for concurrent use.
// Codec implementations pool their encoder/decoder state internally.
package compress
