package compress

// Codec is a raw compression algorithm. Implementations transform bytes to
// bytes and apply no framing; framing is the Backend's job.
//
// Memory management:
//   - Returned slices are newly allocated and owned by the caller
//   - Input slices are not modified
//   - Internal encoder/decoder state may be pooled for reuse
//
// Thread safety: all Codec implementations in this package are safe for
// concurrent use.
type Codec interface {
	// Compress compresses data at the given level. Codecs for levels-free
	// algorithms ignore the level argument.
	Compress(data []byte, level int) ([]byte, error)

	// Decompress reverses Compress. It returns an error if the input is
	// corrupted or was not produced by this codec.
	Decompress(data []byte) ([]byte, error)
}
