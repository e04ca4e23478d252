package compress

// Valid zstd compression level bounds, both inclusive.
const (
	MinZstdLevel = 1
	MaxZstdLevel = 22
)

// zstdCodec implements the Zstandard algorithm. The method set lives in
// zstd_cgo.go (valyala/gozstd) or zstd_pure.go (klauspost/compress/zstd)
// depending on whether cgo is available.
type zstdCodec struct{}

var _ Codec = zstdCodec{}
