//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard at the given level.
// gozstd accepts the full zstd level range natively.
func (zstdCodec) Compress(data []byte, level int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, level), nil
}

// Decompress decompresses Zstd-compressed data.
func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
