//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. The klauspost/compress/zstd library is explicitly designed for
// decoder reuse: "The decoder has been designed to operate without
// allocations after a warmup."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPools pools zstd encoders per encoder speed level. The pure Go
// library exposes four speed levels; zstd levels 1-22 are mapped onto them
// with zstd.EncoderLevelFromZstd.
var zstdEncoderPools [zstd.SpeedBestCompression + 1]*sync.Pool

func init() {
	for speed := zstd.SpeedFastest; speed <= zstd.SpeedBestCompression; speed++ {
		zstdEncoderPools[speed] = &sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(speed),
					zstd.WithEncoderCRC(false), // Framing layer does not rely on CRC
				)
				if err != nil {
					// This should never happen with valid options
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}

				return encoder
			},
		}
	}
}

// Compress compresses the input data using Zstandard at the given level.
// Uses a pooled encoder for the mapped speed level.
func (zstdCodec) Compress(data []byte, level int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	pool := zstdEncoderPools[zstd.EncoderLevelFromZstd(level)]
	encoder, _ := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data using a pooled decoder.
func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder.
	// Even if this call fails, the decoder can be reused for the next call.
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
