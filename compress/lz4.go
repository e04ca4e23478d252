package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4WriterPool pools lz4.Writer instances for reuse; writers are reset
// onto the destination buffer before each use.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// lz4ReaderPool pools lz4.Reader instances for reuse.
var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

// lz4Codec implements LZ4 frame compression. The frame format records the
// payload internally and stores incompressible input as raw blocks, so any
// byte sequence round-trips. LZ4 is levels-free; the level argument is
// ignored.
type lz4Codec struct{}

var _ Codec = lz4Codec{}

// Compress compresses the input data into an LZ4 frame.
func (lz4Codec) Compress(data []byte, _ int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(lz4.CompressBlockBound(len(data)))

	w, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4 frame.
func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, _ := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(r)
	r.Reset(bytes.NewReader(data))

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return decompressed, nil
}
