package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader wraps a Zstandard stream. Decoder concurrency is pinned to 1:
// the decoder downstream is a single sequential pass, so background decode
// goroutines buy nothing and would outlive the load call.
func newZstdReader(src io.Reader) (io.Reader, error) {
	d, err := zstd.NewReader(src,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd source: %w", err)
	}

	return d.IOReadCloser(), nil
}
