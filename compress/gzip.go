package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// newGzipReader wraps a gzip stream. The gzip header is validated up front so
// a corrupt archive fails here rather than as a bogus CDF magic later.
func newGzipReader(src io.Reader) (io.Reader, error) {
	r, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("gzip source: %w", err)
	}

	return r, nil
}
