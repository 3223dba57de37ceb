package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Reader wraps an lz4 frame stream. Frame validation happens on the
// first Read, so there is no error path here.
func newLZ4Reader(src io.Reader) io.Reader {
	return lz4.NewReader(src)
}
