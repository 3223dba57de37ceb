package compress

import (
	"bufio"
	"bytes"
	"io"
)

// Leading magic bytes of the supported whole-stream compression formats.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// NewReader returns a reader that yields the uncompressed bytes of src.
//
// The first bytes of src are peeked, not consumed: when they match a known
// compression magic the matching decompressor wraps the stream, otherwise
// src is returned as-is (buffered). Sources too short to carry any magic are
// also passed through; the decoder reports the short read.
func NewReader(src io.Reader) (io.Reader, error) {
	br := bufio.NewReader(src)

	head, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return newGzipReader(br)
	case bytes.HasPrefix(head, zstdMagic):
		return newZstdReader(br)
	case bytes.HasPrefix(head, lz4Magic):
		return newLZ4Reader(br), nil
	default:
		return br, nil
	}
}
