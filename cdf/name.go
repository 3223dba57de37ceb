package cdf

import (
	"fmt"
	"unicode/utf8"

	"github.com/netcdf-go/netcdf/errs"
	"github.com/netcdf-go/netcdf/format"
	"github.com/netcdf-go/netcdf/internal/pool"
)

// decodeName reads a 4-byte big-endian length, that many name bytes, and the
// padding to the next 4-byte boundary. Name bytes must be valid UTF-8;
// invalid bytes are a decode error, never silently replaced.
func decodeName(c *cursor) (string, error) {
	n, err := c.readUint32()
	if err != nil {
		return "", fmt.Errorf("name length: %w", err)
	}

	total := int(n) + format.Padding(int(n))

	bb := pool.GetScratch()
	defer pool.PutScratch(bb)

	bb.ExtendOrGrow(total)
	buf := bb.Bytes()
	if err := c.readExact(buf); err != nil {
		return "", fmt.Errorf("name bytes: %w", err)
	}

	raw := buf[:n]
	if !utf8.Valid(raw) {
		return "", &errs.NameError{Bytes: append([]byte(nil), raw...)}
	}

	return string(raw), nil
}
