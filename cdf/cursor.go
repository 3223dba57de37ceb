package cdf

import (
	"io"

	"github.com/netcdf-go/netcdf/endian"
	"github.com/netcdf-go/netcdf/format"
)

// cursor is a forward-only reader over the source stream. Every decode step
// goes through readExact, so a source ending before a declared run completes
// always surfaces as an error, never as a silently truncated result.
//
// All multi-byte reads use the big-endian engine; the wire format has no
// other byte order.
type cursor struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

func newCursor(r io.Reader) *cursor {
	return &cursor{
		r:      r,
		engine: endian.GetBigEndianEngine(),
	}
}

// readExact fills p completely or fails. A clean EOF mid-grammar is still a
// short read from the decoder's point of view.
func (c *cursor) readExact(p []byte) error {
	if _, err := io.ReadFull(c.r, p); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}

		return err
	}

	return nil
}

// readTag reads one 4-byte marker in file byte order.
func (c *cursor) readTag() (format.Tag, error) {
	var t format.Tag
	if err := c.readExact(t[:]); err != nil {
		return format.Tag{}, err
	}

	return t, nil
}

func (c *cursor) readUint32() (uint32, error) {
	b := c.scratch[:4]
	if err := c.readExact(b); err != nil {
		return 0, err
	}

	return c.engine.Uint32(b), nil
}

func (c *cursor) readUint64() (uint64, error) {
	b := c.scratch[:8]
	if err := c.readExact(b); err != nil {
		return 0, err
	}

	return c.engine.Uint64(b), nil
}

// tagUint32 interprets a previously read tag as a big-endian count.
func (c *cursor) tagUint32(t format.Tag) uint32 {
	return c.engine.Uint32(t[:])
}

// remaining drains the rest of the source into memory. Only streaming
// record-count resolution uses it: a forward-only source cannot report its
// length, so the record region is buffered once and measured.
func (c *cursor) remaining() ([]byte, error) {
	return io.ReadAll(c.r)
}
