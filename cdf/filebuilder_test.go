package cdf

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/netcdf-go/netcdf/format"
)

// fileBuilder assembles classic-format byte streams for tests, big-endian
// with 4-byte alignment, the same shapes the format specification shows.
type fileBuilder struct {
	buf bytes.Buffer
}

func newFile(magic format.Tag) *fileBuilder {
	b := &fileBuilder{}
	b.tag(magic)

	return b
}

func (b *fileBuilder) tag(t format.Tag) *fileBuilder {
	b.buf.Write(t[:])
	return b
}

func (b *fileBuilder) u32(v uint32) *fileBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])

	return b
}

func (b *fileBuilder) u64(v uint64) *fileBuilder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf.Write(tmp[:])

	return b
}

func (b *fileBuilder) i16(v int16) *fileBuilder {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(v))
	b.buf.Write(tmp[:])

	return b
}

func (b *fileBuilder) f32(v float32) *fileBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *fileBuilder) f64(v float64) *fileBuilder {
	return b.u64(math.Float64bits(v))
}

func (b *fileBuilder) raw(p []byte) *fileBuilder {
	b.buf.Write(p)
	return b
}

// pad appends zero fill bytes up to the next 4-byte boundary of n payload bytes.
func (b *fileBuilder) pad(n int) *fileBuilder {
	b.buf.Write(make([]byte, format.Padding(n)))
	return b
}

// name appends a length-prefixed padded name.
func (b *fileBuilder) name(s string) *fileBuilder {
	b.u32(uint32(len(s)))
	b.buf.WriteString(s)

	return b.pad(len(s))
}

// emptyList appends the two zero tags of an absent list.
func (b *fileBuilder) emptyList() *fileBuilder {
	return b.tag(format.TagZero).tag(format.TagZero)
}

// list appends a list marker and element count.
func (b *fileBuilder) list(marker format.Tag, count uint32) *fileBuilder {
	return b.tag(marker).u32(count)
}

// dim appends one dimension entry.
func (b *fileBuilder) dim(name string, length uint32) *fileBuilder {
	return b.name(name).u32(length)
}

// typeTag appends an element type tag.
func (b *fileBuilder) typeTag(t format.ElementType) *fileBuilder {
	return b.u32(uint32(t))
}

func (b *fileBuilder) bytes() []byte {
	return b.buf.Bytes()
}

func (b *fileBuilder) reader() *bytes.Reader {
	return bytes.NewReader(b.bytes())
}

// emptyHeader returns a builder holding a complete header with zero
// dimensions, attributes and variables.
func emptyHeader(magic format.Tag, numrecs uint32) *fileBuilder {
	return newFile(magic).u32(numrecs).emptyList().emptyList().emptyList()
}
