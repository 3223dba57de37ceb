package cdf

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netcdf-go/netcdf/errs"
	"github.com/netcdf-go/netcdf/format"
)

func TestDecodeHeaderEmptyFile(t *testing.T) {
	c := newCursor(emptyHeader(format.MagicCDF1, 0).reader())

	h, err := decodeHeader(c)
	require.NoError(t, err)

	require.Equal(t, format.CDF1, h.Version)
	require.Equal(t, FixedRecords(0), h.NumRecs)
	require.Empty(t, h.Dimensions)
	require.Empty(t, h.Attributes)
	require.Empty(t, h.Variables)
}

func TestDecodeVersion(t *testing.T) {
	t.Run("CDF-1", func(t *testing.T) {
		c := newCursor(newFile(format.MagicCDF1).reader())
		v, err := decodeVersion(c)
		require.NoError(t, err)
		require.Equal(t, format.CDF1, v)
	})

	t.Run("CDF-2", func(t *testing.T) {
		c := newCursor(newFile(format.MagicCDF2).reader())
		v, err := decodeVersion(c)
		require.NoError(t, err)
		require.Equal(t, format.CDF2, v)
	})

	t.Run("HDF5 variant is recognized but rejected", func(t *testing.T) {
		c := newCursor(newFile(format.MagicHDF5).reader())
		_, err := decodeVersion(c)
		require.ErrorIs(t, err, errs.ErrUnsupportedVariant)
		require.NotErrorIs(t, err, errs.ErrUnknownVersion)
	})

	t.Run("unknown magic carries the raw tag", func(t *testing.T) {
		c := newCursor(bytes.NewReader([]byte{'N', 'O', 'P', 'E'}))
		_, err := decodeVersion(c)
		require.ErrorIs(t, err, errs.ErrUnknownVersion)

		var unknown *errs.UnknownVersionError
		require.True(t, errors.As(err, &unknown))
		require.Equal(t, [4]byte{'N', 'O', 'P', 'E'}, unknown.Tag)
	})

	t.Run("empty source is a short read", func(t *testing.T) {
		c := newCursor(bytes.NewReader(nil))
		_, err := decodeVersion(c)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestDecodeNumRecs(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		c := newCursor(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x2a}))
		rc, err := decodeNumRecs(c)
		require.NoError(t, err)
		require.Equal(t, FixedRecords(42), rc)
		require.Equal(t, "42", rc.String())
	})

	t.Run("streaming sentinel", func(t *testing.T) {
		c := newCursor(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
		rc, err := decodeNumRecs(c)
		require.NoError(t, err)
		require.True(t, rc.Streaming)
		require.Equal(t, "streaming", rc.String())
	})
}

func TestDecodeDimList(t *testing.T) {
	b := newFile(format.MagicCDF1).u32(0).
		list(format.TagDimension, 2).
		dim("time", 0).
		dim("lat", 181).
		emptyList().emptyList()

	c := newCursor(b.reader())
	h, err := decodeHeader(c)
	require.NoError(t, err)

	require.Equal(t, []Dimension{{Name: "time", Length: 0}, {Name: "lat", Length: 181}}, h.Dimensions)
	require.True(t, h.Dimensions[0].IsRecord())
	require.False(t, h.Dimensions[1].IsRecord())

	id, ok := h.UnlimitedDimension()
	require.True(t, ok)
	require.Equal(t, uint32(0), id)
}

func TestDecodeDimListTagMismatch(t *testing.T) {
	// First tag neither zero nor the dimension marker.
	b := newFile(format.MagicCDF1).u32(0).
		tag(format.Tag{0x00, 0x00, 0x00, 0x99}).
		u32(1)

	c := newCursor(b.reader())
	h, err := decodeHeader(c)

	require.Nil(t, h)
	require.ErrorIs(t, err, errs.ErrListTagMismatch)

	var mismatch *errs.TagMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "dim_list", mismatch.List)
	require.Equal(t, [4]byte{0x00, 0x00, 0x00, 0x99}, mismatch.Tag1)
	require.Equal(t, [4]byte{0x00, 0x00, 0x00, 0x01}, mismatch.Tag2)
}

func TestDecodeGlobalAttributes(t *testing.T) {
	b := newFile(format.MagicCDF2).u32(0).
		emptyList().
		list(format.TagAttribute, 2).
		name("title").typeTag(format.Char).u32(5).raw([]byte("hello")).pad(5).
		name("levels").typeTag(format.Short).u32(3).i16(1).i16(2).i16(3).pad(6).
		emptyList()

	c := newCursor(b.reader())
	h, err := decodeHeader(c)
	require.NoError(t, err)

	require.Len(t, h.Attributes, 2)

	title := h.Attributes[0]
	require.Equal(t, "title", title.Name)
	require.Equal(t, format.Char, title.Type)
	require.Equal(t, "hello", title.Values.Chars)

	levels := h.Attributes[1]
	require.Equal(t, "levels", levels.Name)
	require.Equal(t, []int16{1, 2, 3}, levels.Values.Shorts)
}

func TestDecodeAttributeUnknownElementType(t *testing.T) {
	// Type tag 0x00000007 fails before any values are read.
	b := newFile(format.MagicCDF1).u32(0).
		emptyList().
		list(format.TagAttribute, 1).
		name("bad").u32(7)

	c := newCursor(b.reader())
	h, err := decodeHeader(c)

	require.Nil(t, h)
	require.ErrorIs(t, err, errs.ErrUnknownElementType)

	var unknown *errs.UnknownElementTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, [4]byte{0x00, 0x00, 0x00, 0x07}, unknown.Tag)
}

func TestDecodeVariables(t *testing.T) {
	t.Run("CDF-1 offsets are 4 bytes", func(t *testing.T) {
		b := newFile(format.MagicCDF1).u32(0).
			list(format.TagDimension, 1).dim("x", 3).
			emptyList().
			list(format.TagVariable, 1).
			name("v").u32(1).u32(0). // one dimension id
			emptyList().             // variable attributes
			typeTag(format.Int).u32(12).u32(0x84)

		c := newCursor(b.reader())
		h, err := decodeHeader(c)
		require.NoError(t, err)

		require.Len(t, h.Variables, 1)
		v := h.Variables[0]
		require.Equal(t, "v", v.Name)
		require.Equal(t, []uint32{0}, v.DimIDs)
		require.Equal(t, format.Int, v.Type)
		require.Equal(t, uint32(12), v.VSize)
		require.Equal(t, uint64(0x84), v.Offset)
		require.False(t, h.IsRecordVariable(&v))
	})

	t.Run("CDF-2 offsets are 8 bytes", func(t *testing.T) {
		b := newFile(format.MagicCDF2).u32(0).
			list(format.TagDimension, 1).dim("x", 3).
			emptyList().
			list(format.TagVariable, 1).
			name("v").u32(1).u32(0).
			emptyList().
			typeTag(format.Int).u32(12).u64(0x1_0000_0000)

		c := newCursor(b.reader())
		h, err := decodeHeader(c)
		require.NoError(t, err)
		require.Equal(t, uint64(0x1_0000_0000), h.Variables[0].Offset)
	})

	t.Run("variable attribute list reuses the shared grammar", func(t *testing.T) {
		b := newFile(format.MagicCDF1).u32(0).
			emptyList().
			emptyList().
			list(format.TagVariable, 1).
			name("t").u32(0). // scalar
			list(format.TagAttribute, 1).
			name("units").typeTag(format.Char).u32(1).raw([]byte("K")).pad(1).
			typeTag(format.Double).u32(8).u32(0x80)

		c := newCursor(b.reader())
		h, err := decodeHeader(c)
		require.NoError(t, err)

		v := h.Variables[0]
		require.Empty(t, v.DimIDs)
		require.Len(t, v.Attributes, 1)
		require.Equal(t, "units", v.Attributes[0].Name)
		require.Equal(t, "K", v.Attributes[0].Values.Chars)
	})
}

func TestDecodeOffsetWithoutVersion(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{0, 0, 0, 0}))

	_, err := decodeOffset(c, format.VersionUnset)
	require.ErrorIs(t, err, errs.ErrUnresolvedOffsetVersion)
}

func TestDecodeHeaderMultipleRecordDims(t *testing.T) {
	b := newFile(format.MagicCDF1).u32(0).
		list(format.TagDimension, 2).
		dim("time", 0).
		dim("also_time", 0)

	c := newCursor(b.reader())
	h, err := decodeHeader(c)

	require.Nil(t, h)
	require.ErrorIs(t, err, errs.ErrMultipleRecordDims)
}

func TestDecodeHeaderInvalidName(t *testing.T) {
	b := newFile(format.MagicCDF1).u32(0).
		list(format.TagDimension, 1).
		u32(2).raw([]byte{0xff, 0xfe}).pad(2). // not UTF-8
		u32(4)

	c := newCursor(b.reader())
	h, err := decodeHeader(c)

	require.Nil(t, h)
	require.ErrorIs(t, err, errs.ErrInvalidName)

	var nameErr *errs.NameError
	require.True(t, errors.As(err, &nameErr))
	require.Equal(t, []byte{0xff, 0xfe}, nameErr.Bytes)
}

func TestDecodeHeaderTruncated(t *testing.T) {
	full := emptyHeader(format.MagicCDF1, 0).bytes()

	// Every proper prefix fails with a short read, never a partial header.
	for cut := 0; cut < len(full); cut += 4 {
		c := newCursor(bytes.NewReader(full[:cut]))
		h, err := decodeHeader(c)
		require.Nil(t, h, "prefix of %d bytes", cut)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "prefix of %d bytes", cut)
	}
}

func TestHeaderDimensionLookup(t *testing.T) {
	h := &Header{Dimensions: []Dimension{{Name: "x", Length: 4}}}

	d, ok := h.Dimension(0)
	require.True(t, ok)
	require.Equal(t, "x", d.Name)

	_, ok = h.Dimension(1)
	require.False(t, ok)

	_, ok = h.UnlimitedDimension()
	require.False(t, ok)
}
