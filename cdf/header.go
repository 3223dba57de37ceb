package cdf

import (
	"fmt"
	"strconv"

	"github.com/netcdf-go/netcdf/errs"
	"github.com/netcdf-go/netcdf/format"
)

// Dimension is one named axis. Length 0 marks the single permitted
// unlimited (record) dimension. Variables reference dimensions by
// positional id, they do not own them.
type Dimension struct {
	Name   string
	Length uint32
}

// IsRecord reports whether this is the unlimited dimension.
func (d Dimension) IsRecord() bool {
	return d.Length == 0
}

// Attribute is one named, typed value run, owned by the global list or by
// exactly one variable.
type Attribute struct {
	Name   string
	Type   format.ElementType
	Values Values
}

// Variable is one variable descriptor from var_list. Its data lives in the
// data section at Offset; one slab is VSize bytes.
type Variable struct {
	Name       string
	DimIDs     []uint32
	Attributes []Attribute
	Type       format.ElementType
	VSize      uint32 // 4-byte-padded byte size of one slab
	Offset     uint64 // begin position: 32 bits on the wire in CDF-1, 64 in CDF-2
}

// RecordCount is the numrecs header field: either a fixed count or the
// streaming sentinel, meaning the writer did not know the final count and it
// must be derived from file geometry.
type RecordCount struct {
	Streaming bool
	N         uint32
}

// FixedRecords returns a known record count.
func FixedRecords(n uint32) RecordCount {
	return RecordCount{N: n}
}

// StreamingRecords returns the unknown-count sentinel.
func StreamingRecords() RecordCount {
	return RecordCount{Streaming: true}
}

func (rc RecordCount) String() string {
	if rc.Streaming {
		return "streaming"
	}

	return strconv.FormatUint(uint64(rc.N), 10)
}

// Header is the decoded file header. It is immutable once built; the data
// section pass only reads it.
type Header struct {
	Version    format.Version
	NumRecs    RecordCount
	Dimensions []Dimension
	Attributes []Attribute
	Variables  []Variable
}

// Dimension returns the dimension referenced by a positional id.
func (h *Header) Dimension(id uint32) (Dimension, bool) {
	if int(id) >= len(h.Dimensions) {
		return Dimension{}, false
	}

	return h.Dimensions[id], true
}

// UnlimitedDimension returns the id of the record dimension, if the file
// declares one.
func (h *Header) UnlimitedDimension() (uint32, bool) {
	for i, d := range h.Dimensions {
		if d.IsRecord() {
			return uint32(i), true
		}
	}

	return 0, false
}

// IsRecordVariable reports whether v's outermost dimension is the record
// dimension.
func (h *Header) IsRecordVariable(v *Variable) bool {
	if len(v.DimIDs) == 0 {
		return false
	}

	d, ok := h.Dimension(v.DimIDs[0])

	return ok && d.IsRecord()
}

// decodeHeader runs the strict header sequence: version, numrecs, dim_list,
// att_list, var_list. Any step failing aborts the whole header.
func decodeHeader(c *cursor) (*Header, error) {
	version, err := decodeVersion(c)
	if err != nil {
		return nil, err
	}

	numrecs, err := decodeNumRecs(c)
	if err != nil {
		return nil, fmt.Errorf("numrecs: %w", err)
	}

	dims, err := decodeDimList(c)
	if err != nil {
		return nil, err
	}
	if err := checkSingleRecordDim(dims); err != nil {
		return nil, err
	}

	atts, err := decodeAttList(c)
	if err != nil {
		return nil, err
	}

	vars, err := decodeVarList(c, version)
	if err != nil {
		return nil, err
	}

	return &Header{
		Version:    version,
		NumRecs:    numrecs,
		Dimensions: dims,
		Attributes: atts,
		Variables:  vars,
	}, nil
}

func decodeVersion(c *cursor) (format.Version, error) {
	tag, err := c.readTag()
	if err != nil {
		return format.VersionUnset, fmt.Errorf("version magic: %w", err)
	}

	switch tag {
	case format.MagicCDF1:
		return format.CDF1, nil
	case format.MagicCDF2:
		return format.CDF2, nil
	case format.MagicHDF5:
		return format.VersionUnset, errs.ErrUnsupportedVariant
	default:
		return format.VersionUnset, &errs.UnknownVersionError{Tag: tag}
	}
}

func decodeNumRecs(c *cursor) (RecordCount, error) {
	tag, err := c.readTag()
	if err != nil {
		return RecordCount{}, err
	}

	if tag == format.TagStreaming {
		return StreamingRecords(), nil
	}

	return FixedRecords(c.tagUint32(tag)), nil
}

// decodeListLen reads the two leading tags shared by all three lists. Both
// zero means an empty list with no further reads; otherwise the first tag
// must equal the list's marker and the second is the element count.
func decodeListLen(c *cursor, list string, marker format.Tag) (int, error) {
	t1, err := c.readTag()
	if err != nil {
		return 0, fmt.Errorf("%s tag: %w", list, err)
	}

	t2, err := c.readTag()
	if err != nil {
		return 0, fmt.Errorf("%s count: %w", list, err)
	}

	switch {
	case t1 == format.TagZero && t2 == format.TagZero:
		return 0, nil
	case t1 == marker:
		return int(c.tagUint32(t2)), nil
	default:
		return 0, &errs.TagMismatchError{List: list, Tag1: t1, Tag2: t2}
	}
}

func decodeDimList(c *cursor) ([]Dimension, error) {
	n, err := decodeListLen(c, "dim_list", format.TagDimension)
	if err != nil {
		return nil, err
	}

	dims := make([]Dimension, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		d, err := decodeDimension(c)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		dims = append(dims, d)
	}

	return dims, nil
}

func decodeDimension(c *cursor) (Dimension, error) {
	name, err := decodeName(c)
	if err != nil {
		return Dimension{}, err
	}

	length, err := c.readUint32()
	if err != nil {
		return Dimension{}, fmt.Errorf("length: %w", err)
	}

	return Dimension{Name: name, Length: length}, nil
}

// decodeAttList decodes one attribute list. The same grammar serves the
// global list and each variable's own list.
func decodeAttList(c *cursor) ([]Attribute, error) {
	n, err := decodeListLen(c, "att_list", format.TagAttribute)
	if err != nil {
		return nil, err
	}

	atts := make([]Attribute, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		a, err := decodeAttribute(c)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		atts = append(atts, a)
	}

	return atts, nil
}

func decodeAttribute(c *cursor) (Attribute, error) {
	name, err := decodeName(c)
	if err != nil {
		return Attribute{}, err
	}

	// The type tag is validated before any values are read.
	t, err := decodeElementType(c)
	if err != nil {
		return Attribute{}, err
	}

	nvals, err := c.readUint32()
	if err != nil {
		return Attribute{}, fmt.Errorf("nvals: %w", err)
	}

	vals, err := decodeValues(c, t, int(nvals))
	if err != nil {
		return Attribute{}, fmt.Errorf("values: %w", err)
	}

	return Attribute{Name: name, Type: t, Values: vals}, nil
}

func decodeElementType(c *cursor) (format.ElementType, error) {
	tag, err := c.readTag()
	if err != nil {
		return 0, fmt.Errorf("element type: %w", err)
	}

	t := format.ElementType(c.tagUint32(tag))
	if !t.Valid() {
		return 0, &errs.UnknownElementTypeError{Tag: tag}
	}

	return t, nil
}

func decodeVarList(c *cursor, version format.Version) ([]Variable, error) {
	n, err := decodeListLen(c, "var_list", format.TagVariable)
	if err != nil {
		return nil, err
	}

	vars := make([]Variable, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		v, err := decodeVariable(c, version)
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", i, err)
		}
		vars = append(vars, v)
	}

	return vars, nil
}

func decodeVariable(c *cursor, version format.Version) (Variable, error) {
	name, err := decodeName(c)
	if err != nil {
		return Variable{}, err
	}

	ndims, err := c.readUint32()
	if err != nil {
		return Variable{}, fmt.Errorf("dimension count: %w", err)
	}

	dimids := make([]uint32, 0, min(int(ndims), 1024))
	for i := uint32(0); i < ndims; i++ {
		id, err := c.readUint32()
		if err != nil {
			return Variable{}, fmt.Errorf("dimension id %d: %w", i, err)
		}
		dimids = append(dimids, id)
	}

	atts, err := decodeAttList(c)
	if err != nil {
		return Variable{}, err
	}

	t, err := decodeElementType(c)
	if err != nil {
		return Variable{}, err
	}

	vsize, err := c.readUint32()
	if err != nil {
		return Variable{}, fmt.Errorf("vsize: %w", err)
	}

	offset, err := decodeOffset(c, version)
	if err != nil {
		return Variable{}, fmt.Errorf("offset: %w", err)
	}

	return Variable{
		Name:       name,
		DimIDs:     dimids,
		Attributes: atts,
		Type:       t,
		VSize:      vsize,
		Offset:     offset,
	}, nil
}

// decodeOffset reads a variable's begin position: 4 bytes in CDF-1, 8 bytes
// in CDF-2. The version must already be resolved; the unset arm is defensive
// and unreachable through decodeHeader.
func decodeOffset(c *cursor, version format.Version) (uint64, error) {
	switch version {
	case format.CDF1:
		n, err := c.readUint32()
		if err != nil {
			return 0, err
		}

		return uint64(n), nil
	case format.CDF2:
		return c.readUint64()
	default:
		return 0, errs.ErrUnresolvedOffsetVersion
	}
}

// checkSingleRecordDim rejects files declaring more than one zero-length
// dimension; record/non-record classification would have to guess otherwise.
func checkSingleRecordDim(dims []Dimension) error {
	seen := false
	for _, d := range dims {
		if !d.IsRecord() {
			continue
		}
		if seen {
			return errs.ErrMultipleRecordDims
		}
		seen = true
	}

	return nil
}
