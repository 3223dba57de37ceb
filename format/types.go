// Package format defines the wire-level constants of the classic netCDF
// container format: version magics, list markers, element-type tags, the
// streaming record-count sentinel, and the 4-byte alignment rule.
//
// Everything in the classic format is big-endian. Markers and tags occupy
// exactly four bytes and form a closed set; anything outside it is a decode
// error, never an extension point.
package format

// Tag is a raw 4-byte marker as it appears on the wire, in file byte order.
type Tag [4]byte

// File magics at offset 0.
var (
	MagicCDF1 = Tag{0x43, 0x44, 0x46, 0x01} // "CDF\x01", 32-bit offsets
	MagicCDF2 = Tag{0x43, 0x44, 0x46, 0x02} // "CDF\x02", 64-bit offsets
	MagicHDF5 = Tag{0x89, 0x48, 0x44, 0x46} // HDF5-based variant, recognized but not decoded
)

// List markers and sentinels.
var (
	TagZero      = Tag{0x00, 0x00, 0x00, 0x00}
	TagStreaming = Tag{0xff, 0xff, 0xff, 0xff}
	TagDimension = Tag{0x00, 0x00, 0x00, 0x0a}
	TagVariable  = Tag{0x00, 0x00, 0x00, 0x0b}
	TagAttribute = Tag{0x00, 0x00, 0x00, 0x0c}
)

// Version identifies the classic container variant. It is fixed per file and
// decides the byte width of every variable offset in that file.
type Version uint8

const (
	// VersionUnset is the zero value; offset decoding rejects it.
	VersionUnset Version = 0
	// CDF1 is the original classic format with 32-bit variable offsets.
	CDF1 Version = 1
	// CDF2 is the 64-bit-offset classic format.
	CDF2 Version = 2
)

func (v Version) String() string {
	switch v {
	case CDF1:
		return "CDF-1"
	case CDF2:
		return "CDF-2"
	default:
		return "Unknown"
	}
}

// OffsetWidth returns the byte width of a variable offset for this version,
// or 0 when the version is not a known classic variant.
func (v Version) OffsetWidth() int {
	switch v {
	case CDF1:
		return 4
	case CDF2:
		return 8
	default:
		return 0
	}
}

// ElementType identifies one of the six payload element kinds. The numeric
// values are the big-endian interpretation of the on-disk type tags
// 0x00000001..0x00000006.
type ElementType uint32

const (
	Byte   ElementType = 1 // 8-bit value
	Char   ElementType = 2 // 8-bit Latin-1 code point
	Short  ElementType = 3 // 16-bit signed integer
	Int    ElementType = 4 // 32-bit signed integer
	Float  ElementType = 5 // 32-bit IEEE 754
	Double ElementType = 6 // 64-bit IEEE 754
)

func (t ElementType) String() string {
	switch t {
	case Byte:
		return "Byte"
	case Char:
		return "Char"
	case Short:
		return "Short"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Double:
		return "Double"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the six element kinds.
func (t ElementType) Valid() bool {
	return t >= Byte && t <= Double
}

// Width returns the byte width of one element of this type, or 0 for an
// unknown type.
func (t ElementType) Width() int {
	switch t {
	case Byte, Char:
		return 1
	case Short:
		return 2
	case Int, Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

// Padding returns the number of fill bytes (0..3) that follow a payload of n
// bytes to reach the next 4-byte boundary.
func Padding(n int) int {
	return (4 - n%4) % 4
}
