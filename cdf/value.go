package cdf

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/netcdf-go/netcdf/errs"
	"github.com/netcdf-go/netcdf/format"
	"github.com/netcdf-go/netcdf/internal/pool"
)

// Values is one homogeneous run of decoded values. Exactly one arm is
// populated, selected by Type.
//
// Char runs decode byte-per-byte as Latin-1 code points into Chars;
// multi-byte text only ever appears in names, never in value runs.
type Values struct {
	Type    format.ElementType
	Bytes   []byte    // Type == format.Byte
	Chars   string    // Type == format.Char
	Shorts  []int16   // Type == format.Short
	Ints    []int32   // Type == format.Int
	Floats  []float32 // Type == format.Float
	Doubles []float64 // Type == format.Double
}

// Len returns the number of elements in the run.
func (v Values) Len() int {
	switch v.Type {
	case format.Byte:
		return len(v.Bytes)
	case format.Char:
		return utf8.RuneCountInString(v.Chars)
	case format.Short:
		return len(v.Shorts)
	case format.Int:
		return len(v.Ints)
	case format.Float:
		return len(v.Floats)
	case format.Double:
		return len(v.Doubles)
	default:
		return 0
	}
}

// decodeValues reads nvals elements of type t plus the run's alignment
// padding. Byte/Char/Short runs are padded to the next 4-byte boundary of
// the payload; Int/Float/Double payloads are already aligned. The padded
// length is read in one exact read, so truncated padding is a short read.
func decodeValues(c *cursor, t format.ElementType, nvals int) (Values, error) {
	vals := Values{Type: t}

	width := t.Width()
	if width == 0 {
		// Unreachable through the decoders: element types are validated at
		// their tag. Kept as a closed-dispatch error arm.
		var tag format.Tag
		binary.BigEndian.PutUint32(tag[:], uint32(t))

		return vals, &errs.UnknownElementTypeError{Tag: tag}
	}

	payload := nvals * width
	total := payload + format.Padding(payload)

	bb := pool.GetScratch()
	defer pool.PutScratch(bb)

	bb.ExtendOrGrow(total)
	buf := bb.Bytes()
	if err := c.readExact(buf); err != nil {
		return vals, err
	}
	data := buf[:payload]

	switch t {
	case format.Byte:
		vals.Bytes = append([]byte(nil), data...)
	case format.Char:
		var sb strings.Builder
		sb.Grow(payload)
		for _, b := range data {
			sb.WriteRune(rune(b)) // Latin-1 code point, not UTF-8
		}
		vals.Chars = sb.String()
	case format.Short:
		vals.Shorts = make([]int16, nvals)
		for i := range vals.Shorts {
			vals.Shorts[i] = int16(c.engine.Uint16(data[i*2:]))
		}
	case format.Int:
		vals.Ints = make([]int32, nvals)
		for i := range vals.Ints {
			vals.Ints[i] = int32(c.engine.Uint32(data[i*4:]))
		}
	case format.Float:
		vals.Floats = make([]float32, nvals)
		for i := range vals.Floats {
			vals.Floats[i] = math.Float32frombits(c.engine.Uint32(data[i*4:]))
		}
	case format.Double:
		vals.Doubles = make([]float64, nvals)
		for i := range vals.Doubles {
			vals.Doubles[i] = math.Float64frombits(c.engine.Uint64(data[i*8:]))
		}
	}

	return vals, nil
}
