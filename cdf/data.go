package cdf

import (
	"bytes"
	"fmt"

	"github.com/netcdf-go/netcdf/errs"
)

// VarData holds the decoded values of one non-record variable.
type VarData struct {
	Values Values
}

// Slab holds one record variable's values for one logical record.
type Slab struct {
	Values Values
}

// Record holds one slab per record variable, in var_list order. All slabs of
// one record index are contiguous on the wire.
type Record struct {
	Slabs []Slab
}

// Data is the decoded data section: the non-record region, decoded once, and
// the record region, decoded once per logical record.
type Data struct {
	NonRecs []VarData // one per non-record variable, in var_list order
	Recs    []Record  // one per logical record
}

// decodeData decodes the data section that follows the header. Non-record
// variables are read first in var_list order, then the record region.
func decodeData(c *cursor, h *Header) (*Data, error) {
	var nonRec, rec []*Variable
	for i := range h.Variables {
		v := &h.Variables[i]
		if h.IsRecordVariable(v) {
			rec = append(rec, v)
		} else {
			nonRec = append(nonRec, v)
		}
	}

	data := &Data{
		NonRecs: make([]VarData, 0, len(nonRec)),
		Recs:    []Record{},
	}

	for _, v := range nonRec {
		n, err := elementCount(h, v.DimIDs)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}

		vals, err := decodeValues(c, v.Type, n)
		if err != nil {
			return nil, fmt.Errorf("variable %q data: %w", v.Name, err)
		}

		data.NonRecs = append(data.NonRecs, VarData{Values: vals})
	}

	// Zero record variables means zero records, whatever numrecs says.
	if len(rec) == 0 {
		return data, nil
	}

	// Per-record element count for each record variable: the product of the
	// lengths of its non-record dimensions. The record stride is the sum of
	// the declared per-slab sizes.
	counts := make([]int, len(rec))
	stride := 0
	for i, v := range rec {
		n, err := elementCount(h, v.DimIDs[1:])
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		counts[i] = n
		stride += int(v.VSize)
	}

	rc := c
	var numRecs int
	if h.NumRecs.Streaming {
		// The writer did not know the count; derive it from the remaining
		// length and the record stride. The record region is buffered once
		// because a forward-only source cannot report its length.
		rest, err := c.remaining()
		if err != nil {
			return nil, fmt.Errorf("buffer record region: %w", err)
		}
		if stride > 0 {
			numRecs = len(rest) / stride
		}
		rc = newCursor(bytes.NewReader(rest))
	} else {
		numRecs = int(h.NumRecs.N)
	}

	recs, err := decodeRecords(rc, rec, counts, numRecs)
	if err != nil {
		return nil, err
	}
	data.Recs = recs

	return data, nil
}

func decodeRecords(c *cursor, rec []*Variable, counts []int, numRecs int) ([]Record, error) {
	recs := make([]Record, 0, min(numRecs, 1024))
	for i := 0; i < numRecs; i++ {
		r := Record{Slabs: make([]Slab, 0, len(rec))}
		for j, v := range rec {
			vals, err := decodeValues(c, v.Type, counts[j])
			if err != nil {
				return nil, fmt.Errorf("record %d, variable %q: %w", i, v.Name, err)
			}
			r.Slabs = append(r.Slabs, Slab{Values: vals})
		}
		recs = append(recs, r)
	}

	return recs, nil
}

// elementCount multiplies the lengths of the referenced dimensions. An empty
// id list is a scalar: one element.
func elementCount(h *Header, ids []uint32) (int, error) {
	n := 1
	for _, id := range ids {
		d, ok := h.Dimension(id)
		if !ok {
			return 0, fmt.Errorf("%w: id %d, %d dimensions declared", errs.ErrInvalidDimensionID, id, len(h.Dimensions))
		}
		n *= int(d.Length)
	}

	return n, nil
}
