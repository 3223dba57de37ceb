package cdf

import (
	"fmt"
	"io"
	"strings"
)

// NetCDF is the decoded result: the header and the data section. Once
// returned it is never mutated and is safe for unsynchronized concurrent
// reads by multiple consumers.
type NetCDF struct {
	Header Header
	Data   Data
}

// Load decodes one classic-format stream in a single forward pass: header
// first, then the data section. Decoding is all-or-nothing; any failure
// returns a nil NetCDF and nothing is retried.
//
// Independent Load calls on independent sources share no state and may run
// on separate goroutines with no coordination.
func Load(r io.Reader) (*NetCDF, error) {
	c := newCursor(r)

	h, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	d, err := decodeData(c, h)
	if err != nil {
		return nil, err
	}

	return &NetCDF{Header: *h, Data: *d}, nil
}

// String returns a short human-readable summary: version, record count and
// the three list lengths.
func (nc *NetCDF) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Version: %s\n", nc.Header.Version)
	fmt.Fprintf(&sb, "Number of records: %s\n", nc.Header.NumRecs)
	fmt.Fprintf(&sb, "Number of dimensions: %d\n", len(nc.Header.Dimensions))
	fmt.Fprintf(&sb, "Number of attributes: %d\n", len(nc.Header.Attributes))
	fmt.Fprintf(&sb, "Number of variables: %d\n", len(nc.Header.Variables))

	return sb.String()
}
