// Package netcdf reads the classic netCDF binary container format (CDF-1 and
// CDF-2) into an immutable in-memory value tree.
//
// # Basic Usage
//
//	nc, err := netcdf.LoadFile("temperature.nc")
//	if err != nil {
//	    return err
//	}
//	fmt.Print(nc) // version, record count, list counts
//
//	for _, v := range nc.Header.Variables {
//	    fmt.Println(v.Name, v.Type)
//	}
//	// nc.Data.NonRecs: non-record variables, var_list order
//	// nc.Data.Recs:    one entry per logical record
//
// LoadFile transparently handles gzip-, zstd- and lz4-compressed archives
// (.nc.gz and friends) by sniffing the leading bytes. LoadReader is the core
// entry point and decodes exactly the stream it is given.
//
// The decoded NetCDF value is never mutated after Load returns and is safe
// for concurrent readers. This package provides thin wrappers around the cdf
// package; use cdf directly for the full model types.
package netcdf

import (
	"fmt"
	"io"
	"os"

	"github.com/netcdf-go/netcdf/cdf"
	"github.com/netcdf-go/netcdf/compress"
)

// NetCDF is the decoded file: header plus data section.
type NetCDF = cdf.NetCDF

// Header is the decoded file header.
type Header = cdf.Header

// LoadFile opens path and decodes it. Compressed archives are decompressed
// transparently; everything else is delegated to LoadReader.
func LoadFile(path string) (*NetCDF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open netCDF file: %w", err)
	}
	defer f.Close()

	src, err := compress.NewReader(f)
	if err != nil {
		return nil, err
	}

	return cdf.Load(src)
}

// LoadReader decodes one classic-format stream from r in a single forward
// pass. The source must yield the raw big-endian classic layout; no seeking
// is required.
func LoadReader(r io.Reader) (*NetCDF, error) {
	return cdf.Load(r)
}
