// Package cdf decodes the classic netCDF container format (CDF-1 32-bit-offset
// and CDF-2 64-bit-offset variants) from a byte stream into an immutable
// in-memory value tree: dimensions, attributes, variable descriptors, and the
// data section.
//
// Decoding is a single forward pass with no backtracking and no partial
// results: Load either returns a complete NetCDF or an error. The returned
// value is never mutated afterwards and is safe for unsynchronized concurrent
// reads.
//
// The HDF5-based netCDF-4 container is recognized by its magic and rejected
// with errs.ErrUnsupportedVariant; writing and random slab access are out of
// scope.
package cdf
