// Package compress makes compressed netCDF sources transparent to the
// decoder. Archived classic files commonly travel as .nc.gz (and increasingly
// .nc.zst or .nc.lz4); NewReader sniffs the leading magic bytes and wraps the
// source in the matching decompressor, while plain CDF streams pass through
// untouched.
//
// Only whole-stream compression is handled here. The classic container
// itself defines no internal compression.
package compress
