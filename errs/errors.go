// Package errs defines the error taxonomy of the decoder. Every failure kind
// has a sentinel usable with errors.Is; failures that need to carry the
// offending raw bytes use a structured type that unwraps to its sentinel.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVersion indicates the first four bytes match no known magic.
	ErrUnknownVersion = errors.New("unknown netCDF version magic")
	// ErrUnsupportedVariant indicates an HDF5-based file: recognized, not decoded.
	ErrUnsupportedVariant = errors.New("HDF5-based netCDF variant is not supported")
	// ErrListTagMismatch indicates list tags that are neither the empty form nor the expected marker.
	ErrListTagMismatch = errors.New("unexpected list tag")
	// ErrUnknownElementType indicates a type tag outside the six known element kinds.
	ErrUnknownElementType = errors.New("unknown element type tag")
	// ErrInvalidName indicates a length-prefixed name that is not valid UTF-8.
	ErrInvalidName = errors.New("name is not valid UTF-8")
	// ErrUnresolvedOffsetVersion indicates an offset decode without a resolved version.
	ErrUnresolvedOffsetVersion = errors.New("offset decode requires a resolved version")
	// ErrMultipleRecordDims indicates more than one zero-length dimension.
	ErrMultipleRecordDims = errors.New("more than one record dimension declared")
	// ErrInvalidDimensionID indicates a variable referencing a dimension id outside dim_list.
	ErrInvalidDimensionID = errors.New("dimension id out of range")
)

// UnknownVersionError carries the raw magic bytes that matched no known variant.
type UnknownVersionError struct {
	Tag [4]byte
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown netCDF version magic [% x]", e.Tag[:])
}

func (e *UnknownVersionError) Unwrap() error { return ErrUnknownVersion }

// UnknownElementTypeError carries the raw type tag outside the known set.
type UnknownElementTypeError struct {
	Tag [4]byte
}

func (e *UnknownElementTypeError) Error() string {
	return fmt.Sprintf("unknown element type tag [% x]", e.Tag[:])
}

func (e *UnknownElementTypeError) Unwrap() error { return ErrUnknownElementType }

// TagMismatchError carries both raw tags of a malformed list header and the
// name of the list being decoded.
type TagMismatchError struct {
	List string // "dim_list", "att_list" or "var_list"
	Tag1 [4]byte
	Tag2 [4]byte
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("%s: unexpected tags [% x] [% x]", e.List, e.Tag1[:], e.Tag2[:])
}

func (e *TagMismatchError) Unwrap() error { return ErrListTagMismatch }

// NameError carries the raw bytes of a name that failed UTF-8 validation.
type NameError struct {
	Bytes []byte
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name is not valid UTF-8: [% x]", e.Bytes)
}

func (e *NameError) Unwrap() error { return ErrInvalidName }
