package dotpro

import (
	"errors"
	"fmt"

	"github.com/ironsheep/dotpro-mcp/internal/geo"
)

var (
	// ErrIncompleteData reports a stream that ended before every field was read.
	ErrIncompleteData = errors.New("incomplete data")

	// ErrUnknownProjection reports a projection code other than 1 or 2.
	ErrUnknownProjection = errors.New("unknown projection")

	// ErrIndexOutOfBounds reports a pixel index outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// DecodeError locates a decode failure in the input stream.
type DecodeError struct {
	Field  string // layout field being read
	Offset int64  // byte offset of the field
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProjectionError carries the offending projection code.
type ProjectionError struct {
	Code uint16
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("%v: code %d (want 1 for mercator or 2 for equirectangular)", ErrUnknownProjection, e.Code)
}

func (e *ProjectionError) Unwrap() error { return ErrUnknownProjection }

// IndexError reports a pixel index outside a Columns x Rows grid.
type IndexError struct {
	Col, Row      int
	Columns, Rows int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: pixel (%d, %d) outside grid of %d columns x %d rows",
		ErrIndexOutOfBounds, e.Col, e.Row, e.Columns, e.Rows)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// CoordinateError reports a coordinate that maps to no pixel index at all:
// the computed index is NaN, infinite or far outside any grid.
type CoordinateError struct {
	Coordinate    geo.Coordinate
	Columns, Rows int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: coordinate %v maps to no pixel of grid of %d columns x %d rows",
		ErrIndexOutOfBounds, e.Coordinate, e.Columns, e.Rows)
}

func (e *CoordinateError) Unwrap() error { return ErrIndexOutOfBounds }
