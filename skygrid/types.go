// Package skygrid defines core types and sentinel errors for the
// city-grid model used by the route engine.
package skygrid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("skygrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("skygrid: all grid rows must have the same length")
)

// Coord addresses a single grid cell, 0-indexed, row-major.
type Coord struct {
	Row, Col int
}

// Grid is a rectangular matrix of building heights. It is immutable once
// built: New deep-copies its input and all accessors are read-only.
type Grid struct {
	rows, cols int
	heights    [][]int64
}

// StationSet is an immutable set of recharge-station coordinates.
// The zero value is a valid empty set.
type StationSet struct {
	coords map[Coord]struct{}
}
