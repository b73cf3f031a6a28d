package skygrid

import "sort"

// New constructs a Grid from a non-empty, rectangular 2D slice of
// building heights. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if heights has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(N×M) time and memory.
func New(heights [][]int64) (*Grid, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(heights), len(heights[0])
	// Deep copy to prevent external mutation
	cells := make([][]int64, rows)
	for r, row := range heights {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]int64, cols)
		copy(cells[r], row)
	}

	return &Grid{rows: rows, cols: cols, heights: cells}, nil
}

// Rows returns the number of grid rows (N).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns (M).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Height returns the building height at (row, col).
// The coordinate must be in bounds; callers gate moves with InBounds.
func (g *Grid) Height(row, col int) int64 {
	return g.heights[row][col]
}

// NewStationSet builds a StationSet from the given coordinates.
// Duplicates are collapsed; the set is immutable once built.
// Complexity: O(S) time and memory.
func NewStationSet(coords ...Coord) StationSet {
	set := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}

	return StationSet{coords: set}
}

// Contains reports whether (row, col) is a recharge station.
// Complexity: O(1). Safe on the zero value.
func (s StationSet) Contains(row, col int) bool {
	_, ok := s.coords[Coord{Row: row, Col: col}]
	return ok
}

// Len returns the number of stations in the set.
func (s StationSet) Len() int { return len(s.coords) }

// Coords returns the station coordinates in row-major order.
// The slice is a fresh copy; mutating it does not affect the set.
func (s StationSet) Coords() []Coord {
	out := make([]Coord, 0, len(s.coords))
	for c := range s.coords {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}
