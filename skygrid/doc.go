// Package skygrid models the city a drone flies over: a rectangular grid
// of building heights plus the set of recharge-station coordinates.
//
// What:
//
//   - Grid wraps a rectangular [][]int64 of non-negative building heights.
//     It deep-copies its input and is immutable after construction.
//   - StationSet is an immutable set of grid coordinates at which the
//     drone's battery is replenished on arrival.
//
// Why:
//
//   - The route engine borrows both as read-only inputs for the whole
//     search; immutability keeps the borrow trivially safe.
//
// Complexity:
//
//   - New:        O(N×M) time and memory (deep copy).
//   - Height, InBounds, Contains: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package skygrid
