// Package grid provides a generic, fixed-shape 2D container of cells with
// bounds-checked access and 8-directional neighbour enumeration.
//
// What:
//
//   - Grid[T] stores Height rows of Width cells in row-major order.
//   - Coord addresses a cell by (Row, Col); out-of-range coordinates are
//     never an error, lookups simply report "absent".
//   - Neighbours yields the up-to-8 cells at Chebyshev distance exactly 1,
//     in reading order (top-to-bottom, left-to-right).
//   - All yields every cell in row-major order; both sequences are lazy and
//     restartable (each call starts a fresh walk over current contents).
//
// Why:
//
//   - Pathfinding: the astar package searches a Grid[T] through Neighbours.
//   - Rendering and marker lookup: callers walk All or Rows.
//
// Shape vs. content:
//
//   - The shape (Width × Height) is fixed at construction.
//   - Cell contents may be changed through Set or the pointer from GetMut.
//
// Complexity:
//
//   - Get, GetMut, Set, InBounds: O(1).
//   - Neighbours: O(1) per call (at most 8 cells).
//   - All: O(W×H).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths (New, UnmarshalJSON).
//   - ErrBadDimensions: negative extents passed to Filled.
package grid
