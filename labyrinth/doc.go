// Package labyrinth holds the integer-coded cell type used by the gridpath
// tool and the glue around the search: loading a JSON batch of grids,
// locating the start and goal markers, painting a found path and rendering
// a grid as glyphs.
//
// Cell codes:
//
//	0 open   1 blocked   2 start   3 goal   4 path
//
// Only Blocked cells are impassable; markers and painted paths are open.
//
// Errors:
//
//   - ErrStartNotFound / ErrGoalNotFound: a grid lacks a marker.
//   - grid.ErrNonRectangular (wrapped with the grid index): ragged input.
package labyrinth
