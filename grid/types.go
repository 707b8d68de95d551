// Package grid defines core types and sentinel errors for the grid package.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadDimensions indicates a negative width or height.
	ErrBadDimensions = errors.New("grid: width and height must be non-negative")
)

// Coord identifies a single cell by row and column.
// Two coordinates are equal iff both components match.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int {
	return absDiff(a.Row, b.Row) + absDiff(a.Col, b.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|) between a and b.
// Two distinct cells are 8-adjacent iff their Chebyshev distance is 1.
func Chebyshev(a, b Coord) int {
	return max(absDiff(a.Row, b.Row), absDiff(a.Col, b.Col))
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

// neighbourOffsets lists the 8-connected (Δrow, Δcol) offsets in reading
// order, so Neighbours yields cells top-to-bottom, left-to-right.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a Width × Height container of cells stored in row-major order.
// The shape never changes after construction; cells are mutable.
type Grid[T any] struct {
	width, height int
	cells         []T
}
