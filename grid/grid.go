package grid

import (
	"fmt"
	"iter"
)

// New constructs a Grid from a rectangular 2D slice, rows[r][c].
// It deep-copies the input so later changes to rows do not leak in.
// An input with no rows yields an empty grid (Width()==0, Height()==0).
// Returns ErrNonRectangular, wrapped with the first offending row index,
// if any row length differs from the first row.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	if h == 0 {
		return &Grid[T]{}, nil
	}
	w := len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	cells := make([]T, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Filled constructs a height × width grid with every cell set to v.
// Returns ErrBadDimensions if either extent is negative.
func Filled[T any](height, width int, v T) (*Grid[T], error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, height, width)
	}
	if height == 0 || width == 0 {
		return &Grid[T]{}, nil
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows; 0 for an empty grid.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether c lies within [0,Height) × [0,Width).
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// index maps c to its row-major offset: Row*Width + Col.
func (g *Grid[T]) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Get returns the cell at c and true, or the zero value and false
// when c is out of bounds.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}

	return g.cells[g.index(c)], true
}

// GetMut returns a pointer to the cell at c, or nil when c is out of bounds.
// Writes through the pointer change the grid in place.
func (g *Grid[T]) GetMut(c Coord) *T {
	if !g.InBounds(c) {
		return nil
	}

	return &g.cells[g.index(c)]
}

// Set stores v at c and reports whether c was in bounds.
func (g *Grid[T]) Set(c Coord, v T) bool {
	p := g.GetMut(c)
	if p == nil {
		return false
	}
	*p = v

	return true
}

// All yields every (coordinate, cell) pair in row-major order.
// The sequence is lazy; ranging over it again starts a fresh walk.
func (g *Grid[T]) All() iter.Seq2[Coord, *T] {
	return func(yield func(Coord, *T) bool) {
		for i := range g.cells {
			c := Coord{Row: i / g.width, Col: i % g.width}
			if !yield(c, &g.cells[i]) {
				return
			}
		}
	}
}

// Neighbours yields the in-bounds cells whose Chebyshev distance from c is
// exactly 1, in reading order. c itself is never yielded, and c need not be
// in bounds.
// Complexity: O(1), at most 8 cells.
func (g *Grid[T]) Neighbours(c Coord) iter.Seq2[Coord, *T] {
	return func(yield func(Coord, *T) bool) {
		for _, d := range neighbourOffsets {
			n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
			if !g.InBounds(n) {
				continue
			}
			if !yield(n, &g.cells[g.index(n)]) {
				return
			}
		}
	}
}

// Find returns the first coordinate, in row-major order, whose cell
// satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Coord, bool) {
	for c, v := range g.All() {
		if pred(*v) {
			return c, true
		}
	}

	return Coord{}, false
}

// Row returns row r as a slice sharing storage with the grid,
// or nil when r is out of range.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.height {
		return nil
	}

	return g.cells[r*g.width : (r+1)*g.width : (r+1)*g.width]
}

// Rows returns every row as a slice sharing storage with the grid.
// Callers must not append to the returned rows.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for r := range rows {
		rows[r] = g.Row(r)
	}

	return rows
}

// Clone returns an independent deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}
