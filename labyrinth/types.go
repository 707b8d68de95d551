package labyrinth

import "errors"

// Sentinel errors for marker lookup.
var (
	// ErrStartNotFound indicates a grid has no Start cell.
	ErrStartNotFound = errors.New("labyrinth: start not found")
	// ErrGoalNotFound indicates a grid has no Goal cell.
	ErrGoalNotFound = errors.New("labyrinth: end not found")
)

// Cell is a single integer-coded labyrinth cell.
type Cell uint8

const (
	Open    Cell = 0
	Blocked Cell = 1
	Start   Cell = 2
	Goal    Cell = 3
	Path    Cell = 4
)

// Traversable reports whether the cell can be entered.
func (c Cell) Traversable() bool { return c != Blocked }

// Glyphs selects the strings drawn for each kind of cell.
type Glyphs struct {
	Open    string
	Blocked string
	Path    string
}

// DefaultGlyphs returns the stock glyph set: two blanks for open cells,
// a black square for walls and a white circle for the path.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Open:    "  ",
		Blocked: "⬛",
		Path:    "⚪",
	}
}
