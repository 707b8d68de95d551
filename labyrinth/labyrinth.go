package labyrinth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridpath/grid"
)

// Load decodes a JSON array of grids, each an array of equal-length rows of
// cell codes. A ragged grid fails the whole batch with an error naming its
// index and wrapping grid.ErrNonRectangular.
func Load(r io.Reader) ([]*grid.Grid[Cell], error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("labyrinth: decode batch: %w", err)
	}
	grids := make([]*grid.Grid[Cell], len(raw))
	for i, msg := range raw {
		g := new(grid.Grid[Cell])
		if err := json.Unmarshal(msg, g); err != nil {
			return nil, fmt.Errorf("labyrinth: grid %d: %w", i, err)
		}
		grids[i] = g
	}

	return grids, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) ([]*grid.Grid[Cell], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labyrinth: %w", err)
	}
	defer f.Close()

	return Load(bufio.NewReader(f))
}

// Locate returns the first Start and first Goal cell in row-major order.
func Locate(g *grid.Grid[Cell]) (start, goal grid.Coord, err error) {
	start, ok := g.Find(func(c Cell) bool { return c == Start })
	if !ok {
		return grid.Coord{}, grid.Coord{}, ErrStartNotFound
	}
	goal, ok = g.Find(func(c Cell) bool { return c == Goal })
	if !ok {
		return grid.Coord{}, grid.Coord{}, ErrGoalNotFound
	}

	return start, goal, nil
}

// MarkPath paints every coordinate of path as Path, endpoints included.
// Coordinates outside g are ignored.
func MarkPath(g *grid.Grid[Cell], path []grid.Coord) {
	for _, c := range path {
		g.Set(c, Path)
	}
}

// Render writes g to w, one framed line per row: "| " + glyphs + " |".
func Render(w io.Writer, g *grid.Grid[Cell], glyphs Glyphs) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		bw.WriteString("| ")
		for _, c := range row {
			switch c {
			case Blocked:
				bw.WriteString(glyphs.Blocked)
			case Path:
				bw.WriteString(glyphs.Path)
			default:
				bw.WriteString(glyphs.Open)
			}
		}
		bw.WriteString(" |\n")
	}

	return bw.Flush()
}
