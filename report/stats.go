package report

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Stats describes one path.
//
// Steps        – number of moves (len(path)-1, 0 for an empty path).
// Cost         – sum of Manhattan step costs, as charged by astar.
// Diagonals    – moves that change both row and column.
// MinClearance – smallest Chebyshev distance from a path cell to a blocked
// cell; -1 when the grid has no blocked cells or the path is empty.
type Stats struct {
	Steps        int
	Cost         int
	Diagonals    int
	MinClearance int
}

// Summarize computes Stats for path over g.
func Summarize[T astar.Traversable](g *grid.Grid[T], path []grid.Coord) Stats {
	st := Stats{MinClearance: -1}
	if len(path) == 0 {
		return st
	}
	st.Steps = len(path) - 1
	for i := 1; i < len(path); i++ {
		st.Cost += grid.Manhattan(path[i-1], path[i])
		if path[i-1].Row != path[i].Row && path[i-1].Col != path[i].Col {
			st.Diagonals++
		}
	}

	idx := NewObstacleIndex(g)
	for _, c := range path {
		d := idx.Clearance(c)
		if d >= 0 && (st.MinClearance < 0 || d < st.MinClearance) {
			st.MinClearance = d
		}
	}

	return st
}

// obstacle is a blocked cell stored in the R-tree as a small square
// centred on the cell.
type obstacle struct {
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacle) Bounds() rtreego.Rect { return o.bbox }

// ObstacleIndex answers "how far is the nearest blocked cell" queries.
type ObstacleIndex struct {
	tree   *rtreego.Rtree
	extent int
}

// NewObstacleIndex indexes every non-traversable cell of g.
func NewObstacleIndex[T astar.Traversable](g *grid.Grid[T]) *ObstacleIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for c, v := range g.All() {
		if (*v).Traversable() {
			continue
		}
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(c.Row) - 0.25, float64(c.Col) - 0.25},
			[]float64{0.5, 0.5},
		)
		if err != nil {
			continue
		}
		tree.Insert(&obstacle{bbox: bbox})
	}

	return &ObstacleIndex{tree: tree, extent: max(g.Width(), g.Height())}
}

// Len returns the number of indexed obstacles.
func (x *ObstacleIndex) Len() int { return x.tree.Size() }

// Clearance returns the Chebyshev distance from c to the nearest obstacle,
// or -1 if there are none. The distance is found by binary search over
// square windows of growing radius.
func (x *ObstacleIndex) Clearance(c grid.Coord) int {
	if x.tree.Size() == 0 {
		return -1
	}
	// Widest radius that can matter for any c inside or near the grid.
	hi := x.extent + max(abs(c.Row), abs(c.Col))
	if !x.within(c, hi) {
		return -1
	}
	lo := 0
	for lo < hi {
		mid := (lo + hi) / 2
		if x.within(c, mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// within reports whether an obstacle lies at Chebyshev distance ≤ d from c.
func (x *ObstacleIndex) within(c grid.Coord, d int) bool {
	side := float64(2*d + 1)
	window, err := rtreego.NewRect(
		rtreego.Point{float64(c.Row-d) - 0.5, float64(c.Col-d) - 0.5},
		[]float64{side, side},
	)
	if err != nil {
		return false
	}

	return len(x.tree.SearchIntersect(window)) > 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
