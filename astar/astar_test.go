// Package astar_test contains unit tests for the A* search. They cover the
// fixed scenarios of small grids, boundary inputs, budget options and
// randomized validity/completeness properties.
package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// tile is a minimal cell type: '#' blocks, anything else is open.
type tile byte

func (t tile) Traversable() bool { return t != '#' }

// parse builds a grid from one string per row.
func parse(t require.TestingT, rows ...string) *grid.Grid[tile] {
	cells := make([][]tile, len(rows))
	for r, row := range rows {
		cells[r] = []tile(row)
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	return g
}

// requireValidPath asserts the path invariants: endpoints, 8-adjacency of
// consecutive entries, and traversability of every entry after the first.
func requireValidPath(t require.TestingT, g *grid.Grid[tile], path []grid.Coord, start, end grid.Coord) {
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, end, path[len(path)-1], "path must end at end")
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1, grid.Chebyshev(path[i-1], path[i]), "step %d: %v→%v not 8-adjacent", i, path[i-1], path[i])
		v, ok := g.Get(path[i])
		require.True(t, ok)
		require.True(t, v.Traversable(), "step %d lands on blocked %v", i, path[i])
	}
}

// pathCost sums Manhattan step costs along path.
func pathCost(path []grid.Coord) int {
	c := 0
	for i := 1; i < len(path); i++ {
		c += grid.Manhattan(path[i-1], path[i])
	}
	return c
}

// reachable flood-fills 8-connected traversable cells from start.
func reachable(g *grid.Grid[tile], start grid.Coord) map[grid.Coord]bool {
	seen := map[grid.Coord]bool{start: true}
	queue := []grid.Coord{start}
	for qi := 0; qi < len(queue); qi++ {
		for nb, v := range g.Neighbours(queue[qi]) {
			if !v.Traversable() || seen[nb] {
				continue
			}
			seen[nb] = true
			queue = append(queue, nb)
		}
	}
	return seen
}

// SearchSuite exercises ShortestPath and Search.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestSingleCell: start == end on a 1×1 grid yields [start].
func (s *SearchSuite) TestSingleCell() {
	g := parse(s.T(), ".")
	path, ok := astar.ShortestPath(g, grid.Coord{}, grid.Coord{})
	require.True(s.T(), ok)
	require.Equal(s.T(), []grid.Coord{{Row: 0, Col: 0}}, path)
}

// TestStartEqualsEnd on a larger grid still yields the single-element path.
func (s *SearchSuite) TestStartEqualsEnd() {
	g := parse(s.T(), "...", "...", "...")
	at := grid.Coord{Row: 1, Col: 2}
	res := astar.Search(g, at, at)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), []grid.Coord{at}, res.Path)
	require.Equal(s.T(), 0, res.Cost)
	require.Equal(s.T(), 0, res.Expanded)
}

// TestDiagonalStep: a 2×2 open grid is crossed in one diagonal step.
func (s *SearchSuite) TestDiagonalStep() {
	g := parse(s.T(), "..", "..")
	path, ok := astar.ShortestPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	require.True(s.T(), ok)
	require.Equal(s.T(), []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, path)
}

// TestBlockedCentre routes around the centre of a 3×3 grid. With FIFO
// tie-breaking the route goes along the top row, then down the right side.
func (s *SearchSuite) TestBlockedCentre() {
	g := parse(s.T(),
		"...",
		".#.",
		"...",
	)
	start, end := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2}
	path, ok := astar.ShortestPath(g, start, end)
	require.True(s.T(), ok)
	requireValidPath(s.T(), g, path, start, end)
	require.NotContains(s.T(), path, grid.Coord{Row: 1, Col: 1})
	require.Equal(s.T(), []grid.Coord{{0, 0}, {0, 1}, {1, 2}, {2, 2}}, path)
}

// TestStraightLine: on an open grid an orthogonal target is reached in a
// straight line, one cell per step.
func (s *SearchSuite) TestStraightLine() {
	g := parse(s.T(),
		".......",
		".......",
		".......",
		".......",
		".......",
	)
	start, end := grid.Coord{Row: 2, Col: 0}, grid.Coord{Row: 2, Col: 6}
	path, ok := astar.ShortestPath(g, start, end)
	require.True(s.T(), ok)
	require.Len(s.T(), path, 7)
	for i, c := range path {
		require.Equal(s.T(), grid.Coord{Row: 2, Col: i}, c)
	}
}

// TestOutOfBounds: an endpoint outside the grid means "no path", and the
// frontier is never touched.
func (s *SearchSuite) TestOutOfBounds() {
	g := parse(s.T(), "...", "...")
	cases := []struct {
		name       string
		start, end grid.Coord
	}{
		{"StartNegative", grid.Coord{Row: -1, Col: 0}, grid.Coord{Row: 1, Col: 1}},
		{"StartTooFar", grid.Coord{Row: 0, Col: 3}, grid.Coord{Row: 1, Col: 1}},
		{"EndTooFar", grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 0}},
		{"EndNegative", grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: -1}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			path, ok := astar.ShortestPath(g, tc.start, tc.end)
			require.False(s.T(), ok)
			require.Nil(s.T(), path)

			res := astar.Search(g, tc.start, tc.end)
			require.Equal(s.T(), astar.Result{}, res)
		})
	}
}

// TestNilGrid reports "no path" rather than panicking.
func (s *SearchSuite) TestNilGrid() {
	_, ok := astar.ShortestPath[tile](nil, grid.Coord{}, grid.Coord{})
	require.False(s.T(), ok)
}

// TestEnclosedGoal: a walled-in goal is unreachable and the search drains.
func (s *SearchSuite) TestEnclosedGoal() {
	g := parse(s.T(),
		".......",
		"...###.",
		"...#.#.",
		"...###.",
		".......",
	)
	res := astar.Search(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 4})
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Path)
	// Every open cell outside the box is expanded exactly once.
	require.Equal(s.T(), 35-9, res.Expanded)
}

// TestBlockedGoal: a blocked goal cell cannot be entered.
func (s *SearchSuite) TestBlockedGoal() {
	g := parse(s.T(), "..#")
	_, ok := astar.ShortestPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2})
	require.False(s.T(), ok)
}

// TestBlockedStart: the start cell itself is not checked for traversability.
func (s *SearchSuite) TestBlockedStart() {
	g := parse(s.T(), "#..")
	path, ok := astar.ShortestPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2})
	require.True(s.T(), ok)
	require.Equal(s.T(), []grid.Coord{{0, 0}, {0, 1}, {0, 2}}, path)
}

// TestDiagonalSqueeze: movement may cut between two diagonal walls.
func (s *SearchSuite) TestDiagonalSqueeze() {
	g := parse(s.T(),
		".#",
		"#.",
	)
	path, ok := astar.ShortestPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	require.True(s.T(), ok)
	require.Equal(s.T(), []grid.Coord{{0, 0}, {1, 1}}, path)
}

// TestMaze follows a winding corridor.
func (s *SearchSuite) TestMaze() {
	g := parse(s.T(),
		".#.....",
		".#.###.",
		".#.#...",
		".#.#.##",
		"...#...",
	)
	start, end := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 6}
	res := astar.Search(g, start, end)
	require.True(s.T(), res.Found)
	requireValidPath(s.T(), g, res.Path, start, end)
	require.Equal(s.T(), pathCost(res.Path), res.Cost)
	require.GreaterOrEqual(s.T(), res.Pushed, res.Expanded)
	require.GreaterOrEqual(s.T(), res.PeakFrontier, 1)
}

// TestGridUnchanged: the search never mutates the grid.
func (s *SearchSuite) TestGridUnchanged() {
	g := parse(s.T(), "....", ".##.", "....")
	before := g.Clone()
	_, ok := astar.ShortestPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 3})
	require.True(s.T(), ok)
	require.Equal(s.T(), before.Rows(), g.Rows())
}

// TestMaxExpansions stops the search once the budget is spent.
func (s *SearchSuite) TestMaxExpansions() {
	g := parse(s.T(), "..........")
	start, end := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 9}

	res := astar.Search(g, start, end, astar.WithMaxExpansions(3))
	require.False(s.T(), res.Found)
	require.Equal(s.T(), 3, res.Expanded)

	res = astar.Search(g, start, end, astar.WithMaxExpansions(9))
	require.True(s.T(), res.Found)
	require.Len(s.T(), res.Path, 10)
}

// TestBadMaxExpansions panics with the sentinel text, like other option
// constructors with invalid arguments.
func (s *SearchSuite) TestBadMaxExpansions() {
	g := parse(s.T(), "..")
	require.PanicsWithValue(s.T(), astar.ErrBadMaxExpansions.Error(), func() {
		astar.Search(g, grid.Coord{}, grid.Coord{Row: 0, Col: 1}, astar.WithMaxExpansions(0))
	})
}

// TestDefaultOptions documents the unlimited default budget.
func (s *SearchSuite) TestDefaultOptions() {
	require.Greater(s.T(), astar.DefaultOptions().MaxExpansions, 1<<30)
}

// ------------------------------------------------------------------------
// Randomized properties
// ------------------------------------------------------------------------

// randomGrid fills an h×w grid, blocking each cell with probability p.
func randomGrid(rng *rand.Rand, h, w int, p float64) *grid.Grid[tile] {
	g, _ := grid.Filled(h, w, tile('.'))
	for c := range g.All() {
		if rng.Float64() < p {
			g.Set(c, '#')
		}
	}
	return g
}

// TestRandom_OpenGrids: with no obstacles a path always exists, is valid,
// and its Manhattan cost equals the Manhattan distance of the endpoints.
func TestRandom_OpenGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		h, w := 1+rng.Intn(12), 1+rng.Intn(12)
		g := randomGrid(rng, h, w, 0)
		start := grid.Coord{Row: rng.Intn(h), Col: rng.Intn(w)}
		end := grid.Coord{Row: rng.Intn(h), Col: rng.Intn(w)}

		res := astar.Search(g, start, end)
		require.True(t, res.Found, "case %d: %v→%v on %dx%d", i, start, end, h, w)
		requireValidPath(t, g, res.Path, start, end)
		require.Equal(t, grid.Manhattan(start, end), res.Cost)
		require.GreaterOrEqual(t, len(res.Path)-1, grid.Chebyshev(start, end))
	}
}

// TestRandom_Obstacles: a path is found iff the goal is 8-reachable through
// traversable cells, and every returned path is valid.
func TestRandom_Obstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		h, w := 2+rng.Intn(15), 2+rng.Intn(15)
		g := randomGrid(rng, h, w, 0.35)
		start := grid.Coord{Row: rng.Intn(h), Col: rng.Intn(w)}
		end := grid.Coord{Row: rng.Intn(h), Col: rng.Intn(w)}
		g.Set(start, '.')
		g.Set(end, '.')

		res := astar.Search(g, start, end)
		want := reachable(g, start)[end]
		require.Equal(t, want, res.Found, "case %d: %v→%v", i, start, end)
		if res.Found {
			requireValidPath(t, g, res.Path, start, end)
			require.Equal(t, pathCost(res.Path), res.Cost)
		}
	}
}
