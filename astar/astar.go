package astar

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// ShortestPath searches g for a path from start to end through traversable
// cells. It returns the ordered coordinates from start to end inclusive and
// true, or nil and false when no path exists or either endpoint is outside
// the grid. g is not modified.
func ShortestPath[T Traversable](g *grid.Grid[T], start, end grid.Coord) ([]grid.Coord, bool) {
	res := Search(g, start, end)

	return res.Path, res.Found
}

// Search runs the same search as ShortestPath and also reports cost and
// frontier statistics. Options may impose an expansion budget.
//
// Preconditions (checked in order, each yields a not-found Result):
//  1. g must be non-nil.
//  2. start and end must both be in bounds.
func Search[T Traversable](g *grid.Grid[T], start, end grid.Coord, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil || !g.InBounds(start) || !g.InBounds(end) {
		return Result{}
	}

	r := &runner[T]{
		g:       g,
		end:     end,
		options: cfg,
		visited: make(map[grid.Coord]struct{}),
		bestF:   make(map[grid.Coord]int),
	}
	heap.Init(&r.frontier)

	return r.run(start)
}

// node is one search state. prev indexes the runner's arena, -1 for the root.
type node struct {
	coords grid.Coord
	g, h   int
	prev   int
}

func (n node) f() int { return n.g + n.h }

// runner holds the mutable state for a single search.
type runner[T Traversable] struct {
	g        *grid.Grid[T]
	end      grid.Coord
	options  Options
	arena    []node                  // every node created; never shrinks
	frontier frontier                // min-heap over arena indices
	visited  map[grid.Coord]struct{} // expanded coordinates
	bestF    map[grid.Coord]int      // lowest f pushed per coordinate
	seq      int
	res      Result
}

// run drives the main loop until end is popped or the frontier drains.
func (r *runner[T]) run(start grid.Coord) Result {
	r.push(node{coords: start, h: grid.Manhattan(start, r.end), prev: -1})

	for r.frontier.Len() > 0 {
		e := heap.Pop(&r.frontier).(entry)
		cur := r.arena[e.node]

		// Stale duplicate of an expanded coordinate.
		if _, done := r.visited[cur.coords]; done {
			continue
		}
		if cur.coords == r.end {
			r.res.Found = true
			r.res.Cost = cur.g
			r.res.Path = r.path(e.node)
			return r.res
		}
		if r.res.Expanded >= r.options.MaxExpansions {
			break
		}

		r.visited[cur.coords] = struct{}{}
		r.res.Expanded++
		r.relax(e.node)
	}

	return r.res
}

// relax pushes a candidate for each traversable, unexpanded neighbour of the
// node at idx, unless an existing frontier entry is at least as good.
func (r *runner[T]) relax(idx int) {
	cur := r.arena[idx]
	for nb, cell := range r.g.Neighbours(cur.coords) {
		if !(*cell).Traversable() {
			continue
		}
		if _, done := r.visited[nb]; done {
			continue
		}
		cand := node{
			coords: nb,
			g:      cur.g + grid.Manhattan(cur.coords, nb),
			h:      grid.Manhattan(nb, r.end),
			prev:   idx,
		}
		if best, ok := r.bestF[nb]; ok && best <= cand.f() {
			continue
		}
		r.push(cand)
	}
}

// push appends n to the arena and schedules it on the frontier.
func (r *runner[T]) push(n node) {
	idx := len(r.arena)
	r.arena = append(r.arena, n)
	heap.Push(&r.frontier, entry{f: n.f(), seq: r.seq, node: idx})
	r.seq++
	r.bestF[n.coords] = n.f()

	r.res.Pushed++
	if l := r.frontier.Len(); l > r.res.PeakFrontier {
		r.res.PeakFrontier = l
	}
}

// path walks predecessor indices from idx back to the root and returns the
// coordinates in start-to-end order.
func (r *runner[T]) path(idx int) []grid.Coord {
	var out []grid.Coord
	for i := idx; i >= 0; i = r.arena[i].prev {
		out = append(out, r.arena[i].coords)
	}
	slices.Reverse(out)

	return out
}

// entry is a frontier item: an arena index keyed by f, then insertion order.
type entry struct {
	f    int
	seq  int
	node int
}

// frontier is a min-heap of entries ordered by ascending f, ties broken by
// ascending seq (first inserted wins).
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller f first, then earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry; called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
