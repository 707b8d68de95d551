// Package astar implements a best-first (A*) search for a low-cost
// 8-connected path between two cells of a grid.Grid.
//
// Overview:
//
//   - The search is generic over any cell type implementing Traversable.
//   - It reads the grid only through Neighbours and never mutates it.
//   - Both the step cost and the heuristic are the Manhattan distance
//     between coordinates. Under 8-connected movement the heuristic can
//     overestimate, so results are low-cost paths, not provably shortest
//     ones. Callers that depend on particular path shapes rely on this.
//
// Algorithm:
//
//  1. If start or end is outside the grid, report "no path" immediately.
//  2. Seed the frontier with start (g=0, h=Manhattan(start, end)).
//  3. Pop the entry with the smallest f = g + h. Ties go to the entry
//     inserted first, which makes results reproducible.
//  4. Popped coordinates already expanded are skipped. If the coordinate is
//     end, rebuild the path by walking predecessor indices and reversing.
//  5. Otherwise mark it expanded and, for every traversable neighbour not yet
//     expanded, push a candidate unless a frontier entry for that coordinate
//     already has f less than or equal to the candidate's.
//  6. An empty frontier means "no path".
//
// Memory model:
//
//   - Search nodes live in a per-search arena slice; a predecessor is an
//     index into it. Nodes are immutable once appended.
//   - The frontier is a container/heap min-heap that tolerates duplicate
//     coordinates instead of decrease-key. Its size may therefore exceed
//     the number of distinct discovered coordinates.
//
// Complexity:
//
//   - Time:  O(N log N) where N is the number of frontier pushes (≤ 8·W·H).
//   - Space: O(N) for the arena and frontier, O(W·H) for the visited set.
//
// Thread safety:
//
//   - Each call owns its frontier, arena and visited set. Concurrent searches
//     over distinct grids, or over the same grid with no concurrent writers,
//     are safe.
package astar
