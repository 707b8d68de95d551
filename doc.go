// Package gridpath finds paths between two marked cells of 2D grids in
// which some cells block movement.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      — generic fixed-shape Grid[T], Coord, 8-connected neighbours
//	astar/     — best-first (A*) search over any Traversable cell type
//	labyrinth/ — integer-coded cells, JSON batch loading, markers, rendering
//	report/    — path statistics, obstacle clearance, GeoJSON export
//	config/    — HCL run configuration
//	batch/     — concurrent per-grid runner
//	cmd/gridpath — command-line tool tying it all together
//
// Quick example:
//
//	S . #
//	. # .
//	. . G
//
// is crossed as S → (0,1) → (1,2) → G, slipping diagonally past the wall.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
