// Package report summarizes found paths and exports them for external tools.
//
// What:
//
//   - Summarize computes step count, Manhattan cost (the search's own cost
//     model), diagonal moves and the minimum clearance between the path and
//     the nearest blocked cell.
//   - ObstacleIndex keeps blocked cells in an R-tree (rtreego) and answers
//     Chebyshev clearance queries with window searches.
//   - GeoJSON encodes paths as a FeatureCollection (paulmach/orb) with
//     x = column and y = row, so map viewers draw them over the grid.
//
// Complexity:
//
//   - NewObstacleIndex: O(B log B) for B blocked cells.
//   - Clearance:        O(log D · log B), D = max(Width, Height).
//   - Summarize:        O(P · log D · log B) for a path of P cells.
package report
