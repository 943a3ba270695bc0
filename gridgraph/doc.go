// Package gridgraph treats a bounded 2D grid of cells with blocked positions
// as an 8-connected graph, the substrate for grid pathfinding.
//
// What:
//
//   - Grid wraps Rows×Cols dimensions and an immutable obstacle set.
//   - Answers whether a cell is in bounds and passable in O(1).
//   - Exposes the fixed 8-offset adjacency table used for successor generation.
//   - Labels 8-connected components of passable cells (reachability checks).
//   - Snapshot stores per-cell markers (0 unvisited, 1 start, 2 path, 3 goal)
//     in a flat row-major slice for visualization.
//
// Why:
//
//   - Game maps and simulation worlds: walkable/blocked tiles.
//   - Robotics: occupancy grids with uniform step cost.
//
// Complexity:
//
//   - NewGrid:         O(R×C + K log K), Memory: O(R×C)   (K = obstacles).
//   - InBounds/Passable: O(1).
//   - ComponentLabels: O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns not positive, or more than MaxCells cells.
//   - ErrSnapshotBounds: marker written outside the snapshot.
package gridgraph
