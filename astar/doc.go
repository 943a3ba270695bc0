// Package astar implements weighted A* search on a bounded 2D grid with
// blocked cells and 8-directional movement.
//
// Overview:
//
//   - A Solver owns one immutable gridgraph.Grid and answers Solve(start, goal).
//   - Each search expands nodes in order of F = G + H, where G is the true
//     accumulated step cost (1 straight, √2 diagonal) and H is the heuristic
//     distance to the goal scaled by a greediness factor.
//   - Greediness 0 yields uniform-cost search, 1 yields standard A*, and values
//     above 1 trade optimality for fewer expansions.
//
// Search loop:
//
//  1. Seed the frontier with the start node (Parent = gridgraph.NoPosition).
//  2. Select the frontier node with the lowest F (earliest insertion wins ties).
//  3. If it is the goal, reconstruct the path from Parent back-references.
//  4. Otherwise generate up to 8 successors in the fixed adjacency order and
//     admit each unless an open or visited entry at the same position already
//     scores F <= candidate F; then move the node into the visited set.
//  5. If the frontier empties, report ErrNoPath.
//
// Admission policy:
//
//   - Candidates never replace an existing open entry. A better candidate is
//     pushed alongside the worse one, which stays in the frontier until it is
//     selected. Selection still always picks the best score, so the stale
//     entry cannot change the path found. Both LinearFrontier and HeapFrontier
//     follow this policy and produce identical results and iteration counts.
//
// Heuristics:
//
//   - Euclidean (default): admissible and consistent; paths are optimal for
//     greediness ≤ 1 and expanded F values are non-decreasing.
//   - Manhattan: overestimates diagonal moves.
//   - SquaredEuclidean: comparison-only distance; strongly greedy.
//
// Errors (sentinel):
//
//   - ErrInvalidConfiguration: bad grid dimensions or option values (constructor).
//   - ErrOutOfBounds, ErrBlockedEndpoint: rejected endpoints (before searching).
//   - ErrNoPath: frontier exhausted; an expected outcome, check with errors.Is.
//   - ErrIterationLimit: WithMaxIterations cap reached.
//
// Thread safety:
//
//   - A Solver is single-threaded. The Grid it wraps is immutable and may be
//     shared by several Solvers.
//   - SolveContext checks the context between loop iterations only.
//
// Example usage:
//
//	s, err := astar.New(5, 5, []gridgraph.Position{{Row: 2, Col: 2}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.Solve(gridgraph.Position{}, gridgraph.Position{Row: 4, Col: 4})
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable goal
//	}
//	fmt.Println(astar.FormatPath(res.Path), res.Cost)
package astar
