// Package scenario reads grid search problems from YAML files.
//
// A scenario names the grid extent, its obstacles, the two endpoints and,
// optionally, the solver settings:
//
//	rows: 5
//	cols: 5
//	obstacles: [[2, 2], [1, 3]]
//	start: [0, 0]
//	goal: [4, 4]
//	greediness: 1.0          # default 1.0
//	heuristic: euclidean     # manhattan | euclidean | squared-euclidean
//	frontier: linear         # linear | heap
//	max_iterations: 0        # 0 = no cap
//	reachability_check: false
//
// Unknown keys are rejected. Options passed to Solver or Run are applied
// after the file's settings and therefore override them.
//
// Errors:
//
//   - ErrEmptyScenario:     the document is empty.
//   - ErrMalformedPosition: a position is not a two-element sequence.
//   - ErrMissingEndpoint:   start or goal is absent.
//   - astar.ErrUnknownHeuristic / astar.ErrUnknownFrontier: unknown names.
package scenario
