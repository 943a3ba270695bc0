// Package instrument adds observability around an astar.Solver.
//
// Wrap returns a Solver whose Solve method:
//
//   - opens an OpenTelemetry span "astar.Solve" with the endpoints, grid
//     extent and solver settings as attributes;
//   - times the search and logs one slog record with the outcome;
//   - updates Prometheus collectors (see NewMetrics): solves by outcome,
//     duration, expanded nodes and path length.
//
// Outcomes are the labels returned by Outcome: found, no_path, out_of_bounds,
// blocked_endpoint, cancelled, iteration_limit and error.
package instrument
