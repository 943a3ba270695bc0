// Package gridpath is weighted A* pathfinding for bounded 2D grids with
// blocked cells and 8-directional movement.
//
// What is in the module?
//
//	• Grid primitives: positions, the 8-offset adjacency table, obstacle
//	  masks, connected components and marker snapshots
//	• Search: weighted A* with a tunable greediness, three distance metrics
//	  and two interchangeable open-set implementations
//	• Scenarios: YAML files describing a grid, its endpoints and settings
//	• Output: plain and coloured terminal grids, PNG export
//	• Observability: Prometheus metrics and OpenTelemetry spans per search
//
// Everything is organized under these packages:
//
//	gridgraph/    Grid, Position, Offsets, Snapshot, components
//	astar/        Solver, Options, Result, heuristics and path text
//	render/       Text, ANSI, Image, PNG, SavePNG
//	scenario/     Load, Parse, Solver, Run, Demo
//	instrument/   Metrics, Wrap (span + metrics + timing log)
//	cmd/gridpath/ the command-line front end
//
// Quick ASCII example (S start, G goal, # obstacle, * path):
//
//	S....
//	.**..
//	..#*.
//	...*.
//	....G
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
