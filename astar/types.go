// Package astar defines the node, result and option types for weighted A*
// search over a gridgraph.Grid.
package astar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the solver.
var (
	// ErrInvalidConfiguration indicates non-positive grid dimensions or an
	// invalid option value. A solver is never built from such a configuration.
	ErrInvalidConfiguration = errors.New("astar: invalid configuration")

	// ErrOutOfBounds indicates the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")

	// ErrBlockedEndpoint indicates the start or goal is an obstacle.
	ErrBlockedEndpoint = errors.New("astar: endpoint is blocked")

	// ErrNoPath indicates the frontier was exhausted without reaching the goal.
	// It is an expected outcome; the accompanying Result still reports Iterations.
	ErrNoPath = errors.New("astar: no path exists")

	// ErrIterationLimit indicates the search stopped at Options.MaxIterations.
	ErrIterationLimit = errors.New("astar: iteration limit reached")

	// ErrUnknownHeuristic indicates an unrecognized heuristic name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

	// ErrUnknownFrontier indicates an unrecognized frontier name.
	ErrUnknownFrontier = errors.New("astar: unknown frontier")
)

// Metric selects the distance function used for the heuristic term.
type Metric int

const (
	// Euclidean is the straight-line distance. Admissible and consistent for
	// 8-directional moves with costs 1 and √2.
	Euclidean Metric = iota
	// Manhattan is the sum of absolute coordinate differences. It overestimates
	// diagonal moves and is therefore inadmissible on this grid.
	Manhattan
	// SquaredEuclidean skips the square root. It preserves the ordering of
	// distances from a single point but grows quadratically, which makes the
	// search strongly greedy.
	SquaredEuclidean
)

var metricNames = map[Metric]string{
	Euclidean:        "euclidean",
	Manhattan:        "manhattan",
	SquaredEuclidean: "squared-euclidean",
}

// String returns the lowercase name of m.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a name produced by Metric.String back to a Metric.
func ParseMetric(name string) (Metric, error) {
	for m, s := range metricNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// FrontierKind selects the open-set implementation.
type FrontierKind int

const (
	// LinearFrontier keeps the open set in insertion order and scans it for
	// both admission and minimum selection: O(n) per operation.
	LinearFrontier FrontierKind = iota
	// HeapFrontier keeps a binary heap keyed by (F, insertion order) and a
	// per-position index of open scores: O(log n) selection.
	HeapFrontier
)

var frontierNames = map[FrontierKind]string{
	LinearFrontier: "linear",
	HeapFrontier:   "heap",
}

// String returns the lowercase name of k.
func (k FrontierKind) String() string {
	if s, ok := frontierNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FrontierKind(%d)", int(k))
}

// ParseFrontier maps a name produced by FrontierKind.String back to a FrontierKind.
func ParseFrontier(name string) (FrontierKind, error) {
	for k, s := range frontierNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFrontier, name)
}

// State is the terminal state of a search.
type State int

const (
	// StateUnsolved means no search ran (endpoint validation failed).
	StateUnsolved State = iota
	// StateGoalFound means the goal was selected for expansion.
	StateGoalFound
	// StateExhausted means the frontier emptied without reaching the goal.
	StateExhausted
	// StateCancelled means the context was done between iterations.
	StateCancelled
	// StateIterationLimit means Options.MaxIterations expansions were spent.
	StateIterationLimit
)

func (s State) String() string {
	switch s {
	case StateUnsolved:
		return "unsolved"
	case StateGoalFound:
		return "goal-found"
	case StateExhausted:
		return "exhausted"
	case StateCancelled:
		return "cancelled"
	case StateIterationLimit:
		return "iteration-limit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Node is one explored or pending grid cell.
//
// F = G + H always holds. Parent is a key into the visited set rather than a
// pointer; the search root carries gridgraph.NoPosition.
type Node struct {
	Pos    gridgraph.Position
	Parent gridgraph.Position
	G      float64 // accumulated step cost from the start
	H      float64 // greediness-scaled estimate to the goal
	F      float64 // G + H, the expansion priority
}

// Result is the outcome of one Solve call.
type Result struct {
	State      State
	Found      bool
	Path       []gridgraph.Position // start to goal, inclusive; nil unless Found
	Cost       float64              // sum of step costs along Path
	Iterations int                  // nodes expanded (moved into the visited set)
}

// Options configures a Solver.
//
// Greediness        – multiplier on the heuristic. 0 is uniform-cost search,
//
//	1 is standard A*, >1 is weighted (faster, possibly suboptimal).
//
// Heuristic         – metric used for H. G always uses true Euclidean steps.
// Frontier          – open-set implementation; both yield identical results.
// MaxIterations     – stop after this many expansions; 0 disables the cap.
// ReachabilityCheck – reject start/goal in different components before searching.
// Logger            – receives debug records; defaults to a discarding logger.
// OnExpand          – called with every node selected from the frontier.
type Options struct {
	Greediness        float64
	Heuristic         Metric
	Frontier          FrontierKind
	MaxIterations     int
	ReachabilityCheck bool
	Logger            *slog.Logger
	OnExpand          func(Node)

	// first invalid option value, surfaced by NewSolver
	err error
}

// Option is a functional option for configuring a Solver. Invalid values are
// recorded and reported by NewSolver as ErrInvalidConfiguration.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Greediness:        1.0
//   - Heuristic:         Euclidean
//   - Frontier:          LinearFrontier
//   - MaxIterations:     0 (no cap)
//   - ReachabilityCheck: false
//   - Logger:            discard
//   - OnExpand:          nil
func DefaultOptions() Options {
	return Options{
		Greediness: 1.0,
		Heuristic:  Euclidean,
		Frontier:   LinearFrontier,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithGreediness sets the heuristic weight. Must be finite and ≥ 0.
func WithGreediness(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			o.fail(fmt.Errorf("%w: greediness must be a finite non-negative number, got %v", ErrInvalidConfiguration, w))
			return
		}
		o.Greediness = w
	}
}

// WithHeuristic selects the metric used for H.
func WithHeuristic(m Metric) Option {
	return func(o *Options) {
		if _, ok := metricNames[m]; !ok {
			o.fail(fmt.Errorf("%w: %w: %v", ErrInvalidConfiguration, ErrUnknownHeuristic, m))
			return
		}
		o.Heuristic = m
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(k FrontierKind) Option {
	return func(o *Options) {
		if _, ok := frontierNames[k]; !ok {
			o.fail(fmt.Errorf("%w: %w: %v", ErrInvalidConfiguration, ErrUnknownFrontier, k))
			return
		}
		o.Frontier = k
	}
}

// WithMaxIterations caps the number of expansions per search.
//
//	n > 0:  stop with ErrIterationLimit after n expansions
//	n == 0: no cap
//	n < 0:  invalid option
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrInvalidConfiguration, n))
			return
		}
		o.MaxIterations = n
	}
}

// WithReachabilityCheck enables the component precheck: when start and goal
// lie in different 8-connected components, Solve returns ErrNoPath without
// expanding any node.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback invoked with each node selected from the
// frontier, in selection order, including the goal node.
func WithOnExpand(fn func(Node)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
