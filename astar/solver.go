package astar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Solver runs weighted A* searches over one immutable grid.
//
// A Solver keeps no search state between calls except the snapshot of the
// last solved path. It is not safe for concurrent use; run one Solve at a time
// or build one Solver per goroutine over the same *gridgraph.Grid.
type Solver struct {
	grid     *gridgraph.Grid
	opts     Options
	snapshot gridgraph.Snapshot
	labels   []int // component labels, computed on first use when ReachabilityCheck is set
}

// New builds a Grid of rows×cols with the given obstacles and a Solver over it.
// Non-positive dimensions are reported as ErrInvalidConfiguration.
func New(rows, cols int, obstacles []gridgraph.Position, opts ...Option) (*Solver, error) {
	g, err := gridgraph.NewGrid(rows, cols, obstacles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return NewSolver(g, opts...)
}

// NewSolver builds a Solver over g.
//
// Returns ErrInvalidConfiguration if g is nil or any option value is invalid.
func NewSolver(g *gridgraph.Grid, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidConfiguration)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Solver{
		grid:     g,
		opts:     cfg,
		snapshot: gridgraph.NewSnapshot(g.Rows, g.Cols),
	}, nil
}

// Grid returns the grid the solver searches.
func (s *Solver) Grid() *gridgraph.Grid { return s.grid }

// Options returns a copy of the solver configuration.
func (s *Solver) Options() Options { return s.opts }

// Snapshot returns a copy of the marker grid for the most recent Solve:
// start=1, intermediate path cells=2, goal=3, everything else 0.
func (s *Solver) Snapshot() gridgraph.Snapshot { return s.snapshot.Clone() }

// Solve searches for a path from start to goal. See SolveContext.
func (s *Solver) Solve(start, goal gridgraph.Position) (Result, error) {
	return s.SolveContext(context.Background(), start, goal)
}

// SolveContext searches for a path from start to goal, checking ctx between
// loop iterations.
//
// Outcomes:
//   - path found:        Result.Found, nil error.
//   - frontier empty:    ErrNoPath, Result.State == StateExhausted.
//   - endpoint invalid:  ErrOutOfBounds or ErrBlockedEndpoint before searching.
//   - ctx done:          ctx.Err(), Result.State == StateCancelled.
//   - cap reached:       ErrIterationLimit, Result.State == StateIterationLimit.
//
// Complexity with LinearFrontier: O(N²) for N admitted nodes; with
// HeapFrontier: O(N log N) plus the per-position admission scans.
func (s *Solver) SolveContext(ctx context.Context, start, goal gridgraph.Position) (Result, error) {
	s.snapshot.Reset()

	if err := s.validate("start", start); err != nil {
		return Result{}, err
	}
	if err := s.validate("goal", goal); err != nil {
		return Result{}, err
	}

	log := s.opts.Logger.With(slog.String("start", start.String()), slog.String("goal", goal.String()))

	if s.opts.ReachabilityCheck && !s.reachable(start, goal) {
		log.Debug("astar: endpoints in different components")
		return Result{State: StateExhausted}, fmt.Errorf("%w: %v and %v are not connected", ErrNoPath, start, goal)
	}

	r := newRunner(s, start, goal)
	r.init()
	goalNode, state, err := r.process(ctx)

	res := Result{State: state, Iterations: r.iterations}
	switch state {
	case StateGoalFound:
		path, err := r.reconstruct(goalNode)
		if err != nil {
			return Result{State: StateUnsolved, Iterations: r.iterations}, err
		}
		res.Found = true
		res.Path = path
		res.Cost = PathCost(path)
		log.Debug("astar: goal found",
			slog.Int("iterations", res.Iterations),
			slog.Float64("cost", res.Cost),
			slog.Int("length", len(path)),
		)
		return res, nil
	case StateExhausted:
		log.Debug("astar: frontier exhausted", slog.Int("iterations", res.Iterations))
	default:
		log.Debug("astar: search stopped", slog.String("state", state.String()), slog.Any("error", err))
	}
	return res, err
}

func (s *Solver) validate(which string, p gridgraph.Position) error {
	if !s.grid.InBounds(p) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrOutOfBounds, which, p, s.grid.Rows, s.grid.Cols)
	}
	if s.grid.Blocked(p) {
		return fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, which, p)
	}
	return nil
}

func (s *Solver) reachable(a, b gridgraph.Position) bool {
	if s.labels == nil {
		s.labels, _ = s.grid.ComponentLabels()
	}
	return s.labels[s.grid.Index(a)] == s.labels[s.grid.Index(b)]
}

// runner holds the mutable state for a single search.
type runner struct {
	grid       *gridgraph.Grid    // read-only
	opts       Options            // read-only
	snapshot   gridgraph.Snapshot // cells shared with the owning Solver
	start      gridgraph.Position
	goal       gridgraph.Position
	open       frontier
	closed     *visited
	iterations int
}

func newRunner(s *Solver, start, goal gridgraph.Position) *runner {
	capHint := s.grid.Rows + s.grid.Cols
	return &runner{
		grid:     s.grid,
		opts:     s.opts,
		snapshot: s.snapshot,
		start:    start,
		goal:     goal,
		open:     newFrontier(s.opts.Frontier, capHint),
		closed:   newVisited(capHint),
	}
}

// init seeds the frontier with the start node.
func (r *runner) init() {
	h := r.opts.Greediness * Estimate(r.start, r.goal, r.opts.Heuristic)
	r.open.push(Node{
		Pos:    r.start,
		Parent: gridgraph.NoPosition,
		G:      0,
		H:      h,
		F:      h,
	})
}

// process is the main loop. It repeatedly selects the lowest-F frontier node,
// stops if it is the goal, and otherwise admits its successors and moves it
// into the visited set.
func (r *runner) process(ctx context.Context) (Node, State, error) {
	for r.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Node{}, StateCancelled, err
		}

		q := r.open.popMin()
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(q)
		}
		if q.Pos == r.goal {
			return q, StateGoalFound, nil
		}
		if r.opts.MaxIterations > 0 && r.iterations >= r.opts.MaxIterations {
			return Node{}, StateIterationLimit, fmt.Errorf("%w: %d expansions", ErrIterationLimit, r.iterations)
		}

		r.expand(q)
		r.closed.add(q)
		r.iterations++
	}
	return Node{}, StateExhausted, fmt.Errorf("%w: from %v to %v after %d expansions", ErrNoPath, r.start, r.goal, r.iterations)
}

// expand generates up to 8 successors of parent in adjacency-table order and
// offers each to the frontier.
func (r *runner) expand(parent Node) {
	for _, o := range gridgraph.Offsets() {
		p := parent.Pos.Add(o)
		if !r.grid.Passable(p) {
			continue
		}
		g := parent.G + stepCost(p, parent.Pos)
		h := r.opts.Greediness * Estimate(p, r.goal, r.opts.Heuristic)
		r.tryAdmit(Node{
			Pos:    p,
			Parent: parent.Pos,
			G:      g,
			H:      h,
			F:      g + h,
		})
	}
}

// tryAdmit discards n when an open or visited entry at the same position
// already scores F <= n.F, and pushes it onto the frontier otherwise.
// Worse open entries are left in place.
func (r *runner) tryAdmit(n Node) bool {
	if f, ok := r.open.bestF(n.Pos); ok && f <= n.F {
		return false
	}
	if f, ok := r.closed.bestF(n.Pos); ok && f <= n.F {
		return false
	}
	r.open.push(n)
	return true
}
