package instrument

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// TracerName is the instrumentation scope used when no tracer is supplied.
const TracerName = "github.com/katalvlaran/gridpath/instrument"

// Solver wraps an astar.Solver with a span, metrics and a timing log record
// per search. Like the wrapped solver it is not safe for concurrent use.
type Solver struct {
	inner   *astar.Solver
	metrics *Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Solver.
type Option func(*Solver)

// WithMetrics records every search in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithLogger routes the per-search info record to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// Wrap instruments inner. Without options it traces through the global
// tracer provider, records no metrics and logs nothing.
func Wrap(inner *astar.Solver, opts ...Option) *Solver {
	s := &Solver{
		inner:  inner,
		tracer: otel.Tracer(TracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unwrap returns the wrapped solver.
func (s *Solver) Unwrap() *astar.Solver { return s.inner }

// Solve runs inner.SolveContext inside a "astar.Solve" span. ErrNoPath is an
// expected outcome and leaves the span status unset; every other error marks
// the span as failed.
func (s *Solver) Solve(ctx context.Context, start, goal gridgraph.Position) (astar.Result, error) {
	g := s.inner.Grid()
	o := s.inner.Options()
	ctx, span := s.tracer.Start(ctx, "astar.Solve",
		trace.WithAttributes(
			attribute.String("start", start.String()),
			attribute.String("goal", goal.String()),
			attribute.Int("grid.rows", g.Rows),
			attribute.Int("grid.cols", g.Cols),
			attribute.Float64("greediness", o.Greediness),
			attribute.String("heuristic", o.Heuristic.String()),
			attribute.String("frontier", o.Frontier.String()),
		),
	)
	defer span.End()

	began := s.now()
	res, err := s.inner.SolveContext(ctx, start, goal)
	elapsed := s.now().Sub(began)

	outcome := Outcome(res, err)
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("iterations", res.Iterations),
	)
	switch {
	case err == nil:
		span.SetAttributes(
			attribute.Float64("cost", res.Cost),
			attribute.Int("path.length", len(res.Path)),
		)
		span.SetStatus(codes.Ok, "path found")
	case errors.Is(err, astar.ErrNoPath):
		span.AddEvent("no_path")
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	s.metrics.observe(res, err, elapsed.Seconds())

	s.logger.InfoContext(ctx, "search finished",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.String("outcome", outcome),
		slog.Int("iterations", res.Iterations),
		slog.Float64("cost", res.Cost),
		slog.Duration("elapsed", elapsed),
	)
	return res, err
}
