package instrument

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Outcome labels recorded on the solves counter.
const (
	OutcomeFound           = "found"
	OutcomeNoPath          = "no_path"
	OutcomeOutOfBounds     = "out_of_bounds"
	OutcomeBlockedEndpoint = "blocked_endpoint"
	OutcomeCancelled       = "cancelled"
	OutcomeIterationLimit  = "iteration_limit"
	OutcomeError           = "error"
)

// Metrics holds the collectors updated after every instrumented solve.
type Metrics struct {
	Solves     *prometheus.CounterVec
	Duration   prometheus.Histogram
	Iterations prometheus.Histogram
	PathLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "solves_total",
			Help:      "Total number of grid searches by outcome",
		}, []string{"outcome"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one grid search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "solve_iterations",
			Help:      "Nodes expanded per grid search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		PathLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "path_length_cells",
			Help:      "Cells on the returned path, endpoints included",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

func (m *Metrics) observe(res astar.Result, err error, seconds float64) {
	if m == nil {
		return
	}
	m.Solves.WithLabelValues(Outcome(res, err)).Inc()
	m.Duration.Observe(seconds)
	m.Iterations.Observe(float64(res.Iterations))
	if res.Found {
		m.PathLength.Observe(float64(len(res.Path)))
	}
}

// Outcome maps the result of a solve to one of the Outcome* labels.
func Outcome(res astar.Result, err error) string {
	switch {
	case err == nil && res.Found:
		return OutcomeFound
	case errors.Is(err, astar.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, astar.ErrOutOfBounds):
		return OutcomeOutOfBounds
	case errors.Is(err, astar.ErrBlockedEndpoint):
		return OutcomeBlockedEndpoint
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case errors.Is(err, astar.ErrIterationLimit):
		return OutcomeIterationLimit
	default:
		return OutcomeError
	}
}
