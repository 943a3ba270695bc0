package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for scenario files.
var (
	// ErrEmptyScenario indicates the document contained no YAML content.
	ErrEmptyScenario = errors.New("scenario: empty document")

	// ErrMalformedPosition indicates a position that is not a [row, col] pair.
	ErrMalformedPosition = errors.New("scenario: position must be [row, col]")

	// ErrMissingEndpoint indicates start or goal is absent.
	ErrMissingEndpoint = errors.New("scenario: missing endpoint")
)

// Point is a [row, col] pair as written in a scenario file.
type Point [2]int

// UnmarshalYAML accepts exactly a two-element integer sequence.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var xs []int
	if err := n.Decode(&xs); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrMalformedPosition, n.Line, err)
	}
	if len(xs) != 2 {
		return fmt.Errorf("%w: line %d: got %d values", ErrMalformedPosition, n.Line, len(xs))
	}
	*p = Point{xs[0], xs[1]}
	return nil
}

// Position converts p to a grid position.
func (p Point) Position() gridgraph.Position {
	return gridgraph.Position{Row: p[0], Col: p[1]}
}

// PointOf converts a grid position to its file form.
func PointOf(pos gridgraph.Position) Point {
	return Point{pos.Row, pos.Col}
}

// Scenario is one grid, its endpoints and the solver settings to use.
// Zero values select the solver defaults.
type Scenario struct {
	Rows              int      `yaml:"rows"`
	Cols              int      `yaml:"cols"`
	Obstacles         []Point  `yaml:"obstacles,omitempty"`
	Start             *Point   `yaml:"start"`
	Goal              *Point   `yaml:"goal"`
	Greediness        *float64 `yaml:"greediness,omitempty"`
	Heuristic         string   `yaml:"heuristic,omitempty"`
	Frontier          string   `yaml:"frontier,omitempty"`
	MaxIterations     int      `yaml:"max_iterations,omitempty"`
	ReachabilityCheck bool     `yaml:"reachability_check,omitempty"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the parts of the scenario that can be checked without
// building a grid: both endpoints are present and the heuristic and frontier
// names are known. Dimensions, endpoints and greediness are checked by the
// solver itself.
func (sc *Scenario) Validate() error {
	if sc.Start == nil {
		return fmt.Errorf("%w: start", ErrMissingEndpoint)
	}
	if sc.Goal == nil {
		return fmt.Errorf("%w: goal", ErrMissingEndpoint)
	}
	if sc.Heuristic != "" {
		if _, err := astar.ParseMetric(sc.Heuristic); err != nil {
			return fmt.Errorf("scenario: %w", err)
		}
	}
	if sc.Frontier != "" {
		if _, err := astar.ParseFrontier(sc.Frontier); err != nil {
			return fmt.Errorf("scenario: %w", err)
		}
	}
	return nil
}

// Endpoints returns the start and goal positions.
func (sc *Scenario) Endpoints() (start, goal gridgraph.Position) {
	return sc.Start.Position(), sc.Goal.Position()
}

// Grid builds the immutable grid described by the scenario.
func (sc *Scenario) Grid() (*gridgraph.Grid, error) {
	obstacles := make([]gridgraph.Position, len(sc.Obstacles))
	for i, p := range sc.Obstacles {
		obstacles[i] = p.Position()
	}
	g, err := gridgraph.NewGrid(sc.Rows, sc.Cols, obstacles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", astar.ErrInvalidConfiguration, err)
	}
	return g, nil
}

// Options translates the scenario settings into solver options.
func (sc *Scenario) Options() ([]astar.Option, error) {
	var opts []astar.Option
	if sc.Greediness != nil {
		opts = append(opts, astar.WithGreediness(*sc.Greediness))
	}
	if sc.Heuristic != "" {
		m, err := astar.ParseMetric(sc.Heuristic)
		if err != nil {
			return nil, fmt.Errorf("scenario: %w", err)
		}
		opts = append(opts, astar.WithHeuristic(m))
	}
	if sc.Frontier != "" {
		k, err := astar.ParseFrontier(sc.Frontier)
		if err != nil {
			return nil, fmt.Errorf("scenario: %w", err)
		}
		opts = append(opts, astar.WithFrontier(k))
	}
	if sc.MaxIterations != 0 {
		opts = append(opts, astar.WithMaxIterations(sc.MaxIterations))
	}
	if sc.ReachabilityCheck {
		opts = append(opts, astar.WithReachabilityCheck())
	}
	return opts, nil
}

// Solver builds a solver for the scenario. extra options are applied after the
// scenario's own, so they override it.
func (sc *Scenario) Solver(extra ...astar.Option) (*astar.Solver, error) {
	g, err := sc.Grid()
	if err != nil {
		return nil, err
	}
	opts, err := sc.Options()
	if err != nil {
		return nil, err
	}
	return astar.NewSolver(g, append(opts, extra...)...)
}

// Run builds a solver and searches from start to goal. The solver is returned
// even when the search fails so that callers can inspect its grid.
func (sc *Scenario) Run(ctx context.Context, extra ...astar.Option) (astar.Result, *astar.Solver, error) {
	if err := sc.Validate(); err != nil {
		return astar.Result{}, nil, err
	}
	s, err := sc.Solver(extra...)
	if err != nil {
		return astar.Result{}, nil, err
	}
	start, goal := sc.Endpoints()
	res, err := s.SolveContext(ctx, start, goal)
	return res, s, err
}

// Demo is the fixed example: an open 20×20 grid from (0,0) to (10,15).
func Demo() *Scenario {
	return &Scenario{
		Rows:  20,
		Cols:  20,
		Start: &Point{0, 0},
		Goal:  &Point{10, 15},
	}
}

// Encode writes sc as a YAML document.
func (sc *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	return enc.Close()
}
