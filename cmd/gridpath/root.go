package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
)

// app is the state shared by all subcommands.
type app struct {
	out, errOut io.Writer
	logLevel    string
	logger      *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Weighted A* pathfinding on 8-connected grids",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newSolveCmd(a), newDemoCmd(a))
	return root
}

// runFlags are the solver overrides and output switches shared by solve and demo.
type runFlags struct {
	greediness    float64
	heuristic     string
	frontier      string
	maxIterations int
	reachability  bool

	png     string
	scale   int
	color   bool
	noGrid  bool
	metrics bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64VarP(&f.greediness, "greediness", "w", 1.0, "heuristic weight (0 = uniform cost, 1 = A*, >1 = greedy)")
	fs.StringVar(&f.heuristic, "heuristic", "", "heuristic metric: euclidean, manhattan or squared-euclidean")
	fs.StringVar(&f.frontier, "frontier", "", "open set implementation: linear or heap")
	fs.IntVar(&f.maxIterations, "max-iterations", 0, "stop after this many expansions (0 = no cap)")
	fs.BoolVar(&f.reachability, "reachability-check", false, "reject disconnected endpoints before searching")

	fs.StringVar(&f.png, "png", "", "write the solved grid to this PNG file")
	fs.IntVar(&f.scale, "scale", 16, "PNG pixels per cell")
	fs.BoolVar(&f.color, "color", false, "colour the printed grid")
	fs.BoolVar(&f.noGrid, "no-grid", false, "do not print the grid")
	fs.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after solving")
}

// overrides turns the flags set on the command line into solver options.
// Flags left at their defaults do not override the scenario.
func (f *runFlags) overrides(cmd *cobra.Command) ([]astar.Option, error) {
	var opts []astar.Option
	fs := cmd.Flags()
	if fs.Changed("greediness") {
		opts = append(opts, astar.WithGreediness(f.greediness))
	}
	if fs.Changed("heuristic") {
		m, err := astar.ParseMetric(f.heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithHeuristic(m))
	}
	if fs.Changed("frontier") {
		k, err := astar.ParseFrontier(f.frontier)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithFrontier(k))
	}
	if fs.Changed("max-iterations") {
		opts = append(opts, astar.WithMaxIterations(f.maxIterations))
	}
	if f.reachability {
		opts = append(opts, astar.WithReachabilityCheck())
	}
	return opts, nil
}
