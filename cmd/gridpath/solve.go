package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/instrument"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file  string
		flags runFlags
	)
	cmd := &cobra.Command{
		Use:   "solve -f scenario.yaml",
		Short: "Solve the scenario described by a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := scenario.Load(file)
			if err != nil {
				return err
			}
			return a.run(cmd, sc, &flags)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario file")
	_ = cmd.MarkFlagRequired("file")
	flags.register(cmd)
	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in 20x20 example from (0,0) to (10,15)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, scenario.Demo(), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

// run solves sc with the command-line overrides applied and prints the result.
func (a *app) run(cmd *cobra.Command, sc *scenario.Scenario, f *runFlags) error {
	extra, err := f.overrides(cmd)
	if err != nil {
		return err
	}
	extra = append(extra, astar.WithLogger(a.logger))

	s, err := sc.Solver(extra...)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	solver := instrument.Wrap(s,
		instrument.WithMetrics(instrument.NewMetrics(reg)),
		instrument.WithLogger(a.logger),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start, goal := sc.Endpoints()

	res, solveErr := solver.Solve(ctx, start, goal)

	if err := a.report(res, s, f); err != nil {
		return err
	}
	if f.metrics {
		if err := writeMetrics(a, reg); err != nil {
			return err
		}
	}

	switch {
	case solveErr == nil:
		return nil
	case errors.Is(solveErr, astar.ErrNoPath):
		return &exitError{code: exitNoPath, err: solveErr}
	default:
		return &exitError{code: exitFailure, err: solveErr}
	}
}

// report prints the result line, then the grid, then writes the PNG.
func (a *app) report(res astar.Result, s *astar.Solver, f *runFlags) error {
	fmt.Fprintln(a.out, res)

	if res.State == astar.StateUnsolved {
		return nil
	}
	if !f.noGrid {
		draw := render.Text
		if f.color {
			draw = render.ANSI
		}
		grid, err := draw(s.Grid(), s.Snapshot())
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, grid)
	}
	if f.png != "" {
		if err := render.SavePNG(f.png, s.Grid(), s.Snapshot(), f.scale); err != nil {
			return err
		}
		a.logger.Info("png written", slog.String("path", f.png))
	}
	return nil
}

func writeMetrics(a *app, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
