// Command gridpath solves grid pathfinding scenarios from the command line.
//
//	gridpath solve -f scenario.yaml [--greediness 1.5] [--heuristic manhattan] [--png out.png]
//	gridpath demo [--color]
//
// Exit status is 0 when a path is found, 2 when no path exists and 1 for any
// other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

var version = "--- set from makefile ---"

const (
	exitFailure = 1
	exitNoPath  = 2
)

// exitError carries the process exit status for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
