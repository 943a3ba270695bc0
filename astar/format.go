package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FormatPath renders path as "[r, c] -> [r, c] -> ...". An empty path
// renders as "(empty)".
func FormatPath(path []gridgraph.Position) string {
	if len(path) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	b.Grow(len(path) * 12)
	for i, p := range path {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// PathCost sums the true step lengths along path (1 straight, √2 diagonal).
func PathCost(path []gridgraph.Position) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += stepCost(path[i-1], path[i])
	}
	return total
}

// String summarizes r on one line.
func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("no path (%s, iterations=%d)", r.State, r.Iterations)
	}
	return fmt.Sprintf("%s (cost=%.3f, steps=%d, iterations=%d)",
		FormatPath(r.Path), r.Cost, len(r.Path)-1, r.Iterations)
}
