package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Estimate returns the distance from a to b under metric m.
// Unknown metrics fall back to Euclidean.
//
// Complexity: O(1).
func Estimate(a, b gridgraph.Position, m Metric) float64 {
	dr := float64(b.Row - a.Row)
	dc := float64(b.Col - a.Col)
	switch m {
	case Manhattan:
		return math.Abs(dr) + math.Abs(dc)
	case SquaredEuclidean:
		return dr*dr + dc*dc
	default:
		return math.Hypot(dr, dc)
	}
}

// stepCost is the true length of a single move: 1 straight, √2 diagonal.
func stepCost(from, to gridgraph.Position) float64 {
	return Estimate(from, to, Euclidean)
}
