package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// benchGrid builds an n×n grid with ~20% obstacles, keeping the corners free.
func benchGrid(n int) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(42))
	var obs []gridgraph.Position
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if (r == 0 && c == 0) || (r == n-1 && c == n-1) {
				continue
			}
			if rng.Float64() < 0.2 {
				obs = append(obs, gridgraph.Position{Row: r, Col: c})
			}
		}
	}
	g, _ := gridgraph.NewGrid(n, n, obs)
	return g
}

func benchmarkSolve(b *testing.B, kind astar.FrontierKind, n int) {
	g := benchGrid(n)
	s, err := astar.NewSolver(g, astar.WithFrontier(kind))
	if err != nil {
		b.Fatalf("NewSolver failed: %v", err)
	}
	goal := gridgraph.Position{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(gridgraph.Position{}, goal)
	}
}

// BenchmarkSolve_Linear measures the reference scan-based frontier.
// Complexity: O(N²) in admitted nodes.
func BenchmarkSolve_Linear(b *testing.B) { benchmarkSolve(b, astar.LinearFrontier, 60) }

// BenchmarkSolve_Heap measures the heap frontier on the same grid.
// Complexity: O(N log N) in admitted nodes.
func BenchmarkSolve_Heap(b *testing.B) { benchmarkSolve(b, astar.HeapFrontier, 60) }

// BenchmarkSolve_HeapLarge runs the heap frontier on a 300×300 map.
func BenchmarkSolve_HeapLarge(b *testing.B) { benchmarkSolve(b, astar.HeapFrontier, 300) }
