package astar_test

import (
	"container/heap"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Reference: plain Dijkstra over the 8-connected grid
//----------------------------------------------------------------------------//

type refItem struct {
	idx  int
	dist float64
}

type refPQ []refItem

func (pq refPQ) Len() int            { return len(pq) }
func (pq refPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq refPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *refPQ) Push(x interface{}) { *pq = append(*pq, x.(refItem)) }
func (pq *refPQ) Pop() interface{} {
	old := *pq
	item := old[len(old)-1]
	*pq = old[:len(old)-1]
	return item
}

// shortestCost returns the optimal 8-directional cost from start to goal,
// or +Inf if unreachable.
func shortestCost(g *gridgraph.Grid, start, goal gridgraph.Position) float64 {
	dist := make([]float64, g.Rows*g.Cols)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.Index(start)] = 0
	pq := &refPQ{{idx: g.Index(start)}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(refItem)
		if it.dist > dist[it.idx] {
			continue
		}
		u := g.Position(it.idx)
		if u == goal {
			return it.dist
		}
		for _, v := range g.Neighbors(u) {
			nd := it.dist + math.Hypot(float64(v.Row-u.Row), float64(v.Col-u.Col))
			if vi := g.Index(v); nd < dist[vi] {
				dist[vi] = nd
				heap.Push(pq, refItem{idx: vi, dist: nd})
			}
		}
	}
	return math.Inf(1)
}

// octile is the obstacle-free optimum between two cells.
func octile(a, b gridgraph.Position) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	return math.Max(dr, dc) - math.Min(dr, dc) + math.Sqrt2*math.Min(dr, dc)
}

type randomCase struct {
	grid        *gridgraph.Grid
	start, goal gridgraph.Position
}

// randomCases builds n grids of 3..14 cells per side with ~density obstacles
// and passable random endpoints.
func randomCases(seed int64, n int, density float64) []randomCase {
	rng := rand.New(rand.NewSource(seed))
	out := make([]randomCase, 0, n)
	for len(out) < n {
		rows, cols := 3+rng.Intn(12), 3+rng.Intn(12)
		var obs []gridgraph.Position
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Float64() < density {
					obs = append(obs, gridgraph.Position{Row: r, Col: c})
				}
			}
		}
		g, _ := gridgraph.NewGrid(rows, cols, obs)
		start := gridgraph.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		goal := gridgraph.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if !g.Passable(start) || !g.Passable(goal) {
			continue
		}
		out = append(out, randomCase{grid: g, start: start, goal: goal})
	}
	return out
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestProperty_OpenGridOptimal: without obstacles the cost equals the
// octile distance for every endpoint pair.
func TestProperty_OpenGridOptimal(t *testing.T) {
	s, err := astar.New(7, 9, nil)
	require.NoError(t, err)

	for sr := 0; sr < 7; sr++ {
		for sc := 0; sc < 9; sc++ {
			for _, goal := range []gridgraph.Position{{Row: 0, Col: 0}, {Row: 6, Col: 8}, {Row: 3, Col: 4}, {Row: 0, Col: 8}, {Row: 6, Col: 0}} {
				start := pos(sr, sc)
				res, err := s.Solve(start, goal)
				require.NoError(t, err)
				require.InDelta(t, octile(start, goal), res.Cost, eps, "%v -> %v", start, goal)
				requireValidPath(t, s.Grid(), res.Path, start, goal)
			}
		}
	}
}

// TestProperty_MatchesDijkstra: with obstacles, greediness 0 and 1 both
// return the true shortest cost, and NoPath exactly when unreachable.
func TestProperty_MatchesDijkstra(t *testing.T) {
	for i, tc := range randomCases(42, 150, 0.3) {
		want := shortestCost(tc.grid, tc.start, tc.goal)
		for _, w := range []float64{0, 1} {
			s, err := astar.NewSolver(tc.grid, astar.WithGreediness(w))
			require.NoError(t, err)

			res, err := s.Solve(tc.start, tc.goal)
			if math.IsInf(want, 1) {
				require.ErrorIs(t, err, astar.ErrNoPath, "case %d w=%v", i, w)
				require.False(t, res.Found)
				continue
			}
			require.NoError(t, err, "case %d w=%v", i, w)
			require.InDelta(t, want, res.Cost, eps, "case %d w=%v", i, w)
			require.InDelta(t, res.Cost, astar.PathCost(res.Path), eps, "case %d w=%v", i, w)
			requireValidPath(t, tc.grid, res.Path, tc.start, tc.goal)
		}
	}
}

// TestProperty_GreedyStillValid: greediness > 1 and the inadmissible metrics
// still yield valid paths no cheaper than the optimum, and Cost is the cost of
// the returned path.
func TestProperty_GreedyStillValid(t *testing.T) {
	configs := [][]astar.Option{
		{astar.WithGreediness(2.5)},
		{astar.WithGreediness(10)},
		{astar.WithHeuristic(astar.Manhattan)},
		{astar.WithHeuristic(astar.SquaredEuclidean)},
	}
	for i, tc := range randomCases(99, 600, 0.25) {
		want := shortestCost(tc.grid, tc.start, tc.goal)
		for _, opts := range configs {
			s, err := astar.NewSolver(tc.grid, opts...)
			require.NoError(t, err)

			res, err := s.Solve(tc.start, tc.goal)
			if math.IsInf(want, 1) {
				require.ErrorIs(t, err, astar.ErrNoPath, "case %d", i)
				continue
			}
			require.NoError(t, err, "case %d", i)
			requireValidPath(t, tc.grid, res.Path, tc.start, tc.goal)
			require.InDelta(t, res.Cost, astar.PathCost(res.Path), eps, "case %d", i)
			require.GreaterOrEqual(t, res.Cost, want-eps, "case %d", i)
		}
	}
}

// TestProperty_MonotoneF: with a consistent heuristic and greediness ≤ 1 the
// F values of selected nodes never decrease.
func TestProperty_MonotoneF(t *testing.T) {
	for i, tc := range randomCases(5, 60, 0.2) {
		for _, w := range []float64{0, 0.5, 1} {
			var fs []float64
			s, err := astar.NewSolver(tc.grid,
				astar.WithGreediness(w),
				astar.WithOnExpand(func(n astar.Node) {
					require.InDelta(t, n.G+n.H, n.F, eps)
					fs = append(fs, n.F)
				}),
			)
			require.NoError(t, err)

			_, err = s.Solve(tc.start, tc.goal)
			if err != nil {
				require.ErrorIs(t, err, astar.ErrNoPath)
			}
			for k := 1; k < len(fs); k++ {
				require.GreaterOrEqual(t, fs[k], fs[k-1]-eps, "case %d w=%v step %d", i, w, k)
			}
		}
	}
}

// TestProperty_FrontiersAgree: the heap frontier reproduces the linear
// frontier's paths, costs and iteration counts exactly.
func TestProperty_FrontiersAgree(t *testing.T) {
	configs := [][]astar.Option{
		nil,
		{astar.WithGreediness(0)},
		{astar.WithGreediness(3)},
		{astar.WithHeuristic(astar.Manhattan)},
		{astar.WithHeuristic(astar.SquaredEuclidean)},
	}
	for i, tc := range randomCases(2024, 80, 0.3) {
		for _, opts := range configs {
			lin, err := astar.NewSolver(tc.grid, append(opts, astar.WithFrontier(astar.LinearFrontier))...)
			require.NoError(t, err)
			hp, err := astar.NewSolver(tc.grid, append(opts, astar.WithFrontier(astar.HeapFrontier))...)
			require.NoError(t, err)

			a, errA := lin.Solve(tc.start, tc.goal)
			b, errB := hp.Solve(tc.start, tc.goal)
			require.Equal(t, errA == nil, errB == nil, "case %d", i)
			require.Equal(t, a, b, "case %d", i)
			require.Equal(t, lin.Snapshot(), hp.Snapshot(), "case %d", i)
		}
	}
}

// TestProperty_ReachabilityAgrees: the component precheck never changes a
// found path and only short-circuits genuine failures.
func TestProperty_ReachabilityAgrees(t *testing.T) {
	for i, tc := range randomCases(11, 100, 0.4) {
		plain, err := astar.NewSolver(tc.grid)
		require.NoError(t, err)
		checked, err := astar.NewSolver(tc.grid, astar.WithReachabilityCheck())
		require.NoError(t, err)

		a, errA := plain.Solve(tc.start, tc.goal)
		b, errB := checked.Solve(tc.start, tc.goal)
		if errA != nil {
			require.True(t, errors.Is(errA, astar.ErrNoPath) && errors.Is(errB, astar.ErrNoPath), "case %d", i)
			assert.Zero(t, b.Iterations, "case %d", i)
			continue
		}
		require.NoError(t, errB, "case %d", i)
		require.Equal(t, a, b, "case %d", i)
	}
}
