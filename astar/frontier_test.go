package astar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var frontierKinds = []FrontierKind{LinearFrontier, HeapFrontier}

func newTestRunner(kind FrontierKind) *runner {
	return &runner{
		open:   newFrontier(kind, 0),
		closed: newVisited(0),
	}
}

// TestTryAdmit_OpenPolicy covers the open-set admission rules: equal or worse
// candidates are dropped, better ones are appended next to the stale entry.
func TestTryAdmit_OpenPolicy(t *testing.T) {
	p := gridgraph.Position{Row: 2, Col: 3}
	for _, kind := range frontierKinds {
		t.Run(kind.String(), func(t *testing.T) {
			r := newTestRunner(kind)
			require.True(t, r.tryAdmit(Node{Pos: p, G: 3, H: 2, F: 5}))

			assert.False(t, r.tryAdmit(Node{Pos: p, G: 4, H: 2, F: 6}), "worse candidate must be dropped")
			assert.False(t, r.tryAdmit(Node{Pos: p, G: 3, H: 2, F: 5}), "equal candidate must be dropped")
			assert.Equal(t, 1, r.open.Len())

			assert.True(t, r.tryAdmit(Node{Pos: p, G: 2, H: 2, F: 4}), "better candidate is admitted")
			assert.Equal(t, 2, r.open.Len(), "stale entry is not replaced")

			best, ok := r.open.bestF(p)
			require.True(t, ok)
			assert.Equal(t, 4.0, best)

			n := r.open.popMin()
			assert.Equal(t, 4.0, n.F, "better duplicate is selected first")
			best, ok = r.open.bestF(p)
			require.True(t, ok)
			assert.Equal(t, 5.0, best, "stale entry is still open")

			n = r.open.popMin()
			assert.Equal(t, 5.0, n.F)
			_, ok = r.open.bestF(p)
			assert.False(t, ok)
		})
	}
}

// TestTryAdmit_VisitedPolicy covers rejection against the visited set.
func TestTryAdmit_VisitedPolicy(t *testing.T) {
	p := gridgraph.Position{Row: 1, Col: 1}
	for _, kind := range frontierKinds {
		t.Run(kind.String(), func(t *testing.T) {
			r := newTestRunner(kind)
			r.closed.add(Node{Pos: p, Parent: gridgraph.NoPosition, F: 3})

			assert.False(t, r.tryAdmit(Node{Pos: p, F: 3}))
			assert.False(t, r.tryAdmit(Node{Pos: p, F: 3.5}))
			assert.Zero(t, r.open.Len())
			assert.True(t, r.tryAdmit(Node{Pos: p, F: 2.5}))
			assert.Equal(t, 1, r.open.Len())
		})
	}
}

// TestPopMin_TieBreak verifies equal scores leave the frontier in insertion
// order, including after interleaved removals.
func TestPopMin_TieBreak(t *testing.T) {
	for _, kind := range frontierKinds {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFrontier(kind, 0)
			f.push(Node{Pos: gridgraph.Position{Row: 0, Col: 0}, F: 2})
			f.push(Node{Pos: gridgraph.Position{Row: 0, Col: 1}, F: 1})
			f.push(Node{Pos: gridgraph.Position{Row: 0, Col: 2}, F: 2})
			f.push(Node{Pos: gridgraph.Position{Row: 0, Col: 3}, F: 1})

			assert.Equal(t, 1, f.popMin().Pos.Col)
			f.push(Node{Pos: gridgraph.Position{Row: 0, Col: 4}, F: 1})
			assert.Equal(t, 3, f.popMin().Pos.Col)
			assert.Equal(t, 4, f.popMin().Pos.Col)
			assert.Equal(t, 0, f.popMin().Pos.Col)
			assert.Equal(t, 2, f.popMin().Pos.Col)
			assert.Zero(t, f.Len())
		})
	}
}

// TestFrontiers_Agree drives both implementations with the same random
// sequence of pushes and pops over few positions and few distinct scores.
func TestFrontiers_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	lin := newFrontier(LinearFrontier, 0)
	hp := newFrontier(HeapFrontier, 0)

	for step := 0; step < 2000; step++ {
		if lin.Len() > 0 && rng.Intn(3) == 0 {
			a, b := lin.popMin(), hp.popMin()
			require.Equal(t, a, b, "step %d", step)
			continue
		}
		n := Node{
			Pos: gridgraph.Position{Row: rng.Intn(3), Col: rng.Intn(3)},
			F:   float64(rng.Intn(4)),
		}
		lin.push(n)
		hp.push(n)

		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				p := gridgraph.Position{Row: r, Col: c}
				fa, oka := lin.bestF(p)
				fb, okb := hp.bestF(p)
				require.Equal(t, oka, okb)
				require.Equal(t, fa, fb)
			}
		}
	}
	require.Equal(t, lin.Len(), hp.Len())
	for lin.Len() > 0 {
		require.Equal(t, lin.popMin(), hp.popMin())
	}
}

// TestVisited_FirstEntryWins verifies lookups follow the earliest expansion
// while bestF tracks the lowest score.
func TestVisited_FirstEntryWins(t *testing.T) {
	v := newVisited(0)
	p := gridgraph.Position{Row: 4, Col: 4}
	v.add(Node{Pos: p, Parent: gridgraph.Position{Row: 3, Col: 3}, F: 9})
	v.add(Node{Pos: p, Parent: gridgraph.Position{Row: 4, Col: 3}, F: 7})

	n, ok := v.lookup(p)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Position{Row: 3, Col: 3}, n.Parent)
	f, ok := v.bestF(p)
	require.True(t, ok)
	assert.Equal(t, 7.0, f)
	assert.Equal(t, 2, v.Len())

	_, ok = v.lookup(gridgraph.NoPosition)
	assert.False(t, ok)
}

// TestReconstruct_BrokenChain verifies a dangling parent is reported rather
// than looping.
func TestReconstruct_BrokenChain(t *testing.T) {
	r := newTestRunner(LinearFrontier)
	r.start = gridgraph.Position{Row: 0, Col: 0}
	r.goal = gridgraph.Position{Row: 2, Col: 2}
	r.snapshot = gridgraph.NewSnapshot(3, 3)

	_, err := r.reconstruct(Node{Pos: r.goal, Parent: gridgraph.Position{Row: 1, Col: 1}})
	assert.ErrorIs(t, err, errBrokenChain)
}
