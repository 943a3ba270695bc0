package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// visited is the closed set: an append-only arena of expanded nodes.
//
// A position may be expanded more than once when a better-scoring duplicate
// is admitted after it was first closed. first keeps the arena index of the
// earliest expansion, which is the entry path reconstruction follows.
type visited struct {
	nodes []Node
	first map[gridgraph.Position]int
	minF  map[gridgraph.Position]float64
}

func newVisited(capHint int) *visited {
	return &visited{
		nodes: make([]Node, 0, capHint),
		first: make(map[gridgraph.Position]int, capHint),
		minF:  make(map[gridgraph.Position]float64, capHint),
	}
}

func (v *visited) Len() int { return len(v.nodes) }

func (v *visited) add(n Node) {
	if _, ok := v.first[n.Pos]; !ok {
		v.first[n.Pos] = len(v.nodes)
	}
	if f, ok := v.minF[n.Pos]; !ok || n.F < f {
		v.minF[n.Pos] = n.F
	}
	v.nodes = append(v.nodes, n)
}

// lookup returns the earliest expanded node at p.
func (v *visited) lookup(p gridgraph.Position) (Node, bool) {
	i, ok := v.first[p]
	if !ok {
		return Node{}, false
	}
	return v.nodes[i], true
}

// bestF returns the lowest F among expanded entries at p.
func (v *visited) bestF(p gridgraph.Position) (float64, bool) {
	f, ok := v.minF[p]
	return f, ok
}
