package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// frontier is the open set: nodes discovered but not yet expanded.
//
// Entries are never replaced. A better-scoring node for a position that is
// already open is pushed alongside the older entry; the stale entry stays
// until it is selected. popMin returns the entry with the lowest F, breaking
// ties by insertion order, so both implementations select identically.
type frontier interface {
	Len() int
	push(n Node)
	popMin() Node
	// bestF returns the lowest F among open entries at p.
	bestF(p gridgraph.Position) (float64, bool)
}

func newFrontier(kind FrontierKind, capHint int) frontier {
	if kind == HeapFrontier {
		return &heapFrontier{
			open: make(map[gridgraph.Position][]float64, capHint),
			pq:   make(nodePQ, 0, capHint),
		}
	}
	return &linearFrontier{nodes: make([]Node, 0, capHint)}
}

// linearFrontier scans an insertion-ordered slice for every operation.
type linearFrontier struct {
	nodes []Node
}

func (f *linearFrontier) Len() int { return len(f.nodes) }

func (f *linearFrontier) push(n Node) { f.nodes = append(f.nodes, n) }

// popMin removes the first entry with minimal F. Removal keeps the remaining
// entries in insertion order.
func (f *linearFrontier) popMin() Node {
	best := 0
	for i := 1; i < len(f.nodes); i++ {
		if f.nodes[i].F < f.nodes[best].F {
			best = i
		}
	}
	n := f.nodes[best]
	f.nodes = append(f.nodes[:best], f.nodes[best+1:]...)
	return n
}

func (f *linearFrontier) bestF(p gridgraph.Position) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for i := range f.nodes {
		if f.nodes[i].Pos != p {
			continue
		}
		if !found || f.nodes[i].F < best {
			best, found = f.nodes[i].F, true
		}
	}
	return best, found
}

// heapFrontier orders entries by (F, seq) in a binary heap and indexes the
// F values of open entries by position for the admission check.
type heapFrontier struct {
	pq   nodePQ
	open map[gridgraph.Position][]float64
	seq  uint64
}

func (f *heapFrontier) Len() int { return f.pq.Len() }

func (f *heapFrontier) push(n Node) {
	heap.Push(&f.pq, &nodeItem{node: n, seq: f.seq})
	f.seq++
	f.open[n.Pos] = append(f.open[n.Pos], n.F)
}

func (f *heapFrontier) popMin() Node {
	n := heap.Pop(&f.pq).(*nodeItem).node

	scores := f.open[n.Pos]
	for i, s := range scores {
		if s == n.F {
			scores = append(scores[:i], scores[i+1:]...)
			break
		}
	}
	if len(scores) == 0 {
		delete(f.open, n.Pos)
	} else {
		f.open[n.Pos] = scores
	}
	return n
}

func (f *heapFrontier) bestF(p gridgraph.Position) (float64, bool) {
	scores, ok := f.open[p]
	if !ok {
		return 0, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s < best {
			best = s
		}
	}
	return best, true
}

// nodeItem is a frontier entry with its insertion sequence number.
type nodeItem struct {
	node Node
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by F, then by insertion order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by F; equal F falls back to the earlier insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].node.F != pq[j].node.F {
		return pq[i].node.F < pq[j].node.F
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
