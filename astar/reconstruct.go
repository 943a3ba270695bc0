package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// errBrokenChain means a parent back-reference did not resolve in the
// visited set. The expansion order guarantees it always does.
var errBrokenChain = errors.New("astar: parent not found in visited set")

// reconstruct walks Parent back-references from goalNode to the start through
// the visited set, returns the path in start→goal order and marks it on the
// snapshot. It performs no search.
func (r *runner) reconstruct(goalNode Node) ([]gridgraph.Position, error) {
	path := []gridgraph.Position{goalNode.Pos}
	cur := goalNode
	for cur.Pos != r.start {
		parent, ok := r.closed.lookup(cur.Parent)
		if !ok {
			return nil, fmt.Errorf("%w: %v (child %v)", errBrokenChain, cur.Parent, cur.Pos)
		}
		path = append(path, parent.Pos)
		cur = parent
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for i := 1; i < len(path)-1; i++ {
		_ = r.snapshot.Mark(path[i], gridgraph.PathCell)
	}
	_ = r.snapshot.Mark(r.start, gridgraph.StartCell)
	_ = r.snapshot.Mark(r.goal, gridgraph.GoalCell)

	return path, nil
}
