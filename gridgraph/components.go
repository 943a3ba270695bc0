package gridgraph

// ComponentLabels labels every passable cell with the index of its
// 8-connected component. Blocked cells are labelled -1. Labels are assigned
// in row-major order of each component's first cell.
// Returns the flat label slice (row-major) and the number of components.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for labels and the BFS queue.
func (g *Grid) ComponentLabels() ([]int, int) {
	total := g.Rows * g.Cols
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || labels[i0] >= 0 {
			continue
		}
		// BFS to flood the component
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Position(queue[qi])
			for _, o := range offsets {
				v := u.Add(o)
				if !g.Passable(v) {
					continue
				}
				vi := g.Index(v)
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}
	return labels, count
}

// ConnectedComponents groups passable cells into 8-connected components.
// Each component lists its cells in row-major order.
func (g *Grid) ConnectedComponents() [][]Position {
	labels, n := g.ComponentLabels()
	comps := make([][]Position, n)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], g.Position(i))
		}
	}
	return comps
}

// Connected reports whether a and b are passable and reachable from one
// another using 8-directional moves.
func (g *Grid) Connected(a, b Position) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	labels, _ := g.ComponentLabels()
	return labels[g.Index(a)] == labels[g.Index(b)]
}
