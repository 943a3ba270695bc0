// Package gridgraph provides utilities to treat a bounded 2D grid with blocked
// cells as an 8-connected graph. It supports:
//
//   - Bounds and obstacle checks for candidate moves
//   - Row-major index conversion for flat per-cell storage
//   - Connected components of passable cells
//   - Flat marker snapshots for visualization
package gridgraph

import (
	"fmt"
	"sort"
)

// NewGrid constructs a Grid of rows×cols cells with the given blocked cells.
// Obstacles outside the grid are ignored and duplicates collapse; the input
// slice is not retained.
// Returns ErrInvalidDimensions if rows or cols is not positive, or if the grid
// would hold more than MaxCells cells.
// Algorithmic complexity: O(R×C + K log K) time, O(R×C) memory for K obstacles.
func NewGrid(rows, cols int, obstacles []Position) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	// rows*cols is only computed once it is known not to overflow
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, rows, cols, MaxCells)
	}
	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		blocked: make([]bool, rows*cols),
	}
	for _, p := range obstacles {
		if !g.InBounds(p) {
			continue
		}
		i := g.Index(p)
		if g.blocked[i] {
			continue
		}
		g.blocked[i] = true
		g.obstacles = append(g.obstacles, p)
	}
	sort.Slice(g.obstacles, func(i, j int) bool {
		return g.Index(g.obstacles[i]) < g.Index(g.obstacles[j])
	})

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Blocked reports whether p is an in-bounds obstacle.
func (g *Grid) Blocked(p Position) bool {
	return g.InBounds(p) && g.blocked[g.Index(p)]
}

// Passable reports whether p is in bounds and not an obstacle.
// Complexity: O(1).
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && !g.blocked[g.Index(p)]
}

// Obstacles returns the distinct in-bounds obstacles in row-major order.
func (g *Grid) Obstacles() []Position {
	out := make([]Position, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// Neighbors returns the passable cells one step away from p, in the order
// of the adjacency table.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		if q := p.Add(o); g.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// Index maps p to a row-major index: Row*Cols + Col.
// The caller must ensure p is in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.Cols, Col: idx % g.Cols}
}
