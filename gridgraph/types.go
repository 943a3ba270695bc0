// Package gridgraph defines the coordinate, adjacency and snapshot types
// shared by the search packages of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Position identifies a single grid cell by row and column.
type Position struct {
	Row, Col int
}

// NoPosition is the parent sentinel carried by a search root.
var NoPosition = Position{Row: -1, Col: -1}

// Add returns the cell reached from p by a single step of o.
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// String renders p as "[row, col]".
func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Col)
}

// Offset is a single-step displacement between neighboring cells.
type Offset struct {
	DRow, DCol int
}

// offsets is the 8-directional adjacency table. Its order fixes the order in
// which successors are generated, and therefore tie-breaking between equal scores.
var offsets = [8]Offset{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Offsets returns a copy of the 8-directional adjacency table:
// E, W, S, N, SE, SW, NE, NW (rows grow downward).
// Complexity: O(1).
func Offsets() [8]Offset {
	return offsets
}

// Marker is the value stored per cell in a Snapshot.
type Marker uint8

const (
	// Unvisited marks a cell that is not on the reconstructed path.
	Unvisited Marker = iota
	// StartCell marks the start of the path.
	StartCell
	// PathCell marks an intermediate cell of the path.
	PathCell
	// GoalCell marks the goal of the path.
	GoalCell
)

// Grid is an immutable rectangular grid of Rows×Cols cells with a fixed set of
// blocked cells. Blocked cells are kept in a flat row-major mask so that
// Passable answers in O(1).
type Grid struct {
	Rows, Cols int
	blocked    []bool
	obstacles  []Position
}
