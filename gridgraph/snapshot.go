package gridgraph

import (
	"fmt"
	"strings"
)

// Snapshot is a dense Rows×Cols array of Markers stored flat in row-major order.
// It is a side artifact for visualization and plays no part in the search.
type Snapshot struct {
	Rows, Cols int
	Cells      []Marker
}

// NewSnapshot returns an all-Unvisited snapshot of the given extent.
func NewSnapshot(rows, cols int) Snapshot {
	return Snapshot{Rows: rows, Cols: cols, Cells: make([]Marker, rows*cols)}
}

// At returns the marker stored for p, or Unvisited when p is outside the extent.
func (s Snapshot) At(p Position) Marker {
	if !s.contains(p) {
		return Unvisited
	}
	return s.Cells[p.Row*s.Cols+p.Col]
}

// Mark stores m for p.
func (s Snapshot) Mark(p Position, m Marker) error {
	if !s.contains(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrSnapshotBounds, p, s.Rows, s.Cols)
	}
	s.Cells[p.Row*s.Cols+p.Col] = m
	return nil
}

// Reset clears every cell back to Unvisited.
func (s Snapshot) Reset() {
	for i := range s.Cells {
		s.Cells[i] = Unvisited
	}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	cells := make([]Marker, len(s.Cells))
	copy(cells, s.Cells)
	return Snapshot{Rows: s.Rows, Cols: s.Cols, Cells: cells}
}

// String prints the marker values row by row, separated by single spaces.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow(s.Rows * (2*s.Cols + 1))
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('0' + byte(s.Cells[r*s.Cols+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s Snapshot) contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}
