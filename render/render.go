package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrSizeMismatch indicates the snapshot extent differs from the grid extent.
	ErrSizeMismatch = errors.New("render: snapshot size does not match grid")

	// ErrBadScale indicates a non-positive pixel scale for image output.
	ErrBadScale = errors.New("render: scale must be positive")
)

// Cell classifies one grid cell for display.
type Cell uint8

const (
	// Free is a passable cell off the path.
	Free Cell = iota
	// Obstacle is a blocked cell.
	Obstacle
	// Start is the first cell of the path.
	Start
	// Path is an intermediate cell of the path.
	Path
	// Goal is the last cell of the path.
	Goal
)

// glyphs indexed by Cell.
var glyphs = [...]byte{
	Free:     '.',
	Obstacle: '#',
	Start:    'S',
	Path:     '*',
	Goal:     'G',
}

// colorNames indexed by Cell, as understood by ansi.FGColorName.
var colorNames = [...]string{
	Free:     "light gray",
	Obstacle: "red",
	Start:    "green",
	Path:     "yellow",
	Goal:     "cyan",
}

// Glyph returns the single-character symbol used by Text and ANSI.
func (c Cell) Glyph() byte {
	if int(c) < len(glyphs) {
		return glyphs[c]
	}
	return '?'
}

// Classify merges the grid obstacles with the snapshot markers. Obstacles win
// over markers, which never happens for a snapshot produced by a solver.
func Classify(g *gridgraph.Grid, s gridgraph.Snapshot, p gridgraph.Position) Cell {
	if g.Blocked(p) {
		return Obstacle
	}
	switch s.At(p) {
	case gridgraph.StartCell:
		return Start
	case gridgraph.PathCell:
		return Path
	case gridgraph.GoalCell:
		return Goal
	default:
		return Free
	}
}

func check(g *gridgraph.Grid, s gridgraph.Snapshot) error {
	if g == nil {
		return ErrNilGrid
	}
	if s.Rows != g.Rows || s.Cols != g.Cols {
		return fmt.Errorf("%w: snapshot %dx%d, grid %dx%d", ErrSizeMismatch, s.Rows, s.Cols, g.Rows, g.Cols)
	}
	return nil
}

// Text draws the grid one row per line: '.' free, '#' obstacle, 'S' start,
// '*' path, 'G' goal.
func Text(g *gridgraph.Grid, s gridgraph.Snapshot) (string, error) {
	if err := check(g, s); err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			b.WriteByte(Classify(g, s, gridgraph.Position{Row: r, Col: c}).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// ANSI draws the same layout as Text with each glyph coloured for a terminal.
// The output ends with a reset sequence.
func ANSI(g *gridgraph.Grid, s gridgraph.Snapshot) (string, error) {
	if err := check(g, s); err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(g.Rows * g.Cols * 8)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Classify(g, s, gridgraph.Position{Row: r, Col: c})
			b.WriteString(ansi.FGColorName(colorNames[cell]))
			b.WriteByte(cell.Glyph())
		}
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Clear)
	return b.String(), nil
}
