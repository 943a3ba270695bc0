package gridgraph

import "errors"

// MaxCells bounds Rows×Cols so that every row-major index fits in an int and
// the per-cell slices stay allocatable.
const MaxCells = 1 << 30

var (
	// ErrInvalidDimensions indicates a grid with zero or negative rows or columns.
	ErrInvalidDimensions = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrSnapshotBounds indicates a marker write outside the snapshot extent.
	ErrSnapshotBounds = errors.New("gridgraph: position outside snapshot")
)
