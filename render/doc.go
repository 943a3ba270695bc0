// Package render turns a gridgraph.Grid plus the marker Snapshot of a solved
// search into something a person can look at.
//
// What:
//
//   - Text:    plain characters, one row per line ('.', '#', 'S', '*', 'G').
//   - ANSI:    the same layout coloured for a terminal.
//   - Image:   an image.Image with one square of Palette colour per cell.
//   - PNG:     Image encoded to an io.Writer.
//   - SavePNG: Image written to a file.
//
// Rows grow downward in every format, matching Snapshot.String.
//
// Errors:
//
//   - ErrNilGrid:      grid is nil.
//   - ErrSizeMismatch: snapshot extent differs from the grid.
//   - ErrBadScale:     image scale is not positive.
package render
