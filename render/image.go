package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Palette holds the fill colour of each Cell kind in image output.
var Palette = map[Cell]color.RGBA{
	Free:     {255, 255, 255, 255},
	Obstacle: {40, 40, 40, 255},
	Start:    {0, 200, 0, 255},
	Path:     {255, 200, 0, 255},
	Goal:     {0, 0, 255, 255},
}

// draw paints one scale×scale square per cell, row r at y = r*scale.
func draw(g *gridgraph.Grid, s gridgraph.Snapshot, scale int) (*gg.Context, error) {
	if err := check(g, s); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, scale)
	}

	dc := gg.NewContext(g.Cols*scale, g.Rows*scale)
	dc.SetColor(Palette[Free])
	dc.Clear()

	size := float64(scale)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Classify(g, s, gridgraph.Position{Row: r, Col: c})
			if cell == Free {
				continue
			}
			dc.SetColor(Palette[cell])
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Fill()
		}
	}
	return dc, nil
}

// Image rasterizes the grid with scale pixels per cell side.
func Image(g *gridgraph.Grid, s gridgraph.Snapshot, scale int) (image.Image, error) {
	dc, err := draw(g, s, scale)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG writes the rasterized grid to w as a PNG.
func PNG(w io.Writer, g *gridgraph.Grid, s gridgraph.Snapshot, scale int) error {
	dc, err := draw(g, s, scale)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the rasterized grid to the file at path.
func SavePNG(path string, g *gridgraph.Grid, s gridgraph.Snapshot, scale int) error {
	dc, err := draw(g, s, scale)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
