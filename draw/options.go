package draw

import "gonum.org/v1/plot/palette"

// defaultPaletteSize is the number of discrete colors sampled from the
// palette when mapping scalar values.
const defaultPaletteSize = 64

// Options configures the planar renderers.
type Options struct {
	// Intersections scatters the junction points over the wires.
	Intersections bool
	// Scaled rewrites tick labels in characteristic length units.
	Scaled bool
	// ColorBy assigns one scalar per wire, mapped through Palette. Nil
	// keeps the default electrode/wire coloring.
	ColorBy []float64
	// Palette maps scalars to colors. Nil falls back to a heat palette.
	Palette palette.Palette
	// Grid draws background grid lines.
	Grid bool
	// XLabel and YLabel set the axis labels; empty leaves them unset.
	XLabel, YLabel string
}

// DefaultOptions returns the canonical rendering options: junctions shown,
// grid on, unscaled axes.
func DefaultOptions() Options {
	return Options{
		Intersections: true,
		Grid:          true,
	}
}

func (o Options) palette() palette.Palette {
	if o.Palette != nil {
		return o.Palette
	}
	return palette.Heat(defaultPaletteSize, 1)
}
