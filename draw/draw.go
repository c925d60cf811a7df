package draw

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"

	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/nwn"
)

// Default colors, matching the conventional network rendering: electrodes in
// light blue, plain wires in pink, junctions in blue.
var (
	electrodeColor = color.RGBA{R: 146, G: 197, B: 222, A: 255}
	wireColor      = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	faintWireColor = color.RGBA{R: 255, G: 192, B: 203, A: 153}
	junctionColor  = color.RGBA{B: 255, A: 255}
	edgeColor      = color.RGBA{R: 255, A: 255}
	nodeColor      = color.RGBA{R: 31, G: 120, B: 180, A: 255}
)

// Network draws the wires of the network in the plane. Electrodes and plain
// wires are colored apart unless opts.ColorBy maps each wire through the
// palette; junction points are scattered on top when opts.Intersections is
// set.
func Network(n *nwn.Network, opts Options) (*plot.Plot, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if opts.ColorBy != nil && len(opts.ColorBy) != n.WireNum() {
		return nil, fmt.Errorf("%w: %d values for %d wires",
			ErrColorLength, len(opts.ColorBy), n.WireNum())
	}

	p := newCanvas(n, opts)

	var lo, hi float64
	if opts.ColorBy != nil {
		lo, hi = valueRange(opts.ColorBy)
		// Keep the normalization window non-degenerate for flat inputs.
		hi = math.Max(hi, 0.1)
	}
	pal := opts.palette()

	for i, line := range n.Lines() {
		pl, err := plotter.NewLine(lineXYs(line))
		if err != nil {
			return nil, fmt.Errorf("draw: wire %d: %w", i, err)
		}
		switch {
		case opts.ColorBy != nil:
			pl.Color = colorFor(pal, opts.ColorBy[i], lo, hi)
		case n.IsElectrode(i):
			pl.Color = electrodeColor
		default:
			pl.Color = wireColor
		}
		p.Add(pl)
	}

	if opts.Intersections {
		if err := addJunctions(p, n); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Sections redraws the network with the interior segments of each wire
// colored by the section currents, brightest where the most current flows.
// currents holds one slice per wire, index-aligned with wire IDs; electrode
// entries are ignored and a wire with fewer than two junctions has no
// segments to color.
func Sections(n *nwn.Network, currents [][]float64, opts Options) (*plot.Plot, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if len(currents) != n.WireNum() {
		return nil, fmt.Errorf("%w: %d current slices for %d wires",
			ErrSectionLength, len(currents), n.WireNum())
	}

	p := newCanvas(n, opts)

	// Base layer: the wire layout, plain wires faded so the overlay reads.
	for i, line := range n.Lines() {
		pl, err := plotter.NewLine(lineXYs(line))
		if err != nil {
			return nil, fmt.Errorf("draw: wire %d: %w", i, err)
		}
		if n.IsElectrode(i) {
			pl.Color = electrodeColor
		} else {
			pl.Color = faintWireColor
		}
		p.Add(pl)
	}

	lo, hi := sectionRange(currents)
	hi = math.Max(hi, lo+1e-10)
	pal := opts.palette()

	for i := range currents {
		if n.IsElectrode(i) {
			continue
		}
		sections, err := n.LineSections(i)
		if err != nil {
			return nil, fmt.Errorf("draw: wire %d: %w", i, err)
		}
		if len(sections) < 2 {
			if len(currents[i]) != 0 {
				return nil, fmt.Errorf("%w: wire %d has no interior sections", ErrSectionLength, i)
			}
			continue
		}
		if len(currents[i]) != len(sections)-1 {
			return nil, fmt.Errorf("%w: wire %d: %d currents for %d sections",
				ErrSectionLength, i, len(currents[i]), len(sections)-1)
		}

		for s, value := range currents[i] {
			seg, err := plotter.NewLine(plotter.XYs{
				{X: sections[s].Point.X, Y: sections[s].Point.Y},
				{X: sections[s+1].Point.X, Y: sections[s+1].Point.Y},
			})
			if err != nil {
				return nil, fmt.Errorf("draw: wire %d section %d: %w", i, s, err)
			}
			seg.Color = colorFor(pal, value, lo, hi)
			seg.Width = vg.Points(1.5)
			p.Add(seg)
		}
	}

	if err := addJunctions(p, n); err != nil {
		return nil, err
	}

	return p, nil
}

// newCanvas builds the shared plot shell: grid, labels, scaled ticks.
func newCanvas(n *nwn.Network, opts Options) *plot.Plot {
	p := plot.New()
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}
	if opts.Scaled {
		p.X.Tick.Marker = scaledTicks{factor: n.Units.Length}
		p.Y.Tick.Marker = scaledTicks{factor: n.Units.Length}
	}
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	return p
}

// addJunctions scatters the junction points above the wire layer.
func addJunctions(p *plot.Plot, n *nwn.Network) error {
	points := n.JunctionPoints()
	if len(points) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("draw: junctions: %w", err)
	}
	sc.GlyphStyle.Shape = vgdraw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Color = junctionColor
	p.Add(sc)

	return nil
}

// scaledTicks rewrites default tick labels in characteristic units.
type scaledTicks struct {
	factor float64
}

func (t scaledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(tick.Value*t.factor, 'g', 3, 64)
	}

	return ticks
}

func lineXYs(line geom.Line) plotter.XYs {
	return plotter.XYs{
		{X: line.Start.X, Y: line.Start.Y},
		{X: line.End.X, Y: line.End.Y},
	}
}

// colorFor maps a scalar into the palette over [lo, hi]. NaN values render
// gray so pathological entries stay visible without aborting the plot.
func colorFor(pal palette.Palette, v, lo, hi float64) color.Color {
	colors := pal.Colors()
	if math.IsNaN(v) {
		return color.Gray{Y: 128}
	}
	if hi <= lo {
		return colors[0]
	}
	idx := int((v - lo) / (hi - lo) * float64(len(colors)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(colors) {
		idx = len(colors) - 1
	}

	return colors[idx]
}

// valueRange returns the min and max of values, skipping NaN entries.
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

func sectionRange(currents [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range currents {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}

	return lo, hi
}
