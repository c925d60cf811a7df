package draw

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"

	"github.com/nanonetlab/randomnwn/nwn"
)

// Graph draws the network's connectivity diagram: one node per wire, one
// edge per junction.
//
// Node placement follows the representation tag: a junction-dominated
// network positions each node at its wire's midpoint, so the diagram keeps
// the spatial layout; a multi-nodal network has no single position per wire
// and falls back to a deterministic circular layout.
//
// labels overrides the default index labels; edgeColors maps one scalar per
// junction, in EdgeIndices order, through the heat palette. Either may be
// nil.
func Graph(n *nwn.Network, labels []string, edgeColors []float64) (*plot.Plot, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	num := n.WireNum()
	if labels != nil && len(labels) != num {
		return nil, fmt.Errorf("%w: %d labels for %d wires", ErrLabelLength, len(labels), num)
	}
	edges := n.EdgeIndices()
	if edgeColors != nil && len(edgeColors) != len(edges) {
		return nil, fmt.Errorf("%w: %d colors for %d junctions",
			ErrEdgeColorLength, len(edgeColors), len(edges))
	}

	positions := nodePositions(n)

	p := plot.New()
	p.HideAxes()

	var lo, hi float64
	pal := Options{}.palette()
	if edgeColors != nil {
		lo, hi = valueRange(edgeColors)
	}

	for e, pair := range edges {
		pl, err := plotter.NewLine(plotter.XYs{positions[pair.I], positions[pair.J]})
		if err != nil {
			return nil, fmt.Errorf("draw: edge (%d,%d): %w", pair.I, pair.J, err)
		}
		if edgeColors != nil {
			pl.Color = colorFor(pal, edgeColors[e], lo, hi)
		} else {
			pl.Color = edgeColor
		}
		p.Add(pl)
	}

	nodes, err := plotter.NewScatter(plotter.XYs(positions))
	if err != nil {
		return nil, fmt.Errorf("draw: nodes: %w", err)
	}
	nodes.GlyphStyle.Shape = vgdraw.CircleGlyph{}
	nodes.GlyphStyle.Radius = vg.Points(3)
	nodes.GlyphStyle.Color = nodeColor
	p.Add(nodes)

	xyl := plotter.XYLabels{XYs: make(plotter.XYs, num), Labels: make([]string, num)}
	for i := 0; i < num; i++ {
		xyl.XYs[i] = positions[i]
		if labels != nil {
			xyl.Labels[i] = labels[i]
		} else {
			xyl.Labels[i] = strconv.Itoa(i)
		}
	}
	nodeLabels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("draw: labels: %w", err)
	}
	p.Add(nodeLabels)

	return p, nil
}

// nodePositions places one point per wire according to the representation.
func nodePositions(n *nwn.Network) []plotter.XY {
	num := n.WireNum()
	positions := make([]plotter.XY, num)
	if n.Rep == nwn.MNR {
		for i := 0; i < num; i++ {
			angle := 2 * math.Pi * float64(i) / float64(num)
			positions[i] = plotter.XY{X: math.Cos(angle), Y: math.Sin(angle)}
		}
		return positions
	}
	for i, w := range n.Wires() {
		positions[i] = plotter.XY{X: w.Midpoint.X, Y: w.Midpoint.Y}
	}

	return positions
}
