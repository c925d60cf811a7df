package nwn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/units"
)

// New generates a random nanowire network.
//
// The wire count is round(Width²·Density), the closest integer count to the
// requested density, and the achieved density WireNum/Width² is stored back.
// A single seeded generator drives all line generation, so the whole network
// is reproducible from one seed. All pairwise intersections become junctions
// at the uniform default resistance.
//
// Returns a validation error before any allocation when a geometric
// parameter is out of range.
// Complexity: O(n²) in the wire count for the intersection pass.
func New(opts Options) (*Network, error) {
	if opts.WireLength <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveLength, opts.WireLength)
	}
	if opts.Width <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveWidth, opts.Width)
	}
	if opts.Density <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveDensity, opts.Density)
	}
	if opts.Resistance < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeResistance, opts.Resistance)
	}

	// An ideal-contact (zero) default resistance is legal for junctions but
	// cannot serve as the characteristic resistance unit.
	r0 := opts.Resistance
	if r0 == 0 {
		r0 = units.DefaultResistance
	}

	size := opts.Width * opts.Width
	wireNum := int(math.Round(size * opts.Density))

	n := &Network{
		WireLength:         opts.WireLength,
		Width:              opts.Width,
		Size:               size,
		WireDensity:        float64(wireNum) / size,
		JunctionResistance: opts.Resistance,
		Units:              units.New(opts.WireLength, r0, units.DefaultVoltage),
		Rep:                JDA,
		wires:              make([]Wire, 0, wireNum),
		junctions:          make(map[geom.Pair]Junction),
		adjacency:          make([][]int, 0, wireNum),
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}

	lines := make([]geom.Line, wireNum)
	for i := range lines {
		lines[i] = geom.NewRandomLine(opts.WireLength, 0, opts.Width, 0, opts.Width, rng)
		n.wires = append(n.wires, newWire(lines[i], false))
		n.adjacency = append(n.adjacency, nil)
	}

	var sweep []geom.Option
	if opts.Workers > 1 {
		sweep = append(sweep, geom.WithWorkers(opts.Workers))
	}
	for pair, point := range geom.Intersections(lines, sweep...) {
		n.putJunction(pair, point, opts.Resistance)
	}
	n.JunctionDensity = float64(len(n.junctions)) / size

	return n, nil
}

// AddWires appends a batch of wires, marking each as electrode per the flags
// in the same order. Indices continue from the current wire count. Each new
// wire is intersected against all existing wires, including earlier members
// of the same batch, and the resulting junctions take the network's default
// resistance. Electrode indices are appended to the electrode list in
// insertion order.
//
// The batch is atomic: a length mismatch fails with ErrLengthMismatch before
// any mutation.
// Complexity: O(k·(n+k)) pair tests for k new wires.
func (n *Network) AddWires(lines []geom.Line, electrodes []bool) error {
	if len(lines) != len(electrodes) {
		return fmt.Errorf("%w: %d segments, %d flags",
			ErrLengthMismatch, len(lines), len(electrodes))
	}

	start := len(n.wires)
	all := n.Lines()
	for k, l := range lines {
		ind := start + k
		all = append(all, l)
		n.wires = append(n.wires, newWire(l, electrodes[k]))
		n.adjacency = append(n.adjacency, nil)
		if electrodes[k] {
			n.electrodes = append(n.electrodes, ind)
		}

		for pair, point := range geom.LineIntersections(ind, all) {
			n.putJunction(pair, point, n.JunctionResistance)
		}
	}

	n.JunctionDensity = float64(len(n.junctions)) / n.Size
	// Electrodes are contacts, not random fill; they are excluded from the
	// wire density figure.
	n.WireDensity = float64(len(n.wires)-len(n.electrodes)) / n.Size

	return nil
}

// AddElectrodes appends the given segments as electrode wires.
// Equivalent to AddWires with every flag set.
func (n *Network) AddElectrodes(lines []geom.Line) error {
	flags := make([]bool, len(lines))
	for i := range flags {
		flags[i] = true
	}

	return n.AddWires(lines, flags)
}

// putJunction inserts or refreshes the junction for a canonical pair.
// Adjacency is extended only on first insertion, preserving the no-multi-edge
// invariant.
func (n *Network) putJunction(pair geom.Pair, point r2.Vec, resistance float64) {
	if _, exists := n.junctions[pair]; !exists {
		n.adjacency[pair.I] = append(n.adjacency[pair.I], pair.J)
		n.adjacency[pair.J] = append(n.adjacency[pair.J], pair.I)
	}
	n.junctions[pair] = Junction{Resistance: resistance, Point: point}
}

// SetResistance updates the resistance of an existing junction. This is the
// mutation hook used by conductance dynamics between solve calls.
func (n *Network) SetResistance(pair geom.Pair, resistance float64) error {
	if resistance < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeResistance, resistance)
	}
	j, ok := n.junctions[pair]
	if !ok {
		return fmt.Errorf("%w: pair (%d,%d)", ErrJunctionNotFound, pair.I, pair.J)
	}
	j.Resistance = resistance
	n.junctions[pair] = j

	return nil
}

// WireNum returns the number of wire nodes in the network.
func (n *Network) WireNum() int {
	return len(n.wires)
}

// Wire returns the wire at index i.
func (n *Network) Wire(i int) (Wire, error) {
	if i < 0 || i >= len(n.wires) {
		return Wire{}, fmt.Errorf("%w: %d of %d", ErrWireIndex, i, len(n.wires))
	}

	return n.wires[i], nil
}

// Wires returns a copy of the wire list, index-aligned with wire IDs.
func (n *Network) Wires() []Wire {
	out := make([]Wire, len(n.wires))
	copy(out, n.wires)

	return out
}

// Lines returns a copy of all wire segments, index-aligned with wire IDs.
func (n *Network) Lines() []geom.Line {
	out := make([]geom.Line, 0, len(n.wires))
	for _, w := range n.wires {
		out = append(out, w.Line)
	}

	return out
}

// Junction returns the junction for the canonical pair, if present.
func (n *Network) Junction(pair geom.Pair) (Junction, bool) {
	j, ok := n.junctions[pair]

	return j, ok
}

// JunctionNum returns the number of junctions in the network.
func (n *Network) JunctionNum() int {
	return len(n.junctions)
}

// ElectrodeList returns the electrode wire indices in insertion order.
func (n *Network) ElectrodeList() []int {
	out := make([]int, len(n.electrodes))
	copy(out, n.electrodes)

	return out
}

// ElectrodeNum returns the number of electrode wires.
func (n *Network) ElectrodeNum() int {
	return len(n.electrodes)
}

// IsElectrode reports whether wire i is an electrode. Out-of-range indices
// report false.
func (n *Network) IsElectrode(i int) bool {
	return i >= 0 && i < len(n.wires) && n.wires[i].Electrode
}
