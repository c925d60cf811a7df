package circuit

import (
	"fmt"
	"math"

	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/nwn"
)

// checkSolution validates that sol matches the network's wire count.
func checkSolution(n *nwn.Network, sol *Solution) error {
	if n == nil {
		return ErrNilNetwork
	}
	if sol == nil || len(sol.Voltages) != n.WireNum() {
		return fmt.Errorf("%w: %d voltages for %d wires",
			ErrDimensionMismatch, len(sol.Voltages), n.WireNum())
	}

	return nil
}

// EdgeCurrent returns the current through the junction keyed by pair,
// flowing from pair.I to pair.J: (V_I − V_J)/r.
//
// For a zero-resistance junction Ohm's law alone cannot resolve the current;
// this is reported as ErrUndefinedCurrent rather than a non-finite value.
// Callers needing ideal shorts should model them with a small finite
// resistance instead.
func EdgeCurrent(n *nwn.Network, sol *Solution, pair geom.Pair) (float64, error) {
	if err := checkSolution(n, sol); err != nil {
		return 0, err
	}
	junc, ok := n.Junction(pair)
	if !ok {
		return 0, fmt.Errorf("circuit: pair (%d,%d): %w", pair.I, pair.J, nwn.ErrJunctionNotFound)
	}
	if junc.Resistance == 0 {
		return 0, fmt.Errorf("%w: pair (%d,%d)", ErrUndefinedCurrent, pair.I, pair.J)
	}

	return (sol.Voltages[pair.I] - sol.Voltages[pair.J]) / junc.Resistance, nil
}

// EdgeCurrents returns the current through every junction, keyed by the
// canonical pair and signed from I to J. Zero-resistance junctions report
// NaN so a single pathological edge does not abort batch extraction.
// Complexity: O(E log E) through the sorted edge index.
func EdgeCurrents(n *nwn.Network, sol *Solution) (map[geom.Pair]float64, error) {
	if err := checkSolution(n, sol); err != nil {
		return nil, err
	}

	out := make(map[geom.Pair]float64, n.JunctionNum())
	for _, pair := range n.EdgeIndices() {
		junc, _ := n.Junction(pair)
		if junc.Resistance == 0 {
			out[pair] = math.NaN()
			continue
		}
		out[pair] = (sol.Voltages[pair.I] - sol.Voltages[pair.J]) / junc.Resistance
	}

	return out, nil
}

// DrainCurrent returns the net current arriving at the drain wire: the sum
// of junction currents flowing into it. For a well-posed solve this matches
// the source current up to the leakage loss.
func DrainCurrent(n *nwn.Network, sol *Solution, drain int) (float64, error) {
	if err := checkSolution(n, sol); err != nil {
		return 0, err
	}
	neighbors, err := n.Neighbors(drain)
	if err != nil {
		return 0, fmt.Errorf("circuit: drain: %w", err)
	}

	total := 0.0
	for _, j := range neighbors {
		junc, _ := n.Junction(geom.NewPair(drain, j))
		if junc.Resistance == 0 {
			continue
		}
		total += (sol.Voltages[j] - sol.Voltages[drain]) / junc.Resistance
	}

	return total, nil
}

// NodalCurrent returns the total current passing through wire i: half the
// sum of absolute junction currents at the wire, since every current enters
// and leaves through its junctions.
func NodalCurrent(n *nwn.Network, sol *Solution, i int) (float64, error) {
	if err := checkSolution(n, sol); err != nil {
		return 0, err
	}
	neighbors, err := n.Neighbors(i)
	if err != nil {
		return 0, fmt.Errorf("circuit: wire: %w", err)
	}

	total := 0.0
	for _, j := range neighbors {
		junc, _ := n.Junction(geom.NewPair(i, j))
		if junc.Resistance == 0 {
			continue
		}
		total += math.Abs((sol.Voltages[i] - sol.Voltages[j]) / junc.Resistance)
	}

	return total / 2, nil
}

// SectionCurrents returns the current along each sub-segment of wire i
// between consecutive junctions, ordered by position along the wire. The
// current in a section is the magnitude of the accumulated inflow at all
// junctions before it, which is what flows onward through that span of the
// physical wire.
//
// A wire with fewer than two junctions has no interior sections and yields
// an empty slice. Electrode wires are contacts, not flow paths, and report
// ErrElectrodeWire; zero-resistance junctions on the wire report
// ErrUndefinedCurrent.
// Complexity: O(d log d) in the wire's degree.
func SectionCurrents(n *nwn.Network, sol *Solution, i int) ([]float64, error) {
	if err := checkSolution(n, sol); err != nil {
		return nil, err
	}
	if n.IsElectrode(i) {
		return nil, fmt.Errorf("%w: wire %d", ErrElectrodeWire, i)
	}
	sections, err := n.LineSections(i)
	if err != nil {
		return nil, fmt.Errorf("circuit: wire: %w", err)
	}
	if len(sections) < 2 {
		return []float64{}, nil
	}

	out := make([]float64, 0, len(sections)-1)
	inflow := 0.0
	for _, s := range sections[:len(sections)-1] {
		junc, _ := n.Junction(s.Pair)
		if junc.Resistance == 0 {
			return nil, fmt.Errorf("%w: pair (%d,%d)", ErrUndefinedCurrent, s.Pair.I, s.Pair.J)
		}
		inflow += (sol.Voltages[s.Other] - sol.Voltages[i]) / junc.Resistance
		out = append(out, math.Abs(inflow))
	}

	return out, nil
}
