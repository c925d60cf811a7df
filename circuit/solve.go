package circuit

import (
	"fmt"

	"github.com/nanonetlab/randomnwn/nwn"
	"github.com/nanonetlab/randomnwn/spmat"
	"github.com/nanonetlab/randomnwn/units"
)

// Solution is the result of one solve: a voltage per wire index plus the
// net current drawn at the source electrode.
type Solution struct {
	// Voltages holds one node voltage per wire, index-aligned with wire IDs.
	Voltages []float64
	// SourceCurrent is the injected current at the source electrode.
	SourceCurrent float64
}

// Solve computes node voltages for the network with the source wire held at
// the applied voltage and the drain wire grounded.
//
// The augmented (n+1)×(n+1) system described in the package documentation is
// assembled from the network's current junction resistances, compressed,
// factored and solved directly. Validation failures surface before any
// allocation; a degenerate topology surfaces as ErrSingularSystem with the
// underlying step preserved in the error chain. No retry or repair is
// attempted.
// Complexity: assembly O(V+E) plus the sparse factorization.
func Solve(n *nwn.Network, source, drain int, voltage float64) (*Solution, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	num := n.WireNum()
	if source < 0 || source >= num {
		return nil, fmt.Errorf("%w: source %d of %d", ErrWireIndex, source, num)
	}
	if drain < 0 || drain >= num {
		return nil, fmt.Errorf("%w: drain %d of %d", ErrWireIndex, drain, num)
	}
	if source == drain {
		return nil, fmt.Errorf("%w: index %d", ErrSameSourceDrain, source)
	}

	// Leading block G, then the border: B in the last column, C = −Bᵀ in
	// the last row, zero corner.
	coo := spmat.NewCOO(num + 1)
	appendConductance(coo, n, drain)
	coo.Append(source, num, -1)
	coo.Append(num, source, 1)

	rhs := make([]float64, num+1)
	rhs[num] = voltage

	csr, err := coo.Compress()
	if err != nil {
		return nil, fmt.Errorf("circuit: assembling conductance system: %w", err)
	}
	lu, err := csr.Factor()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}
	x, err := lu.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}

	return &Solution{Voltages: x[:num], SourceCurrent: x[num]}, nil
}

// ScaleSolution rescales a solution by the characteristic units: voltages by
// the voltage unit, the source current by the current unit. The input
// solution is not mutated.
func ScaleSolution(sol *Solution, u units.Units) *Solution {
	return &Solution{
		Voltages:      units.Scale(sol.Voltages, u.Voltage),
		SourceCurrent: sol.SourceCurrent * u.Current,
	}
}
