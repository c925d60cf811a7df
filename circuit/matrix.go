package circuit

import (
	"fmt"

	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/nwn"
	"github.com/nanonetlab/randomnwn/spmat"
)

// LeakageConductance is the fixed conductance from every non-drain node to
// ground: a 100 MΩ resistor that guarantees a non-singular matrix even for
// wires with no junctions. It is part of the documented model, not an error
// recovery mechanism.
const LeakageConductance = 1e-8

// ConductanceMatrix assembles the n×n Kirchhoff conductance system for the
// network with the given drain wire.
//
// For i ≠ drain the diagonal holds the sum of 1/r over wire i's junctions
// with non-zero resistance, plus the leakage conductance; the drain diagonal
// is forced to 1 so the augmented system can pin the drain voltage instead
// of writing KCL there. Off-diagonal (i, j) entries on non-drain rows hold
// −1/r for the junction between i and j. Zero-resistance junctions carry no
// finite conductance stamp and are skipped on both diagonal and off-diagonal;
// see EdgeCurrent for how their currents are reported.
// Complexity: O(V + E).
func ConductanceMatrix(n *nwn.Network, drain int) (*spmat.COO, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if drain < 0 || drain >= n.WireNum() {
		return nil, fmt.Errorf("%w: drain %d of %d", ErrWireIndex, drain, n.WireNum())
	}

	coo := spmat.NewCOO(n.WireNum())
	appendConductance(coo, n, drain)

	return coo, nil
}

// appendConductance stamps G's entries into an accumulator that may be
// larger than n×n (the augmented system reuses this for its leading block).
func appendConductance(coo *spmat.COO, n *nwn.Network, drain int) {
	for i := 0; i < n.WireNum(); i++ {
		if i == drain {
			coo.Append(i, i, 1.0)
			continue
		}

		neighbors, _ := n.Neighbors(i) // i is in range by construction
		diag := LeakageConductance
		for _, j := range neighbors {
			junc, _ := n.Junction(geom.NewPair(i, j))
			if junc.Resistance == 0 {
				continue
			}
			g := 1 / junc.Resistance
			diag += g
			coo.Append(i, j, -g)
		}
		coo.Append(i, i, diag)
	}
}
