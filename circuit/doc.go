// Package circuit solves a nanowire network as a resistor network: node
// voltages and branch currents for an applied voltage between a source and
// a drain electrode.
//
// The conductance matrix G enforces Kirchhoff's current law at every wire
// node. Each non-drain diagonal sums the junction conductances touching the
// wire plus a fixed leakage conductance of 1e-8 — a very large ground
// resistor on every node that keeps the matrix non-singular even for a wire
// with no junctions. The drain row is instead used to pin the drain voltage
// to zero. G is then augmented into the (n+1)×(n+1) block system
//
//	[ G  B ] [ V ]   [ 0 ]
//	[ C  0 ] [ I ] = [ v ]
//
// where B carries a single −1 at the source row (current injection), C is
// its negated transpose, and the extra unknown I is the injected source
// current. This formulation enforces "voltage at the source wire equals the
// applied voltage" directly, at the cost of one extra unknown, instead of a
// separate row-elimination step.
//
// By construction the solved drain voltage is exactly 0 and the solved
// source voltage exactly the applied voltage; both identities are checked
// in the package tests as correctness requirements.
//
// Every solve reassembles the system from the network's current junction
// resistances. Nothing is cached across calls, because conductance dynamics
// mutate resistances between solves.
package circuit
