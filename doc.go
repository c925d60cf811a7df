// Package randomnwn models random nanowire networks: stochastic wire
// deposition, junction detection, and direct circuit solving over the
// resulting graph.
//
// 🚀 What is randomnwn?
//
//	A composable toolkit split by concern:
//		• geom     — line segments, intersection predicates, the pairwise sweep
//		• nwn      — the network itself: wires, junctions, electrodes, queries
//		• spmat    — COO/CSR sparse matrices with an LU direct solver
//		• circuit  — conductance assembly, augmented solve, current extraction
//		• dynamics — state-driven junction evolution under bias
//		• units    — characteristic units and scaling helpers
//		• draw     — gonum/plot renderers for layouts, graphs and currents
//
// The model
//
// Wires are nodes; each crossing of two wires is a junction edge carrying a
// resistance. Applying a voltage between a source and a drain electrode
// turns the network into a Kirchhoff system: a sparse conductance matrix,
// augmented with one row and column to inject the source current, solved
// directly. A tiny leakage conductance from every node to ground keeps the
// system non-singular even for disconnected wires.
//
// Quick ASCII example:
//
//	    │       │
//	────┼───────┼────
//	    │   ╲   │
//	    │    ╲  │
//
//	two electrode bars bridged by crossing wires; every ┼ is a junction.
//
// Quick start:
//
//	opts := nwn.DefaultOptions()
//	opts.Seed = 42
//	net, _ := nwn.New(opts)
//	// attach electrodes, then:
//	sol, _ := circuit.Solve(net, source, drain, 1.0)
//
// Dive into examples/ for complete scenarios: percolation analysis, the
// two-junction voltage divider, memristive junction formation, rendering.
package randomnwn
