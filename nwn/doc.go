// Package nwn models a random nanowire network as an undirected graph of
// typed records: each node is a Wire carrying its line segment, cached
// midpoint and electrode flag, and each edge is a Junction carrying a
// resistance and the intersection point of the two wires.
//
// Wires are identified by contiguous integer indices, stable once assigned
// and never deleted; junctions are keyed by the canonical unordered index
// pair, so at most one junction exists per wire pair. Wires are never
// mutated in place — a network grows only through New, AddWires and
// AddElectrodes, and every batch is atomic: validation happens before any
// mutation, so the network invariants never observe a partial state.
//
// Invariants maintained by the container:
//
//   - WireNum() always equals the number of wire nodes.
//   - ElectrodeList() is exactly the set of electrode-flagged indices, in
//     insertion order.
//   - Junction keys are canonical (i < j, i ≠ j); no multi-edges.
//   - JunctionDensity is recomputed whenever junctions are added.
//
// Concurrency: a Network is single-writer. Mutation is not synchronized;
// the owning caller serializes AddWires/AddElectrodes/SetResistance against
// any concurrent reads.
package nwn
