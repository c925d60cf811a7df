// Package dynamics evolves junction resistances over time under an applied
// bias, re-solving the network after every update.
//
// Each junction carries a dimensionless state variable w ∈ [0, 1]. A step
// first maps every state to a resistance through a pluggable ResistFunc and
// writes it back into the network, then performs a fresh direct solve, then
// relaxes each state toward the normalized voltage drop across its junction.
// Because the solver reassembles the conductance system from the network's
// current resistances on every call, no cache invalidation is needed between
// steps.
//
// The Evolver owns the state map; the network is mutated only through
// SetResistance, so a caller can inspect or redraw it between steps.
package dynamics
