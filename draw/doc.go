// Package draw renders nanowire networks with gonum/plot.
//
// Three views are provided: Network draws the wires in the plane with their
// junction points, Graph draws the connectivity diagram with nodes placed by
// the network's representation, and Sections overlays per-segment currents
// on the wire layout. All renderers are read-only over the network; the
// returned *plot.Plot is ready for plot.Save or further decoration by the
// caller.
package draw
