package draw

import "errors"

// Sentinel errors for renderer inputs.
var (
	// ErrNilNetwork indicates a nil network was supplied.
	ErrNilNetwork = errors.New("draw: network is nil")
	// ErrColorLength indicates a per-wire color slice that does not match
	// the wire count.
	ErrColorLength = errors.New("draw: color values do not match wire count")
	// ErrLabelLength indicates a node label slice that does not match the
	// wire count.
	ErrLabelLength = errors.New("draw: labels do not match wire count")
	// ErrEdgeColorLength indicates an edge color slice that does not match
	// the junction count.
	ErrEdgeColorLength = errors.New("draw: edge colors do not match junction count")
	// ErrSectionLength indicates section currents that do not match the
	// network's wires or their junction counts.
	ErrSectionLength = errors.New("draw: section currents do not match network")
)
