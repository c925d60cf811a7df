package nwn

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/units"
)

// Representation tags which topology the network index space describes.
// The solver always operates on the wire-as-node form; the tag exists so
// downstream consumers (drawing in particular) can branch explicitly
// instead of probing attributes at runtime.
type Representation int

const (
	// JDA is the junction-dominated form: one node per physical wire.
	// Networks are always created in this form.
	JDA Representation = iota
	// MNR is the multi-nodal form: an alternate topology used only for
	// drawing, never solved directly. No conversion constructor exists yet;
	// the tag is set by the caller and consumed by the drawing layout.
	// TODO: add a conversion building the multi-nodal topology itself.
	MNR
)

// String returns the conventional short name of the representation.
func (r Representation) String() string {
	switch r {
	case JDA:
		return "JDA"
	case MNR:
		return "MNR"
	default:
		return "unknown"
	}
}

// Wire is a graph node: one physical conductive segment.
// Wires are immutable once created; networks replace wires wholesale rather
// than mutating a line in place, which keeps the cached midpoint consistent.
type Wire struct {
	// Line is the wire's segment geometry.
	Line geom.Line
	// Midpoint caches Line.Midpoint().
	Midpoint r2.Vec
	// Electrode marks the wire as an external contact rather than part of
	// the random fill. Immutable after creation.
	Electrode bool
}

// newWire builds a Wire with its midpoint cached.
func newWire(l geom.Line, electrode bool) Wire {
	return Wire{Line: l, Midpoint: l.Midpoint(), Electrode: electrode}
}

// Junction is a graph edge: the physical crossing of two wires.
type Junction struct {
	// Resistance in ohms. Zero is a valid "ideal contact" value.
	Resistance float64
	// Point is the intersection point of the two wires, cached for
	// plotting and section ordering.
	Point r2.Vec
}

// Network is a random nanowire network: wires indexed contiguously from 0,
// junctions keyed by canonical index pair, plus the derived scalar metadata.
// The exported scalar fields are maintained by the mutation methods and
// should be treated as read-only by callers.
type Network struct {
	// WireLength is the generated wire length (μm).
	WireLength float64
	// Width is the bounding square side (μm).
	Width float64
	// Size is the bounding area Width² (μm²).
	Size float64
	// WireDensity is the achieved density of non-electrode wires (1/μm²).
	WireDensity float64
	// JunctionDensity is junction count / Size (1/μm²).
	JunctionDensity float64
	// JunctionResistance is the default resistance for new junctions (Ω).
	JunctionResistance float64
	// Units holds the characteristic unit-scaling constants.
	Units units.Units
	// Rep tags the topology representation (JDA by default).
	Rep Representation

	wires      []Wire
	junctions  map[geom.Pair]Junction
	adjacency  [][]int // wire index → neighbor wire indices
	electrodes []int   // electrode indices in insertion order
}
