package circuit

import "errors"

// Sentinel errors for solving and current extraction.
var (
	// ErrNilNetwork indicates a nil network was supplied.
	ErrNilNetwork = errors.New("circuit: network is nil")
	// ErrWireIndex indicates a source or drain index outside the network.
	ErrWireIndex = errors.New("circuit: wire index out of range")
	// ErrSameSourceDrain indicates source == drain.
	ErrSameSourceDrain = errors.New("circuit: source and drain must differ")
	// ErrSingularSystem indicates the augmented conductance system cannot
	// be solved; the network topology is degenerate.
	ErrSingularSystem = errors.New("circuit: singular conductance system")
	// ErrUndefinedCurrent indicates a current across a zero-resistance
	// junction, which Ohm's law alone cannot resolve.
	ErrUndefinedCurrent = errors.New("circuit: current undefined across zero-resistance junction")
	// ErrElectrodeWire indicates a section query on an electrode wire.
	ErrElectrodeWire = errors.New("circuit: section currents are defined for non-electrode wires")
	// ErrDimensionMismatch indicates a solution that does not match the
	// network's wire count.
	ErrDimensionMismatch = errors.New("circuit: solution does not match network size")
)
