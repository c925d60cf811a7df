package nwn

import "errors"

// Sentinel errors for network construction and mutation.
var (
	// ErrNonPositiveLength indicates a wire length ≤ 0.
	ErrNonPositiveLength = errors.New("nwn: wire length must be positive")
	// ErrNonPositiveWidth indicates a bounding width ≤ 0.
	ErrNonPositiveWidth = errors.New("nwn: width must be positive")
	// ErrNonPositiveDensity indicates a requested density ≤ 0.
	ErrNonPositiveDensity = errors.New("nwn: density must be positive")
	// ErrNegativeResistance indicates a junction resistance < 0.
	ErrNegativeResistance = errors.New("nwn: junction resistance must be non-negative")
	// ErrLengthMismatch indicates AddWires received segment and electrode
	// lists of different lengths.
	ErrLengthMismatch = errors.New("nwn: segments and electrode flags differ in length")
	// ErrWireIndex indicates a wire index outside [0, WireNum).
	ErrWireIndex = errors.New("nwn: wire index out of range")
	// ErrJunctionNotFound indicates no junction exists for the given pair.
	ErrJunctionNotFound = errors.New("nwn: junction not found")
)
