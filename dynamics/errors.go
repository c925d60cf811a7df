package dynamics

import "errors"

// Sentinel errors for evolution configuration.
var (
	// ErrNilNetwork indicates a nil network was supplied.
	ErrNilNetwork = errors.New("dynamics: network is nil")
	// ErrNilResistFunc indicates evolution was requested without a
	// resistance model.
	ErrNilResistFunc = errors.New("dynamics: resist function is nil")
	// ErrNonPositiveSteps indicates a step count below one.
	ErrNonPositiveSteps = errors.New("dynamics: steps must be positive")
	// ErrNonPositiveTimeStep indicates a non-positive integration step.
	ErrNonPositiveTimeStep = errors.New("dynamics: time step must be positive")
	// ErrZeroVoltage indicates evolution under zero bias, which leaves the
	// normalized state target undefined.
	ErrZeroVoltage = errors.New("dynamics: applied voltage must be non-zero")
	// ErrStateRange indicates a state variable outside [0, 1].
	ErrStateRange = errors.New("dynamics: state variable outside [0, 1]")
)
