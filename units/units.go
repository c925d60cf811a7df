// Package units defines the characteristic units of a nanowire network and
// helpers to rescale solver output into physically meaningful values.
//
// The solver works in network-native units: lengths in units of the
// characteristic wire length, resistances in units of the junction
// resistance, voltages in units of the applied characteristic voltage. The
// derived current unit is Voltage/Resistance. Scaling is pure arithmetic
// with no control flow; it never feeds back into the solver.
package units

import "golang.org/x/exp/constraints"

// Default characteristic values. Lengths are in μm, resistances in Ω,
// voltages in V.
const (
	DefaultLength     = 7.0
	DefaultResistance = 10.0
	DefaultVoltage    = 1.0
)

// Units holds the characteristic values of a network.
type Units struct {
	// Length is the characteristic wire length l0 (μm).
	Length float64
	// Resistance is the characteristic junction resistance r0 (Ω).
	Resistance float64
	// Voltage is the characteristic applied voltage v0 (V).
	Voltage float64
	// Current is the derived characteristic current i0 = v0/r0 (A).
	Current float64
}

// New derives a Units set from the three independent characteristic values.
func New(length, resistance, voltage float64) Units {
	return Units{
		Length:     length,
		Resistance: resistance,
		Voltage:    voltage,
		Current:    voltage / resistance,
	}
}

// Default returns the package default characteristic units.
func Default() Units {
	return New(DefaultLength, DefaultResistance, DefaultVoltage)
}

// Scale multiplies every value by factor and returns a new slice.
// The input is never mutated.
func Scale[T constraints.Float](values []T, factor T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v * factor
	}

	return out
}
