package nwn

import "math/rand"

// Default creation parameters, matching the package's characteristic units.
const (
	// DefaultWireLength is the generated wire length in μm.
	DefaultWireLength = 7.0
	// DefaultWidth is the bounding square side in μm.
	DefaultWidth = 50.0
	// DefaultDensity is the requested wire density in wires/μm².
	DefaultDensity = 0.3
	// DefaultResistance is the uniform junction resistance in Ω.
	DefaultResistance = 10.0
)

// DefaultSeed is the fixed seed substituted when Options.Seed is zero.
// The value is arbitrary but stable, so default construction is reproducible
// across runs and platforms. No time-based source exists anywhere in the
// package; callers wanting varied networks pass their own seed or Rand.
const DefaultSeed int64 = 1

// Options configures New. Zero-valued geometric fields are invalid; start
// from DefaultOptions and override.
type Options struct {
	// WireLength is the length of every generated wire (μm, > 0).
	WireLength float64
	// Width is the bounding square side (μm, > 0).
	Width float64
	// Density is the requested wire density (wires/μm², > 0). The achieved
	// density is the closest value with an integer wire count.
	Density float64
	// Resistance is the uniform junction resistance (Ω, ≥ 0).
	Resistance float64
	// Seed seeds the single generator driving all line generation, making
	// the whole network reproducible. Seed == 0 selects DefaultSeed, so
	// every seed value, including zero, is deterministic.
	Seed int64
	// Rand, when non-nil, overrides Seed entirely: the caller owns the
	// random source and therefore reproducibility.
	Rand *rand.Rand
	// Workers shards the O(n²) intersection pass; ≤ 1 runs serially.
	Workers int
}

// DefaultOptions returns the canonical creation parameters:
// 7 μm wires in a 50 μm square at 0.3 wires/μm² with 10 Ω junctions,
// the fixed default seed, serial intersection pass.
func DefaultOptions() Options {
	return Options{
		WireLength: DefaultWireLength,
		Width:      DefaultWidth,
		Density:    DefaultDensity,
		Resistance: DefaultResistance,
	}
}
