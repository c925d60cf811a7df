package dynamics

import (
	"fmt"
	"math"

	"github.com/nanonetlab/randomnwn/circuit"
	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/nwn"
)

// Default evolution parameters.
const (
	// DefaultOnResistance is the fully-formed junction resistance in Ω.
	DefaultOnResistance = 10.0
	// DefaultOffResistance is the pristine junction resistance in Ω.
	DefaultOffResistance = 160.0
	// DefaultSteps is the number of evolution steps.
	DefaultSteps = 50
	// DefaultTimeStep is the integration step in characteristic time units.
	DefaultTimeStep = 1e-3
	// DefaultRate is the state relaxation rate constant.
	DefaultRate = 1.0
)

// ResistFunc maps a junction's current resistance and state variable to its
// next resistance. Implementations must return a non-negative value.
type ResistFunc func(resistance, state float64) float64

// DecayResist returns the power-law junction model interpolating between the
// off and on resistances: r = ron · (roff/ron)^(1−w). A pristine junction
// (w = 0) sits at roff; a fully-formed one (w = 1) at ron.
func DecayResist(ron, roff float64) ResistFunc {
	ratio := roff / ron
	return func(_, state float64) float64 {
		return ron * math.Pow(ratio, 1-state)
	}
}

// Options configures one evolution run. Zero-valued numeric fields fall back
// to the package defaults; Source and Drain always come from the caller.
type Options struct {
	// Source and Drain are the biased electrode wire indices.
	Source, Drain int
	// Voltage is the applied bias per step.
	Voltage float64
	// Steps is the number of update-solve cycles.
	Steps int
	// TimeStep is the integration step for the state update.
	TimeStep float64
	// Rate scales how fast states chase the normalized voltage drop.
	Rate float64
	// Resist maps states to resistances each step.
	Resist ResistFunc
}

// DefaultOptions returns the canonical evolution parameters with the
// power-law resistance model.
func DefaultOptions() Options {
	return Options{
		Voltage:  1,
		Steps:    DefaultSteps,
		TimeStep: DefaultTimeStep,
		Rate:     DefaultRate,
		Resist:   DecayResist(DefaultOnResistance, DefaultOffResistance),
	}
}

// Evolver drives the state variables of one network. It is single-writer,
// like the network it wraps.
type Evolver struct {
	net    *nwn.Network
	states map[geom.Pair]float64
}

// NewEvolver wraps a network with all junction states at zero (pristine).
func NewEvolver(n *nwn.Network) (*Evolver, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	states := make(map[geom.Pair]float64, n.JunctionNum())
	for _, pair := range n.EdgeIndices() {
		states[pair] = 0
	}

	return &Evolver{net: n, states: states}, nil
}

// SetStateVariables sets every junction state to w.
func (e *Evolver) SetStateVariables(w float64) error {
	if w < 0 || w > 1 {
		return fmt.Errorf("%w: %v", ErrStateRange, w)
	}
	for pair := range e.states {
		e.states[pair] = w
	}

	return nil
}

// SetState sets the state of a single junction.
func (e *Evolver) SetState(pair geom.Pair, w float64) error {
	if w < 0 || w > 1 {
		return fmt.Errorf("%w: %v", ErrStateRange, w)
	}
	if _, ok := e.states[pair]; !ok {
		return fmt.Errorf("dynamics: pair (%d,%d): %w", pair.I, pair.J, nwn.ErrJunctionNotFound)
	}
	e.states[pair] = w

	return nil
}

// State returns the state of a single junction.
func (e *Evolver) State(pair geom.Pair) (float64, bool) {
	w, ok := e.states[pair]
	return w, ok
}

// States returns a copy of the state map.
func (e *Evolver) States() map[geom.Pair]float64 {
	out := make(map[geom.Pair]float64, len(e.states))
	for pair, w := range e.states {
		out[pair] = w
	}

	return out
}

// Evolve runs opts.Steps update-solve cycles and returns the solution of
// each step in order.
//
// Per step: every junction resistance is rewritten as Resist(r, w), the
// biased network is solved, and each state relaxes toward the voltage drop
// across its junction normalized by the applied bias:
//
//	w += dt · rate · (|ΔV|/voltage − w), clamped to [0, 1].
//
// Junctions added to the network after the evolver was created join with
// state zero on the step that first sees them.
func (e *Evolver) Evolve(opts Options) ([]circuit.Solution, error) {
	if opts.Steps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveSteps, opts.Steps)
	}
	if opts.TimeStep <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveTimeStep, opts.TimeStep)
	}
	if opts.Resist == nil {
		return nil, ErrNilResistFunc
	}
	if opts.Voltage == 0 {
		return nil, ErrZeroVoltage
	}

	sols := make([]circuit.Solution, 0, opts.Steps)
	for step := 0; step < opts.Steps; step++ {
		for _, pair := range e.net.EdgeIndices() {
			junc, _ := e.net.Junction(pair)
			w, ok := e.states[pair]
			if !ok {
				e.states[pair] = 0
			}
			if err := e.net.SetResistance(pair, opts.Resist(junc.Resistance, w)); err != nil {
				return nil, fmt.Errorf("dynamics: step %d: %w", step, err)
			}
		}

		sol, err := circuit.Solve(e.net, opts.Source, opts.Drain, opts.Voltage)
		if err != nil {
			return nil, fmt.Errorf("dynamics: step %d: %w", step, err)
		}
		sols = append(sols, *sol)

		for pair, w := range e.states {
			drop := math.Abs(sol.Voltages[pair.I] - sol.Voltages[pair.J])
			target := drop / math.Abs(opts.Voltage)
			e.states[pair] = clamp01(w + opts.TimeStep*opts.Rate*(target-w))
		}
	}

	return sols, nil
}

// EvolutionCurrents extracts the source-current series from an evolution.
func EvolutionCurrents(sols []circuit.Solution) []float64 {
	out := make([]float64, len(sols))
	for i, sol := range sols {
		out[i] = sol.SourceCurrent
	}

	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
