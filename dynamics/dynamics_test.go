package dynamics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanonetlab/randomnwn/dynamics"
	"github.com/nanonetlab/randomnwn/geom"
	"github.com/nanonetlab/randomnwn/nwn"
)

// dividerNetwork builds the two-electrode, one-bridge series divider.
// Indices: 0 = source electrode, 1 = drain electrode, 2 = bridge.
func dividerNetwork(t *testing.T) *nwn.Network {
	t.Helper()
	opts := nwn.DefaultOptions()
	opts.Width = 10
	opts.Density = 1e-6
	opts.Seed = 1
	n, err := nwn.New(opts)
	require.NoError(t, err)

	require.NoError(t, n.AddElectrodes([]geom.Line{
		geom.NewLine(0, -1, 0, 1),
		geom.NewLine(2, -1, 2, 1),
	}))
	require.NoError(t, n.AddWires(
		[]geom.Line{geom.NewLine(-0.5, 0, 2.5, 0)},
		[]bool{false},
	))
	return n
}

func TestDecayResist(t *testing.T) {
	rf := dynamics.DecayResist(10, 160)

	cases := []struct {
		name  string
		state float64
		want  float64
	}{
		{"Pristine", 0, 160},
		{"FullyFormed", 1, 10},
		{"Midpoint", 0.5, 40}, // geometric mean of 10 and 160
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, rf(0, tc.state), 1e-9)
		})
	}
}

func TestNewEvolver(t *testing.T) {
	n := dividerNetwork(t)

	e, err := dynamics.NewEvolver(n)
	require.NoError(t, err)

	states := e.States()
	assert.Len(t, states, n.JunctionNum())
	for pair, w := range states {
		assert.Zero(t, w, "pair (%d,%d) starts pristine", pair.I, pair.J)
	}

	_, err = dynamics.NewEvolver(nil)
	assert.ErrorIs(t, err, dynamics.ErrNilNetwork)
}

func TestEvolver_SetState(t *testing.T) {
	n := dividerNetwork(t)
	e, err := dynamics.NewEvolver(n)
	require.NoError(t, err)

	require.NoError(t, e.SetStateVariables(0.7))
	for _, w := range e.States() {
		assert.Equal(t, 0.7, w)
	}

	pair := geom.Pair{I: 0, J: 2}
	require.NoError(t, e.SetState(pair, 0.2))
	w, ok := e.State(pair)
	require.True(t, ok)
	assert.Equal(t, 0.2, w)

	assert.ErrorIs(t, e.SetStateVariables(1.5), dynamics.ErrStateRange)
	assert.ErrorIs(t, e.SetState(pair, -0.1), dynamics.ErrStateRange)
	assert.ErrorIs(t, e.SetState(geom.Pair{I: 0, J: 1}, 0.5), nwn.ErrJunctionNotFound)
}

// TestEvolve_FrozenResistances: a resistance model that never changes
// anything must reproduce the same solution every step.
func TestEvolve_FrozenResistances(t *testing.T) {
	n := dividerNetwork(t)
	e, err := dynamics.NewEvolver(n)
	require.NoError(t, err)

	opts := dynamics.DefaultOptions()
	opts.Source, opts.Drain = 0, 1
	opts.Voltage = 5
	opts.Steps = 4
	opts.Resist = func(resistance, _ float64) float64 { return resistance }

	sols, err := e.Evolve(opts)
	require.NoError(t, err)
	require.Len(t, sols, 4)

	currents := dynamics.EvolutionCurrents(sols)
	for step := 1; step < len(currents); step++ {
		assert.Equal(t, currents[0], currents[step], "step %d", step)
		assert.Equal(t, sols[0].Voltages, sols[step].Voltages, "step %d", step)
	}
	assert.InDelta(t, 0.25, currents[0], 1e-6)
}

// TestEvolve_PowerLawFormation: under bias the divider's junctions form,
// resistance falls from roff toward ron and the current rises monotonically.
func TestEvolve_PowerLawFormation(t *testing.T) {
	n := dividerNetwork(t)
	e, err := dynamics.NewEvolver(n)
	require.NoError(t, err)

	opts := dynamics.DefaultOptions()
	opts.Source, opts.Drain = 0, 1
	opts.Voltage = 5
	opts.Steps = 20
	opts.TimeStep = 0.1

	sols, err := e.Evolve(opts)
	require.NoError(t, err)

	currents := dynamics.EvolutionCurrents(sols)
	assert.InDelta(t, 5.0/(2*dynamics.DefaultOffResistance), currents[0], 1e-4,
		"first step solves the pristine network")
	for step := 1; step < len(currents); step++ {
		assert.Greater(t, currents[step], currents[step-1],
			"junction formation lowers resistance every step")
	}

	// Symmetric divider: both junctions see half the bias, so both states
	// relax toward 0.5 together.
	for pair, w := range e.States() {
		assert.Greater(t, w, 0.0, "pair (%d,%d)", pair.I, pair.J)
		assert.LessOrEqual(t, w, 0.5, "pair (%d,%d)", pair.I, pair.J)
	}
}

func TestEvolve_Validation(t *testing.T) {
	n := dividerNetwork(t)
	e, err := dynamics.NewEvolver(n)
	require.NoError(t, err)

	base := dynamics.DefaultOptions()
	base.Source, base.Drain = 0, 1

	cases := []struct {
		name   string
		mutate func(*dynamics.Options)
		err    error
	}{
		{"ZeroSteps", func(o *dynamics.Options) { o.Steps = 0 }, dynamics.ErrNonPositiveSteps},
		{"NegativeTimeStep", func(o *dynamics.Options) { o.TimeStep = -1 }, dynamics.ErrNonPositiveTimeStep},
		{"NilResist", func(o *dynamics.Options) { o.Resist = nil }, dynamics.ErrNilResistFunc},
		{"ZeroVoltage", func(o *dynamics.Options) { o.Voltage = 0 }, dynamics.ErrZeroVoltage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := base
			tc.mutate(&opts)
			_, err := e.Evolve(opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEvolutionCurrents_Empty(t *testing.T) {
	assert.Empty(t, dynamics.EvolutionCurrents(nil))
}
