package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
	"github.com/adrianlerer/legal-evolvability-golden-ratio/evolution"
)

// TestScenario_StringAndParse round-trips the closed enumeration through
// its external names and checks unknown names are rejected with attribution.
func TestScenario_StringAndParse(t *testing.T) {
	for _, s := range []evolution.Scenario{
		evolution.Baseline, evolution.Reform, evolution.LockIn, evolution.Crisis,
	} {
		parsed, err := evolution.ParseScenario(s.String())
		require.NoError(t, err, s.String())
		assert.Equal(t, s, parsed)
	}

	assert.Equal(t, "baseline", evolution.Baseline.String())
	assert.Equal(t, "reform", evolution.Reform.String())
	assert.Equal(t, "lock-in", evolution.LockIn.String())
	assert.Equal(t, "crisis", evolution.Crisis.String())
	assert.Equal(t, "unknown", evolution.Scenario(99).String())

	_, err := evolution.ParseScenario("collapse")
	require.ErrorIs(t, err, evolution.ErrUnknownScenario)
	require.ErrorIs(t, err, evolution.ErrBadConfig)

	var cerr *evolution.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Scenario", cerr.Field)
}

// scenarioTarget runs a minimal noiseless simulation and returns the
// scenario-adjusted attractor recorded on the trajectory.
func scenarioTarget(t *testing.T, initial core.State, s evolution.Scenario) core.State {
	t.Helper()
	opts := noiseless()
	opts.Years = 1
	opts.Resolution = 2
	opts.Scenario = s

	tr, err := evolution.Simulate(initial, &opts)
	require.NoError(t, err)
	return tr.Target.State
}

// TestScenario_TargetAdjustments pins each profile's effect on the
// equilibrium attractor. For H₀ = V₀ = α₀ = 0.5 the unadjusted target is
// V* = 1/(φ+1), H* = φ·V*, α* = 0.75.
func TestScenario_TargetAdjustments(t *testing.T) {
	const (
		vStar     = 0.3819660112501051
		hStar     = 0.6180339887498949
		alphaStar = 0.75
	)

	base := scenarioTarget(t, balanced, evolution.Baseline)
	assert.InDelta(t, hStar, base.H, 1e-12)
	assert.InDelta(t, vStar, base.V, 1e-12)
	assert.InDelta(t, alphaStar, base.Alpha, 1e-12)

	// Lock-in suppresses the variation target by 20%; H* is untouched.
	lock := scenarioTarget(t, balanced, evolution.LockIn)
	assert.InDelta(t, 0.8*vStar, lock.V, 1e-12)
	assert.InDelta(t, hStar, lock.H, 1e-12)

	// Crisis cuts the selection target to 60%.
	crisis := scenarioTarget(t, balanced, evolution.Crisis)
	assert.InDelta(t, 0.6*alphaStar, crisis.Alpha, 1e-12)

	// Reform floors a weak selection target at 0.40: α₀ = 0.1 would give
	// α* = 0.15 unadjusted.
	weak := core.State{H: 0.5, V: 0.5, Alpha: 0.1}
	reform := scenarioTarget(t, weak, evolution.Reform)
	assert.InDelta(t, 0.40, reform.Alpha, 1e-12)

	// The same weak system under baseline keeps the unfloored target.
	assert.InDelta(t, 0.15, scenarioTarget(t, weak, evolution.Baseline).Alpha, 1e-12)
}

// TestScenario_CrisisAmplifiesNoise checks that the tripled noise profile
// actually changes the path relative to baseline under the same seed.
func TestScenario_CrisisAmplifiesNoise(t *testing.T) {
	opts := evolution.DefaultOptions()
	opts.Years = 50
	opts.Resolution = 51
	opts.Seed = 3

	base, err := evolution.Simulate(balanced, &opts)
	require.NoError(t, err)

	opts.Scenario = evolution.Crisis
	crisis, err := evolution.Simulate(balanced, &opts)
	require.NoError(t, err)

	assert.NotEqual(t, base.Samples, crisis.Samples)
}

// TestScenario_ReformAcceleratesVariation checks that reform's stronger V
// pull closes the gap to the variation target faster than baseline.
func TestScenario_ReformAcceleratesVariation(t *testing.T) {
	start := core.State{H: 0.8, V: 0.2, Alpha: 0.5}

	opts := noiseless()
	opts.Years = 10
	opts.Resolution = 11

	base, err := evolution.Simulate(start, &opts)
	require.NoError(t, err)

	opts.Scenario = evolution.Reform
	reform, err := evolution.Simulate(start, &opts)
	require.NoError(t, err)

	// Both drift from V₀ = 0.2 up toward the same V* ≈ 0.382; the reform
	// run must have covered strictly more of that distance.
	assert.Greater(t, reform.Final().V, base.Final().V)
}
