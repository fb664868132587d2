package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhi_Value verifies φ against its defining identity φ² = φ + 1.
func TestPhi_Value(t *testing.T) {
	assert.InDelta(t, 1.6180339887, core.Phi, 1e-9, "φ must match (1+√5)/2")
	assert.InDelta(t, core.Phi+1, core.Phi*core.Phi, 1e-12, "φ² = φ + 1")
}

// TestCheckUnit_Bounds verifies the closed-interval contract, including
// exact acceptance at both endpoints.
func TestCheckUnit_Bounds(t *testing.T) {
	assert.NoError(t, core.CheckUnit("x", 0.0), "0 is inside [0,1]")
	assert.NoError(t, core.CheckUnit("x", 1.0), "1 is inside [0,1]")
	assert.NoError(t, core.CheckUnit("x", 0.5))

	for _, bad := range []float64{-0.001, 1.001, math.NaN(), math.Inf(1)} {
		err := core.CheckUnit("precedentStrength", bad)
		require.Error(t, err, "value %v must be rejected", bad)
		assert.ErrorIs(t, err, core.ErrOutOfRange)

		var derr *core.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "precedentStrength", derr.Name, "error must name the input")
	}
}

// TestCheckPositiveUnit verifies the half-open (0,1] contract.
func TestCheckPositiveUnit(t *testing.T) {
	assert.NoError(t, core.CheckPositiveUnit("V0", 1.0))
	assert.NoError(t, core.CheckPositiveUnit("V0", 1e-9))

	err := core.CheckPositiveUnit("V0", 0.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotPositive, "zero must map to ErrNotPositive")

	err = core.CheckPositiveUnit("V0", -0.2)
	assert.ErrorIs(t, err, core.ErrOutOfRange, "negative stays an out-of-range error")
}

// TestState_Validate reports the first offending field by name.
func TestState_Validate(t *testing.T) {
	assert.NoError(t, core.State{H: 0.72, V: 0.63, Alpha: 0.58}.Validate())

	err := core.State{H: 0.5, V: 1.3, Alpha: 0.5}.Validate()
	var derr *core.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "V", derr.Name)
	assert.Equal(t, 1.3, derr.Value)
}

// TestState_Ratio guards the V=0 division edge explicitly.
func TestState_Ratio(t *testing.T) {
	r, err := core.State{H: 0.72, V: 0.63}.Ratio()
	require.NoError(t, err)
	assert.InDelta(t, 0.72/0.63, r, 1e-12)

	_, err = core.State{H: 0.9, V: 0}.Ratio()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrZeroVariation, "V=0 must surface the dedicated sentinel")
	assert.False(t, errors.Is(err, core.ErrOutOfRange), "must not masquerade as a range error")
}

// TestClamp01 reports clipping without repairing NaN.
func TestClamp01(t *testing.T) {
	v, clipped := core.Clamp01(1.2)
	assert.Equal(t, 1.0, v)
	assert.True(t, clipped)

	v, clipped = core.Clamp01(-0.2)
	assert.Equal(t, 0.0, v)
	assert.True(t, clipped)

	v, clipped = core.Clamp01(0.62)
	assert.Equal(t, 0.62, v)
	assert.False(t, clipped)
}
