package metrics_test

import (
	"fmt"
	"testing"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
	"github.com/adrianlerer/legal-evolvability-golden-ratio/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifyZone_Anchors pins the four variants to representative systems.
func TestClassifyZone_Anchors(t *testing.T) {
	tests := []struct {
		name    string
		h, v, a float64
		want    metrics.Zone
	}{
		{"USA near optimum", 0.72, 0.63, 0.58, metrics.GoldilocksZone},
		{"degenerate lock-in", 0.92, 0.18, 0.45, metrics.HighRigidity},
		{"revolutionary flux", 0.20, 0.80, 0.60, metrics.HighChaos},
		{"Argentina labor regime", 0.92, 0.18, 0.09, metrics.LowSelection},
		{"near phi but weak selection gate", 0.75, 0.46, 0.40, metrics.HighRigidity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := metrics.ClassifyZone(tt.h, tt.v, tt.a, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestClassifyZone_LowSelectionPrecedence: critically low α wins over any
// ratio-based zoning, per the documented check order.
func TestClassifyZone_LowSelectionPrecedence(t *testing.T) {
	// Deep rigidity territory, but α below the cutoff.
	z, err := metrics.ClassifyZone(0.95, 0.15, 0.05, nil)
	require.NoError(t, err)
	assert.Equal(t, metrics.LowSelection, z)

	// Deep chaos territory, same story.
	z, err = metrics.ClassifyZone(0.10, 0.90, 0.29, nil)
	require.NoError(t, err)
	assert.Equal(t, metrics.LowSelection, z)
}

// TestClassifyZone_Totality sweeps a dense grid over [0,1]³ (V > 0) and
// asserts every triple classifies without error into one of the four
// variants — no exceptions, no unclassified case.
func TestClassifyZone_Totality(t *testing.T) {
	valid := map[metrics.Zone]bool{
		metrics.GoldilocksZone: true,
		metrics.HighRigidity:   true,
		metrics.HighChaos:      true,
		metrics.LowSelection:   true,
	}
	seen := map[metrics.Zone]int{}

	for h := 0.0; h <= 1.0; h += 0.05 {
		for v := 0.05; v <= 1.0; v += 0.05 {
			for a := 0.0; a <= 1.0; a += 0.1 {
				z, err := metrics.ClassifyZone(h, v, a, nil)
				require.NoError(t, err, "H=%.2f V=%.2f α=%.2f", h, v, a)
				require.True(t, valid[z], "unexpected zone %v", z)
				seen[z]++
			}
		}
	}

	// The sweep must actually exercise all four variants.
	assert.Len(t, seen, 4, "grid should reach every zone, got %v", seen)
}

// TestClassifyZone_ZeroVariation surfaces the division guard.
func TestClassifyZone_ZeroVariation(t *testing.T) {
	_, err := metrics.ClassifyZone(0.5, 0.0, 0.5, nil)
	assert.ErrorIs(t, err, core.ErrZeroVariation)
}

// TestZone_String covers the paper's labels.
func TestZone_String(t *testing.T) {
	assert.Equal(t, "Goldilocks Zone", metrics.GoldilocksZone.String())
	assert.Equal(t, "High Rigidity Zone", metrics.HighRigidity.String())
	assert.Equal(t, "High Chaos Zone", metrics.HighChaos.String())
	assert.Equal(t, "Low Selection Zone", metrics.LowSelection.String())
	assert.Equal(t, "Unknown Zone", fmt.Sprint(metrics.Zone(42)))
}
