package metrics

import (
	"errors"
	"math"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

// ErrBadOptions indicates an Options value violating its documented domain
// (non-positive ε, target ratio, or thresholds outside [0,1]).
var ErrBadOptions = errors.New("metrics: invalid options")

// Zone is the closed classification of a legal system in Darwinian space.
// Exactly one variant applies to any valid (H, V, α) triple with V > 0.
type Zone int

const (
	// GoldilocksZone: near the φ ratio with adequate selection and variation.
	GoldilocksZone Zone = iota

	// HighRigidity: H/V well above φ — excess heredity, ossification risk.
	HighRigidity

	// HighChaos: H/V well below φ — excess variation, weak transmission.
	HighChaos

	// LowSelection: α critically low regardless of the H/V ratio.
	LowSelection
)

// String implements fmt.Stringer with the paper's zone labels.
func (z Zone) String() string {
	switch z {
	case GoldilocksZone:
		return "Goldilocks Zone"
	case HighRigidity:
		return "High Rigidity Zone"
	case HighChaos:
		return "High Chaos Zone"
	case LowSelection:
		return "Low Selection Zone"
	default:
		return "Unknown Zone"
	}
}

// Options tunes the metric formulas and zone thresholds. The zero value is
// not usable directly; construct via DefaultOptions and adjust fields, or
// pass nil to any operation to select the defaults.
//
// The Goldilocks d_φ radius (0.5) is pinned by the paper; the remaining
// thresholds are calibration constants, configurable here rather than
// invariants of the theory.
type Options struct {
	// Phi is the target H/V ratio. Default: core.Phi.
	Phi float64

	// Epsilon is the LEI smoothing constant preventing blow-up as d_φ → 0.
	// Must be positive. Default: 0.1.
	Epsilon float64

	// LowSelectionAlpha is the α cutoff below which a system is classified
	// LowSelection before any ratio-based zoning. Default: 0.30.
	LowSelectionAlpha float64

	// GoldilocksRadius is the d_φ radius of the Goldilocks Zone. Default: 0.50.
	GoldilocksRadius float64

	// GoldilocksAlphaMin is the minimum α for Goldilocks membership. Default: 0.50.
	GoldilocksAlphaMin float64

	// GoldilocksVMin is the minimum V for Goldilocks membership. Default: 0.40.
	GoldilocksVMin float64

	// ViabilityLEI is the LEI threshold separating viable systems from
	// locked-in ones. Default: 0.10.
	ViabilityLEI float64
}

// DefaultOptions returns the paper's calibrated metric configuration.
func DefaultOptions() Options {
	return Options{
		Phi:                core.Phi,
		Epsilon:            0.1,
		LowSelectionAlpha:  0.30,
		GoldilocksRadius:   0.50,
		GoldilocksAlphaMin: 0.50,
		GoldilocksVMin:     0.40,
		ViabilityLEI:       0.10,
	}
}

// resolve applies the nil ⇒ defaults policy and validates the result.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if !(o.Phi > 0) || math.IsInf(o.Phi, 0) {
		return Options{}, ErrBadOptions
	}
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return Options{}, ErrBadOptions
	}
	for _, th := range []float64{o.LowSelectionAlpha, o.GoldilocksAlphaMin, o.GoldilocksVMin} {
		if math.IsNaN(th) || th < 0 || th > 1 {
			return Options{}, ErrBadOptions
		}
	}
	if !(o.GoldilocksRadius > 0) || !(o.ViabilityLEI > 0) {
		return Options{}, ErrBadOptions
	}
	return o, nil
}

// Viability is the verdict of AssessViability.
type Viability struct {
	Viable    bool    // LEI above the viability threshold
	LEI       float64 // the index the verdict is based on
	Diagnosis string  // human-readable band, e.g. "Terminal Lock-in"
}

// Report is the full read-only diagnostic view over one state. It is always
// derived fresh — never cached — so it cannot go stale relative to the state
// that produced it.
type Report struct {
	State           core.State
	DPhi            float64 // |H/V − φ|
	LEI             float64 // Legal Evolvability Index
	CHI             float64 // Constitutional Health Index
	GoldilocksScore float64 // Gaussian proximity to the ideal region
	Zone            Zone
	Viability       Viability
}
