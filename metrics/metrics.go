// Package metrics - composite diagnostic formulas.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - Validation before arithmetic: the V=0 division edge is an explicit,
//     documented error, never an unrelated arithmetic surprise.
//   - No rounding: callers format for display; tests compare within 1e-12.
package metrics

import (
	"math"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

// Goldilocks-score shape constants (paper Appendix D.2): the ideal region
// center and the tolerance of each deviation term.
const (
	gsOptimalV     = 0.6
	gsOptimalAlpha = 0.7
	gsSigmaPhi     = 0.5
	gsSigmaV       = 0.2
	gsSigmaAlpha   = 0.2
)

// DistanceToPhi computes d_φ = |H/V − φ|, the distance of a system's
// heredity/variation ratio from the golden-ratio optimum.
//
// Errors:
//   - *core.DomainError (ErrOutOfRange) when H or V is outside [0,1]
//   - *core.DomainError (ErrZeroVariation) when V = 0 — the ratio is
//     undefined and no Inf sentinel is returned
//
// Complexity: O(1).
func DistanceToPhi(h, v float64, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err = core.CheckUnit("H", h); err != nil {
		return 0, err
	}
	if err = core.CheckUnit("V", v); err != nil {
		return 0, err
	}
	ratio, err := core.State{H: h, V: v}.Ratio()
	if err != nil {
		return 0, err
	}
	return math.Abs(ratio - o.Phi), nil
}

// EvolvabilityIndex computes LEI = (V·α) / (d_φ + ε).
//
// Monotonicity (holding the other factor fixed): strictly increasing in
// V·α, strictly decreasing in d_φ. The smoothing constant ε keeps the
// index finite as d_φ → 0.
//
// Errors: as DistanceToPhi, plus α outside [0,1].
func EvolvabilityIndex(h, v, alpha float64, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err = core.CheckUnit("Alpha", alpha); err != nil {
		return 0, err
	}
	d, err := DistanceToPhi(h, v, &o)
	if err != nil {
		return 0, err
	}
	return (v * alpha) / (d + o.Epsilon), nil
}

// HealthIndex computes CHI = (H·V·α) / (1 + d_φ). The denominator is ≥ 1,
// so the result is always finite and non-negative for valid inputs.
func HealthIndex(h, v, alpha float64, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err = core.CheckUnit("Alpha", alpha); err != nil {
		return 0, err
	}
	d, err := DistanceToPhi(h, v, &o)
	if err != nil {
		return 0, err
	}
	return (h * v * alpha) / (1 + d), nil
}

// GoldilocksScore computes a Gaussian proximity score in (0,1]:
//
//	GS = exp(−[(d_φ/σ_φ)² + ((V−V_opt)/σ_V)² + ((α−α_opt)/σ_α)²])
//
// Unlike ClassifyZone it is continuous, so it tracks reform progress toward
// the ideal region even for systems far outside it.
func GoldilocksScore(h, v, alpha float64, opts *Options) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err = core.CheckUnit("Alpha", alpha); err != nil {
		return 0, err
	}
	d, err := DistanceToPhi(h, v, &o)
	if err != nil {
		return 0, err
	}
	devPhi := (d / gsSigmaPhi) * (d / gsSigmaPhi)
	devV := ((v - gsOptimalV) / gsSigmaV) * ((v - gsOptimalV) / gsSigmaV)
	devAlpha := ((alpha - gsOptimalAlpha) / gsSigmaAlpha) * ((alpha - gsOptimalAlpha) / gsSigmaAlpha)
	return math.Exp(-(devPhi + devV + devAlpha)), nil
}

// AssessViability applies the empirical viability threshold (LEI > 0.1 by
// default) and attaches a graded diagnosis band.
func AssessViability(h, v, alpha float64, opts *Options) (Viability, error) {
	o, err := resolve(opts)
	if err != nil {
		return Viability{}, err
	}
	lei, err := EvolvabilityIndex(h, v, alpha, &o)
	if err != nil {
		return Viability{}, err
	}

	verdict := Viability{Viable: lei > o.ViabilityLEI, LEI: lei}
	switch {
	case lei > 1.0:
		verdict.Diagnosis = "Highly Viable (Goldilocks-grade evolvability)"
	case lei > 0.5:
		verdict.Diagnosis = "Viable (moderate evolvability)"
	case verdict.Viable:
		verdict.Diagnosis = "Marginally Viable (vulnerable to shocks)"
	case lei < 0.05:
		verdict.Diagnosis = "Terminal Lock-in"
	default:
		verdict.Diagnosis = "Non-viable (below evolvability threshold)"
	}
	return verdict, nil
}

// Compute derives the full diagnostic Report for one state in a single
// call: d_φ, LEI, CHI, Goldilocks score, zone and viability.
func Compute(s core.State, opts *Options) (Report, error) {
	o, err := resolve(opts)
	if err != nil {
		return Report{}, err
	}
	if err = s.Validate(); err != nil {
		return Report{}, err
	}

	d, err := DistanceToPhi(s.H, s.V, &o)
	if err != nil {
		return Report{}, err
	}
	lei, err := EvolvabilityIndex(s.H, s.V, s.Alpha, &o)
	if err != nil {
		return Report{}, err
	}
	chi, err := HealthIndex(s.H, s.V, s.Alpha, &o)
	if err != nil {
		return Report{}, err
	}
	gs, err := GoldilocksScore(s.H, s.V, s.Alpha, &o)
	if err != nil {
		return Report{}, err
	}
	zone, err := ClassifyZone(s.H, s.V, s.Alpha, &o)
	if err != nil {
		return Report{}, err
	}
	viability, err := AssessViability(s.H, s.V, s.Alpha, &o)
	if err != nil {
		return Report{}, err
	}

	return Report{
		State:           s,
		DPhi:            d,
		LEI:             lei,
		CHI:             chi,
		GoldilocksScore: gs,
		Zone:            zone,
		Viability:       viability,
	}, nil
}
