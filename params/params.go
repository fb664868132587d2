// Package params - composite parameter computation.
//
// Design principles:
//   - Deterministic, side-effect free functions; no logging, no panics.
//   - Strict validation first: weights, then proxies in documented order.
//   - Results are exact weighted sums — no rounding, no clamping. With all
//     proxies in [0,1] and weights summing to 1, the composite is guaranteed
//     to stay in [0,1] (convex combination).
package params

import (
	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

// weighted validates w (nil ⇒ fallback) and the four named proxies, then
// returns the weighted sum. Proxies are checked in documented order so the
// first offending argument is the one reported.
//
// Complexity: O(1).
func weighted(w *Weights, fallback Weights, names [4]string, vals [4]float64) (float64, error) {
	eff := fallback
	if w != nil {
		eff = *w
	}
	if err := eff.Validate(); err != nil {
		return 0, err
	}
	var sum float64
	for i, v := range vals {
		if err := core.CheckUnit(names[i], v); err != nil {
			return 0, err
		}
		sum += eff[i] * v
	}
	return sum, nil
}

// ComputeH computes the Heredity composite: the fidelity with which a legal
// system transmits its norms across institutional generations.
//
// Inputs (each in [0,1]):
//   - precedentStrength — strength of binding precedent (stare decisis)
//   - constRigidity     — difficulty of formal constitutional amendment
//   - codification      — fraction of law that is codified vs. case law
//   - judicialTenure    — normalized judicial tenure/independence
//
// w may be nil, selecting DefaultHWeights {0.35, 0.30, 0.25, 0.10}.
//
// Example (USA): ComputeH(0.80, 0.75, 0.55, 0.65, nil) ⇒ 0.7075.
//
// Errors: *core.DomainError naming the offending proxy; ErrWeightSum /
// ErrWeightRange for invalid custom weights.
func ComputeH(precedentStrength, constRigidity, codification, judicialTenure float64, w *Weights) (float64, error) {
	return weighted(w, DefaultHWeights,
		[4]string{"precedentStrength", "constRigidity", "codification", "judicialTenure"},
		[4]float64{precedentStrength, constRigidity, codification, judicialTenure})
}

// ComputeV computes the Variation composite: a legal system's capacity to
// generate diverse institutional arrangements.
//
// Inputs (each in [0,1]):
//   - federalAutonomy     — subnational policy autonomy
//   - amendmentFreq       — normalized constitutional amendment frequency
//   - judicialReview      — breadth and activity of judicial review
//   - legislativeTurnover — legislative personnel turnover rate
//
// w may be nil, selecting DefaultVWeights {0.40, 0.25, 0.20, 0.15}.
//
// Example (USA): ComputeV(0.85, 0.45, 0.70, 0.50, nil) ⇒ 0.6675.
func ComputeV(federalAutonomy, amendmentFreq, judicialReview, legislativeTurnover float64, w *Weights) (float64, error) {
	return weighted(w, DefaultVWeights,
		[4]string{"federalAutonomy", "amendmentFreq", "judicialReview", "legislativeTurnover"},
		[4]float64{federalAutonomy, amendmentFreq, judicialReview, legislativeTurnover})
}

// ComputeAlpha computes the Differential Fitness composite: the selection
// pressure favoring effective norms over ineffective ones.
//
// Inputs (each in [0,1]):
//   - complianceRate      — actual compliance with legal norms
//   - transparencyScore   — institutional transparency
//   - enforcementCapacity — state capacity for norm enforcement
//   - legitimacyIndex     — perceived legitimacy of the legal system
//
// w may be nil, selecting DefaultAlphaWeights {0.35, 0.25, 0.25, 0.15}.
func ComputeAlpha(complianceRate, transparencyScore, enforcementCapacity, legitimacyIndex float64, w *Weights) (float64, error) {
	return weighted(w, DefaultAlphaWeights,
		[4]string{"complianceRate", "transparencyScore", "enforcementCapacity", "legitimacyIndex"},
		[4]float64{complianceRate, transparencyScore, enforcementCapacity, legitimacyIndex})
}

// ComputeAll derives the full (H, V, α) state from a Components record.
// ws may be nil, selecting DefaultWeightSet(). The components are validated
// as a whole before any composite is formed, so a single bad proxy fails the
// entire call.
func ComputeAll(c Components, ws *WeightSet) (core.State, error) {
	if err := c.Validate(); err != nil {
		return core.State{}, err
	}
	eff := DefaultWeightSet()
	if ws != nil {
		eff = *ws
	}

	h, err := ComputeH(c.PrecedentStrength, c.ConstRigidity, c.Codification, c.JudicialTenure, &eff.H)
	if err != nil {
		return core.State{}, err
	}
	v, err := ComputeV(c.FederalAutonomy, c.AmendmentFreq, c.JudicialReview, c.LegislativeTurnover, &eff.V)
	if err != nil {
		return core.State{}, err
	}
	a, err := ComputeAlpha(c.ComplianceRate, c.TransparencyScore, c.EnforcementCapacity, c.LegitimacyIndex, &eff.Alpha)
	if err != nil {
		return core.State{}, err
	}
	return core.State{H: h, V: v, Alpha: a}, nil
}
