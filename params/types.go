package params

import (
	"errors"
	"math"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

var (
	// ErrWeightSum indicates a weight vector that does not sum to 1 (±1e-9).
	ErrWeightSum = errors.New("params: weights must sum to 1.0")

	// ErrWeightRange indicates a weight outside [0,1].
	ErrWeightRange = errors.New("params: weights must lie in [0,1]")
)

// weightTol is the tolerance on the sum-to-one invariant.
const weightTol = 1e-9

// Weights holds the four sub-indicator weights of one composite parameter,
// in the documented argument order of the corresponding Compute function.
type Weights [4]float64

// Validate checks every weight lies in [0,1] and the vector sums to 1±1e-9.
func (w Weights) Validate() error {
	var sum float64
	for _, wi := range w {
		if math.IsNaN(wi) || wi < 0 || wi > 1 {
			return ErrWeightRange
		}
		sum += wi
	}
	if math.Abs(sum-1.0) > weightTol {
		return ErrWeightSum
	}
	return nil
}

// Default weight vectors, calibrated in the paper (Section IV).
var (
	// DefaultHWeights weighs precedent strength, constitutional rigidity,
	// codification and judicial tenure.
	DefaultHWeights = Weights{0.35, 0.30, 0.25, 0.10}

	// DefaultVWeights weighs federal autonomy, amendment frequency,
	// judicial review and legislative turnover.
	DefaultVWeights = Weights{0.40, 0.25, 0.20, 0.15}

	// DefaultAlphaWeights weighs compliance, transparency, enforcement
	// capacity and legitimacy.
	DefaultAlphaWeights = Weights{0.35, 0.25, 0.25, 0.15}
)

// WeightSet bundles the three weight vectors for ComputeAll.
type WeightSet struct {
	H     Weights
	V     Weights
	Alpha Weights
}

// DefaultWeightSet returns the calibrated defaults for all three parameters.
func DefaultWeightSet() WeightSet {
	return WeightSet{H: DefaultHWeights, V: DefaultVWeights, Alpha: DefaultAlphaWeights}
}

// Components carries the twelve raw proxies of one legal system, each in
// [0,1]. Immutable by convention: construct once, feed to ComputeAll.
type Components struct {
	// Heredity proxies
	PrecedentStrength float64 // strength of stare decisis (1 = strictly binding)
	ConstRigidity     float64 // formal amendment difficulty (Lutz index, normalized)
	Codification      float64 // share of codified vs. case law
	JudicialTenure    float64 // normalized tenure (lifetime appointment = 1)

	// Variation proxies
	FederalAutonomy     float64 // subnational policy autonomy
	AmendmentFreq       float64 // normalized amendment frequency
	JudicialReview      float64 // breadth and activity of review
	LegislativeTurnover float64 // seat turnover per electoral cycle

	// Differential-fitness proxies
	ComplianceRate      float64 // actual compliance with legal norms
	TransparencyScore   float64 // institutional transparency
	EnforcementCapacity float64 // state capacity for norm enforcement
	LegitimacyIndex     float64 // perceived legitimacy of the system
}

// Validate checks all twelve proxies against [0,1], reporting the first
// violation as a *core.DomainError naming the field.
func (c Components) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"PrecedentStrength", c.PrecedentStrength},
		{"ConstRigidity", c.ConstRigidity},
		{"Codification", c.Codification},
		{"JudicialTenure", c.JudicialTenure},
		{"FederalAutonomy", c.FederalAutonomy},
		{"AmendmentFreq", c.AmendmentFreq},
		{"JudicialReview", c.JudicialReview},
		{"LegislativeTurnover", c.LegislativeTurnover},
		{"ComplianceRate", c.ComplianceRate},
		{"TransparencyScore", c.TransparencyScore},
		{"EnforcementCapacity", c.EnforcementCapacity},
		{"LegitimacyIndex", c.LegitimacyIndex},
	}
	for _, ch := range checks {
		if err := core.CheckUnit(ch.name, ch.value); err != nil {
			return err
		}
	}
	return nil
}
