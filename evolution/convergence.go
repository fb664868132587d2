// Package evolution - convergence analysis over trajectory batches.
package evolution

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

// ratioVMin excludes near-degenerate final states from the H/V ratio
// statistics: below this V the ratio is numerically meaningless.
const ratioVMin = 0.1

// ConvergenceStats summarizes how a batch of trajectories behaved relative
// to the golden-ratio attractor. Statistics over empty subsets are NaN
// (e.g. MeanConvergenceTime when no run converged).
type ConvergenceStats struct {
	Runs      int
	Converged int     // runs whose final d_φ fell below the threshold
	Rate      float64 // Converged / Runs

	MeanConvergenceTime float64 // mean first-passage time below the threshold
	StdConvergenceTime  float64

	MeanFinalDPhi float64
	StdFinalDPhi  float64

	MeanFinalRatio float64 // over runs with final V > 0.1
	StdFinalRatio  float64
	RatioGap       float64 // |MeanFinalRatio − φ|
}

// AnalyzeConvergence computes batch statistics against a d_φ threshold
// (the Goldilocks radius 0.5 reproduces the paper's convergence analysis).
//
// Errors: *ConfigError for an empty batch or non-positive threshold.
func AnalyzeConvergence(trajectories []Trajectory, thresholdDPhi float64) (ConvergenceStats, error) {
	if len(trajectories) == 0 {
		return ConvergenceStats{}, &ConfigError{Field: "trajectories", Reason: "need at least one trajectory"}
	}
	if math.IsNaN(thresholdDPhi) || thresholdDPhi <= 0 {
		return ConvergenceStats{}, &ConfigError{Field: "thresholdDPhi", Reason: "must be positive"}
	}

	var (
		convTimes   []float64
		finalDPhis  = make([]float64, 0, len(trajectories))
		finalRatios []float64
		converged   int
	)
	for _, tr := range trajectories {
		final := tr.Final()
		finalDPhis = append(finalDPhis, final.DPhi)

		if final.DPhi < thresholdDPhi {
			converged++
			for _, s := range tr.Samples {
				if s.DPhi < thresholdDPhi {
					convTimes = append(convTimes, s.T)
					break
				}
			}
		}
		if final.V > ratioVMin {
			finalRatios = append(finalRatios, final.H/final.V)
		}
	}

	stats := ConvergenceStats{
		Runs:      len(trajectories),
		Converged: converged,
		Rate:      float64(converged) / float64(len(trajectories)),

		MeanConvergenceTime: meanOrNaN(convTimes),
		StdConvergenceTime:  stdOrNaN(convTimes),
		MeanFinalDPhi:       meanOrNaN(finalDPhis),
		StdFinalDPhi:        stdOrNaN(finalDPhis),
		MeanFinalRatio:      meanOrNaN(finalRatios),
		StdFinalRatio:       stdOrNaN(finalRatios),
	}
	stats.RatioGap = math.Abs(stats.MeanFinalRatio - core.Phi)
	return stats, nil
}

func meanOrNaN(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

func stdOrNaN(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}
