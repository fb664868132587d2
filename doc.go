// Package evolvability models legal and constitutional systems as Darwinian
// populations — quantifying Heredity (H), Variation (V) and Differential
// Fitness (α), and testing how close their H/V ratio sits to the golden
// ratio φ ≈ 1.618.
//
// 🚀 What is this library?
//
//	A pure-Go companion to "Darwinian Spaces and the Golden Ratio", bringing
//	together:
//		• Parameter engine: composite H, V, α scores from weighted sub-indicators
//		• Metric engine: d_φ, LEI (evolvability), CHI (health), zone classification
//		• Equilibrium solver: the φ-ratio attractor (H*, V*, α*)
//		• Evolution simulator: stochastic mean-reverting drift toward equilibrium,
//		  scenario profiles, batch runs, convergence statistics
//
// ✨ Why choose it?
//
//   - Deterministic — caller-supplied seeds, no global random state
//   - Strict contracts — sentinel errors, no silent clamping of bad input
//   - Pure functions — no singletons, no I/O, no hidden caches
//
// Everything is organized under five subpackages:
//
//	core/        — State triple (H, V, α), φ constant, domain validation
//	params/      — weighted sub-indicator composites (Parameter Engine)
//	metrics/     — d_φ, LEI, CHI, Goldilocks score, zone classification
//	equilibrium/ — golden-ratio equilibrium targets
//	evolution/   — adaptive ODE integration with seeded noise, scenarios
//
// Quick example:
//
//	s := core.State{H: 0.72, V: 0.63, Alpha: 0.58} // USA, circa 2024
//	rep, err := metrics.Compute(s, nil)
//	if err != nil {
//	  // handle invalid parameters
//	}
//	fmt.Printf("LEI=%.3f d_φ=%.3f zone=%s\n", rep.LEI, rep.DPhi, rep.Zone)
//
// See examples/ for runnable country diagnostics and scenario forecasts.
package evolvability
