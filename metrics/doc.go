// Package metrics implements the Metric Engine: composite diagnostics
// derived from a (H, V, α) triple.
//
//   - DistanceToPhi     — d_φ = |H/V − φ|, the optimality gap
//   - EvolvabilityIndex — LEI = (V·α)/(d_φ + ε), adaptive capacity
//   - HealthIndex       — CHI = (H·V·α)/(1 + d_φ), overall health
//   - GoldilocksScore   — Gaussian proximity to the ideal parameter region
//   - ClassifyZone      — total, exclusive classification into four zones
//   - AssessViability   — LEI-threshold verdict with graded diagnosis
//   - Compute           — one-shot Report with everything above
//
// All operations are pure and side-effect free: calling them twice on the
// same triple yields bit-identical results. There is no caching — metrics
// are always derived fresh from the state that produced them.
//
// Interpretation bands (paper Sections IV–V):
//
//	LEI  > 1.0  high evolvability  │  d_φ < 0.3  near-optimal
//	     0.5–1  viable             │      0.3–1  viable with good α
//	     0.2–.5 struggling         │      1–3    needs correction
//	     < 0.2  lock-in            │      > 3    dysfunctional
//
// Failure semantics: inputs outside [0,1] fail with *core.DomainError; V = 0
// fails with core.ErrZeroVariation wherever H/V is needed. Nothing is
// clamped, and no Inf sentinel is ever returned.
package metrics
