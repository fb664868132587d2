// Package params implements the Parameter Engine: it converts raw,
// independently measurable institutional proxies into the three composite
// Darwinian parameters of a legal system.
//
//   - H (Heredity)             — ComputeH: precedent strength, constitutional
//     rigidity, codification share, judicial tenure.
//   - V (Variation)            — ComputeV: federal autonomy, amendment
//     frequency, judicial review, legislative turnover.
//   - α (Differential Fitness) — ComputeAlpha: compliance, transparency,
//     enforcement capacity, legitimacy.
//
// Each composite is a fixed weighted sum; the default weight vectors are the
// empirically calibrated ones from the paper and always sum to 1. All three
// operations are pure, stateless and independent — they may run in any order
// or in parallel.
//
// ⚙️ Usage:
//
//	h, err := params.ComputeH(0.80, 0.75, 0.55, 0.65, nil) // USA ⇒ 0.7075
//
// Errors:
//   - any proxy outside [0,1] ⇒ *core.DomainError naming the proxy
//   - custom weights that do not sum to 1 (±1e-9) ⇒ ErrWeightSum
//   - custom weights outside [0,1] ⇒ ErrWeightRange
//
// Inputs are never clamped: an out-of-range proxy is a caller bug and fails
// loudly.
package params
