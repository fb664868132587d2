package metrics

import (
	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

// ClassifyZone maps a valid (H, V, α) triple with V > 0 onto exactly one
// Zone. Classification is total and exclusive; the checks run in a fixed,
// documented order so no triple is ambiguous between two zones:
//
//  1. α < LowSelectionAlpha            ⇒ LowSelection (selection too weak
//     to matter, whatever the ratio)
//  2. d_φ < GoldilocksRadius and
//     α ≥ GoldilocksAlphaMin and
//     V > GoldilocksVMin               ⇒ GoldilocksZone
//  3. H/V ≥ φ                          ⇒ HighRigidity
//  4. otherwise                        ⇒ HighChaos
//
// A system that is near φ but fails a Goldilocks gate (α in the
// [LowSelectionAlpha, GoldilocksAlphaMin) band, or V too small) falls
// through to the ratio sign in steps 3–4: it leans rigid or chaotic even
// though its deviation is small.
//
// Errors: *core.DomainError for inputs outside [0,1] or V = 0.
//
// Complexity: O(1).
func ClassifyZone(h, v, alpha float64, opts *Options) (Zone, error) {
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

	if alpha < o.LowSelectionAlpha {
		return LowSelection, nil
	}
	if d < o.GoldilocksRadius && alpha >= o.GoldilocksAlphaMin && v > o.GoldilocksVMin {
		return GoldilocksZone, nil
	}
	// v > 0 is guaranteed here: DistanceToPhi rejects v == 0.
	if h/v >= o.Phi {
		return HighRigidity, nil
	}
	return HighChaos, nil
}
