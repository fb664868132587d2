// Package equilibrium computes the golden-ratio attractor of a legal
// system: the target state (H*, V*, α*) that simulated evolution converges
// toward.
//
// The target satisfies H*/V* = φ exactly, by construction:
//
//	C  = H₀ + V₀            (conserved sum)
//	V* = C / (φ + 1)
//	H* = φ · V*             (so H* + V* = C and H*/V* = φ)
//	α* = min(α₀ · growth, αmax)
//
// When the conserved sum is large enough that H* would exceed 1, the target
// is rescaled onto the unit box (H* = 1, V* = 1/φ): the ratio invariant is
// exact while conservation is approximate, and the Target reports the
// rescale explicitly.
//
// A Target is computed once per simulation request, held for the duration
// of integration, and discarded after; nothing in this package keeps state.
package equilibrium
