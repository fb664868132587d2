// Package core defines the shared primitives of the Darwinian-space model:
// the State triple (H, V, α), the golden-ratio constant φ, and the strict
// domain validation used by every downstream engine.
//
// Conventions:
//   - All model parameters live on the closed unit interval [0,1].
//   - Invalid input is never clamped silently; validation returns a
//     *DomainError naming the offending argument.
//   - V = 0 makes the H/V ratio undefined; operations that need the ratio
//     surface ErrZeroVariation instead of dividing.
//
// The package is dependency-free and side-effect-free; every other package
// in this module builds on it.
package core
