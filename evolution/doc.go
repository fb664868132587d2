// Package evolution simulates the temporal drift of a legal system through
// Darwinian space: a stochastic mean-reverting system pulled toward the
// golden-ratio equilibrium computed by package equilibrium.
//
// The integrated system is
//
//	dH/dt = γ_H·(H* − H)                      + σ_H·ξ_H(t)
//	dV/dt = γ_V·(V* − V)                      + σ_V·ξ_V(t)
//	dα/dt = β·(α* − α)·exp(−|H/V − φ|)        + σ_α·ξ_α(t)
//
// The exponential factor couples α's drift to H/V proximity: selection
// pressure is strongest exactly at the golden ratio and decays as the
// system drifts away.
//
// ✨ Key features:
//   - adaptive embedded Runge–Kutta 3(2) drift integration with per-step
//     error control (Euler–Maruyama treatment of the noise term)
//   - closed scenario enumeration {Baseline, Reform, LockIn, Crisis}, each
//     a fixed multiplier profile — no free-form string dispatch
//   - caller-seeded determinism: same seed ⇒ identical trajectory; batch
//     runs derive independent SplitMix64 substreams per run
//   - observable clipping: samples pushed back into [0,1] are flagged on
//     the trajectory and optionally logged, never silent
//   - solver diagnostics on every result: accepted steps, minimum step
//     size, clip count
//
// ⚙️ Usage:
//
//	opts := evolution.DefaultOptions()
//	opts.Years = 200
//	opts.Scenario = evolution.Reform
//	traj, err := evolution.Simulate(core.State{H: 0.72, V: 0.63, Alpha: 0.58}, &opts)
//
// Errors follow a strict taxonomy: *core.DomainError for invalid initial
// states, *ConfigError (wrapping ErrBadConfig) for unusable configuration,
// and *IntegrationError (wrapping ErrIntegration) naming the failing time
// range when the solver cannot produce a finite trajectory.
package evolution
