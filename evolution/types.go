package evolution

import (
	"errors"
	"fmt"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
	"github.com/adrianlerer/legal-evolvability-golden-ratio/equilibrium"
)

var (
	// ErrBadConfig indicates an unusable simulation configuration.
	ErrBadConfig = errors.New("evolution: invalid configuration")

	// ErrUnknownScenario indicates a scenario value outside the closed enumeration.
	ErrUnknownScenario = errors.New("evolution: unknown scenario")

	// ErrIntegration indicates the solver failed to produce a finite trajectory.
	ErrIntegration = errors.New("evolution: integration failed")
)

// ConfigError attributes a configuration failure to a named field.
// It unwraps to ErrBadConfig, plus Err when a more specific sentinel
// applies (e.g. ErrUnknownScenario).
type ConfigError struct {
	Field  string // Options field (or argument) that failed
	Reason string
	Err    error // optional specific sentinel
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrBadConfig, e.Field, e.Reason)
}

// Unwrap exposes the sentinels for errors.Is.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrBadConfig, e.Err}
	}
	return []error{ErrBadConfig}
}

// IntegrationError reports the time sub-interval over which the numerical
// solver failed, per the no-partial-trajectory contract: a simulation
// either runs to completion or fails with attribution. Unwraps to
// ErrIntegration.
type IntegrationError struct {
	From, To float64 // failing sub-interval, in years
	Reason   string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%v over t ∈ [%g, %g]: %s", ErrIntegration, e.From, e.To, e.Reason)
}

// Unwrap exposes ErrIntegration for errors.Is.
func (e *IntegrationError) Unwrap() error { return ErrIntegration }

// Sample is one point of a trajectory: the state plus the derived metrics
// computed at that instant via the metric engine.
type Sample struct {
	T     float64 // years since simulation start
	H     float64
	V     float64
	Alpha float64
	DPhi  float64 // |H/V − φ| at this sample
	LEI   float64 // evolvability index at this sample

	// Clipped reports that at least one component was pushed back into
	// [0,1] at this sample — the system touched an unrealistic regime.
	Clipped bool
}

// Trajectory is the complete outcome of one simulation run. It is owned by
// the caller; the simulator keeps no state across calls.
type Trajectory struct {
	Samples []Sample

	Initial  core.State         // the validated initial condition
	Target   equilibrium.Target // scenario-adjusted attractor the run drifted toward
	Scenario Scenario
	Seed     int64 // effective noise seed (after the zero ⇒ default policy)

	// Solver diagnostics. MinStep is the smallest accepted step size — a
	// shrinking MinStep signals the solver working hard, not an accuracy
	// contract.
	Steps     int     // accepted integration steps
	MinStep   float64 // smallest accepted step, in years
	ClipCount int     // samples that required clipping
}

// Final returns the last sample. Valid for any trajectory returned without
// error: resolution ≥ 2 is enforced at configuration time.
func (tr Trajectory) Final() Sample {
	return tr.Samples[len(tr.Samples)-1]
}
