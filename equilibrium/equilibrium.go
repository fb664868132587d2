package equilibrium

import (
	"errors"
	"math"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

var (
	// ErrBadOptions indicates an Options value outside its documented domain.
	ErrBadOptions = errors.New("equilibrium: invalid options")

	// ErrDegenerateState indicates H₀ + V₀ = 0: no conserved mass to
	// distribute, so no equilibrium exists.
	ErrDegenerateState = errors.New("equilibrium: H+V must be positive")
)

// Options configures the equilibrium rule. Construct via DefaultOptions and
// adjust, or pass nil to Solve for the defaults.
type Options struct {
	// TargetRatio is the attractor's H*/V* ratio. Default: core.Phi.
	TargetRatio float64

	// AlphaGrowth scales α₀ upward: systems approaching equilibrium are
	// assumed to face rising selection pressure. Default: 1.5.
	AlphaGrowth float64

	// AlphaMax caps α*. Must lie in (0,1]. Default: 0.95.
	AlphaMax float64
}

// DefaultOptions returns the calibrated equilibrium configuration.
func DefaultOptions() Options {
	return Options{TargetRatio: core.Phi, AlphaGrowth: 1.5, AlphaMax: 0.95}
}

// Target is the computed attractor. State.H/State.V equals the configured
// ratio to within floating-point arithmetic (well inside 1e-6).
type Target struct {
	State core.State

	// Conserved is the sum H₀ + V₀ the rule distributes. When Rescaled is
	// false, State.H + State.V equals it exactly.
	Conserved float64

	// Rescaled reports that the conserved-sum solution left the unit box
	// and the target was pulled back to H* = 1, V* = 1/ratio. The ratio
	// invariant still holds exactly; conservation does not.
	Rescaled bool
}

// Solve computes the equilibrium target for an initial state.
// opts may be nil, selecting DefaultOptions.
//
// Errors:
//   - *core.DomainError when the state lies outside [0,1]³
//   - ErrDegenerateState when H₀ + V₀ = 0
//   - ErrBadOptions for an unusable configuration
//
// Complexity: O(1).
func Solve(s core.State, opts *Options) (Target, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if !(o.TargetRatio > 0) || math.IsInf(o.TargetRatio, 0) ||
		!(o.AlphaGrowth > 0) || math.IsInf(o.AlphaGrowth, 0) ||
		!(o.AlphaMax > 0) || o.AlphaMax > 1 {
		return Target{}, ErrBadOptions
	}
	if err := s.Validate(); err != nil {
		return Target{}, err
	}

	c := s.H + s.V
	if c == 0 {
		return Target{}, ErrDegenerateState
	}

	vEq := c / (o.TargetRatio + 1)
	hEq := o.TargetRatio * vEq

	tgt := Target{Conserved: c}
	if hEq > 1 {
		// Conservation yields; the ratio invariant holds.
		hEq = 1
		vEq = 1 / o.TargetRatio
		tgt.Rescaled = true
	}

	alphaEq := math.Min(s.Alpha*o.AlphaGrowth, o.AlphaMax)

	tgt.State = core.State{H: hEq, V: vEq, Alpha: alphaEq}
	return tgt, nil
}
