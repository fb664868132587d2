package evolution

import (
	"log/slog"
	"math"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/equilibrium"
)

// Documented baseline constants, calibrated against USA/European historical
// trajectories (paper Section V.C).
const (
	DefaultGammaH     = 0.05  // H convergence rate, 1/years
	DefaultGammaV     = 0.08  // V convergence rate, 1/years
	DefaultBeta       = 0.015 // selection growth rate, 1/years
	DefaultSigmaH     = 0.01  // H noise amplitude, 1/√years
	DefaultSigmaV     = 0.015 // V noise amplitude, 1/√years
	DefaultSigmaAlpha = 0.005 // α noise amplitude, 1/√years

	DefaultYears      = 200.0
	DefaultResolution = 100
	DefaultMaxSteps   = 4_000_000
	DefaultTolerance  = 1e-6
)

// Guard rails against pathological configurations: a horizon or resolution
// beyond these bounds fails fast with a ConfigError instead of hanging or
// exhausting memory.
const (
	maxYears      = 1e6
	maxResolution = 1_000_000
)

// Options configures one simulation run. Construct via DefaultOptions and
// adjust fields; a nil *Options anywhere in the public API selects the
// defaults unchanged.
//
// Noise is disabled by setting the σ fields to zero explicitly: the
// validator accepts zero amplitudes (deterministic run) but rejects
// negative or non-finite ones.
type Options struct {
	// Years is the integration horizon, in years. Must be positive and at
	// most 1e6. Default: 200.
	Years float64

	// Resolution is the number of samples in the returned trajectory,
	// including t=0 and t=Years. Must be at least 2. Default: 100.
	Resolution int

	// Scenario selects the multiplier profile. Default: Baseline.
	Scenario Scenario

	// Convergence rates and selection growth rate (before scenario
	// multipliers).
	GammaH, GammaV, Beta float64

	// Noise amplitudes (before scenario multipliers). Zero disables the
	// corresponding noise process.
	SigmaH, SigmaV, SigmaAlpha float64

	// Seed feeds the noise generator. Zero selects the fixed default seed,
	// keeping zero-value reproducibility; any other value is used verbatim.
	Seed int64

	// MaxSteps bounds total accepted integration steps across the whole
	// run. Default: 4e6.
	MaxSteps int

	// Tolerance is the per-step local error tolerance of the adaptive
	// solver (applied absolutely and relatively). Default: 1e-6.
	Tolerance float64

	// Equilibrium overrides the attractor computation; nil selects
	// equilibrium.DefaultOptions.
	Equilibrium *equilibrium.Options

	// Logger, when non-nil, receives debug events for sample clipping and
	// an end-of-run summary. The core never logs otherwise.
	Logger *slog.Logger
}

// DefaultOptions returns the calibrated baseline configuration.
func DefaultOptions() Options {
	return Options{
		Years:      DefaultYears,
		Resolution: DefaultResolution,
		Scenario:   Baseline,
		GammaH:     DefaultGammaH,
		GammaV:     DefaultGammaV,
		Beta:       DefaultBeta,
		SigmaH:     DefaultSigmaH,
		SigmaV:     DefaultSigmaV,
		SigmaAlpha: DefaultSigmaAlpha,
		MaxSteps:   DefaultMaxSteps,
		Tolerance:  DefaultTolerance,
	}
}

// validate applies the nil ⇒ defaults policy and checks every field,
// attributing the first failure to its field name.
func validate(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts

	if math.IsNaN(o.Years) || o.Years <= 0 {
		return Options{}, &ConfigError{Field: "Years", Reason: "must be positive"}
	}
	if o.Years > maxYears {
		return Options{}, &ConfigError{Field: "Years", Reason: "horizon exceeds guard bound of 1e6 years"}
	}
	if o.Resolution < 2 {
		return Options{}, &ConfigError{Field: "Resolution", Reason: "need at least 2 samples"}
	}
	if o.Resolution > maxResolution {
		return Options{}, &ConfigError{Field: "Resolution", Reason: "exceeds guard bound of 1e6 samples"}
	}
	if _, ok := profileOf(o.Scenario); !ok {
		return Options{}, &ConfigError{Field: "Scenario", Reason: "outside the closed enumeration", Err: ErrUnknownScenario}
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"GammaH", o.GammaH}, {"GammaV", o.GammaV}, {"Beta", o.Beta},
		{"SigmaH", o.SigmaH}, {"SigmaV", o.SigmaV}, {"SigmaAlpha", o.SigmaAlpha},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < 0 {
			return Options{}, &ConfigError{Field: c.name, Reason: "must be finite and non-negative"}
		}
	}
	if o.MaxSteps <= 0 {
		return Options{}, &ConfigError{Field: "MaxSteps", Reason: "must be positive"}
	}
	if o.Resolution-1 > o.MaxSteps {
		return Options{}, &ConfigError{Field: "Resolution", Reason: "requires more steps than MaxSteps allows"}
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance <= 0 {
		return Options{}, &ConfigError{Field: "Tolerance", Reason: "must be positive"}
	}
	return o, nil
}
