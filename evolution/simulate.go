// Package evolution - simulation entry points.
package evolution

import (
	"math"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
	"github.com/adrianlerer/legal-evolvability-golden-ratio/equilibrium"
	"github.com/adrianlerer/legal-evolvability-golden-ratio/metrics"
)

// vFloor keeps V strictly positive at samples so the H/V ratio stays
// defined throughout a trajectory. Touching the floor counts as clipping.
const vFloor = 1e-6

// Simulate integrates one legal system from `initial` over the configured
// horizon and returns its trajectory with per-sample d_φ and LEI.
//
// Preconditions: H, V, α all in (0,1] — V = 0 would make the selection
// term's H/V ratio undefined. opts may be nil (defaults: 200 baseline
// years, 100 samples, calibrated rates, seeded noise).
//
// Samples that numerical drift pushes outside [0,1] are clipped back,
// flagged on the sample, counted on the trajectory, and logged when a
// Logger is configured — clipping signals the system entering an
// unrealistic regime and is never silent. Integration continues from the
// clipped state.
//
// Errors:
//   - *core.DomainError — initial state outside (0,1]³
//   - *ConfigError — unusable Options (wraps ErrBadConfig)
//   - equilibrium errors — no attractor for the initial state
//   - *IntegrationError — solver failure, naming the failing time range
func Simulate(initial core.State, opts *Options) (Trajectory, error) {
	o, err := validate(opts)
	if err != nil {
		return Trajectory{}, err
	}
	for _, c := range []struct {
		name  string
		value float64
	}{{"H0", initial.H}, {"V0", initial.V}, {"Alpha0", initial.Alpha}} {
		if err = core.CheckPositiveUnit(c.name, c.value); err != nil {
			return Trajectory{}, err
		}
	}

	tgt, err := equilibrium.Solve(initial, o.Equilibrium)
	if err != nil {
		return Trajectory{}, err
	}

	// Scenario profile: rate/noise multipliers plus target adjustments.
	prof, _ := profileOf(o.Scenario) // validated above
	tgt.State.V *= prof.vEqScale
	tgt.State.Alpha *= prof.alphaEqScale
	if prof.alphaEqFloor > 0 && tgt.State.Alpha < prof.alphaEqFloor {
		tgt.State.Alpha = prof.alphaEqFloor
	}

	cfg := driftConfig{
		gammaH: o.GammaH * prof.gammaH,
		gammaV: o.GammaV * prof.gammaV,
		beta:   o.Beta * prof.beta,
		sigma:  vec3{o.SigmaH * prof.sigmaH, o.SigmaV * prof.sigmaV, o.SigmaAlpha * prof.sigmaAlpha},
		target: tgt.State,
	}

	seed := effectiveSeed(o.Seed)
	dt := o.Years / float64(o.Resolution-1)
	it := newIntegrator(cfg, o.Tolerance, rngFromSeed(seed), o.MaxSteps, math.Min(1.0, dt))

	tr := Trajectory{
		Samples:  make([]Sample, 0, o.Resolution),
		Initial:  initial,
		Target:   tgt,
		Scenario: o.Scenario,
		Seed:     seed,
	}

	y := vec3{initial.H, initial.V, initial.Alpha}
	s, err := makeSample(0, y, false)
	if err != nil {
		return Trajectory{}, err
	}
	tr.Samples = append(tr.Samples, s)

	for i := 1; i < o.Resolution; i++ {
		to := float64(i) * dt
		if i == o.Resolution-1 {
			to = o.Years // avoid accumulated grid drift at the endpoint
		}

		y, err = it.advance(y, float64(i-1)*dt, to)
		if err != nil {
			return Trajectory{}, err
		}

		var clipped bool
		y, clipped = clipState(y)
		if clipped {
			tr.ClipCount++
			if o.Logger != nil {
				o.Logger.Debug("sample clipped into unit range",
					"t", to, "H", y[0], "V", y[1], "alpha", y[2])
			}
		}

		if s, err = makeSample(to, y, clipped); err != nil {
			return Trajectory{}, err
		}
		tr.Samples = append(tr.Samples, s)
	}

	tr.Steps = it.accepted
	tr.MinStep = it.minStep
	if o.Logger != nil {
		o.Logger.Debug("integration complete",
			"scenario", o.Scenario.String(), "years", o.Years,
			"steps", tr.Steps, "min_step", tr.MinStep, "clipped_samples", tr.ClipCount)
	}
	return tr, nil
}

// Predict forecasts a system's drift from its current position under a
// named scenario — a thin convenience wrapper over Simulate with the same
// contract. opts may be nil; Years and Scenario are taken from the
// arguments regardless.
func Predict(current core.State, yearsAhead float64, scenario Scenario, opts *Options) (Trajectory, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.Years = yearsAhead
	o.Scenario = scenario
	return Simulate(current, &o)
}

// clipState pulls a state back into the unit box, flooring V at vFloor so
// the ratio stays defined downstream.
func clipState(y vec3) (vec3, bool) {
	h, c0 := core.Clamp01(y[0])
	v, c1 := core.Clamp01(y[1])
	a, c2 := core.Clamp01(y[2])
	clipped := c0 || c1 || c2
	if v < vFloor {
		v = vFloor
		clipped = true
	}
	return vec3{h, v, a}, clipped
}

// makeSample attaches the metric engine's d_φ and LEI to a state sample.
func makeSample(t float64, y vec3, clipped bool) (Sample, error) {
	d, err := metrics.DistanceToPhi(y[0], y[1], nil)
	if err != nil {
		return Sample{}, err
	}
	lei, err := metrics.EvolvabilityIndex(y[0], y[1], y[2], nil)
	if err != nil {
		return Sample{}, err
	}
	return Sample{T: t, H: y[0], V: y[1], Alpha: y[2], DPhi: d, LEI: lei, Clipped: clipped}, nil
}
