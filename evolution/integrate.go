// Package evolution - adaptive stochastic integration.
//
// The drift (mean-reverting pull toward the equilibrium target) is advanced
// with an embedded Bogacki–Shampine 3(2) Runge–Kutta pair under per-step
// error control; the diffusion (institutional shock noise) is superimposed
// per accepted step in Euler–Maruyama fashion, scaled by √h. For σ = 0 the
// scheme reduces to a plain adaptive ODE solve.
//
// Design principles:
//   - Local recovery only: a step failing its error test is retried with a
//     smaller h; this is solver-internal and never user-visible retry.
//   - Loud failure: step-size underflow, a step budget overrun, or a
//     non-finite state aborts with an *IntegrationError naming the failing
//     time sub-interval. No partially-NaN trajectory is ever returned.
//   - Diagnostics: accepted steps and the minimum accepted step size are
//     reported on the trajectory, observable on request.
package evolution

import (
	"math"
	"math/rand"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

type vec3 [3]float64

// driftConfig is the fully-resolved right-hand side: base rates with the
// scenario multipliers already applied, plus the adjusted target.
type driftConfig struct {
	gammaH, gammaV, beta float64
	sigma                vec3
	target               core.State
}

// drift evaluates the deterministic part of the system. The selection
// pressure on α decays exponentially with the distance of H/V from φ and
// vanishes when V is non-positive (no defined ratio, no selection signal).
func drift(y vec3, c *driftConfig) vec3 {
	var sp float64
	if y[1] > 0 {
		sp = math.Exp(-math.Abs(y[0]/y[1]-core.Phi))
	}
	return vec3{
		c.gammaH * (c.target.H - y[0]),
		c.gammaV * (c.target.V - y[1]),
		c.beta * (c.target.Alpha - y[2]) * sp,
	}
}

// Step-control constants: classical safety factor and growth/shrink clamps
// for a third-order pair, plus the absolute step floor that converts
// unresolvable stiffness into an explicit error.
const (
	stepSafety = 0.9
	stepShrink = 0.2
	stepGrow   = 5.0
	stepFloor  = 1e-9
)

type integrator struct {
	cfg      driftConfig
	tol      float64
	rng      *rand.Rand
	noisy    bool // any σ > 0
	maxSteps int

	h        float64 // current step proposal, carried across segments
	attempts int
	accepted int
	minStep  float64
}

func newIntegrator(cfg driftConfig, tol float64, rng *rand.Rand, maxSteps int, hInit float64) *integrator {
	return &integrator{
		cfg:      cfg,
		tol:      tol,
		rng:      rng,
		noisy:    cfg.sigma[0] > 0 || cfg.sigma[1] > 0 || cfg.sigma[2] > 0,
		maxSteps: maxSteps,
		h:        hInit,
		minStep:  math.Inf(1),
	}
}

// advance integrates y from time `from` to `to`, returning the state at `to`.
//
// Errors: *IntegrationError on step underflow, budget overrun, or a
// non-finite state; the error names the failing sub-interval.
func (it *integrator) advance(y vec3, from, to float64) (vec3, error) {
	t := from
	for t < to {
		if it.attempts >= it.maxSteps {
			return vec3{}, &IntegrationError{From: from, To: to, Reason: "step budget exhausted"}
		}
		it.attempts++

		h := math.Min(it.h, to-t)

		// Bogacki–Shampine 3(2) pair.
		k1 := drift(y, &it.cfg)
		k2 := drift(axpy(y, h/2, k1), &it.cfg)
		k3 := drift(axpy(y, 3*h/4, k2), &it.cfg)

		var y3 vec3
		for i := 0; i < 3; i++ {
			y3[i] = y[i] + h*(2.0/9.0*k1[i]+1.0/3.0*k2[i]+4.0/9.0*k3[i])
		}
		k4 := drift(y3, &it.cfg)

		// Local error estimate: third-order solution minus the embedded
		// second-order one.
		var errNorm float64
		for i := 0; i < 3; i++ {
			e := h * (-5.0/72.0*k1[i] + 1.0/12.0*k2[i] + 1.0/9.0*k3[i] - 1.0/8.0*k4[i])
			scale := it.tol * (1 + math.Abs(y3[i]))
			errNorm = math.Max(errNorm, math.Abs(e)/scale)
		}

		if !finite(y3) || math.IsNaN(errNorm) {
			return vec3{}, &IntegrationError{From: t, To: t + h, Reason: "non-finite state"}
		}

		if errNorm > 1 {
			// Reject: shrink and retry from the same t.
			it.h = h * math.Max(stepShrink, stepSafety*math.Pow(errNorm, -1.0/3.0))
			if it.h < stepFloor {
				return vec3{}, &IntegrationError{From: t, To: to, Reason: "step size underflow (system too stiff)"}
			}
			continue
		}

		// Accept: apply the diffusion term and advance.
		if it.noisy {
			sh := math.Sqrt(h)
			for i := 0; i < 3; i++ {
				if it.cfg.sigma[i] > 0 {
					y3[i] += it.cfg.sigma[i] * sh * it.rng.NormFloat64()
				}
			}
			if !finite(y3) {
				return vec3{}, &IntegrationError{From: t, To: t + h, Reason: "non-finite state after noise"}
			}
		}

		y = y3
		t += h
		it.accepted++
		it.minStep = math.Min(it.minStep, h)

		grow := stepGrow
		if errNorm > 0 {
			grow = math.Min(stepGrow, stepSafety*math.Pow(errNorm, -1.0/3.0))
		}
		it.h = math.Max(h*math.Max(grow, stepShrink), stepFloor)
	}
	return y, nil
}

// axpy returns y + a·k without mutating y.
func axpy(y vec3, a float64, k vec3) vec3 {
	return vec3{y[0] + a*k[0], y[1] + a*k[1], y[2] + a*k[2]}
}

func finite(y vec3) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
