// Package evolution - batch simulation.
//
// Batch runs are fully independent: each owns its initial condition, its
// derived noise stream, and its output slot. This is the one legitimate
// parallelism opportunity in the model — a map over run indices with no
// shared mutable state — so the fan-out needs no synchronization beyond
// collecting results.
package evolution

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
)

// maxBatchRuns guards against configurations that would exhaust memory.
const maxBatchRuns = 100_000

// InitialRanges describes uniform sampling bounds for random initial
// conditions. Lower bounds must be strictly positive: a drawn state must
// itself satisfy the simulator's (0,1] precondition.
type InitialRanges struct {
	HMin, HMax         float64
	VMin, VMax         float64
	AlphaMin, AlphaMax float64
}

// DefaultInitialRanges returns the paper's convergence-analysis bounds:
// H ∈ [0.30, 0.95], V ∈ [0.10, 0.85], α ∈ [0.10, 0.80].
func DefaultInitialRanges() InitialRanges {
	return InitialRanges{HMin: 0.30, HMax: 0.95, VMin: 0.10, VMax: 0.85, AlphaMin: 0.10, AlphaMax: 0.80}
}

func (r InitialRanges) validate() error {
	for _, c := range []struct {
		name     string
		min, max float64
	}{
		{"H", r.HMin, r.HMax},
		{"V", r.VMin, r.VMax},
		{"Alpha", r.AlphaMin, r.AlphaMax},
	} {
		if math.IsNaN(c.min) || math.IsNaN(c.max) || c.min <= 0 || c.max > 1 || c.min > c.max {
			return &ConfigError{
				Field:  "Initial." + c.name,
				Reason: fmt.Sprintf("range [%g, %g] must satisfy 0 < min ≤ max ≤ 1", c.min, c.max),
			}
		}
	}
	return nil
}

// draw samples a state uniformly from the ranges.
func (r InitialRanges) draw(rng *rand.Rand) core.State {
	return core.State{
		H:     r.HMin + rng.Float64()*(r.HMax-r.HMin),
		V:     r.VMin + rng.Float64()*(r.VMax-r.VMin),
		Alpha: r.AlphaMin + rng.Float64()*(r.AlphaMax-r.AlphaMin),
	}
}

// BatchOptions configures SimulateBatch.
type BatchOptions struct {
	// Runs is the number of independent trajectories. Required, ≥ 1.
	Runs int

	// Initial, when non-nil, draws each run's initial condition uniformly
	// from the ranges; nil reuses the caller's initial state for every run.
	Initial *InitialRanges

	// Parallelism bounds concurrent runs; 0 selects GOMAXPROCS.
	Parallelism int
}

// SimulateBatch runs BatchOptions.Runs independent simulations and returns
// their trajectories in run order.
//
// Determinism: per-run seeds and initial conditions are derived up front
// from opts.Seed (SplitMix64 substreams), so results are bit-identical for
// a given seed regardless of Parallelism or scheduling.
//
// A failing run aborts the batch with its run index attributed in the
// error; no partial result slice is returned.
func SimulateBatch(initial core.State, opts *Options, batch BatchOptions) ([]Trajectory, error) {
	o, err := validate(opts)
	if err != nil {
		return nil, err
	}
	if batch.Runs <= 0 {
		return nil, &ConfigError{Field: "Runs", Reason: "must be positive"}
	}
	if batch.Runs > maxBatchRuns {
		return nil, &ConfigError{Field: "Runs", Reason: "exceeds guard bound of 1e5 runs"}
	}
	if batch.Parallelism < 0 {
		return nil, &ConfigError{Field: "Parallelism", Reason: "must be non-negative"}
	}

	baseSeed := effectiveSeed(o.Seed)

	// Resolve every run's seed and initial condition sequentially before
	// any goroutine starts: scheduling must not influence outcomes.
	seeds := make([]int64, batch.Runs)
	inits := make([]core.State, batch.Runs)
	var icRng *rand.Rand
	if batch.Initial != nil {
		if err = batch.Initial.validate(); err != nil {
			return nil, err
		}
		// A dedicated stream id keeps IC draws decorrelated from run noise.
		icRng = rand.New(rand.NewSource(deriveSeed(baseSeed, math.MaxUint64)))
	}
	for i := range seeds {
		seeds[i] = deriveSeed(baseSeed, uint64(i))
		if batch.Initial != nil {
			inits[i] = batch.Initial.draw(icRng)
		} else {
			inits[i] = initial
		}
	}

	limit := batch.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Trajectory, batch.Runs)
	var g errgroup.Group
	g.SetLimit(limit)
	for i := range results {
		i := i
		g.Go(func() error {
			ro := o
			ro.Seed = seeds[i]
			tr, runErr := Simulate(inits[i], &ro)
			if runErr != nil {
				return fmt.Errorf("evolution: run %d: %w", i, runErr)
			}
			results[i] = tr
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
