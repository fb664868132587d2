// Package evolution_test - benchmarks for the simulation hot paths.
//
// Policy: fixed seeds and fixed configurations, inputs built outside the
// timer; instances sized to stay fast on CI.
package evolution_test

import (
	"testing"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/evolution"
)

// BenchmarkSimulate_Baseline measures one noisy 200-year run at the
// default resolution.
func BenchmarkSimulate_Baseline(b *testing.B) {
	opts := evolution.DefaultOptions()
	opts.Seed = 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := evolution.Simulate(balanced, &opts); err != nil {
			b.Fatalf("Simulate failed: %v", err)
		}
	}
}

// BenchmarkSimulate_Noiseless measures the pure adaptive ODE path, which
// is the floor cost of every run.
func BenchmarkSimulate_Noiseless(b *testing.B) {
	opts := noiseless()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := evolution.Simulate(balanced, &opts); err != nil {
			b.Fatalf("Simulate failed: %v", err)
		}
	}
}

// BenchmarkSimulateBatch_16 measures the parallel fan-out over sixteen
// independent runs with random initial conditions.
func BenchmarkSimulateBatch_16(b *testing.B) {
	opts := evolution.DefaultOptions()
	opts.Years = 50
	opts.Resolution = 51
	opts.Seed = 1
	ranges := evolution.DefaultInitialRanges()
	batch := evolution.BatchOptions{Runs: 16, Initial: &ranges}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := evolution.SimulateBatch(balanced, &opts, batch); err != nil {
			b.Fatalf("SimulateBatch failed: %v", err)
		}
	}
}
