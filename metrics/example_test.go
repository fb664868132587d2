package metrics_test

import (
	"fmt"
	"log"

	"github.com/adrianlerer/legal-evolvability-golden-ratio/core"
	"github.com/adrianlerer/legal-evolvability-golden-ratio/metrics"
)

// ExampleCompute produces the full diagnostic report for the USA anchor case.
func ExampleCompute() {
	usa := core.State{H: 0.72, V: 0.63, Alpha: 0.58}

	rep, err := metrics.Compute(usa, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("d_φ  = %.3f\n", rep.DPhi)
	fmt.Printf("LEI  = %.3f\n", rep.LEI)
	fmt.Printf("CHI  = %.3f\n", rep.CHI)
	fmt.Printf("zone = %s\n", rep.Zone)
	// Output:
	// d_φ  = 0.475
	// LEI  = 0.635
	// CHI  = 0.178
	// zone = Goldilocks Zone
}

// ExampleClassifyZone contrasts a healthy system with a locked-in one.
func ExampleClassifyZone() {
	healthy, err := metrics.ClassifyZone(0.72, 0.63, 0.58, nil)
	if err != nil {
		log.Fatal(err)
	}
	locked, err := metrics.ClassifyZone(0.92, 0.18, 0.09, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(healthy)
	fmt.Println(locked)
	// Output:
	// Goldilocks Zone
	// Low Selection Zone
}
