package core

import (
	"errors"
	"fmt"
	"math"
)

// Phi is the golden ratio (1+√5)/2, the hypothesized optimal H/V ratio.
const Phi = 1.6180339887498949

var (
	// ErrOutOfRange indicates a model parameter outside the closed unit interval.
	ErrOutOfRange = errors.New("core: parameter outside [0,1]")

	// ErrNotPositive indicates a parameter that must be strictly positive.
	ErrNotPositive = errors.New("core: parameter must be positive")

	// ErrZeroVariation indicates V = 0 where the H/V ratio is required.
	ErrZeroVariation = errors.New("core: V must be positive where H/V is required")
)

// DomainError reports a named input violating its documented domain.
// It unwraps to one of the package sentinels so callers can match with
// errors.Is while still seeing which argument failed.
type DomainError struct {
	Name  string  // argument name as documented on the failing operation
	Value float64 // offending value
	Err   error   // sentinel cause (ErrOutOfRange, ErrNotPositive, ErrZeroVariation)
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %s = %g", e.Err, e.Name, e.Value)
}

// Unwrap exposes the sentinel cause for errors.Is / errors.As.
func (e *DomainError) Unwrap() error { return e.Err }

// CheckUnit returns a *DomainError when v is NaN or outside [0,1].
// The name is echoed verbatim in the error for caller-side attribution.
func CheckUnit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &DomainError{Name: name, Value: v, Err: ErrOutOfRange}
	}
	return nil
}

// CheckPositiveUnit returns a *DomainError when v is NaN, non-positive,
// or above 1 — i.e. when v is outside the half-open interval (0,1].
func CheckPositiveUnit(name string, v float64) error {
	if err := CheckUnit(name, v); err != nil {
		return err
	}
	if v == 0 {
		return &DomainError{Name: name, Value: v, Err: ErrNotPositive}
	}
	return nil
}

// State is one legal system's position in Darwinian space at a single
// point in time. It carries no identity beyond the numeric triple; callers
// attach labels (country, year) externally.
type State struct {
	H     float64 // Heredity: fidelity of norm transmission
	V     float64 // Variation: capacity to generate diverse arrangements
	Alpha float64 // Differential fitness: selection pressure on norms
}

// Validate checks that all three parameters lie in [0,1].
// The first violation is returned as a *DomainError naming the field.
func (s State) Validate() error {
	if err := CheckUnit("H", s.H); err != nil {
		return err
	}
	if err := CheckUnit("V", s.V); err != nil {
		return err
	}
	return CheckUnit("Alpha", s.Alpha)
}

// Ratio returns H/V. When V = 0 the ratio is undefined and a *DomainError
// wrapping ErrZeroVariation is returned; the ratio is never ±Inf.
func (s State) Ratio() (float64, error) {
	if s.V == 0 {
		return 0, &DomainError{Name: "V", Value: s.V, Err: ErrZeroVariation}
	}
	return s.H / s.V, nil
}

// Clamp01 clips v into [0,1] and reports whether clipping occurred.
// NaN is not repaired here; numerical guards live with the integrator.
func Clamp01(v float64) (float64, bool) {
	if v < 0 {
		return 0, true
	}
	if v > 1 {
		return 1, true
	}
	return v, false
}
