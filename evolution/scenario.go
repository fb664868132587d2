package evolution

// Scenario is the closed enumeration of simulation regimes. Each variant
// carries a fixed multiplier profile over the baseline constants, resolved
// by exhaustive matching rather than free-form string lookup.
type Scenario int

const (
	// Baseline: current trends continue; profile multipliers are all 1.
	Baseline Scenario = iota

	// Reform models intentional liberalization: V's pull toward target is
	// strengthened, H's slightly relaxed, and the α* target floored at 0.40.
	Reform

	// LockIn models institutional ossification: H's pull strengthened, V's
	// halved and quieter, and the V* target reduced by 20%.
	LockIn

	// Crisis models an exogenous shock: all noise amplitudes tripled and
	// the α* target cut to 60%.
	Crisis
)

// String implements fmt.Stringer with the external scenario names.
func (s Scenario) String() string {
	switch s {
	case Baseline:
		return "baseline"
	case Reform:
		return "reform"
	case LockIn:
		return "lock-in"
	case Crisis:
		return "crisis"
	default:
		return "unknown"
	}
}

// ParseScenario maps an external scenario name onto the enumeration.
// Unrecognized names fail with a *ConfigError wrapping ErrUnknownScenario;
// they are never silently accepted.
func ParseScenario(name string) (Scenario, error) {
	switch name {
	case "baseline":
		return Baseline, nil
	case "reform":
		return Reform, nil
	case "lock-in":
		return LockIn, nil
	case "crisis":
		return Crisis, nil
	default:
		return 0, &ConfigError{Field: "Scenario", Reason: "unknown scenario " + name, Err: ErrUnknownScenario}
	}
}

// profile is the fixed multiplier table of one scenario: rate and noise
// multipliers applied to the Options constants, plus adjustments to the
// equilibrium target.
type profile struct {
	gammaH, gammaV, beta       float64 // drift-rate multipliers
	sigmaH, sigmaV, sigmaAlpha float64 // noise-amplitude multipliers
	vEqScale                   float64 // scales the V* target (lock-in)
	alphaEqScale               float64 // scales the α* target (crisis)
	alphaEqFloor               float64 // raises the α* target (reform); 0 = none
}

// profileOf resolves a scenario to its multiplier table. The match is
// exhaustive over the closed enumeration; any other value reports false.
func profileOf(s Scenario) (profile, bool) {
	switch s {
	case Baseline:
		return profile{
			gammaH: 1, gammaV: 1, beta: 1,
			sigmaH: 1, sigmaV: 1, sigmaAlpha: 1,
			vEqScale: 1, alphaEqScale: 1,
		}, true
	case Reform:
		return profile{
			gammaH: 0.8, gammaV: 1.5, beta: 1,
			sigmaH: 1, sigmaV: 1, sigmaAlpha: 1,
			vEqScale: 1, alphaEqScale: 1, alphaEqFloor: 0.40,
		}, true
	case LockIn:
		return profile{
			gammaH: 1.4, gammaV: 0.5, beta: 1,
			sigmaH: 1, sigmaV: 0.5, sigmaAlpha: 1,
			vEqScale: 0.8, alphaEqScale: 1,
		}, true
	case Crisis:
		return profile{
			gammaH: 1, gammaV: 1, beta: 1,
			sigmaH: 3, sigmaV: 3, sigmaAlpha: 3,
			vEqScale: 1, alphaEqScale: 0.6,
		}, true
	default:
		return profile{}, false
	}
}
