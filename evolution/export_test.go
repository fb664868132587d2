package evolution

// Test bridge: expose unexported seed plumbing to the external test
// package without widening the production API.
var (
	EffectiveSeedForTest = effectiveSeed
	DeriveSeedForTest    = deriveSeed
	RNGFromSeedForTest   = rngFromSeed
)

// DefaultNoiseSeedForTest mirrors the fixed seed selected by Seed == 0.
const DefaultNoiseSeedForTest = defaultNoiseSeed
