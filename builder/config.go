// Package builder: configuration for scenario constructors.
//
// The key type is BuilderOption, a function that mutates a
// scenarioConfig. scenarioConfig holds two fields:
//   - rng:            *rand.Rand source for randomness (nil → deterministic
//     scenarios must not need one; RandomBDD requires it).
//   - variableOffset:  gf2.Variable added to every variable id a scenario
//     would otherwise number from 1, so multiple scenario BDDs can be
//     composed into one SoC without colliding on variable identity.
//
// Use newScenarioConfig to obtain a config with sensible defaults, then
// apply any number of BuilderOption in order. Later options override
// earlier ones.
package builder

import (
	"math/rand"

	"github.com/Simula-UiB/CryptaPath/gf2"
)

// BuilderOption customizes a scenario constructor's behavior by mutating
// the scenarioConfig before construction begins.
//
// As a rule, option constructors never panic at runtime on their own,
// except to reject a value that would make every subsequent call to the
// scenario nondeterministic or meaningless (mirrored from the teacher's
// WithRand/WithIDScheme nil-rejection convention).
type BuilderOption func(cfg *scenarioConfig)

// scenarioConfig holds the configurable parameters shared by every
// scenario constructor.
//
// scenarioConfig is not safe for concurrent mutation; each call to
// BuildSoC creates its own config via newScenarioConfig.
type scenarioConfig struct {
	rng            *rand.Rand   // optional RNG; nil means deterministic scenarios only
	variableOffset gf2.Variable // added to every variable id a scenario declares
}

// newScenarioConfig returns a scenarioConfig initialized with defaults,
// then applies each provided BuilderOption in order. Defaults: nil RNG,
// zero variableOffset.
func newScenarioConfig(opts ...BuilderOption) *scenarioConfig {
	cfg := &scenarioConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets an explicit *rand.Rand source for randomness.
// If rng is nil, this option is a no-op and leaves the original RNG.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *scenarioConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness in
// RandomBDD.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *scenarioConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVariableOffset shifts every variable id a scenario would otherwise
// number starting at 1 by the given amount, so several scenario BDDs can
// coexist in one SoC without their variables colliding.
func WithVariableOffset(offset gf2.Variable) BuilderOption {
	return func(cfg *scenarioConfig) {
		cfg.variableOffset = offset
	}
}
