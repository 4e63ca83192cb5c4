// SPDX-License-Identifier: MIT
// Package: CryptaPath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildSoC(bopts, cons...). Creates s, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in scenario files
//     (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable scenarioConfig.
//   - Determinism: same inputs/options/seed and constructor order => identical SoCs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/Simula-UiB/CryptaPath/soc"
)

// Constructor appends one or more BDDs to s using the resolved
// scenarioConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates scenario topology behind a uniform function type,
// mirroring the teacher's graph Constructor.
type Constructor func(s *soc.SoC, cfg scenarioConfig) error

// BuildSoC creates a new soc.SoC, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor
// error is wrapped with the context "BuildSoC: %w" and returned
// immediately; no partial cleanup is attempted by design.
func BuildSoC(bopts []BuilderOption, cons ...Constructor) (*soc.SoC, error) {
	s := soc.New()
	cfg := newScenarioConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSoC: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, *cfg); err != nil {
			return nil, fmt.Errorf("BuildSoC: %w", err)
		}
	}
	return s, nil
}

// =============================================================================
// Scenario factories (declarations) - implemented in scenarios.go
// =============================================================================

// SingleXORConstraint builds the spec.md §8 scenario 1 BDD: levels
// lhs=[v1,v2] and lhs=[v3] enforcing v1⊕v2=v3, offset by
// cfg.variableOffset.
// func SingleXORConstraint() Constructor

// InconsistentPair builds the spec.md §8 scenario 2 fixture: two
// single-level BDDs over one shared variable, one forcing it to 0 and
// the other to 1.
// func InconsistentPair() Constructor

// Chain builds the spec.md §8 scenario 4 fixture: a three-level BDD
// with lhses [v1,v2], [v2,v3], [v1,v3] whose third level is the XOR of
// the first two, absorbable down to two levels.
// func Chain() Constructor

// RandomBDD builds the spec.md §8 scenario 3 fixture: a random BDD of
// the given level and node count, suitable for swap round-trip tests.
// func RandomBDD(levels, totalNodes int) Constructor
