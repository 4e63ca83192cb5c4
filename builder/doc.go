// Package builder provides deterministic, functional-options-configured
// constructors for synthetic soc.SoC/soc.BDD fixtures: the concrete
// scenarios spec.md §8 names (single XOR constraint, inconsistent pair,
// a three-level absorbable chain, random BDDs for swap/round-trip
// property tests), plus RandomBDD for fuzzing and property-based tests.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates scenarioConfig before use.
//     – scenarioConfig:   holds RNG and a variable-id offset.
//   - Scenario factories (Constructor implementations):
//     – SingleXORConstraint: spec.md §8 scenario 1.
//     – InconsistentPair:    spec.md §8 scenario 2.
//     – Chain:               spec.md §8 scenario 4.
//     – RandomBDD:           spec.md §8 scenario 3.
//   - Shared constants:
//     – MethodSingleXORConstraint, MethodInconsistentPair, … tokens for
//       builderErrorf context.
//
// Guarantees:
//
//   - Determinism: the same options and constructor order produce
//     identical SoCs, given the same RNG seed for stochastic scenarios.
//   - No panics: option constructors accept every value (WithRand(nil)
//     is a no-op), and constructors only return sentinel errors.
//   - Built purely against soc's public construction surface
//     (soc.NewBDD, soc.AppendBDD, soc.RefSink/RefNone/RefNode) — no
//     access to soc's unexported arena fields.
//
// See individual function documentation for detailed contracts and
// parameter descriptions.
package builder
