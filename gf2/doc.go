// Package gf2 provides the linear-algebra primitive consumed by the soc and
// solver packages: linear combinations (LCs) of variables over GF(2), and
// the basis operations the CRHS engine needs to decide dependence and
// substitute variables.
//
// A Variable is an opaque, non-negative integer identifier. A Linear
// Combination (LC) is the canonical (sorted, deduplicated) set of
// variables XORed together; the empty LC denotes the constant 0.
//
// Determinism:
//
//   - LCs are always stored sorted ascending by Variable; every constructor
//     and mutator restores this invariant before returning.
//   - Basis operations (Reduce, ExtendBasis) scan candidates in ascending
//     Variable order and break ties on the smallest id (see SPEC_FULL.md
//     §9.2 for the rationale).
//
// AI-Hints:
//
//   - Prefer Xor/Reduce over manual set manipulation; they maintain the
//     canonical form for you.
//   - ExtendBasis is the workhorse of linear absorption (soc package).
package gf2
