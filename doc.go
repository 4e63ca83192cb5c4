// Package cryptapath is an engine for solving systems of Compressed
// Right-Hand-Side (CRHS) equations over GF(2) using Binary Decision
// Diagrams.
//
// 🚀 What is CryptaPath?
//
//	A library that represents a linear-algebraic equation system as a
//	System of BDDs (SoC) — one reduced, ordered diagram per equation —
//	and solves it by repeatedly joining, absorbing, and dropping levels
//	until the system collapses to a unique assignment, an enumerable
//	solution set, or a proof of inconsistency.
//
// ✨ Why choose CryptaPath?
//
//   - Arena-allocated — nodes are small integer handles, not pointer graphs
//   - Invariant-checked — every mutator leaves the SoC reduced and ordered,
//     independently verifiable with soc.Validate
//   - Strategy-driven — solver picks join order and drop heuristics without
//     the caller hand-sequencing primitive mutations
//   - Pure Go — no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	gf2/     — GF(2) variables and linear combinations (the equation algebra)
//	soc/     — BDD/SoC data model and its primitive mutators (Swap, Join,
//	           Drop, Fix, LinearAbsorb) plus invariant validation
//	solver/  — strategies that drive the mutators to a solved form
//	format/  — the line-oriented exchange format for reading and writing a SoC
//	builder/ — synthetic SoC scenarios used by tests, examples, and fuzzing
//
// Quick example: three variables linked by one XOR constraint
// (v1 ⊕ v2 = v3) is a two-level BDD (builder.SingleXORConstraint) whose
// solution set is the four of the eight possible assignments satisfying
// the constraint.
package cryptapath
