// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// Package soc implements the System-of-Compressed-BDDs primitive: Node,
// Level, BDD, and SoC, plus the structure-preserving mutators (swap,
// absorb, linear-absorption-to-echelon-form, join, drop, fix), solution
// enumeration, and independent invariant validation.
//
// Determinism: every mutator iterates nodes and levels in ascending,
// insertion-recorded order. Canonicalization never iterates a Go map to
// assign identifiers; maps are consulted only for existence checks, an
// insertion-ordered slice (canonTable.order) is the sole source of
// iteration order (see arena.go).
//
// Concurrency: a BDD and the SoC that owns it are not safe for concurrent
// use. Nothing in this package spawns a goroutine or blocks; every
// mutator runs to completion on the caller's goroutine (spec.md §5).
//
// AI-Hints: treat NodeID 0 as the sole public terminal (Sink); never
// compare a NodeID against zero to mean "absent" anywhere outside this
// package — absence is the unexported deadEnd sentinel, never exposed.
package soc
