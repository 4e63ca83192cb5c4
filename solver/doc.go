// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// Package solver orchestrates the soc package's primitive mutators into
// the two strategies spec.md §4.3 names: LinearAbsorption (absorb every
// BDD to echelon form, then join pairwise by size until one BDD remains
// or inconsistency is proven) and DropStrategy (the same, interleaved
// with variable drops once absorption stalls, for systems linear
// absorption alone cannot terminate on).
//
// Determinism: join pairs and drop candidates are chosen by a strict,
// fully tie-broken order (see options.go); two calls against the same
// SoC and Options always perform the same operation sequence.
//
// Concurrency: Solve runs to completion on the caller's goroutine, same
// as every soc mutator it calls.
package solver
