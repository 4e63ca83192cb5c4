// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// linear_absorption.go — spec.md §4.3's LinearAbsorption strategy: absorb
// every BDD to echelon form, then join pairwise by o.joinOrder until one
// BDD remains or inconsistency is proven. Never drops a variable.

package solver

import "github.com/Simula-UiB/CryptaPath/soc"

// runLinearAbsorption drives s to a single BDD (or inconsistency) using
// only absorption and join. Returns ErrStalled if it runs out of both
// absorbable levels and joinable pairs without reaching decided(s).
func runLinearAbsorption(s *soc.SoC, o Options, stats *runStats) error {
	if err := absorbAndJoinPass(s, o, stats); err != nil {
		return err
	}
	if !decided(s) {
		return solverErrorf("Solve", ErrStalled)
	}
	return nil
}

// absorbAndJoinPass runs LinearAbsorb on every current BDD, then joins
// BDDs pairwise (smallest/lowest-width first per o.joinOrder), re-running
// LinearAbsorb on each freshly-joined product, until at most one BDD
// remains. Returns soc.ErrInconsistent (wrapped) the moment any mutator
// proves the system unsatisfiable, and ErrBudgetExceeded (wrapped) the
// moment a join would push the SoC's node count past o.memoryCeiling.
func absorbAndJoinPass(s *soc.SoC, o Options, stats *runStats) error {
	for _, id := range s.BDDIDs() {
		b, ok := s.BDD(id)
		if !ok {
			continue
		}
		if err := b.LinearAbsorb(); err != nil {
			return solverErrorf("LinearAbsorb", err)
		}
		stats.recordOperation(s)
		if b.IsInconsistent() {
			return solverErrorf("LinearAbsorb", soc.ErrInconsistent)
		}
	}

	for len(s.BDDIDs()) > 1 {
		if overBudget(s, o) {
			return solverErrorf("Join", soc.ErrBudgetExceeded)
		}
		id1, id2, ok := pickJoinPair(s, o)
		if !ok {
			break
		}
		newID, err := s.Join(id1, id2)
		if err != nil {
			return solverErrorf("Join", err)
		}
		stats.recordOperation(s)
		if newID == 0 {
			continue // product was vacuously true and already pruned
		}
		b, ok := s.BDD(newID)
		if !ok {
			continue
		}
		if err := b.LinearAbsorb(); err != nil {
			return solverErrorf("LinearAbsorb", err)
		}
		stats.recordOperation(s)
		if b.IsInconsistent() {
			return solverErrorf("LinearAbsorb", soc.ErrInconsistent)
		}
	}
	return nil
}
