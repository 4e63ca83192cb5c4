// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// drop_strategy.go — spec.md §4.3's DropStrategy: interleave
// LinearAbsorption with drops of a heuristically chosen, unprotected
// variable whenever absorption saturates, or immediately when the
// memory ceiling is breached mid-absorption.

package solver

import (
	"errors"

	"github.com/Simula-UiB/CryptaPath/soc"
)

// runDropStrategy repeatedly runs absorbAndJoinPass, then either stops
// (decided or inconsistent) or drops one variable and tries again. Each
// drop strictly shrinks s's variable universe, and each pass either
// makes progress or is immediately followed by a drop, so the loop
// terminates in at most len(s.Variables()) drops plus whatever
// absorptions/joins each pass performs.
func runDropStrategy(s *soc.SoC, o Options, stats *runStats) error {
	for {
		passErr := absorbAndJoinPass(s, o, stats)
		if passErr != nil && !errors.Is(passErr, soc.ErrBudgetExceeded) {
			return passErr
		}
		// A budget-exceeded pass still falls through to the drop below
		// instead of returning: spec.md §4.3 says the ceiling "triggers a
		// drop instead of continuing absorption", not an abort.
		if passErr == nil && decided(s) {
			return nil
		}

		v, ok := pickDropCandidate(s, o)
		if !ok {
			return solverErrorf("Solve", ErrNoDropCandidate)
		}
		if err := s.Drop(v); err != nil {
			return solverErrorf("Drop", err)
		}
		stats.recordOperation(s)
	}
}
