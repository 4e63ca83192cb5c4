// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// solve.go — Solve, the dispatcher spec.md §6.3 describes: caller
// supplies an SoC, a strategy, protected variables, and an optional
// memory ceiling; Solve returns one of {unique solution map; enumerator;
// proven inconsistent; exceeded budget} plus counters.

package solver

import (
	"errors"

	"github.com/Simula-UiB/CryptaPath/soc"
)

// Solve mutates s in place, applying o.strategy until it reaches a final
// outcome. s.Protect is called for every variable in o.protected before
// solving begins.
//
// Determinism: see doc.go.
func Solve(s *soc.SoC, o Options) (*Result, error) {
	for _, v := range o.protected {
		s.Protect(v)
	}
	stats := &runStats{}

	var err error
	switch o.strategy {
	case LinearAbsorption:
		err = runLinearAbsorption(s, o, stats)
	case DropStrategyKind:
		err = runDropStrategy(s, o, stats)
	default:
		return nil, solverErrorf("Solve", ErrUnknownStrategy)
	}

	if errors.Is(err, soc.ErrBudgetExceeded) {
		return &Result{Outcome: BudgetExceeded, Stats: stats.finalize(s)}, nil
	}
	if errors.Is(err, soc.ErrInconsistent) {
		return &Result{Outcome: Inconsistent, Stats: stats.finalize(s)}, nil
	}
	if err != nil {
		return nil, err
	}

	return classify(s, stats), nil
}

// decided reports whether every level of every BDD in s has a
// single-variable lhs — the condition under which soc.SoC.Enumerate is
// safe to call regardless of how many levels a BDD still has (a looser,
// solver-internal gate than soc.SoC.SolvedForm's literal single-level
// reading of spec.md §4.2.7).
func decided(s *soc.SoC) bool {
	for _, b := range s.BDDs() {
		for _, lvl := range b.Levels() {
			if len(lvl.LHS) != 1 {
				return false
			}
		}
	}
	return true
}

// classify assumes decided(s) and reports whether exactly one full
// assignment survives (Unique) or more than one does (Enumerable), by
// running s.Enumerate and stopping as soon as a second assignment is
// found.
func classify(s *soc.SoC, stats *runStats) *Result {
	var found []soc.Assignment
	s.Enumerate(func(a soc.Assignment) bool {
		cp := make(soc.Assignment, len(a))
		for k, v := range a {
			cp[k] = v
		}
		found = append(found, cp)
		return len(found) < 2
	})

	res := &Result{Stats: stats.finalize(s)}
	if len(found) <= 1 {
		res.Outcome = Unique
		if len(found) == 1 {
			res.Assignment = found[0]
		} else {
			res.Assignment = soc.Assignment{}
		}
		return res
	}
	res.Outcome = Enumerable
	res.Enumerate = s.Enumerate
	return res
}

func overBudget(s *soc.SoC, o Options) bool {
	return o.memoryCeiling > 0 && s.NodeCount() > o.memoryCeiling
}
