// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// enumerate.go — spec.md §4.2.7, solution enumeration once (or before)
// the SoC has reached solved form.

package soc

import "sort"

// Assignment maps a variable to its forced boolean value.
type Assignment map[Variable]bool

// SolvedForm reports whether every BDD in s is a single level whose lhs
// is exactly one variable (spec.md §4.2.7's "forced value" condition); an
// empty SoC (every BDD already removed as vacuously true) also counts.
func (s *SoC) SolvedForm() bool {
	for _, id := range s.order {
		b := s.bdds[id]
		if len(b.levels) != 1 || len(b.levels[0].LHS) != 1 {
			return false
		}
	}
	return true
}

// UniqueAssignment returns the SoC's single forced assignment, valid only
// when SolvedForm reports true and every single-variable BDD also has
// exactly one live root-to-sink path. Use Enumerate when more than one
// path may survive.
func (s *SoC) UniqueAssignment() (Assignment, bool) {
	if !s.SolvedForm() {
		return nil, false
	}
	out := Assignment{}
	for _, id := range s.order {
		b := s.bdds[id]
		v := b.levels[0].LHS[0]
		val, ok := b.forcedBit()
		if !ok {
			return nil, false
		}
		out[v] = val
	}
	return out, true
}

// forcedBit reports the single value a one-level, one-variable BDD
// forces, or false if both the zero and one edges still lead to Sink
// (more than one path survives, so the value isn't forced).
func (b *BDD) forcedBit() (value bool, forced bool) {
	if len(b.levels) != 1 || len(b.levels[0].Nodes) != 1 {
		return false, false
	}
	n := b.arena[b.levels[0].Nodes[0]]
	zeroLive := n.zero != deadEnd
	oneLive := n.one != deadEnd
	switch {
	case zeroLive && !oneLive:
		return false, true
	case oneLive && !zeroLive:
		return true, true
	default:
		return false, false
	}
}

// Enumerate lazily yields every full assignment the SoC admits, each in
// ascending order over the variable universe (spec.md §4.2.7's "insertion
// order over the variable universe" — realized here as ascending
// variable id, the same order gf2.LC's pivot convention uses elsewhere).
// yield is called once per assignment; Enumerate stops early if yield
// returns false.
func (s *SoC) Enumerate(yield func(Assignment) bool) {
	universe := s.Variables()
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	assign := Assignment{}
	var walk func(bddIdx int) bool
	walk = func(bddIdx int) bool {
		if bddIdx == len(s.order) {
			full := make(Assignment, len(universe))
			for _, v := range universe {
				full[v] = assign[v]
			}
			return yield(full)
		}
		b := s.bdds[s.order[bddIdx]]
		return b.walkPaths(b.root, assign, func() bool {
			return walk(bddIdx + 1)
		})
	}
	walk(0)
}

// walkPaths visits every root-to-Sink path of b, recording each level's
// taken bit into assign for the variable at that level before invoking
// cont, and undoing the assignment afterward (so sibling paths start
// clean). Returns false as soon as cont does, to let Enumerate's caller
// stop early without walking the rest of the diagram.
func (b *BDD) walkPaths(id NodeID, assign Assignment, cont func() bool) bool {
	if id == deadEnd {
		return true
	}
	if id == Sink {
		return cont()
	}
	n := b.arena[id]
	v := b.levelVar(n.level)
	if n.zero != deadEnd {
		assign[v] = false
		if !b.walkPaths(n.zero, assign, cont) {
			delete(assign, v)
			return false
		}
	}
	if n.one != deadEnd {
		assign[v] = true
		if !b.walkPaths(n.one, assign, cont) {
			delete(assign, v)
			return false
		}
	}
	delete(assign, v)
	return true
}

// levelVar returns the single variable driving a solved-form level; it
// panics via InvariantViolation if called on a level whose lhs is not
// exactly one variable, since Enumerate is only meaningful in solved
// form (spec.md §4.2.7's precondition).
func (b *BDD) levelVar(level int) Variable {
	lhs := b.levels[level].LHS
	if len(lhs) != 1 {
		panicInvariant("Enumerate", "level lhs is not a single variable")
	}
	return lhs[0]
}
