// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// mutate_fix.go — spec.md §4.2.6, fixing a variable to a constant value.

package soc

import "github.com/Simula-UiB/CryptaPath/gf2"

// Fix substitutes x := value (a boolean constant) into every level whose
// lhs mentions x (spec.md §4.2.6). Unlike Drop, no level needs to be
// merged with another first: substituting a constant for x only changes
// the level it appears in, not the relationship between levels. For a
// level whose lhs is lhs' xor x, the equation lhs' xor x = taken-bit
// becomes lhs' = taken-bit xor value once x is fixed — taken-bit xor
// value is realized by swapping the level's zero and one children when
// value is true (swapping is a no-op when value is false), after which
// x is simply removed from the lhs.
//
// If lhs' becomes empty, the level is absorbed (spec.md's "if any level
// reduces to lhs = 0 = 1, declare inconsistency"); in this
// implementation's scope a single level's own absorption is always
// internally consistent (the swap above already made the zero edge the
// valid one), so the actual Inconsistency this describes only manifests
// as the whole BDD collapsing to the dead-end diagram once
// canonicalizeAll propagates it — checked by callers via IsInconsistent,
// matching Drop's equivalent note in DESIGN.md.
func (b *BDD) Fix(x Variable, value bool) error {
	for idx := range b.levels {
		lvl := &b.levels[idx]
		if !lvl.LHS.Contains(x) {
			continue
		}
		if value {
			for _, n := range lvl.Nodes {
				b.arena[n].zero, b.arena[n].one = b.arena[n].one, b.arena[n].zero
			}
		}
		newLHS := make(gf2.LC, 0, len(lvl.LHS))
		for _, v := range lvl.LHS {
			if v != x {
				newLHS = append(newLHS, v)
			}
		}
		lvl.LHS = newLHS
	}
	b.canonicalizeAll()

	for idx := 0; idx < len(b.levels); {
		if gf2.IsZero(b.levels[idx].LHS) {
			if err := b.AbsorbLevel(idx); err != nil {
				return socErrorf("Fix", err)
			}
			continue
		}
		idx++
	}
	return nil
}

// Fix is the SoC-level entry point: it applies BDD.Fix to every BDD
// mentioning x, reports ErrInconsistent if any collapses to the dead-end
// diagram, prunes any that became vacuously true, and forgets x from the
// variable index.
func (s *SoC) Fix(x Variable, value bool) error {
	for _, id := range s.order {
		b := s.bdds[id]
		if err := b.Fix(x, value); err != nil {
			return err
		}
		if b.IsInconsistent() {
			return socErrorf("Fix", ErrInconsistent)
		}
	}
	s.pruneAlwaysTrue()
	s.rebuildVarIndex()
	return nil
}
