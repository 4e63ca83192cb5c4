// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// mutate_join.go — spec.md §4.2.4, product construction join.

package soc

// Join replaces BDDs a and b with a single BDD whose solution set is the
// intersection of theirs (spec.md §4.2.4). The joined level sequence is
// a's levels followed by b's (spec.md's "concatenate level sequences");
// product nodes are built by a synchronized traversal that only starts
// advancing through b once a's side has reached its own terminal,
// matching that concatenation exactly.
//
// Returns ErrInconsistent if the product collapses to the dead-end
// diagram (no root-to-sink path survives) — spec.md §4.2.4's Failure
// case, realized per SPEC_FULL.md §9.2(c).
func (a *BDD) Join(b *BDD) (*BDD, error) {
	out := newBDD(a.id) // caller (SoC.Join) reassigns the id and ownership
	out.levels = make([]Level, 0, len(a.levels)+len(b.levels))
	for _, l := range a.levels {
		out.levels = append(out.levels, Level{LHS: l.LHS.Clone()})
	}
	for _, l := range b.levels {
		out.levels = append(out.levels, Level{LHS: l.LHS.Clone()})
	}

	memo := map[[2]NodeID]NodeID{}
	offsetB := len(a.levels)

	var build func(n1, n2 NodeID) NodeID
	build = func(n1, n2 NodeID) NodeID {
		if n1 == deadEnd || n2 == deadEnd {
			return deadEnd
		}
		if n1 == Sink && n2 == Sink {
			return Sink
		}
		key := [2]NodeID{n1, n2}
		if id, ok := memo[key]; ok {
			return id
		}
		var id NodeID
		if n1 != Sink && n1 != deadEnd {
			an := a.arena[n1]
			z := build(an.zero, n2)
			o := build(an.one, n2)
			id = out.getOrCreateNode(an.level, z, o)
		} else {
			bn := b.arena[n2]
			z := build(n1, bn.zero)
			o := build(n1, bn.one)
			id = out.getOrCreateNode(offsetB+bn.level, z, o)
		}
		memo[key] = id
		return id
	}

	out.root = build(a.root, b.root)
	out.canonicalizeAll()

	if out.root == deadEnd {
		return out, socErrorf("Join", ErrInconsistent)
	}
	return out, nil
}

// Join replaces the two named BDDs in s with their product, returning
// the new BDD's id. If the product is the always-true diagram it is
// removed from s entirely (spec.md §3 Lifecycle); if it is inconsistent
// the SoC is left unchanged and ErrInconsistent is returned — callers
// are expected to treat this as aborting the solve.
func (s *SoC) Join(id1, id2 BDDID) (BDDID, error) {
	b1, ok1 := s.bdds[id1]
	b2, ok2 := s.bdds[id2]
	if !ok1 || !ok2 {
		return 0, socErrorf("Join", ErrOutOfRange)
	}
	product, err := b1.Join(b2)
	if err != nil {
		return 0, err
	}

	delete(s.bdds, id1)
	delete(s.bdds, id2)
	s.order = removeBDDIDs(s.order, id1, id2)

	if product.IsAlwaysTrue() {
		s.rebuildVarIndex()
		return 0, nil
	}

	newID := s.nextBDD
	s.nextBDD++
	product.id = newID
	s.bdds[newID] = product
	s.order = append(s.order, newID)
	s.rebuildVarIndex()
	return newID, nil
}

func removeBDDIDs(order []BDDID, ids ...BDDID) []BDDID {
	drop := map[BDDID]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	out := order[:0]
	for _, id := range order {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}
