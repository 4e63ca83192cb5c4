// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// mutate_swap.go — spec.md §4.2.1, adjacent level swap.

package soc

// childAt expands a node reference as seen from level idx: if id is a
// real node on exactly that level, its actual children are returned; if
// id is Sink, deadEnd, or a node strictly deeper than idx (a long edge
// that skips idx), both "children" are id itself — the standard way a
// reduced BDD models "this level doesn't matter here" (spec.md's strict-
// descent Node definition permits an edge to skip levels; Swap's
// documented contract only reconstructs the two levels actually being
// exchanged, so a skip past idx is treated as a don't-care rather than
// rebuilt — see DESIGN.md for the scoping rationale).
func (b *BDD) childAt(id NodeID, idx int) (zero, one NodeID) {
	if id == Sink || id == deadEnd {
		return id, id
	}
	n := b.arena[id]
	if n.level == idx {
		return n.zero, n.one
	}
	return id, id
}

// Swap exchanges the content of adjacent levels i and i+1: level i comes
// to hold level (i+1)'s lhs and vice versa, preserving the BDD's
// solution set exactly (spec.md §4.2.1). Swap always succeeds.
//
// Contract: 0 <= i < i+1 < len(b.Levels()). Assumes no node at a level
// shallower than i references a node currently at level i+1 directly
// (i.e. no skip edge crosses the swap boundary from outside) — every
// reference into level i+1 originates from level i itself. This matches
// the BDDs AppendBDD, Join, Drop and Fix actually produce; see DESIGN.md.
//
// Determinism: nodes are processed in each level's insertion order;
// getOrCreateNode's canon lookups make the result independent of that
// order regardless.
func (b *BDD) Swap(i int) error {
	if i < 0 || i+1 >= len(b.levels) {
		return socErrorf("Swap", ErrOutOfRange)
	}
	oldINodes := append([]NodeID(nil), b.levels[i].Nodes...)
	oldJNodes := append([]NodeID(nil), b.levels[i+1].Nodes...)
	oldILHS, oldJLHS := b.levels[i].LHS, b.levels[i+1].LHS

	// Snapshot old children before anything is freed; read-only from here
	// until the explicit freeNode loop below.
	oldChildren := make(map[NodeID][2]NodeID, len(oldINodes))
	for _, u := range oldINodes {
		n := b.arena[u]
		oldChildren[u] = [2]NodeID{n.zero, n.one}
	}

	// Purge stale canon entries at these two positions and clear their
	// Nodes lists so getOrCreateNode starts both levels fresh: without
	// this, a coincidental (zero,one) collision with an old, soon-to-be-
	// freed node at the same level index would return the wrong id.
	b.purgeCanonLevels(i, i+1)
	b.levels[i].Nodes = nil
	b.levels[i+1].Nodes = nil

	type rewrite struct{ old, new NodeID }
	var rewrites []rewrite

	for _, u := range oldINodes {
		f0, f1 := oldChildren[u][0], oldChildren[u][1]
		f0z, f0o := b.childAt(f0, i+1)
		f1z, f1o := b.childAt(f1, i+1)

		a := b.getOrCreateNode(i+1, f0z, f1z) // new level i+1: old lhs_i, selected when old lhs_{i+1}=0
		c := b.getOrCreateNode(i+1, f0o, f1o) // selected when old lhs_{i+1}=1
		uPrime := b.getOrCreateNode(i, a, c)

		rewrites = append(rewrites, rewrite{old: u, new: uPrime})
	}

	b.levels[i].LHS = oldJLHS
	b.levels[i+1].LHS = oldILHS

	for _, u := range oldINodes {
		b.freeNode(u)
	}
	for _, w := range oldJNodes {
		b.freeNode(w)
	}

	for _, rw := range rewrites {
		b.redirectRefs(rw.old, rw.new)
	}

	b.canonicalizeAll()
	return nil
}
