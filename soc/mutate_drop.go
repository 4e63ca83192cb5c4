// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// mutate_drop.go — spec.md §4.2.5, existential projection of a variable.

package soc

import "github.com/Simula-UiB/CryptaPath/gf2"

// Drop projects x out of b's solution set (spec.md §4.2.5): the result
// admits assignment A over the remaining variables iff some value of x
// made the original system satisfiable under A. If x appears in no
// level, Drop is a no-op.
//
// Algorithm: every level but the shallowest occurrence ("anchor") is
// first combined with the anchor via combineAdjacentXOR, cancelling x
// out of it (both contain x, so XOR-ing with the anchor removes it —
// a standard row operation that preserves the system's solution set).
// If the anchor's lhs still mentions other variables, isolateVariable
// splits it into a "rest" level and a lone "x" level. That lone level is
// then removed by OR-projecting each of its nodes' two children — the
// node's zero-child is what's reachable when x=0, its one-child what's
// reachable when x=1, and "x exists such that..." is exactly their
// disjunction (orNodes), not a single forced choice between them.
func (b *BDD) Drop(x Variable) error {
	var withX []int
	for idx, l := range b.levels {
		if l.LHS.Contains(x) {
			withX = append(withX, idx)
		}
	}
	if len(withX) == 0 {
		return nil
	}

	anchor := withX[0]
	for _, idx := range withX[1:] {
		if err := b.combineAdjacentXOR(anchor, idx); err != nil {
			return err
		}
	}

	xLevel := anchor
	rest := make(gf2.LC, 0, len(b.levels[anchor].LHS))
	for _, v := range b.levels[anchor].LHS {
		if v != x {
			rest = append(rest, v)
		}
	}
	if len(rest) > 0 {
		b.isolateVariable(anchor, x, rest)
		xLevel = anchor + 1
	}

	b.orProjectLevel(xLevel)
	return nil
}

// Drop is the SoC-level entry point: it rejects protected variables and
// applies BDD.Drop to every BDD that mentions x, then forgets x from the
// variable index.
func (s *SoC) Drop(x Variable) error {
	if s.protected[x] {
		return socErrorf("Drop", ErrProtectedDrop)
	}
	for _, id := range s.order {
		b := s.bdds[id]
		if err := b.Drop(x); err != nil {
			return err
		}
		if b.IsInconsistent() {
			return socErrorf("Drop", ErrInconsistent)
		}
	}
	s.pruneAlwaysTrue()
	s.rebuildVarIndex()
	return nil
}

// isolateVariable splits level idx (whose lhs is rest xor {x}) into two
// adjacent levels: idx keeps testing rest, and a new level at idx+1
// tests x alone. For an original node p with children p0 (old bit 0)
// and p1 (old bit 1), the new rest-level node needs: when rest's bit is
// 0, continue to an x-test node with children (p0, p1) (x=0 gives old
// bit 0, x=1 gives old bit 1); when rest's bit is 1, continue to an
// x-test node with children (p1, p0) (the roles invert, since
// old-bit = rest-bit xor x-bit). This is the same two-layer
// reconstruction Swap uses, applied to a brand new level instead of an
// existing one.
func (b *BDD) isolateVariable(idx int, x Variable, rest gf2.LC) {
	oldNodes := append([]NodeID(nil), b.levels[idx].Nodes...)
	oldChildren := make(map[NodeID][2]NodeID, len(oldNodes))
	for _, p := range oldNodes {
		n := b.arena[p]
		oldChildren[p] = [2]NodeID{n.zero, n.one}
	}

	b.insertLevelAt(idx+1, gf2.NewLC(x))

	for _, p := range oldNodes {
		p0, p1 := oldChildren[p][0], oldChildren[p][1]
		nodeR0 := b.getOrCreateNode(idx+1, p0, p1)
		nodeR1 := b.getOrCreateNode(idx+1, p1, p0)
		b.arena[p].zero = nodeR0
		b.arena[p].one = nodeR1
	}

	b.levels[idx].LHS = rest
	b.canonicalizeAll()
}

// orProjectLevel removes level idx, which must test a single variable,
// by replacing every reference to one of its nodes with the disjunction
// of that node's two children — the value of the level's sole variable
// no longer matters once it is projected away.
func (b *BDD) orProjectLevel(idx int) {
	memo := map[[2]NodeID]NodeID{}
	for _, n := range append([]NodeID(nil), b.levels[idx].Nodes...) {
		nd := b.arena[n]
		projected := b.orNodes(nd.zero, nd.one, memo)
		b.redirectRefs(n, projected)
		b.removeFromLevel(idx, n)
		b.freeNode(n)
	}
	b.removeLevelAt(idx)
	b.canonicalizeAll()
}

// orNodes computes the disjunction of a and c within the same BDD (they
// necessarily share the same level sequence below whichever of the two
// is shallower), memoized per call. Sink wins immediately (OR succeeds
// if either side reaches it); deadEnd defers entirely to the other side;
// otherwise the shallower of the two levels is tested, with childAt
// supplying a don't-care pair for whichever side doesn't test it.
func (b *BDD) orNodes(a, c NodeID, memo map[[2]NodeID]NodeID) NodeID {
	if a == Sink || c == Sink {
		return Sink
	}
	if a == deadEnd {
		return c
	}
	if c == deadEnd {
		return a
	}
	key := [2]NodeID{a, c}
	if id, ok := memo[key]; ok {
		return id
	}
	lvl := b.arena[a].level
	if cl := b.arena[c].level; cl < lvl {
		lvl = cl
	}
	az, ao := b.childAt(a, lvl)
	cz, co := b.childAt(c, lvl)
	z := b.orNodes(az, cz, memo)
	o := b.orNodes(ao, co, memo)
	id := b.getOrCreateNode(lvl, z, o)
	memo[key] = id
	return id
}

// combineAdjacentXOR replaces level j's lhs with levels[i].LHS xor
// levels[j].LHS (i < j), leaving level i's lhs and nodes untouched, and
// restructuring the nodes strictly between i and j so the solution set
// is preserved. Every node in that range may need to be duplicated once
// per incoming bit of level i's test (memoized by (nodeID, bit)), since
// a shared node there can be reached under either bit; a node exactly on
// level j instead has its two children swapped when the incoming bit is
// 1, encoding "new_lhs = i_bit xor old_lhs" directly; nodes strictly
// deeper than j are shared unchanged, since level i's bit has already
// been fully accounted for by the time a level-j node is reached.
//
// Contract: assumes no path from a level-i node skips level j entirely
// by a long edge that bypasses it from shallower than j — the same
// no-skip-across-the-boundary scoping Swap documents; see DESIGN.md.
func (b *BDD) combineAdjacentXOR(i, j int) error {
	if i < 0 || j >= len(b.levels) || i >= j {
		return socErrorf("combineAdjacentXOR", ErrOutOfRange)
	}

	type memoKey struct {
		id  NodeID
		bit int
	}
	memo := map[memoKey]NodeID{}

	var build func(id NodeID, bit int) NodeID
	build = func(id NodeID, bit int) NodeID {
		if id == Sink || id == deadEnd {
			return id
		}
		n := b.arena[id]
		if n.level > j {
			return id
		}
		if n.level == j {
			z, o := n.zero, n.one
			if bit == 1 {
				z, o = o, z
			}
			return b.getOrCreateNode(j, z, o)
		}
		key := memoKey{id, bit}
		if cached, ok := memo[key]; ok {
			return cached
		}
		z := build(n.zero, bit)
		o := build(n.one, bit)
		newID := b.getOrCreateNode(n.level, z, o)
		memo[key] = newID
		return newID
	}

	for _, p := range append([]NodeID(nil), b.levels[i].Nodes...) {
		pn := b.arena[p]
		newZero := build(pn.zero, 0)
		newOne := build(pn.one, 1)
		b.arena[p].zero = newZero
		b.arena[p].one = newOne
	}

	b.levels[j].LHS = gf2.Xor(b.levels[i].LHS, b.levels[j].LHS)
	b.canonicalizeAll()
	return nil
}
