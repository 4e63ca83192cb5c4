// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// mutate_absorb.go — spec.md §4.2.2 (single-level absorption) and §4.2.3
// (linear absorption to echelon form).

package soc

import "github.com/Simula-UiB/CryptaPath/gf2"

// AbsorbLevel removes level idx from b when its lhs is a linear
// combination of the other levels' lhs (spec.md §4.2.2). It computes,
// for every node on idx, which of its two out-edges is consistent with
// that dependence and re-links idx's parents directly to the consistent
// child; the opposite edge (an unreachable sub-diagram) is discarded.
//
// Contract: the dependence is checked against levels strictly shallower
// than idx — the ones whose bit, for any given node on idx, is already
// determined by the path taken to reach it (see computeParity). This
// matches spec.md §4.2.3's top-down echelonization and the concrete
// three-level scenario of spec.md §8 item 4; see DESIGN.md.
//
// Returns ErrNotDependent if idx's lhs is independent of the shallower
// levels — callers (solver strategies) are expected to check
// independence themselves before calling, via the same basis.
func (b *BDD) AbsorbLevel(idx int) error {
	if idx < 0 || idx >= len(b.levels) {
		return socErrorf("AbsorbLevel", ErrOutOfRange)
	}
	shallower := make([]gf2.LC, idx)
	for j := 0; j < idx; j++ {
		shallower[j] = b.levels[j].LHS
	}
	used, residual := reduceTrace(shallower, b.levels[idx].LHS)
	if !gf2.IsZero(residual) {
		return socErrorf("AbsorbLevel", ErrNotDependent)
	}

	parity := b.computeParity(used)

	for _, n := range append([]NodeID(nil), b.levels[idx].Nodes...) {
		nd := b.arena[n]
		var kept NodeID
		if parity[n] == 0 {
			kept = nd.zero
		} else {
			kept = nd.one
		}
		b.redirectRefs(n, kept)
		b.removeFromLevel(idx, n)
		b.freeNode(n)
	}

	b.removeLevelAt(idx)
	b.canonicalizeAll()
	return nil
}

// reduceTrace mirrors gf2.Reduce's single ascending-pivot-order pass
// (spec.md §9.2(b)) but also records which basis rows were actually
// XORed in, needed by AbsorbLevel to know which shallower levels
// contribute to idx's dependence. Like gf2.Reduce, it requires basis to
// already be linearly independent with distinct pivots — the invariant
// AbsorbLevel's caller (LinearAbsorb, scanning shallow-to-deep) maintains
// by construction: a level only remains in "shallower" if it was not
// itself absorbed, i.e. was independent of everything before it.
func reduceTrace(basis []gf2.LC, v gf2.LC) (used map[int]bool, residual gf2.LC) {
	type row struct {
		idx int
		lc  gf2.LC
	}
	rows := make([]row, 0, len(basis))
	for i, lc := range basis {
		if !gf2.IsZero(lc) {
			rows = append(rows, row{idx: i, lc: lc})
		}
	}
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[j].lc[0] < rows[i].lc[0] {
				rows[i], rows[j] = rows[j], rows[i]
			}
		}
	}
	used = map[int]bool{}
	residual = v.Clone()
	for _, r := range rows {
		if residual.Contains(r.lc[0]) {
			residual = gf2.Xor(residual, r.lc)
			used[r.idx] = true
		}
	}
	return used, residual
}

// computeParity walks the BDD from the root, tracking the cumulative
// XOR of bits taken at levels in usedLevels (by level index). Because
// the dependence equation holds globally, every root-to-node path
// reaching a given node agrees on this parity; a disagreement indicates
// a malformed BDD and panics with InvariantViolation.
func (b *BDD) computeParity(usedLevels map[int]bool) map[NodeID]int {
	parity := map[NodeID]int{}
	visited := map[NodeID]bool{}
	type frame struct {
		id NodeID
		p  int
	}
	stack := []frame{{b.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.id == Sink || f.id == deadEnd {
			continue
		}
		if visited[f.id] {
			if parity[f.id] != f.p {
				panicInvariant("AbsorbLevel", "conflicting parity reaching a shared node")
			}
			continue
		}
		visited[f.id] = true
		parity[f.id] = f.p
		n := b.arena[f.id]
		p0, p1 := f.p, f.p
		if usedLevels[n.level] {
			p1 ^= 1
		}
		stack = append(stack, frame{n.zero, p0}, frame{n.one, p1})
	}
	return parity
}

// LinearAbsorb repeatedly finds the shallowest level whose lhs is
// dependent on the levels shallower than it and absorbs it, until no
// such level remains — spec.md §4.2.3, driving each BDD to a basis
// (echelon) form. Ties among equally-shallow dependent candidates cannot
// occur (levels are processed strictly by position), so no tie-break is
// needed here; SPEC_FULL.md §9.2(b) records this shallowest-first scan.
func (b *BDD) LinearAbsorb() error {
	for {
		absorbedAny := false
		for idx := 0; idx < len(b.levels); idx++ {
			shallower := make([]gf2.LC, idx)
			for j := 0; j < idx; j++ {
				shallower[j] = b.levels[j].LHS
			}
			if gf2.IsZero(gf2.Reduce(shallower, b.levels[idx].LHS)) && idx > 0 {
				if err := b.AbsorbLevel(idx); err != nil {
					return err
				}
				absorbedAny = true
				break
			}
		}
		if !absorbedAny {
			return nil
		}
	}
}
