// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// validate.go — spec.md §8 invariants I1-I4, independently re-checked
// (SPEC_FULL.md §4.2.8 EXPANSION). Not called on the hot path; callers
// (tests, debug builds) invoke Validate after a mutator to catch a
// regression the arena bookkeeping itself would not otherwise surface.

package soc

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Validate checks every BDD in s against I1-I4:
//
//   - I1 reducedness: no node has zero == one, no two nodes on the same
//     level share a (zero, one) pair.
//   - I2 orderedness / LHS-distinctness: levels strictly increase in
//     depth with no repeated lhs, and every edge target is either a
//     terminal or a node at a strictly greater level (cross-checked
//     below with an independent topological sort).
//   - I3 (solution-set-is-intersection) is not directly testable here;
//     its precondition — that Join's memoized product traversal only
//     ever consults live nodes — is covered by Join's own tests instead.
//   - I4 variable-index agreement: varIndex exactly mirrors which
//     (BDD, level) pairs mention each variable.
func Validate(s *SoC) error {
	for _, id := range s.order {
		b := s.bdds[id]
		if err := validateBDD(b); err != nil {
			return fmt.Errorf("bdd %d: %w", id, err)
		}
	}
	return validateVarIndex(s)
}

func validateBDD(b *BDD) error {
	seenLHS := map[string]bool{}
	for lvl, l := range b.levels {
		key := lhsKey(l.LHS)
		if seenLHS[key] {
			return socErrorf("Validate", ErrMalformedInput)
		}
		seenLHS[key] = true

		pairs := map[[2]NodeID]bool{}
		for _, n := range l.Nodes {
			nd := b.arena[n]
			if nd.zero == nd.one {
				return socErrorf("Validate", ErrMalformedInput)
			}
			key := [2]NodeID{nd.zero, nd.one}
			if pairs[key] {
				return socErrorf("Validate", ErrMalformedInput)
			}
			pairs[key] = true
			if err := checkEdgeTarget(b, nd.zero, lvl); err != nil {
				return err
			}
			if err := checkEdgeTarget(b, nd.one, lvl); err != nil {
				return err
			}
		}
	}
	return validateOrdering(b)
}

func checkEdgeTarget(b *BDD, target NodeID, fromLevel int) error {
	if target == Sink || target == deadEnd {
		return nil
	}
	if b.arena[target].level <= fromLevel {
		return socErrorf("Validate", ErrMalformedInput)
	}
	return nil
}

// validateOrdering builds a throwaway directed graph with one vertex per
// live node plus a vertex for Sink, an edge per (zero, one) child
// reference, and confirms topo.Sort finds it acyclic — an independent
// check of strict descent that does not reuse any of the arena's own
// level-index bookkeeping.
func validateOrdering(b *BDD) error {
	g := simple.NewDirectedGraph()
	g.AddNode(simple.Node(int64(Sink)))
	for id, n := range b.arena {
		if !n.alive {
			continue
		}
		g.AddNode(simple.Node(int64(id)))
	}
	for id, n := range b.arena {
		if !n.alive {
			continue
		}
		for _, child := range []NodeID{n.zero, n.one} {
			if child == deadEnd {
				continue
			}
			if g.Node(int64(child)) == nil {
				g.AddNode(simple.Node(int64(child)))
			}
			g.SetEdge(g.NewEdge(simple.Node(int64(id)), simple.Node(int64(child))))
		}
	}
	if _, err := topo.Sort(g); err != nil {
		return socErrorf("Validate", ErrMalformedInput)
	}
	return nil
}

func validateVarIndex(s *SoC) error {
	want := map[Variable]map[varRef]bool{}
	for _, id := range s.order {
		b := s.bdds[id]
		for li, lvl := range b.levels {
			for _, v := range lvl.LHS {
				if want[v] == nil {
					want[v] = map[varRef]bool{}
				}
				want[v][varRef{BDD: id, Level: LevelIndex(li)}] = true
			}
		}
	}
	if len(want) != len(s.varIndex) {
		return socErrorf("Validate", ErrMalformedInput)
	}
	for v, refs := range s.varIndex {
		wantRefs := want[v]
		if len(wantRefs) != len(refs) {
			return socErrorf("Validate", ErrMalformedInput)
		}
		for _, r := range refs {
			if !wantRefs[r] {
				return socErrorf("Validate", ErrMalformedInput)
			}
		}
	}
	return nil
}

func lhsKey(lhs LC) string {
	b := make([]byte, 0, 4*len(lhs))
	for _, v := range lhs {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return string(b)
}
