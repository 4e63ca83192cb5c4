// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// soc.go — SoC-level orchestration: inserting, removing, cloning BDDs,
// and maintaining the variable index mutators consult (spec.md §3
// Lifecycle, §9 "variable index" design note).

package soc

// AppendBDD adds b to s under a freshly assigned id and returns it.
// Returns ErrInconsistent without modifying s if b has already collapsed
// to the dead-end diagram (SPEC_FULL.md §9.2(c)); a BDD that has
// collapsed to the always-true diagram is accepted but immediately
// dropped again, matching spec.md §3's "vacuously-true BDDs are removed"
// Lifecycle rule. Rejects ill-formed input per spec.md §6.1 ("the SoC
// verifies invariants on insertion") using the same structural checks
// Validate runs.
func (s *SoC) AppendBDD(b *BDD) (BDDID, error) {
	if b.IsInconsistent() {
		return 0, socErrorf("AppendBDD", ErrInconsistent)
	}
	if b.IsAlwaysTrue() {
		return 0, nil
	}
	if err := validateBDD(b); err != nil {
		return 0, err
	}
	id := s.nextBDD
	s.nextBDD++
	b.id = id
	s.bdds[id] = b
	s.order = append(s.order, id)
	s.rebuildVarIndex()
	return id, nil
}

// AppendLevels builds a BDD from a level/node-table description and
// appends it to s in one step — the literal shape of spec.md §6.1's
// "append_bdd(levels)" model-supplier entry point.
func (s *SoC) AppendLevels(levels []LevelSpec) (BDDID, error) {
	b, err := NewBDD(levels)
	if err != nil {
		return 0, err
	}
	return s.AppendBDD(b)
}

// RemoveBDD deletes id from s unconditionally. Callers that want
// "remove only if vacuous" should check IsAlwaysTrue themselves first.
func (s *SoC) RemoveBDD(id BDDID) {
	if _, ok := s.bdds[id]; !ok {
		return
	}
	delete(s.bdds, id)
	s.order = removeBDDIDs(s.order, id)
	s.rebuildVarIndex()
}

// pruneAlwaysTrue removes every BDD that has collapsed to the vacuous
// always-true diagram, per spec.md §3's Lifecycle rule. Mutators that can
// produce this state (Drop, Fix) call it before rebuilding the variable
// index.
func (s *SoC) pruneAlwaysTrue() {
	var toRemove []BDDID
	for _, id := range s.order {
		if s.bdds[id].IsAlwaysTrue() {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		delete(s.bdds, id)
	}
	if len(toRemove) > 0 {
		s.order = removeBDDIDs(s.order, toRemove...)
	}
}

// rebuildVarIndex recomputes varIndex from scratch by scanning every
// BDD's levels in insertion order. Traded for incremental maintenance
// deliberately: every mutator in this package already rewrites a BDD's
// levels wholesale (swap exchanges two, absorb removes one, join
// concatenates all), so a full rescan after each is simpler to keep
// correct than threading index updates through every one of them.
func (s *SoC) rebuildVarIndex() {
	idx := make(map[Variable][]varRef, len(s.varIndex))
	for _, id := range s.order {
		b := s.bdds[id]
		for li, lvl := range b.levels {
			for _, v := range lvl.LHS {
				idx[v] = append(idx[v], varRef{BDD: id, Level: LevelIndex(li)})
			}
		}
	}
	s.varIndex = idx
}

// Variables returns every variable appearing in any BDD's lhs, in no
// particular order.
func (s *SoC) Variables() []Variable {
	out := make([]Variable, 0, len(s.varIndex))
	for v := range s.varIndex {
		out = append(out, v)
	}
	return out
}

// BDDIDs returns the ids of every BDD currently in s, in insertion order.
func (s *SoC) BDDIDs() []BDDID {
	return append([]BDDID(nil), s.order...)
}

// VariableLevelCount returns the number of (BDD, level) pairs whose lhs
// mentions v — the "appears in fewest levels" quantity solver's
// fewest-levels drop heuristic ranks candidates by.
func (s *SoC) VariableLevelCount(v Variable) int {
	return len(s.varIndex[v])
}

// Clone returns a deep copy of b: a new arena, a new canon table, and
// level/node slices that share no backing array with b's.
func (b *BDD) Clone() *BDD {
	out := &BDD{
		id:    b.id,
		root:  b.root,
		arena: append([]node(nil), b.arena...),
		free:  append([]NodeID(nil), b.free...),
	}
	out.levels = make([]Level, len(b.levels))
	for i, l := range b.levels {
		out.levels[i] = Level{
			LHS:   l.LHS.Clone(),
			Nodes: append([]NodeID(nil), l.Nodes...),
		}
	}
	out.rebuildCanon()
	return out
}

// Clone returns a deep copy of s, including every BDD it owns. Mutating
// the clone never affects s (spec.md §9's "cloning the whole SoC" design
// note for speculative solver branches, e.g. trying two Drop candidates
// and keeping whichever yields fewer nodes).
func (s *SoC) Clone() *SoC {
	out := &SoC{
		bdds:      make(map[BDDID]*BDD, len(s.bdds)),
		order:     append([]BDDID(nil), s.order...),
		nextBDD:   s.nextBDD,
		protected: make(map[Variable]bool, len(s.protected)),
		varIndex:  make(map[Variable][]varRef, len(s.varIndex)),
	}
	for id, b := range s.bdds {
		out.bdds[id] = b.Clone()
	}
	for v := range s.protected {
		out.protected[v] = true
	}
	for v, refs := range s.varIndex {
		out.varIndex[v] = append([]varRef(nil), refs...)
	}
	return out
}
