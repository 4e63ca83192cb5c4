// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// types.go — Node, Level, BDD, SoC and the small integer handles
// (spec.md §9 "arena allocation with small integer node handles") that
// replace a pointer graph.

package soc

import "github.com/Simula-UiB/CryptaPath/gf2"

// Variable and LC are re-exported from gf2 so callers never need to
// import both packages for the common case of building a Level's lhs.
type Variable = gf2.Variable
type LC = gf2.LC

// NodeID identifies a node within a single BDD's arena. It is never
// meaningful across two different BDDs.
type NodeID uint32

// Sink is the unique terminal every BDD shares conceptually; reaching it
// along a root-to-sink path means every level's equation was satisfied.
// Sink never belongs to a Level and is never itself allocated from an
// arena slot.
const Sink NodeID = 0

// deadEnd is an unexported sentinel distinct from Sink: a node whose
// children are both deadEnd (or that collapses to deadEnd via
// canonicalization's equal-children rule) marks a sub-diagram that can
// never reach Sink. See SPEC_FULL.md §9.2(c) for why this is kept
// separate from Sink rather than overloading NodeID 0 for both meanings.
const deadEnd NodeID = ^NodeID(0)

// BDDID identifies a BDD within its owning SoC.
type BDDID uint32

// LevelIndex is a position within a BDD's level sequence, 0 being the
// shallowest (the level the root belongs to, when any level exists).
type LevelIndex int

// node is the arena-resident representation of a decision vertex. level
// is redundant with Level.Nodes membership but lets mutators answer
// "what level is this node on" in O(1) without a reverse index.
type node struct {
	zero, one NodeID
	level     int
	alive     bool
}

// Level is an ordered layer inside a BDD: a linear combination and the
// nodes that test it.
type Level struct {
	LHS   LC
	Nodes []NodeID
}

// BDD is an ordered sequence of levels with a unique root and a shared
// Sink. Nodes and levels are owned by the BDD; arena slots are reused via
// a free list so repeated mutation does not grow memory unboundedly
// (spec.md §9 "node slots freed by canonicalization are reused").
type BDD struct {
	id     BDDID
	root   NodeID
	levels []Level
	arena  []node
	free   []NodeID
	canon  *canonTable
}

// ID returns the BDD's identity within its owning SoC.
func (b *BDD) ID() BDDID { return b.id }

// Root returns the current root node.
func (b *BDD) Root() NodeID { return b.root }

// Levels returns the BDD's level sequence. Callers must not mutate the
// returned slice's LHS or Nodes fields; use the mutators in this package.
func (b *BDD) Levels() []Level { return b.levels }

// IsAlwaysTrue reports whether the BDD has collapsed to the vacuous
// always-true diagram (root is Sink, so every assignment is accepted; any
// levels a mutator left behind hold no nodes) — the Lifecycle state
// spec.md §3 says should be removed from the SoC.
func (b *BDD) IsAlwaysTrue() bool {
	return b.root == Sink
}

// IsInconsistent reports whether the BDD has collapsed to the infeasible
// empty diagram (root is the reserved dead-end marker) — SPEC_FULL.md
// §9.2(c)'s realization of spec.md §8's "root equals sink" boundary case.
func (b *BDD) IsInconsistent() bool {
	return b.root == deadEnd
}

// newBDD allocates an empty BDD: zero levels, root == Sink (vacuously
// true), arena slot 0 reserved (never returned by allocNode).
func newBDD(id BDDID) *BDD {
	return &BDD{
		id:    id,
		root:  Sink,
		arena: []node{{}},
		canon: newCanonTable(),
	}
}

// SoC is a System of BDDs: an unordered collection of BDDs over a shared
// variable universe, plus the set of variables protected from Drop.
type SoC struct {
	bdds      map[BDDID]*BDD
	order     []BDDID // insertion order, for deterministic iteration
	nextBDD   BDDID
	protected map[Variable]bool
	// varIndex maps a variable to the set of (bdd, level) pairs whose
	// lhs mentions it; rebuilt wholesale after each structural mutation
	// rather than patched incrementally, trading a little CPU for a lot
	// of implementation simplicity (see DESIGN.md).
	varIndex map[Variable][]varRef
}

type varRef struct {
	BDD   BDDID
	Level LevelIndex
}

// New returns an empty SoC.
func New(opts ...Option) *SoC {
	s := &SoC{
		bdds:      map[BDDID]*BDD{},
		protected: map[Variable]bool{},
		varIndex:  map[Variable][]varRef{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// BDDs returns the SoC's BDDs in insertion order.
func (s *SoC) BDDs() []*BDD {
	out := make([]*BDD, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.bdds[id])
	}
	return out
}

// BDD looks up a BDD by id.
func (s *SoC) BDD(id BDDID) (*BDD, bool) {
	b, ok := s.bdds[id]
	return b, ok
}

// IsProtected reports whether v is in the protected set.
func (s *SoC) IsProtected(v Variable) bool { return s.protected[v] }

// Protect adds v to the protected set; Drop rejects protected variables.
func (s *SoC) Protect(v Variable) { s.protected[v] = true }

// Unprotect removes v from the protected set.
func (s *SoC) Unprotect(v Variable) { delete(s.protected, v) }

// NodeCount returns the total number of live nodes across every BDD in
// the SoC — the quantity solver's memory ceiling watches.
func (s *SoC) NodeCount() int {
	total := 0
	for _, b := range s.bdds {
		for _, lvl := range b.levels {
			total += len(lvl.Nodes)
		}
	}
	return total
}
