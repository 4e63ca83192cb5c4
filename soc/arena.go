// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// arena.go — node allocation, the free list, and the canonicalization
// table. Grounded on gonum-gonum's wiring pattern of hashing a composite
// key before an exact-match fallback (see simple.WeightedUndirectedGraph's
// edge map) adapted here to GF(2) node identity: (level, zero-child,
// one-child) -> NodeID.
//
// Determinism (spec.md §9, §2.2 DOMAIN STACK): canonTable.order is the
// single source of truth for "when was this entry created"; buckets is
// only ever read to narrow a linear scan, never iterated to assign ids.

package soc

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

type canonKey struct {
	level     int32
	zero, one NodeID
}

func (k canonKey) bytes() []byte {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(k.level))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(k.zero))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(k.one))
	return buf[:]
}

type canonEntry struct {
	key canonKey
	id  NodeID
}

// canonTable is an insertion-ordered table of (canonKey -> NodeID)
// accelerated by a BLAKE3 hash bucket index. The order slice alone
// determines iteration order wherever one is needed; buckets exists
// purely to avoid an O(n) scan of order on every lookup.
type canonTable struct {
	order   []canonEntry
	buckets map[[32]byte][]int
}

func newCanonTable() *canonTable {
	return &canonTable{buckets: map[[32]byte][]int{}}
}

func (t *canonTable) lookup(key canonKey) (NodeID, bool) {
	h := blake3.Sum256(key.bytes())
	for _, idx := range t.buckets[h] {
		if t.order[idx].key == key {
			return t.order[idx].id, true
		}
	}
	return 0, false
}

// purgeLevels drops every entry whose key is at one of the given level
// indices, rebuilding order and buckets around the survivors. Used by
// mutators that are about to repopulate a level from scratch, to prevent
// a stale entry from shadowing a freshly-constructed node with the same
// (zero, one) pair but a different semantic meaning.
func (t *canonTable) purgeLevels(levels ...int) *canonTable {
	drop := map[int]bool{}
	for _, l := range levels {
		drop[l] = true
	}
	out := newCanonTable()
	for _, e := range t.order {
		if drop[int(e.key.level)] {
			continue
		}
		out.insert(e.key, e.id)
	}
	return out
}

// purgeCanonLevels replaces b.canon with a copy excluding entries at the
// given level indices.
func (b *BDD) purgeCanonLevels(levels ...int) {
	b.canon = b.canon.purgeLevels(levels...)
}

func (t *canonTable) insert(key canonKey, id NodeID) {
	h := blake3.Sum256(key.bytes())
	t.order = append(t.order, canonEntry{key: key, id: id})
	t.buckets[h] = append(t.buckets[h], len(t.order)-1)
}

// allocNode reuses a freed slot if one exists, else grows the arena. The
// new node is appended to its level's Nodes slice, preserving the
// insertion order that canonicalizeAll and enumeration rely on.
func (b *BDD) allocNode(level int, zero, one NodeID) NodeID {
	var id NodeID
	if n := len(b.free); n > 0 {
		id = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		id = NodeID(len(b.arena))
		b.arena = append(b.arena, node{})
	}
	b.arena[id] = node{zero: zero, one: one, level: level, alive: true}
	b.levels[level].Nodes = append(b.levels[level].Nodes, id)
	return id
}

// freeNode retires id: the slot is cleared and pushed onto the free list
// for reuse by a later allocNode. Callers must already have removed id
// from its level's Nodes slice and from canon (canonicalizeAll rebuilds
// canon wholesale, so ad hoc mutators need not).
func (b *BDD) freeNode(id NodeID) {
	b.arena[id] = node{}
	b.free = append(b.free, id)
}

// removeFromLevel splices id out of levels[level].Nodes.
func (b *BDD) removeFromLevel(level int, id NodeID) {
	nodes := b.levels[level].Nodes
	for i, n := range nodes {
		if n == id {
			b.levels[level].Nodes = append(nodes[:i], nodes[i+1:]...)
			return
		}
	}
}

// getOrCreateNode returns the canonical node for (level, zero, one):
// reuses an existing node with identical children, collapses
// equal-children pairs to the shared child (the standard BDD reduction
// rule — a node with zero==one tests nothing, so it is never
// materialized), and otherwise allocates a fresh node and records it in
// canon.
func (b *BDD) getOrCreateNode(level int, zero, one NodeID) NodeID {
	if zero == one {
		return zero
	}
	key := canonKey{level: int32(level), zero: zero, one: one}
	if id, ok := b.canon.lookup(key); ok {
		return id
	}
	id := b.allocNode(level, zero, one)
	b.canon.insert(key, id)
	return id
}

// redirectRefs replaces every live reference to old (as a child edge or
// as the BDD's root) with new. Used by mutators that retire a node in
// favor of another (absorption's parent re-linking, canonicalizeAll's
// merges).
func (b *BDD) redirectRefs(old, new NodeID) {
	if b.root == old {
		b.root = new
	}
	for i := range b.arena {
		if !b.arena[i].alive {
			continue
		}
		if b.arena[i].zero == old {
			b.arena[i].zero = new
		}
		if b.arena[i].one == old {
			b.arena[i].one = new
		}
	}
}

// canonicalizeAll restores full reducedness bottom-up: deepest level
// first, merging any node whose two children are equal (redirect to the
// shared child) and any two nodes on the same level with identical
// (zero, one) pairs (redirect the duplicate to the survivor). Runs to a
// fixed point, since a merge at a deep level can expose a new merge
// opportunity one level up. canon is rebuilt from scratch afterward so
// stale entries referencing freed ids never leak into later lookups.
func (b *BDD) canonicalizeAll() {
	changed := true
	for changed {
		changed = false
		for lvl := len(b.levels) - 1; lvl >= 0; lvl-- {
			seen := map[[2]NodeID]NodeID{}
			nodes := append([]NodeID(nil), b.levels[lvl].Nodes...)
			kept := nodes[:0]
			for _, id := range nodes {
				n := b.arena[id]
				if !n.alive {
					continue
				}
				if n.zero == n.one {
					b.redirectRefs(id, n.zero)
					b.freeNode(id)
					changed = true
					continue
				}
				key := [2]NodeID{n.zero, n.one}
				if existing, ok := seen[key]; ok {
					b.redirectRefs(id, existing)
					b.freeNode(id)
					changed = true
					continue
				}
				seen[key] = id
				kept = append(kept, id)
			}
			b.levels[lvl].Nodes = kept
		}
	}
	b.rebuildCanon()
	b.collapseDeadEnds()
}

func (b *BDD) rebuildCanon() {
	b.canon = newCanonTable()
	for lvl, l := range b.levels {
		for _, id := range l.Nodes {
			n := b.arena[id]
			b.canon.insert(canonKey{level: int32(lvl), zero: n.zero, one: n.one}, id)
		}
	}
}

// collapseDeadEnds propagates deadEnd upward: a node whose two children
// are both deadEnd contributes no solutions at all, so it is itself
// equivalent to deadEnd (this is exactly the equal-children rule with
// deadEnd as the shared child, handled separately here because deadEnd
// is not a real arena slot and canonicalizeAll only inspects live nodes).
func (b *BDD) collapseDeadEnds() {
	changed := true
	for changed {
		changed = false
		for lvl := len(b.levels) - 1; lvl >= 0; lvl-- {
			nodes := append([]NodeID(nil), b.levels[lvl].Nodes...)
			kept := nodes[:0]
			for _, id := range nodes {
				n := b.arena[id]
				if n.zero == deadEnd && n.one == deadEnd {
					b.redirectRefs(id, deadEnd)
					b.freeNode(id)
					changed = true
					continue
				}
				kept = append(kept, id)
			}
			b.levels[lvl].Nodes = kept
		}
	}
	if b.root == deadEnd {
		b.levels = nil
		b.arena = []node{{}}
		b.free = nil
		b.canon = newCanonTable()
	}
}

// removeLevelAt deletes levels[idx] from the sequence and renumbers every
// live node's level field above idx down by one. Callers must have
// already freed or relocated every node that was on levels[idx].
func (b *BDD) removeLevelAt(idx int) {
	b.levels = append(b.levels[:idx], b.levels[idx+1:]...)
	for i := range b.arena {
		if b.arena[i].alive && b.arena[i].level > idx {
			b.arena[i].level--
		}
	}
}

// insertLevelAt splices a new, empty level into the sequence at idx and
// renumbers every live node at or above idx up by one.
func (b *BDD) insertLevelAt(idx int, lhs LC) {
	for i := range b.arena {
		if b.arena[i].alive && b.arena[i].level >= idx {
			b.arena[i].level++
		}
	}
	b.levels = append(b.levels, Level{})
	copy(b.levels[idx+1:], b.levels[idx:])
	b.levels[idx] = Level{LHS: lhs}
}
