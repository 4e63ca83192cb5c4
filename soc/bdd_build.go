// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// bdd_build.go — the model-supplier construction path (spec.md §6.1
// "append_bdd(levels) where levels is an ordered list of (lhs,
// node_table)"). EdgeRef/NodeSpec/LevelSpec are the exported, symbolic
// node-table shape a model supplier (or the format or builder packages)
// fills in without ever touching an arena NodeID directly.

package soc

// EdgeKind tags what an EdgeRef points at.
type EdgeKind int

const (
	// EdgeSink targets the shared success terminal.
	EdgeSink EdgeKind = iota
	// EdgeNone marks "no edge": the branch is unreachable (spec.md §6.2's
	// "0 as a target denotes no edge"; see SPEC_FULL.md §9.2(c)).
	EdgeNone
	// EdgeNode targets a node at a strictly deeper level, identified by
	// that level's position in the LevelSpec slice and the node's
	// position within that level's Nodes slice.
	EdgeNode
)

// EdgeRef is a symbolic edge target used only while building a BDD; it
// is resolved to a concrete NodeID by NewBDD.
type EdgeRef struct {
	Kind  EdgeKind
	Level int
	Index int
}

// RefSink is the symbolic terminal edge.
var RefSink = EdgeRef{Kind: EdgeSink}

// RefNone is the symbolic "no edge" target.
var RefNone = EdgeRef{Kind: EdgeNone}

// RefNode builds a symbolic reference to a node at a deeper level.
func RefNode(level, index int) EdgeRef {
	return EdgeRef{Kind: EdgeNode, Level: level, Index: index}
}

// NodeSpec describes one node's two outgoing edges.
type NodeSpec struct {
	Zero, One EdgeRef
}

// LevelSpec describes one level: its lhs and the node table testing it,
// in the order spec.md §6.1 calls a model supplier's unit of input.
type LevelSpec struct {
	LHS   LC
	Nodes []NodeSpec
}

// NewBDD builds a BDD from an ordered level/node-table description. The
// root is conventionally the first node of the first level (index 0 of
// levels[0].Nodes); an empty levels slice yields the always-true BDD.
// Returns ErrMalformedInput if any edge references a level that is not
// strictly deeper than the one it originates from, or an out-of-range
// node index.
func NewBDD(levels []LevelSpec) (*BDD, error) {
	b := newBDD(0)
	if len(levels) == 0 {
		return b, nil
	}
	b.levels = make([]Level, len(levels))
	nodeIDs := make([][]NodeID, len(levels))

	for lvl := len(levels) - 1; lvl >= 0; lvl-- {
		spec := levels[lvl]
		b.levels[lvl].LHS = spec.LHS.Clone()
		nodeIDs[lvl] = make([]NodeID, len(spec.Nodes))
		for i, ns := range spec.Nodes {
			z, err := resolveEdge(ns.Zero, lvl, nodeIDs)
			if err != nil {
				return nil, err
			}
			o, err := resolveEdge(ns.One, lvl, nodeIDs)
			if err != nil {
				return nil, err
			}
			nodeIDs[lvl][i] = b.allocNode(lvl, z, o)
		}
	}

	if len(nodeIDs[0]) == 0 {
		return nil, socErrorf("NewBDD", ErrMalformedInput)
	}
	b.root = nodeIDs[0][0]

	// Reject non-reduced model-supplier input (duplicate (zero, one)
	// pairs at a level, zero == one) before canonicalization would
	// silently repair it out from under the check — spec.md §6.1's
	// "verifies invariants on insertion and rejects ill-formed input"
	// only holds if validation sees the caller's raw structure.
	if err := validateBDD(b); err != nil {
		return nil, err
	}
	b.canonicalizeAll()
	return b, nil
}

func resolveEdge(ref EdgeRef, fromLevel int, nodeIDs [][]NodeID) (NodeID, error) {
	switch ref.Kind {
	case EdgeSink:
		return Sink, nil
	case EdgeNone:
		return deadEnd, nil
	case EdgeNode:
		if ref.Level <= fromLevel || ref.Level >= len(nodeIDs) {
			return 0, socErrorf("NewBDD", ErrOutOfRange)
		}
		if ref.Index < 0 || ref.Index >= len(nodeIDs[ref.Level]) {
			return 0, socErrorf("NewBDD", ErrOutOfRange)
		}
		return nodeIDs[ref.Level][ref.Index], nil
	default:
		return 0, socErrorf("NewBDD", ErrMalformedInput)
	}
}
