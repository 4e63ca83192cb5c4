// SPDX-License-Identifier: MIT
// Package: CryptaPath/format
//
// Package format implements spec.md §6.2's line-oriented exchange format
// for an SoC, as a thin textual codec driven entirely through soc's
// public model-supplier surface (soc.AppendBDD/soc.NewBDD, soc.BDD.Levels,
// soc.BDD.Children) — it never reaches into soc's unexported fields.
//
// Grammar, one BDD chunk per line triple:
//
//	<num_unique_vars>
//	<num_bdds>
//	<bdd_id> <num_levels>
//	<lhs>:<rhs>|<lhs>:<rhs>|…|<lhs>:<rhs>|
//	---
//
// repeated num_bdds times, where <lhs> is "v1+v2+…+vk" (empty for the
// terminal level) and <rhs> is a comma-separated list of node
// descriptors "(id;zero_target,one_target)". The last level in every
// chunk is a synthetic terminal level — empty lhs, one node whose two
// targets are both the literal "0" — that exists only so a real level's
// edge can reference the terminal node's own declared id to mean
// "reaches the sink". "0" as a target anywhere else means the reserved
// no-edge marker (spec.md's "unreachable stub"); it is never ambiguous
// with the sink, since the sink is always an explicit node id, never 0
// itself (SPEC_FULL.md §9.2(c)).
//
// Round-trip: Parse(Serialize(s)) reproduces s's solution-enumeration
// behavior exactly (spec.md §8 E5), though node ids are freely
// renumbered — Serialize always assigns ids in level-major order
// starting at 1, regardless of what ids a prior Parse happened to see.
package format
