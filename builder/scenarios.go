// SPDX-License-Identifier: MIT
// Package: CryptaPath/builder
//
// scenarios.go — the concrete-scenario constructors of spec.md §8,
// built purely against soc's model-supplier surface (soc.NewBDD,
// soc.RefSink/RefNone/RefNode), mirroring the validate-then-assemble
// shape of the teacher's topology constructors.

package builder

import (
	"math/rand"

	"github.com/Simula-UiB/CryptaPath/gf2"
	"github.com/Simula-UiB/CryptaPath/soc"
)

// SingleXORConstraint returns a Constructor building spec.md §8 scenario
// 1: one BDD with levels lhs=[v1,v2] and lhs=[v3] whose accepted paths
// are exactly those with v1⊕v2=v3. Variable ids are 1,2,3 shifted by
// cfg.variableOffset.
func SingleXORConstraint() Constructor {
	return func(s *soc.SoC, cfg scenarioConfig) error {
		off := cfg.variableOffset
		v1, v2, v3 := off+1, off+2, off+3

		b, err := soc.NewBDD([]soc.LevelSpec{
			{
				LHS: gf2.NewLC(v1, v2),
				Nodes: []soc.NodeSpec{
					{Zero: soc.RefNode(1, 0), One: soc.RefNode(1, 1)},
				},
			},
			{
				LHS: gf2.NewLC(v3),
				Nodes: []soc.NodeSpec{
					{Zero: soc.RefSink, One: soc.RefNone}, // reached when v1⊕v2=0: accept only v3=0
					{Zero: soc.RefNone, One: soc.RefSink}, // reached when v1⊕v2=1: accept only v3=1
				},
			},
		})
		if err != nil {
			return builderErrorf(MethodSingleXORConstraint, "NewBDD: %w", err)
		}
		if _, err := s.AppendBDD(b); err != nil {
			return builderErrorf(MethodSingleXORConstraint, "AppendBDD: %w", err)
		}
		return nil
	}
}

// InconsistentPair returns a Constructor building spec.md §8 scenario 2:
// two single-level BDDs sharing one variable, one forcing it to 0 and
// the other to 1. Joining them must report Inconsistency.
func InconsistentPair() Constructor {
	return func(s *soc.SoC, cfg scenarioConfig) error {
		v := cfg.variableOffset + 1

		forced0, err := soc.NewBDD([]soc.LevelSpec{
			{LHS: gf2.NewLC(v), Nodes: []soc.NodeSpec{{Zero: soc.RefSink, One: soc.RefNone}}},
		})
		if err != nil {
			return builderErrorf(MethodInconsistentPair, "NewBDD(forces 0): %w", err)
		}
		forced1, err := soc.NewBDD([]soc.LevelSpec{
			{LHS: gf2.NewLC(v), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefSink}}},
		})
		if err != nil {
			return builderErrorf(MethodInconsistentPair, "NewBDD(forces 1): %w", err)
		}

		if _, err := s.AppendBDD(forced0); err != nil {
			return builderErrorf(MethodInconsistentPair, "AppendBDD(forces 0): %w", err)
		}
		if _, err := s.AppendBDD(forced1); err != nil {
			return builderErrorf(MethodInconsistentPair, "AppendBDD(forces 1): %w", err)
		}
		return nil
	}
}

// Chain returns a Constructor building spec.md §8 scenario 4: a
// three-level BDD with lhses [v1,v2], [v2,v3], [v1,v3] that accepts
// exactly the assignments with v1⊕v2=v2⊕v3 (equivalently v1=v3). The
// third level's lhs is the GF(2) sum of the first two, so its test
// outcome is already implied by them — a dependent level that absorption
// must fold away, reducing the BDD to two levels while preserving all
// four accepted triples.
func Chain() Constructor {
	return func(s *soc.SoC, cfg scenarioConfig) error {
		off := cfg.variableOffset
		v1, v2, v3 := off+1, off+2, off+3

		b, err := soc.NewBDD([]soc.LevelSpec{
			{
				LHS: gf2.NewLC(v1, v2),
				Nodes: []soc.NodeSpec{
					{Zero: soc.RefNode(1, 0), One: soc.RefNode(1, 1)}, // bit1=0 -> A, bit1=1 -> B
				},
			},
			{
				LHS: gf2.NewLC(v2, v3),
				Nodes: []soc.NodeSpec{
					{Zero: soc.RefNode(2, 0), One: soc.RefNone}, // A: bit1=0, only bit2=0 matches -> P
					{Zero: soc.RefNone, One: soc.RefNode(2, 0)}, // B: bit1=1, only bit2=1 matches -> P
				},
			},
			{
				LHS: gf2.NewLC(v1, v3),
				Nodes: []soc.NodeSpec{
					{Zero: soc.RefSink, One: soc.RefNone}, // P: bits matched, bit3 forced 0
				},
			},
		})
		if err != nil {
			return builderErrorf(MethodChain, "NewBDD: %w", err)
		}
		if _, err := s.AppendBDD(b); err != nil {
			return builderErrorf(MethodChain, "AppendBDD: %w", err)
		}
		return nil
	}
}

// RandomBDD returns a Constructor building spec.md §8 scenario 3: a
// random BDD of numLevels levels distributing totalNodes nodes across
// them, for swap-involution and serialization round-trip property
// tests. Requires cfg.rng != nil (WithSeed/WithRand).
//
// Each level tests one fresh variable (keeping I2's pairwise-distinct
// lhs requirement trivially true), and every node's two edges are drawn
// independently and uniformly among "no edge", "sink", or a node at a
// randomly chosen strictly deeper level — mirroring RandomSparse's
// independent-Bernoulli-trial edge sampling. soc.NewBDD rejects a node
// whose two edges coincide and two nodes on one level with the same
// (zero, one) pair, so such a draw is discarded and redrawn; a node that
// finds no fresh pair within maxNodeDraws draws (as on a last level
// asked to hold more than two nodes) fails with ErrConstructFailed.
func RandomBDD(numLevels, totalNodes int) Constructor {
	const maxNodeDraws = 1000
	return func(s *soc.SoC, cfg scenarioConfig) error {
		if numLevels < MinRandomLevels {
			return builderErrorf(MethodRandomBDD, "numLevels=%d < min=%d: %w", numLevels, MinRandomLevels, ErrTooFewLevels)
		}
		if totalNodes < numLevels*MinRandomNodesPerLevel {
			return builderErrorf(MethodRandomBDD, "totalNodes=%d too small for %d levels: %w", totalNodes, numLevels, ErrTooFewLevels)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomBDD, "rng is required: %w", ErrNeedRandSource)
		}

		nodesPerLevel := distributeNodes(numLevels, totalNodes)
		off := cfg.variableOffset

		levels := make([]soc.LevelSpec, numLevels)
		for i := 0; i < numLevels; i++ {
			levels[i].LHS = gf2.NewLC(off + gf2.Variable(i+1))
			levels[i].Nodes = make([]soc.NodeSpec, nodesPerLevel[i])
			used := map[soc.NodeSpec]bool{}
			for n := 0; n < nodesPerLevel[i]; n++ {
				for attempt := 0; ; attempt++ {
					if attempt == maxNodeDraws {
						return builderErrorf(MethodRandomBDD, "level %d: %w", i, ErrConstructFailed)
					}
					ns := soc.NodeSpec{
						Zero: randomEdge(cfg.rng, i, numLevels, nodesPerLevel),
						One:  randomEdge(cfg.rng, i, numLevels, nodesPerLevel),
					}
					if ns.Zero != ns.One && !used[ns] {
						used[ns] = true
						levels[i].Nodes[n] = ns
						break
					}
				}
			}
		}

		b, err := soc.NewBDD(levels)
		if err != nil {
			return builderErrorf(MethodRandomBDD, "NewBDD: %w", ErrConstructFailed)
		}
		if _, err := s.AppendBDD(b); err != nil {
			return builderErrorf(MethodRandomBDD, "AppendBDD: %w", err)
		}
		return nil
	}
}

// distributeNodes spreads totalNodes across numLevels levels, each
// getting at least MinRandomNodesPerLevel, with any remainder assigned
// to the earliest levels.
func distributeNodes(numLevels, totalNodes int) []int {
	out := make([]int, numLevels)
	base := totalNodes / numLevels
	remainder := totalNodes % numLevels
	for i := range out {
		out[i] = base
		if i < remainder {
			out[i]++
		}
	}
	return out
}

// randomEdge draws one of RefNone, RefSink, or a reference to a node at
// a uniformly chosen strictly deeper level, each with probability 1/3
// (the last level excludes the "deeper level" option since none exists).
func randomEdge(rng *rand.Rand, level, numLevels int, nodesPerLevel []int) soc.EdgeRef {
	options := 3
	if level == numLevels-1 {
		options = 2
	}
	switch rng.Intn(options) {
	case 0:
		return soc.RefNone
	case 1:
		return soc.RefSink
	default:
		target := level + 1 + rng.Intn(numLevels-level-1)
		return soc.RefNode(target, rng.Intn(nodesPerLevel[target]))
	}
}
