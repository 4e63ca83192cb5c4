// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// heuristics.go — drop-candidate and join-pair selection, spec.md §4.3's
// "variants parameterized by drop selection heuristic ... join ordering".

package solver

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Simula-UiB/CryptaPath/soc"
)

// pickDropCandidate chooses the next variable DropStrategy should drop,
// or returns ok=false if every remaining variable is protected.
func pickDropCandidate(s *soc.SoC, o Options) (soc.Variable, bool) {
	candidates := unprotectedVariables(s)
	if len(candidates) == 0 {
		return 0, false
	}
	switch o.dropHeuristic {
	case LargestCollapse:
		return pickLargestCollapse(s, candidates), true
	default:
		return pickFewestLevels(s, candidates), true
	}
}

func unprotectedVariables(s *soc.SoC) []soc.Variable {
	all := s.Variables()
	out := make([]soc.Variable, 0, len(all))
	for _, v := range all {
		if !s.IsProtected(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// pickFewestLevels prefers the variable mentioned in the fewest levels,
// tie-broken by the variance of its per-BDD level counts (lower variance
// — spread more evenly across the SoC's BDDs — preferred), then by
// ascending variable id for full determinism.
func pickFewestLevels(s *soc.SoC, candidates []soc.Variable) soc.Variable {
	type scored struct {
		v        soc.Variable
		count    int
		variance float64
	}
	scores := make([]scored, 0, len(candidates))
	for _, v := range candidates {
		scores = append(scores, scored{
			v:        v,
			count:    s.VariableLevelCount(v),
			variance: perBDDVariance(s, v),
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].count != scores[j].count {
			return scores[i].count < scores[j].count
		}
		if scores[i].variance != scores[j].variance {
			return scores[i].variance < scores[j].variance
		}
		return scores[i].v < scores[j].v
	})
	return scores[0].v
}

// perBDDVariance computes the variance, over every BDD in s, of how many
// of that BDD's levels mention v (montanaflynn/stats.Variance). A
// malformed (empty) input cannot occur here since every BDD in s is
// counted, including zeros for BDDs that don't mention v at all.
func perBDDVariance(s *soc.SoC, v soc.Variable) float64 {
	counts := make([]float64, 0, len(s.BDDIDs()))
	for _, b := range s.BDDs() {
		n := 0
		for _, lvl := range b.Levels() {
			if lvl.LHS.Contains(v) {
				n++
			}
		}
		counts = append(counts, float64(n))
	}
	variance, err := stats.Variance(counts)
	if err != nil {
		return 0
	}
	return variance
}

// pickLargestCollapse prefers the variable whose drop removes the most
// live nodes, measured by speculatively dropping each candidate on a
// cloned SoC (soc.SoC.Clone exists exactly for this kind of speculative
// branch per its own doc comment). Candidates whose speculative drop
// errors are treated as collapsing zero nodes, never preferred over one
// that succeeds.
func pickLargestCollapse(s *soc.SoC, candidates []soc.Variable) soc.Variable {
	before := s.NodeCount()
	bestV := candidates[0]
	bestCollapse := -1
	for _, v := range candidates {
		trial := s.Clone()
		collapse := 0
		if err := trial.Drop(v); err == nil {
			collapse = before - trial.NodeCount()
		}
		if collapse > bestCollapse {
			bestCollapse = collapse
			bestV = v
		}
	}
	return bestV
}

// pickJoinPair chooses the next two BDDs LinearAbsorption should join, or
// returns ok=false when fewer than two BDDs remain.
func pickJoinPair(s *soc.SoC, o Options) (id1, id2 soc.BDDID, ok bool) {
	ids := s.BDDIDs()
	if len(ids) < 2 {
		return 0, 0, false
	}
	score := func(id soc.BDDID) int {
		b, _ := s.BDD(id)
		if o.joinOrder == LowestWidthFirst {
			return maxLevelWidth(b)
		}
		return totalNodeCount(b)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := score(ids[i]), score(ids[j])
		if si != sj {
			return si < sj
		}
		return ids[i] < ids[j]
	})
	return ids[0], ids[1], true
}

func totalNodeCount(b *soc.BDD) int {
	total := 0
	for _, lvl := range b.Levels() {
		total += len(lvl.Nodes)
	}
	return total
}

func maxLevelWidth(b *soc.BDD) int {
	max := 0
	for _, lvl := range b.Levels() {
		if len(lvl.Nodes) > max {
			max = len(lvl.Nodes)
		}
	}
	return max
}
