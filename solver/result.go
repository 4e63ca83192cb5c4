// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// result.go — Outcome/Result/Stats, spec.md §6.3's "one of {unique
// solution map; enumerator of solutions; proven inconsistent; exceeded
// budget} along with counters" realized as Go types.

package solver

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Simula-UiB/CryptaPath/soc"
)

// Outcome tags which field of Result is meaningful.
type Outcome int

const (
	// Unique indicates the SoC reached a single forced assignment;
	// Result.Assignment is populated.
	Unique Outcome = iota
	// Enumerable indicates more than one assignment survives; Result.Enumerate
	// lazily yields each one.
	Enumerable
	// Inconsistent indicates a mutator proved no assignment satisfies the
	// system.
	Inconsistent
	// BudgetExceeded indicates the memory ceiling was breached; the SoC is
	// left in a consistent but unfinished state.
	BudgetExceeded
)

// Stats reports counters gathered over a Solve run.
type Stats struct {
	// Operations is the number of mutator calls performed (absorb, join,
	// drop), each counted once regardless of how many nodes it touched.
	Operations int
	// PeakNodeCount is the highest soc.SoC.NodeCount observed during the
	// run.
	PeakNodeCount int
	// FinalBDDCount is the number of BDDs remaining in the SoC when Solve
	// returned.
	FinalBDDCount int
	// LevelWidthMean and LevelWidthStdDev summarize the distribution of
	// per-level node counts across every remaining BDD at the time Solve
	// returned, via gonum/stat.
	LevelWidthMean   float64
	LevelWidthStdDev float64
}

// Result is Solve's return value.
type Result struct {
	Outcome Outcome
	// Assignment is populated only when Outcome == Unique.
	Assignment soc.Assignment
	// Enumerate is populated only when Outcome == Enumerable; it is
	// soc.SoC.Enumerate bound to the solved SoC.
	Enumerate func(yield func(soc.Assignment) bool)
	Stats     Stats
}

// runStats accumulates counters during a Solve run; finalize converts it
// into the Stats a Result reports.
type runStats struct {
	operations    int
	peakNodeCount int
}

func (rs *runStats) recordOperation(s *soc.SoC) {
	rs.operations++
	if n := s.NodeCount(); n > rs.peakNodeCount {
		rs.peakNodeCount = n
	}
}

func (rs *runStats) finalize(s *soc.SoC) Stats {
	widths := levelWidths(s)
	var mean, sd float64
	if len(widths) > 0 {
		mean = stat.Mean(widths, nil)
		sd = stat.StdDev(widths, nil)
	}
	return Stats{
		Operations:       rs.operations,
		PeakNodeCount:    rs.peakNodeCount,
		FinalBDDCount:    len(s.BDDIDs()),
		LevelWidthMean:   mean,
		LevelWidthStdDev: sd,
	}
}

func levelWidths(s *soc.SoC) []float64 {
	var out []float64
	for _, b := range s.BDDs() {
		for _, lvl := range b.Levels() {
			out = append(out, float64(len(lvl.Nodes)))
		}
	}
	return out
}
