// Package solver_test exercises Solve end-to-end against small, hand-built
// SoCs, mirroring tsp_test's focus on sentinel errors, determinism, and
// table-driven structure over exhaustive case enumeration.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Simula-UiB/CryptaPath/gf2"
	"github.com/Simula-UiB/CryptaPath/soc"
	"github.com/Simula-UiB/CryptaPath/solver"
)

// forcedVar builds a one-level, one-variable BDD that forces x to value.
func forcedVar(t *testing.T, x gf2.Variable, value bool) *soc.BDD {
	t.Helper()
	zero, one := soc.RefNone, soc.RefSink
	if !value {
		zero, one = soc.RefSink, soc.RefNone
	}
	b, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(x), Nodes: []soc.NodeSpec{{Zero: zero, One: one}}},
	})
	require.NoError(t, err)
	return b
}

// xorConstraint builds a single-level, two-variable BDD encoding x1⊕x2=1.
func xorConstraint(t *testing.T) *soc.BDD {
	t.Helper()
	b, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(1, 2), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefSink}}},
	})
	require.NoError(t, err)
	return b
}

func TestSolve_LinearAbsorption_DisjointForcedVariablesYieldUniqueAssignment(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 1, true))
	require.NoError(t, err)
	_, err = s.AppendBDD(forcedVar(t, 2, false))
	require.NoError(t, err)

	res, err := solver.Solve(s, solver.NewOptions())
	require.NoError(t, err)
	require.Equal(t, solver.Unique, res.Outcome)
	require.Equal(t, soc.Assignment{1: true, 2: false}, res.Assignment)
	require.Equal(t, 1, res.Stats.FinalBDDCount)
}

func TestSolve_LinearAbsorption_ContradictingConstraintsAreInconsistent(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 1, true))
	require.NoError(t, err)
	_, err = s.AppendBDD(forcedVar(t, 1, false))
	require.NoError(t, err)

	res, err := solver.Solve(s, solver.NewOptions())
	require.NoError(t, err)
	require.Equal(t, solver.Inconsistent, res.Outcome)
}

func TestSolve_LinearAbsorption_StallsOnUnreducedTwoVariableConstraint(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t))
	require.NoError(t, err)

	res, err := solver.Solve(s, solver.NewOptions(solver.WithStrategy(solver.LinearAbsorption)))
	require.Nil(t, res)
	require.ErrorIs(t, err, solver.ErrStalled)
}

func TestSolve_DropStrategy_ResolvesWhatLinearAbsorptionCannot(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t))
	require.NoError(t, err)

	res, err := solver.Solve(s, solver.NewOptions(solver.WithStrategy(solver.DropStrategyKind)))
	require.NoError(t, err)
	require.Equal(t, solver.Unique, res.Outcome)
	require.True(t, res.Stats.Operations > 0)
}

func TestSolve_DropStrategy_NeverDropsProtectedVariable(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t)) // variables 1, 2
	require.NoError(t, err)

	opts := solver.NewOptions(
		solver.WithStrategy(solver.DropStrategyKind),
		solver.WithProtected(1),
	)
	res, err := solver.Solve(s, opts)
	require.NoError(t, err)
	require.Equal(t, solver.Unique, res.Outcome)
	// Variable 1 was protected, so Drop could only have removed 2. Existentially
	// projecting either variable out of a pure x1⊕x2=1 constraint leaves it
	// vacuously true, so no variable is forced either way — the meaningful
	// assertion here is that Solve succeeded without ever touching variable 1.
	require.Equal(t, soc.Assignment{}, res.Assignment)
}

func TestSolve_DropStrategy_ErrNoDropCandidateWhenEverythingProtected(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t))
	require.NoError(t, err)

	opts := solver.NewOptions(
		solver.WithStrategy(solver.DropStrategyKind),
		solver.WithProtected(1, 2),
	)
	res, err := solver.Solve(s, opts)
	require.Nil(t, res)
	require.ErrorIs(t, err, solver.ErrNoDropCandidate)
}

func TestSolve_UnknownStrategyIsRejected(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 1, true))
	require.NoError(t, err)

	res, err := solver.Solve(s, solver.NewOptions(solver.WithStrategy(solver.Strategy(99))))
	require.Nil(t, res)
	require.ErrorIs(t, err, solver.ErrUnknownStrategy)
}

func TestSolve_BudgetExceededReportsOutcomeInsteadOfError(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 1, true))
	require.NoError(t, err)
	_, err = s.AppendBDD(forcedVar(t, 2, false))
	require.NoError(t, err)

	// Two one-node BDDs: absorption leaves both untouched, so the join
	// loop is reached with NodeCount()==2, tripping a ceiling of 1 before
	// any join is attempted.
	opts := solver.NewOptions(
		solver.WithStrategy(solver.LinearAbsorption),
		solver.WithMemoryCeiling(1),
	)
	res, err := solver.Solve(s, opts)
	require.NoError(t, err)
	require.Equal(t, solver.BudgetExceeded, res.Outcome)
}

func TestWithMemoryCeiling_PanicsOnNegativeCeiling(t *testing.T) {
	require.Panics(t, func() {
		solver.NewOptions(solver.WithMemoryCeiling(-1))
	})
}

func TestNewOptions_DefaultsMatchDocumentedZeroValue(t *testing.T) {
	o := solver.NewOptions()
	// Defaults are only observable indirectly through Solve's behavior:
	// LinearAbsorption + FewestLevels + SmallestFirst + no ceiling.
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 1, true))
	require.NoError(t, err)
	res, err := solver.Solve(s, o)
	require.NoError(t, err)
	require.Equal(t, solver.Unique, res.Outcome)
}
