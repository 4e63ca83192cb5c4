package soc_test

import (
	"testing"

	"github.com/Simula-UiB/CryptaPath/soc"
	"github.com/stretchr/testify/require"
)

func TestDrop_RejectsProtectedVariable(t *testing.T) {
	s := soc.New(soc.WithProtected(7))
	_, err := s.AppendBDD(forcedVar(t, 7, true))
	require.NoError(t, err)

	err = s.Drop(7)
	require.ErrorIs(t, err, soc.ErrProtectedDrop)

	s.Unprotect(7)
	require.NoError(t, s.Drop(7))
	require.Empty(t, s.BDDs())
}

func TestDrop_OfForcedVariableYieldsAlwaysTrue(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 7, true))
	require.NoError(t, err)

	require.NoError(t, s.Drop(7))
	require.Empty(t, s.BDDs())
	require.NotContains(t, s.Variables(), soc.Variable(7))
}

func TestDrop_ExistentiallySatisfiableXORConstraint(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t))
	require.NoError(t, err)

	// Dropping x1 from "x1 xor x2 = 1" leaves no constraint on x2: for
	// any x2 some x1 satisfies it, so the whole system collapses to the
	// vacuous always-true diagram and is removed from the SoC.
	require.NoError(t, s.Drop(1))
	require.Empty(t, s.BDDs())
}

func TestDrop_NoOpWhenVariableAbsent(t *testing.T) {
	s := soc.New()
	id, err := s.AppendBDD(forcedVar(t, 7, true))
	require.NoError(t, err)

	require.NoError(t, s.Drop(99))
	b, ok := s.BDD(id)
	require.True(t, ok)
	require.Len(t, b.Levels(), 1)
}
