package soc_test

import (
	"testing"

	"github.com/Simula-UiB/CryptaPath/soc"
	"github.com/stretchr/testify/require"
)

func TestFix_ConsistentValueYieldsAlwaysTrue(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 7, true))
	require.NoError(t, err)

	require.NoError(t, s.Fix(7, true))
	require.Empty(t, s.BDDs())
}

func TestFix_ContradictingValueIsInconsistent(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(forcedVar(t, 7, true))
	require.NoError(t, err)

	err = s.Fix(7, false)
	require.ErrorIs(t, err, soc.ErrInconsistent)
}

func TestFix_LeavesOtherVariablesAsResidualConstraint(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t))
	require.NoError(t, err)

	// Fixing x1=1 in "x1 xor x2 = 1" forces x2=0.
	require.NoError(t, s.Fix(1, true))

	got, ok := s.UniqueAssignment()
	require.True(t, ok)
	require.Equal(t, soc.Assignment{2: false}, got)
}
