package soc_test

import (
	"testing"

	"github.com/Simula-UiB/CryptaPath/soc"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsWellFormedSoC(t *testing.T) {
	s := soc.New()
	_, err := s.AppendBDD(xorConstraint(t))
	require.NoError(t, err)
	_, err = s.AppendBDD(andChain(t))
	require.NoError(t, err)

	require.NoError(t, soc.Validate(s))
}

func TestValidate_SurvivesMutatorSequence(t *testing.T) {
	s := soc.New()
	id, err := s.AppendBDD(redundantChain(t))
	require.NoError(t, err)

	b, ok := s.BDD(id)
	require.True(t, ok)
	require.NoError(t, b.LinearAbsorb())
	require.NoError(t, soc.Validate(s))

	require.NoError(t, b.Swap(0))
	require.NoError(t, soc.Validate(s))
}
