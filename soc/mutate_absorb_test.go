package soc_test

import (
	"testing"

	"github.com/Simula-UiB/CryptaPath/gf2"
	"github.com/Simula-UiB/CryptaPath/soc"
	"github.com/stretchr/testify/require"
)

// redundantChain builds a 3-level BDD forcing x1=1 AND x2=1, with a third,
// dependent level testing x1 xor x2 — automatically 0 given the first two,
// so its lone live edge is the zero branch (spec.md §8 scenario 4).
func redundantChain(t *testing.T) *soc.BDD {
	t.Helper()
	b, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(1), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefNode(1, 0)}}},
		{LHS: gf2.NewLC(2), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefNode(2, 0)}}},
		{LHS: gf2.NewLC(1, 2), Nodes: []soc.NodeSpec{{Zero: soc.RefSink, One: soc.RefNone}}},
	})
	require.NoError(t, err)
	return b
}

func TestAbsorbLevel_RemovesDependentLevel(t *testing.T) {
	s := soc.New()
	id, err := s.AppendBDD(redundantChain(t))
	require.NoError(t, err)

	before := assignments(t, s)
	require.ElementsMatch(t, []soc.Assignment{{1: true, 2: true}}, before)

	b, ok := s.BDD(id)
	require.True(t, ok)
	require.NoError(t, b.AbsorbLevel(2))
	require.Len(t, b.Levels(), 2)

	require.ElementsMatch(t, before, assignments(t, s))
}

func TestAbsorbLevel_RejectsIndependentLevel(t *testing.T) {
	b := andChain(t)
	err := b.AbsorbLevel(1)
	require.ErrorIs(t, err, soc.ErrNotDependent)
}

func TestLinearAbsorb_DrivesToEchelonForm(t *testing.T) {
	s := soc.New()
	id, err := s.AppendBDD(redundantChain(t))
	require.NoError(t, err)
	before := assignments(t, s)

	b, ok := s.BDD(id)
	require.True(t, ok)
	require.NoError(t, b.LinearAbsorb())
	require.Len(t, b.Levels(), 2)

	require.ElementsMatch(t, before, assignments(t, s))
}
