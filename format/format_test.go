// Package format_test exercises Parse/Serialize round-tripping and the
// distinguishable-error cases spec.md §6.2 names, testify-style to match
// soc_test/gf2_test.
package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Simula-UiB/CryptaPath/format"
	"github.com/Simula-UiB/CryptaPath/gf2"
	"github.com/Simula-UiB/CryptaPath/soc"
)

func xorConstraint(t *testing.T) *soc.SoC {
	t.Helper()
	s := soc.New()
	b, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(1, 2), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefSink}}},
	})
	require.NoError(t, err)
	_, err = s.AppendBDD(b)
	require.NoError(t, err)
	return s
}

func andChain(t *testing.T) *soc.SoC {
	t.Helper()
	s := soc.New()
	b, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(1), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefNode(1, 0)}}},
		{LHS: gf2.NewLC(2), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefSink}}},
	})
	require.NoError(t, err)
	_, err = s.AppendBDD(b)
	require.NoError(t, err)
	return s
}

func assignments(t *testing.T, s *soc.SoC) []soc.Assignment {
	t.Helper()
	var out []soc.Assignment
	s.Enumerate(func(a soc.Assignment) bool {
		cp := make(soc.Assignment, len(a))
		for k, v := range a {
			cp[k] = v
		}
		out = append(out, cp)
		return true
	})
	return out
}

func TestRoundTrip_SingleXORConstraint(t *testing.T) {
	s := xorConstraint(t)
	text := format.Serialize(s)

	reparsed, err := format.Parse(text)
	require.NoError(t, err)

	require.ElementsMatch(t, assignments(t, s), assignments(t, reparsed))
}

func TestRoundTrip_TwoLevelChain(t *testing.T) {
	s := andChain(t)
	text := format.Serialize(s)

	reparsed, err := format.Parse(text)
	require.NoError(t, err)

	require.ElementsMatch(t, assignments(t, s), assignments(t, reparsed))
}

func TestRoundTrip_MultipleIndependentBDDs(t *testing.T) {
	s := soc.New()
	b1, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(5), Nodes: []soc.NodeSpec{{Zero: soc.RefNone, One: soc.RefSink}}},
	})
	require.NoError(t, err)
	_, err = s.AppendBDD(b1)
	require.NoError(t, err)

	b2, err := soc.NewBDD([]soc.LevelSpec{
		{LHS: gf2.NewLC(9), Nodes: []soc.NodeSpec{{Zero: soc.RefSink, One: soc.RefNone}}},
	})
	require.NoError(t, err)
	_, err = s.AppendBDD(b2)
	require.NoError(t, err)

	text := format.Serialize(s)
	reparsed, err := format.Parse(text)
	require.NoError(t, err)
	require.ElementsMatch(t, assignments(t, s), assignments(t, reparsed))
}

func TestParse_RejectsMissingTerminator(t *testing.T) {
	text := "2\n1\n0 2\n1+2:(1;0,2)|:(2;0,0)|\n"
	_, err := format.Parse(text)
	require.ErrorIs(t, err, format.ErrMalformedInput)
}

func TestParse_RejectsVariableCountMismatch(t *testing.T) {
	text := "99\n1\n0 2\n1+2:(1;0,2)|:(2;0,0)|\n---\n"
	_, err := format.Parse(text)
	require.ErrorIs(t, err, format.ErrMalformedInput)
}

func TestParse_RejectsDanglingNodeReference(t *testing.T) {
	// node 1's one-target (5) is never declared anywhere in the chunk.
	text := "2\n1\n0 2\n1+2:(1;0,5)|:(2;0,0)|\n---\n"
	_, err := format.Parse(text)
	require.ErrorIs(t, err, format.ErrMalformedInput)
}

func TestParse_RejectsBackwardReference(t *testing.T) {
	// level 1's node references level 0's node id (1), which is not
	// strictly deeper — an ordering violation.
	text := "2\n1\n0 3\n1:(1;0,2)|2:(2;0,1)|:(3;0,0)|\n---\n"
	_, err := format.Parse(text)
	require.ErrorIs(t, err, format.ErrMalformedInput)
}

func TestParse_RejectsMalformedTerminalLevel(t *testing.T) {
	// terminal level's node must have both targets equal to 0.
	text := "2\n1\n0 2\n1+2:(1;0,2)|:(2;0,1)|\n---\n"
	_, err := format.Parse(text)
	require.ErrorIs(t, err, format.ErrMalformedInput)
}

func TestParse_RejectsNonNumericHeader(t *testing.T) {
	text := "two\n1\n0 2\n1+2:(1;0,2)|:(2;0,0)|\n---\n"
	_, err := format.Parse(text)
	require.ErrorIs(t, err, format.ErrMalformedInput)
}

func TestParse_EmptySoCRoundTrips(t *testing.T) {
	s := soc.New()
	text := format.Serialize(s)
	require.Equal(t, "0\n0\n", text)

	reparsed, err := format.Parse(text)
	require.NoError(t, err)
	require.Empty(t, reparsed.BDDIDs())
}
