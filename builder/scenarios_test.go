// Package builder_test exercises the spec.md §8 scenario constructors:
// correct solution sets, variable-offset composition, and RandomBDD's
// structural guarantees, testify-style to match soc_test/format_test.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Simula-UiB/CryptaPath/builder"
	"github.com/Simula-UiB/CryptaPath/soc"
)

func enumerate(t *testing.T, s *soc.SoC) []soc.Assignment {
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

func TestSingleXORConstraint_AcceptsExactlyTheFourParityConsistentTriples(t *testing.T) {
	s, err := builder.BuildSoC(nil, builder.SingleXORConstraint())
	require.NoError(t, err)

	sols := enumerate(t, s)
	require.Len(t, sols, 4)
	for _, a := range sols {
		require.Equal(t, a[1] != a[2], a[3])
	}
}

func TestSingleXORConstraint_VariableOffsetShiftsVariableIdentity(t *testing.T) {
	s, err := builder.BuildSoC(
		[]builder.BuilderOption{builder.WithVariableOffset(10)},
		builder.SingleXORConstraint(),
	)
	require.NoError(t, err)
	require.ElementsMatch(t, []soc.Variable{11, 12, 13}, s.Variables())
}

func TestInconsistentPair_JoiningReportsInconsistency(t *testing.T) {
	s, err := builder.BuildSoC(nil, builder.InconsistentPair())
	require.NoError(t, err)

	ids := s.BDDIDs()
	require.Len(t, ids, 2)
	_, err = s.Join(ids[0], ids[1])
	require.ErrorIs(t, err, soc.ErrInconsistent)
}

func TestChain_AcceptsExactlyTheFourTriplesWhereV1EqualsV3(t *testing.T) {
	s, err := builder.BuildSoC(nil, builder.Chain())
	require.NoError(t, err)

	sols := enumerate(t, s)
	require.Len(t, sols, 4)
	for _, a := range sols {
		require.Equal(t, a[1], a[3])
	}
}

func TestChain_ThirdLevelAbsorbsToTwoLevelsPreservingSolutions(t *testing.T) {
	s, err := builder.BuildSoC(nil, builder.Chain())
	require.NoError(t, err)
	before := enumerate(t, s)

	ids := s.BDDIDs()
	require.Len(t, ids, 1)
	b, ok := s.BDD(ids[0])
	require.True(t, ok)
	require.NoError(t, b.LinearAbsorb())

	require.Len(t, b.Levels(), 2)
	require.ElementsMatch(t, before, enumerate(t, s))
}

func TestRandomBDD_RequiresRandSource(t *testing.T) {
	_, err := builder.BuildSoC(nil, builder.RandomBDD(6, 12))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomBDD_RejectsTooFewLevels(t *testing.T) {
	_, err := builder.BuildSoC(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomBDD(1, 12),
	)
	require.ErrorIs(t, err, builder.ErrTooFewLevels)
}

func TestRandomBDD_BuildsRequestedLevelCountAndIsValid(t *testing.T) {
	s, err := builder.BuildSoC(
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomBDD(6, 12),
	)
	require.NoError(t, err)

	ids := s.BDDIDs()
	require.Len(t, ids, 1)
	b, ok := s.BDD(ids[0])
	require.True(t, ok)
	require.LessOrEqual(t, len(b.Levels()), 6)
	require.NoError(t, soc.Validate(s))
}

func TestRandomBDD_SwapInvolutionRoundTrips(t *testing.T) {
	s, err := builder.BuildSoC(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomBDD(6, 12),
	)
	require.NoError(t, err)

	ids := s.BDDIDs()
	require.Len(t, ids, 1)
	before := enumerate(t, s)

	// Swap involution (spec.md §8 scenario 3): two adjacent swaps of the
	// same level pair return the original solution set.
	b, ok := s.BDD(ids[0])
	require.True(t, ok)
	if len(b.Levels()) < 2 {
		t.Skip("random draw produced fewer than 2 levels")
	}
	require.NoError(t, b.Swap(0))
	require.NoError(t, b.Swap(0))
	require.ElementsMatch(t, before, enumerate(t, s))
}

func TestRandomBDD_WithRandIsEquivalentToAnEquallySeededRNG(t *testing.T) {
	seeded := rand.New(rand.NewSource(99))
	s1, err := builder.BuildSoC(
		[]builder.BuilderOption{builder.WithRand(seeded)},
		builder.RandomBDD(4, 8),
	)
	require.NoError(t, err)

	s2, err := builder.BuildSoC(
		[]builder.BuilderOption{builder.WithSeed(99)},
		builder.RandomBDD(4, 8),
	)
	require.NoError(t, err)

	require.ElementsMatch(t, enumerate(t, s1), enumerate(t, s2))
}
