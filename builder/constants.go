// Package builder defines shared constants used by scenario constructors,
// ensuring consistent defaults and error-context tokens.
package builder

//-----------------------------------------------------------------------------
// Scenario method name constants, used to prefix errors with the
// constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSingleXORConstraint names the SingleXORConstraint constructor.
	MethodSingleXORConstraint = "SingleXORConstraint"
	// MethodInconsistentPair names the InconsistentPair constructor.
	MethodInconsistentPair = "InconsistentPair"
	// MethodChain names the Chain constructor.
	MethodChain = "Chain"
	// MethodRandomBDD names the RandomBDD constructor.
	MethodRandomBDD = "RandomBDD"
)

//-----------------------------------------------------------------------------
// RandomBDD defaults and bounds
//-----------------------------------------------------------------------------

// MinRandomLevels is the smallest meaningful level count for RandomBDD;
// fewer levels cannot exercise a level-pair swap (spec.md §8 scenario 3
// needs at least two levels to swap).
const MinRandomLevels = 2

// MinRandomNodesPerLevel is the fewest nodes RandomBDD ever places on a
// level (a level with zero nodes is not a level).
const MinRandomNodesPerLevel = 1
