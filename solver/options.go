// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// options.go — Strategy/DropHeuristic/JoinOrder tagged-variant selectors
// and the functional-options configuration they compose into, grounded
// on tsp.Options' BoundAlgo/MatchingAlgo tag-dispatch fields.

package solver

import "github.com/Simula-UiB/CryptaPath/soc"

// Strategy selects the top-level solving strategy (spec.md §4.3).
type Strategy int

const (
	// LinearAbsorption absorbs every BDD to echelon form, then joins
	// pairwise by size until one BDD remains or inconsistency is proven.
	// Never drops a variable; suitable when the variable count is modest.
	LinearAbsorption Strategy = iota
	// DropStrategyKind interleaves LinearAbsorption with drops of a
	// heuristically chosen variable whenever absorption saturates —
	// the strategy sponge-like systems require to terminate.
	DropStrategyKind
)

// DropHeuristic selects which unprotected variable DropStrategy targets
// when absorption saturates.
type DropHeuristic int

const (
	// FewestLevels prefers the variable appearing in the fewest levels
	// across the SoC, ties broken by the variance of its per-BDD level
	// counts (lower variance — more evenly spread — preferred), then by
	// ascending variable id.
	FewestLevels DropHeuristic = iota
	// LargestCollapse prefers the variable whose drop removes the most
	// nodes, measured by speculatively dropping it on a cloned SoC.
	LargestCollapse
)

// JoinOrder selects which pair of BDDs LinearAbsorption joins next.
type JoinOrder int

const (
	// SmallestFirst joins the two BDDs with the fewest total live nodes.
	SmallestFirst JoinOrder = iota
	// LowestWidthFirst joins the two BDDs with the smallest maximum
	// per-level node count.
	LowestWidthFirst
)

// Options configures Solve. The zero value is not meaningful; construct
// via NewOptions and override with With* functions.
type Options struct {
	strategy      Strategy
	dropHeuristic DropHeuristic
	joinOrder     JoinOrder
	memoryCeiling int // 0 = unlimited
	protected     []soc.Variable
}

// Option mutates an Options value under construction.
type Option func(*Options)

// NewOptions returns Options defaulting to LinearAbsorption, FewestLevels,
// SmallestFirst, and no memory ceiling.
func NewOptions(opts ...Option) Options {
	o := Options{
		strategy:      LinearAbsorption,
		dropHeuristic: FewestLevels,
		joinOrder:     SmallestFirst,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrategy selects the top-level strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithDropHeuristic selects DropStrategy's variable-choice heuristic.
func WithDropHeuristic(h DropHeuristic) Option {
	return func(o *Options) { o.dropHeuristic = h }
}

// WithJoinOrder selects the pairwise join ordering.
func WithJoinOrder(j JoinOrder) Option {
	return func(o *Options) { o.joinOrder = j }
}

// WithMemoryCeiling caps the live node count Solve will tolerate before
// DropStrategy is forced to drop instead of continuing absorption (spec.md
// §4.3's "optional per-operation memory ceiling"). Panics if ceiling is
// negative — a negative ceiling is structurally meaningless, matching
// builder.WithIDScheme's panic-at-construction-time convention for
// malformed option arguments. Zero means unlimited (the default).
func WithMemoryCeiling(ceiling int) Option {
	if ceiling < 0 {
		panic("solver: WithMemoryCeiling: negative ceiling")
	}
	return func(o *Options) { o.memoryCeiling = ceiling }
}

// WithProtected marks variables Drop must never select, mirroring
// soc.WithProtected.
func WithProtected(vars ...soc.Variable) Option {
	return func(o *Options) { o.protected = append(o.protected, vars...) }
}
