// SPDX-License-Identifier: MIT
// Package: CryptaPath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w via builderErrorf.
//   - Constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewLevels indicates a scenario was asked for fewer levels or
// nodes than it needs to be meaningful (e.g. RandomBDD with 0 levels).
var ErrTooFewLevels = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor requires a
// non-nil *rand.Rand in the resolved scenarioConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not assemble a
// well-formed BDD from the requested parameters (e.g. soc.NewBDD
// rejected the generated node table).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method
// context, producing "<Method>: <formatted message>"; a %w verb in format
// keeps its error argument reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
