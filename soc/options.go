// SPDX-License-Identifier: MIT
// Package: CryptaPath/soc
//
// options.go — functional options for New, grounded on the teacher's
// Option/WithXxx idiom (see original lvlath.New(opts ...Option)).

package soc

// Option configures a SoC at construction time.
type Option func(*SoC)

// WithProtected pre-populates the protected-variable set, so a solver can
// seed "never drop these" before ingesting any equations.
func WithProtected(vars ...Variable) Option {
	return func(s *SoC) {
		for _, v := range vars {
			s.protected[v] = true
		}
	}
}
