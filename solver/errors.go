// SPDX-License-Identifier: MIT
// Package: CryptaPath/solver
//
// errors.go — sentinel errors for the solver package, mirroring
// soc.socErrorf / gf2.gf2Errorf.

package solver

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy indicates an Options value named a Strategy this
// package does not implement.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// ErrNoDropCandidate indicates DropStrategy stalled with every remaining
// variable protected — there is nothing left it is permitted to drop.
var ErrNoDropCandidate = errors.New("solver: no unprotected variable available to drop")

// ErrStalled indicates LinearAbsorption finished every absorption and
// join it could perform without reaching solved form — the system needs
// DropStrategy (or a different variable protection set) instead.
var ErrStalled = errors.New("solver: linear absorption alone did not reach solved form")

// solverErrorf wraps an underlying error with an operation tag.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("solver: %s: %w", tag, err)
}
