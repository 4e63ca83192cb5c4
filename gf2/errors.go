// SPDX-License-Identifier: MIT
// Package: CryptaPath/gf2
//
// errors.go — sentinel errors for the gf2 package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context via gf2Errorf(tag, err).

package gf2

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates two matrices (or a matrix and a vector)
// have incompatible shapes for the requested operation.
var ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

// ErrInvalidDimensions indicates a requested matrix shape is non-positive.
var ErrInvalidDimensions = errors.New("gf2: invalid dimensions")

// ErrOutOfRange indicates a row/column/variable index outside its domain.
var ErrOutOfRange = errors.New("gf2: index out of range")

// ErrSingular indicates a matrix has no inverse over GF(2) (rank < n).
var ErrSingular = errors.New("gf2: singular matrix")

// ErrNotSquare indicates an operation requiring a square matrix received
// a non-square one.
var ErrNotSquare = errors.New("gf2: matrix is not square")

// gf2Errorf wraps an underlying error with an operation tag, of the form
// "<tag>: <err>". Mirrors matrix.matrixErrorf / builder.builderErrorf in
// the teacher lineage.
func gf2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
