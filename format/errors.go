// SPDX-License-Identifier: MIT
// Package: CryptaPath/format
//
// errors.go — sentinel errors for the format package, mirroring
// soc.socErrorf / gf2.gf2Errorf.

package format

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates the text does not conform to the exchange
// grammar: a missing or non-numeric count, a level-count mismatch, a
// dangling or out-of-order node reference, a malformed terminal level,
// a missing "---" terminator, or a declared variable count that
// disagrees with the variables actually used.
var ErrMalformedInput = errors.New("format: malformed input")

func formatErrorf(tag string, err error) error {
	return fmt.Errorf("format: %s: %w", tag, err)
}
