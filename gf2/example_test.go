// Package gf2_test provides GoDoc examples for CryptaPath/gf2.
package gf2_test

import (
	"fmt"

	"github.com/Simula-UiB/CryptaPath/gf2"
)

// ExampleReduce shows how a dependent linear combination reduces to zero
// against a two-row basis, while an independent one survives.
func ExampleReduce() {
	basis := []gf2.LC{gf2.NewLC(1, 2), gf2.NewLC(2, 3)}

	dependent := gf2.NewLC(1, 3) // == row0 xor row1
	fmt.Println(gf2.IsZero(gf2.Reduce(basis, dependent)))

	independent := gf2.NewLC(4)
	fmt.Println(gf2.Reduce(basis, independent))

	// Output:
	// true
	// [4]
}

// ExampleExtendBasis shows the basis growing only on independent input.
func ExampleExtendBasis() {
	var basis []gf2.LC
	basis, added, pivot := gf2.ExtendBasis(basis, gf2.NewLC(3, 1))
	fmt.Println(added, pivot, len(basis))

	_, added, _ = gf2.ExtendBasis(basis, gf2.NewLC(1, 3))
	fmt.Println(added)

	// Output:
	// true 1 1
	// false
}
