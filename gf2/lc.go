// SPDX-License-Identifier: MIT
// Package: CryptaPath/gf2
//
// lc.go — linear combinations over GF(2) and the basis operations of
// spec.md §4.1: xor, is_zero, reduce, extend_basis, substitute.
//
// Contract (strict):
//   - LC is always canonical: sorted ascending, no duplicate Variable.
//   - Every exported constructor/mutator returns (or mutates in place to)
//     a canonical LC; callers never need to sort or dedupe themselves.
//   - None of these routines fail: basis membership is a boolean, not an
//     error (spec.md §4.1 "Errors: the basis routines never fail").

package gf2

import (
	"sort"
)

// Variable is a non-negative integer identifier drawn from a contiguous
// or sparse universe. Identifiers are opaque to gf2 and stable across a
// run; the distinguished sentinel value 0 is reserved by the exchange
// format (format package) to mean "no variable" and is never itself a
// member of an LC built by this package's constructors from 1-based
// caller input, though gf2 itself places no such restriction — callers
// that need a reserved sentinel must filter it out before calling NewLC.
type Variable uint32

// LC ("linear combination") is the canonical set of variables XORed
// together, equivalent to a characteristic row-vector over GF(2). The
// empty LC denotes the constant 0.
type LC []Variable

// NewLC builds a canonical LC from an arbitrary (possibly unsorted,
// possibly duplicated) slice of variables. Duplicates cancel in pairs,
// per GF(2) XOR semantics (v xor v == 0), not merely deduplicate once —
// so {1,1,1} canonicalizes to {1}, while {1,1} canonicalizes to {}.
//
// Complexity: O(n log n) time, O(n) space.
func NewLC(vars ...Variable) LC {
	if len(vars) == 0 {
		return LC{}
	}
	cp := make([]Variable, len(vars))
	copy(cp, vars)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	out := make(LC, 0, len(cp))
	i := 0
	for i < len(cp) {
		v := cp[i]
		count := 1
		for i+count < len(cp) && cp[i+count] == v {
			count++
		}
		if count%2 == 1 {
			out = append(out, v)
		}
		i += count
	}
	return out
}

// IsZero reports whether lc is the empty LC (the constant 0).
//
// Complexity: O(1).
func IsZero(lc LC) bool {
	return len(lc) == 0
}

// Equal reports whether a and b denote the same linear combination. Both
// must already be canonical (as returned by NewLC/Xor/Reduce); Equal does
// not canonicalize its inputs.
//
// Complexity: O(n).
func Equal(a, b LC) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of lc.
//
// Complexity: O(n).
func (lc LC) Clone() LC {
	if lc == nil {
		return nil
	}
	cp := make(LC, len(lc))
	copy(cp, lc)
	return cp
}

// Contains reports whether v appears in lc. lc must be canonical (sorted).
//
// Complexity: O(log n).
func (lc LC) Contains(v Variable) bool {
	i := sort.Search(len(lc), func(i int) bool { return lc[i] >= v })
	return i < len(lc) && lc[i] == v
}

// Xor returns the symmetric difference of a and b — the additive group
// operation of GF(2) lifted to linear combinations. Both inputs must be
// canonical; the result is canonical.
//
// Determinism: single ascending merge pass over both inputs.
// Complexity: O(len(a)+len(b)) time, O(len(a)+len(b)) space.
func Xor(a, b LC) LC {
	out := make(LC, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // equal: cancel (v xor v == 0)
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Reduce XORs rows of basis into v, eliminating every variable that is a
// pivot of basis, and returns the residual. basis must be in echelon
// form: each row's smallest variable (its pivot) is distinct across rows
// and does not appear in any other row's residual positions below it —
// i.e. basis is itself closed under Reduce. Rows are scanned in ascending
// pivot order (spec.md §9.2(b)), so the residual is independent of
// basis's slice order.
//
// Complexity: O(k * n) where k = len(basis), n = average LC length.
func Reduce(basis []LC, v LC) LC {
	residual := v.Clone()
	// Scan pivots in ascending order so elimination is deterministic
	// regardless of how basis happens to be ordered by the caller.
	order := pivotOrder(basis)
	for _, idx := range order {
		row := basis[idx]
		if len(row) == 0 {
			continue
		}
		pivot := row[0]
		if residual.Contains(pivot) {
			residual = Xor(residual, row)
		}
	}
	return residual
}

// pivotOrder returns the indices of basis sorted by each row's pivot
// (smallest variable). Rows with an empty LC (no pivot) sort last and are
// skipped by callers that check len(row)==0.
func pivotOrder(basis []LC) []int {
	idx := make([]int, len(basis))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		ri, rj := basis[idx[i]], basis[idx[j]]
		if len(ri) == 0 {
			return false
		}
		if len(rj) == 0 {
			return true
		}
		return ri[0] < rj[0]
	})
	return idx
}

// ExtendBasis reduces v against basis and, if the residual is non-zero,
// appends it to basis (a new slice is returned; basis itself is never
// mutated). It reports whether v was linearly independent of basis (i.e.
// whether it was added) and, if so, the pivot variable chosen — the
// residual's smallest variable id, per spec.md §9.2(b).
//
// Complexity: O(k*n) for the Reduce call, O(1) amortized for the append.
func ExtendBasis(basis []LC, v LC) (newBasis []LC, added bool, pivot Variable) {
	residual := Reduce(basis, v)
	if IsZero(residual) {
		return basis, false, 0
	}
	out := make([]LC, len(basis), len(basis)+1)
	copy(out, basis)
	out = append(out, residual)
	return out, true, residual[0]
}

// Substitute replaces x with repl inside v, if x appears in v:
// v' = (v \ {x}) xor repl. If x does not appear in v, v is returned
// unchanged (by value; no mutation of the input slice's backing array in
// either case, since Xor and set-removal both allocate).
//
// Complexity: O(len(v)+len(repl)).
func Substitute(v LC, x Variable, repl LC) LC {
	if !v.Contains(x) {
		return v
	}
	without := make(LC, 0, len(v)-1)
	for _, e := range v {
		if e != x {
			without = append(without, e)
		}
	}
	return Xor(without, repl)
}
