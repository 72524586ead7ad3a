// SPDX-License-Identifier: MIT

// Package vec: domain types and the expression contracts shared by the
// whole module. This file intentionally contains ONLY domain-facing types
// (entries, expression interfaces). Errors and options live in dedicated
// files (errors.go, options.go) per the global conventions.
package vec

// Entry is one stored element of a sparse vector: a global index paired
// with its value. Entries inside a Sparse are kept strictly ascending by
// Index; determinism across the module relies on that order.
type Entry struct {
	Index int     // global position in [0, Size())
	Value float64 // stored value (may be an explicit zero)
}

// Expr represents a read-only vector expression: concrete storage, a view,
// or an unevaluated arithmetic node. It is the contract consumed by
// assignment protocols and by the expr package's evaluation machinery.
//
// Complexity notes: Size is O(1) everywhere; At is O(1) on dense storage,
// O(log nnz) on sparse storage, and recursive on lazy nodes.
type Expr interface {
	// Size returns the logical length of the expression.
	// Complexity: O(1).
	Size() int

	// At computes the element at position i. Callers guarantee 0 <= i < Size();
	// lazy nodes recurse into their operands, storage reads directly.
	At(i int) float64

	// CanAlias reports whether evaluating this expression may read storage
	// owned by v. Assignment targets use it to decide whether the right-hand
	// side must be materialized into a temporary before the target is reset.
	CanAlias(v *Sparse) bool
}

// Scanner is the sparse-aware refinement of Expr: expressions that can
// enumerate their stored (non-default) entries in ascending index order
// without touching the zero gaps. Assignment fast paths dispatch on it.
type Scanner interface {
	Expr

	// NonZeros returns the number of stored entries.
	NonZeros() int

	// Scan calls fn for each stored entry in ascending index order until
	// fn returns false or the entries are exhausted.
	Scan(fn func(index int, value float64) bool)
}
