// Package vec provides the concrete vector storage of sparsevec and the
// expression contracts the rest of the module builds on.
//
// The vec package provides:
//
//   - Sparse, a sorted (index, value) container storing only non-default
//     entries, with positional lookup (Find/LowerBound/UpperBound), checked
//     insertion/erasure and an ordered Append fast path.
//   - Dense, a flat float64 vector for staging and interop.
//   - Expr and Scanner, the read-only expression contracts consumed by the
//     view and expr packages.
//   - Adapters to gonum (mat.VecDense, blas64.Vector) for handing vectors
//     to external numeric routines.
//
// Sparse is best when the number of stored entries is far below the logical
// size; Dense when most slots carry values.
//
// See the examples in the view and expr packages for usage patterns.
package vec
