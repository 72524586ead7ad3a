// Package expr provides lazy elementwise vector arithmetic and the
// algebraic push-down that slices expressions without materializing them.
//
// The expr package provides:
//
//   - A small closed set of expression kinds: Add, Sub, Mul (elementwise),
//     ScalarMul, ScalarDiv, Abs, Eval, Trans. Each is an unevaluated node
//     implementing vec.Expr, and evaluation dispatches at runtime over
//     these concrete kinds.
//   - Materialize / MaterializeDense, the eager evaluators.
//   - Subview, the single public slicing path: views over concrete storage,
//     algebraic push-down over expression nodes
//     (Subview(a+b, s, n) == Subview(a, s, n) + Subview(b, s, n), and
//     likewise for the other kinds), and a construction-time rejection of
//     anything else.
//
// Push-down is purely an optimization: every rewrite preserves numeric
// results identical to eager evaluation followed by slicing.
//
// See the examples in this package and view for usage patterns.
package expr
