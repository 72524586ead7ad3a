// SPDX-License-Identifier: MIT

// Package expr - Subview: the single public slicing path, with algebraic
// push-down over expression nodes.
//
// Rewrite rules (each preserves numeric results exactly):
//
//	Subview(a + b, s, n)   == Subview(a, s, n) + Subview(b, s, n)
//	Subview(a - b, s, n)   == Subview(a, s, n) - Subview(b, s, n)
//	Subview(a * b, s, n)   == Subview(a, s, n) * Subview(b, s, n)
//	Subview(a * k, s, n)   == Subview(a, s, n) * k
//	Subview(a / k, s, n)   == Subview(a, s, n) / k
//	Subview(|a|, s, n)     == |Subview(a, s, n)|
//	Subview(eval(a), s, n) == eval(Subview(a, s, n))
//	Subview(aᵀ, s, n)      == Subview(a, s, n)ᵀ
//
// Concrete storage produces a view; nested views collapse into a single
// window over the underlying storage; every other expression kind is
// rejected with ErrViewOverExpression (views exist only over storage).

package expr

import (
	"github.com/katalvlaran/sparsevec/vec"
	"github.com/katalvlaran/sparsevec/view"
)

// Subview returns the slice [start, start+n) of e. Applied to concrete
// storage it builds a non-owning window; applied to a known expression
// kind it pushes the slice down into the operands, avoiding any
// materialization of the full expression.
// Errors: ErrNilExpr, view.ErrInvalidRange, ErrViewOverExpression.
func Subview(e vec.Expr, start, n int) (vec.Expr, error) {
	switch t := e.(type) {
	case nil:
		return nil, ErrNilExpr

	// Concrete storage: build the window.
	case *vec.Sparse:
		return view.New(t, start, n)
	case *vec.Dense:
		return view.NewDenseWindow(t, start, n)

	// Views over views collapse into one window over the storage.
	case *view.Subvector:
		if n <= 0 || start < 0 || start+n > t.Size() {
			return nil, view.ErrInvalidRange
		}

		return view.New(t.Base(), t.Start()+start, n)
	case *view.DenseWindow:
		if n <= 0 || start < 0 || start+n > t.Size() {
			return nil, view.ErrInvalidRange
		}

		return view.NewDenseWindow(t.Base(), t.Start()+start, n)

	// Binary nodes: slice both operands.
	case *AddExpr:
		return subviewBinary(t.Left(), t.Right(), start, n, func(l, r vec.Expr) (vec.Expr, error) { return Add(l, r) })
	case *SubExpr:
		return subviewBinary(t.Left(), t.Right(), start, n, func(l, r vec.Expr) (vec.Expr, error) { return SubOf(l, r) })
	case *MulExpr:
		return subviewBinary(t.Left(), t.Right(), start, n, func(l, r vec.Expr) (vec.Expr, error) { return MulOf(l, r) })

	// Scalar nodes: slice the operand, keep the scalar.
	case *ScalarMulExpr:
		op, err := Subview(t.Operand(), start, n)
		if err != nil {
			return nil, err
		}

		return ScalarMul(op, t.Scalar())
	case *ScalarDivExpr:
		op, err := Subview(t.Operand(), start, n)
		if err != nil {
			return nil, err
		}

		return ScalarDiv(op, t.Scalar())

	// Unary nodes: wrap the sliced operand.
	case *AbsExpr:
		op, err := Subview(t.Operand(), start, n)
		if err != nil {
			return nil, err
		}

		return Abs(op)
	case *EvalExpr:
		op, err := Subview(t.Operand(), start, n)
		if err != nil {
			return nil, err
		}

		return Eval(op)
	case *TransExpr:
		op, err := Subview(t.Operand(), start, n)
		if err != nil {
			return nil, err
		}

		return Trans(op)

	default:
		return nil, ErrViewOverExpression
	}
}

// subviewBinary slices both operands of a binary node and rebuilds it.
func subviewBinary(l, r vec.Expr, start, n int, rebuild func(l, r vec.Expr) (vec.Expr, error)) (vec.Expr, error) {
	lv, err := Subview(l, start, n)
	if err != nil {
		return nil, err
	}
	rv, err := Subview(r, start, n)
	if err != nil {
		return nil, err
	}

	return rebuild(lv, rv)
}
