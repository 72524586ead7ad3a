// SPDX-License-Identifier: MIT

// Package expr - scalar nodes: vector*scalar and vector/scalar.
//
// Division precomputes the reciprocal at construction: the element domain
// is floating-point, so the cheaper multiplication replaces division, and
// lazy evaluation, materialization and push-down all share the exact same
// rounding (results stay bit-identical across evaluation paths).

package expr

import "github.com/katalvlaran/sparsevec/vec"

// ScalarMulExpr is the unevaluated product of an expression and a scalar.
type ScalarMulExpr struct {
	op vec.Expr
	s  float64
}

var (
	_ vec.Scanner = (*ScalarMulExpr)(nil)
	_ vec.Scanner = (*ScalarDivExpr)(nil)
)

// ScalarMul builds e * s.
// Errors: ErrNilExpr.
func ScalarMul(e vec.Expr, s float64) (*ScalarMulExpr, error) {
	if e == nil {
		return nil, ErrNilExpr
	}

	return &ScalarMulExpr{op: e, s: s}, nil
}

// Operand returns the vector operand. Used by the Subview push-down.
func (e *ScalarMulExpr) Operand() vec.Expr { return e.op }

// Scalar returns the scalar factor.
func (e *ScalarMulExpr) Scalar() float64 { return e.s }

// Size returns the operand size.
func (e *ScalarMulExpr) Size() int { return e.op.Size() }

// At computes op[i] * s.
func (e *ScalarMulExpr) At(i int) float64 { return e.op.At(i) * e.s }

// CanAlias delegates to the operand.
func (e *ScalarMulExpr) CanAlias(v *vec.Sparse) bool { return e.op.CanAlias(v) }

// Scan scales the operand's stored entries when it exposes sparse
// structure (zero times a scalar stays zero, structure is preserved),
// falling back to a dense value scan otherwise.
func (e *ScalarMulExpr) Scan(fn func(index int, value float64) bool) {
	if sc, ok := e.op.(vec.Scanner); ok {
		sc.Scan(func(i int, v float64) bool { return fn(i, v*e.s) })
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *ScalarMulExpr) NonZeros() int { return countScan(e.Scan) }

// ScalarDivExpr is the unevaluated quotient of an expression and a scalar,
// applied as multiplication by the precomputed reciprocal.
type ScalarDivExpr struct {
	op  vec.Expr
	s   float64 // original divisor, kept for push-down reconstruction
	inv float64 // 1/s, the factor actually applied
}

// ScalarDiv builds e / s.
// Errors: ErrNilExpr, vec.ErrZeroDivision (rejected up front, before any
// evaluation can produce ±Inf).
func ScalarDiv(e vec.Expr, s float64) (*ScalarDivExpr, error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	if s == 0 {
		return nil, vec.ErrZeroDivision
	}

	return &ScalarDivExpr{op: e, s: s, inv: 1 / s}, nil
}

// Operand returns the vector operand. Used by the Subview push-down.
func (e *ScalarDivExpr) Operand() vec.Expr { return e.op }

// Scalar returns the original divisor.
func (e *ScalarDivExpr) Scalar() float64 { return e.s }

// Size returns the operand size.
func (e *ScalarDivExpr) Size() int { return e.op.Size() }

// At computes op[i] * (1/s).
func (e *ScalarDivExpr) At(i int) float64 { return e.op.At(i) * e.inv }

// CanAlias delegates to the operand.
func (e *ScalarDivExpr) CanAlias(v *vec.Sparse) bool { return e.op.CanAlias(v) }

// Scan mirrors ScalarMulExpr.Scan with the reciprocal factor.
func (e *ScalarDivExpr) Scan(fn func(index int, value float64) bool) {
	if sc, ok := e.op.(vec.Scanner); ok {
		sc.Scan(func(i int, v float64) bool { return fn(i, v*e.inv) })
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *ScalarDivExpr) NonZeros() int { return countScan(e.Scan) }
