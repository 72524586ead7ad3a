// SPDX-License-Identifier: MIT

// Package expr - unary nodes: absolute value, forced evaluation, and the
// transpose marker.

package expr

import (
	"math"

	"github.com/katalvlaran/sparsevec/vec"
)

// AbsExpr is the unevaluated elementwise absolute value of an expression.
type AbsExpr struct {
	op vec.Expr
}

var (
	_ vec.Scanner = (*AbsExpr)(nil)
	_ vec.Scanner = (*EvalExpr)(nil)
	_ vec.Scanner = (*TransExpr)(nil)
)

// Abs builds |e|.
// Errors: ErrNilExpr.
func Abs(e vec.Expr) (*AbsExpr, error) {
	if e == nil {
		return nil, ErrNilExpr
	}

	return &AbsExpr{op: e}, nil
}

// Operand returns the operand. Used by the Subview push-down.
func (e *AbsExpr) Operand() vec.Expr { return e.op }

// Size returns the operand size.
func (e *AbsExpr) Size() int { return e.op.Size() }

// At computes |op[i]|.
func (e *AbsExpr) At(i int) float64 { return math.Abs(e.op.At(i)) }

// CanAlias delegates to the operand.
func (e *AbsExpr) CanAlias(v *vec.Sparse) bool { return e.op.CanAlias(v) }

// Scan maps the operand's stored entries through |.| when it exposes
// sparse structure (|0| = 0, structure is preserved), falling back to a
// dense value scan otherwise.
func (e *AbsExpr) Scan(fn func(index int, value float64) bool) {
	if sc, ok := e.op.(vec.Scanner); ok {
		sc.Scan(func(i int, v float64) bool { return fn(i, math.Abs(v)) })
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *AbsExpr) NonZeros() int { return countScan(e.Scan) }

// EvalExpr forces eager evaluation of its operand: the result is
// materialized once at construction, and every later read serves from the
// materialized storage. The unevaluated operand is retained so Subview can
// push a slice inside the evaluation point.
type EvalExpr struct {
	src vec.Expr    // original unevaluated operand (push-down target)
	mat *vec.Sparse // materialized result (owned, serves all reads)
}

// Eval builds eval(e), materializing e immediately.
// Errors: ErrNilExpr, plus anything Materialize reports (numeric policy).
func Eval(e vec.Expr) (*EvalExpr, error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	mat, err := Materialize(e)
	if err != nil {
		return nil, err
	}

	return &EvalExpr{src: e, mat: mat}, nil
}

// Operand returns the original unevaluated operand. Used by the Subview
// push-down (sub(eval(x)) rewrites to eval(sub(x))).
func (e *EvalExpr) Operand() vec.Expr { return e.src }

// Result returns the materialized storage.
func (e *EvalExpr) Result() *vec.Sparse { return e.mat }

// Size returns the materialized size.
func (e *EvalExpr) Size() int { return e.mat.Size() }

// At reads the materialized storage.
func (e *EvalExpr) At(i int) float64 { return e.mat.At(i) }

// CanAlias reports false: the materialized result is fresh storage owned
// by this node, never shared with any caller container.
func (e *EvalExpr) CanAlias(_ *vec.Sparse) bool { return false }

// Scan walks the materialized entries.
func (e *EvalExpr) Scan(fn func(index int, value float64) bool) { e.mat.Scan(fn) }

// NonZeros returns the materialized entry count.
func (e *EvalExpr) NonZeros() int { return e.mat.NonZeros() }

// TransExpr marks its operand as transposed. For one-dimensional vectors
// the flip carries orientation only; element values and indices are
// untouched, so all numeric behavior delegates.
type TransExpr struct {
	op vec.Expr
}

// Trans builds the transpose marker around e.
// Errors: ErrNilExpr.
func Trans(e vec.Expr) (*TransExpr, error) {
	if e == nil {
		return nil, ErrNilExpr
	}

	return &TransExpr{op: e}, nil
}

// Operand returns the operand. Used by the Subview push-down.
func (e *TransExpr) Operand() vec.Expr { return e.op }

// Size returns the operand size.
func (e *TransExpr) Size() int { return e.op.Size() }

// At delegates to the operand.
func (e *TransExpr) At(i int) float64 { return e.op.At(i) }

// CanAlias delegates to the operand.
func (e *TransExpr) CanAlias(v *vec.Sparse) bool { return e.op.CanAlias(v) }

// Scan delegates to the operand's structure when available.
func (e *TransExpr) Scan(fn func(index int, value float64) bool) {
	if sc, ok := e.op.(vec.Scanner); ok {
		sc.Scan(fn)
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *TransExpr) NonZeros() int { return countScan(e.Scan) }
