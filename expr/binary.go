// SPDX-License-Identifier: MIT

// Package expr - binary elementwise nodes: addition, subtraction,
// elementwise multiplication.
//
// Construction validates operand sizes (fail-fast, vec.ErrSizeMismatch);
// evaluation recurses per element; aliasing is the union of the operands'.

package expr

import "github.com/katalvlaran/sparsevec/vec"

// AddExpr is the unevaluated elementwise sum of two expressions.
type AddExpr struct {
	l, r vec.Expr
}

var (
	_ vec.Scanner = (*AddExpr)(nil)
	_ vec.Scanner = (*SubExpr)(nil)
	_ vec.Scanner = (*MulExpr)(nil)
)

// Add builds l + r.
// Errors: ErrNilExpr, vec.ErrSizeMismatch.
func Add(l, r vec.Expr) (*AddExpr, error) {
	if l == nil || r == nil {
		return nil, ErrNilExpr
	}
	if l.Size() != r.Size() {
		return nil, vec.ErrSizeMismatch
	}

	return &AddExpr{l: l, r: r}, nil
}

// Left returns the left operand. Used by the Subview push-down.
func (e *AddExpr) Left() vec.Expr { return e.l }

// Right returns the right operand. Used by the Subview push-down.
func (e *AddExpr) Right() vec.Expr { return e.r }

// Size returns the common operand size.
func (e *AddExpr) Size() int { return e.l.Size() }

// At computes l[i] + r[i].
func (e *AddExpr) At(i int) float64 { return e.l.At(i) + e.r.At(i) }

// CanAlias reports whether either operand may read storage owned by v.
func (e *AddExpr) CanAlias(v *vec.Sparse) bool { return e.l.CanAlias(v) || e.r.CanAlias(v) }

// Scan emits the sum at every index stored on either side when both
// operands expose sparse structure, falling back to a dense value scan
// otherwise. Ascending index order either way.
func (e *AddExpr) Scan(fn func(index int, value float64) bool) {
	ls, lok := e.l.(vec.Scanner)
	rs, rok := e.r.(vec.Scanner)
	if lok && rok {
		mergeScan(ls, rs, func(a, b float64) float64 { return a + b }, fn)
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *AddExpr) NonZeros() int { return countScan(e.Scan) }

// SubExpr is the unevaluated elementwise difference of two expressions.
type SubExpr struct {
	l, r vec.Expr
}

// SubOf builds l - r.
// Errors: ErrNilExpr, vec.ErrSizeMismatch.
func SubOf(l, r vec.Expr) (*SubExpr, error) {
	if l == nil || r == nil {
		return nil, ErrNilExpr
	}
	if l.Size() != r.Size() {
		return nil, vec.ErrSizeMismatch
	}

	return &SubExpr{l: l, r: r}, nil
}

// Left returns the left operand. Used by the Subview push-down.
func (e *SubExpr) Left() vec.Expr { return e.l }

// Right returns the right operand. Used by the Subview push-down.
func (e *SubExpr) Right() vec.Expr { return e.r }

// Size returns the common operand size.
func (e *SubExpr) Size() int { return e.l.Size() }

// At computes l[i] - r[i].
func (e *SubExpr) At(i int) float64 { return e.l.At(i) - e.r.At(i) }

// CanAlias reports whether either operand may read storage owned by v.
func (e *SubExpr) CanAlias(v *vec.Sparse) bool { return e.l.CanAlias(v) || e.r.CanAlias(v) }

// Scan mirrors AddExpr.Scan with subtraction over the index union.
func (e *SubExpr) Scan(fn func(index int, value float64) bool) {
	ls, lok := e.l.(vec.Scanner)
	rs, rok := e.r.(vec.Scanner)
	if lok && rok {
		mergeScan(ls, rs, func(a, b float64) float64 { return a - b }, fn)
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *SubExpr) NonZeros() int { return countScan(e.Scan) }

// MulExpr is the unevaluated elementwise (Hadamard) product of two
// expressions. The product is non-zero only where a sparse operand stores
// an entry, so the scan follows the sparser side's structure.
type MulExpr struct {
	l, r vec.Expr
}

// MulOf builds l * r elementwise.
// Errors: ErrNilExpr, vec.ErrSizeMismatch.
func MulOf(l, r vec.Expr) (*MulExpr, error) {
	if l == nil || r == nil {
		return nil, ErrNilExpr
	}
	if l.Size() != r.Size() {
		return nil, vec.ErrSizeMismatch
	}

	return &MulExpr{l: l, r: r}, nil
}

// Left returns the left operand. Used by the Subview push-down.
func (e *MulExpr) Left() vec.Expr { return e.l }

// Right returns the right operand. Used by the Subview push-down.
func (e *MulExpr) Right() vec.Expr { return e.r }

// Size returns the common operand size.
func (e *MulExpr) Size() int { return e.l.Size() }

// At computes l[i] * r[i].
func (e *MulExpr) At(i int) float64 { return e.l.At(i) * e.r.At(i) }

// CanAlias reports whether either operand may read storage owned by v.
func (e *MulExpr) CanAlias(v *vec.Sparse) bool { return e.l.CanAlias(v) || e.r.CanAlias(v) }

// Scan walks the stored entries of the first sparse-structured operand,
// multiplying by the other side's value at each stored index. Positions
// where the sparse operand holds nothing contribute zero and are never
// evaluated, the usual sparse product semantics.
func (e *MulExpr) Scan(fn func(index int, value float64) bool) {
	if ls, ok := e.l.(vec.Scanner); ok {
		ls.Scan(func(i int, v float64) bool { return fn(i, v*e.r.At(i)) })
		return
	}
	if rs, ok := e.r.(vec.Scanner); ok {
		rs.Scan(func(i int, v float64) bool { return fn(i, e.l.At(i)*v) })
		return
	}
	valueScan(e, fn)
}

// NonZeros counts the entries Scan emits.
func (e *MulExpr) NonZeros() int { return countScan(e.Scan) }
