// SPDX-License-Identifier: MIT
// Package expr: sentinel error set.
// Size mismatches and zero divisors reuse the vec sentinels; this file
// defines only the conditions born at the expression layer.

package expr

import "errors"

var (
	// ErrNilExpr indicates that a nil expression operand was passed to a
	// node constructor or evaluator.
	ErrNilExpr = errors.New("expr: nil expression")

	// ErrViewOverExpression is returned when Subview is applied to an
	// expression kind it cannot rewrite. Views exist only over concrete
	// storage; for the known arithmetic kinds the view is pushed down into
	// the operands instead, and everything else is rejected at construction.
	ErrViewOverExpression = errors.New("expr: cannot take a view over this expression")
)
