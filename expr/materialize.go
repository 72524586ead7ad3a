// SPDX-License-Identifier: MIT

// Package expr - eager evaluation of expressions into concrete storage.

package expr

import (
	"fmt"

	"github.com/katalvlaran/sparsevec/vec"
)

// Materialize evaluates e into a fresh sparse vector. Sparse-structured
// expressions stream their stored entries through the ordered fill path;
// the rest are enumerated densely with default values skipped. Computed
// zeros (e.g. cancellation in a subtraction) are not stored.
// Errors: ErrNilExpr, vec.ErrNaNInf (numeric policy of the fresh target).
// Complexity: O(nnz) for structured sources, O(Size * At) otherwise.
func Materialize(e vec.Expr) (*vec.Sparse, error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	out, err := vec.NewSparse(e.Size())
	if err != nil {
		return nil, fmt.Errorf("Materialize: %w", err)
	}

	if sc, ok := e.(vec.Scanner); ok {
		sc.Scan(func(i int, v float64) bool {
			err = out.Append(i, v, true)

			return err == nil
		})
		if err != nil {
			return nil, fmt.Errorf("Materialize: %w", err)
		}

		return out, nil
	}

	for i, n := 0, e.Size(); i < n; i++ {
		if err = out.Append(i, e.At(i), true); err != nil {
			return nil, fmt.Errorf("Materialize: %w", err)
		}
	}

	return out, nil
}

// MaterializeDense evaluates e into a fresh dense vector.
// Errors: ErrNilExpr, vec.ErrNaNInf.
// Complexity: O(Size * At).
func MaterializeDense(e vec.Expr) (*vec.Dense, error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	out, err := vec.NewDense(e.Size())
	if err != nil {
		return nil, fmt.Errorf("MaterializeDense: %w", err)
	}
	for i, n := 0, e.Size(); i < n; i++ {
		if err = out.Set(i, e.At(i)); err != nil {
			return nil, fmt.Errorf("MaterializeDense: %w", err)
		}
	}

	return out, nil
}
