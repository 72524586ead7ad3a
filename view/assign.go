// SPDX-License-Identifier: MIT

// Package view - assignment protocol: the expression hooks that let a
// window sit on the left-hand side of vector arithmetic.
//
// Aliasing discipline (the heart of the protocol):
//   - Plain assignment: when the right-hand side may read the same backing
//     container (CanAlias), it is materialized into a temporary before the
//     window is reset, avoiding read-after-write corruption when source
//     and destination overlap in the same storage. Otherwise the window is
//     reset and repopulated by streaming straight from the source.
//   - Compound assignment (+=, -=, elementwise *=): the full result is
//     computed into a temporary first, then the window is reset and
//     repopulated. Incremental in-place sparse accumulation is not safe in
//     general because the operation can change the window's index set.
//   - Scalar *=, /=: pure in-place iteration over existing entries; a zero
//     slot times a scalar stays zero, so no entries appear or vanish.
//
// Failure discipline:
//   - Size mismatches fail with vec.ErrSizeMismatch strictly before any
//     mutation. Under the NaN/Inf ingestion policy the source is
//     pre-validated, so policy rejections also precede the reset.

package view

import (
	"math"

	"github.com/katalvlaran/sparsevec/vec"
)

// CanAlias reports whether the window's backing container is v. Expression
// evaluation uses it to decide whether a temporary is required before
// writing into this window.
func (sv *Subvector) CanAlias(v *vec.Sparse) bool { return sv.base == v }

// IsAliased reports whether the window is currently aliased with v. At
// this design level it is equivalent to CanAlias (both compare backing
// identity); the pair is kept for parity with the expression protocol,
// which distinguishes the conservative and the exact query.
func (sv *Subvector) IsAliased(v *vec.Sparse) bool { return sv.base == v }

// Assign replaces the window's contents with rhs (plain assignment).
// When rhs may alias the backing container, it is captured into a
// temporary before the window resets; otherwise rhs streams in directly.
// Errors: vec.ErrNilVector, vec.ErrSizeMismatch, vec.ErrNaNInf.
func (sv *Subvector) Assign(rhs vec.Expr) error {
	if rhs == nil {
		return vec.ErrNilVector
	}
	if rhs.Size() != sv.n {
		return vec.ErrSizeMismatch
	}
	if err := sv.guardValues(rhs); err != nil {
		return err
	}

	if rhs.CanAlias(sv.base) {
		tmp := capture(rhs)
		sv.Reset()

		return sv.fillEntries(tmp)
	}

	sv.Reset()

	return sv.fill(rhs)
}

// AddAssign adds rhs into the window (compound +=). The full sum is
// computed into a temporary, then the window range is reset and
// repopulated, because the addition may change which slots hold entries.
// Errors: vec.ErrNilVector, vec.ErrSizeMismatch, vec.ErrNaNInf.
func (sv *Subvector) AddAssign(rhs vec.Expr) error {
	return sv.combine(rhs, func(a, b float64) float64 { return a + b })
}

// SubAssign subtracts rhs from the window (compound -=). Same temporary
// discipline as AddAssign.
func (sv *Subvector) SubAssign(rhs vec.Expr) error {
	return sv.combine(rhs, func(a, b float64) float64 { return a - b })
}

// MulAssign multiplies the window elementwise by rhs (compound *= with a
// vector). Only slots where the window already stores an entry can be
// non-zero afterwards, so the temporary is computed over the window's
// stored entries alone.
// Errors: vec.ErrNilVector, vec.ErrSizeMismatch, vec.ErrNaNInf.
func (sv *Subvector) MulAssign(rhs vec.Expr) error {
	if rhs == nil {
		return vec.ErrNilVector
	}
	if rhs.Size() != sv.n {
		return vec.ErrSizeMismatch
	}
	if err := sv.guardValues(rhs); err != nil {
		return err
	}

	// Product over stored entries only: zero slots stay zero, and products
	// that cancel to a default value are not stored.
	tmp := make([]vec.Entry, 0, sv.NonZeros())
	sv.Scan(func(i int, v float64) bool {
		if p := v * rhs.At(i); !sv.base.IsDefault(p) {
			tmp = append(tmp, vec.Entry{Index: i, Value: p})
		}

		return true
	})
	sv.Reset()

	return sv.fillEntries(tmp)
}

// ScaleAssign multiplies every stored entry by s in place (scalar *=).
// Structural sparsity is preserved; see Scale.
func (sv *Subvector) ScaleAssign(s float64) { sv.Scale(s) }

// DivAssign divides every stored entry by s in place (scalar /=). The
// element domain is floating-point, so the division is applied as a
// multiplication by the reciprocal. A zero divisor is rejected up front.
// Errors: vec.ErrZeroDivision.
func (sv *Subvector) DivAssign(s float64) error {
	if s == 0 {
		return vec.ErrZeroDivision
	}
	sv.Scale(1 / s)

	return nil
}

// ---------- private machinery ----------

// combine implements the temporary-then-repopulate discipline shared by
// AddAssign and SubAssign: result[i] = op(window[i], rhs[i]) over the full
// window extent, staged densely because the result's index set can differ
// from both operands'.
func (sv *Subvector) combine(rhs vec.Expr, op func(a, b float64) float64) error {
	if rhs == nil {
		return vec.ErrNilVector
	}
	if rhs.Size() != sv.n {
		return vec.ErrSizeMismatch
	}
	if err := sv.guardValues(rhs); err != nil {
		return err
	}

	// Dense staging buffer for the full result; reads complete before any
	// write, so rhs aliasing the window's own base is safe here.
	tmp := make([]float64, sv.n)
	sv.Scan(func(i int, v float64) bool {
		tmp[i] = v

		return true
	})
	if sc, ok := rhs.(vec.Scanner); ok {
		sc.Scan(func(i int, v float64) bool {
			tmp[i] = op(tmp[i], v)

			return true
		})
	} else {
		for i := 0; i < sv.n; i++ {
			tmp[i] = op(tmp[i], rhs.At(i))
		}
	}

	sv.Reset()
	for i, v := range tmp {
		if sv.base.IsDefault(v) {
			continue
		}
		if err := sv.base.Insert(sv.start+i, v); err != nil {
			return err
		}
	}

	return nil
}

// fill streams rhs into the (already reset) window. Sparse-aware sources
// stream their stored entries; dense sources loop the full extent with
// default values skipped.
func (sv *Subvector) fill(rhs vec.Expr) error {
	if sc, ok := rhs.(vec.Scanner); ok {
		var err error
		sc.Scan(func(i int, v float64) bool {
			err = sv.base.Insert(sv.start+i, v)

			return err == nil
		})

		return err
	}
	for i := 0; i < sv.n; i++ {
		if v := rhs.At(i); !sv.base.IsDefault(v) {
			if err := sv.base.Insert(sv.start+i, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// fillEntries writes a captured temporary into the (already reset) window.
func (sv *Subvector) fillEntries(entries []vec.Entry) error {
	for _, e := range entries {
		if err := sv.base.Insert(sv.start+e.Index, e.Value); err != nil {
			return err
		}
	}

	return nil
}

// capture materializes rhs into local-index entries, reading everything
// from the source before the caller mutates any storage.
func capture(rhs vec.Expr) []vec.Entry {
	var out []vec.Entry
	if sc, ok := rhs.(vec.Scanner); ok {
		out = make([]vec.Entry, 0, sc.NonZeros())
		sc.Scan(func(i int, v float64) bool {
			out = append(out, vec.Entry{Index: i, Value: v})

			return true
		})

		return out
	}
	for i := 0; i < rhs.Size(); i++ {
		if v := rhs.At(i); v != 0 {
			out = append(out, vec.Entry{Index: i, Value: v})
		}
	}

	return out
}

// guardValues pre-validates the source against the base's NaN/Inf policy
// so a rejection surfaces before the window is cleared. Skipped entirely
// when the policy is off.
func (sv *Subvector) guardValues(rhs vec.Expr) error {
	if !sv.base.Validating() {
		return nil
	}
	bad := false
	if sc, ok := rhs.(vec.Scanner); ok {
		sc.Scan(func(_ int, v float64) bool {
			bad = math.IsNaN(v) || math.IsInf(v, 0)

			return !bad
		})
	} else {
		for i := 0; i < rhs.Size() && !bad; i++ {
			v := rhs.At(i)
			bad = math.IsNaN(v) || math.IsInf(v, 0)
		}
	}
	if bad {
		return vec.ErrNaNInf
	}

	return nil
}
