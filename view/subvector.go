// SPDX-License-Identifier: MIT

// Package view - Subvector: a write-through window over vec.Sparse.
//
// Purpose:
//   - Expose a contiguous index range [start, start+n) of a sparse vector
//     as an independent vector of size n, without copying data.
//   - Translate every operation into the base container's global index
//     space; entries materialized through the view always lie inside the
//     window, and local index == global index - start.
//
// Lifetime contract:
//   - The view never owns the base. Structural mutations of the base
//     (insert/erase) invalidate outstanding iterators per the base's own
//     contract; the view adds no invalidation rules of its own.
//
// Complexity quicksheet:
//   - New: O(1); At: O(log nnz); Set/Insert/Erase: O(nnz) worst case;
//     Begin/End/NonZeros: O(log nnz); Reset: O(nnz); Scale: O(nnz(view)).

package view

import (
	"fmt"

	"github.com/katalvlaran/sparsevec/vec"
)

// Subvector is a non-owning window over a contiguous index range of a
// sparse vector.
//   - base is the backing container (never owned, never nil after New).
//   - start is the first global index of the window.
//   - n is the window length (> 0; start+n <= base.Size()).
type Subvector struct {
	base  *vec.Sparse // backing sparse vector
	start int         // first global index of the window
	n     int         // window length
}

// Compile-time assertions: a view participates in expressions on both
// sides of an assignment.
var (
	_ vec.Expr     = (*Subvector)(nil)
	_ vec.Scanner  = (*Subvector)(nil)
	_ fmt.Stringer = (*Subvector)(nil)
)

// New creates a window of length n over base starting at global index
// start. This is the only construction path for sparse views.
// Errors: vec.ErrNilVector on nil base; ErrInvalidRange when n == 0,
// start < 0, or start+n > base.Size().
// Side effects: none — no data is copied, only the reference and the two
// indices are stored.
func New(base *vec.Sparse, start, n int) (*Subvector, error) {
	if base == nil {
		return nil, vec.ErrNilVector
	}
	if n <= 0 || start < 0 || start+n > base.Size() {
		return nil, ErrInvalidRange
	}

	return &Subvector{base: base, start: start, n: n}, nil
}

// Base returns the backing container. Exposed for view collapsing and
// alias checks; mutating the base directly bypasses the view contract.
func (sv *Subvector) Base() *vec.Sparse { return sv.base }

// Start returns the first global index of the window.
func (sv *Subvector) Start() int { return sv.start }

// Size returns the window length.
// Complexity: O(1).
func (sv *Subvector) Size() int { return sv.n }

// Capacity returns the maximum number of entries the window can address,
// which equals its size.
func (sv *Subvector) Capacity() int { return sv.n }

// NonZeros returns the number of entries stored inside the window.
// Complexity: O(log nnz).
func (sv *Subvector) NonZeros() int {
	return sv.base.LowerBound(sv.start+sv.n) - sv.base.LowerBound(sv.start)
}

// At returns the value at local index i, reading base[start+i].
// Panics with vec.ErrOutOfRange when i is outside [0, Size()).
// Complexity: O(log nnz).
func (sv *Subvector) At(i int) float64 {
	if i < 0 || i >= sv.n {
		panic(vec.ErrOutOfRange)
	}

	return sv.base.At(sv.start + i)
}

// Set writes v at local index i, storing into base[start+i] (inserting an
// entry when absent, per sparse subscript semantics).
// Errors: vec.ErrOutOfRange, vec.ErrNaNInf.
func (sv *Subvector) Set(i int, v float64) error {
	if i < 0 || i >= sv.n {
		return vec.ErrOutOfRange
	}

	return sv.base.Set(sv.start+i, v)
}

// Insert stores v at local index i and fails with vec.ErrDuplicateElement
// when the window already holds an entry there. The base is unchanged on
// failure.
func (sv *Subvector) Insert(i int, v float64) error {
	if i < 0 || i >= sv.n {
		return vec.ErrOutOfRange
	}

	return sv.base.Insert(sv.start+i, v)
}

// Erase removes the entry at local index i when present. Only the
// addressed entry is removed; nothing re-indexes.
func (sv *Subvector) Erase(i int) error {
	if i < 0 || i >= sv.n {
		return vec.ErrOutOfRange
	}

	return sv.base.Erase(sv.start + i)
}

// Reset erases every entry whose global index lies inside the window,
// leaving the rest of the base untouched. A logical "clear" of the range.
func (sv *Subvector) Reset() {
	sv.base.EraseRange(sv.base.LowerBound(sv.start), sv.base.LowerBound(sv.start+sv.n))
}

// Append stores v at local index i through the window's fill path. When
// check is true, default values (per the base container's eps policy) are
// silently skipped. Because a window may alias the middle of its base,
// the delegation goes through checked insertion rather than the container
// tail-append, so an out-of-order fill cannot corrupt the entry order;
// filling ascending positions remains the efficient pattern.
// Errors: vec.ErrOutOfRange, vec.ErrNaNInf, vec.ErrDuplicateElement.
func (sv *Subvector) Append(i int, v float64, check bool) error {
	if i < 0 || i >= sv.n {
		return vec.ErrOutOfRange
	}
	if check && sv.base.IsDefault(v) {
		return nil
	}

	return sv.base.Insert(sv.start+i, v)
}

// Reserve is a no-op: a window owns no storage of its own, and entry
// capacity belongs to the base container (use Base().Reserve to grow it).
// Kept so a window satisfies the same fill-path surface as the container.
func (sv *Subvector) Reserve(_ int) {}

// Scale multiplies every stored entry of the window by s in place. No
// entries are inserted or removed: zero slots stay zero, so the structural
// sparsity of the window is preserved.
// Complexity: O(nnz(view)).
func (sv *Subvector) Scale(s float64) {
	end := sv.base.LowerBound(sv.start + sv.n)
	for pos := sv.base.LowerBound(sv.start); pos < end; pos++ {
		sv.base.EntryAt(pos).Value *= s
	}
}

// Scan calls fn for each stored entry of the window in ascending local
// index order until fn returns false. Part of the vec.Scanner contract.
func (sv *Subvector) Scan(fn func(index int, value float64) bool) {
	end := sv.base.LowerBound(sv.start + sv.n)
	for pos := sv.base.LowerBound(sv.start); pos < end; pos++ {
		e := sv.base.EntryAt(pos)
		if !fn(e.Index-sv.start, e.Value) {
			return
		}
	}
}

// String renders the window as "len=N nnz=K {local:v, ...}".
func (sv *Subvector) String() string {
	var b []byte
	b = fmt.Appendf(b, "len=%d nnz=%d {", sv.n, sv.NonZeros())
	first := true
	sv.Scan(func(i int, v float64) bool {
		if !first {
			b = append(b, ", "...)
		}
		first = false
		b = fmt.Appendf(b, "%d:%g", i, v)

		return true
	})
	b = append(b, '}')

	return string(b)
}
