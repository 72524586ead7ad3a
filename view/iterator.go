// SPDX-License-Identifier: MIT

// Package view - Element proxy and Iterator over the window's entries.
//
// Purpose:
//   - Element adapts one stored entry of the base container into the
//     window's local index space: Index() = global - offset, Value() and
//     SetValue() read/write the backing slot directly.
//   - Iterator wraps the base container's positional cursor, offsetting
//     indices on dereference. Ascending global order is ascending local
//     order (monotonic offset subtraction preserves order).
//
// Invalidation:
//   - Both types hold positions/pointers into the base entry slice; any
//     structural mutation of the base (insert/erase) invalidates them.
//     This is the base container's own contract, passed through unchanged.

package view

import "github.com/katalvlaran/sparsevec/vec"

// Element is a reference-like proxy for one stored entry of a window.
// The zero value is not usable; obtain elements from Iterator.Item.
type Element struct {
	entry  *vec.Entry // backing entry (write-through)
	offset int        // window start within the base container
}

// Index returns the entry's local index (global index minus the window
// start). Local indices of stored entries always lie in [0, Size()).
func (e Element) Index() int { return e.entry.Index - e.offset }

// Value returns the entry's current value.
func (e Element) Value() float64 { return e.entry.Value }

// SetValue overwrites the entry's value, writing through to the base.
func (e Element) SetValue(v float64) { e.entry.Value = v }

// AddValue adds v to the entry's value in place.
func (e Element) AddValue(v float64) { e.entry.Value += v }

// MulValue multiplies the entry's value by v in place.
func (e Element) MulValue(v float64) { e.entry.Value *= v }

// Iterator is a forward cursor over the stored entries of a window.
// Iterators obtained from the same window compare by position; the End()
// iterator is the usual half-open sentinel.
type Iterator struct {
	base   *vec.Sparse // backing container
	pos    int         // current position in the base entry slice
	offset int         // window start within the base container
}

// Begin returns an iterator at the first stored entry of the window
// (base.LowerBound(start) wrapped with the window offset).
// Complexity: O(log nnz).
func (sv *Subvector) Begin() Iterator {
	return Iterator{base: sv.base, pos: sv.base.LowerBound(sv.start), offset: sv.start}
}

// End returns the half-open sentinel just past the last stored entry of
// the window (base.LowerBound(start+n) wrapped with the window offset).
// Complexity: O(log nnz).
func (sv *Subvector) End() Iterator {
	return Iterator{base: sv.base, pos: sv.base.LowerBound(sv.start + sv.n), offset: sv.start}
}

// Find returns an iterator to the entry with local index i, or End() when
// the window stores nothing there. The result is invalidated by inserting
// operations, like any other iterator.
// Complexity: O(log nnz).
func (sv *Subvector) Find(i int) Iterator {
	pos := sv.base.Find(sv.start + i)
	if pos == sv.base.NonZeros() {
		return sv.End()
	}

	return Iterator{base: sv.base, pos: pos, offset: sv.start}
}

// LowerBound returns an iterator to the first stored entry whose local
// index is not less than i. Results falling at or past the window end
// clamp to End(), so LowerBound/UpperBound pairs always form valid ranges.
// Complexity: O(log nnz).
func (sv *Subvector) LowerBound(i int) Iterator {
	pos := sv.base.LowerBound(sv.start + i)
	if end := sv.base.LowerBound(sv.start + sv.n); pos > end {
		pos = end
	}

	return Iterator{base: sv.base, pos: pos, offset: sv.start}
}

// UpperBound returns an iterator to the first stored entry whose local
// index is strictly greater than i, clamped to End() at the window edge.
// Complexity: O(log nnz).
func (sv *Subvector) UpperBound(i int) Iterator {
	pos := sv.base.UpperBound(sv.start + i)
	if end := sv.base.LowerBound(sv.start + sv.n); pos > end {
		pos = end
	}

	return Iterator{base: sv.base, pos: pos, offset: sv.start}
}

// EraseIter removes the entry the iterator addresses and returns an
// iterator to the following entry. The argument (and every other
// outstanding iterator) is invalidated by the structural mutation.
func (sv *Subvector) EraseIter(it Iterator) Iterator {
	return Iterator{base: sv.base, pos: sv.base.EraseAt(it.pos), offset: sv.start}
}

// EraseIterRange removes the entries in [first, last) and returns an
// iterator to the entry that followed the range.
func (sv *Subvector) EraseIterRange(first, last Iterator) Iterator {
	return Iterator{base: sv.base, pos: sv.base.EraseRange(first.pos, last.pos), offset: sv.start}
}

// Next advances the iterator to the following stored entry.
func (it *Iterator) Next() { it.pos++ }

// Equal reports whether two iterators address the same position.
func (it Iterator) Equal(other Iterator) bool { return it.pos == other.pos }

// Distance returns the number of stored entries between it and other
// (other must not precede it).
func (it Iterator) Distance(other Iterator) int { return other.pos - it.pos }

// Item returns the proxy for the entry at the current position. Calling
// Item on End() or any invalidated iterator is a programmer error and
// panics via the base container's positional access.
func (it Iterator) Item() Element {
	return Element{entry: it.base.EntryAt(it.pos), offset: it.offset}
}

// Index is shorthand for Item().Index().
func (it Iterator) Index() int { return it.Item().Index() }

// Value is shorthand for Item().Value().
func (it Iterator) Value() float64 { return it.Item().Value() }
