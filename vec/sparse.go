// SPDX-License-Identifier: MIT

// Package vec - Sparse storage (sorted entries) & safe mutators.
//
// Purpose:
//   - Provide the "sorted sparse vector" capability: (index, value) pairs kept
//     strictly ascending by index, only non-default values stored.
//   - Guarantee safety at the public surface: mutators return errors instead of
//     panicking; reads follow the gonum convention (panic on programmer-error
//     indices, since every valid index has a well-defined value, possibly zero).
//   - Keep algorithmic determinism (sorted order, fixed loop orders).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// Complexity quicksheet:
//   - At/Find/LowerBound/UpperBound: O(log nnz); Set/Insert/Erase: O(nnz) worst
//     case (slice shift); Append: amortized O(1); Reset: O(1); Clone: O(nnz).

package vec

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sparse is a sorted sparse vector of float64 values.
//   - size holds the logical length (number of addressable slots).
//   - entries is the stored element list, strictly ascending by Index.
//   - opts carries the numeric policy resolved at construction.
type Sparse struct {
	size    int     // logical length (> 0)
	entries []Entry // sorted ascending by Index; len == NonZeros()
	opts    Options // numeric policy (validation, default tolerance)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Expr         = (*Sparse)(nil)
	_ Scanner      = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates a sparse vector with the given logical size and no
// stored entries. The size must be positive; ErrInvalidSize otherwise.
func NewSparse(size int, opts ...Option) (*Sparse, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return &Sparse{size: size, opts: gatherOptions(opts...)}, nil
}

// SparseOf creates a sparse vector of the given size and populates it from
// the supplied entries via Set, so the input order does not matter and
// duplicate indices resolve to the last write. Mostly a test/bootstrap aid.
func SparseOf(size int, entries []Entry, opts ...Option) (*Sparse, error) {
	s, err := NewSparse(size, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = s.Set(e.Index, e.Value); err != nil {
			return nil, fmt.Errorf("SparseOf(%d): %w", e.Index, err)
		}
	}

	return s, nil
}

// Size returns the logical length of the vector.
// Complexity: O(1).
func (s *Sparse) Size() int { return s.size }

// NonZeros returns the number of stored entries. Note that an explicitly
// stored zero (via Set) still counts as a stored entry, exactly like the
// subscript-insert semantics of classic sparse containers.
// Complexity: O(1).
func (s *Sparse) NonZeros() int { return len(s.entries) }

// Capacity returns the entry capacity currently reserved.
// Complexity: O(1).
func (s *Sparse) Capacity() int { return cap(s.entries) }

// Reserve grows the entry capacity to at least n. Stored entries are
// preserved; positions remain valid (the backing array may move, positions
// are indices, not pointers).
func (s *Sparse) Reserve(n int) {
	if n <= cap(s.entries) {
		return
	}
	grown := make([]Entry, len(s.entries), n)
	copy(grown, s.entries)
	s.entries = grown
}

// At returns the value at index i, 0.0 when no entry is stored there.
// Panics with ErrOutOfRange when i is outside [0, Size()) — reads follow
// the gonum accessor convention; every in-range slot has a defined value.
// Complexity: O(log nnz).
func (s *Sparse) At(i int) float64 {
	if i < 0 || i >= s.size {
		panic(ErrOutOfRange)
	}
	pos := s.LowerBound(i)
	if pos < len(s.entries) && s.entries[pos].Index == i {
		return s.entries[pos].Value
	}

	return 0
}

// Set stores v at index i, inserting a new entry when absent and updating
// in place when present. Explicit zeros are stored (subscripting a sparse
// container is an insert-or-fetch operation); use Erase to drop an entry.
// Errors: ErrOutOfRange, ErrNaNInf (under the default numeric policy).
// Complexity: O(log nnz) search + O(nnz) shift on insertion.
func (s *Sparse) Set(i int, v float64) error {
	if i < 0 || i >= s.size {
		return ErrOutOfRange
	}
	if err := s.validateValue(v); err != nil {
		return err
	}

	pos := s.LowerBound(i)
	if pos < len(s.entries) && s.entries[pos].Index == i {
		s.entries[pos].Value = v // update in place, structure unchanged
		return nil
	}
	s.insertAt(pos, Entry{Index: i, Value: v})

	return nil
}

// Insert stores v at index i and fails with ErrDuplicateElement when an
// entry already exists there; the container is left unchanged on failure.
// Errors: ErrOutOfRange, ErrNaNInf, ErrDuplicateElement.
func (s *Sparse) Insert(i int, v float64) error {
	if i < 0 || i >= s.size {
		return ErrOutOfRange
	}
	if err := s.validateValue(v); err != nil {
		return err
	}

	pos := s.LowerBound(i)
	if pos < len(s.entries) && s.entries[pos].Index == i {
		return ErrDuplicateElement
	}
	s.insertAt(pos, Entry{Index: i, Value: v})

	return nil
}

// Erase removes the entry at index i when present; absent indices are a
// no-op (sparse removal just deletes the entry, nothing re-indexes).
// Errors: ErrOutOfRange.
func (s *Sparse) Erase(i int) error {
	if i < 0 || i >= s.size {
		return ErrOutOfRange
	}
	pos := s.LowerBound(i)
	if pos < len(s.entries) && s.entries[pos].Index == i {
		s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	}

	return nil
}

// EraseAt removes the entry at position pos (a LowerBound/Find result) and
// returns the position of the following entry. The position must address a
// stored entry; anything else is a programmer error and panics.
func (s *Sparse) EraseAt(pos int) int {
	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)

	return pos
}

// EraseRange removes the entries in positions [first, last) and returns the
// new position of the entry that followed the range. first > last or
// positions outside [0, NonZeros()] are programmer errors and panic.
func (s *Sparse) EraseRange(first, last int) int {
	if first < 0 || first > last || last > len(s.entries) {
		panic(panicEraseRangeInvalid)
	}
	s.entries = append(s.entries[:first], s.entries[last:]...)

	return first
}

// Reset drops every stored entry; the logical size is unchanged.
// Complexity: O(1).
func (s *Sparse) Reset() { s.entries = s.entries[:0] }

// Find returns the position of the entry with index i, or NonZeros() (the
// end sentinel) when no such entry is stored.
// Complexity: O(log nnz).
func (s *Sparse) Find(i int) int {
	pos := s.LowerBound(i)
	if pos < len(s.entries) && s.entries[pos].Index == i {
		return pos
	}

	return len(s.entries)
}

// LowerBound returns the position of the first entry whose index is not
// less than i; NonZeros() when every stored index is smaller.
// Complexity: O(log nnz).
func (s *Sparse) LowerBound(i int) int {
	return sort.Search(len(s.entries), func(p int) bool { return s.entries[p].Index >= i })
}

// UpperBound returns the position of the first entry whose index is
// strictly greater than i; NonZeros() when no stored index exceeds i.
// Complexity: O(log nnz).
func (s *Sparse) UpperBound(i int) int {
	return sort.Search(len(s.entries), func(p int) bool { return s.entries[p].Index > i })
}

// EntryAt returns a pointer to the stored entry at position pos, enabling
// write-through proxies (view.Element). The pointer stays valid until the
// next structural mutation (insert/erase/Reserve); callers must not retain
// it across mutations. Invalid positions are programmer errors and panic.
func (s *Sparse) EntryAt(pos int) *Entry {
	return &s.entries[pos]
}

// Append stores v at index i through the ordered fast path: i must be
// strictly larger than the largest stored index. The precondition is an
// O(1) comparison against the last entry, so it is checked in every build;
// violations return ErrUnorderedAppend instead of corrupting the order.
// When check is true, default values (|v| <= eps, see WithEpsilon) are
// silently skipped.
// Errors: ErrOutOfRange, ErrNaNInf, ErrUnorderedAppend.
// Complexity: amortized O(1).
func (s *Sparse) Append(i int, v float64, check bool) error {
	if i < 0 || i >= s.size {
		return ErrOutOfRange
	}
	if err := s.validateValue(v); err != nil {
		return err
	}
	if check && s.IsDefault(v) {
		return nil
	}
	if n := len(s.entries); n > 0 && s.entries[n-1].Index >= i {
		return ErrUnorderedAppend
	}
	s.entries = append(s.entries, Entry{Index: i, Value: v})

	return nil
}

// Validating reports whether the numeric policy rejects NaN/±Inf at
// ingestion. Views consult it to pre-validate assignment sources so a
// policy rejection surfaces before the target range is cleared.
func (s *Sparse) Validating() bool { return s.opts.validateNaNInf }

// IsDefault reports whether v counts as a default (skippable) value under
// the eps tolerance of the numeric policy. Exposed because views delegate
// their default-value checks to the backing container's policy.
func (s *Sparse) IsDefault(v float64) bool {
	return math.Abs(v) <= s.opts.eps
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(nnz).
func (s *Sparse) Clone() *Sparse {
	out := &Sparse{size: s.size, opts: s.opts}
	if len(s.entries) > 0 {
		out.entries = make([]Entry, len(s.entries))
		copy(out.entries, s.entries)
	}

	return out
}

// Entries returns a copy of the stored entries in ascending index order.
// Complexity: O(nnz).
func (s *Sparse) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// CanAlias reports whether this vector shares storage with v: true exactly
// when v is the receiver itself. Part of the Expr contract.
func (s *Sparse) CanAlias(v *Sparse) bool { return s == v }

// Scan calls fn for each stored entry in ascending index order until fn
// returns false. Part of the Scanner contract.
func (s *Sparse) Scan(fn func(index int, value float64) bool) {
	for p := range s.entries {
		if !fn(s.entries[p].Index, s.entries[p].Value) {
			return
		}
	}
}

// String renders the vector as "len=N nnz=K {i:v, ...}".
func (s *Sparse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "len=%d nnz=%d {", s.size, len(s.entries))
	for p, e := range s.entries {
		if p > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d:%g", e.Index, e.Value)
	}
	b.WriteString("}")

	return b.String()
}

// ---------- private helpers ----------

// insertAt shifts the tail right and writes e at position pos.
func (s *Sparse) insertAt(pos int, e Entry) {
	s.entries = append(s.entries, Entry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = e
}

// validateValue applies the numeric policy: reject NaN/±Inf when enabled.
func (s *Sparse) validateValue(v float64) error {
	if s.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

