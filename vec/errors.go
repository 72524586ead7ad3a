// SPDX-License-Identifier: MIT
// Package vec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vec
// package. All mutating operations MUST return these sentinels and tests
// MUST check them via errors.Is. Panics are reserved for programmer errors:
// option constructors with nonsensical values, positional access past the
// stored entries, and out-of-range reads (At panics with the ErrOutOfRange
// sentinel as its value, per the gonum accessor convention).

package vec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vec: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// size/index -> NaN policy -> structural violations (duplicate, order).

var (
	// ErrInvalidSize is returned when a constructor receives a non-positive
	// logical size. Constructors must validate before allocation.
	ErrInvalidSize = errors.New("vec: size must be > 0")

	// ErrOutOfRange indicates that an element index is outside [0, Size()).
	// Mutators (Set/Insert/Erase/Append) return it; the read accessor At
	// panics with it, carrying the same sentinel as the panic value.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrSizeMismatch indicates incompatible logical sizes between operands,
	// e.g. assigning or combining vectors of different Size().
	// Detection always precedes mutation (fail-fast, no partial writes).
	ErrSizeMismatch = errors.New("vec: size mismatch")

	// ErrDuplicateElement signals that Insert targeted an index already
	// holding a stored entry. The container state is unchanged.
	ErrDuplicateElement = errors.New("vec: duplicate element")

	// ErrUnorderedAppend signals that Append received an index that is not
	// strictly larger than the largest stored index. The O(1) comparison
	// runs in every build; a violated precondition fails loudly instead of
	// corrupting the entry order.
	ErrUnorderedAppend = errors.New("vec: append index not strictly increasing")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, Insert, Append).
	ErrNaNInf = errors.New("vec: NaN or Inf encountered")

	// ErrZeroDivision is returned when a scalar division receives a zero
	// divisor. A recoverable error rather than an assertion: the enclosing
	// APIs already return error, and the rejection happens before any
	// evaluation can produce ±Inf.
	ErrZeroDivision = errors.New("vec: division by zero")

	// ErrNilVector indicates that a nil container (receiver or argument)
	// was used where a concrete vector is required.
	ErrNilVector = errors.New("vec: nil vector")
)
