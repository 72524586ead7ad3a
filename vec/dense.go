// SPDX-License-Identifier: MIT

// Package vec - Dense storage (flat buffer) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat float64 buffer for staging, assignment
//     sources and interop with external numeric routines.
//   - Mirror the Sparse surface where it makes sense (Size/At/Set/Clone) so
//     both storages satisfy the Expr contract.
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set: O(1); Clone: O(n).

package vec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dense is a concrete flat vector of float64 values.
type Dense struct {
	data []float64 // contiguous storage, len == Size()
	opts Options   // numeric policy shared with Sparse
}

var (
	_ Expr         = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a zero-filled dense vector of the given size.
// The size must be positive; ErrInvalidSize otherwise.
func NewDense(size int, opts ...Option) (*Dense, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return &Dense{data: make([]float64, size), opts: gatherOptions(opts...)}, nil
}

// DenseOf wraps the given values into a dense vector. The slice is copied;
// the result owns its storage. Panics with ErrInvalidSize on empty input
// (programmer error in literal construction).
func DenseOf(values ...float64) *Dense {
	if len(values) == 0 {
		panic(ErrInvalidSize)
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &Dense{data: data, opts: gatherOptions()}
}

// Size returns the length of the vector.
// Complexity: O(1).
func (d *Dense) Size() int { return len(d.data) }

// At returns the value at index i. Panics with ErrOutOfRange outside
// [0, Size()), matching the Sparse read convention.
// Complexity: O(1).
func (d *Dense) At(i int) float64 {
	if i < 0 || i >= len(d.data) {
		panic(ErrOutOfRange)
	}

	return d.data[i]
}

// Set stores v at index i.
// Errors: ErrOutOfRange, ErrNaNInf (under the default numeric policy).
// Complexity: O(1).
func (d *Dense) Set(i int, v float64) error {
	if i < 0 || i >= len(d.data) {
		return ErrOutOfRange
	}
	if d.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}
	d.data[i] = v

	return nil
}

// CanAlias reports whether this expression may read storage owned by v.
// Dense vectors own flat storage disjoint from any Sparse; always false.
func (d *Dense) CanAlias(_ *Sparse) bool { return false }

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(n).
func (d *Dense) Clone() *Dense {
	out := &Dense{data: make([]float64, len(d.data)), opts: d.opts}
	copy(out.data, d.data)

	return out
}

// Data returns the backing slice. Mutations write through; callers that
// need isolation must Clone first.
func (d *Dense) Data() []float64 { return d.data }

// String renders the vector as "[v0, v1, ...]".
func (d *Dense) String() string {
	parts := make([]string, len(d.data))
	for i, v := range d.data {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
