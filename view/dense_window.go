// SPDX-License-Identifier: MIT

// Package view - DenseWindow: the dense sibling of Subvector.
//
// A DenseWindow exposes a contiguous range of a vec.Dense as a vector of
// its own. It exists so expression slicing covers both concrete storages;
// the interesting machinery (proxies, lookup, assignment protocol) lives
// with the sparse view, where structure actually changes under mutation.

package view

import "github.com/katalvlaran/sparsevec/vec"

// DenseWindow is a non-owning window over a contiguous range of a dense
// vector. Reads and writes go straight to the backing buffer.
type DenseWindow struct {
	base  *vec.Dense // backing dense vector
	start int        // first global index of the window
	n     int        // window length
}

var _ vec.Expr = (*DenseWindow)(nil)

// NewDenseWindow creates a window of length n over base starting at start.
// Errors: vec.ErrNilVector on nil base; ErrInvalidRange when n == 0,
// start < 0, or start+n > base.Size().
func NewDenseWindow(base *vec.Dense, start, n int) (*DenseWindow, error) {
	if base == nil {
		return nil, vec.ErrNilVector
	}
	if n <= 0 || start < 0 || start+n > base.Size() {
		return nil, ErrInvalidRange
	}

	return &DenseWindow{base: base, start: start, n: n}, nil
}

// Base returns the backing dense vector.
func (dw *DenseWindow) Base() *vec.Dense { return dw.base }

// Start returns the first global index of the window.
func (dw *DenseWindow) Start() int { return dw.start }

// Size returns the window length.
func (dw *DenseWindow) Size() int { return dw.n }

// At returns the value at local index i. Panics with vec.ErrOutOfRange
// outside [0, Size()).
func (dw *DenseWindow) At(i int) float64 {
	if i < 0 || i >= dw.n {
		panic(vec.ErrOutOfRange)
	}

	return dw.base.At(dw.start + i)
}

// Set writes v at local index i, writing through to the base.
// Errors: vec.ErrOutOfRange, vec.ErrNaNInf.
func (dw *DenseWindow) Set(i int, v float64) error {
	if i < 0 || i >= dw.n {
		return vec.ErrOutOfRange
	}

	return dw.base.Set(dw.start+i, v)
}

// CanAlias reports whether this window may read storage owned by v.
// Dense storage is disjoint from any Sparse; always false.
func (dw *DenseWindow) CanAlias(_ *vec.Sparse) bool { return false }
