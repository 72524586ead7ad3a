// SPDX-License-Identifier: MIT

// Package vec - gonum interop adapters.
//
// Purpose:
//   - Hand vectors to gonum routines (mat, blas64) without manual copying
//     at every call site, and ingest gonum results back.
//   - Adapters copy by default: sparsevec containers keep exclusive
//     ownership of their storage; RawVector is the only no-copy escape
//     hatch and is documented as write-through.

package vec

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// ToVecDense returns a gonum dense vector holding a copy of the data.
// Complexity: O(n).
func (d *Dense) ToVecDense() *mat.VecDense {
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return mat.NewVecDense(len(out), out)
}

// RawVector exposes the backing storage as a blas64 vector with unit
// increment. No copy: gonum kernels write straight into this Dense.
func (d *Dense) RawVector() blas64.Vector {
	return blas64.Vector{N: len(d.data), Data: d.data, Inc: 1}
}

// DenseFromVecDense copies a gonum dense vector into a Dense.
// Errors: ErrNilVector on nil input, ErrInvalidSize on zero length.
func DenseFromVecDense(v *mat.VecDense) (*Dense, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	n := v.Len()
	if n == 0 {
		return nil, ErrInvalidSize
	}
	d := &Dense{data: make([]float64, n), opts: gatherOptions()}
	for i := 0; i < n; i++ {
		d.data[i] = v.AtVec(i)
	}

	return d, nil
}

// ToVecDense materializes the sparse vector into a gonum dense vector,
// zero-filling the gaps between stored entries.
// Complexity: O(n).
func (s *Sparse) ToVecDense() *mat.VecDense {
	out := make([]float64, s.size)
	for _, e := range s.entries {
		out[e.Index] = e.Value
	}

	return mat.NewVecDense(s.size, out)
}
