// Package view_test contains unit tests for the window assignment
// protocol: plain/compound assignment, aliasing, scalar scaling.
package view_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/sparsevec/vec"
	"github.com/katalvlaran/sparsevec/view"
)

// windowValues reads the window densely for comparisons.
func windowValues(sv *view.Subvector) []float64 {
	out := make([]float64, sv.Size())
	for i := range out {
		out[i] = sv.At(i)
	}

	return out
}

// TestAssignDenseRoundTrip assigns a dense vector into a window and reads
// it back exactly.
func TestAssignDenseRoundTrip(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 3, 4)
	require.NoError(t, err)

	x := vec.DenseOf(1, 0, -2.5, 4)
	require.NoError(t, sv.Assign(x))

	require.Equal(t, []float64{1, 0, -2.5, 4}, windowValues(sv)) // exact round trip
	require.Equal(t, 3, sv.NonZeros())                           // the dense zero was skipped
	require.Equal(t, 5.0, base.At(2))                            // outside the window untouched
	require.Equal(t, 3.0, base.At(7))
}

// TestAssignSparseRoundTrip assigns a sparse vector into a window.
func TestAssignSparseRoundTrip(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 3, 4)
	require.NoError(t, err)

	x, err := vec.SparseOf(4, []vec.Entry{{Index: 0, Value: 7}, {Index: 3, Value: -7}})
	require.NoError(t, err)
	require.NoError(t, sv.Assign(x))

	require.Equal(t, []float64{7, 0, 0, -7}, windowValues(sv))
	require.Equal(t, 7.0, base.At(3))  // local 0 → global 3
	require.Equal(t, -7.0, base.At(6)) // local 3 → global 6
}

// TestAssignSizeMismatchFailsFast ensures no mutation happens on mismatch.
func TestAssignSizeMismatchFailsFast(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 3, 4)
	require.NoError(t, err)

	before := base.Entries()
	require.ErrorIs(t, sv.Assign(vec.DenseOf(1, 2)), vec.ErrSizeMismatch)      // wrong size
	require.ErrorIs(t, sv.AddAssign(vec.DenseOf(1, 2)), vec.ErrSizeMismatch)   // compound too
	require.ErrorIs(t, sv.MulAssign(vec.DenseOf(1, 2)), vec.ErrSizeMismatch)
	require.ErrorIs(t, sv.Assign(nil), vec.ErrNilVector)
	require.Equal(t, before, base.Entries()) // base untouched by any failure
}

// TestAssignAliasingOverlap assigns one window of a container into an
// overlapping window of the same container; the temporary must protect
// the read from the concurrent clear.
func TestAssignAliasingOverlap(t *testing.T) {
	base, err := vec.SparseOf(10, []vec.Entry{
		{Index: 2, Value: 5}, {Index: 3, Value: 1}, {Index: 5, Value: -1}, {Index: 7, Value: 3},
	})
	require.NoError(t, err)

	dst, err := view.New(base, 2, 4) // globals 2..5
	require.NoError(t, err)
	src, err := view.New(base, 4, 4) // globals 4..7, overlaps dst on 4..5
	require.NoError(t, err)

	require.True(t, src.CanAlias(base))   // same backing container
	require.True(t, src.IsAliased(base))

	want := windowValues(src) // snapshot source values before assignment
	require.NoError(t, dst.Assign(src))

	require.Equal(t, want, windowValues(dst)) // destination equals the pre-assignment source
	require.Equal(t, 3.0, base.At(7))         // outside dst untouched
}

// TestAssignSelf is a no-hazard degenerate: a window assigned from itself.
func TestAssignSelf(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 3, 4)
	require.NoError(t, err)

	want := windowValues(sv)
	require.NoError(t, sv.Assign(sv)) // aliases trivially; temporary path
	require.Equal(t, want, windowValues(sv))
}

// TestAddSubAssign verifies compound += and -= against a naive reference.
func TestAddSubAssign(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 3, 4) // values {0, 0, -1, 0}
	require.NoError(t, err)

	rhs := vec.DenseOf(1, 0, 1, -4)
	require.NoError(t, sv.AddAssign(rhs))
	require.Equal(t, []float64{1, 0, 0, -4}, windowValues(sv)) // -1+1 cancels to zero
	require.Equal(t, 2, sv.NonZeros())                         // cancelled slot stores nothing

	require.NoError(t, sv.SubAssign(rhs))
	require.Equal(t, []float64{0, 0, -1, 0}, windowValues(sv)) // back to the original values
}

// TestMulAssign verifies elementwise *= semantics: only stored entries can
// stay non-zero.
func TestMulAssign(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 2, 6) // values {5,0,0,-1,0,3} at locals 0..5
	require.NoError(t, err)

	rhs := vec.DenseOf(2, 9, 9, 3, 9, 0)
	require.NoError(t, sv.MulAssign(rhs))
	require.Equal(t, []float64{10, 0, 0, -3, 0, 0}, windowValues(sv))
	require.Equal(t, 2, sv.NonZeros()) // 3*0 dropped, zero gaps never materialized

	// The cancelled slot stores no explicit zero entry in the base either.
	var stored []vec.Entry
	sv.Scan(func(i int, v float64) bool {
		stored = append(stored, vec.Entry{Index: i, Value: v})

		return true
	})
	require.Equal(t, []vec.Entry{{Index: 0, Value: 10}, {Index: 3, Value: -3}}, stored)
}

// TestScaleDivRoundTrip checks scalar *= s then /= s restores the original
// values within floating-point tolerance.
func TestScaleDivRoundTrip(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 2, 6)
	require.NoError(t, err)

	orig := windowValues(sv)
	sv.ScaleAssign(3.7)
	require.NoError(t, sv.DivAssign(3.7))

	got := windowValues(sv)
	for i := range orig {
		require.True(t, scalar.EqualWithinAbsOrRel(orig[i], got[i], 1e-12, 1e-12),
			"slot %d: want %g, got %g", i, orig[i], got[i])
	}
}

// TestDivAssignZero rejects a zero divisor without touching the window.
func TestDivAssignZero(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 2, 6)
	require.NoError(t, err)

	before := windowValues(sv)
	require.ErrorIs(t, sv.DivAssign(0), vec.ErrZeroDivision)
	require.Equal(t, before, windowValues(sv))
}

// TestAssignNaNRejectedBeforeMutation ensures the numeric-policy guard
// runs before the window is cleared.
func TestAssignNaNRejectedBeforeMutation(t *testing.T) {
	base := newBase(t)
	sv, err := view.New(base, 3, 4)
	require.NoError(t, err)

	bad, err := vec.NewDense(4, vec.WithValidation(false)) // a source allowed to hold NaN
	require.NoError(t, err)
	require.NoError(t, bad.Set(1, 1)) // finite neighbor
	bad.Data()[2] = math.NaN()        // smuggle a NaN past the relaxed policy

	before := base.Entries()
	require.ErrorIs(t, sv.Assign(bad), vec.ErrNaNInf)
	require.Equal(t, before, base.Entries()) // nothing was cleared or written
}
