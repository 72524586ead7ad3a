package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsevec/vec"
	"github.com/katalvlaran/sparsevec/view"
)

// TestDenseWindowConstruction mirrors the sparse window validation.
func TestDenseWindowConstruction(t *testing.T) {
	d := vec.DenseOf(1, 2, 3, 4, 5, 6)

	_, err := view.NewDenseWindow(nil, 0, 1)
	require.ErrorIs(t, err, vec.ErrNilVector)
	_, err = view.NewDenseWindow(d, 0, 0) // zero length
	require.ErrorIs(t, err, view.ErrInvalidRange)
	_, err = view.NewDenseWindow(d, 4, 3) // 4+3 > 6
	require.ErrorIs(t, err, view.ErrInvalidRange)

	dw, err := view.NewDenseWindow(d, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, dw.Size())
	require.Equal(t, 2, dw.Start())
	require.Same(t, d, dw.Base())
}

// TestDenseWindowReadWrite checks the offset translation both ways.
func TestDenseWindowReadWrite(t *testing.T) {
	d := vec.DenseOf(1, 2, 3, 4, 5, 6)
	dw, err := view.NewDenseWindow(d, 2, 3)
	require.NoError(t, err)

	require.Equal(t, 3.0, dw.At(0)) // local 0 == global 2
	require.Equal(t, 5.0, dw.At(2))
	require.PanicsWithValue(t, vec.ErrOutOfRange, func() { dw.At(3) })

	require.NoError(t, dw.Set(1, -9))
	require.Equal(t, -9.0, d.At(3)) // write landed at global 3
	require.ErrorIs(t, dw.Set(3, 1), vec.ErrOutOfRange)
	require.Equal(t, []float64{1, 2, 3, -9, 5, 6}, d.Data())

	require.False(t, dw.CanAlias(nil)) // dense storage never aliases sparse
}
