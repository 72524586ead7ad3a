package expr_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsevec/expr"
	"github.com/katalvlaran/sparsevec/vec"
)

// TestMaterializeStorage materializes concrete storage: a plain copy with
// identical entries.
func TestMaterializeStorage(t *testing.T) {
	a, _ := fixtures(t)
	m, err := expr.Materialize(a)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(a.Entries(), m.Entries()))
	require.False(t, m.CanAlias(a)) // fresh storage, not a view of a

	_, err = expr.Materialize(nil)
	require.ErrorIs(t, err, expr.ErrNilExpr)
}

// TestMaterializeDenseFallback materializes a node whose operand carries
// no sparse structure, exercising the dense enumeration path.
func TestMaterializeDenseFallback(t *testing.T) {
	d := vec.DenseOf(0, 1, 0, -2, 0, 0)
	e, err := expr.ScalarMul(d, 2)
	require.NoError(t, err)

	m, err := expr.Materialize(e)
	require.NoError(t, err)
	require.Equal(t, []vec.Entry{{Index: 1, Value: 2}, {Index: 3, Value: -4}}, m.Entries())

	md, err := expr.MaterializeDense(e)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 0, -4, 0, 0}, md.Data())
}

// TestMaterializeRejectsNaN propagates the fresh target's numeric policy:
// an expression that computes NaN cannot be materialized.
func TestMaterializeRejectsNaN(t *testing.T) {
	bad, err := vec.NewDense(4, vec.WithValidation(false))
	require.NoError(t, err)
	bad.Data()[2] = math.Inf(1)

	_, err = expr.Materialize(bad)
	require.ErrorIs(t, err, vec.ErrNaNInf)
	_, err = expr.MaterializeDense(bad)
	require.ErrorIs(t, err, vec.ErrNaNInf)
}
