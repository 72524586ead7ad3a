package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsevec/expr"
	"github.com/katalvlaran/sparsevec/vec"
	"github.com/katalvlaran/sparsevec/view"
)

// opaqueExpr is an expression kind the slicing path has never heard of.
type opaqueExpr struct{ n int }

func (o opaqueExpr) Size() int { return o.n }

func (o opaqueExpr) At(int) float64 { return 1 }

func (o opaqueExpr) CanAlias(*vec.Sparse) bool { return false }

// sliceRef evaluates e in full and cuts [start, start+n) out of the dense
// result: the reference every push-down must reproduce.
func sliceRef(e vec.Expr, start, n int) []float64 {
	return evalDense(e)[start : start+n]
}

// TestSubviewOverStorage slices concrete storage into windows.
func TestSubviewOverStorage(t *testing.T) {
	a, _ := fixtures(t)

	sv, err := expr.Subview(a, 2, 4)
	require.NoError(t, err)
	require.IsType(t, (*view.Subvector)(nil), sv) // sparse storage yields a sparse window
	require.Equal(t, sliceRef(a, 2, 4), evalDense(sv))

	d := vec.DenseOf(1, 2, 3, 4, 5)
	dw, err := expr.Subview(d, 1, 3)
	require.NoError(t, err)
	require.IsType(t, (*view.DenseWindow)(nil), dw)
	require.Equal(t, []float64{2, 3, 4}, evalDense(dw))

	_, err = expr.Subview(nil, 0, 1)
	require.ErrorIs(t, err, expr.ErrNilExpr)
}

// TestSubviewCollapsesNesting checks that a window of a window is a single
// window over the original storage, with composed offsets.
func TestSubviewCollapsesNesting(t *testing.T) {
	a, _ := fixtures(t)

	outer, err := expr.Subview(a, 2, 6) // globals 2..7
	require.NoError(t, err)
	inner, err := expr.Subview(outer, 1, 3) // globals 3..5
	require.NoError(t, err)

	sv, ok := inner.(*view.Subvector)
	require.True(t, ok)
	require.Same(t, a, sv.Base()) // one hop, not a chain
	require.Equal(t, 3, sv.Start())
	require.Equal(t, sliceRef(a, 3, 3), evalDense(sv))

	// The inner range is validated against the outer window, not the base.
	_, err = expr.Subview(outer, 4, 5) // 4+5 > 6
	require.ErrorIs(t, err, view.ErrInvalidRange)
}

// TestSubviewPushdownPerNode verifies the rewrite for every expression
// kind: slicing the expression equals slicing its evaluated result.
func TestSubviewPushdownPerNode(t *testing.T) {
	a, b := fixtures(t)
	build := func(fn func() (vec.Expr, error)) vec.Expr {
		e, err := fn()
		require.NoError(t, err)

		return e
	}

	nodes := map[string]vec.Expr{
		"add": build(func() (vec.Expr, error) { return expr.Add(a, b) }),
		"sub": build(func() (vec.Expr, error) { return expr.SubOf(a, b) }),
		"mul": build(func() (vec.Expr, error) { return expr.MulOf(a, b) }),
		"smul": build(func() (vec.Expr, error) { return expr.ScalarMul(a, 2.5) }),
		"sdiv": build(func() (vec.Expr, error) { return expr.ScalarDiv(a, 3) }),
		"abs": build(func() (vec.Expr, error) { return expr.Abs(a) }),
		"eval": build(func() (vec.Expr, error) {
			s, err := expr.Add(a, b)
			if err != nil {
				return nil, err
			}

			return expr.Eval(s)
		}),
		"trans": build(func() (vec.Expr, error) { return expr.Trans(a) }),
	}

	for name, e := range nodes {
		t.Run(name, func(t *testing.T) {
			for _, win := range [][2]int{{0, 8}, {2, 4}, {3, 1}, {5, 3}} {
				sv, err := expr.Subview(e, win[0], win[1])
				require.NoError(t, err, "window %v", win)
				require.Equal(t, sliceRef(e, win[0], win[1]), evalDense(sv), "window %v", win)
			}
		})
	}
}

// TestSubviewStaysLazy confirms the push-down rebuilds the same node kind
// around sliced operands instead of materializing anything.
func TestSubviewStaysLazy(t *testing.T) {
	a, b := fixtures(t)
	sum, err := expr.Add(a, b)
	require.NoError(t, err)

	sv, err := expr.Subview(sum, 2, 4)
	require.NoError(t, err)
	add, ok := sv.(*expr.AddExpr)
	require.True(t, ok) // still an addition node
	require.IsType(t, (*view.Subvector)(nil), add.Left())
	require.IsType(t, (*view.Subvector)(nil), add.Right())

	// Laziness: a later write to the base is visible through the slice.
	require.NoError(t, a.Set(3, 10))
	require.Equal(t, 14.0, sv.At(1)) // global 3: 10 + 4
}

// TestSubviewScalarDivExact pins the rounding trap: the sliced quotient
// applies the very same reciprocal as the full quotient, so the two paths
// match bit for bit.
func TestSubviewScalarDivExact(t *testing.T) {
	a, _ := fixtures(t)
	q, err := expr.ScalarDiv(a, 3)
	require.NoError(t, err)

	sv, err := expr.Subview(q, 1, 6)
	require.NoError(t, err)
	require.Equal(t, sliceRef(q, 1, 6), evalDense(sv)) // exact, no tolerance
}

// TestSubviewEvalReevaluates checks sub(eval(x)) == eval(sub(x)): the
// slice lands inside the evaluation point and only the window is computed.
func TestSubviewEvalReevaluates(t *testing.T) {
	a, b := fixtures(t)
	sum, err := expr.Add(a, b)
	require.NoError(t, err)
	ev, err := expr.Eval(sum)
	require.NoError(t, err)

	sv, err := expr.Subview(ev, 3, 4)
	require.NoError(t, err)
	sliced, ok := sv.(*expr.EvalExpr)
	require.True(t, ok)
	require.Equal(t, 4, sliced.Size())
	require.Equal(t, sliceRef(ev, 3, 4), evalDense(sliced))
}

// TestSubviewRejectsOpaqueExpression refuses to slice an expression kind
// it cannot push through.
func TestSubviewRejectsOpaqueExpression(t *testing.T) {
	_, err := expr.Subview(opaqueExpr{n: 8}, 0, 4)
	require.ErrorIs(t, err, expr.ErrViewOverExpression)

	// The rejection also surfaces from inside a known node.
	wrapped, err := expr.ScalarMul(opaqueExpr{n: 8}, 2)
	require.NoError(t, err)
	_, err = expr.Subview(wrapped, 0, 4)
	require.ErrorIs(t, err, expr.ErrViewOverExpression)
}
