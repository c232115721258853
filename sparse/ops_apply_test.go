// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/sparse"
)

func TestUnaryOperatorApplier(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	m := fixtureM(t, ctx)

	neg, err := sparse.NewUnaryOperatorApplier(ctx, algebra.AdditiveInverse[int64](), noAccum[int64]())
	require.NoError(t, err)
	out := emptyMatrix[int64](t, ctx, 2, 2)
	require.NoError(t, neg.MatrixApply(out, m))
	require.Equal(t, cells[int64]{{0, 0}: -1, {0, 1}: -2, {1, 0}: -3, {1, 1}: -4}, dump(t, out))

	// the result has the pattern of the input
	one, err := sparse.NewUnaryOperatorApplier(ctx, algebra.One[int64](), noAccum[int64]())
	require.NoError(t, err)
	sparseIn := mustMatrix(t, ctx, 2, 2, cells[int64]{{1, 0}: 42})
	require.NoError(t, one.MatrixApply(out, sparseIn))
	require.Equal(t, cells[int64]{{1, 0}: 1}, dump(t, out))

	conv, err := sparse.NewUnaryOperatorApplier(ctx, algebra.Convert[int64, float64](), noAccum[float64]())
	require.NoError(t, err)
	f := emptyMatrix[float64](t, ctx, 2, 2)
	require.NoError(t, conv.MatrixApply(f, m))
	require.Equal(t, cells[float64]{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4}, dump(t, f))

	abs, err := sparse.NewUnaryOperatorApplier(ctx, algebra.AbsoluteValue[int32](), noAccum[int32]())
	require.NoError(t, err)
	w := emptyVector[int32](t, ctx, 2)
	pick := mustVector(t, ctx, 2, entries[bool]{0: true})
	require.NoError(t, abs.VectorApplyWithMask(w, sparse.ValueVectorMask(pick), mustVector(t, ctx, 2, entries[int32]{0: -3, 1: 2})))
	require.Equal(t, entries[int32]{0: 3}, dumpVector(t, w))

	tr, err := sparse.NewUnaryOperatorApplier(ctx, algebra.Identity[int64](), noAccum[int64](), sparse.WithTransposeFirstInput())
	require.NoError(t, err)
	tall := emptyMatrix[int64](t, ctx, 3, 2)
	require.NoError(t, tr.MatrixApply(tall, mustMatrix(t, ctx, 2, 3, cells[int64]{{0, 2}: 5})))
	require.Equal(t, cells[int64]{{2, 0}: 5}, dump(t, tall))
	require.ErrorIs(t, tr.MatrixApply(out, tall), sparse.ErrDimensionMismatch)
}

func TestBinaryOperatorApplier(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	m := fixtureM(t, ctx)
	out := emptyMatrix[int64](t, ctx, 2, 2)

	minus, err := sparse.NewBinaryOperatorApplier(ctx, algebra.Minus[int64](), noAccum[int64]())
	require.NoError(t, err)
	require.NoError(t, minus.MatrixWithScalarFirst(out, 10, m))
	require.Equal(t, cells[int64]{{0, 0}: 9, {0, 1}: 8, {1, 0}: 7, {1, 1}: 6}, dump(t, out))

	// an explicit zero stays stored
	require.NoError(t, minus.MatrixWithScalarSecond(out, m, 1))
	require.Equal(t, cells[int64]{{0, 0}: 0, {0, 1}: 1, {1, 0}: 2, {1, 1}: 3}, dump(t, out))

	gt, err := sparse.NewBinaryOperatorApplier(ctx, algebra.GreaterThan[int64](), noAccum[bool]())
	require.NoError(t, err)
	flags := emptyMatrix[bool](t, ctx, 2, 2)
	require.NoError(t, gt.MatrixWithScalarSecondWithMask(flags, sparse.StructuralMatrixMask(diagonalPattern(t, ctx)), m, 2))
	require.Equal(t, cells[bool]{{0, 0}: false, {1, 1}: true}, dump(t, flags))

	div, err := sparse.NewBinaryOperatorApplier(ctx, algebra.Divide[int64](), noAccum[int64]())
	require.NoError(t, err)
	u := mustVector(t, ctx, 3, entries[int64]{0: 3, 2: 4})
	w := emptyVector[int64](t, ctx, 3)
	require.NoError(t, div.VectorWithScalarFirst(w, 12, u))
	require.Equal(t, entries[int64]{0: 4, 2: 3}, dumpVector(t, w))

	times, err := sparse.NewBinaryOperatorApplier(ctx, algebra.Times[int64](), algebra.Accumulate(algebra.Plus[int64]()))
	require.NoError(t, err)
	require.NoError(t, times.VectorWithScalarSecond(w, u, 2))
	require.Equal(t, entries[int64]{0: 10, 2: 11}, dumpVector(t, w))

	require.ErrorIs(t, times.VectorWithScalarSecondWithMask(w, sparse.ValueVectorMask(emptyVector[bool](t, ctx, 2)), u, 2), sparse.ErrShapeMismatch)
}

// With the scalar bound first the matrix is the second operand, so only the
// second-input transpose reaches it.
func TestBinaryOperatorApplier_TransposeBoundOperand(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	wide := mustMatrix(t, ctx, 2, 3, cells[int64]{{0, 2}: 4, {1, 0}: 1})

	second, err := sparse.NewBinaryOperatorApplier(ctx, algebra.Minus[int64](), noAccum[int64](), sparse.WithTransposeSecondInput())
	require.NoError(t, err)
	tall := emptyMatrix[int64](t, ctx, 3, 2)
	require.NoError(t, second.MatrixWithScalarFirst(tall, 10, wide))
	require.Equal(t, cells[int64]{{2, 0}: 6, {0, 1}: 9}, dump(t, tall))

	// the first-input transpose leaves the bound-first matrix alone
	first, err := sparse.NewBinaryOperatorApplier(ctx, algebra.Minus[int64](), noAccum[int64](), sparse.WithTransposeFirstInput())
	require.NoError(t, err)
	same := emptyMatrix[int64](t, ctx, 2, 3)
	require.NoError(t, first.MatrixWithScalarFirst(same, 10, wide))
	require.Equal(t, cells[int64]{{0, 2}: 6, {1, 0}: 9}, dump(t, same))
	require.ErrorIs(t, first.MatrixWithScalarFirst(tall, 10, wide), sparse.ErrDimensionMismatch)

	// and transposes the bound-second one
	require.NoError(t, first.MatrixWithScalarSecond(tall, wide, 1))
	require.Equal(t, cells[int64]{{2, 0}: 3, {0, 1}: 0}, dump(t, tall))
}

func TestMatrixTranspose(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	f, err := sparse.NewMatrixTranspose[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	out := emptyMatrix[int64](t, ctx, 2, 2)
	require.NoError(t, f.Apply(out, fixtureM(t, ctx)))
	require.Equal(t, cells[int64]{{0, 0}: 1, {0, 1}: 3, {1, 0}: 2, {1, 1}: 4}, dump(t, out))

	wide := mustMatrix(t, ctx, 2, 3, cells[int64]{{0, 2}: 5})
	tall := emptyMatrix[int64](t, ctx, 3, 2)
	require.NoError(t, f.Apply(tall, wide))
	require.Equal(t, cells[int64]{{2, 0}: 5}, dump(t, tall))
	require.ErrorIs(t, f.Apply(emptyMatrix[int64](t, ctx, 2, 3), wide), sparse.ErrDimensionMismatch)

	// a transposed input cancels the transpose
	cp, err := sparse.NewMatrixTranspose[int64](ctx, noAccum[int64](), sparse.WithTransposeFirstInput())
	require.NoError(t, err)
	same := emptyMatrix[int64](t, ctx, 2, 3)
	require.NoError(t, cp.Apply(same, wide))
	require.Equal(t, dump(t, wide), dump(t, same))

	acc, err := sparse.NewMatrixTranspose[int64](ctx, algebra.Accumulate(algebra.Plus[int64]()))
	require.NoError(t, err)
	sym := fixtureM(t, ctx)
	require.NoError(t, acc.ApplyWithMask(sym, sparse.StructuralMatrixMask(diagonalPattern(t, ctx)).Complement(), fixtureM(t, ctx)))
	require.Equal(t, cells[int64]{{0, 0}: 1, {0, 1}: 5, {1, 0}: 5, {1, 1}: 4}, dump(t, sym))
}

func TestKroneckerProduct(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	row := mustMatrix(t, ctx, 1, 2, cells[int64]{{0, 0}: 1, {0, 1}: 2})
	col := mustMatrix(t, ctx, 2, 1, cells[int64]{{0, 0}: 1, {1, 0}: 10})

	times, err := sparse.NewKroneckerProductBinaryOperator(ctx, algebra.Times[int64](), noAccum[int64]())
	require.NoError(t, err)
	out := emptyMatrix[int64](t, ctx, 2, 2)
	require.NoError(t, times.Apply(out, row, col))
	require.Equal(t, cells[int64]{{0, 0}: 1, {0, 1}: 2, {1, 0}: 10, {1, 1}: 20}, dump(t, out))

	plus, err := sparse.NewKroneckerProductMonoid(ctx, algebra.PlusMonoid[int64](), noAccum[int64]())
	require.NoError(t, err)
	require.NoError(t, plus.Apply(out, row, col))
	require.Equal(t, cells[int64]{{0, 0}: 2, {0, 1}: 3, {1, 0}: 11, {1, 1}: 12}, dump(t, out))

	// I ⊗ M is block diagonal
	ring, err := sparse.NewKroneckerProductSemiring(ctx, algebra.PlusTimes[int64](), noAccum[int64]())
	require.NoError(t, err)
	id := mustMatrix(t, ctx, 2, 2, cells[int64]{{0, 0}: 1, {1, 1}: 1})
	block := emptyMatrix[int64](t, ctx, 4, 4)
	require.NoError(t, ring.Apply(block, id, fixtureM(t, ctx)))
	require.Equal(t, cells[int64]{
		{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4,
		{2, 2}: 1, {2, 3}: 2, {3, 2}: 3, {3, 3}: 4,
	}, dump(t, block))

	require.ErrorIs(t, times.Apply(block, row, col), sparse.ErrDimensionMismatch)
}
