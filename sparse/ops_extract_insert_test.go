// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/sparse"
)

func TestSubMatrixExtractor(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	m := fixtureM(t, ctx)
	f, err := sparse.NewSubMatrixExtractor[int64](ctx, noAccum[int64]())
	require.NoError(t, err)

	// repeated and permuted indices
	out := emptyMatrix[int64](t, ctx, 2, 2)
	require.NoError(t, f.Apply(out, m, sparse.Indices(1, 1), sparse.Indices(1, 0)))
	require.Equal(t, cells[int64]{{0, 0}: 4, {0, 1}: 3, {1, 0}: 4, {1, 1}: 3}, dump(t, out))

	require.NoError(t, f.Apply(out, m, sparse.All(), sparse.All()))
	require.Equal(t, dump(t, m), dump(t, out))

	row := emptyMatrix[int64](t, ctx, 1, 2)
	require.NoError(t, f.Apply(row, m, sparse.Indices(1), sparse.All()))
	require.Equal(t, cells[int64]{{0, 0}: 3, {0, 1}: 4}, dump(t, row))

	require.ErrorIs(t, f.Apply(row, m, sparse.Indices(0, 1), sparse.All()), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, f.Apply(row, m, sparse.Indices(2), sparse.All()), sparse.ErrIndexOutOfBounds)
}

func TestMatrixColumnExtractor(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	m := fixtureM(t, ctx)

	col, err := sparse.NewMatrixColumnExtractor[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	w := emptyVector[int64](t, ctx, 2)
	require.NoError(t, col.Apply(w, m, sparse.All(), 1))
	require.Equal(t, entries[int64]{0: 2, 1: 4}, dumpVector(t, w))

	one := emptyVector[int64](t, ctx, 1)
	require.NoError(t, col.Apply(one, m, sparse.Indices(1), 0))
	require.Equal(t, entries[int64]{0: 3}, dumpVector(t, one))

	require.ErrorIs(t, col.Apply(w, m, sparse.All(), 2), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, col.Apply(w, m, sparse.All(), -1), sparse.ErrIndexOutOfBounds)

	// a transposed input turns the column into a row
	row, err := sparse.NewMatrixColumnExtractor[int64](ctx, noAccum[int64](), sparse.WithTransposeFirstInput())
	require.NoError(t, err)
	require.NoError(t, row.Apply(w, m, sparse.All(), 1))
	require.Equal(t, entries[int64]{0: 3, 1: 4}, dumpVector(t, w))
}

// Whole insertion masks and replaces across the destination; sub insertion
// only inside the region.
func TestInsertMatrixIntoMatrix_WholeVersusSub(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	prior := cells[int64]{{0, 0}: 9, {1, 1}: 9, {2, 2}: 9}
	src := fixtureM(t, ctx)
	rows, cols := sparse.Indices(0, 1), sparse.Indices(0, 1)

	whole, err := sparse.NewInsertMatrixIntoMatrix[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	require.False(t, whole.IsSub())
	c := mustMatrix(t, ctx, 3, 3, prior)
	require.NoError(t, whole.Apply(c, src, rows, cols))
	require.Equal(t, cells[int64]{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4, {2, 2}: 9}, dump(t, c))

	wholeReplace, err := sparse.NewInsertMatrixIntoMatrix[int64](ctx, noAccum[int64](), sparse.WithReplace())
	require.NoError(t, err)
	c = mustMatrix(t, ctx, 3, 3, prior)
	corner := mustMatrix(t, ctx, 3, 3, cells[bool]{{0, 0}: true})
	require.NoError(t, wholeReplace.ApplyWithMask(c, sparse.StructuralMatrixMask(corner), src, rows, cols))
	require.Equal(t, cells[int64]{{0, 0}: 1}, dump(t, c))

	subReplace, err := sparse.NewSubInsertMatrixIntoMatrix[int64](ctx, noAccum[int64](), sparse.WithReplace())
	require.NoError(t, err)
	require.True(t, subReplace.IsSub())
	c = mustMatrix(t, ctx, 3, 3, prior)
	regionCorner := mustMatrix(t, ctx, 2, 2, cells[bool]{{0, 0}: true})
	require.NoError(t, subReplace.ApplyWithMask(c, sparse.StructuralMatrixMask(regionCorner), src, rows, cols))
	require.Equal(t, cells[int64]{{0, 0}: 1, {2, 2}: 9}, dump(t, c))

	// each form wants its own mask shape
	require.ErrorIs(t, whole.ApplyWithMask(c, sparse.StructuralMatrixMask(regionCorner), src, rows, cols), sparse.ErrShapeMismatch)
	require.ErrorIs(t, subReplace.ApplyWithMask(c, sparse.StructuralMatrixMask(corner), src, rows, cols), sparse.ErrShapeMismatch)

	require.ErrorIs(t, whole.Apply(c, src, sparse.Indices(0, 1, 2), cols), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, whole.Apply(c, src, sparse.Indices(0, 3), cols), sparse.ErrIndexOutOfBounds)
}

// Inserting over the whole container with no mask makes it equal the source.
func TestInsertMatrixIntoMatrix_AllIsCopy(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	c := fixtureN(t, ctx)
	src := mustMatrix(t, ctx, 2, 2, cells[int64]{{0, 0}: 1})
	f, err := sparse.NewInsertMatrixIntoMatrix[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	require.NoError(t, f.Apply(c, src, sparse.All(), sparse.All()))
	require.Equal(t, cells[int64]{{0, 0}: 1}, dump(t, c))

	// with an accumulator nothing is deleted
	acc, err := sparse.NewInsertMatrixIntoMatrix[int64](ctx, algebra.Accumulate(algebra.Plus[int64]()))
	require.NoError(t, err)
	c = fixtureN(t, ctx)
	require.NoError(t, acc.Apply(c, src, sparse.All(), sparse.All()))
	require.Equal(t, cells[int64]{{0, 0}: 6, {0, 1}: 6, {1, 0}: 7, {1, 1}: 8}, dump(t, c))
}

func TestInsertMatrixIntoMatrix_TransposedSource(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	src := mustMatrix(t, ctx, 1, 2, cells[int64]{{0, 1}: 5})
	f, err := sparse.NewInsertMatrixIntoMatrix[int64](ctx, noAccum[int64](), sparse.WithTransposeFirstInput())
	require.NoError(t, err)
	c := emptyMatrix[int64](t, ctx, 2, 2)
	require.NoError(t, f.Apply(c, src, sparse.All(), sparse.Indices(0)))
	require.Equal(t, cells[int64]{{1, 0}: 5}, dump(t, c))
}

func TestInsertScalarIntoMatrix(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	c := emptyMatrix[int64](t, ctx, 3, 3)
	f, err := sparse.NewInsertScalarIntoMatrix[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	require.NoError(t, f.Apply(c, 7, sparse.Indices(0, 2), sparse.All()))
	require.Equal(t, cells[int64]{
		{0, 0}: 7, {0, 1}: 7, {0, 2}: 7,
		{2, 0}: 7, {2, 1}: 7, {2, 2}: 7,
	}, dump(t, c))

	acc, err := sparse.NewSubInsertScalarIntoMatrix[int64](ctx, algebra.Accumulate(algebra.Plus[int64]()))
	require.NoError(t, err)
	require.NoError(t, acc.Apply(c, 7, sparse.Indices(0), sparse.Indices(0, 1)))
	n, err := c.Element(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(14), n)
	n, err = c.Element(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
}

func TestInsertVectorIntoVector(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	src := mustVector(t, ctx, 2, entries[int64]{0: 10, 1: 20})
	f, err := sparse.NewInsertVectorIntoVector[int64](ctx, noAccum[int64]())
	require.NoError(t, err)

	w := mustVector(t, ctx, 4, entries[int64]{0: 1})
	require.NoError(t, f.Apply(w, src, sparse.Indices(3, 2)))
	require.Equal(t, entries[int64]{0: 1, 2: 20, 3: 10}, dumpVector(t, w))

	// a repeated destination keeps the last write
	w = emptyVector[int64](t, ctx, 4)
	require.NoError(t, f.Apply(w, src, sparse.Indices(1, 1)))
	require.Equal(t, entries[int64]{1: 20}, dumpVector(t, w))

	require.ErrorIs(t, f.Apply(w, src, sparse.Indices(0)), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, f.Apply(w, src, sparse.Indices(0, -2)), sparse.ErrInvalidValue)
}

func TestInsertScalarIntoVector_Masks(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	prior := entries[int64]{1: 5}
	at := sparse.Indices(1, 3)

	whole, err := sparse.NewInsertScalarIntoVector[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	w := mustVector(t, ctx, 4, prior)
	require.NoError(t, whole.ApplyWithMask(w, sparse.ValueVectorMask(mustVector(t, ctx, 4, entries[bool]{3: true})), 7, at))
	require.Equal(t, entries[int64]{1: 5, 3: 7}, dumpVector(t, w))

	sub, err := sparse.NewSubInsertScalarIntoVector[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	w = mustVector(t, ctx, 4, prior)
	require.NoError(t, sub.ApplyWithMask(w, sparse.ValueVectorMask(mustVector(t, ctx, 2, entries[bool]{0: true})), 7, at))
	require.Equal(t, entries[int64]{1: 7}, dumpVector(t, w))
}

func TestInsertVectorIntoRow(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	prior := cells[int64]{{0, 0}: 9, {1, 2}: 9}
	src := mustVector(t, ctx, 2, entries[int64]{0: 1, 1: 2})
	cols := sparse.Indices(2, 1)

	plain, err := sparse.NewInsertVectorIntoRow[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	c := mustMatrix(t, ctx, 2, 3, prior)
	require.NoError(t, plain.Apply(c, src, 0, cols))
	require.Equal(t, cells[int64]{{0, 0}: 9, {0, 1}: 2, {0, 2}: 1, {1, 2}: 9}, dump(t, c))

	// whole form: the mask spans the row and replace clears the rest of it
	whole, err := sparse.NewInsertVectorIntoRow[int64](ctx, noAccum[int64](), sparse.WithReplace())
	require.NoError(t, err)
	c = mustMatrix(t, ctx, 2, 3, prior)
	rowMask := mustVector(t, ctx, 3, entries[bool]{2: true})
	require.NoError(t, whole.ApplyWithMask(c, sparse.StructuralVectorMask(rowMask), src, 0, cols))
	require.Equal(t, cells[int64]{{0, 2}: 1, {1, 2}: 9}, dump(t, c))

	// sub form: the mask spans the selected columns only
	sub, err := sparse.NewSubInsertVectorIntoRow[int64](ctx, noAccum[int64](), sparse.WithReplace())
	require.NoError(t, err)
	c = mustMatrix(t, ctx, 2, 3, prior)
	regionMask := mustVector(t, ctx, 2, entries[bool]{0: true})
	require.NoError(t, sub.ApplyWithMask(c, sparse.StructuralVectorMask(regionMask), src, 0, cols))
	require.Equal(t, cells[int64]{{0, 0}: 9, {0, 2}: 1, {1, 2}: 9}, dump(t, c))

	require.ErrorIs(t, plain.Apply(c, src, 2, cols), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, whole.ApplyWithMask(c, sparse.StructuralVectorMask(regionMask), src, 0, cols), sparse.ErrShapeMismatch)
	require.ErrorIs(t, plain.Apply(c, src, 0, sparse.All()), sparse.ErrDimensionMismatch)
}

func TestInsertVectorIntoColumn(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	src := mustVector(t, ctx, 3, entries[int64]{0: 1, 2: 3})
	f, err := sparse.NewInsertVectorIntoColumn[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	c := mustMatrix(t, ctx, 3, 2, cells[int64]{{1, 1}: 8, {1, 0}: 4})
	require.NoError(t, f.Apply(c, src, sparse.All(), 1))
	require.Equal(t, cells[int64]{{0, 1}: 1, {1, 0}: 4, {2, 1}: 3}, dump(t, c))

	require.ErrorIs(t, f.Apply(c, src, sparse.All(), 2), sparse.ErrIndexOutOfBounds)

	sub, err := sparse.NewSubInsertVectorIntoColumn[int64](ctx, noAccum[int64]())
	require.NoError(t, err)
	pick := mustVector(t, ctx, 2, entries[bool]{1: true})
	two := mustVector(t, ctx, 2, entries[int64]{0: 50, 1: 60})
	require.NoError(t, sub.ApplyWithMask(c, sparse.ValueVectorMask(pick), two, sparse.Indices(0, 1), 0))
	require.Equal(t, cells[int64]{{0, 1}: 1, {1, 0}: 60, {2, 1}: 3}, dump(t, c))
}
