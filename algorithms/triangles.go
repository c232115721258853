// SPDX-License-Identifier: MIT

package algorithms

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/sparse"
)

// TriangleCount returns the number of triangles of an undirected graph.
// adjacency must be symmetric; only its strictly lower triangle L is read,
// so self-loops are ignored. Each triangle i > k > j is counted once, as
// entry (i, j) of (L ⊕.pair L) masked by L.
func TriangleCount[T domain.Scalar](adjacency *sparse.Matrix[T]) (int64, error) {
	const tag = "TriangleCount"
	if _, err := order(tag, adjacency); err != nil {
		return 0, err
	}
	ctx := adjacency.Context()

	lower, err := sparse.NewMatrixSelector(ctx, sparse.LowerTriangle[T](-1), algebra.NoAccumulator[T]())
	if err != nil {
		return 0, err
	}
	wedges, err := sparse.NewMatrixMultiplication(ctx, algebra.PlusPair[T, T, int64](), algebra.NoAccumulator[int64]())
	if err != nil {
		return 0, err
	}
	sum, err := sparse.NewMonoidReducer(ctx, algebra.PlusMonoid[int64](), algebra.NoAccumulator[int64]())
	if err != nil {
		return 0, err
	}

	l, err := sparse.NewMatrix[T](ctx, adjacency.Size())
	if err != nil {
		return 0, err
	}
	defer release(l)
	if err := lower.Apply(l, adjacency); err != nil {
		return 0, err
	}

	c, err := sparse.NewMatrix[int64](ctx, adjacency.Size())
	if err != nil {
		return 0, err
	}
	defer release(c)
	if err := wedges.ApplyWithMask(c, sparse.StructuralMatrixMask(l), l, l); err != nil {
		return 0, err
	}

	total, err := sparse.NewScalar[int64](ctx)
	if err != nil {
		return 0, err
	}
	defer release(total)
	if err := sum.MatrixToScalar(total, c); err != nil {
		return 0, err
	}
	n, _, err := total.Value()
	if err != nil {
		return 0, err
	}
	ctx.Logger().Debug("algorithms: triangles counted", zap.Int64("triangles", n))
	return n, nil
}
