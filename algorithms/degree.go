// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/sparse"
)

// OutDegrees counts the stored entries of every row of adjacency.
// Every vertex has an entry; isolated vertices get 0.
func OutDegrees[T domain.Scalar](adjacency *sparse.Matrix[T]) (*sparse.Vector[int64], error) {
	return degrees("OutDegrees", adjacency)
}

// InDegrees counts the stored entries of every column of adjacency.
func InDegrees[T domain.Scalar](adjacency *sparse.Matrix[T]) (*sparse.Vector[int64], error) {
	return degrees("InDegrees", adjacency, sparse.WithTransposeFirstInput())
}

// degrees turns the pattern of adjacency into ones, sums them per row and
// fills the rows that had nothing with zero.
func degrees[T domain.Scalar](tag string, adjacency *sparse.Matrix[T], reduceOpts ...sparse.Option) (*sparse.Vector[int64], error) {
	n, err := order(tag, adjacency)
	if err != nil {
		return nil, err
	}
	ctx := adjacency.Context()

	convert, err := sparse.NewUnaryOperatorApplier(ctx, algebra.Convert[T, int64](), algebra.NoAccumulator[int64]())
	if err != nil {
		return nil, err
	}
	one, err := sparse.NewUnaryOperatorApplier(ctx, algebra.One[int64](), algebra.NoAccumulator[int64]())
	if err != nil {
		return nil, err
	}
	sum, err := sparse.NewMonoidReducer(ctx, algebra.PlusMonoid[int64](), algebra.NoAccumulator[int64](), reduceOpts...)
	if err != nil {
		return nil, err
	}
	zero, err := sparse.NewInsertScalarIntoVector(ctx, algebra.NoAccumulator[int64]())
	if err != nil {
		return nil, err
	}

	ones, err := sparse.NewMatrix[int64](ctx, adjacency.Size())
	if err != nil {
		return nil, err
	}
	defer release(ones)
	if err := convert.MatrixApply(ones, adjacency); err != nil {
		return nil, err
	}
	if err := one.MatrixApply(ones, ones); err != nil {
		return nil, err
	}

	out, err := sparse.NewVector[int64](ctx, n)
	if err != nil {
		return nil, err
	}
	if err := sum.MatrixToVector(out, ones); err != nil {
		release(out)
		return nil, err
	}
	if err := zero.ApplyWithMask(out, sparse.StructuralVectorMask(out).Complement(), 0, sparse.All()); err != nil {
		release(out)
		return nil, err
	}
	return out, nil
}
