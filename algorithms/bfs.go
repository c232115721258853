// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/sparse"
)

// BreadthFirstLevels labels every vertex reachable from source with its
// hop distance. The result has one entry per reached vertex; unreachable
// vertices have none.
//
// Each level is one masked vxm over the any-pair semiring:
//
//	frontier<¬struct(levels), replace> = frontierᵀ any.pair A
//
// so vertices are discovered once and the frontier holds only new ones.
//
// Errors: ErrNilGraph, ErrOptionViolation, sparse.ErrDimensionMismatch for
// a non-square matrix, sparse.ErrIndexOutOfBounds for a bad source, the
// context error on cancellation, or the OnLevel error.
func BreadthFirstLevels(adjacency *sparse.Matrix[bool], source int, opts ...Option) (*sparse.Vector[int64], error) {
	const tag = "BreadthFirstLevels"
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	n, err := order(tag, adjacency)
	if err != nil {
		return nil, err
	}
	if source < 0 || source >= n {
		return nil, errors.Wrapf(sparse.ErrIndexOutOfBounds, "%s: source %d outside [0,%d)", tag, source, n)
	}

	ctx := adjacency.Context()
	mark, err := sparse.NewInsertScalarIntoVector(ctx, algebra.NoAccumulator[int64]())
	if err != nil {
		return nil, err
	}
	step, err := sparse.NewVectorMatrixMultiplication(ctx, algebra.AnyPair[bool](), algebra.NoAccumulator[bool](), sparse.WithReplace())
	if err != nil {
		return nil, err
	}

	levels, err := sparse.NewVector[int64](ctx, n)
	if err != nil {
		return nil, err
	}
	frontier, err := sparse.NewVector[bool](ctx, n)
	if err != nil {
		release(levels)
		return nil, err
	}
	defer release(frontier)

	w := &leveler{opts: o, logger: ctx.Logger(), levels: levels, frontier: frontier, mark: mark, step: step}
	if err := w.run(adjacency, source); err != nil {
		release(levels)
		return nil, err
	}
	return levels, nil
}

// leveler holds the state of one level-synchronous traversal.
type leveler struct {
	opts     Options
	logger   *zap.Logger
	levels   *sparse.Vector[int64]
	frontier *sparse.Vector[bool]
	mark     *sparse.InsertScalarIntoVector[int64]
	step     *sparse.VectorMatrixMultiplication[bool, bool, bool]
}

func (w *leveler) run(adjacency *sparse.Matrix[bool], source int) error {
	if err := w.frontier.SetElement(source, true); err != nil {
		return err
	}
	for depth := 0; ; depth++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return errors.Wrapf(err, "BreadthFirstLevels: depth %d", depth)
		}
		size, err := w.frontier.StoredCount()
		if err != nil {
			return err
		}
		if size == 0 {
			return nil
		}
		if err := w.mark.ApplyWithMask(w.levels, sparse.StructuralVectorMask(w.frontier), int64(depth), sparse.All()); err != nil {
			return err
		}
		w.logger.Debug("algorithms: level labelled", zap.Int("depth", depth), zap.Int("size", size))
		if err := w.opts.OnLevel(depth, size); err != nil {
			return errors.Wrapf(err, "BreadthFirstLevels: OnLevel at depth %d", depth)
		}
		if w.opts.MaxDepth > 0 && depth == w.opts.MaxDepth {
			return nil
		}
		visited := sparse.StructuralVectorMask(w.levels).Complement()
		if err := w.step.ApplyWithMask(w.frontier, visited, w.frontier, adjacency); err != nil {
			return err
		}
	}
}
