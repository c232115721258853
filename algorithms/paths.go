// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/sparse"
)

// ErrNegativeCycle is returned when a cycle of negative total weight is
// reachable from the source, so some distances have no minimum.
var ErrNegativeCycle = errors.New("algorithms: negative cycle reachable from source")

// ShortestPaths returns the cheapest path weight from source to every
// reachable vertex of the weighted adjacency matrix (entry (i, j) is the
// weight of edge i→j). Unreachable vertices have no entry.
//
// It is Bellman-Ford over the tropical semiring. Each round relaxes every
// edge at once:
//
//	dᵀ = min(dᵀ, dᵀ min.+ A)
//
// and the loop stops as soon as a round neither reaches a new vertex nor
// lowers a distance. Negative weights are allowed.
//
// Options:
//   - WithContext: checked before every round.
//   - WithMaxDepth(k): at most k rounds, giving the cheapest paths of at
//     most k edges. The negative-cycle check is skipped.
//   - WithOnLevel: called after round r with r and the number of reached
//     vertices.
//
// Complexity: at most n rounds, each one vxm over the stored edges: O(n·E).
//
// Errors: ErrNilGraph, ErrOptionViolation, sparse.ErrDimensionMismatch for
// a non-square matrix, sparse.ErrIndexOutOfBounds for a bad source,
// ErrNegativeCycle, the context error on cancellation, or the OnLevel error.
func ShortestPaths[T domain.Number](adjacency *sparse.Matrix[T], source int, opts ...Option) (*sparse.Vector[T], error) {
	const tag = "ShortestPaths"
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
	relax, err := sparse.NewVectorMatrixMultiplication(ctx, algebra.MinPlus[T](), algebra.Accumulate(algebra.Min[T]()))
	if err != nil {
		return nil, err
	}
	lowered, err := sparse.NewElementWiseVectorMultiplicationBinaryOperator(ctx, algebra.GreaterThan[T](), algebra.NoAccumulator[bool]())
	if err != nil {
		return nil, err
	}
	anyOf, err := sparse.NewMonoidReducer(ctx, algebra.LogicalOrMonoid(), algebra.NoAccumulator[bool]())
	if err != nil {
		return nil, err
	}

	dist, err := sparse.NewVector[T](ctx, n)
	if err != nil {
		return nil, err
	}
	r := &relaxer[T]{opts: o, logger: ctx.Logger(), n: n, dist: dist, relax: relax, lowered: lowered, anyOf: anyOf}
	if err := r.run(adjacency, source); err != nil {
		release(dist)
		return nil, err
	}
	return dist, nil
}

// relaxer holds the state of one Bellman-Ford run.
type relaxer[T domain.Number] struct {
	opts    Options
	logger  *zap.Logger
	n       int
	dist    *sparse.Vector[T]
	relax   *sparse.VectorMatrixMultiplication[T, T, T]
	lowered *sparse.ElementWiseVectorMultiplication[T, T, bool]
	anyOf   *sparse.MonoidReducer[bool]
}

func (r *relaxer[T]) run(adjacency *sparse.Matrix[T], source int) error {
	if err := r.dist.SetElement(source, domain.Zero[T]()); err != nil {
		return err
	}
	for round := 1; ; round++ {
		if err := r.opts.Ctx.Err(); err != nil {
			return errors.Wrapf(err, "ShortestPaths: round %d", round)
		}
		changed, reached, err := r.step(adjacency)
		if err != nil {
			return err
		}
		r.logger.Debug("algorithms: edges relaxed",
			zap.Int("round", round), zap.Int("reached", reached), zap.Bool("changed", changed))
		if err := r.opts.OnLevel(round, reached); err != nil {
			return errors.Wrapf(err, "ShortestPaths: OnLevel at round %d", round)
		}
		switch {
		case !changed:
			return nil
		case r.opts.MaxDepth > 0 && round == r.opts.MaxDepth:
			return nil
		case round >= r.n:
			// a simple path has at most n-1 edges
			return errors.Wrapf(ErrNegativeCycle, "ShortestPaths: still improving after %d rounds", round)
		}
	}
}

// step relaxes every edge once and reports whether any distance appeared
// or dropped, plus the number of reached vertices.
func (r *relaxer[T]) step(adjacency *sparse.Matrix[T]) (bool, int, error) {
	prev, err := r.dist.Clone()
	if err != nil {
		return false, 0, err
	}
	defer release(prev)
	before, err := prev.StoredCount()
	if err != nil {
		return false, 0, err
	}
	if err := r.relax.Apply(r.dist, r.dist, adjacency); err != nil {
		return false, 0, err
	}
	after, err := r.dist.StoredCount()
	if err != nil {
		return false, 0, err
	}
	if after != before {
		return true, after, nil
	}

	drops, err := sparse.NewVector[bool](r.dist.Context(), r.n)
	if err != nil {
		return false, 0, err
	}
	defer release(drops)
	if err := r.lowered.Apply(drops, prev, r.dist); err != nil {
		return false, 0, err
	}
	flag, err := sparse.NewScalar[bool](r.dist.Context())
	if err != nil {
		return false, 0, err
	}
	defer release(flag)
	if err := r.anyOf.VectorToScalar(flag, drops); err != nil {
		return false, 0, err
	}
	dropped, _, err := flag.Value()
	if err != nil {
		return false, 0, err
	}
	return dropped, after, nil
}
