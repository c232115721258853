// SPDX-License-Identifier: MIT

package algorithms

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/sparse"
)

var (
	// ErrNilGraph is returned when a nil adjacency matrix is passed.
	ErrNilGraph = errors.New("algorithms: adjacency matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("algorithms: invalid option supplied")
)

// Option configures a traversal via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the traversal starts.
type Option func(*Options)

// Options holds the traversal parameters shared by BreadthFirstLevels and
// ShortestPaths. A "level" is one BFS depth or one relaxation round.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per level.
	Ctx context.Context

	// MaxDepth, if > 0, stops after level MaxDepth: BFS labels depths
	// 0..MaxDepth, ShortestPaths runs at most MaxDepth rounds.
	// 0 means no limit.
	MaxDepth int

	// OnLevel is called after each level with its number and a size: the
	// vertices labelled at that depth, or the vertices reached so far.
	// Returning an error aborts the traversal.
	OnLevel func(depth, size int) error

	err error
}

// DefaultOptions returns Options with context.Background, no depth limit
// and a no-op OnLevel.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLevel: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to depths 0..d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnLevel registers a per-level callback.
func WithOnLevel(fn func(depth, size int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// order returns the vertex count of a square adjacency matrix.
func order[T domain.Scalar](tag string, adjacency *sparse.Matrix[T]) (int, error) {
	if adjacency == nil {
		return 0, errors.Wrap(ErrNilGraph, tag)
	}
	if adjacency.Rows() != adjacency.Cols() {
		return 0, errors.Wrapf(sparse.ErrDimensionMismatch, "%s: adjacency is %dx%d", tag, adjacency.Rows(), adjacency.Cols())
	}
	return adjacency.Rows(), nil
}

// release frees temporaries. Errors are dropped.
func release(rs ...interface{ Release() error }) {
	for _, r := range rs {
		_ = r.Release()
	}
}
