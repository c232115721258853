// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/algorithms"
	"github.com/katalvlaran/graphblas/builder"
	"github.com/katalvlaran/graphblas/sparse"
)

func TestBreadthFirstLevels(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	cases := []struct {
		name   string
		graph  *sparse.Matrix[bool]
		source int
		want   map[int]int64
	}{
		{"single vertex", directed(t, ctx, 1), 0, map[int]int64{0: 0}},
		{"path", undirected(t, ctx, 4, edge{0, 1}, edge{1, 2}, edge{2, 3}), 0, map[int]int64{0: 0, 1: 1, 2: 2, 3: 3}},
		{"path from the middle", undirected(t, ctx, 4, edge{0, 1}, edge{1, 2}, edge{2, 3}), 2, map[int]int64{0: 2, 1: 1, 2: 0, 3: 1}},
		{"diamond", diamond(t, ctx), 0, map[int]int64{0: 0, 1: 1, 2: 1, 3: 2, 4: 3, 5: 3}},
		{"directed edges are one-way", directed(t, ctx, 4, edge{0, 1}, edge{1, 2}, edge{3, 0}), 0, map[int]int64{0: 0, 1: 1, 2: 2}},
		{"cycle with self-loop", directed(t, ctx, 3, edge{0, 0}, edge{0, 1}, edge{1, 2}, edge{2, 0}), 1, map[int]int64{0: 2, 1: 0, 2: 1}},
		{"cycle C6", generated(t, ctx, nil, builder.Cycle(6)), 0, map[int]int64{0: 0, 1: 1, 2: 2, 3: 3, 4: 2, 5: 1}},
		{"directed cycle C4", generated(t, ctx, []builder.BuilderOption{builder.WithDirected()}, builder.Cycle(4)), 1,
			map[int]int64{0: 3, 1: 0, 2: 1, 3: 2}},
		{"grid 3x3 from a corner", generated(t, ctx, nil, builder.Grid(3, 3)), 0,
			map[int]int64{0: 0, 1: 1, 2: 2, 3: 1, 4: 2, 5: 3, 6: 2, 7: 3, 8: 4}},
	}
	for _, tc := range cases {
		levels, err := algorithms.BreadthFirstLevels(tc.graph, tc.source)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, asMap(t, levels), tc.name)
		require.Equal(t, tc.graph.Rows(), levels.Len(), tc.name)
	}
}

// A stored false is still an edge.
func TestBreadthFirstLevels_ExplicitFalseIsEdge(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g := directed(t, ctx, 2)
	require.NoError(t, g.SetElement(0, 1, false))

	levels, err := algorithms.BreadthFirstLevels(g, 0)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{0: 0, 1: 1}, asMap(t, levels))
}

func TestBreadthFirstLevels_MaxDepth(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g := diamond(t, ctx)

	levels, err := algorithms.BreadthFirstLevels(g, 0, algorithms.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, map[int]int64{0: 0, 1: 1, 2: 1}, asMap(t, levels))

	levels, err = algorithms.BreadthFirstLevels(g, 0, algorithms.WithMaxDepth(0))
	require.NoError(t, err)
	require.Len(t, asMap(t, levels), 6)

	_, err = algorithms.BreadthFirstLevels(g, 0, algorithms.WithMaxDepth(-1))
	require.ErrorIs(t, err, algorithms.ErrOptionViolation)
}

func TestBreadthFirstLevels_OnLevel(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	g := diamond(t, ctx)

	var sizes []int
	_, err := algorithms.BreadthFirstLevels(g, 0, algorithms.WithOnLevel(func(depth, size int) error {
		require.Equal(t, len(sizes), depth)
		sizes = append(sizes, size)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 1, 2}, sizes)

	stop := errors.New("stop")
	_, err = algorithms.BreadthFirstLevels(g, 0, algorithms.WithOnLevel(func(depth, _ int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestBreadthFirstLevels_Cancelled(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := algorithms.BreadthFirstLevels(diamond(t, ctx), 0, algorithms.WithContext(cctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBreadthFirstLevels_Errors(t *testing.T) {
	t.Parallel()
	ctx := newContext(t)

	_, err := algorithms.BreadthFirstLevels(nil, 0)
	require.ErrorIs(t, err, algorithms.ErrNilGraph)

	_, err = algorithms.BreadthFirstLevels(diamond(t, ctx), 6)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
	_, err = algorithms.BreadthFirstLevels(diamond(t, ctx), -1)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)

	wide, err := sparse.NewMatrix[bool](ctx, sparse.Size{Rows: 2, Cols: 3})
	require.NoError(t, err)
	_, err = algorithms.BreadthFirstLevels(wide, 0)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	released := diamond(t, ctx)
	require.NoError(t, released.Release())
	_, err = algorithms.BreadthFirstLevels(released, 0)
	require.ErrorIs(t, err, sparse.ErrReleased)
}
