// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/graphblas/builder"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine/memengine"
	"github.com/katalvlaran/graphblas/sparse"
)

// edge is a directed pair of vertex indices.
type edge struct{ from, to int }

func newContext(t testing.TB) *sparse.Context {
	t.Helper()
	ctx, err := sparse.NewContext(memengine.New(memengine.WithWorkers(2)), sparse.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return ctx
}

// directed builds an n-vertex adjacency matrix with one entry per edge.
func directed(t testing.TB, ctx *sparse.Context, n int, edges ...edge) *sparse.Matrix[bool] {
	t.Helper()
	m, err := sparse.NewMatrix[bool](ctx, sparse.Size{Rows: n, Cols: n})
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, m.SetElement(e.from, e.to, true))
	}
	return m
}

// undirected stores every edge in both directions.
func undirected(t testing.TB, ctx *sparse.Context, n int, edges ...edge) *sparse.Matrix[bool] {
	t.Helper()
	both := make([]edge, 0, 2*len(edges))
	for _, e := range edges {
		both = append(both, e, edge{e.to, e.from})
	}
	return directed(t, ctx, n, both...)
}

// diamond is
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func diamond(t testing.TB, ctx *sparse.Context) *sparse.Matrix[bool] {
	return undirected(t, ctx, 6, edge{0, 1}, edge{0, 2}, edge{1, 3}, edge{2, 3}, edge{3, 4}, edge{3, 5})
}

// generated loads a builder fixture as a pattern matrix.
func generated(t testing.TB, ctx *sparse.Context, opts []builder.BuilderOption, cons ...builder.Constructor) *sparse.Matrix[bool] {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	m, err := builder.Pattern(ctx, g)
	require.NoError(t, err)
	return m
}

// arc is a weighted directed edge.
type arc struct {
	from, to int
	w        int64
}

// weighted builds an n-vertex weighted adjacency matrix over T.
func weighted[T domain.Number](t testing.TB, ctx *sparse.Context, n int, arcs ...arc) *sparse.Matrix[T] {
	t.Helper()
	g := &builder.Graph{Order: n}
	for _, a := range arcs {
		g.Arcs = append(g.Arcs, builder.Arc{From: a.from, To: a.to, Weight: a.w})
	}
	m, err := builder.Weights[T](ctx, g)
	require.NoError(t, err)
	return m
}

// asMap returns the stored entries of v.
func asMap[T domain.Scalar](t testing.TB, v *sparse.Vector[T]) map[int]T {
	t.Helper()
	list, err := v.ElementList()
	require.NoError(t, err)
	out := make(map[int]T, len(list))
	for _, e := range list {
		out[e.Index] = e.Value
	}
	return out
}
