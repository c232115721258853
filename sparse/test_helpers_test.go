// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures on the reference engine.
//   - Map-based builders and dumps so expectations read as literal tables.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine/memengine"
	"github.com/katalvlaran/graphblas/sparse"
)

// cells is a literal matrix: position → value.
type cells[T domain.Scalar] map[sparse.Coordinate]T

// entries is a literal vector: index → value.
type entries[T domain.Scalar] map[int]T

// newContext returns a Context over a fresh reference engine with a test
// logger.
func newContext(t *testing.T, opts ...sparse.ContextOption) *sparse.Context {
	t.Helper()
	eng := memengine.New(memengine.WithWorkers(2), memengine.WithLogger(zaptest.NewLogger(t)))
	ctx, err := sparse.NewContext(eng, append([]sparse.ContextOption{sparse.WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)
	return ctx
}

// mustMatrix builds a rows×cols matrix holding c.
func mustMatrix[T domain.Scalar](t *testing.T, ctx *sparse.Context, rows, cols int, c cells[T]) *sparse.Matrix[T] {
	t.Helper()
	list := make(sparse.MatrixElementList[T], 0, len(c))
	for p, v := range c {
		list = append(list, sparse.MatrixElement[T]{Row: p.Row, Col: p.Col, Value: v})
	}
	m, err := sparse.NewMatrixFromElementList(ctx, sparse.Size{Rows: rows, Cols: cols}, list, algebra.First[T]())
	require.NoError(t, err)
	return m
}

// mustVector builds a vector of length n holding e.
func mustVector[T domain.Scalar](t *testing.T, ctx *sparse.Context, n int, e entries[T]) *sparse.Vector[T] {
	t.Helper()
	list := make(sparse.VectorElementList[T], 0, len(e))
	for i, v := range e {
		list = append(list, sparse.VectorElement[T]{Index: i, Value: v})
	}
	v, err := sparse.NewVectorFromElementList(ctx, n, list, algebra.First[T]())
	require.NoError(t, err)
	return v
}

// emptyMatrix allocates an empty rows×cols matrix.
func emptyMatrix[T domain.Scalar](t *testing.T, ctx *sparse.Context, rows, cols int) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.NewMatrix[T](ctx, sparse.Size{Rows: rows, Cols: cols})
	require.NoError(t, err)
	return m
}

// emptyVector allocates an empty vector of length n.
func emptyVector[T domain.Scalar](t *testing.T, ctx *sparse.Context, n int) *sparse.Vector[T] {
	t.Helper()
	v, err := sparse.NewVector[T](ctx, n)
	require.NoError(t, err)
	return v
}

// dump returns the stored entries of m.
func dump[T domain.Scalar](t *testing.T, m *sparse.Matrix[T]) cells[T] {
	t.Helper()
	list, err := m.ElementList()
	require.NoError(t, err)
	out := cells[T]{}
	for _, e := range list {
		out[e.Coordinate()] = e.Value
	}
	return out
}

// dumpVector returns the stored entries of v.
func dumpVector[T domain.Scalar](t *testing.T, v *sparse.Vector[T]) entries[T] {
	t.Helper()
	list, err := v.ElementList()
	require.NoError(t, err)
	out := entries[T]{}
	for _, e := range list {
		out[e.Index] = e.Value
	}
	return out
}

// scalarValue reads s, failing the test on error.
func scalarValue[T domain.Scalar](t *testing.T, s *sparse.Scalar[T]) (T, bool) {
	t.Helper()
	v, ok, err := s.Value()
	require.NoError(t, err)
	return v, ok
}

// fixtureM is [1 2; 3 4].
func fixtureM(t *testing.T, ctx *sparse.Context) *sparse.Matrix[int64] {
	return mustMatrix(t, ctx, 2, 2, cells[int64]{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4})
}

// fixtureN is [5 6; 7 8].
func fixtureN(t *testing.T, ctx *sparse.Context) *sparse.Matrix[int64] {
	return mustMatrix(t, ctx, 2, 2, cells[int64]{{0, 0}: 5, {0, 1}: 6, {1, 0}: 7, {1, 1}: 8})
}

// diagonalPattern stores true at (0,0) and (1,1).
func diagonalPattern(t *testing.T, ctx *sparse.Context) *sparse.Matrix[bool] {
	return mustMatrix(t, ctx, 2, 2, cells[bool]{{0, 0}: true, {1, 1}: true})
}

// noAccum is shorthand for algebra.NoAccumulator.
func noAccum[T domain.Scalar]() algebra.Accumulator[T] { return algebra.NoAccumulator[T]() }
