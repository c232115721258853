// SPDX-License-Identifier: MIT
// Package builder: public entry points.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...) resolves the config once
//     and runs the constructors in order over one Graph.
//   - Topology factories live in impl_*.go, one per file.
//   - Pattern and Weights are the only functions touching an engine.
//   - Determinism: same options, seed and constructor order give the same
//     arcs in the same order.

package builder

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/sparse"
)

// Arc is one directed edge of a generated graph.
type Arc struct {
	From   int
	To     int
	Weight int64
}

// Graph is an engine-free arc list over the vertices 0..Order-1. An
// undirected edge appears as two arcs.
type Graph struct {
	Order int
	Arcs  []Arc
}

// Constructor applies one deterministic topology to g using the resolved
// config. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph resolves opts and applies every constructor in order to a
// fresh Graph. The first constructor error is returned wrapped with
// "BuildGraph"; nothing is rolled back.
//
// Complexity: O(len(opts)) plus the cost of each constructor.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise whatever the
// constructor reports (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := &Graph{}
	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf("BuildGraph", ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, builderErrorf("BuildGraph", err, "constructor %d", i)
		}
	}
	return g, nil
}

// grow makes sure vertices 0..n-1 exist.
func (g *Graph) grow(n int) {
	if n > g.Order {
		g.Order = n
	}
}

// arc appends u→v.
func (g *Graph) arc(u, v int, w int64) {
	g.Arcs = append(g.Arcs, Arc{From: u, To: v, Weight: w})
}

// edge appends u→v and, for undirected builds, v→u with the same weight.
func (g *Graph) edge(cfg builderConfig, u, v int) {
	w := cfg.weight()
	g.arc(u, v, w)
	if !cfg.directed && u != v {
		g.arc(v, u, w)
	}
}

// spoke appends u→v and v→u whatever the build mode.
func (g *Graph) spoke(cfg builderConfig, u, v int) {
	w := cfg.weight()
	g.arc(u, v, w)
	g.arc(v, u, w)
}

// slices splits the arcs into coordinate slices.
func (g *Graph) slices() (rows, cols []int, weights []int64) {
	rows, cols, weights = make([]int, len(g.Arcs)), make([]int, len(g.Arcs)), make([]int64, len(g.Arcs))
	for k, a := range g.Arcs {
		rows[k], cols[k], weights[k] = a.From, a.To, a.Weight
	}
	return rows, cols, weights
}

// Pattern loads g as an Order×Order boolean adjacency matrix; repeated
// arcs collapse into one entry.
//
// Errors: ErrConstructFailed for a nil graph, sparse errors otherwise
// (sparse.ErrInvalidDimensions for an empty graph).
func Pattern(ctx *sparse.Context, g *Graph) (*sparse.Matrix[bool], error) {
	if g == nil {
		return nil, builderErrorf("Pattern", ErrConstructFailed, "nil graph")
	}
	rows, cols, _ := g.slices()
	vals := make([]bool, len(rows))
	for k := range vals {
		vals[k] = true
	}
	return load(ctx, g.Order, rows, cols, vals, algebra.LogicalOr[bool]())
}

// Weights loads g as an Order×Order weighted adjacency matrix over T.
// Repeated arcs keep the smallest weight.
func Weights[T domain.Number](ctx *sparse.Context, g *Graph) (*sparse.Matrix[T], error) {
	if g == nil {
		return nil, builderErrorf("Weights", ErrConstructFailed, "nil graph")
	}
	rows, cols, weights := g.slices()
	vals := make([]T, len(weights))
	for k, w := range weights {
		vals[k] = T(w)
	}
	return load(ctx, g.Order, rows, cols, vals, algebra.Min[T]())
}

func load[T domain.Scalar](ctx *sparse.Context, n int, rows, cols []int, vals []T, dup algebra.BinaryOperator[T, T, T]) (*sparse.Matrix[T], error) {
	list, err := sparse.MatrixElementListFromSlices(rows, cols, vals)
	if err != nil {
		return nil, err
	}
	return sparse.NewMatrixFromElementList(ctx, sparse.Size{Rows: n, Cols: n}, list, dup)
}
