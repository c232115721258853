// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/graphblas/algorithms"
	"github.com/katalvlaran/graphblas/builder"
	"github.com/katalvlaran/graphblas/engine/memengine"
	"github.com/katalvlaran/graphblas/sparse"
)

// quietContext skips the test logger so benchmarks measure the engine.
func quietContext(b *testing.B) *sparse.Context {
	b.Helper()
	ctx, err := sparse.NewContext(memengine.New())
	if err != nil {
		b.Fatal(err)
	}
	return ctx
}

// BenchmarkBreadthFirstLevels_Chain measures BFS on a directed path of N
// vertices: N levels, one vertex each.
func BenchmarkBreadthFirstLevels_Chain(b *testing.B) {
	const N = 500
	g := generated(b, quietContext(b), []builder.BuilderOption{builder.WithDirected()}, builder.Path(N))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		levels, err := algorithms.BreadthFirstLevels(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		_ = levels.Release()
	}
}

// BenchmarkBreadthFirstLevels_Grid runs BFS from a corner of a square grid:
// 2·side-1 levels with frontiers growing then shrinking.
func BenchmarkBreadthFirstLevels_Grid(b *testing.B) {
	const side = 32
	g := generated(b, quietContext(b), nil, builder.Grid(side, side))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		levels, err := algorithms.BreadthFirstLevels(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		_ = levels.Release()
	}
}

// BenchmarkTriangleCount_Wheel counts the N-1 triangles of a wheel graph.
func BenchmarkTriangleCount_Wheel(b *testing.B) {
	const N = 256
	g := generated(b, quietContext(b), nil, builder.Wheel(N))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algorithms.TriangleCount(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPaths_RandomSparse relaxes a seeded G(n,p) graph with
// weights in [1,100].
func BenchmarkShortestPaths_RandomSparse(b *testing.B) {
	const (
		N = 300
		p = 0.02
	)
	ctx := quietContext(b)
	graph, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomSparse(N, p))
	if err != nil {
		b.Fatal(err)
	}
	g, err := builder.Weights[float64](ctx, graph)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dist, err := algorithms.ShortestPaths(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		_ = dist.Release()
	}
}
