// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/graphblas/algorithms"
	"github.com/katalvlaran/graphblas/builder"
	"github.com/katalvlaran/graphblas/engine/memengine"
	"github.com/katalvlaran/graphblas/sparse"
)

// buildBowtie constructs two triangles sharing vertex 2:
//
//	0       3
//	| \   / |
//	|  2    |
//	| /   \ |
//	1       4
func buildBowtie(ctx *sparse.Context) *sparse.Matrix[bool] {
	g, _ := sparse.NewMatrix[bool](ctx, sparse.Size{Rows: 5, Cols: 5})
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}} {
		_ = g.SetElement(e[0], e[1], true)
		_ = g.SetElement(e[1], e[0], true)
	}
	return g
}

// ExampleBreadthFirstLevels prints the hop distance of every vertex of a
// bowtie from one of its tips.
func ExampleBreadthFirstLevels() {
	ctx, _ := sparse.NewContext(memengine.New())
	levels, err := algorithms.BreadthFirstLevels(buildBowtie(ctx), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	list, _ := levels.ElementList()
	for _, e := range list {
		fmt.Printf("%d:%d ", e.Index, e.Value)
	}
	fmt.Println()
	// Output:
	// 0:0 1:1 2:1 3:2 4:2
}

// ExampleTriangleCount counts the two triangles of a bowtie and the
// degree of its centre.
func ExampleTriangleCount() {
	ctx, _ := sparse.NewContext(memengine.New())
	g := buildBowtie(ctx)

	n, _ := algorithms.TriangleCount(g)
	deg, _ := algorithms.OutDegrees(g)
	centre, _ := deg.Element(2)
	fmt.Println("triangles:", n)
	fmt.Println("centre degree:", centre)
	// Output:
	// triangles: 2
	// centre degree: 4
}

// ExampleShortestPaths finds the cheapest routes through a weighted
// four-cycle whose direct edge 0-3 is expensive.
func ExampleShortestPaths() {
	ctx, _ := sparse.NewContext(memengine.New())
	g := &builder.Graph{Order: 4, Arcs: []builder.Arc{
		{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 2}, {From: 0, To: 3, Weight: 9},
	}}
	adjacency, _ := builder.Weights[int64](ctx, g)
	dist, err := algorithms.ShortestPaths(adjacency, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	list, _ := dist.ElementList()
	for _, e := range list {
		fmt.Printf("%d:%d ", e.Index, e.Value)
	}
	fmt.Println()
	// Output:
	// 0:0 1:2 2:4 3:6
}
