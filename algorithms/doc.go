// SPDX-License-Identifier: MIT

// Package algorithms implements classic graph algorithms as sequences of
// sparse operator families, the way GraphBLAS programs are written.
//
// A graph is its adjacency matrix: vertex i has an edge to vertex j when
// entry (i, j) is stored. Stored values are ignored, so an explicit false
// or zero is still an edge. ShortestPaths is the exception: it reads the
// stored value as the edge weight.
//
// What
//
//   - BreadthFirstLevels: hop distance from a source, one vxm per level
//     with the visited set as a complemented structural mask.
//   - OutDegrees / InDegrees: stored entries per row / column, every
//     vertex present (isolated vertices get 0).
//   - TriangleCount: triangles of an undirected graph as
//     sum((L ⊕.pair L) ∘ L), L the strictly lower triangle.
//   - ShortestPaths: single-source cheapest paths by Bellman-Ford rounds
//     over the min-plus semiring; negative weights allowed, negative
//     cycles reported.
//
// Every function runs on the Context of its adjacency matrix and releases
// the temporaries it allocates. Results are owned by the caller.
//
// Complexity follows the engine; on the reference engine BFS costs
// O(depth · (V + E)), triangle counting O(Σ deg²) and shortest paths
// O(V · E).
package algorithms
