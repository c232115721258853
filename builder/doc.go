// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures as adjacency
// matrices: paths, cycles, stars, wheels, complete graphs, grids and
// random sparse graphs, optionally weighted.
//
// Generation happens in two steps. BuildGraph runs functional
// "constructors" over an engine-free arc list (Graph), so fixtures compose
// and can be inspected or printed without a Context. Pattern and Weights
// then load that list into a sparse.Matrix on a Context.
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Star(5))
//	a, err := builder.Pattern(ctx, g) // 5x5 *sparse.Matrix[bool]
//
// Vertices are the indices 0..Order-1. Constructors overlay: Cycle(5) and
// Star(5) share vertices 0..4, and a repeated arc is stored once.
//
// Configuration:
//
//   - BuilderOption:      a function that mutates builderConfig before use.
//   - WithDirected:       emit arcs one way where the topology has a
//     direction (Path, Cycle, RandomSparse); default is undirected, both
//     arcs of every edge.
//   - WithLoops:          allow self-loops in RandomSparse.
//   - WithSeed / WithRand: the random source for RandomSparse and random
//     weights.
//   - WithWeightFn:       per-edge weight generator (default constant 1).
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same Graph, arc
//     for arc.
//   - Invalid sizes or probabilities are reported as sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//     Constructors never panic; option constructors panic on nil.
//   - Every constructor documents its complexity; all are linear in the
//     arcs they emit, RandomSparse is O(n²) trials.
package builder
