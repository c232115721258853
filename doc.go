// SPDX-License-Identifier: MIT

// Package graphblas is a typed Go layer over a GraphBLAS-style sparse
// linear-algebra engine: graph algorithms written as matrix and vector
// operations over semirings.
//
// What is in the module?
//
//	domain/            value domains (bool, signed and unsigned integers, floats), casts, index narrowing
//	engine/            the engine boundary: opaque handles, status codes, one Invoke call shape
//	engine/memengine/  a reference engine on a dictionary-of-keys store
//	algebra/           unary and binary operators, monoids, semirings, accumulators
//	sparse/            Matrix, Vector, Scalar, masks, index selectors and every operator family
//	settings/          viper-backed configuration of logging, parallelism and workers
//	algorithms/        BFS levels, shortest paths, degrees and triangle counting built from operator families
//	builder/           deterministic graph topologies (path, cycle, star, wheel, complete, grid, G(n,p)) loaded as matrices
//	cmd/graphblas/     a CLI running those algorithms on edge-list files and generating test graphs
//
// Every operator family follows the same write contract:
//
//	C<M, replace> = accum(C, T)
//
// where T is what the family computes, M an optional (structural,
// complemented) mask and accum an optional accumulator.
//
// Quick example (two-hop cheapest paths over the tropical semiring):
//
//	ctx, _ := sparse.NewContext(memengine.New())
//	mxm, _ := sparse.NewMatrixMultiplication(ctx, algebra.MinPlus[float64](), algebra.NoAccumulator[float64]())
//	_ = mxm.Apply(twoHops, weights, weights)
//
// Dive into the package docs of sparse and algorithms for more.
package graphblas
