// SPDX-License-Identifier: MIT
// Package builder: functional options.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors panic on nil arguments; constructors themselves
//     never panic.
//   - Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating the builderConfig before the
// first constructor runs.
type BuilderOption func(*builderConfig)

// WithDirected emits directed arcs. Path and Cycle then point from lower to
// higher index (Cycle closes n-1 → 0) and RandomSparse samples ordered
// pairs. Star, Wheel, Complete and Grid stay symmetric.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithLoops lets RandomSparse sample self-loops (directed builds only).
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}

// WithRand provides an explicit random source. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a random source with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}
