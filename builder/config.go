// SPDX-License-Identifier: MIT
// Package builder: internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - directed = false (every edge stored both ways)
//   - loops    = false
//   - rng      = nil   (no randomness unless seeded)
//   - weightFn = ConstantWeightFn(DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value, so a constructor cannot change what the next one sees.
type builderConfig struct {
	directed bool
	loops    bool
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: ConstantWeightFn(DefaultEdgeWeight)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
