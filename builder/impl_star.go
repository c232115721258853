// SPDX-License-Identifier: MIT
// Package builder: Star(n).
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub, 1..n-1 the leaves.
//   - Spokes 0 - i in increasing leaf order, stored both ways even in
//     directed builds.
//
// Complexity: O(n) arcs, O(1) extra space.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
		}
		g.grow(n)
		for i := 1; i < n; i++ {
			g.spoke(cfg, 0, i)
		}
		return nil
	}
}
