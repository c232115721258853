// SPDX-License-Identifier: MIT
// Package builder: Path(n).
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Edges i-1 - i for i = 1..n-1 in increasing order; directed builds
//     point them from lower to higher index.
//
// Complexity: O(n) arcs, O(1) extra space.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n over vertices 0..n-1.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		g.grow(n)
		for i := 1; i < n; i++ {
			g.edge(cfg, i-1, i)
		}
		return nil
	}
}
