// SPDX-License-Identifier: MIT
// Package builder: Cycle(n).
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Edges i - (i+1)%n for i = 0..n-1 in increasing order; directed
//     builds follow that orientation, so n-1 → 0 closes the ring.
//
// Complexity: O(n) arcs, O(1) extra space.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n over 0..n-1.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}
		g.grow(n)
		for i := 0; i < n; i++ {
			g.edge(cfg, i, (i+1)%n)
		}
		return nil
	}
}
