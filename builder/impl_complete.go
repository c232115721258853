// SPDX-License-Identifier: MIT
// Package builder: Complete(n).
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Every unordered pair {i, j}, i < j, in lexicographic order, stored
//     both ways even in directed builds. No self-loops.
//
// Complexity: O(n²) arcs, O(1) extra space.

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}
		g.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.spoke(cfg, i, j)
			}
		}
		return nil
	}
}
