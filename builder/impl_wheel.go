// SPDX-License-Identifier: MIT
// Package builder: Wheel(n).
//
// Canonical definition: W_n = C_{n-1} + hub, so n >= 4.
//
// Contract:
//   - n >= 4 (else ErrTooFewVertices).
//   - The rim is Cycle(n-1) over 0..n-2 with the same config; the hub is
//     vertex n-1.
//   - Spokes hub - i in increasing rim order, stored both ways.
//
// Complexity: O(n) arcs, O(1) extra space.

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for the wheel W_n: a rim of n-1 vertices and
// hub n-1. Its n-1 triangles each hold one rim edge.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return builderErrorf(methodWheel, ErrTooFewVertices, "n=%d < min=%d", n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return builderErrorf(methodWheel, err, "rim C_%d", n-1)
		}
		hub := n - 1
		g.grow(n)
		for i := 0; i < hub; i++ {
			g.spoke(cfg, hub, i)
		}
		return nil
	}
}
