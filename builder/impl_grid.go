// SPDX-License-Identifier: MIT
// Package builder: Grid(rows, cols).
//
// Canonical model: 2D orthogonal grid with 4-neighbourhood. Cell (r, c) is
// vertex r*cols + c (row-major).
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewVertices).
//   - For each cell in row-major order: the right neighbour, then the
//     bottom neighbour, where they exist. Stored both ways even in
//     directed builds.
//
// Complexity: O(rows·cols) arcs, O(1) extra space.

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, ErrTooFewVertices, "rows=%d, cols=%d (each must be >= %d)", rows, cols, minGridDim)
		}
		g.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					g.spoke(cfg, u, u+1)
				}
				if r+1 < rows {
					g.spoke(cfg, u, u+cols)
				}
			}
		}
		return nil
	}
}
