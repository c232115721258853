// SPDX-License-Identifier: MIT
// Package builder: RandomSparse(n, p).
//
// Canonical model: Erdős–Rényi G(n, p). Each admissible edge is kept
// independently with probability p.
//   - Undirected: unordered pairs {i, j}, i < j.
//   - Directed: ordered pairs (i, j); self-loops only WithLoops.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - A random source is required for 0 < p < 1 (else ErrNeedRandSource);
//     p = 0 and p = 1 are deterministic without one.
//
// Complexity: O(n²) trials, O(1) extra space.
//
// Determinism: trials run i ascending, then j ascending, so a fixed seed
// gives a fixed graph.

package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return builderErrorf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}
		keep := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}

		g.grow(n)
		for i := 0; i < n; i++ {
			first := i + 1
			if cfg.directed {
				first = 0
			}
			for j := first; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if keep() {
					g.edge(cfg, i, j)
				}
			}
		}
		return nil
	}
}
