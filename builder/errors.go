// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors wrap a sentinel with their method tag and the offending
//     parameters, never a formatted sentinel.
//   - Constructors never panic; option constructors panic on nil arguments.

package builder

import "github.com/cockroachdb/errors"

var (
	// ErrTooFewVertices: a size parameter (n, rows, cols) is below the
	// minimum of the requested topology.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability: an edge probability lies outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource: a stochastic constructor ran without WithSeed or
	// WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed: BuildGraph got a nil constructor, or a graph
	// could not be loaded into a matrix.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderErrorf wraps err with the constructor tag and a formatted detail.
func builderErrorf(method string, err error, format string, args ...any) error {
	return errors.Wrapf(err, "%s: "+format, append([]any{method}, args...)...)
}
