// SPDX-License-Identifier: MIT
// Package sparse: shape validation shared by the operator families.
//
// Every family checks operand, output and selector extents here before the
// engine is called, so shape errors surface as ErrDimensionMismatch with the
// offending extents instead of as engine statuses.

package sparse

import "github.com/cockroachdb/errors"

// dims returns the extent of c, transposed when asked.
func dims(c *container, transpose bool) (int, int) {
	if transpose {
		return c.cols, c.rows
	}
	return c.rows, c.cols
}

// validateSameShape requires a and b to be r×c.
func validateSameShape(tag string, r, c int, a, b *container, ta, tb bool) error {
	ar, ac := dims(a, ta)
	br, bc := dims(b, tb)
	if ar != r || ac != c || br != r || bc != c {
		return errors.Wrapf(ErrDimensionMismatch, "%s: operands %dx%d and %dx%d into %dx%d", tag, ar, ac, br, bc, r, c)
	}
	return nil
}

// validateInner requires the inner dimensions of a product to agree.
func validateInner(tag string, inner1, inner2 int) error {
	if inner1 != inner2 {
		return errors.Wrapf(ErrDimensionMismatch, "%s: inner dimensions %d and %d", tag, inner1, inner2)
	}
	return nil
}

// validateExtent requires an r×c result to fit an output of out.
func validateExtent(tag string, r, c int, out *container) error {
	if r != out.rows || c != out.cols {
		return errors.Wrapf(ErrDimensionMismatch, "%s: result is %dx%d, output %dx%d", tag, r, c, out.rows, out.cols)
	}
	return nil
}

// validateLength requires a selector-derived length to match a dimension.
func validateLength(tag, what string, got, want int) error {
	if got != want {
		return errors.Wrapf(ErrDimensionMismatch, "%s: %s selects %d, want %d", tag, what, got, want)
	}
	return nil
}
