// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/domain"
)

// Coordinate addresses one matrix position.
type Coordinate struct {
	Row int
	Col int
}

// MatrixElement is one stored matrix entry.
type MatrixElement[T domain.Scalar] struct {
	Row   int
	Col   int
	Value T
}

// Coordinate returns the entry position.
func (e MatrixElement[T]) Coordinate() Coordinate { return Coordinate{Row: e.Row, Col: e.Col} }

// VectorElement is one stored vector entry.
type VectorElement[T domain.Scalar] struct {
	Index int
	Value T
}

// MatrixElementList is an ordered coordinate list.
type MatrixElementList[T domain.Scalar] []MatrixElement[T]

// VectorElementList is an ordered index list.
type VectorElementList[T domain.Scalar] []VectorElement[T]

// MatrixElementListFromSlices zips parallel slices into a list.
func MatrixElementListFromSlices[T domain.Scalar](rows, cols []int, vals []T) (MatrixElementList[T], error) {
	if len(rows) != len(cols) || len(cols) != len(vals) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"MatrixElementListFromSlices: %d rows, %d cols, %d values", len(rows), len(cols), len(vals))
	}
	out := make(MatrixElementList[T], len(vals))
	for k := range vals {
		out[k] = MatrixElement[T]{Row: rows[k], Col: cols[k], Value: vals[k]}
	}
	return out, nil
}

// VectorElementListFromSlices zips parallel slices into a list.
func VectorElementListFromSlices[T domain.Scalar](indices []int, vals []T) (VectorElementList[T], error) {
	if len(indices) != len(vals) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"VectorElementListFromSlices: %d indices, %d values", len(indices), len(vals))
	}
	out := make(VectorElementList[T], len(vals))
	for k := range vals {
		out[k] = VectorElement[T]{Index: indices[k], Value: vals[k]}
	}
	return out, nil
}

// Slices splits the list into parallel slices.
func (l MatrixElementList[T]) Slices() (rows, cols []int, vals []T) {
	rows, cols, vals = make([]int, len(l)), make([]int, len(l)), make([]T, len(l))
	for k, e := range l {
		rows[k], cols[k], vals[k] = e.Row, e.Col, e.Value
	}
	return rows, cols, vals
}

// Slices splits the list into parallel slices.
func (l VectorElementList[T]) Slices() (indices []int, vals []T) {
	indices, vals = make([]int, len(l)), make([]T, len(l))
	for k, e := range l {
		indices[k], vals[k] = e.Index, e.Value
	}
	return indices, vals
}
