// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Matrix is an engine-resident sparse matrix over T with a fixed shape.
// It changes only through family Apply calls and the element methods below.
// A Matrix must not be copied after creation.
type Matrix[T domain.Scalar] struct {
	container
}

func (m *Matrix[T]) base() *container {
	if m == nil {
		return nil
	}
	return &m.container
}

// NewMatrix allocates an empty matrix.
func NewMatrix[T domain.Scalar](ctx *Context, size Size) (*Matrix[T], error) {
	h, err := allocate(ctx, "NewMatrix", domain.KindOf[T](), size.Rows, size.Cols, false)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{container: container{ctx: ctx, handle: h, rows: size.Rows, cols: size.Cols}}, nil
}

// NewMatrixFromElementList builds a matrix from list. Entries sharing a
// position are combined with dup in list order; algebra.First keeps the
// first, algebra.Second the last, algebra.Plus sums them.
func NewMatrixFromElementList[T domain.Scalar](
	ctx *Context, size Size, list MatrixElementList[T], dup algebra.BinaryOperator[T, T, T],
) (*Matrix[T], error) {
	const tag = "NewMatrixFromElementList"
	m, err := NewMatrix[T](ctx, size)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.Row < 0 || e.Row >= size.Rows || e.Col < 0 || e.Col >= size.Cols {
			_ = m.Release()
			return nil, errors.Wrapf(ErrIndexOutOfBounds, "%s: (%d,%d) outside %dx%d", tag, e.Row, e.Col, size.Rows, size.Cols)
		}
	}
	op, err := resolveDuplicate(ctx, tag, dup.Spec())
	if err != nil {
		_ = m.Release()
		return nil, err
	}
	rows, cols, vals := list.Slices()
	if err := build(&m.container, tag, rows, cols, vals, op); err != nil {
		_ = m.Release()
		return nil, err
	}
	return m, nil
}

// Size returns the shape. A nil matrix reports 0x0.
func (m *Matrix[T]) Size() Size {
	if m == nil {
		return Size{}
	}
	return Size{Rows: m.rows, Cols: m.cols}
}

// Rows returns the row count, 0 for a nil matrix.
func (m *Matrix[T]) Rows() int { return m.Size().Rows }

// Cols returns the column count, 0 for a nil matrix.
func (m *Matrix[T]) Cols() int { return m.Size().Cols }

// Context returns the owning Context, nil for a nil matrix.
func (m *Matrix[T]) Context() *Context {
	if m == nil {
		return nil
	}
	return m.ctx
}

// SetElement stores v at (row, col).
func (m *Matrix[T]) SetElement(row, col int, v T) error {
	return setElement(m.base(), "Matrix.SetElement", row, col, v)
}

// Element returns the value at (row, col), or the domain zero when nothing
// is stored there.
func (m *Matrix[T]) Element(row, col int) (T, error) {
	v, _, err := lookupElement[T](m.base(), "Matrix.Element", row, col)
	return v, err
}

// Lookup returns the value at (row, col) and whether one is stored.
func (m *Matrix[T]) Lookup(row, col int) (T, bool, error) {
	return lookupElement[T](m.base(), "Matrix.Lookup", row, col)
}

// RemoveElement deletes the entry at (row, col) if present.
func (m *Matrix[T]) RemoveElement(row, col int) error {
	return m.base().removeElement("Matrix.RemoveElement", row, col)
}

// Clear removes every stored entry.
func (m *Matrix[T]) Clear() error { return m.base().clear("Matrix.Clear") }

// StoredCount returns the number of stored entries.
func (m *Matrix[T]) StoredCount() (int, error) { return m.base().storedCount("Matrix.StoredCount") }

// Clone returns an independent deep copy.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	h, err := m.base().duplicate("Matrix.Clone")
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{container: container{ctx: m.ctx, handle: h, rows: m.rows, cols: m.cols}}, nil
}

// Release frees the engine object. Later calls are no-ops; any other use
// reports ErrReleased.
func (m *Matrix[T]) Release() error { return m.base().release("Matrix.Release") }

// ElementList returns every stored entry in row-major order.
func (m *Matrix[T]) ElementList() (MatrixElementList[T], error) {
	rows, cols, vals, err := tuples[T](m.base(), "Matrix.ElementList")
	if err != nil {
		return nil, err
	}
	return MatrixElementListFromSlices(rows, cols, vals)
}

// Handle exposes the engine handle for callers driving the engine directly.
// A nil matrix reports engine.NullHandle.
func (m *Matrix[T]) Handle() engine.Handle {
	if m == nil {
		return engine.NullHandle
	}
	return m.handle
}
