// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Vector is an engine-resident sparse vector over T with a fixed length.
// A Vector must not be copied after creation.
type Vector[T domain.Scalar] struct {
	container
}

func (v *Vector[T]) base() *container {
	if v == nil {
		return nil
	}
	return &v.container
}

// NewVector allocates an empty vector of length n.
func NewVector[T domain.Scalar](ctx *Context, n int) (*Vector[T], error) {
	h, err := allocate(ctx, "NewVector", domain.KindOf[T](), n, 1, true)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{container: container{ctx: ctx, handle: h, rows: n, cols: 1}}, nil
}

// NewVectorFromElementList builds a vector from list, combining entries
// that share an index with dup in list order.
func NewVectorFromElementList[T domain.Scalar](
	ctx *Context, n int, list VectorElementList[T], dup algebra.BinaryOperator[T, T, T],
) (*Vector[T], error) {
	const tag = "NewVectorFromElementList"
	v, err := NewVector[T](ctx, n)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.Index < 0 || e.Index >= n {
			_ = v.Release()
			return nil, errors.Wrapf(ErrIndexOutOfBounds, "%s: %d outside %d", tag, e.Index, n)
		}
	}
	op, err := resolveDuplicate(ctx, tag, dup.Spec())
	if err != nil {
		_ = v.Release()
		return nil, err
	}
	indices, vals := list.Slices()
	if err := build(&v.container, tag, indices, make([]int, len(indices)), vals, op); err != nil {
		_ = v.Release()
		return nil, err
	}
	return v, nil
}

// Len returns the vector length, 0 for a nil vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.rows
}

// Context returns the owning Context, nil for a nil vector.
func (v *Vector[T]) Context() *Context {
	if v == nil {
		return nil
	}
	return v.ctx
}

// SetElement stores x at i.
func (v *Vector[T]) SetElement(i int, x T) error {
	return setElement(v.base(), "Vector.SetElement", i, 0, x)
}

// Element returns the value at i, or the domain zero when nothing is stored.
func (v *Vector[T]) Element(i int) (T, error) {
	x, _, err := lookupElement[T](v.base(), "Vector.Element", i, 0)
	return x, err
}

// Lookup returns the value at i and whether one is stored.
func (v *Vector[T]) Lookup(i int) (T, bool, error) {
	return lookupElement[T](v.base(), "Vector.Lookup", i, 0)
}

// RemoveElement deletes the entry at i if present.
func (v *Vector[T]) RemoveElement(i int) error {
	return v.base().removeElement("Vector.RemoveElement", i, 0)
}

// Clear removes every stored entry.
func (v *Vector[T]) Clear() error { return v.base().clear("Vector.Clear") }

// StoredCount returns the number of stored entries.
func (v *Vector[T]) StoredCount() (int, error) { return v.base().storedCount("Vector.StoredCount") }

// Clone returns an independent deep copy.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	h, err := v.base().duplicate("Vector.Clone")
	if err != nil {
		return nil, err
	}
	return &Vector[T]{container: container{ctx: v.ctx, handle: h, rows: v.rows, cols: 1}}, nil
}

// Release frees the engine object. Later calls are no-ops.
func (v *Vector[T]) Release() error { return v.base().release("Vector.Release") }

// ElementList returns every stored entry in index order.
func (v *Vector[T]) ElementList() (VectorElementList[T], error) {
	indices, _, vals, err := tuples[T](v.base(), "Vector.ElementList")
	if err != nil {
		return nil, err
	}
	return VectorElementListFromSlices(indices, vals)
}

// Handle exposes the engine handle, engine.NullHandle for a nil vector.
func (v *Vector[T]) Handle() engine.Handle {
	if v == nil {
		return engine.NullHandle
	}
	return v.handle
}
