// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Scalar is an engine-resident value that may be empty. Reductions write
// into it; selections and appliers read thresholds and bound operands from it.
type Scalar[T domain.Scalar] struct {
	container
}

func (s *Scalar[T]) base() *container {
	if s == nil {
		return nil
	}
	return &s.container
}

// NewScalar allocates an empty scalar.
func NewScalar[T domain.Scalar](ctx *Context) (*Scalar[T], error) {
	const tag = "NewScalar"
	if ctx == nil {
		return nil, sparseErrorf(tag, ErrNilContainer)
	}
	h, st := ctx.eng.NewScalar(domain.KindOf[T]())
	if err := ctx.check(tag, st); err != nil {
		return nil, err
	}
	return &Scalar[T]{container: container{ctx: ctx, handle: h, rows: 1, cols: 1}}, nil
}

// NewScalarValue allocates a scalar holding v.
func NewScalarValue[T domain.Scalar](ctx *Context, v T) (*Scalar[T], error) {
	s, err := NewScalar[T](ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Set(v); err != nil {
		_ = s.Release()
		return nil, err
	}
	return s, nil
}

// Set stores v.
func (s *Scalar[T]) Set(v T) error { return setElement(s.base(), "Scalar.Set", 0, 0, v) }

// Value returns the stored value and whether there is one.
func (s *Scalar[T]) Value() (T, bool, error) {
	return lookupElement[T](s.base(), "Scalar.Value", 0, 0)
}

// Clear empties the scalar.
func (s *Scalar[T]) Clear() error { return s.base().clear("Scalar.Clear") }

// Context returns the owning Context, nil for a nil scalar.
func (s *Scalar[T]) Context() *Context {
	if s == nil {
		return nil
	}
	return s.ctx
}

// Release frees the engine object. Later calls are no-ops.
func (s *Scalar[T]) Release() error { return s.base().release("Scalar.Release") }

// Handle exposes the engine handle, engine.NullHandle for a nil scalar.
func (s *Scalar[T]) Handle() engine.Handle {
	if s == nil {
		return engine.NullHandle
	}
	return s.handle
}
