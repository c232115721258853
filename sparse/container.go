// SPDX-License-Identifier: MIT

package sparse

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Size is the extent of a matrix.
type Size struct {
	Rows int
	Cols int
}

// container is the state shared by every engine-backed object: the owning
// Context, the engine handle and the fixed shape (vectors n×1, scalars 1×1).
type container struct {
	ctx      *Context
	handle   engine.Handle
	rows     int
	cols     int
	released atomic.Bool
}

// holder is implemented by *Matrix[T], *Vector[T] and *Scalar[T].
// base returns nil for a nil receiver.
type holder interface {
	base() *container
}

// live reports nil, foreign and released containers.
func (c *container) live(ctx *Context) error {
	if c == nil || c.ctx == nil {
		return ErrNilContainer
	}
	if c.released.Load() {
		return ErrReleased
	}
	if ctx != nil && c.ctx != ctx {
		return ErrContextMismatch
	}
	return nil
}

// allocate creates an engine object of the given class.
func allocate(ctx *Context, tag string, kind domain.Kind, rows, cols int, vector bool) (engine.Handle, error) {
	if ctx == nil {
		return engine.NullHandle, sparseErrorf(tag, ErrNilContainer)
	}
	if rows <= 0 || cols <= 0 {
		return engine.NullHandle, errors.Wrapf(ErrInvalidDimensions, "%s: %dx%d", tag, rows, cols)
	}
	r, err := domain.ToIndex(rows)
	if err != nil {
		return engine.NullHandle, sparseErrorf(tag, err)
	}
	c, err := domain.ToIndex(cols)
	if err != nil {
		return engine.NullHandle, sparseErrorf(tag, err)
	}

	var h engine.Handle
	var st engine.Status
	if vector {
		h, st = ctx.eng.NewVector(kind, r)
	} else {
		h, st = ctx.eng.NewMatrix(kind, r, c)
	}
	if err := ctx.check(tag, st); err != nil {
		return engine.NullHandle, err
	}
	return h, nil
}

// position validates and narrows one coordinate.
func (c *container) position(tag string, row, col int) (domain.Index, domain.Index, error) {
	if err := c.live(nil); err != nil {
		return 0, 0, sparseErrorf(tag, err)
	}
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return 0, 0, errors.Wrapf(ErrIndexOutOfBounds, "%s: (%d,%d) outside %dx%d", tag, row, col, c.rows, c.cols)
	}
	return domain.Index(row), domain.Index(col), nil
}

func setElement[T domain.Scalar](c *container, tag string, row, col int, v T) error {
	r, k, err := c.position(tag, row, col)
	if err != nil {
		return err
	}
	return c.ctx.check(tag, c.ctx.eng.SetElement(c.handle, r, k, domain.Encode(v)))
}

// lookupElement reads one entry; ok=false when nothing is stored.
func lookupElement[T domain.Scalar](c *container, tag string, row, col int) (T, bool, error) {
	var zero T
	r, k, err := c.position(tag, row, col)
	if err != nil {
		return zero, false, err
	}
	v, st := c.ctx.eng.Element(c.handle, r, k)
	if st == engine.StatusNoValue {
		return zero, false, nil
	}
	if err := c.ctx.check(tag, st); err != nil {
		return zero, false, err
	}
	out, err := domain.Decode[T](v)
	if err != nil {
		return zero, false, sparseErrorf(tag, err)
	}
	return out, true, nil
}

func (c *container) removeElement(tag string, row, col int) error {
	r, k, err := c.position(tag, row, col)
	if err != nil {
		return err
	}
	return c.ctx.check(tag, c.ctx.eng.RemoveElement(c.handle, r, k))
}

func (c *container) clear(tag string) error {
	if err := c.live(nil); err != nil {
		return sparseErrorf(tag, err)
	}
	return c.ctx.check(tag, c.ctx.eng.Clear(c.handle))
}

func (c *container) storedCount(tag string) (int, error) {
	if err := c.live(nil); err != nil {
		return 0, sparseErrorf(tag, err)
	}
	n, st := c.ctx.eng.StoredCount(c.handle)
	if err := c.ctx.check(tag, st); err != nil {
		return 0, err
	}
	out, err := domain.FromIndex(n)
	if err != nil {
		return 0, sparseErrorf(tag, err)
	}
	return out, nil
}

// duplicate deep-copies the engine object.
func (c *container) duplicate(tag string) (engine.Handle, error) {
	if err := c.live(nil); err != nil {
		return engine.NullHandle, sparseErrorf(tag, err)
	}
	h, st := c.ctx.eng.Duplicate(c.handle)
	if err := c.ctx.check(tag, st); err != nil {
		return engine.NullHandle, err
	}
	return h, nil
}

// release frees the engine object once; later calls are no-ops.
func (c *container) release(tag string) error {
	if c == nil || c.ctx == nil {
		return sparseErrorf(tag, ErrNilContainer)
	}
	if !c.released.CompareAndSwap(false, true) {
		return nil
	}
	return c.ctx.check(tag, c.ctx.eng.Free(c.handle))
}

// tuples returns every stored entry in row-major order.
func tuples[T domain.Scalar](c *container, tag string) ([]int, []int, []T, error) {
	if err := c.live(nil); err != nil {
		return nil, nil, nil, sparseErrorf(tag, err)
	}
	rs, cs, vs, st := c.ctx.eng.Tuples(c.handle)
	if err := c.ctx.check(tag, st); err != nil {
		return nil, nil, nil, err
	}
	rows := make([]int, len(rs))
	cols := make([]int, len(cs))
	vals := make([]T, len(vs))
	for k := range vs {
		v, err := domain.Decode[T](vs[k])
		if err != nil {
			return nil, nil, nil, sparseErrorf(tag, err)
		}
		rows[k], cols[k], vals[k] = int(rs[k]), int(cs[k]), v
	}
	return rows, cols, vals, nil
}

// build loads tuples into a freshly allocated object. Positions were
// already validated by the caller.
func build[T domain.Scalar](c *container, tag string, rows, cols []int, vals []T, dup engine.Operator) error {
	rs := make([]domain.Index, len(rows))
	cs := make([]domain.Index, len(cols))
	vs := make([]domain.Value, len(vals))
	for k := range vals {
		rs[k], cs[k], vs[k] = domain.Index(rows[k]), domain.Index(cols[k]), domain.Encode(vals[k])
	}
	return c.ctx.check(tag, c.ctx.eng.Build(c.handle, rs, cs, vs, dup))
}

// resolveDuplicate turns the optional duplicate policy into an engine handle.
func resolveDuplicate(ctx *Context, tag string, spec engine.OperatorSpec) (engine.Operator, error) {
	h, st := ctx.eng.Operator(spec)
	if err := ctx.check(tag, st); err != nil {
		return engine.NullOperator, err
	}
	return h, nil
}
