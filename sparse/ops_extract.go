// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// SubMatrixExtractor computes C<M> = accum(C, A(rows, cols)). Output
// position (k, l) reads A(rows[k], cols[l]); repeated indices copy the same
// entry into several positions.
type SubMatrixExtractor[T domain.Scalar] struct{ dispatcher }

// NewSubMatrixExtractor resolves accum.
func NewSubMatrixExtractor[T domain.Scalar](
	ctx *Context, accum algebra.Accumulator[T], opts ...Option,
) (*SubMatrixExtractor[T], error) {
	d, err := newDispatcher(ctx, "SubMatrixExtractor", nil, accum, opts)
	if err != nil {
		return nil, err
	}
	return &SubMatrixExtractor[T]{d}, nil
}

// Apply extracts A(rows, cols) into out.
func (f *SubMatrixExtractor[T]) Apply(out, a *Matrix[T], rows, cols IndexSelector) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a, rows, cols)
}

// ApplyWithMask extracts A(rows, cols) into out where mask permits.
func (f *SubMatrixExtractor[T]) ApplyWithMask(out *Matrix[T], mask MatrixMask, a *Matrix[T], rows, cols IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a); err != nil {
		return err
	}
	ar, ac := dims(a.base(), f.opts.transposeFirst)
	if err := validateLength(tag, "row selector", rows.Len(ar), out.rows); err != nil {
		return err
	}
	if err := validateLength(tag, "column selector", cols.Len(ac), out.cols); err != nil {
		return err
	}
	ri, err := rows.resolve(tag, ar)
	if err != nil {
		return err
	}
	ci, err := cols.resolve(tag, ac)
	if err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, out.cols)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpExtract, out, m, handles(a), engine.NullHandle, ri, ci)
}

// SubVectorExtractor computes w<m> = accum(w, u(indices)).
type SubVectorExtractor[T domain.Scalar] struct{ dispatcher }

// NewSubVectorExtractor resolves accum.
func NewSubVectorExtractor[T domain.Scalar](
	ctx *Context, accum algebra.Accumulator[T], opts ...Option,
) (*SubVectorExtractor[T], error) {
	d, err := newDispatcher(ctx, "SubVectorExtractor", nil, accum, opts)
	if err != nil {
		return nil, err
	}
	return &SubVectorExtractor[T]{d}, nil
}

// Apply extracts u(indices) into out.
func (f *SubVectorExtractor[T]) Apply(out, u *Vector[T], indices IndexSelector) error {
	return f.ApplyWithMask(out, NoVectorMask(), u, indices)
}

// ApplyWithMask extracts u(indices) into out where mask permits.
func (f *SubVectorExtractor[T]) ApplyWithMask(out *Vector[T], mask VectorMask, u *Vector[T], indices IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, u); err != nil {
		return err
	}
	if err := validateLength(tag, "index selector", indices.Len(u.rows), out.rows); err != nil {
		return err
	}
	ix, err := indices.resolve(tag, u.rows)
	if err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, 1)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpExtract, out, m, handles(u), engine.NullHandle, ix, engine.AllIndices())
}

// MatrixColumnExtractor computes w<m> = accum(w, A(rows, col)).
// With WithTransposeFirstInput it reads row col of A instead.
type MatrixColumnExtractor[T domain.Scalar] struct{ dispatcher }

// NewMatrixColumnExtractor resolves accum.
func NewMatrixColumnExtractor[T domain.Scalar](
	ctx *Context, accum algebra.Accumulator[T], opts ...Option,
) (*MatrixColumnExtractor[T], error) {
	d, err := newDispatcher(ctx, "MatrixColumnExtractor", nil, accum, opts)
	if err != nil {
		return nil, err
	}
	return &MatrixColumnExtractor[T]{d}, nil
}

// Apply extracts A(rows, col) into out.
func (f *MatrixColumnExtractor[T]) Apply(out *Vector[T], a *Matrix[T], rows IndexSelector, col int) error {
	return f.ApplyWithMask(out, NoVectorMask(), a, rows, col)
}

// ApplyWithMask extracts A(rows, col) into out where mask permits.
func (f *MatrixColumnExtractor[T]) ApplyWithMask(out *Vector[T], mask VectorMask, a *Matrix[T], rows IndexSelector, col int) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a); err != nil {
		return err
	}
	ar, ac := dims(a.base(), f.opts.transposeFirst)
	if col < 0 || col >= ac {
		return errors.Wrapf(ErrIndexOutOfBounds, "%s: column %d outside %d", tag, col, ac)
	}
	if err := validateLength(tag, "row selector", rows.Len(ar), out.rows); err != nil {
		return err
	}
	ri, err := rows.resolve(tag, ar)
	if err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, 1)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpExtractColumn, out, m, handles(a), engine.NullHandle,
		ri, engine.IndexList(domain.Index(col)))
}
