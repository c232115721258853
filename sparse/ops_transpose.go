// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// MatrixTranspose computes C<M> = accum(C, Aᵀ).
// WithTransposeFirstInput cancels the transpose and copies A.
type MatrixTranspose[T domain.Scalar] struct{ dispatcher }

// NewMatrixTranspose resolves accum.
func NewMatrixTranspose[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*MatrixTranspose[T], error) {
	d, err := newDispatcher(ctx, "MatrixTranspose", nil, accum, opts)
	if err != nil {
		return nil, err
	}
	return &MatrixTranspose[T]{d}, nil
}

// Apply writes Aᵀ into out.
func (f *MatrixTranspose[T]) Apply(out, a *Matrix[T]) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a)
}

// ApplyWithMask writes Aᵀ into out where mask permits.
func (f *MatrixTranspose[T]) ApplyWithMask(out *Matrix[T], mask MatrixMask, a *Matrix[T]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a); err != nil {
		return err
	}
	ar, ac := dims(a.base(), !f.opts.transposeFirst)
	if err := validateExtent(tag, ar, ac, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, out.cols)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpTranspose, out, m, handles(a), engine.NullHandle, engine.Indices{}, engine.Indices{})
}

// KroneckerProduct computes C<M> = accum(C, A ⊗ B): the block matrix whose
// block (i, j) is A(i, j) ⊗ B.
type KroneckerProduct[A, B, Z domain.Scalar] struct{ dispatcher }

// NewKroneckerProductBinaryOperator multiplies with op.
func NewKroneckerProductBinaryOperator[A, B, Z domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*KroneckerProduct[A, B, Z], error) {
	d, err := newDispatcher(ctx, "KroneckerProduct", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &KroneckerProduct[A, B, Z]{d}, nil
}

// NewKroneckerProductMonoid multiplies with the monoid's operator.
func NewKroneckerProductMonoid[T domain.Scalar](
	ctx *Context, m algebra.Monoid[T], accum algebra.Accumulator[T], opts ...Option,
) (*KroneckerProduct[T, T, T], error) {
	d, err := newDispatcher(ctx, "KroneckerProduct", m, accum, opts)
	if err != nil {
		return nil, err
	}
	return &KroneckerProduct[T, T, T]{d}, nil
}

// NewKroneckerProductSemiring multiplies with the semiring's
// multiplicative operator.
func NewKroneckerProductSemiring[A, B, Z domain.Scalar](
	ctx *Context, s algebra.Semiring[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*KroneckerProduct[A, B, Z], error) {
	d, err := newDispatcher(ctx, "KroneckerProduct", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &KroneckerProduct[A, B, Z]{d}, nil
}

// Apply writes A ⊗ B into out.
func (f *KroneckerProduct[A, B, Z]) Apply(out *Matrix[Z], a *Matrix[A], b *Matrix[B]) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a, b)
}

// ApplyWithMask writes A ⊗ B into out where mask permits.
func (f *KroneckerProduct[A, B, Z]) ApplyWithMask(out *Matrix[Z], mask MatrixMask, a *Matrix[A], b *Matrix[B]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a, b); err != nil {
		return err
	}
	ar, ac := dims(a.base(), f.opts.transposeFirst)
	br, bc := dims(b.base(), f.opts.transposeSecond)
	if uint64(ar)*uint64(br) > domain.MaxIndex || uint64(ac)*uint64(bc) > domain.MaxIndex {
		return errors.Wrapf(ErrInvalidValue, "%s: product of %dx%d and %dx%d exceeds the index range", tag, ar, ac, br, bc)
	}
	if err := validateExtent(tag, ar*br, ac*bc, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, out.cols)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpKronecker, out, m, handles(a, b), engine.NullHandle, engine.Indices{}, engine.Indices{})
}
