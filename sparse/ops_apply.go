// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// UnaryOperatorApplier computes C<M> = accum(C, f(A)) entry by entry.
// The pattern of the result is the pattern of A.
type UnaryOperatorApplier[A, Z domain.Scalar] struct{ dispatcher }

// NewUnaryOperatorApplier resolves op and accum.
func NewUnaryOperatorApplier[A, Z domain.Scalar](
	ctx *Context, op algebra.UnaryOperator[A, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*UnaryOperatorApplier[A, Z], error) {
	d, err := newDispatcher(ctx, "UnaryOperatorApplier", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &UnaryOperatorApplier[A, Z]{d}, nil
}

// MatrixApply writes f(A) into out.
func (f *UnaryOperatorApplier[A, Z]) MatrixApply(out *Matrix[Z], a *Matrix[A]) error {
	return f.MatrixApplyWithMask(out, NoMatrixMask(), a)
}

// MatrixApplyWithMask writes f(A) into out where mask permits.
func (f *UnaryOperatorApplier[A, Z]) MatrixApplyWithMask(out *Matrix[Z], mask MatrixMask, a *Matrix[A]) error {
	return applyMatrix(&f.dispatcher, f.name+".MatrixApply", engine.OpApply, out, mask, a, f.opts.transposeFirst, engine.NullHandle)
}

// VectorApply writes f(u) into out.
func (f *UnaryOperatorApplier[A, Z]) VectorApply(out *Vector[Z], u *Vector[A]) error {
	return f.VectorApplyWithMask(out, NoVectorMask(), u)
}

// VectorApplyWithMask writes f(u) into out where mask permits.
func (f *UnaryOperatorApplier[A, Z]) VectorApplyWithMask(out *Vector[Z], mask VectorMask, u *Vector[A]) error {
	return applyVector(&f.dispatcher, f.name+".VectorApply", engine.OpApply, out, mask, u, engine.NullHandle)
}

// BinaryOperatorApplier computes C<M> = accum(C, op(s, A)) or
// accum(C, op(A, s)) with the scalar s bound to one operand.
type BinaryOperatorApplier[A, B, Z domain.Scalar] struct{ dispatcher }

// NewBinaryOperatorApplier resolves op and accum.
func NewBinaryOperatorApplier[A, B, Z domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*BinaryOperatorApplier[A, B, Z], error) {
	d, err := newDispatcher(ctx, "BinaryOperatorApplier", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &BinaryOperatorApplier[A, B, Z]{d}, nil
}

// MatrixWithScalarFirst writes op(s, B) into out.
func (f *BinaryOperatorApplier[A, B, Z]) MatrixWithScalarFirst(out *Matrix[Z], s A, b *Matrix[B]) error {
	return f.MatrixWithScalarFirstWithMask(out, NoMatrixMask(), s, b)
}

// MatrixWithScalarFirstWithMask writes op(s, B) into out where mask permits.
// B is the second operand, so WithTransposeSecondInput transposes it.
func (f *BinaryOperatorApplier[A, B, Z]) MatrixWithScalarFirstWithMask(out *Matrix[Z], mask MatrixMask, s A, b *Matrix[B]) error {
	return withScalar(f.ctx, s, func(h engine.Handle) error {
		return applyMatrix(&f.dispatcher, f.name+".MatrixWithScalarFirst", engine.OpApplyBindFirst, out, mask, b, f.opts.transposeSecond, h)
	})
}

// MatrixWithScalarSecond writes op(A, s) into out.
func (f *BinaryOperatorApplier[A, B, Z]) MatrixWithScalarSecond(out *Matrix[Z], a *Matrix[A], s B) error {
	return f.MatrixWithScalarSecondWithMask(out, NoMatrixMask(), a, s)
}

// MatrixWithScalarSecondWithMask writes op(A, s) into out where mask permits.
func (f *BinaryOperatorApplier[A, B, Z]) MatrixWithScalarSecondWithMask(out *Matrix[Z], mask MatrixMask, a *Matrix[A], s B) error {
	return withScalar(f.ctx, s, func(h engine.Handle) error {
		return applyMatrix(&f.dispatcher, f.name+".MatrixWithScalarSecond", engine.OpApplyBindSecond, out, mask, a, f.opts.transposeFirst, h)
	})
}

// VectorWithScalarFirst writes op(s, v) into out.
func (f *BinaryOperatorApplier[A, B, Z]) VectorWithScalarFirst(out *Vector[Z], s A, v *Vector[B]) error {
	return f.VectorWithScalarFirstWithMask(out, NoVectorMask(), s, v)
}

// VectorWithScalarFirstWithMask writes op(s, v) into out where mask permits.
func (f *BinaryOperatorApplier[A, B, Z]) VectorWithScalarFirstWithMask(out *Vector[Z], mask VectorMask, s A, v *Vector[B]) error {
	return withScalar(f.ctx, s, func(h engine.Handle) error {
		return applyVector(&f.dispatcher, f.name+".VectorWithScalarFirst", engine.OpApplyBindFirst, out, mask, v, h)
	})
}

// VectorWithScalarSecond writes op(u, s) into out.
func (f *BinaryOperatorApplier[A, B, Z]) VectorWithScalarSecond(out *Vector[Z], u *Vector[A], s B) error {
	return f.VectorWithScalarSecondWithMask(out, NoVectorMask(), u, s)
}

// VectorWithScalarSecondWithMask writes op(u, s) into out where mask permits.
func (f *BinaryOperatorApplier[A, B, Z]) VectorWithScalarSecondWithMask(out *Vector[Z], mask VectorMask, u *Vector[A], s B) error {
	return withScalar(f.ctx, s, func(h engine.Handle) error {
		return applyVector(&f.dispatcher, f.name+".VectorWithScalarSecond", engine.OpApplyBindSecond, out, mask, u, h)
	})
}

func applyMatrix(d *dispatcher, tag string, code engine.OpCode, out holder, mask MatrixMask, a holder, transpose bool, scalar engine.Handle) error {
	if err := d.operands(tag, out, a); err != nil {
		return err
	}
	o := out.base()
	ar, ac := dims(a.base(), transpose)
	if err := validateExtent(tag, ar, ac, o); err != nil {
		return err
	}
	m, err := mask.resolve(tag, d.ctx, o.rows, o.cols)
	if err != nil {
		return err
	}
	return d.call(tag, code, out, m, handles(a), scalar, engine.Indices{}, engine.Indices{})
}

func applyVector(d *dispatcher, tag string, code engine.OpCode, out holder, mask VectorMask, u holder, scalar engine.Handle) error {
	if err := d.operands(tag, out, u); err != nil {
		return err
	}
	o := out.base()
	if err := validateExtent(tag, u.base().rows, 1, o); err != nil {
		return err
	}
	m, err := mask.resolve(tag, d.ctx, o.rows, 1)
	if err != nil {
		return err
	}
	return d.call(tag, code, out, m, handles(u), scalar, engine.Indices{}, engine.Indices{})
}
