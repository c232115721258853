// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// reducer is the surface shared by MonoidReducer and BinaryOperatorReducer.
type reducer[T domain.Scalar] struct{ dispatcher }

// MatrixToVector folds each row of A into out.
// With WithTransposeFirstInput it folds each column.
func (f *reducer[T]) MatrixToVector(out *Vector[T], a *Matrix[T]) error {
	return f.MatrixToVectorWithMask(out, NoVectorMask(), a)
}

// MatrixToVectorWithMask folds rows of A into out where mask permits.
func (f *reducer[T]) MatrixToVectorWithMask(out *Vector[T], mask VectorMask, a *Matrix[T]) error {
	tag := f.name + ".MatrixToVector"
	if err := f.operands(tag, out, a); err != nil {
		return err
	}
	ar, _ := dims(a.base(), f.opts.transposeFirst)
	if err := validateExtent(tag, ar, 1, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, 1)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpReduceToVector, out, m, handles(a), engine.NullHandle, engine.Indices{}, engine.Indices{})
}

// MatrixToScalar folds every stored entry of A into out.
func (f *reducer[T]) MatrixToScalar(out *Scalar[T], a *Matrix[T]) error {
	return f.toScalar(f.name+".MatrixToScalar", out, a)
}

// VectorToScalar folds every stored entry of u into out.
func (f *reducer[T]) VectorToScalar(out *Scalar[T], u *Vector[T]) error {
	return f.toScalar(f.name+".VectorToScalar", out, u)
}

func (f *reducer[T]) toScalar(tag string, out *Scalar[T], in holder) error {
	if err := f.operands(tag, out, in); err != nil {
		return err
	}
	return f.call(tag, engine.OpReduceToScalar, out, maskRef{}, handles(in), engine.NullHandle, engine.Indices{}, engine.Indices{})
}

// MonoidReducer folds entries with a monoid. Reducing nothing into a
// Scalar yields the monoid identity. Results do not depend on the order in
// which entries are combined.
type MonoidReducer[T domain.Scalar] struct{ reducer[T] }

// NewMonoidReducer resolves m and accum.
func NewMonoidReducer[T domain.Scalar](
	ctx *Context, m algebra.Monoid[T], accum algebra.Accumulator[T], opts ...Option,
) (*MonoidReducer[T], error) {
	d, err := newDispatcher(ctx, "MonoidReducer", m, accum, opts)
	if err != nil {
		return nil, err
	}
	return &MonoidReducer[T]{reducer[T]{d}}, nil
}

// BinaryOperatorReducer folds entries with a plain binary operator.
// Reducing nothing into a Scalar leaves it empty, or untouched under an
// accumulator. The engine decides the combination order, so only
// associative and commutative operators give reproducible results.
type BinaryOperatorReducer[T domain.Scalar] struct{ reducer[T] }

// NewBinaryOperatorReducer resolves op and accum.
func NewBinaryOperatorReducer[T domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[T, T, T], accum algebra.Accumulator[T], opts ...Option,
) (*BinaryOperatorReducer[T], error) {
	d, err := newDispatcher(ctx, "BinaryOperatorReducer", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &BinaryOperatorReducer[T]{reducer[T]{d}}, nil
}
