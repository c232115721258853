// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Element-wise families over two operands of one shape: addition over
//     the union of stored positions, multiplication over the intersection.
//   - Matrix and vector forms share one validation path each
//     (elementWiseMatrix, elementWiseVector) and one engine opcode pair.
//
// Complexity:
//   - Validation is O(1). The engine pass is O(nnz(A) + nnz(B)) plus the
//     write of the result into C.
//
// Determinism:
//   - Union addition passes a lone operand value through, cast to Z; the
//     operator never sees a missing side, so a non-commutative operator
//     (Minus, Div) gives a-b only where both are stored.
//   - Transpose flags apply to matrices only.
//
// AI-Hints:
//   - Pick the Monoid or Semiring constructor when you already hold one:
//     the resolved operator is the same as passing it directly.
//   - Use multiplication with a comparison (GreaterThan, Equal) to diff two
//     snapshots, then reduce with LogicalOrMonoid for "anything changed".

package sparse

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// ElementWiseMatrixAddition computes C<M> = accum(C, A ⊕ B) over the union
// of stored positions. A position stored in one operand only keeps that
// operand's value, cast to Z.
type ElementWiseMatrixAddition[A, B, Z domain.Scalar] struct{ dispatcher }

// NewElementWiseMatrixAdditionBinaryOperator combines with op.
//
// Complexity: O(1), one engine lookup per operator and descriptor.
//
// Errors: ErrNilContainer for a nil ctx, EngineError when the engine
// rejects op or accum.
func NewElementWiseMatrixAdditionBinaryOperator[A, B, Z domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*ElementWiseMatrixAddition[A, B, Z], error) {
	d, err := newDispatcher(ctx, "ElementWiseMatrixAddition", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseMatrixAddition[A, B, Z]{d}, nil
}

// NewElementWiseMatrixAdditionMonoid combines with the monoid's operator.
func NewElementWiseMatrixAdditionMonoid[T domain.Scalar](
	ctx *Context, m algebra.Monoid[T], accum algebra.Accumulator[T], opts ...Option,
) (*ElementWiseMatrixAddition[T, T, T], error) {
	d, err := newDispatcher(ctx, "ElementWiseMatrixAddition", m, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseMatrixAddition[T, T, T]{d}, nil
}

// NewElementWiseMatrixAdditionSemiring combines with the semiring's
// additive monoid.
func NewElementWiseMatrixAdditionSemiring[T domain.Scalar](
	ctx *Context, s algebra.Semiring[T, T, T], accum algebra.Accumulator[T], opts ...Option,
) (*ElementWiseMatrixAddition[T, T, T], error) {
	d, err := newDispatcher(ctx, "ElementWiseMatrixAddition", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseMatrixAddition[T, T, T]{d}, nil
}

// Apply writes A ⊕ B into out.
func (f *ElementWiseMatrixAddition[A, B, Z]) Apply(out *Matrix[Z], a *Matrix[A], b *Matrix[B]) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a, b)
}

// ApplyWithMask writes A ⊕ B into out where mask permits.
//
// Complexity: O(nnz(A) + nnz(B) + nnz(C)).
//
// Errors: ErrReleased or ErrContextMismatch for a bad container,
// ErrDimensionMismatch when the (transposed) operands and out differ in
// shape, ErrShapeMismatch for a mask of another shape, EngineError with
// StatusDomainMismatch for incompatible value domains.
func (f *ElementWiseMatrixAddition[A, B, Z]) ApplyWithMask(out *Matrix[Z], mask MatrixMask, a *Matrix[A], b *Matrix[B]) error {
	return elementWiseMatrix(&f.dispatcher, engine.OpEWiseAdd, out, mask, a, b)
}

// ElementWiseMatrixMultiplication computes C<M> = accum(C, A ⊗ B) over the
// intersection of stored positions.
type ElementWiseMatrixMultiplication[A, B, Z domain.Scalar] struct{ dispatcher }

// NewElementWiseMatrixMultiplicationBinaryOperator combines with op.
//
// Errors: as NewElementWiseMatrixAdditionBinaryOperator.
func NewElementWiseMatrixMultiplicationBinaryOperator[A, B, Z domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*ElementWiseMatrixMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "ElementWiseMatrixMultiplication", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseMatrixMultiplication[A, B, Z]{d}, nil
}

// NewElementWiseMatrixMultiplicationMonoid combines with the monoid's
// operator.
func NewElementWiseMatrixMultiplicationMonoid[T domain.Scalar](
	ctx *Context, m algebra.Monoid[T], accum algebra.Accumulator[T], opts ...Option,
) (*ElementWiseMatrixMultiplication[T, T, T], error) {
	d, err := newDispatcher(ctx, "ElementWiseMatrixMultiplication", m, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseMatrixMultiplication[T, T, T]{d}, nil
}

// NewElementWiseMatrixMultiplicationSemiring combines with the semiring's
// multiplicative operator.
func NewElementWiseMatrixMultiplicationSemiring[A, B, Z domain.Scalar](
	ctx *Context, s algebra.Semiring[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*ElementWiseMatrixMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "ElementWiseMatrixMultiplication", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseMatrixMultiplication[A, B, Z]{d}, nil
}

// Apply writes A ⊗ B into out.
func (f *ElementWiseMatrixMultiplication[A, B, Z]) Apply(out *Matrix[Z], a *Matrix[A], b *Matrix[B]) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a, b)
}

// ApplyWithMask writes A ⊗ B into out where mask permits.
//
// Complexity: O(nnz(A) + nnz(C)), one lookup in B per entry of A.
//
// Errors: as ElementWiseMatrixAddition.ApplyWithMask.
func (f *ElementWiseMatrixMultiplication[A, B, Z]) ApplyWithMask(out *Matrix[Z], mask MatrixMask, a *Matrix[A], b *Matrix[B]) error {
	return elementWiseMatrix(&f.dispatcher, engine.OpEWiseMult, out, mask, a, b)
}

// elementWiseMatrix validates liveness, shape and mask, then issues code.
func elementWiseMatrix(d *dispatcher, code engine.OpCode, out holder, mask MatrixMask, a, b holder) error {
	tag := d.name + ".Apply"
	if err := d.operands(tag, out, a, b); err != nil {
		return err
	}
	o := out.base()
	if err := validateSameShape(tag, o.rows, o.cols, a.base(), b.base(), d.opts.transposeFirst, d.opts.transposeSecond); err != nil {
		return err
	}
	m, err := mask.resolve(tag, d.ctx, o.rows, o.cols)
	if err != nil {
		return err
	}
	return d.call(tag, code, out, m, handles(a, b), engine.NullHandle, engine.Indices{}, engine.Indices{})
}

// ElementWiseVectorAddition is the vector form of ElementWiseMatrixAddition.
type ElementWiseVectorAddition[A, B, Z domain.Scalar] struct{ dispatcher }

// NewElementWiseVectorAdditionBinaryOperator combines with op.
func NewElementWiseVectorAdditionBinaryOperator[A, B, Z domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*ElementWiseVectorAddition[A, B, Z], error) {
	d, err := newDispatcher(ctx, "ElementWiseVectorAddition", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseVectorAddition[A, B, Z]{d}, nil
}

// NewElementWiseVectorAdditionMonoid combines with the monoid's operator.
func NewElementWiseVectorAdditionMonoid[T domain.Scalar](
	ctx *Context, m algebra.Monoid[T], accum algebra.Accumulator[T], opts ...Option,
) (*ElementWiseVectorAddition[T, T, T], error) {
	d, err := newDispatcher(ctx, "ElementWiseVectorAddition", m, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseVectorAddition[T, T, T]{d}, nil
}

// NewElementWiseVectorAdditionSemiring combines with the semiring's
// additive monoid.
func NewElementWiseVectorAdditionSemiring[T domain.Scalar](
	ctx *Context, s algebra.Semiring[T, T, T], accum algebra.Accumulator[T], opts ...Option,
) (*ElementWiseVectorAddition[T, T, T], error) {
	d, err := newDispatcher(ctx, "ElementWiseVectorAddition", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseVectorAddition[T, T, T]{d}, nil
}

// Apply writes u ⊕ v into out.
func (f *ElementWiseVectorAddition[A, B, Z]) Apply(out *Vector[Z], u *Vector[A], v *Vector[B]) error {
	return f.ApplyWithMask(out, NoVectorMask(), u, v)
}

// ApplyWithMask writes u ⊕ v into out where mask permits.
//
// Complexity: O(nnz(u) + nnz(v) + nnz(w)).
//
// Errors: ErrDimensionMismatch when u, v and out differ in length, the
// rest as ElementWiseMatrixAddition.ApplyWithMask.
func (f *ElementWiseVectorAddition[A, B, Z]) ApplyWithMask(out *Vector[Z], mask VectorMask, u *Vector[A], v *Vector[B]) error {
	return elementWiseVector(&f.dispatcher, engine.OpEWiseAdd, out, mask, u, v)
}

// ElementWiseVectorMultiplication is the vector form of
// ElementWiseMatrixMultiplication.
type ElementWiseVectorMultiplication[A, B, Z domain.Scalar] struct{ dispatcher }

// NewElementWiseVectorMultiplicationBinaryOperator combines with op.
func NewElementWiseVectorMultiplicationBinaryOperator[A, B, Z domain.Scalar](
	ctx *Context, op algebra.BinaryOperator[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*ElementWiseVectorMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "ElementWiseVectorMultiplication", op, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseVectorMultiplication[A, B, Z]{d}, nil
}

// NewElementWiseVectorMultiplicationMonoid combines with the monoid's
// operator.
func NewElementWiseVectorMultiplicationMonoid[T domain.Scalar](
	ctx *Context, m algebra.Monoid[T], accum algebra.Accumulator[T], opts ...Option,
) (*ElementWiseVectorMultiplication[T, T, T], error) {
	d, err := newDispatcher(ctx, "ElementWiseVectorMultiplication", m, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseVectorMultiplication[T, T, T]{d}, nil
}

// NewElementWiseVectorMultiplicationSemiring combines with the semiring's
// multiplicative operator.
func NewElementWiseVectorMultiplicationSemiring[A, B, Z domain.Scalar](
	ctx *Context, s algebra.Semiring[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*ElementWiseVectorMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "ElementWiseVectorMultiplication", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &ElementWiseVectorMultiplication[A, B, Z]{d}, nil
}

// Apply writes u ⊗ v into out.
func (f *ElementWiseVectorMultiplication[A, B, Z]) Apply(out *Vector[Z], u *Vector[A], v *Vector[B]) error {
	return f.ApplyWithMask(out, NoVectorMask(), u, v)
}

// ApplyWithMask writes u ⊗ v into out where mask permits.
//
// Errors: as ElementWiseVectorAddition.ApplyWithMask.
func (f *ElementWiseVectorMultiplication[A, B, Z]) ApplyWithMask(out *Vector[Z], mask VectorMask, u *Vector[A], v *Vector[B]) error {
	return elementWiseVector(&f.dispatcher, engine.OpEWiseMult, out, mask, u, v)
}

func elementWiseVector(d *dispatcher, code engine.OpCode, out holder, mask VectorMask, u, v holder) error {
	tag := d.name + ".Apply"
	if err := d.operands(tag, out, u, v); err != nil {
		return err
	}
	o := out.base()
	if err := validateSameShape(tag, o.rows, 1, u.base(), v.base(), false, false); err != nil {
		return err
	}
	m, err := mask.resolve(tag, d.ctx, o.rows, 1)
	if err != nil {
		return err
	}
	return d.call(tag, code, out, m, handles(u, v), engine.NullHandle, engine.Indices{}, engine.Indices{})
}
