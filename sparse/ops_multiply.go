// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Semiring products: matrix×matrix (mxm), matrix×vector (mxv) and
//     vector×matrix (vxm), each with the C<M> = accum(C, T) write.
//   - Shape checks happen here, on the transposed views, before the engine
//     is called, so a mismatch names both operands.
//
// Complexity:
//   - Validation is O(1). The product costs O(nnz(A) + nnz(B) + flops),
//     flops being the multiply count Σ_k nnz(A(:,k))·nnz(B(k,:)).
//
// Determinism:
//   - Within one output entry the semiring adds products in ascending
//     inner index, so a non-associative floating-point add still gives the
//     same bits run to run, sequential or parallel.
//
// AI-Hints:
//   - For a vector frontier use vxm (uᵀ·A) instead of mxv with a
//     transposed A: same result, no transposed copy of A.
//   - MinPlus with a Min accumulator is one Bellman-Ford relaxation round;
//     AnyPair or LogicalOrAnd with a complemented mask is one BFS step.
//   - out may alias an input: the engine reads every input before it
//     writes.

package sparse

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// MatrixMultiplication computes C<M> = accum(C, A ⊕.⊗ B) over a semiring.
// WithTransposeFirstInput and WithTransposeSecondInput transpose A and B.
type MatrixMultiplication[A, B, Z domain.Scalar] struct{ dispatcher }

// NewMatrixMultiplication resolves s and accum.
//
// Complexity: O(1).
//
// Errors: ErrNilContainer for a nil ctx, EngineError when the engine
// rejects s or accum.
func NewMatrixMultiplication[A, B, Z domain.Scalar](
	ctx *Context, s algebra.Semiring[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*MatrixMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "MatrixMultiplication", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &MatrixMultiplication[A, B, Z]{d}, nil
}

// Apply writes A ⊕.⊗ B into out.
func (f *MatrixMultiplication[A, B, Z]) Apply(out *Matrix[Z], a *Matrix[A], b *Matrix[B]) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a, b)
}

// ApplyWithMask writes A ⊕.⊗ B into out where mask permits.
//
// Complexity: O(nnz(A) + nnz(B) + flops + nnz(C)).
//
// Errors: ErrReleased or ErrContextMismatch for a bad container,
// ErrDimensionMismatch for disagreeing inner dimensions or an output of
// the wrong shape, ErrShapeMismatch for a mask of another shape,
// EngineError for an engine-side failure.
func (f *MatrixMultiplication[A, B, Z]) ApplyWithMask(out *Matrix[Z], mask MatrixMask, a *Matrix[A], b *Matrix[B]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a, b); err != nil {
		return err
	}
	ar, ac := dims(a.base(), f.opts.transposeFirst)
	br, bc := dims(b.base(), f.opts.transposeSecond)
	if err := validateInner(tag, ac, br); err != nil {
		return err
	}
	if err := validateExtent(tag, ar, bc, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, out.cols)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpMxM, out, m, handles(a, b), engine.NullHandle, engine.Indices{}, engine.Indices{})
}

// MatrixVectorMultiplication computes w<m> = accum(w, A ⊕.⊗ u).
// WithTransposeFirstInput transposes A.
type MatrixVectorMultiplication[A, B, Z domain.Scalar] struct{ dispatcher }

// NewMatrixVectorMultiplication resolves s and accum.
//
// Errors: as NewMatrixMultiplication.
func NewMatrixVectorMultiplication[A, B, Z domain.Scalar](
	ctx *Context, s algebra.Semiring[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*MatrixVectorMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "MatrixVectorMultiplication", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &MatrixVectorMultiplication[A, B, Z]{d}, nil
}

// Apply writes A ⊕.⊗ u into out.
func (f *MatrixVectorMultiplication[A, B, Z]) Apply(out *Vector[Z], a *Matrix[A], u *Vector[B]) error {
	return f.ApplyWithMask(out, NoVectorMask(), a, u)
}

// ApplyWithMask writes A ⊕.⊗ u into out where mask permits.
//
// Complexity: O(nnz(A) + nnz(u) + nnz(w)).
//
// Errors: ErrDimensionMismatch when A has not len(u) columns (rows when
// transposed) or out not A's row count, the rest as
// MatrixMultiplication.ApplyWithMask.
func (f *MatrixVectorMultiplication[A, B, Z]) ApplyWithMask(out *Vector[Z], mask VectorMask, a *Matrix[A], u *Vector[B]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a, u); err != nil {
		return err
	}
	ar, ac := dims(a.base(), f.opts.transposeFirst)
	if err := validateInner(tag, ac, u.rows); err != nil {
		return err
	}
	if err := validateExtent(tag, ar, 1, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, 1)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpMxV, out, m, handles(a, u), engine.NullHandle, engine.Indices{}, engine.Indices{})
}

// VectorMatrixMultiplication computes wᵀ<mᵀ> = accum(wᵀ, uᵀ ⊕.⊗ B).
// WithTransposeSecondInput transposes B.
type VectorMatrixMultiplication[A, B, Z domain.Scalar] struct{ dispatcher }

// NewVectorMatrixMultiplication resolves s and accum.
//
// Errors: as NewMatrixMultiplication.
func NewVectorMatrixMultiplication[A, B, Z domain.Scalar](
	ctx *Context, s algebra.Semiring[A, B, Z], accum algebra.Accumulator[Z], opts ...Option,
) (*VectorMatrixMultiplication[A, B, Z], error) {
	d, err := newDispatcher(ctx, "VectorMatrixMultiplication", s, accum, opts)
	if err != nil {
		return nil, err
	}
	return &VectorMatrixMultiplication[A, B, Z]{d}, nil
}

// Apply writes uᵀ ⊕.⊗ B into out.
func (f *VectorMatrixMultiplication[A, B, Z]) Apply(out *Vector[Z], u *Vector[A], b *Matrix[B]) error {
	return f.ApplyWithMask(out, NoVectorMask(), u, b)
}

// ApplyWithMask writes uᵀ ⊕.⊗ B into out where mask permits.
//
// Complexity: O(nnz(u) + nnz(B) + flops + nnz(w)), flops being
// Σ_{k ∈ u} nnz(B(k,:)).
//
// Errors: ErrDimensionMismatch when B has not len(u) rows or out not B's
// column count, the rest as MatrixMultiplication.ApplyWithMask.
func (f *VectorMatrixMultiplication[A, B, Z]) ApplyWithMask(out *Vector[Z], mask VectorMask, u *Vector[A], b *Matrix[B]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, u, b); err != nil {
		return err
	}
	br, bc := dims(b.base(), f.opts.transposeSecond)
	if err := validateInner(tag, u.rows, br); err != nil {
		return err
	}
	if err := validateExtent(tag, bc, 1, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, 1)
	if err != nil {
		return err
	}
	return f.call(tag, engine.OpVxM, out, m, handles(u, b), engine.NullHandle, engine.Indices{}, engine.Indices{})
}
