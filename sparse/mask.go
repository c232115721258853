// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Write masks: value types naming which output positions an operation
//     may touch, built from any matrix or vector of any domain.
//   - resolve turns a mask into the handle and descriptor bits of one
//     engine call after checking it covers the output's shape.
//
// Complexity:
//   - Building, complementing and resolving a mask is O(1); no copy of the
//     source container is made. The engine tests membership per written
//     position in O(1).
//
// Determinism:
//   - A value mask treats a stored entry as permitting when its value is
//     not the domain's zero; a structural mask permits on storage alone.
//   - Complement of no mask is still no mask.
//
// AI-Hints:
//   - A complemented structural mask of the visited set is the classic
//     BFS "not yet reached" filter.
//   - Masks are values; pass them freely, but keep the source container
//     alive until the Apply returns.

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// MatrixMask selects the output positions an operation may write.
// The zero value is the unmasked state. A mask borrows its matrix read-only;
// the matrix must outlive every Apply that uses the mask.
type MatrixMask struct{ mask }

// VectorMask is the vector counterpart of MatrixMask.
type VectorMask struct{ mask }

type mask struct {
	src        *container
	set        bool
	structural bool
	complement bool
}

// NoMatrixMask lets every position be written.
func NoMatrixMask() MatrixMask { return MatrixMask{} }

// StructuralMatrixMask permits positions where m stores any entry.
func StructuralMatrixMask[T domain.Scalar](m *Matrix[T]) MatrixMask {
	return MatrixMask{mask{src: m.base(), set: true, structural: true}}
}

// ValueMatrixMask permits positions where m stores a truthy entry.
func ValueMatrixMask[T domain.Scalar](m *Matrix[T]) MatrixMask {
	return MatrixMask{mask{src: m.base(), set: true}}
}

// Complement inverts the permitted positions. Complementing no mask keeps
// it unmasked.
func (m MatrixMask) Complement() MatrixMask { return MatrixMask{m.complemented()} }

// NoVectorMask lets every position be written.
func NoVectorMask() VectorMask { return VectorMask{} }

// StructuralVectorMask permits positions where v stores any entry.
func StructuralVectorMask[T domain.Scalar](v *Vector[T]) VectorMask {
	return VectorMask{mask{src: v.base(), set: true, structural: true}}
}

// ValueVectorMask permits positions where v stores a truthy entry.
func ValueVectorMask[T domain.Scalar](v *Vector[T]) VectorMask {
	return VectorMask{mask{src: v.base(), set: true}}
}

// Complement inverts the permitted positions.
func (m VectorMask) Complement() VectorMask { return VectorMask{m.complemented()} }

// IsSet reports whether a mask is present.
func (m mask) IsSet() bool { return m.set }

// IsStructural reports whether stored entries count regardless of value.
func (m mask) IsStructural() bool { return m.structural }

// IsComplemented reports whether the permitted set is inverted.
func (m mask) IsComplemented() bool { return m.complement }

func (m mask) complemented() mask {
	if m.set {
		m.complement = !m.complement
	}
	return m
}

// maskRef is a mask resolved for one engine call.
type maskRef struct {
	handle     engine.Handle
	structural bool
	complement bool
}

// resolve checks the mask against the shape it must cover.
//
// Complexity: O(1).
//
// Errors: ErrReleased or ErrContextMismatch for a dead or foreign source,
// ErrShapeMismatch when the source is not rows×cols.
func (m mask) resolve(tag string, ctx *Context, rows, cols int) (maskRef, error) {
	if !m.set {
		return maskRef{}, nil
	}
	if err := m.src.live(ctx); err != nil {
		return maskRef{}, errors.Wrapf(err, "%s: mask", tag)
	}
	if m.src.rows != rows || m.src.cols != cols {
		return maskRef{}, errors.Wrapf(ErrShapeMismatch, "%s: mask is %dx%d, want %dx%d",
			tag, m.src.rows, m.src.cols, rows, cols)
	}
	return maskRef{handle: m.src.handle, structural: m.structural, complement: m.complement}, nil
}
