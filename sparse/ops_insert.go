// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Insertion (GraphBLAS assign and subassign) of a matrix, vector or
//     scalar into a region addressed by index selectors.
//   - One shared inserter picks the whole-container or sub-insertion
//     opcode, so each family only resolves its own region and mask shape.
//
// Complexity:
//   - Selector resolution is O(|rows| + |cols|). The engine pass is
//     O(|rows|·|cols| + nnz(C)) for a scalar source and O(nnz(A) + nnz(C))
//     for a matrix or vector source.
//
// Determinism:
//   - A position selected more than once takes the last write in selector
//     order.
//   - The source is read before the destination is written, so src may
//     be out itself.
//
// AI-Hints:
//   - Use the Sub form when the mask is the size of the region, not of the
//     destination: a small mask then never clears entries outside.
//   - A scalar insert with a complemented structural mask fills the gaps
//     of a region without touching stored entries.

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Insertion writes a source into the region a pair of selectors addresses.
//
// Every insertion type has two constructors. New<Type> builds the
// whole-container form: the mask has the destination's shape and replace
// clears masked-out positions anywhere in the destination (for row and
// column forms, anywhere in the addressed row or column). NewSub<Type>
// builds the sub-insertion form: the mask has the region's shape and mask
// and replace act only inside the region.
//
// Positions selected more than once receive the last write in selector
// order.

// inserter is the state shared by the insertion families.
type inserter struct {
	dispatcher
	sub bool
}

func newInserter[T domain.Scalar](ctx *Context, name string, sub bool, accum algebra.Accumulator[T], opts []Option) (inserter, error) {
	if sub {
		name = "Sub" + name
	}
	d, err := newDispatcher(ctx, name, nil, accum, opts)
	if err != nil {
		return inserter{}, err
	}
	return inserter{dispatcher: d, sub: sub}, nil
}

// IsSub reports whether mask and replace are scoped to the region.
func (f *inserter) IsSub() bool { return f.sub }

func (f *inserter) code(whole, sub engine.OpCode) engine.OpCode {
	if f.sub {
		return sub
	}
	return whole
}

// withScalar stages v in a temporary engine scalar for the call.
func withScalar[T domain.Scalar](ctx *Context, v T, run func(engine.Handle) error) error {
	s, err := NewScalarValue(ctx, v)
	if err != nil {
		return err
	}
	defer func() { _ = s.Release() }()
	return run(s.handle)
}

// ---------- matrix regions ----------

// InsertMatrixIntoMatrix computes C(rows, cols)<M> = accum(C(rows, cols), A).
// WithTransposeFirstInput inserts Aᵀ.
type InsertMatrixIntoMatrix[T domain.Scalar] struct{ inserter }

// NewInsertMatrixIntoMatrix builds the whole-container form.
//
// Complexity: O(1).
//
// Errors: ErrNilContainer for a nil ctx, EngineError when the engine
// rejects accum.
func NewInsertMatrixIntoMatrix[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertMatrixIntoMatrix[T], error) {
	in, err := newInserter(ctx, "InsertMatrixIntoMatrix", false, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertMatrixIntoMatrix[T]{in}, nil
}

// NewSubInsertMatrixIntoMatrix builds the sub-insertion form.
func NewSubInsertMatrixIntoMatrix[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertMatrixIntoMatrix[T], error) {
	in, err := newInserter(ctx, "InsertMatrixIntoMatrix", true, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertMatrixIntoMatrix[T]{in}, nil
}

// Apply inserts src at rows × cols of out.
func (f *InsertMatrixIntoMatrix[T]) Apply(out, src *Matrix[T], rows, cols IndexSelector) error {
	return f.ApplyWithMask(out, NoMatrixMask(), src, rows, cols)
}

// ApplyWithMask inserts src at rows × cols of out where mask permits.
//
// Complexity: O(|rows| + |cols| + nnz(src) + nnz(out)).
//
// Errors: ErrReleased or ErrContextMismatch for a bad container,
// ErrDimensionMismatch when the selectors do not address src's (possibly
// transposed) shape, ErrIndexOutOfBounds for a selected index outside
// out, ErrShapeMismatch for a mask of the wrong shape.
func (f *InsertMatrixIntoMatrix[T]) ApplyWithMask(out *Matrix[T], mask MatrixMask, src *Matrix[T], rows, cols IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, src); err != nil {
		return err
	}
	sr, sc := dims(src.base(), f.opts.transposeFirst)
	ri, ci, err := f.matrixRegion(tag, out.base(), rows, cols, sr, sc)
	if err != nil {
		return err
	}
	m, err := f.matrixMask(tag, mask, out.base(), rows, cols)
	if err != nil {
		return err
	}
	return f.call(tag, f.code(engine.OpAssign, engine.OpSubAssign), out, m, handles(src), engine.NullHandle, ri, ci)
}

// InsertScalarIntoMatrix computes C(rows, cols)<M> = accum(C(rows, cols), v)
// for every selected position.
type InsertScalarIntoMatrix[T domain.Scalar] struct{ inserter }

// NewInsertScalarIntoMatrix builds the whole-container form.
func NewInsertScalarIntoMatrix[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertScalarIntoMatrix[T], error) {
	in, err := newInserter(ctx, "InsertScalarIntoMatrix", false, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertScalarIntoMatrix[T]{in}, nil
}

// NewSubInsertScalarIntoMatrix builds the sub-insertion form.
func NewSubInsertScalarIntoMatrix[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertScalarIntoMatrix[T], error) {
	in, err := newInserter(ctx, "InsertScalarIntoMatrix", true, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertScalarIntoMatrix[T]{in}, nil
}

// Apply writes v at rows × cols of out.
func (f *InsertScalarIntoMatrix[T]) Apply(out *Matrix[T], v T, rows, cols IndexSelector) error {
	return f.ApplyWithMask(out, NoMatrixMask(), v, rows, cols)
}

// ApplyWithMask writes v at rows × cols of out where mask permits.
//
// Complexity: O(|rows|·|cols| + nnz(out)).
//
// Errors: ErrIndexOutOfBounds for a selected index outside out,
// ErrShapeMismatch for a mask of the wrong shape, ErrReleased or
// ErrContextMismatch for a bad container.
func (f *InsertScalarIntoMatrix[T]) ApplyWithMask(out *Matrix[T], mask MatrixMask, v T, rows, cols IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out); err != nil {
		return err
	}
	o := out.base()
	ri, ci, err := f.matrixRegion(tag, o, rows, cols, rows.Len(o.rows), cols.Len(o.cols))
	if err != nil {
		return err
	}
	m, err := f.matrixMask(tag, mask, o, rows, cols)
	if err != nil {
		return err
	}
	return withScalar(f.ctx, v, func(s engine.Handle) error {
		return f.call(tag, f.code(engine.OpAssignScalar, engine.OpSubAssignScalar), out, m, nil, s, ri, ci)
	})
}

// matrixRegion resolves the selectors against out and checks the source
// extent against them.
func (f *inserter) matrixRegion(tag string, out *container, rows, cols IndexSelector, sr, sc int) (engine.Indices, engine.Indices, error) {
	if err := validateLength(tag, "row selector", rows.Len(out.rows), sr); err != nil {
		return engine.Indices{}, engine.Indices{}, err
	}
	if err := validateLength(tag, "column selector", cols.Len(out.cols), sc); err != nil {
		return engine.Indices{}, engine.Indices{}, err
	}
	ri, err := rows.resolve(tag, out.rows)
	if err != nil {
		return engine.Indices{}, engine.Indices{}, err
	}
	ci, err := cols.resolve(tag, out.cols)
	if err != nil {
		return engine.Indices{}, engine.Indices{}, err
	}
	return ri, ci, nil
}

func (f *inserter) matrixMask(tag string, mask MatrixMask, out *container, rows, cols IndexSelector) (maskRef, error) {
	if f.sub {
		return mask.resolve(tag, f.ctx, rows.Len(out.rows), cols.Len(out.cols))
	}
	return mask.resolve(tag, f.ctx, out.rows, out.cols)
}

// ---------- vector regions ----------

// InsertVectorIntoVector computes w(indices)<m> = accum(w(indices), u).
type InsertVectorIntoVector[T domain.Scalar] struct{ inserter }

// NewInsertVectorIntoVector builds the whole-container form.
func NewInsertVectorIntoVector[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertVectorIntoVector[T], error) {
	in, err := newInserter(ctx, "InsertVectorIntoVector", false, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertVectorIntoVector[T]{in}, nil
}

// NewSubInsertVectorIntoVector builds the sub-insertion form.
func NewSubInsertVectorIntoVector[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertVectorIntoVector[T], error) {
	in, err := newInserter(ctx, "InsertVectorIntoVector", true, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertVectorIntoVector[T]{in}, nil
}

// Apply inserts src at indices of out.
func (f *InsertVectorIntoVector[T]) Apply(out, src *Vector[T], indices IndexSelector) error {
	return f.ApplyWithMask(out, NoVectorMask(), src, indices)
}

// ApplyWithMask inserts src at indices of out where mask permits.
//
// Complexity: O(|indices| + nnz(src) + nnz(out)).
//
// Errors: ErrDimensionMismatch when indices does not select len(src)
// positions, ErrIndexOutOfBounds for an index outside out,
// ErrShapeMismatch for a mask of the wrong length.
func (f *InsertVectorIntoVector[T]) ApplyWithMask(out *Vector[T], mask VectorMask, src *Vector[T], indices IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, src); err != nil {
		return err
	}
	ix, err := f.vectorRegion(tag, out.rows, indices, src.rows)
	if err != nil {
		return err
	}
	m, err := f.vectorMask(tag, mask, out.base(), indices)
	if err != nil {
		return err
	}
	return f.call(tag, f.code(engine.OpAssign, engine.OpSubAssign), out, m, handles(src), engine.NullHandle, ix, engine.AllIndices())
}

// InsertScalarIntoVector computes w(indices)<m> = accum(w(indices), v).
type InsertScalarIntoVector[T domain.Scalar] struct{ inserter }

// NewInsertScalarIntoVector builds the whole-container form.
func NewInsertScalarIntoVector[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertScalarIntoVector[T], error) {
	in, err := newInserter(ctx, "InsertScalarIntoVector", false, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertScalarIntoVector[T]{in}, nil
}

// NewSubInsertScalarIntoVector builds the sub-insertion form.
func NewSubInsertScalarIntoVector[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertScalarIntoVector[T], error) {
	in, err := newInserter(ctx, "InsertScalarIntoVector", true, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertScalarIntoVector[T]{in}, nil
}

// Apply writes v at indices of out.
func (f *InsertScalarIntoVector[T]) Apply(out *Vector[T], v T, indices IndexSelector) error {
	return f.ApplyWithMask(out, NoVectorMask(), v, indices)
}

// ApplyWithMask writes v at indices of out where mask permits.
//
// Errors: ErrIndexOutOfBounds for an index outside out, ErrShapeMismatch
// for a mask of the wrong length.
func (f *InsertScalarIntoVector[T]) ApplyWithMask(out *Vector[T], mask VectorMask, v T, indices IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out); err != nil {
		return err
	}
	o := out.base()
	ix, err := f.vectorRegion(tag, o.rows, indices, indices.Len(o.rows))
	if err != nil {
		return err
	}
	m, err := f.vectorMask(tag, mask, o, indices)
	if err != nil {
		return err
	}
	return withScalar(f.ctx, v, func(s engine.Handle) error {
		return f.call(tag, f.code(engine.OpAssignScalar, engine.OpSubAssignScalar), out, m, nil, s, ix, engine.AllIndices())
	})
}

// vectorRegion resolves indices along a dimension of dim and checks the
// source length n against them.
func (f *inserter) vectorRegion(tag string, dim int, indices IndexSelector, n int) (engine.Indices, error) {
	if err := validateLength(tag, "index selector", indices.Len(dim), n); err != nil {
		return engine.Indices{}, err
	}
	return indices.resolve(tag, dim)
}

func (f *inserter) vectorMask(tag string, mask VectorMask, out *container, indices IndexSelector) (maskRef, error) {
	if f.sub {
		return mask.resolve(tag, f.ctx, indices.Len(out.rows), 1)
	}
	return mask.resolve(tag, f.ctx, out.rows, 1)
}

// ---------- rows and columns ----------

// InsertVectorIntoRow computes C(row, cols)<m> = accum(C(row, cols), uᵀ).
// The mask is a vector: of length Cols() for the whole form, of the
// selector's length for the sub form.
type InsertVectorIntoRow[T domain.Scalar] struct{ inserter }

// NewInsertVectorIntoRow builds the whole-row form.
func NewInsertVectorIntoRow[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertVectorIntoRow[T], error) {
	in, err := newInserter(ctx, "InsertVectorIntoRow", false, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertVectorIntoRow[T]{in}, nil
}

// NewSubInsertVectorIntoRow builds the sub-insertion form.
func NewSubInsertVectorIntoRow[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertVectorIntoRow[T], error) {
	in, err := newInserter(ctx, "InsertVectorIntoRow", true, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertVectorIntoRow[T]{in}, nil
}

// Apply inserts src into row of out at cols.
func (f *InsertVectorIntoRow[T]) Apply(out *Matrix[T], src *Vector[T], row int, cols IndexSelector) error {
	return f.ApplyWithMask(out, NoVectorMask(), src, row, cols)
}

// ApplyWithMask inserts src into row of out at cols where mask permits.
//
// Complexity: O(|cols| + nnz(src) + nnz(out)).
//
// Errors: ErrIndexOutOfBounds for a row outside out or a selected column
// outside out, ErrDimensionMismatch when cols does not select len(src)
// columns, ErrShapeMismatch for a mask of the wrong length.
func (f *InsertVectorIntoRow[T]) ApplyWithMask(out *Matrix[T], mask VectorMask, src *Vector[T], row int, cols IndexSelector) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, src); err != nil {
		return err
	}
	if row < 0 || row >= out.rows {
		return errors.Wrapf(ErrIndexOutOfBounds, "%s: row %d outside %d", tag, row, out.rows)
	}
	ci, err := f.vectorRegion(tag, out.cols, cols, src.rows)
	if err != nil {
		return err
	}
	n := out.cols
	if f.sub {
		n = cols.Len(out.cols)
	}
	m, err := mask.resolve(tag, f.ctx, n, 1)
	if err != nil {
		return err
	}
	return f.call(tag, f.code(engine.OpAssignRow, engine.OpSubAssignRow), out, m, handles(src), engine.NullHandle,
		engine.IndexList(domain.Index(row)), ci)
}

// InsertVectorIntoColumn computes C(rows, col)<m> = accum(C(rows, col), u).
// The mask is a vector: of length Rows() for the whole form, of the
// selector's length for the sub form.
type InsertVectorIntoColumn[T domain.Scalar] struct{ inserter }

// NewInsertVectorIntoColumn builds the whole-column form.
func NewInsertVectorIntoColumn[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertVectorIntoColumn[T], error) {
	in, err := newInserter(ctx, "InsertVectorIntoColumn", false, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertVectorIntoColumn[T]{in}, nil
}

// NewSubInsertVectorIntoColumn builds the sub-insertion form.
func NewSubInsertVectorIntoColumn[T domain.Scalar](ctx *Context, accum algebra.Accumulator[T], opts ...Option) (*InsertVectorIntoColumn[T], error) {
	in, err := newInserter(ctx, "InsertVectorIntoColumn", true, accum, opts)
	if err != nil {
		return nil, err
	}
	return &InsertVectorIntoColumn[T]{in}, nil
}

// Apply inserts src into col of out at rows.
func (f *InsertVectorIntoColumn[T]) Apply(out *Matrix[T], src *Vector[T], rows IndexSelector, col int) error {
	return f.ApplyWithMask(out, NoVectorMask(), src, rows, col)
}

// ApplyWithMask inserts src into col of out at rows where mask permits.
//
// Errors: as InsertVectorIntoRow.ApplyWithMask, for columns.
func (f *InsertVectorIntoColumn[T]) ApplyWithMask(out *Matrix[T], mask VectorMask, src *Vector[T], rows IndexSelector, col int) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, src); err != nil {
		return err
	}
	if col < 0 || col >= out.cols {
		return errors.Wrapf(ErrIndexOutOfBounds, "%s: column %d outside %d", tag, col, out.cols)
	}
	ri, err := f.vectorRegion(tag, out.rows, rows, src.rows)
	if err != nil {
		return err
	}
	n := out.rows
	if f.sub {
		n = rows.Len(out.rows)
	}
	m, err := mask.resolve(tag, f.ctx, n, 1)
	if err != nil {
		return err
	}
	return f.call(tag, f.code(engine.OpAssignColumn, engine.OpSubAssignColumn), out, m, handles(src), engine.NullHandle,
		ri, engine.IndexList(domain.Index(col)))
}
