// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Comparison names the predicate of a value selection.
type Comparison uint8

const (
	CompareEqual Comparison = iota + 1
	CompareNotEqual
	CompareGreaterThan
	CompareGreaterThanOrEqual
	CompareLessThan
	CompareLessThanOrEqual
)

var comparisonNames = map[Comparison]string{
	CompareEqual:              "eq",
	CompareNotEqual:           "ne",
	CompareGreaterThan:        "gt",
	CompareGreaterThanOrEqual: "ge",
	CompareLessThan:           "lt",
	CompareLessThanOrEqual:    "le",
}

func (c Comparison) String() string {
	if n, ok := comparisonNames[c]; ok {
		return n
	}
	return "invalid"
}

// Selection is the predicate a selector keeps entries by: a comparison of
// each value against zero or a threshold, or the position of the entry
// relative to a diagonal. Diagonal k is the set of positions with
// col-row == k.
type Selection[T domain.Scalar] struct {
	name       string
	threshold  T
	against    bool
	positional bool
	k          int
}

// AgainstZero keeps entries v with cmp(v, 0).
func AgainstZero[T domain.Scalar](cmp Comparison) Selection[T] {
	return Selection[T]{name: comparisonNames[cmp]}
}

// AgainstScalar keeps entries v with cmp(v, threshold).
func AgainstScalar[T domain.Scalar](cmp Comparison, threshold T) Selection[T] {
	return Selection[T]{name: comparisonNames[cmp], threshold: threshold, against: true}
}

// LowerTriangle keeps entries on or below diagonal k.
func LowerTriangle[T domain.Scalar](k int) Selection[T] {
	return Selection[T]{name: "tril", positional: true, k: k}
}

// UpperTriangle keeps entries on or above diagonal k.
func UpperTriangle[T domain.Scalar](k int) Selection[T] {
	return Selection[T]{name: "triu", positional: true, k: k}
}

// Diagonal keeps entries on diagonal k.
func Diagonal[T domain.Scalar](k int) Selection[T] {
	return Selection[T]{name: "diag", positional: true, k: k}
}

// OffDiagonal keeps entries off diagonal k.
func OffDiagonal[T domain.Scalar](k int) Selection[T] {
	return Selection[T]{name: "offdiag", positional: true, k: k}
}

// Spec describes the select operator to the engine.
func (s Selection[T]) Spec() engine.OperatorSpec {
	k := domain.KindOf[T]()
	return engine.OperatorSpec{Class: engine.ClassSelect, Name: s.name, Input1: k, Input2: k, Output: domain.KindBool}
}

// IsPositional reports whether the selection looks at positions only.
func (s Selection[T]) IsPositional() bool { return s.positional }

func (s Selection[T]) validate(tag string) error {
	if s.name == "" {
		return errors.Wrapf(ErrInvalidValue, "%s: unknown comparison", tag)
	}
	return nil
}

// run stages the threshold, if any, and calls fn with its handle.
func (s Selection[T]) run(ctx *Context, fn func(engine.Handle) error) error {
	switch {
	case s.positional:
		return withScalar(ctx, int64(s.k), fn)
	case s.against:
		return withScalar(ctx, s.threshold, fn)
	}
	return fn(engine.NullHandle)
}

// MatrixSelector computes C<M> = accum(C, select(A)): entries failing the
// selection are absent from the result, never zero.
type MatrixSelector[T domain.Scalar] struct {
	dispatcher
	sel Selection[T]
}

// NewMatrixSelector resolves sel and accum.
func NewMatrixSelector[T domain.Scalar](
	ctx *Context, sel Selection[T], accum algebra.Accumulator[T], opts ...Option,
) (*MatrixSelector[T], error) {
	if err := sel.validate("NewMatrixSelector"); err != nil {
		return nil, err
	}
	d, err := newDispatcher(ctx, "MatrixSelector", sel, accum, opts)
	if err != nil {
		return nil, err
	}
	return &MatrixSelector[T]{dispatcher: d, sel: sel}, nil
}

// Apply writes the selected entries of A into out.
func (f *MatrixSelector[T]) Apply(out, a *Matrix[T]) error {
	return f.ApplyWithMask(out, NoMatrixMask(), a)
}

// ApplyWithMask writes the selected entries of A into out where mask permits.
func (f *MatrixSelector[T]) ApplyWithMask(out *Matrix[T], mask MatrixMask, a *Matrix[T]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, a); err != nil {
		return err
	}
	ar, ac := dims(a.base(), f.opts.transposeFirst)
	if err := validateExtent(tag, ar, ac, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, out.cols)
	if err != nil {
		return err
	}
	return f.sel.run(f.ctx, func(thunk engine.Handle) error {
		return f.call(tag, engine.OpSelect, out, m, handles(a), thunk, engine.Indices{}, engine.Indices{})
	})
}

// VectorSelector is the vector form of MatrixSelector. Positional
// selections are rejected.
type VectorSelector[T domain.Scalar] struct {
	dispatcher
	sel Selection[T]
}

// NewVectorSelector resolves sel and accum.
func NewVectorSelector[T domain.Scalar](
	ctx *Context, sel Selection[T], accum algebra.Accumulator[T], opts ...Option,
) (*VectorSelector[T], error) {
	const tag = "NewVectorSelector"
	if err := sel.validate(tag); err != nil {
		return nil, err
	}
	if sel.positional {
		return nil, errors.Wrapf(ErrInvalidValue, "%s: %s selects by matrix position", tag, sel.name)
	}
	d, err := newDispatcher(ctx, "VectorSelector", sel, accum, opts)
	if err != nil {
		return nil, err
	}
	return &VectorSelector[T]{dispatcher: d, sel: sel}, nil
}

// Apply writes the selected entries of u into out.
func (f *VectorSelector[T]) Apply(out, u *Vector[T]) error {
	return f.ApplyWithMask(out, NoVectorMask(), u)
}

// ApplyWithMask writes the selected entries of u into out where mask permits.
func (f *VectorSelector[T]) ApplyWithMask(out *Vector[T], mask VectorMask, u *Vector[T]) error {
	tag := f.name + ".Apply"
	if err := f.operands(tag, out, u); err != nil {
		return err
	}
	if err := validateExtent(tag, u.rows, 1, out.base()); err != nil {
		return err
	}
	m, err := mask.resolve(tag, f.ctx, out.rows, 1)
	if err != nil {
		return err
	}
	return f.sel.run(f.ctx, func(thunk engine.Handle) error {
		return f.call(tag, engine.OpSelect, out, m, handles(u), thunk, engine.Indices{}, engine.Indices{})
	})
}
