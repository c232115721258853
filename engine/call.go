// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/graphblas/domain"
)

// OpCode selects the computation performed by Invoke.
type OpCode uint8

// Operation codes. Input order and the meaning of Rows/Cols/Scalar are fixed
// per code; see Call.
const (
	OpInvalid OpCode = iota

	// C<M> = accum(C, A ⊕ B) over the union of stored positions.
	OpEWiseAdd
	// C<M> = accum(C, A ⊗ B) over the intersection of stored positions.
	OpEWiseMult

	// C<M> = accum(C, A ⊕.⊗ B) for matrices.
	OpMxM
	// w<m> = accum(w, A ⊕.⊗ u).
	OpMxV
	// w<m> = accum(w, u ⊕.⊗ A).
	OpVxM

	// C<M> = accum(C, A(Rows, Cols)); w<m> = accum(w, u(Rows)).
	OpExtract
	// w<m> = accum(w, A(Rows, Cols.List[0])). Transposing the input extracts a row.
	OpExtractColumn

	// C<M>(Rows, Cols) = accum(C(Rows, Cols), A). Mask and replace span C.
	OpAssign
	// C<M>(Rows, Cols) = accum(C(Rows, Cols), s) for every selected position.
	OpAssignScalar
	// C<m>(Rows.List[0], Cols) = accum(C(i, Cols), u). Mask spans row i.
	OpAssignRow
	// C<m>(Rows, Cols.List[0]) = accum(C(Rows, j), u). Mask spans column j.
	OpAssignColumn

	// Sub-assignment forms: mask is shaped like the selected region, and mask
	// and replace affect only that region.
	OpSubAssign
	OpSubAssignScalar
	OpSubAssignRow
	OpSubAssignColumn

	// w<m> = accum(w, ⊕_j A(:, j)). Transposing the input reduces columns.
	OpReduceToVector
	// s = accum(s, ⊕ A). No mask.
	OpReduceToScalar

	// C<M> = accum(C, select(A, thunk)).
	OpSelect
	// C<M> = accum(C, Aᵀ).
	OpTranspose
	// C<M> = accum(C, kron(A, B)).
	OpKronecker

	// C<M> = accum(C, f(A)).
	OpApply
	// C<M> = accum(C, f(s, A)). A is the second operand: TransposeSecond
	// applies to it.
	OpApplyBindFirst
	// C<M> = accum(C, f(A, s)).
	OpApplyBindSecond
)

var opNames = [...]string{
	OpInvalid:         "invalid",
	OpEWiseAdd:        "ewise_add",
	OpEWiseMult:       "ewise_mult",
	OpMxM:             "mxm",
	OpMxV:             "mxv",
	OpVxM:             "vxm",
	OpExtract:         "extract",
	OpExtractColumn:   "extract_column",
	OpAssign:          "assign",
	OpAssignScalar:    "assign_scalar",
	OpAssignRow:       "assign_row",
	OpAssignColumn:    "assign_column",
	OpSubAssign:       "subassign",
	OpSubAssignScalar: "subassign_scalar",
	OpSubAssignRow:    "subassign_row",
	OpSubAssignColumn: "subassign_column",
	OpReduceToVector:  "reduce_to_vector",
	OpReduceToScalar:  "reduce_to_scalar",
	OpSelect:          "select",
	OpTranspose:       "transpose",
	OpKronecker:       "kronecker",
	OpApply:           "apply",
	OpApplyBindFirst:  "apply_bind_first",
	OpApplyBindSecond: "apply_bind_second",
}

// String returns the snake_case name of the operation.
func (c OpCode) String() string {
	if int(c) < len(opNames) {
		return opNames[c]
	}
	return fmt.Sprintf("opcode(%d)", uint8(c))
}

// OperatorClass distinguishes the algebraic kinds of operator.
type OperatorClass uint8

// Operator classes.
const (
	ClassInvalid OperatorClass = iota
	ClassUnary
	ClassBinary
	ClassMonoid
	ClassSemiring
	ClassSelect
)

func (c OperatorClass) String() string {
	switch c {
	case ClassUnary:
		return "unary"
	case ClassBinary:
		return "binary"
	case ClassMonoid:
		return "monoid"
	case ClassSemiring:
		return "semiring"
	case ClassSelect:
		return "select"
	}
	return "invalid"
}

// OperatorSpec names one built-in operator instance.
//
// Name is the operator name ("plus", "times", "lor", ...). For a semiring it
// is the multiplicative operator and Monoid names the additive monoid.
// Input2 is ignored for unary and select operators. For select operators
// Input1 is the domain of the filtered container.
type OperatorSpec struct {
	Class  OperatorClass
	Name   string
	Monoid string
	Input1 domain.Kind
	Input2 domain.Kind
	Output domain.Kind
}

// String renders the operator the way GraphBLAS names its built-ins,
// e.g. "PLUS_TIMES_FP64".
func (s OperatorSpec) String() string {
	switch s.Class {
	case ClassSemiring:
		return fmt.Sprintf("%s_%s_%s", s.Monoid, s.Name, s.Input1)
	case ClassMonoid:
		return fmt.Sprintf("%s_monoid_%s", s.Name, s.Output)
	}
	return fmt.Sprintf("%s_%s", s.Name, s.Input1)
}

// DescriptorSpec is the engine-side form of the operation options.
type DescriptorSpec struct {
	TransposeFirst  bool
	TransposeSecond bool
	Replace         bool
	StructuralMask  bool
	ComplementMask  bool
	Sequential      bool
}

// Indices selects positions along one dimension: every position, or an
// ordered list that may contain duplicates.
type Indices struct {
	All  bool
	List []domain.Index
}

// AllIndices selects the whole dimension.
func AllIndices() Indices { return Indices{All: true} }

// IndexList selects the given positions in order.
func IndexList(list ...domain.Index) Indices { return Indices{List: list} }

// Len resolves the selector against a dimension of length n.
func (ix Indices) Len(n domain.Index) domain.Index {
	if ix.All {
		return n
	}
	return domain.Index(len(ix.List))
}

// At resolves the k-th selected position.
func (ix Indices) At(k domain.Index) domain.Index {
	if ix.All {
		return k
	}
	return ix.List[k]
}

// Call is the single argument shape of Invoke. Unused fields stay zero.
type Call struct {
	Code   OpCode
	Output Handle
	Mask   Handle
	Accum  Operator
	Op     Operator
	Inputs []Handle
	Scalar Handle
	Rows   Indices
	Cols   Indices
	Desc   Descriptor
}
