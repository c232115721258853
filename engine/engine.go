// SPDX-License-Identifier: MIT

// Package engine is the narrow boundary to the sparse linear-algebra engine.
//
// The operator layer (package sparse) never touches storage or kernels. It
// holds opaque handles and funnels every computation through one primitive:
//
//	Invoke(Call{Code, Output, Mask, Accum, Op, Inputs, Scalar, Rows, Cols, Desc}) Status
//
// Containers are created, inspected and freed through the remaining methods
// of Engine. Built-in operators are process-wide constants looked up by
// OperatorSpec; descriptors are resolved once from a DescriptorSpec.
//
// Implementations:
//   - engine/memengine: pure-Go reference engine (dictionary-of-keys storage).
package engine

import "github.com/katalvlaran/graphblas/domain"

// Handle refers to an engine-resident matrix, vector or scalar.
type Handle uint64

// Operator refers to a registered unary/binary operator, monoid, semiring or
// select operator.
type Operator uint64

// Descriptor refers to a resolved set of operation options.
type Descriptor uint64

// Null values mean "absent": no mask, no accumulator, default descriptor.
const (
	NullHandle     Handle     = 0
	NullOperator   Operator   = 0
	NullDescriptor Descriptor = 0
)

// Engine is everything the operator layer consumes from the collaborator.
// Implementations must be safe for concurrent use as long as no two calls
// write the same output handle at the same time.
type Engine interface {
	// NewMatrix allocates an empty rows×cols matrix over kind.
	NewMatrix(kind domain.Kind, rows, cols domain.Index) (Handle, Status)
	// NewVector allocates an empty vector of length n over kind.
	NewVector(kind domain.Kind, n domain.Index) (Handle, Status)
	// NewScalar allocates an empty scalar over kind.
	NewScalar(kind domain.Kind) (Handle, Status)
	// Duplicate deep-copies an object.
	Duplicate(h Handle) (Handle, Status)
	// Free releases an object. Freeing NullHandle is a no-op.
	Free(h Handle) Status
	// Clear removes every stored entry, keeping shape and kind.
	Clear(h Handle) Status

	// Shape returns rows and cols (vectors: n×1, scalars: 1×1).
	Shape(h Handle) (rows, cols domain.Index, st Status)
	// Kind returns the value domain of an object.
	Kind(h Handle) (domain.Kind, Status)
	// StoredCount returns the number of stored entries.
	StoredCount(h Handle) (domain.Index, Status)

	// SetElement stores v (cast to the object's kind) at (row, col).
	// Vectors use col 0; scalars use (0, 0).
	SetElement(h Handle, row, col domain.Index, v domain.Value) Status
	// Element reads one entry; StatusNoValue when nothing is stored.
	Element(h Handle, row, col domain.Index) (domain.Value, Status)
	// RemoveElement deletes one entry if present.
	RemoveElement(h Handle, row, col domain.Index) Status
	// Build loads tuples into an empty object. Duplicate positions are
	// combined with dup; NullOperator makes duplicates an error.
	Build(h Handle, rows, cols []domain.Index, vals []domain.Value, dup Operator) Status
	// Tuples returns every stored entry in row-major order.
	Tuples(h Handle) (rows, cols []domain.Index, vals []domain.Value, st Status)

	// Operator resolves a built-in operator. Equal specs resolve to the same
	// handle for the life of the engine.
	Operator(spec OperatorSpec) (Operator, Status)
	// Descriptor resolves a descriptor. Equal specs may share a handle.
	Descriptor(spec DescriptorSpec) (Descriptor, Status)

	// Invoke runs one operation and reports its status.
	Invoke(c Call) Status

	// ErrorMessage returns the engine's message for the last failure that
	// involved h as output, or "" when there is none.
	ErrorMessage(h Handle) string
}
