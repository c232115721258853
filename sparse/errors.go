// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every failure returned by this package matches exactly one category
// sentinel through errors.Is. Engine failures additionally match ErrEngine
// and can be unpacked with errors.As into *EngineError.
// No operation panics on caller-supplied shapes, indices or handles.

package sparse

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Every message is prefixed with "sparse: ..." for easy grepping. Call sites
// wrap sentinels with the operation tag (sparseErrorf) and, where useful,
// the offending extents.

var (
	// ErrDimensionMismatch: operand, selector or output extents disagree.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrShapeMismatch: the mask shape differs from the shape it must cover.
	ErrShapeMismatch = errors.New("sparse: mask shape mismatch")

	// ErrIndexOutOfBounds: an explicit index lies outside a container.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrInvalidValue: a domain conversion failed (negative index, index
	// wider than the engine accepts, zero-valued operator handle).
	ErrInvalidValue = domain.ErrInvalidValue

	// ErrEngine: the engine returned a failure status.
	ErrEngine = errors.New("sparse: engine failure")

	// ErrNilContainer: a nil container or context was passed.
	ErrNilContainer = errors.New("sparse: nil container")

	// ErrNilEngine: NewContext was called without an engine.
	ErrNilEngine = errors.New("sparse: nil engine")

	// ErrContextMismatch: operands belong to different contexts.
	ErrContextMismatch = errors.New("sparse: containers from different contexts")

	// ErrReleased: a container was used after Release.
	ErrReleased = errors.New("sparse: container released")

	// ErrInvalidDimensions: requested extents are not positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")
)

// sparseErrorf tags err with the operation that produced it.
func sparseErrorf(tag string, err error) error {
	return errors.WrapWithDepth(1, err, tag)
}

// EngineError is a non-success status reported by the engine.
type EngineError struct {
	Operation string
	Status    engine.Status
	Message   string
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sparse: %s: engine status %d (%s)", e.Operation, int(e.Status), e.Status)
	}
	return fmt.Sprintf("sparse: %s: engine status %d (%s): %s", e.Operation, int(e.Status), e.Status, e.Message)
}

// Is matches ErrEngine and the category sentinel of the status.
func (e *EngineError) Is(target error) bool {
	if target == ErrEngine {
		return true
	}
	cat := statusCategory(e.Status)
	return cat != nil && target == cat
}

// statusCategory maps engine statuses onto the package taxonomy.
func statusCategory(st engine.Status) error {
	switch st {
	case engine.StatusDimensionMismatch:
		return ErrDimensionMismatch
	case engine.StatusIndexOutOfBounds, engine.StatusInvalidIndex:
		return ErrIndexOutOfBounds
	case engine.StatusInvalidValue, engine.StatusDomainMismatch:
		return ErrInvalidValue
	case engine.StatusUninitializedObject:
		return ErrReleased
	}
	return nil
}
