// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// IndexSelector names the positions along one dimension that take part in
// extraction or insertion: every position, or an ordered list that may
// repeat indices.
type IndexSelector struct {
	all  bool
	list []int
}

// All selects the whole dimension.
func All() IndexSelector { return IndexSelector{all: true} }

// Indices selects the listed positions in order.
func Indices(i ...int) IndexSelector {
	return IndexSelector{list: append([]int(nil), i...)}
}

// IsAll reports whether the whole dimension is selected.
func (s IndexSelector) IsAll() bool { return s.all }

// Len returns the number of selected positions along a dimension of n.
func (s IndexSelector) Len(n int) int {
	if s.all {
		return n
	}
	return len(s.list)
}

// resolve validates the selector against a dimension of n.
func (s IndexSelector) resolve(tag string, n int) (engine.Indices, error) {
	if s.all {
		return engine.AllIndices(), nil
	}
	out, err := domain.ToIndices(s.list)
	if err != nil {
		return engine.Indices{}, sparseErrorf(tag, err)
	}
	for k, i := range s.list {
		if i >= n {
			return engine.Indices{}, errors.Wrapf(ErrIndexOutOfBounds, "%s: index %d (position %d) outside %d", tag, i, k, n)
		}
	}
	return engine.IndexList(out...), nil
}
