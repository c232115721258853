// SPDX-License-Identifier: MIT

package memengine

import (
	"slices"
	"sync"

	"github.com/katalvlaran/graphblas/domain"
)

type objClass uint8

const (
	objMatrix objClass = iota + 1
	objVector
	objScalar
)

func (c objClass) String() string {
	switch c {
	case objMatrix:
		return "matrix"
	case objVector:
		return "vector"
	case objScalar:
		return "scalar"
	}
	return "unknown"
}

// coord is a (row, col) key. Vectors use col 0, scalars (0, 0).
type coord struct {
	r, c domain.Index
}

func compareCoord(a, b coord) int {
	switch {
	case a.r < b.r:
		return -1
	case a.r > b.r:
		return 1
	case a.c < b.c:
		return -1
	case a.c > b.c:
		return 1
	}
	return 0
}

// object is one engine-resident container.
type object struct {
	mu    sync.RWMutex
	class objClass
	dom   domain.Kind
	rows  domain.Index
	cols  domain.Index
	data  map[coord]domain.Value
}

func newObject(class objClass, dom domain.Kind, rows, cols domain.Index) *object {
	return &object{class: class, dom: dom, rows: rows, cols: cols, data: make(map[coord]domain.Value)}
}

// snapshot copies the object under its read lock.
func (o *object) snapshot() *view {
	o.mu.RLock()
	defer o.mu.RUnlock()
	data := make(map[coord]domain.Value, len(o.data))
	for p, v := range o.data {
		data[p] = v
	}
	return &view{class: o.class, dom: o.dom, rows: o.rows, cols: o.cols, data: data}
}

// view is an immutable copy of an object taken before computing.
type view struct {
	class objClass
	dom   domain.Kind
	rows  domain.Index
	cols  domain.Index
	data  map[coord]domain.Value
}

func (v *view) sortedKeys() []coord {
	keys := make([]coord, 0, len(v.data))
	for p := range v.data {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, compareCoord)
	return keys
}

// transposed returns vᵀ. Vectors become 1×n row matrices.
func (v *view) transposed() *view {
	data := make(map[coord]domain.Value, len(v.data))
	for p, x := range v.data {
		data[coord{p.c, p.r}] = x
	}
	return &view{class: v.class, dom: v.dom, rows: v.cols, cols: v.rows, data: data}
}

// rowsOf groups entries by row, each row sorted by column.
func (v *view) rowsOf() map[domain.Index][]entry {
	out := make(map[domain.Index][]entry)
	for p, x := range v.data {
		out[p.r] = append(out[p.r], entry{col: p.c, val: x})
	}
	for r := range out {
		slices.SortFunc(out[r], func(a, b entry) int {
			switch {
			case a.col < b.col:
				return -1
			case a.col > b.col:
				return 1
			}
			return 0
		})
	}
	return out
}

// sortedRows returns the row indices of rows that hold entries, ascending.
func sortedRows(rows map[domain.Index][]entry) []domain.Index {
	out := make([]domain.Index, 0, len(rows))
	for r := range rows {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

type entry struct {
	col domain.Index
	val domain.Value
}
