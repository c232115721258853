// SPDX-License-Identifier: MIT
// Package: memengine
//
// Purpose:
//   - The single write path of every kernel: C<M, replace> = accum(C, T),
//     with T computed by the kernel into a coordinate map.
//   - Mask predicates and mask shape checks, shared by all opcodes.
//
// Complexity:
//   - commit is O(nnz(C) + nnz(T)) time and builds one new map of at most
//     that size; the old map is dropped, never edited in place.
//
// Determinism:
//   - The result depends only on C, T, the mask snapshot and the
//     descriptor; map iteration order never shows in the output.
//   - Every value written is cast to the output domain exactly once.
//
// AI-Hints:
//   - Kernels compute T from snapshots, then call commit: aliasing an
//     input with the output is therefore always safe.
//   - Pass region and scope for assign forms; pass nil for whole-output
//     operations (writeAll does this).

package memengine

import (
	"fmt"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// failure carries a non-success status out of a kernel.
type failure struct {
	status engine.Status
	msg    string
}

func fail(st engine.Status, format string, args ...any) *failure {
	return &failure{status: st, msg: fmt.Sprintf(format, args...)}
}

// coordMap translates an output position into the position that decides it
// in another object (the mask). ok=false means "no such position".
type coordMap func(coord) (coord, bool)

func sameCoord(p coord) (coord, bool) { return p, true }

// allowed builds the write-permission predicate from the mask snapshot and
// the descriptor. Without a mask every position is writable, unless the
// complement flag inverts that to none.
//
// Complexity: O(1) per call of the returned predicate.
func (x *exec) allowed(at coordMap) func(coord) bool {
	complement := x.desc.ComplementMask
	if x.mask == nil {
		return func(coord) bool { return !complement }
	}
	structural := x.desc.StructuralMask
	data := x.mask.data
	return func(p coord) bool {
		hit := false
		if q, ok := at(p); ok {
			v, stored := data[q]
			hit = stored && (structural || v.Truthy())
		}
		return hit != complement
	}
}

// checkMask verifies the mask extent against the shape it must match.
//
// Errors: StatusDomainMismatch for a scalar mask, StatusDimensionMismatch
// for a mask of another shape.
func (x *exec) checkMask(rows, cols domain.Index) *failure {
	if x.mask == nil {
		return nil
	}
	if x.mask.class == objScalar {
		return fail(engine.StatusDomainMismatch, "mask must be a matrix or vector")
	}
	if x.mask.rows != rows || x.mask.cols != cols {
		return fail(engine.StatusDimensionMismatch,
			"mask is %dx%d, want %dx%d", x.mask.rows, x.mask.cols, rows, cols)
	}
	return nil
}

// commit applies C<M> = accum(C, T) to the output.
//
//   - region: positions T speaks for; outside it Z keeps C. nil = everywhere.
//   - scope: positions mask and replace act on; outside it C is untouched.
//     nil = everywhere.
//   - allowed: the mask predicate.
//
// Complexity: O(nnz(C) + nnz(T)) under the output's write lock.
func (x *exec) commit(t map[coord]domain.Value, region, scope func(coord) bool, allowed func(coord) bool) {
	out := x.out
	replace := x.desc.Replace
	accum := x.accum

	z := func(p coord, cv domain.Value, hasC bool) (domain.Value, bool) {
		if region != nil && !region(p) {
			return cv, hasC
		}
		tv, hasT := t[p]
		switch {
		case accum != nil && hasC && hasT:
			return accum.binary(cv, tv), true
		case accum != nil && hasC:
			return cv, true
		}
		return tv, hasT
	}

	out.mu.Lock()
	defer out.mu.Unlock()

	next := make(map[coord]domain.Value, len(out.data)+len(t))
	place := func(p coord, cv domain.Value, hasC bool) {
		if allowed(p) {
			if v, ok := z(p, cv, hasC); ok {
				next[p] = v.Cast(out.dom)
			}
			return
		}
		if hasC && !replace {
			next[p] = cv
		}
	}

	for p, cv := range out.data {
		if scope != nil && !scope(p) {
			next[p] = cv
			continue
		}
		place(p, cv, true)
	}
	for p := range t {
		if _, seen := out.data[p]; seen {
			continue
		}
		if scope != nil && !scope(p) {
			continue
		}
		place(p, domain.Value{}, false)
	}
	out.data = next
}
