// SPDX-License-Identifier: MIT
// Package: memengine
//
// Purpose:
//   - One kernel per opcode family: element-wise, products, extraction,
//     assignment, reduction, selection, transpose, Kronecker and apply.
//   - Each kernel validates its operands, computes T from input snapshots
//     and hands T to commit (write.go); none writes the output directly.
//
// Complexity:
//   - Kernels are linear in the stored entries they read, except the
//     products (flops-bound) and Kronecker (nnz(A)·nnz(B)). Sections below
//     state each one.
//
// Determinism:
//   - Products add within one output entry in ascending inner index; rows
//     run in parallel but never share an accumulator.
//   - Folds (reduce) visit entries in sorted coordinate order.
//
// AI-Hints:
//   - A new opcode needs a kernel here plus a case in Invoke's switch;
//     reuse input, requireOp and writeAll for the common checks.
//   - Failures are *failure values carrying a Status, never panics.

package memengine

import (
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// input returns the k-th input, transposed when asked. Only matrices
// transpose; vectors ignore the flag.
func (x *exec) input(k int, transpose bool) (*view, *failure) {
	if k >= len(x.in) {
		return nil, fail(engine.StatusNullPointer, "%s needs input %d", x.call.Code, k)
	}
	v := x.in[k]
	if transpose && v.class == objMatrix {
		return v.transposed(), nil
	}
	return v, nil
}

func (x *exec) requireOutput(class objClass) *failure {
	if x.out.class != class {
		return fail(engine.StatusDomainMismatch, "%s output must be a %s, got %s", x.call.Code, class, x.out.class)
	}
	return nil
}

func (x *exec) requireOp(classes ...engine.OperatorClass) *failure {
	if x.op == nil {
		return fail(engine.StatusNullPointer, "%s needs an operator", x.call.Code)
	}
	for _, c := range classes {
		if x.op.spec.Class == c {
			return nil
		}
	}
	return fail(engine.StatusDomainMismatch, "%s cannot use %s operator %s", x.call.Code, x.op.spec.Class, x.op.spec)
}

func sameShape(a, b *view) bool { return a.rows == b.rows && a.cols == b.cols }

// plain commit for operations that write the whole output through the mask.
func (x *exec) writeAll(t map[coord]domain.Value) *failure {
	if f := x.checkMask(x.out.rows, x.out.cols); f != nil {
		return f
	}
	x.commit(t, nil, nil, x.allowed(sameCoord))
	return nil
}

// ---------- element-wise ----------

// elementWise is eWiseAdd (union) or eWiseMult (intersection). A lone
// operand value is passed through cast to the operator's output domain.
//
// Complexity: O(nnz(A) + nnz(B) + nnz(C)).
//
// Errors: StatusDomainMismatch for mixed or scalar operands or a wrong
// operator class, StatusDimensionMismatch for differing shapes.
func (x *exec) elementWise(intersect bool) *failure {
	if f := x.requireOp(engine.ClassBinary, engine.ClassMonoid, engine.ClassSemiring); f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	b, f := x.input(1, x.desc.TransposeSecond)
	if f != nil {
		return f
	}
	if a.class != b.class || a.class == objScalar {
		return fail(engine.StatusDomainMismatch, "operands are %s and %s", a.class, b.class)
	}
	if f := x.requireOutput(a.class); f != nil {
		return f
	}
	if !sameShape(a, b) || a.rows != x.out.rows || a.cols != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "operands %dx%d and %dx%d into %dx%d",
			a.rows, a.cols, b.rows, b.cols, x.out.rows, x.out.cols)
	}
	fn, kind := x.op.combiner(intersect)

	t := make(map[coord]domain.Value, len(a.data))
	for p, av := range a.data {
		if bv, ok := b.data[p]; ok {
			t[p] = fn(av, bv)
		} else if !intersect {
			t[p] = av.Cast(kind)
		}
	}
	if !intersect {
		for p, bv := range b.data {
			if _, ok := a.data[p]; !ok {
				t[p] = bv.Cast(kind)
			}
		}
	}
	return x.writeAll(t)
}

// ---------- multiplication ----------

// multiply computes A ⊕.⊗ B row by row. Within a row, products are added in
// ascending inner-index order.
//
// Complexity: O(nnz(A) + nnz(B) + flops), rows spread over the workers.
//
// Errors: StatusDimensionMismatch for disagreeing inner dimensions,
// StatusDomainMismatch for a non-semiring operator.
func (x *exec) multiply(a, b *view) (map[coord]domain.Value, *failure) {
	if f := x.requireOp(engine.ClassSemiring); f != nil {
		return nil, f
	}
	if a.cols != b.rows {
		return nil, fail(engine.StatusDimensionMismatch, "inner dimensions %d and %d", a.cols, b.rows)
	}
	add, mul := x.op.add.binary, x.op.mult.binary

	aRows, bRows := a.rowsOf(), b.rowsOf()
	rows := sortedRows(aRows)
	partial := make([]map[domain.Index]domain.Value, len(rows))

	f := x.parallel(len(rows), func(k int) {
		acc := make(map[domain.Index]domain.Value)
		for _, ea := range aRows[rows[k]] {
			for _, eb := range bRows[ea.col] {
				v := mul(ea.val, eb.val)
				if prev, ok := acc[eb.col]; ok {
					v = add(prev, v)
				}
				acc[eb.col] = v
			}
		}
		partial[k] = acc
	})
	if f != nil {
		return nil, f
	}

	t := make(map[coord]domain.Value)
	for k, acc := range partial {
		for j, v := range acc {
			t[coord{rows[k], j}] = v
		}
	}
	return t, nil
}

// mxm, mxv and vxm shape-check the product against the output and share
// multiply.
//
// Errors: StatusDomainMismatch for operands of the wrong class,
// StatusDimensionMismatch for a product that does not fit the output.
func (x *exec) mxm() *failure {
	if f := x.requireOutput(objMatrix); f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	b, f := x.input(1, x.desc.TransposeSecond)
	if f != nil {
		return f
	}
	if a.class != objMatrix || b.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "mxm operands are %s and %s", a.class, b.class)
	}
	if a.rows != x.out.rows || b.cols != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "product is %dx%d, output %dx%d", a.rows, b.cols, x.out.rows, x.out.cols)
	}
	t, f := x.multiply(a, b)
	if f != nil {
		return f
	}
	return x.writeAll(t)
}

func (x *exec) mxv() *failure {
	if f := x.requireOutput(objVector); f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	u, f := x.input(1, false)
	if f != nil {
		return f
	}
	if a.class != objMatrix || u.class != objVector {
		return fail(engine.StatusDomainMismatch, "mxv operands are %s and %s", a.class, u.class)
	}
	if a.rows != x.out.rows {
		return fail(engine.StatusDimensionMismatch, "product has %d rows, output %d", a.rows, x.out.rows)
	}
	// u is stored as an n×1 column already
	t, f := x.multiply(a, u)
	if f != nil {
		return f
	}
	return x.writeAll(t)
}

func (x *exec) vxm() *failure {
	if f := x.requireOutput(objVector); f != nil {
		return f
	}
	u, f := x.input(0, false)
	if f != nil {
		return f
	}
	a, f := x.input(1, x.desc.TransposeSecond)
	if f != nil {
		return f
	}
	if u.class != objVector || a.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "vxm operands are %s and %s", u.class, a.class)
	}
	if a.cols != x.out.rows {
		return fail(engine.StatusDimensionMismatch, "product has %d entries, output %d", a.cols, x.out.rows)
	}
	row, f := x.multiply(u.transposed(), a)
	if f != nil {
		return f
	}
	t := make(map[coord]domain.Value, len(row))
	for p, v := range row {
		t[coord{p.c, 0}] = v
	}
	return x.writeAll(t)
}

// ---------- index selection ----------

// positions maps a source index to every destination slot that reads it.
// Explicit lists are bounds-checked against n.
func positions(ix engine.Indices, n domain.Index) (func(domain.Index) []domain.Index, *failure) {
	if ix.All {
		return func(i domain.Index) []domain.Index { return []domain.Index{i} }, nil
	}
	slots := make(map[domain.Index][]domain.Index, len(ix.List))
	for k, i := range ix.List {
		if i >= n {
			return nil, fail(engine.StatusIndexOutOfBounds, "index %d outside dimension %d", i, n)
		}
		slots[i] = append(slots[i], domain.Index(k))
	}
	return func(i domain.Index) []domain.Index { return slots[i] }, nil
}

// resolveIndices materializes a selector against a dimension of length n.
func resolveIndices(ix engine.Indices, n domain.Index) ([]domain.Index, *failure) {
	if ix.All {
		out := make([]domain.Index, n)
		for k := range out {
			out[k] = domain.Index(k)
		}
		return out, nil
	}
	for _, i := range ix.List {
		if i >= n {
			return nil, fail(engine.StatusIndexOutOfBounds, "index %d outside dimension %d", i, n)
		}
	}
	return ix.List, nil
}

// extract copies A(rows, cols) into the output; a repeated selector index
// copies the entry to every slot that names it.
//
// Complexity: O(|rows| + |cols| + nnz(A)·d), d the largest repeat count.
//
// Errors: StatusDimensionMismatch when the selection does not fit the
// output, StatusIndexOutOfBounds for an index outside A.
func (x *exec) extract() *failure {
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	if a.class == objScalar {
		return fail(engine.StatusDomainMismatch, "cannot extract from a scalar")
	}
	if f := x.requireOutput(a.class); f != nil {
		return f
	}
	cols := x.call.Cols
	if a.class == objVector {
		cols = engine.AllIndices()
	}
	if x.call.Rows.Len(a.rows) != x.out.rows || cols.Len(a.cols) != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "selection is %dx%d, output %dx%d",
			x.call.Rows.Len(a.rows), cols.Len(a.cols), x.out.rows, x.out.cols)
	}
	rowSlots, f := positions(x.call.Rows, a.rows)
	if f != nil {
		return f
	}
	colSlots, f := positions(cols, a.cols)
	if f != nil {
		return f
	}

	t := make(map[coord]domain.Value)
	for p, v := range a.data {
		for _, r := range rowSlots(p.r) {
			for _, c := range colSlots(p.c) {
				t[coord{r, c}] = v
			}
		}
	}
	return x.writeAll(t)
}

// extractColumn copies A(rows, j) into a vector.
//
// Complexity: O(|rows| + nnz(A)).
//
// Errors: StatusInvalidValue unless exactly one column is named,
// StatusInvalidIndex for a column outside A, StatusDimensionMismatch when
// the selection does not fit the output.
func (x *exec) extractColumn() *failure {
	if f := x.requireOutput(objVector); f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	if a.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "column extraction needs a matrix, got %s", a.class)
	}
	if x.call.Cols.All || len(x.call.Cols.List) != 1 {
		return fail(engine.StatusInvalidValue, "column extraction needs exactly one column index")
	}
	j := x.call.Cols.List[0]
	if j >= a.cols {
		return fail(engine.StatusInvalidIndex, "column %d outside %d columns", j, a.cols)
	}
	if x.call.Rows.Len(a.rows) != x.out.rows {
		return fail(engine.StatusDimensionMismatch, "selection has %d rows, output %d", x.call.Rows.Len(a.rows), x.out.rows)
	}
	rowSlots, f := positions(x.call.Rows, a.rows)
	if f != nil {
		return f
	}

	t := make(map[coord]domain.Value)
	for p, v := range a.data {
		if p.c != j {
			continue
		}
		for _, r := range rowSlots(p.r) {
			t[coord{r, 0}] = v
		}
	}
	return x.writeAll(t)
}

// ---------- assignment ----------

type assignForm struct {
	sub    bool
	scalar bool
	row    bool
	column bool
}

func formOf(code engine.OpCode) assignForm {
	switch code {
	case engine.OpAssignScalar:
		return assignForm{scalar: true}
	case engine.OpAssignRow:
		return assignForm{row: true}
	case engine.OpAssignColumn:
		return assignForm{column: true}
	case engine.OpSubAssign:
		return assignForm{sub: true}
	case engine.OpSubAssignScalar:
		return assignForm{sub: true, scalar: true}
	case engine.OpSubAssignRow:
		return assignForm{sub: true, row: true}
	case engine.OpSubAssignColumn:
		return assignForm{sub: true, column: true}
	}
	return assignForm{}
}

// single reads the one index a row or column form addresses.
func single(ix engine.Indices, n domain.Index, what string) (domain.Index, *failure) {
	if ix.All || len(ix.List) != 1 {
		return 0, fail(engine.StatusInvalidValue, "%s assignment needs exactly one %s index", what, what)
	}
	if ix.List[0] >= n {
		return 0, fail(engine.StatusInvalidIndex, "%s %d outside dimension %d", what, ix.List[0], n)
	}
	return ix.List[0], nil
}

// assign writes a source into the region Rows×Cols of the output. Whole
// forms apply mask and replace to the output (or the addressed row/column);
// sub forms apply a region-shaped mask to the region only. Duplicate
// destinations keep the last write in selector order.
//
// Complexity: O(|rows|·|cols| + nnz(C)).
//
// Errors: StatusIndexOutOfBounds for a destination outside C (or
// StatusInvalidIndex for the row or column of a vector form),
// StatusDimensionMismatch for a source or mask that does not fit the
// region, StatusNullPointer for a scalar form without a scalar.
func (x *exec) assign() *failure {
	form := formOf(x.call.Code)
	out := x.out
	if out.class == objScalar {
		return fail(engine.StatusDomainMismatch, "cannot assign into a scalar")
	}
	if (form.row || form.column) && out.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "row and column assignment need a matrix output")
	}

	var rows, cols []domain.Index
	var f *failure
	switch {
	case form.row:
		i, f := single(x.call.Rows, out.rows, "row")
		if f != nil {
			return f
		}
		rows = []domain.Index{i}
	default:
		if rows, f = resolveIndices(x.call.Rows, out.rows); f != nil {
			return f
		}
	}
	switch {
	case form.column:
		j, f := single(x.call.Cols, out.cols, "column")
		if f != nil {
			return f
		}
		cols = []domain.Index{j}
	case out.class == objVector:
		cols = []domain.Index{0}
	default:
		if cols, f = resolveIndices(x.call.Cols, out.cols); f != nil {
			return f
		}
	}

	src, f := x.assignSource(form, domain.Index(len(rows)), domain.Index(len(cols)))
	if f != nil {
		return f
	}

	t := make(map[coord]domain.Value)
	rel := make(map[coord]coord, len(rows)*len(cols))
	for a, i := range rows {
		for b, j := range cols {
			p, q := coord{i, j}, coord{domain.Index(a), domain.Index(b)}
			rel[p] = q
			if v, ok := src(q); ok {
				t[p] = v
			} else {
				delete(t, p)
			}
		}
	}
	inRegion := func(p coord) bool {
		_, ok := rel[p]
		return ok
	}

	var scope func(coord) bool
	var at coordMap
	var maskRows, maskCols domain.Index
	switch {
	case form.sub && form.row:
		scope, maskRows, maskCols = inRegion, domain.Index(len(cols)), 1
		at = func(p coord) (coord, bool) { q, ok := rel[p]; return coord{q.c, 0}, ok }
	case form.sub && form.column:
		scope, maskRows, maskCols = inRegion, domain.Index(len(rows)), 1
		at = func(p coord) (coord, bool) { q, ok := rel[p]; return coord{q.r, 0}, ok }
	case form.sub:
		scope, maskRows, maskCols = inRegion, domain.Index(len(rows)), domain.Index(len(cols))
		at = func(p coord) (coord, bool) { q, ok := rel[p]; return q, ok }
	case form.row:
		i := rows[0]
		scope, maskRows, maskCols = func(p coord) bool { return p.r == i }, out.cols, 1
		at = func(p coord) (coord, bool) { return coord{p.c, 0}, true }
	case form.column:
		j := cols[0]
		scope, maskRows, maskCols = func(p coord) bool { return p.c == j }, out.rows, 1
		at = func(p coord) (coord, bool) { return coord{p.r, 0}, true }
	default:
		maskRows, maskCols, at = out.rows, out.cols, sameCoord
	}
	if f := x.checkMask(maskRows, maskCols); f != nil {
		return f
	}
	x.commit(t, inRegion, scope, x.allowed(at))
	return nil
}

// assignSource returns the value placed at region-relative position q.
func (x *exec) assignSource(form assignForm, nRows, nCols domain.Index) (func(coord) (domain.Value, bool), *failure) {
	if form.scalar {
		if x.scalar == nil {
			return nil, fail(engine.StatusNullPointer, "scalar assignment needs a scalar")
		}
		v, ok := x.scalar.data[coord{}]
		return func(coord) (domain.Value, bool) { return v, ok }, nil
	}

	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return nil, f
	}
	switch {
	case form.row:
		if a.class != objVector || a.rows != nCols {
			return nil, fail(engine.StatusDimensionMismatch, "row source has %d entries, region %d", a.rows, nCols)
		}
		return func(q coord) (domain.Value, bool) { v, ok := a.data[coord{q.c, 0}]; return v, ok }, nil
	case form.column:
		if a.class != objVector || a.rows != nRows {
			return nil, fail(engine.StatusDimensionMismatch, "column source has %d entries, region %d", a.rows, nRows)
		}
		return func(q coord) (domain.Value, bool) { v, ok := a.data[coord{q.r, 0}]; return v, ok }, nil
	}
	if a.class != x.out.class {
		return nil, fail(engine.StatusDomainMismatch, "cannot assign a %s into a %s", a.class, x.out.class)
	}
	if a.rows != nRows || a.cols != nCols {
		return nil, fail(engine.StatusDimensionMismatch, "source is %dx%d, region %dx%d", a.rows, a.cols, nRows, nCols)
	}
	return func(q coord) (domain.Value, bool) { v, ok := a.data[q]; return v, ok }, nil
}

// ---------- reduction ----------

// reducer returns the fold function, its domain, and the monoid identity
// (invalid for plain binary operators).
func (x *exec) reducer() (binaryFn, domain.Kind, domain.Value, *failure) {
	if f := x.requireOp(engine.ClassMonoid, engine.ClassBinary); f != nil {
		return nil, domain.KindInvalid, domain.Value{}, f
	}
	s := x.op.spec
	if s.Input1 != s.Output || s.Input2 != s.Output {
		return nil, domain.KindInvalid, domain.Value{}, fail(engine.StatusDomainMismatch, "reduction operator %s is not closed over one domain", s)
	}
	return x.op.binary, s.Output, x.op.identity, nil
}

// reduceToVector folds every row of A into one entry; empty rows stay
// empty.
//
// Complexity: O(nnz(A)), rows spread over the workers.
//
// Errors: StatusDomainMismatch for a non-matrix input or an operator not
// closed over one domain, StatusDimensionMismatch for a short output.
func (x *exec) reduceToVector() *failure {
	if f := x.requireOutput(objVector); f != nil {
		return f
	}
	fn, kind, _, f := x.reducer()
	if f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	if a.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "row reduction needs a matrix, got %s", a.class)
	}
	if a.rows != x.out.rows {
		return fail(engine.StatusDimensionMismatch, "matrix has %d rows, output %d", a.rows, x.out.rows)
	}

	byRow := a.rowsOf()
	rows := sortedRows(byRow)
	sums := make([]domain.Value, len(rows))
	if f := x.parallel(len(rows), func(k int) {
		es := byRow[rows[k]]
		acc := es[0].val.Cast(kind)
		for _, e := range es[1:] {
			acc = fn(acc, e.val)
		}
		sums[k] = acc
	}); f != nil {
		return f
	}

	t := make(map[coord]domain.Value, len(rows))
	for k, r := range rows {
		t[coord{r, 0}] = sums[k]
	}
	return x.writeAll(t)
}

// reduceToScalar folds every stored entry. An empty input yields the
// monoid identity, or nothing for a plain binary operator.
//
// Complexity: O(nnz(A) log nnz(A)) for the sorted fold.
//
// Errors: StatusInvalidValue when a mask is given.
func (x *exec) reduceToScalar() *failure {
	if f := x.requireOutput(objScalar); f != nil {
		return f
	}
	if x.mask != nil {
		return fail(engine.StatusInvalidValue, "scalar reduction takes no mask")
	}
	fn, kind, identity, f := x.reducer()
	if f != nil {
		return f
	}
	a, f := x.input(0, false)
	if f != nil {
		return f
	}

	t := make(map[coord]domain.Value, 1)
	keys := a.sortedKeys()
	switch {
	case len(keys) > 0:
		acc := a.data[keys[0]].Cast(kind)
		for _, p := range keys[1:] {
			acc = fn(acc, a.data[p])
		}
		t[coord{}] = acc
	case identity.IsValid():
		t[coord{}] = identity
	}
	x.commit(t, nil, nil, func(coord) bool { return true })
	return nil
}

// ---------- selection, transpose, kronecker, apply ----------

// selectEntries keeps the entries the select operator accepts, given the
// optional threshold scalar (0 without one).
//
// Complexity: O(nnz(A)).
//
// Errors: StatusEmptyObject for an empty threshold, StatusDimensionMismatch
// for an output of another shape.
func (x *exec) selectEntries() *failure {
	if f := x.requireOp(engine.ClassSelect); f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	if a.class == objScalar {
		return fail(engine.StatusDomainMismatch, "cannot select from a scalar")
	}
	if f := x.requireOutput(a.class); f != nil {
		return f
	}
	if a.rows != x.out.rows || a.cols != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "input %dx%d, output %dx%d", a.rows, a.cols, x.out.rows, x.out.cols)
	}
	thunk := domain.Encode(int64(0))
	if x.scalar != nil {
		v, ok := x.scalar.data[coord{}]
		if !ok {
			return fail(engine.StatusEmptyObject, "select threshold is empty")
		}
		thunk = v
	}

	keep := x.op.sel
	t := make(map[coord]domain.Value)
	for p, v := range a.data {
		if keep(v, p.r, p.c, thunk) {
			t[p] = v
		}
	}
	return x.writeAll(t)
}

// transpose writes Aᵀ.
//
// Complexity: O(nnz(A)).
func (x *exec) transpose() *failure {
	if f := x.requireOutput(objMatrix); f != nil {
		return f
	}
	// a transposed input cancels the transpose
	a, f := x.input(0, !x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	if a.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "transpose needs a matrix, got %s", a.class)
	}
	if a.rows != x.out.rows || a.cols != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "transpose is %dx%d, output %dx%d", a.rows, a.cols, x.out.rows, x.out.cols)
	}
	return x.writeAll(a.data)
}

// kronecker writes the Kronecker product of A and B under the operator.
//
// Complexity: O(nnz(A)·nnz(B)).
//
// Errors: StatusInvalidValue when the product overflows the index range,
// StatusDimensionMismatch for an output of another shape.
func (x *exec) kronecker() *failure {
	if f := x.requireOp(engine.ClassBinary, engine.ClassMonoid, engine.ClassSemiring); f != nil {
		return f
	}
	if f := x.requireOutput(objMatrix); f != nil {
		return f
	}
	a, f := x.input(0, x.desc.TransposeFirst)
	if f != nil {
		return f
	}
	b, f := x.input(1, x.desc.TransposeSecond)
	if f != nil {
		return f
	}
	if a.class != objMatrix || b.class != objMatrix {
		return fail(engine.StatusDomainMismatch, "kronecker operands are %s and %s", a.class, b.class)
	}
	if a.rows > domain.MaxIndex/b.rows || a.cols > domain.MaxIndex/b.cols {
		return fail(engine.StatusInvalidValue, "kronecker product exceeds the index range")
	}
	if a.rows*b.rows != x.out.rows || a.cols*b.cols != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "product is %dx%d, output %dx%d",
			a.rows*b.rows, a.cols*b.cols, x.out.rows, x.out.cols)
	}
	fn, _ := x.op.combiner(true)

	t := make(map[coord]domain.Value, len(a.data)*len(b.data))
	for pa, av := range a.data {
		for pb, bv := range b.data {
			t[coord{pa.r*b.rows + pb.r, pa.c*b.cols + pb.c}] = fn(av, bv)
		}
	}
	return x.writeAll(t)
}

// apply maps every stored entry of the single input. With a bound first
// scalar the input is the second operand, so TransposeSecond applies to it.
//
// Complexity: O(nnz(A)).
//
// Errors: StatusEmptyObject for an empty bound scalar,
// StatusDimensionMismatch for an output of another shape.
func (x *exec) apply() *failure {
	transpose := x.desc.TransposeFirst
	if x.call.Code == engine.OpApplyBindFirst {
		transpose = x.desc.TransposeSecond
	}
	a, f := x.input(0, transpose)
	if f != nil {
		return f
	}
	if a.class == objScalar {
		return fail(engine.StatusDomainMismatch, "cannot apply to a scalar")
	}
	if f := x.requireOutput(a.class); f != nil {
		return f
	}
	if a.rows != x.out.rows || a.cols != x.out.cols {
		return fail(engine.StatusDimensionMismatch, "input %dx%d, output %dx%d", a.rows, a.cols, x.out.rows, x.out.cols)
	}

	var fn unaryFn
	switch x.call.Code {
	case engine.OpApply:
		if f := x.requireOp(engine.ClassUnary); f != nil {
			return f
		}
		fn = x.op.unary
	default:
		if f := x.requireOp(engine.ClassBinary, engine.ClassMonoid); f != nil {
			return f
		}
		if x.scalar == nil {
			return fail(engine.StatusNullPointer, "%s needs a bound scalar", x.call.Code)
		}
		s, ok := x.scalar.data[coord{}]
		if !ok {
			return fail(engine.StatusEmptyObject, "bound scalar is empty")
		}
		bin := x.op.binary
		if x.call.Code == engine.OpApplyBindFirst {
			fn = func(v domain.Value) domain.Value { return bin(s, v) }
		} else {
			fn = func(v domain.Value) domain.Value { return bin(v, s) }
		}
	}

	t := make(map[coord]domain.Value, len(a.data))
	for p, v := range a.data {
		t[p] = fn(v)
	}
	return x.writeAll(t)
}
