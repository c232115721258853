// SPDX-License-Identifier: MIT

package memengine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

const i64 = domain.KindInt64

func TestInvoke_EWiseMult_ThenAccumulate(t *testing.T) {
	t.Parallel()
	e := newEngine()
	m, n := fixtureM(t, e), fixtureN(t, e)
	c := MustMatrix(t, e, 2, 2)
	times := MustOp(t, e, binary("times", i64))
	plus := MustOp(t, e, binary("plus", i64))

	call := engine.Call{Code: engine.OpEWiseMult, Output: c, Op: times, Inputs: []engine.Handle{m, n}}
	require.Equal(t, engine.StatusSuccess, e.Invoke(call))
	require.Equal(t, map[pos]int64{{0, 0}: 5, {1, 0}: 12, {0, 1}: 21, {1, 1}: 32}, Dump(t, e, c))

	call.Accum = plus
	require.Equal(t, engine.StatusSuccess, e.Invoke(call))
	require.Equal(t, map[pos]int64{{0, 0}: 10, {1, 0}: 24, {0, 1}: 42, {1, 1}: 64}, Dump(t, e, c))
}

func TestInvoke_EWiseAdd_UnionAndIntersection(t *testing.T) {
	t.Parallel()
	e := newEngine()
	a := MustMatrix(t, e, 2, 2, tri{0, 0, 1}, tri{0, 1, 2})
	b := MustMatrix(t, e, 2, 2, tri{0, 1, 10}, tri{1, 1, 20})
	plus := MustOp(t, e, binary("plus", i64))

	c := MustMatrix(t, e, 2, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpEWiseAdd, Output: c, Op: plus, Inputs: []engine.Handle{a, b}}))
	require.Equal(t, map[pos]int64{{0, 0}: 1, {0, 1}: 12, {1, 1}: 20}, Dump(t, e, c))

	d := MustMatrix(t, e, 2, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpEWiseMult, Output: d, Op: plus, Inputs: []engine.Handle{a, b}}))
	require.Equal(t, map[pos]int64{{0, 1}: 12}, Dump(t, e, d))

	wrong := MustMatrix(t, e, 3, 2)
	require.Equal(t, engine.StatusDimensionMismatch, e.Invoke(engine.Call{
		Code: engine.OpEWiseAdd, Output: c, Op: plus, Inputs: []engine.Handle{a, wrong}}))
	require.NotEmpty(t, e.ErrorMessage(c))
}

func TestInvoke_OutputMayAliasInput(t *testing.T) {
	t.Parallel()
	e := newEngine()
	c := fixtureM(t, e)
	plus := MustOp(t, e, binary("plus", i64))
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpEWiseAdd, Output: c, Op: plus, Inputs: []engine.Handle{c, c}}))
	require.Equal(t, map[pos]int64{{0, 0}: 2, {1, 0}: 4, {0, 1}: 6, {1, 1}: 8}, Dump(t, e, c))
}

func TestInvoke_MaskInterpretations(t *testing.T) {
	t.Parallel()
	full := func(v int64) []tri { return []tri{{0, 0, v}, {0, 1, v}, {1, 0, v}, {1, 1, v}} }

	tests := []struct {
		name string
		desc engine.DescriptorSpec
		want map[pos]int64
	}{
		{"structural", engine.DescriptorSpec{StructuralMask: true},
			map[pos]int64{{0, 0}: 5, {1, 1}: 32, {0, 1}: 100, {1, 0}: 100}},
		{"value", engine.DescriptorSpec{},
			map[pos]int64{{0, 0}: 5, {1, 1}: 100, {0, 1}: 100, {1, 0}: 100}},
		{"value replace", engine.DescriptorSpec{Replace: true},
			map[pos]int64{{0, 0}: 5}},
		{"structural complement", engine.DescriptorSpec{StructuralMask: true, ComplementMask: true},
			map[pos]int64{{0, 0}: 100, {1, 1}: 100, {0, 1}: 21, {1, 0}: 12}},
		{"value complement replace", engine.DescriptorSpec{ComplementMask: true, Replace: true},
			map[pos]int64{{1, 1}: 32, {0, 1}: 21, {1, 0}: 12}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := newEngine()
			m, n := fixtureM(t, e), fixtureN(t, e)
			mask := MustMatrix(t, e, 2, 2, tri{0, 0, 3}, tri{1, 1, 0})
			c := MustMatrix(t, e, 2, 2, full(100)...)
			call := engine.Call{
				Code: engine.OpEWiseMult, Output: c, Mask: mask,
				Op:     MustOp(t, e, binary("times", i64)),
				Inputs: []engine.Handle{m, n},
				Desc:   MustDesc(t, e, tc.desc),
			}
			require.Equal(t, engine.StatusSuccess, e.Invoke(call))
			require.Equal(t, tc.want, Dump(t, e, c))
		})
	}
}

func TestInvoke_MaskShapeChecked(t *testing.T) {
	t.Parallel()
	e := newEngine()
	m, n := fixtureM(t, e), fixtureN(t, e)
	c := MustMatrix(t, e, 2, 2)
	mask := MustMatrix(t, e, 3, 3)
	st := e.Invoke(engine.Call{Code: engine.OpEWiseMult, Output: c, Mask: mask,
		Op: MustOp(t, e, binary("times", i64)), Inputs: []engine.Handle{m, n}})
	require.Equal(t, engine.StatusDimensionMismatch, st)
}

func TestInvoke_Multiplication(t *testing.T) {
	t.Parallel()
	e := newEngine()
	m, n := fixtureM(t, e), fixtureN(t, e)
	pt := MustOp(t, e, semiring("plus", "times", i64))

	for _, seq := range []bool{false, true} {
		c := MustMatrix(t, e, 2, 2)
		require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
			Code: engine.OpMxM, Output: c, Op: pt, Inputs: []engine.Handle{m, n},
			Desc: MustDesc(t, e, engine.DescriptorSpec{Sequential: seq})}))
		require.Equal(t, map[pos]int64{{0, 0}: 23, {0, 1}: 31, {1, 0}: 34, {1, 1}: 46}, Dump(t, e, c))
	}

	// Mᵀ·N
	c := MustMatrix(t, e, 2, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpMxM, Output: c, Op: pt, Inputs: []engine.Handle{m, n},
		Desc: MustDesc(t, e, engine.DescriptorSpec{TransposeFirst: true})}))
	require.Equal(t, map[pos]int64{{0, 0}: 17, {0, 1}: 23, {1, 0}: 39, {1, 1}: 53}, Dump(t, e, c))

	u := MustVector(t, e, 2, tri{0, 0, 1}, tri{1, 0, 1})
	w := MustVector(t, e, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpMxV, Output: w, Op: pt, Inputs: []engine.Handle{m, u}}))
	require.Equal(t, map[pos]int64{{0, 0}: 4, {1, 0}: 6}, Dump(t, e, w))

	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpVxM, Output: w, Op: pt, Inputs: []engine.Handle{u, m}}))
	require.Equal(t, map[pos]int64{{0, 0}: 3, {1, 0}: 7}, Dump(t, e, w))

	wide := MustMatrix(t, e, 3, 3)
	require.Equal(t, engine.StatusDimensionMismatch, e.Invoke(engine.Call{
		Code: engine.OpMxM, Output: c, Op: pt, Inputs: []engine.Handle{m, wide}}))
	require.Equal(t, engine.StatusDomainMismatch, e.Invoke(engine.Call{
		Code: engine.OpMxM, Output: c, Op: MustOp(t, e, binary("plus", i64)), Inputs: []engine.Handle{m, n}}))
}

func TestInvoke_ExtractWithDuplicates(t *testing.T) {
	t.Parallel()
	e := newEngine()
	u := MustVector(t, e, 3, tri{0, 0, 10}, tri{1, 0, 20}, tri{2, 0, 30})
	w := MustVector(t, e, 3)

	call := engine.Call{Code: engine.OpExtract, Output: w, Inputs: []engine.Handle{u},
		Rows: engine.IndexList(2, 0, 2)}
	require.Equal(t, engine.StatusSuccess, e.Invoke(call))
	require.Equal(t, map[pos]int64{{0, 0}: 30, {1, 0}: 10, {2, 0}: 30}, Dump(t, e, w))

	call.Rows = engine.IndexList(0, 3, 1)
	require.Equal(t, engine.StatusIndexOutOfBounds, e.Invoke(call))
	call.Rows = engine.IndexList(0, 1)
	require.Equal(t, engine.StatusDimensionMismatch, e.Invoke(call))

	m := fixtureM(t, e)
	col := MustVector(t, e, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpExtractColumn, Output: col,
		Inputs: []engine.Handle{m}, Rows: engine.AllIndices(), Cols: engine.IndexList(1)}))
	require.Equal(t, map[pos]int64{{0, 0}: 3, {1, 0}: 4}, Dump(t, e, col))

	// transposed input: row 1 of M
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpExtractColumn, Output: col,
		Inputs: []engine.Handle{m}, Rows: engine.AllIndices(), Cols: engine.IndexList(1),
		Desc: MustDesc(t, e, engine.DescriptorSpec{TransposeFirst: true})}))
	require.Equal(t, map[pos]int64{{0, 0}: 2, {1, 0}: 4}, Dump(t, e, col))
}

func TestInvoke_AssignVersusSubAssign(t *testing.T) {
	t.Parallel()
	ones := []tri{{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1}}

	t.Run("assign replace spans the output", func(t *testing.T) {
		t.Parallel()
		e := newEngine()
		c := MustMatrix(t, e, 2, 2, ones...)
		a := MustMatrix(t, e, 1, 1, tri{0, 0, 9})
		mask := MustMatrix(t, e, 2, 2, tri{0, 0, 1})
		require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
			Code: engine.OpAssign, Output: c, Mask: mask, Inputs: []engine.Handle{a},
			Rows: engine.IndexList(0), Cols: engine.IndexList(0),
			Desc: MustDesc(t, e, engine.DescriptorSpec{Replace: true})}))
		require.Equal(t, map[pos]int64{{0, 0}: 9}, Dump(t, e, c))
	})
	t.Run("subassign replace spans the region", func(t *testing.T) {
		t.Parallel()
		e := newEngine()
		c := MustMatrix(t, e, 2, 2, ones...)
		a := MustMatrix(t, e, 1, 1, tri{0, 0, 9})
		mask := MustMatrix(t, e, 1, 1, tri{0, 0, 1})
		require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
			Code: engine.OpSubAssign, Output: c, Mask: mask, Inputs: []engine.Handle{a},
			Rows: engine.IndexList(0), Cols: engine.IndexList(0),
			Desc: MustDesc(t, e, engine.DescriptorSpec{Replace: true})}))
		require.Equal(t, map[pos]int64{{0, 0}: 9, {0, 1}: 1, {1, 0}: 1, {1, 1}: 1}, Dump(t, e, c))
	})
	t.Run("absent source entries clear the region", func(t *testing.T) {
		t.Parallel()
		e := newEngine()
		c := MustMatrix(t, e, 2, 2, ones...)
		a := MustMatrix(t, e, 2, 2, tri{0, 0, 5})
		call := engine.Call{Code: engine.OpAssign, Output: c, Inputs: []engine.Handle{a},
			Rows: engine.AllIndices(), Cols: engine.AllIndices()}
		require.Equal(t, engine.StatusSuccess, e.Invoke(call))
		require.Equal(t, map[pos]int64{{0, 0}: 5}, Dump(t, e, c))

		c2 := MustMatrix(t, e, 2, 2, ones...)
		call.Output, call.Accum = c2, MustOp(t, e, binary("plus", i64))
		require.Equal(t, engine.StatusSuccess, e.Invoke(call))
		require.Equal(t, map[pos]int64{{0, 0}: 6, {0, 1}: 1, {1, 0}: 1, {1, 1}: 1}, Dump(t, e, c2))
	})
	t.Run("row and scalar forms", func(t *testing.T) {
		t.Parallel()
		e := newEngine()
		c := MustMatrix(t, e, 2, 3)
		u := MustVector(t, e, 3, tri{0, 0, 1}, tri{1, 0, 2}, tri{2, 0, 3})
		require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
			Code: engine.OpAssignRow, Output: c, Inputs: []engine.Handle{u},
			Rows: engine.IndexList(1), Cols: engine.AllIndices()}))
		require.Equal(t, map[pos]int64{{1, 0}: 1, {1, 1}: 2, {1, 2}: 3}, Dump(t, e, c))

		s := MustScalar(t, e, 7)
		require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
			Code: engine.OpSubAssignScalar, Output: c, Scalar: s,
			Rows: engine.IndexList(0), Cols: engine.IndexList(0, 2)}))
		require.Equal(t, map[pos]int64{{0, 0}: 7, {0, 2}: 7, {1, 0}: 1, {1, 1}: 2, {1, 2}: 3}, Dump(t, e, c))

		require.Equal(t, engine.StatusDimensionMismatch, e.Invoke(engine.Call{
			Code: engine.OpAssignColumn, Output: c, Inputs: []engine.Handle{u},
			Rows: engine.AllIndices(), Cols: engine.IndexList(0)}))
	})
}

func TestInvoke_Reduce(t *testing.T) {
	t.Parallel()
	e := newEngine()
	m := fixtureM(t, e)
	plusMonoid := MustOp(t, e, monoid("plus", i64))
	plus := MustOp(t, e, binary("plus", i64))

	w := MustVector(t, e, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpReduceToVector, Output: w, Op: plusMonoid, Inputs: []engine.Handle{m}}))
	require.Equal(t, map[pos]int64{{0, 0}: 4, {1, 0}: 6}, Dump(t, e, w))

	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpReduceToVector, Output: w, Op: plusMonoid, Inputs: []engine.Handle{m},
		Desc: MustDesc(t, e, engine.DescriptorSpec{TransposeFirst: true})}))
	require.Equal(t, map[pos]int64{{0, 0}: 3, {1, 0}: 7}, Dump(t, e, w))

	s, _ := e.NewScalar(i64)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpReduceToScalar, Output: s, Op: plusMonoid, Inputs: []engine.Handle{m}}))
	require.Equal(t, map[pos]int64{{0, 0}: 10}, Dump(t, e, s))

	empty := MustMatrix(t, e, 2, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpReduceToScalar, Output: s, Op: plusMonoid, Inputs: []engine.Handle{empty}}))
	require.Equal(t, map[pos]int64{{0, 0}: 0}, Dump(t, e, s))

	// binary reduction of nothing leaves the scalar empty, or untouched when accumulating
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpReduceToScalar, Output: s, Op: plus, Accum: plus, Inputs: []engine.Handle{empty}}))
	require.Equal(t, map[pos]int64{{0, 0}: 0}, Dump(t, e, s))
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpReduceToScalar, Output: s, Op: plus, Inputs: []engine.Handle{empty}}))
	require.Empty(t, Dump(t, e, s))
}

func TestInvoke_Select(t *testing.T) {
	t.Parallel()
	e := newEngine()
	var all []tri
	for i := domain.Index(0); i < 3; i++ {
		for j := domain.Index(0); j < 3; j++ {
			all = append(all, tri{i, j, int64(3*i + j)})
		}
	}
	a := MustMatrix(t, e, 3, 3, all...)
	c := MustMatrix(t, e, 3, 3)
	tril := MustOp(t, e, engine.OperatorSpec{Class: engine.ClassSelect, Name: "tril", Input1: i64})
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpSelect, Output: c, Op: tril, Inputs: []engine.Handle{a}, Scalar: MustScalar(t, e, -1)}))
	require.Equal(t, map[pos]int64{{1, 0}: 3, {2, 0}: 6, {2, 1}: 7}, Dump(t, e, c))

	gt := MustOp(t, e, engine.OperatorSpec{Class: engine.ClassSelect, Name: "gt", Input1: i64})
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpSelect, Output: c, Op: gt, Inputs: []engine.Handle{a}, Scalar: MustScalar(t, e, 6)}))
	require.Equal(t, map[pos]int64{{2, 1}: 7, {2, 2}: 8}, Dump(t, e, c))

	// against zero when no threshold is bound
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{
		Code: engine.OpSelect, Output: c, Op: gt, Inputs: []engine.Handle{a}}))
	require.Len(t, Dump(t, e, c), 8)

	emptyScalar, _ := e.NewScalar(i64)
	require.Equal(t, engine.StatusEmptyObject, e.Invoke(engine.Call{
		Code: engine.OpSelect, Output: c, Op: gt, Inputs: []engine.Handle{a}, Scalar: emptyScalar}))
}

func TestInvoke_TransposeKroneckerApply(t *testing.T) {
	t.Parallel()
	e := newEngine()
	m := fixtureM(t, e)

	c := MustMatrix(t, e, 2, 2)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpTranspose, Output: c, Inputs: []engine.Handle{m}}))
	require.Equal(t, map[pos]int64{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4}, Dump(t, e, c))

	a := MustMatrix(t, e, 2, 2, tri{0, 0, 1}, tri{1, 1, 2})
	b := MustMatrix(t, e, 1, 2, tri{0, 0, 3}, tri{0, 1, 4})
	k := MustMatrix(t, e, 2, 4)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpKronecker, Output: k,
		Op: MustOp(t, e, binary("times", i64)), Inputs: []engine.Handle{a, b}}))
	require.Equal(t, map[pos]int64{{0, 0}: 3, {0, 1}: 4, {1, 2}: 6, {1, 3}: 8}, Dump(t, e, k))

	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpApplyBindSecond, Output: c,
		Op: MustOp(t, e, binary("times", i64)), Inputs: []engine.Handle{m}, Scalar: MustScalar(t, e, 10)}))
	require.Equal(t, map[pos]int64{{0, 0}: 10, {1, 0}: 20, {0, 1}: 30, {1, 1}: 40}, Dump(t, e, c))

	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpApplyBindFirst, Output: c,
		Op: MustOp(t, e, binary("minus", i64)), Inputs: []engine.Handle{m}, Scalar: MustScalar(t, e, 10)}))
	require.Equal(t, map[pos]int64{{0, 0}: 9, {1, 0}: 8, {0, 1}: 7, {1, 1}: 6}, Dump(t, e, c))

	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpApply, Output: c,
		Op: MustOp(t, e, engine.OperatorSpec{Class: engine.ClassUnary, Name: "ainv", Input1: i64, Output: i64}),
		Inputs: []engine.Handle{m}}))
	require.Equal(t, map[pos]int64{{0, 0}: -1, {1, 0}: -2, {0, 1}: -3, {1, 1}: -4}, Dump(t, e, c))

	// bound first, the input is operand two
	wide := MustMatrix(t, e, 1, 2, tri{0, 1, 3})
	tall := MustMatrix(t, e, 2, 1)
	minus := MustOp(t, e, binary("minus", i64))
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpApplyBindFirst, Output: tall,
		Op: minus, Inputs: []engine.Handle{wide}, Scalar: MustScalar(t, e, 10),
		Desc: MustDesc(t, e, engine.DescriptorSpec{TransposeSecond: true})}))
	require.Equal(t, map[pos]int64{{1, 0}: 7}, Dump(t, e, tall))
	require.Equal(t, engine.StatusDimensionMismatch, e.Invoke(engine.Call{Code: engine.OpApplyBindFirst, Output: tall,
		Op: minus, Inputs: []engine.Handle{wide}, Scalar: MustScalar(t, e, 10),
		Desc: MustDesc(t, e, engine.DescriptorSpec{TransposeFirst: true})}))
}

func TestInvoke_IntegerDivisionByZero(t *testing.T) {
	t.Parallel()
	e := newEngine()
	u := MustVector(t, e, 3, tri{0, 0, -5}, tri{1, 0, 0}, tri{2, 0, 7})
	w := MustVector(t, e, 3)
	require.Equal(t, engine.StatusSuccess, e.Invoke(engine.Call{Code: engine.OpApplyBindSecond, Output: w,
		Op: MustOp(t, e, binary("div", i64)), Inputs: []engine.Handle{u}, Scalar: MustScalar(t, e, 0)}))
	require.Equal(t, map[pos]int64{{0, 0}: math.MinInt64, {1, 0}: 0, {2, 0}: math.MaxInt64}, Dump(t, e, w))
}
