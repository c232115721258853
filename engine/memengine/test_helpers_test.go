// SPDX-License-Identifier: MIT
// Package memengine_test contains test helpers.
//
// Purpose:
//   - Build small int64 fixtures through the public engine surface.
//   - Dump objects back into plain maps for table comparisons.

package memengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
	"github.com/katalvlaran/graphblas/engine/memengine"
)

type pos struct{ r, c domain.Index }

type tri struct {
	r, c domain.Index
	v    int64
}

func newEngine() *memengine.Engine { return memengine.New(memengine.WithWorkers(4)) }

// MustMatrix builds an int64 matrix from triples.
func MustMatrix(t *testing.T, e engine.Engine, rows, cols domain.Index, ts ...tri) engine.Handle {
	t.Helper()
	h, st := e.NewMatrix(domain.KindInt64, rows, cols)
	require.Equal(t, engine.StatusSuccess, st)
	load(t, e, h, ts)
	return h
}

// MustVector builds an int64 vector; triples use c = 0.
func MustVector(t *testing.T, e engine.Engine, n domain.Index, ts ...tri) engine.Handle {
	t.Helper()
	h, st := e.NewVector(domain.KindInt64, n)
	require.Equal(t, engine.StatusSuccess, st)
	load(t, e, h, ts)
	return h
}

// MustScalar builds an int64 scalar holding v.
func MustScalar(t *testing.T, e engine.Engine, v int64) engine.Handle {
	t.Helper()
	h, st := e.NewScalar(domain.KindInt64)
	require.Equal(t, engine.StatusSuccess, st)
	require.Equal(t, engine.StatusSuccess, e.SetElement(h, 0, 0, domain.Encode(v)))
	return h
}

func load(t *testing.T, e engine.Engine, h engine.Handle, ts []tri) {
	t.Helper()
	rows := make([]domain.Index, len(ts))
	cols := make([]domain.Index, len(ts))
	vals := make([]domain.Value, len(ts))
	for k, x := range ts {
		rows[k], cols[k], vals[k] = x.r, x.c, domain.Encode(x.v)
	}
	require.Equal(t, engine.StatusSuccess, e.Build(h, rows, cols, vals, engine.NullOperator))
}

// Dump reads every stored entry as int64.
func Dump(t *testing.T, e engine.Engine, h engine.Handle) map[pos]int64 {
	t.Helper()
	rows, cols, vals, st := e.Tuples(h)
	require.Equal(t, engine.StatusSuccess, st)
	out := make(map[pos]int64, len(vals))
	for k := range vals {
		out[pos{rows[k], cols[k]}] = domain.MustDecode[int64](vals[k].Cast(domain.KindInt64))
	}
	return out
}

// MustOp resolves an operator or fails the test.
func MustOp(t *testing.T, e engine.Engine, spec engine.OperatorSpec) engine.Operator {
	t.Helper()
	op, st := e.Operator(spec)
	require.Equal(t, engine.StatusSuccess, st, "operator %s", spec)
	return op
}

// MustDesc resolves a descriptor or fails the test.
func MustDesc(t *testing.T, e engine.Engine, spec engine.DescriptorSpec) engine.Descriptor {
	t.Helper()
	d, st := e.Descriptor(spec)
	require.Equal(t, engine.StatusSuccess, st)
	return d
}

func binary(name string, k domain.Kind) engine.OperatorSpec {
	return engine.OperatorSpec{Class: engine.ClassBinary, Name: name, Input1: k, Input2: k, Output: k}
}

func monoid(name string, k domain.Kind) engine.OperatorSpec {
	return engine.OperatorSpec{Class: engine.ClassMonoid, Name: name, Input1: k, Input2: k, Output: k}
}

func semiring(add, mult string, k domain.Kind) engine.OperatorSpec {
	return engine.OperatorSpec{Class: engine.ClassSemiring, Monoid: add, Name: mult, Input1: k, Input2: k, Output: k}
}

// fixtures from the 2×2 scenario: M = [1 3; 2 4], N = [5 7; 6 8]
func fixtureM(t *testing.T, e engine.Engine) engine.Handle {
	return MustMatrix(t, e, 2, 2, tri{0, 0, 1}, tri{1, 0, 2}, tri{0, 1, 3}, tri{1, 1, 4})
}

func fixtureN(t *testing.T, e engine.Engine) engine.Handle {
	return MustMatrix(t, e, 2, 2, tri{0, 0, 5}, tri{1, 0, 6}, tri{0, 1, 7}, tri{1, 1, 8})
}
