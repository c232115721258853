// SPDX-License-Identifier: MIT

package memengine

import (
	"github.com/katalvlaran/graphblas/domain"
)

type (
	unaryFn  func(domain.Value) domain.Value
	binaryFn func(a, b domain.Value) domain.Value
	selectFn func(v domain.Value, row, col domain.Index, thunk domain.Value) bool
)

// kindTable holds every built-in operator over one domain.
type kindTable struct {
	kind     domain.Kind
	unary    map[string]unaryFn
	binary   map[string]binaryFn // K×K→K
	compare  map[string]binaryFn // K×K→bool
	identity map[string]domain.Value
	sel      map[string]selectFn
}

// builtins is the process-wide operator catalogue, one table per domain.
var builtins = map[domain.Kind]*kindTable{
	domain.KindBool:    boolTable(),
	domain.KindInt8:    numericTable[int8](),
	domain.KindInt16:   numericTable[int16](),
	domain.KindInt32:   numericTable[int32](),
	domain.KindInt64:   numericTable[int64](),
	domain.KindUint8:   numericTable[uint8](),
	domain.KindUint16:  numericTable[uint16](),
	domain.KindUint32:  numericTable[uint32](),
	domain.KindUint64:  numericTable[uint64](),
	domain.KindFloat32: numericTable[float32](),
	domain.KindFloat64: numericTable[float64](),
}

func lift1[T domain.Scalar](k domain.Kind, f func(T) T) unaryFn {
	return func(v domain.Value) domain.Value {
		return domain.Encode(f(domain.MustDecode[T](v.Cast(k))))
	}
}

func lift2[T domain.Scalar](k domain.Kind, f func(a, b T) T) binaryFn {
	return func(a, b domain.Value) domain.Value {
		return domain.Encode(f(domain.MustDecode[T](a.Cast(k)), domain.MustDecode[T](b.Cast(k))))
	}
}

func liftCmp[T domain.Scalar](k domain.Kind, f func(a, b T) bool) binaryFn {
	return func(a, b domain.Value) domain.Value {
		return domain.Encode(f(domain.MustDecode[T](a.Cast(k)), domain.MustDecode[T](b.Cast(k))))
	}
}

// selectAgainst turns a comparison into a value select operator: keep the
// entry when cmp(entry, thunk) holds.
func selectAgainst(cmp binaryFn) selectFn {
	return func(v domain.Value, _, _ domain.Index, thunk domain.Value) bool {
		return cmp(v, thunk).Truthy()
	}
}

// positional select operators compare the diagonal offset col-row with k.
var positional = map[string]func(offset, k int64) bool{
	"tril":    func(offset, k int64) bool { return offset <= k },
	"triu":    func(offset, k int64) bool { return offset >= k },
	"diag":    func(offset, k int64) bool { return offset == k },
	"offdiag": func(offset, k int64) bool { return offset != k },
}

func positionalSelect(keep func(offset, k int64) bool) selectFn {
	return func(_ domain.Value, row, col domain.Index, thunk domain.Value) bool {
		k := domain.MustDecode[int64](thunk.Cast(domain.KindInt64))
		return keep(int64(col)-int64(row), k)
	}
}

func addSelects(t *kindTable) {
	t.sel = make(map[string]selectFn, len(t.compare)+len(positional))
	for name, cmp := range t.compare {
		t.sel[name] = selectAgainst(cmp)
	}
	for name, keep := range positional {
		t.sel[name] = positionalSelect(keep)
	}
}

func numericTable[T domain.Number]() *kindTable {
	k := domain.KindOf[T]()
	isFloat := k.IsFloat()
	zero, one := domain.Zero[T](), domain.One[T]()
	maxV, minV := domain.MaxValue[T](), domain.MinValue[T]()

	// integer x/0 saturates; 0/0 is 0
	div := func(a, b T) T {
		if b == 0 && !isFloat {
			switch {
			case a == 0:
				return zero
			case a > 0:
				return maxV
			default:
				return minV
			}
		}
		return a / b
	}
	truth := func(x T) bool { return x != 0 }
	fromBool := func(b bool) T {
		if b {
			return one
		}
		return zero
	}
	// NaN loses against any number
	minOf := func(a, b T) T {
		if a != a || b < a {
			return b
		}
		return a
	}
	maxOf := func(a, b T) T {
		if a != a || b > a {
			return b
		}
		return a
	}

	t := &kindTable{kind: k}
	t.unary = map[string]unaryFn{
		"identity": lift1(k, func(x T) T { return x }),
		"ainv":     lift1(k, func(x T) T { return -x }),
		"minv":     lift1(k, func(x T) T { return div(one, x) }),
		"abs": lift1(k, func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}),
		"one":  lift1(k, func(T) T { return one }),
		"lnot": lift1(k, func(x T) T { return fromBool(!truth(x)) }),
	}
	t.binary = map[string]binaryFn{
		"first":  lift2(k, func(a, _ T) T { return a }),
		"second": lift2(k, func(_, b T) T { return b }),
		"any":    lift2(k, func(a, _ T) T { return a }),
		"pair":   lift2(k, func(_, _ T) T { return one }),
		"plus":   lift2(k, func(a, b T) T { return a + b }),
		"minus":  lift2(k, func(a, b T) T { return a - b }),
		"rminus": lift2(k, func(a, b T) T { return b - a }),
		"times":  lift2(k, func(a, b T) T { return a * b }),
		"div":    lift2(k, div),
		"rdiv":   lift2(k, func(a, b T) T { return div(b, a) }),
		"min":    lift2(k, minOf),
		"max":    lift2(k, maxOf),
		"lor":    lift2(k, func(a, b T) T { return fromBool(truth(a) || truth(b)) }),
		"land":   lift2(k, func(a, b T) T { return fromBool(truth(a) && truth(b)) }),
		"lxor":   lift2(k, func(a, b T) T { return fromBool(truth(a) != truth(b)) }),
	}
	t.compare = map[string]binaryFn{
		"eq": liftCmp(k, func(a, b T) bool { return a == b }),
		"ne": liftCmp(k, func(a, b T) bool { return a != b }),
		"gt": liftCmp(k, func(a, b T) bool { return a > b }),
		"ge": liftCmp(k, func(a, b T) bool { return a >= b }),
		"lt": liftCmp(k, func(a, b T) bool { return a < b }),
		"le": liftCmp(k, func(a, b T) bool { return a <= b }),
	}
	t.identity = map[string]domain.Value{
		"plus":  domain.Encode(zero),
		"times": domain.Encode(one),
		"min":   domain.Encode(maxV),
		"max":   domain.Encode(minV),
		"any":   domain.Encode(zero),
	}
	addSelects(t)
	return t
}

// boolTable follows the GraphBLAS boolean renames: PLUS is LOR, TIMES is
// LAND, MINUS is LXOR, DIV is FIRST.
func boolTable() *kindTable {
	k := domain.KindBool
	id := func(x bool) bool { return x }
	or := func(a, b bool) bool { return a || b }
	and := func(a, b bool) bool { return a && b }
	xor := func(a, b bool) bool { return a != b }
	first := func(a, _ bool) bool { return a }
	second := func(_, b bool) bool { return b }

	cmp := map[string]func(a, b bool) bool{
		"eq": func(a, b bool) bool { return a == b },
		"ne": xor,
		"gt": func(a, b bool) bool { return a && !b },
		"ge": func(a, b bool) bool { return a || !b },
		"lt": func(a, b bool) bool { return !a && b },
		"le": func(a, b bool) bool { return !a || b },
	}

	t := &kindTable{kind: k}
	t.unary = map[string]unaryFn{
		"identity": lift1(k, id),
		"ainv":     lift1(k, id),
		"minv":     lift1(k, id),
		"abs":      lift1(k, id),
		"one":      lift1(k, func(bool) bool { return true }),
		"lnot":     lift1(k, func(x bool) bool { return !x }),
	}
	t.binary = map[string]binaryFn{
		"first":  lift2(k, first),
		"second": lift2(k, second),
		"any":    lift2(k, first),
		"pair":   lift2(k, func(_, _ bool) bool { return true }),
		"plus":   lift2(k, or),
		"minus":  lift2(k, xor),
		"rminus": lift2(k, xor),
		"times":  lift2(k, and),
		"div":    lift2(k, first),
		"rdiv":   lift2(k, second),
		"min":    lift2(k, and),
		"max":    lift2(k, or),
		"lor":    lift2(k, or),
		"land":   lift2(k, and),
		"lxor":   lift2(k, xor),
	}
	t.compare = make(map[string]binaryFn, len(cmp))
	for name, f := range cmp {
		t.compare[name] = liftCmp(k, f)
		// over bool a comparison is also a K×K→K operator
		t.binary[name] = t.compare[name]
	}
	t.identity = map[string]domain.Value{
		"lor":  domain.Encode(false),
		"land": domain.Encode(true),
		"lxor": domain.Encode(false),
		"eq":   domain.Encode(true),
		"any":  domain.Encode(false),
	}
	addSelects(t)
	return t
}
