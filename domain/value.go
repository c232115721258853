// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidValue reports a failed domain conversion: a kind mismatch on
// Decode, a negative index, or an index wider than the engine accepts.
var ErrInvalidValue = errors.New("domain: invalid value")

// Index is the engine's native index type.
type Index = uint64

// MaxIndex is the largest index (and dimension) the engine accepts.
const MaxIndex Index = 1 << 60

// ToIndex narrows a Go int into the engine index width.
func ToIndex(i int) (Index, error) {
	if i < 0 {
		return 0, errors.Wrapf(ErrInvalidValue, "index %d is negative", i)
	}
	if uint64(i) > MaxIndex {
		return 0, errors.Wrapf(ErrInvalidValue, "index %d exceeds %d", i, MaxIndex)
	}
	return Index(i), nil
}

// FromIndex widens an engine index back into a Go int.
func FromIndex(ix Index) (int, error) {
	if ix > MaxIndex || ix > math.MaxInt {
		return 0, errors.Wrapf(ErrInvalidValue, "index %d does not fit int", ix)
	}
	return int(ix), nil
}

// ToIndices narrows a slice of ints; the first failing element aborts.
func ToIndices(in []int) ([]Index, error) {
	out := make([]Index, len(in))
	for k, i := range in {
		ix, err := ToIndex(i)
		if err != nil {
			return nil, err
		}
		out[k] = ix
	}
	return out, nil
}

// Value is the engine's native scalar: a kind tag plus a 64-bit payload.
// Integers are stored sign-extended, floats as IEEE-754 bits, bool as 0/1.
// The zero Value has KindInvalid.
type Value struct {
	kind Kind
	bits uint64
}

// Kind returns the domain of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a domain.
func (v Value) IsValid() bool { return v.kind.Valid() }

// String formats v the way fmt would format the decoded Go value.
func (v Value) String() string {
	switch {
	case v.kind == KindBool:
		return fmt.Sprint(v.bits != 0)
	case v.kind.IsSigned():
		return fmt.Sprint(int64(v.bits))
	case v.kind.IsUnsigned():
		return fmt.Sprint(v.bits)
	case v.kind == KindFloat32:
		return fmt.Sprint(math.Float32frombits(uint32(v.bits)))
	case v.kind == KindFloat64:
		return fmt.Sprint(math.Float64frombits(v.bits))
	}
	return "<invalid>"
}

// Encode converts a Go value into the native representation.
func Encode[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case bool:
		if x {
			return Value{kind: KindBool, bits: 1}
		}
		return Value{kind: KindBool}
	case int8:
		return Value{kind: KindInt8, bits: uint64(int64(x))}
	case int16:
		return Value{kind: KindInt16, bits: uint64(int64(x))}
	case int32:
		return Value{kind: KindInt32, bits: uint64(int64(x))}
	case int64:
		return Value{kind: KindInt64, bits: uint64(x)}
	case uint8:
		return Value{kind: KindUint8, bits: uint64(x)}
	case uint16:
		return Value{kind: KindUint16, bits: uint64(x)}
	case uint32:
		return Value{kind: KindUint32, bits: uint64(x)}
	case uint64:
		return Value{kind: KindUint64, bits: x}
	case float32:
		return Value{kind: KindFloat32, bits: uint64(math.Float32bits(x))}
	case float64:
		return Value{kind: KindFloat64, bits: math.Float64bits(x)}
	}
	panic("domain: unreachable scalar type")
}

// Decode converts a native value back into T. The kinds must match exactly;
// use Cast first to convert between domains.
func Decode[T Scalar](v Value) (T, error) {
	var out T
	if want := KindOf[T](); v.kind != want {
		return out, errors.Wrapf(ErrInvalidValue, "cannot decode %s as %s", v.kind, want)
	}
	switch p := any(&out).(type) {
	case *bool:
		*p = v.bits != 0
	case *int8:
		*p = int8(int64(v.bits))
	case *int16:
		*p = int16(int64(v.bits))
	case *int32:
		*p = int32(int64(v.bits))
	case *int64:
		*p = int64(v.bits)
	case *uint8:
		*p = uint8(v.bits)
	case *uint16:
		*p = uint16(v.bits)
	case *uint32:
		*p = uint32(v.bits)
	case *uint64:
		*p = v.bits
	case *float32:
		*p = math.Float32frombits(uint32(v.bits))
	case *float64:
		*p = math.Float64frombits(v.bits)
	}
	return out, nil
}

// MustDecode is Decode for callers that already Cast v to T's kind.
// A mismatch is a programmer error.
func MustDecode[T Scalar](v Value) T {
	out, err := Decode[T](v)
	if err != nil {
		panic(err)
	}
	return out
}

// Truthy is the truth predicate on native values.
func (v Value) Truthy() bool {
	switch {
	case v.kind == KindFloat32:
		return math.Float32frombits(uint32(v.bits)) != 0
	case v.kind == KindFloat64:
		return math.Float64frombits(v.bits) != 0
	case v.kind.Valid():
		return v.bits != 0
	}
	return false
}

// Float64 returns v converted to float64.
func (v Value) Float64() float64 {
	switch {
	case v.kind == KindBool:
		if v.bits != 0 {
			return 1
		}
		return 0
	case v.kind.IsSigned():
		return float64(int64(v.bits))
	case v.kind.IsUnsigned():
		return float64(v.bits)
	case v.kind == KindFloat32:
		return float64(math.Float32frombits(uint32(v.bits)))
	case v.kind == KindFloat64:
		return math.Float64frombits(v.bits)
	}
	return 0
}

// Cast converts v into kind to with C semantics: integer narrowing wraps,
// float to integer truncates toward zero and saturates (NaN becomes 0), any
// nonzero value becomes true.
func (v Value) Cast(to Kind) Value {
	if v.kind == to || !to.Valid() || !v.kind.Valid() {
		return v
	}
	if to == KindBool {
		if v.Truthy() {
			return Value{kind: KindBool, bits: 1}
		}
		return Value{kind: KindBool}
	}
	if to.IsFloat() {
		f := v.Float64()
		if to == KindFloat32 {
			return Value{kind: to, bits: uint64(math.Float32bits(float32(f)))}
		}
		return Value{kind: to, bits: math.Float64bits(f)}
	}
	// integer target; bool and integers already hold a sign-extended payload
	if v.kind.IsFloat() {
		return Value{kind: to, bits: saturate(v.Float64(), to)}
	}
	return Value{kind: to, bits: wrap(v.bits, to)}
}

// wrap truncates an integer payload to the width of to and re-extends it.
func wrap(raw uint64, to Kind) uint64 {
	switch to {
	case KindInt8:
		return uint64(int64(int8(raw)))
	case KindInt16:
		return uint64(int64(int16(raw)))
	case KindInt32:
		return uint64(int64(int32(raw)))
	case KindUint8:
		return uint64(uint8(raw))
	case KindUint16:
		return uint64(uint16(raw))
	case KindUint32:
		return uint64(uint32(raw))
	}
	return raw
}

// saturate converts a float into the integer kind to, clamping to range.
func saturate(f float64, to Kind) uint64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	bits := to.Bits()
	if to.IsUnsigned() {
		if f <= 0 {
			return 0
		}
		if f >= math.Ldexp(1, bits) {
			return math.MaxUint64 >> (64 - bits)
		}
		return uint64(f)
	}
	limit := math.Ldexp(1, bits-1)
	switch {
	case f >= limit:
		return uint64(int64(1)<<(bits-1) - 1)
	case f <= -limit:
		return uint64(-(int64(1) << (bits - 1)))
	}
	return uint64(int64(f))
}
