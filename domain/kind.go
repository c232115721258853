// SPDX-License-Identifier: MIT

package domain

import "math"

// Scalar is the closed set of value domains supported by the engine.
// Exact types only: named types would not map onto an engine kind.
type Scalar interface {
	bool | Number
}

// Number is every numeric domain.
type Number interface {
	Integer | Float
}

// Integer is every integral domain.
type Integer interface {
	Signed | Unsigned
}

// Signed is every signed integral domain.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is every unsigned integral domain.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Float is every floating-point domain.
type Float interface {
	float32 | float64
}

// Kind identifies a value domain at runtime.
type Kind uint8

// Supported kinds. KindInvalid is the zero value and never names a domain.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindBool,
		KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64,
	}
}

// String returns the Go name of the domain.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports whether k names one of the eleven domains.
func (k Kind) Valid() bool { return k > KindInvalid && k <= KindFloat64 }

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool { return k >= KindInt8 && k <= KindInt64 }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k >= KindUint8 && k <= KindUint64 }

// IsInteger reports whether k is an integer kind.
func (k Kind) IsInteger() bool { return k.IsSigned() || k.IsUnsigned() }

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// Bits returns the storage width of the kind in bits (1 for bool).
func (k Kind) Bits() int {
	switch k {
	case KindBool:
		return 1
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	default:
		return 0
	}
}

// KindOf returns the runtime kind of the domain T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
	panic("domain: unreachable scalar type")
}

// Zero returns the default value of T: false or 0.
func Zero[T Scalar]() T {
	var zero T
	return zero
}

// One returns the multiplicative unit of T (true for bool).
func One[T Scalar]() T {
	var one T
	switch p := any(&one).(type) {
	case *bool:
		*p = true
	case *int8:
		*p = 1
	case *int16:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint8:
		*p = 1
	case *uint16:
		*p = 1
	case *uint32:
		*p = 1
	case *uint64:
		*p = 1
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	}
	return one
}

// MaxValue returns the largest value of a numeric domain (+Inf for floats).
func MaxValue[T Number]() T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = float32(math.Inf(1))
	case *float64:
		*p = math.Inf(1)
	}
	return v
}

// MinValue returns the smallest value of a numeric domain (-Inf for floats).
func MinValue[T Number]() T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = float32(math.Inf(-1))
	case *float64:
		*p = math.Inf(-1)
	}
	// unsigned minimum is the zero value
	return v
}

// Truthy is the per-domain truth predicate used by value masks.
func Truthy[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case bool:
		return x
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}
	return false
}
