// SPDX-License-Identifier: MIT

// Package algebra provides typed handles for the built-in algebraic
// operators: unary and binary operators, monoids and semirings, plus the
// optional accumulator every operator family accepts.
//
// A handle is an immutable value naming one engine built-in. Its value
// domains are type parameters, and the constructors constrain them
// (domain.Number, domain.Scalar, bool), so an unsupported pairing such as
// PlusMonoid[bool] does not compile. Handles are resolved into engine
// operator handles once, when an operator family is constructed.
package algebra

import (
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// Built-in operator names shared with the engine.
const (
	nameIdentity = "identity"
	nameAinv     = "ainv"
	nameMinv     = "minv"
	nameAbs      = "abs"
	nameOne      = "one"
	nameLnot     = "lnot"

	nameFirst  = "first"
	nameSecond = "second"
	nameAny    = "any"
	namePair   = "pair"
	namePlus   = "plus"
	nameMinus  = "minus"
	nameRminus = "rminus"
	nameTimes  = "times"
	nameDiv    = "div"
	nameRdiv   = "rdiv"
	nameMin    = "min"
	nameMax    = "max"
	nameLor    = "lor"
	nameLand   = "land"
	nameLxor   = "lxor"
	nameEq     = "eq"
	nameNe     = "ne"
	nameGt     = "gt"
	nameGe     = "ge"
	nameLt     = "lt"
	nameLe     = "le"
)

// UnaryOperator maps A to Z.
type UnaryOperator[A, Z domain.Scalar] struct{ name string }

// Name returns the built-in name.
func (o UnaryOperator[A, Z]) Name() string { return o.name }

// Spec describes the operator to the engine.
func (o UnaryOperator[A, Z]) Spec() engine.OperatorSpec {
	return engine.OperatorSpec{
		Class:  engine.ClassUnary,
		Name:   o.name,
		Input1: domain.KindOf[A](),
		Output: domain.KindOf[Z](),
	}
}

// BinaryOperator maps (A, B) to Z.
type BinaryOperator[A, B, Z domain.Scalar] struct{ name string }

// Name returns the built-in name.
func (o BinaryOperator[A, B, Z]) Name() string { return o.name }

// Spec describes the operator to the engine.
func (o BinaryOperator[A, B, Z]) Spec() engine.OperatorSpec {
	return engine.OperatorSpec{
		Class:  engine.ClassBinary,
		Name:   o.name,
		Input1: domain.KindOf[A](),
		Input2: domain.KindOf[B](),
		Output: domain.KindOf[Z](),
	}
}

// Monoid is an associative, commutative BinaryOperator[T,T,T] with an
// identity element known to the engine.
type Monoid[T domain.Scalar] struct{ name string }

// Name returns the built-in name.
func (m Monoid[T]) Name() string { return m.name }

// Operator returns the monoid's binary operator.
func (m Monoid[T]) Operator() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{m.name} }

// Spec describes the monoid to the engine.
func (m Monoid[T]) Spec() engine.OperatorSpec {
	k := domain.KindOf[T]()
	return engine.OperatorSpec{Class: engine.ClassMonoid, Name: m.name, Input1: k, Input2: k, Output: k}
}

// Semiring pairs an additive Monoid[Z] with a multiplicative
// BinaryOperator[A,B,Z].
type Semiring[A, B, Z domain.Scalar] struct {
	add  Monoid[Z]
	mult BinaryOperator[A, B, Z]
}

// NewSemiring combines a built-in monoid and multiplicative operator.
func NewSemiring[A, B, Z domain.Scalar](add Monoid[Z], mult BinaryOperator[A, B, Z]) Semiring[A, B, Z] {
	return Semiring[A, B, Z]{add: add, mult: mult}
}

// Add returns the additive monoid.
func (s Semiring[A, B, Z]) Add() Monoid[Z] { return s.add }

// Multiply returns the multiplicative operator.
func (s Semiring[A, B, Z]) Multiply() BinaryOperator[A, B, Z] { return s.mult }

// Spec describes the semiring to the engine.
func (s Semiring[A, B, Z]) Spec() engine.OperatorSpec {
	return engine.OperatorSpec{
		Class:  engine.ClassSemiring,
		Name:   s.mult.name,
		Monoid: s.add.name,
		Input1: domain.KindOf[A](),
		Input2: domain.KindOf[B](),
		Output: domain.KindOf[Z](),
	}
}

// Accumulator is the optional operator that merges a fresh result into the
// existing content of the output. The zero value accumulates nothing.
type Accumulator[Z domain.Scalar] struct {
	op  BinaryOperator[Z, Z, Z]
	set bool
}

// NoAccumulator overwrites the output: written positions take the new value
// or become empty.
func NoAccumulator[Z domain.Scalar]() Accumulator[Z] { return Accumulator[Z]{} }

// Accumulate merges with op: output = op(output, new) where both exist.
func Accumulate[Z domain.Scalar](op BinaryOperator[Z, Z, Z]) Accumulator[Z] {
	return Accumulator[Z]{op: op, set: true}
}

// Operator returns the accumulating operator, if any.
func (a Accumulator[Z]) Operator() (BinaryOperator[Z, Z, Z], bool) { return a.op, a.set }
