// SPDX-License-Identifier: MIT

package algebra

import "github.com/katalvlaran/graphblas/domain"

// ---------- unary ----------

// Identity returns its input.
func Identity[T domain.Scalar]() UnaryOperator[T, T] { return UnaryOperator[T, T]{nameIdentity} }

// Convert returns its input cast from A to Z.
func Convert[A, Z domain.Scalar]() UnaryOperator[A, Z] { return UnaryOperator[A, Z]{nameIdentity} }

// AdditiveInverse returns -x.
func AdditiveInverse[T domain.Number]() UnaryOperator[T, T] { return UnaryOperator[T, T]{nameAinv} }

// MultiplicativeInverse returns 1/x (integer division rules apply).
func MultiplicativeInverse[T domain.Number]() UnaryOperator[T, T] {
	return UnaryOperator[T, T]{nameMinv}
}

// AbsoluteValue returns |x|.
func AbsoluteValue[T domain.Number]() UnaryOperator[T, T] { return UnaryOperator[T, T]{nameAbs} }

// One returns 1 (true) for every stored entry.
func One[T domain.Scalar]() UnaryOperator[T, T] { return UnaryOperator[T, T]{nameOne} }

// LogicalNot returns !x.
func LogicalNot() UnaryOperator[bool, bool] { return UnaryOperator[bool, bool]{nameLnot} }

// ---------- binary ----------

// First returns x.
func First[T domain.Scalar]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameFirst} }

// Second returns y.
func Second[T domain.Scalar]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameSecond} }

// Any returns either operand.
func Any[T domain.Scalar]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameAny} }

// Pair returns 1 (true) regardless of its operands.
func Pair[T domain.Scalar]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{namePair} }

// Plus returns x+y.
func Plus[T domain.Number]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{namePlus} }

// Minus returns x-y.
func Minus[T domain.Number]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameMinus} }

// ReverseMinus returns y-x.
func ReverseMinus[T domain.Number]() BinaryOperator[T, T, T] {
	return BinaryOperator[T, T, T]{nameRminus}
}

// Times returns x*y.
func Times[T domain.Number]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameTimes} }

// Divide returns x/y. Integer x/0 saturates to the domain bound (0/0 is 0).
func Divide[T domain.Number]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameDiv} }

// ReverseDivide returns y/x.
func ReverseDivide[T domain.Number]() BinaryOperator[T, T, T] {
	return BinaryOperator[T, T, T]{nameRdiv}
}

// Min returns the smaller operand.
func Min[T domain.Number]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameMin} }

// Max returns the larger operand.
func Max[T domain.Number]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameMax} }

// LogicalOr returns x||y over truth values.
func LogicalOr[T domain.Scalar]() BinaryOperator[T, T, T] { return BinaryOperator[T, T, T]{nameLor} }

// LogicalAnd returns x&&y over truth values.
func LogicalAnd[T domain.Scalar]() BinaryOperator[T, T, T] {
	return BinaryOperator[T, T, T]{nameLand}
}

// LogicalExclusiveOr returns x!=y over truth values.
func LogicalExclusiveOr[T domain.Scalar]() BinaryOperator[T, T, T] {
	return BinaryOperator[T, T, T]{nameLxor}
}

// Equal returns x==y.
func Equal[T domain.Scalar]() BinaryOperator[T, T, bool] { return BinaryOperator[T, T, bool]{nameEq} }

// NotEqual returns x!=y.
func NotEqual[T domain.Scalar]() BinaryOperator[T, T, bool] {
	return BinaryOperator[T, T, bool]{nameNe}
}

// GreaterThan returns x>y.
func GreaterThan[T domain.Scalar]() BinaryOperator[T, T, bool] {
	return BinaryOperator[T, T, bool]{nameGt}
}

// GreaterThanOrEqual returns x>=y.
func GreaterThanOrEqual[T domain.Scalar]() BinaryOperator[T, T, bool] {
	return BinaryOperator[T, T, bool]{nameGe}
}

// LessThan returns x<y.
func LessThan[T domain.Scalar]() BinaryOperator[T, T, bool] {
	return BinaryOperator[T, T, bool]{nameLt}
}

// LessThanOrEqual returns x<=y.
func LessThanOrEqual[T domain.Scalar]() BinaryOperator[T, T, bool] {
	return BinaryOperator[T, T, bool]{nameLe}
}

// ---------- monoids ----------

// PlusMonoid has identity 0.
func PlusMonoid[T domain.Number]() Monoid[T] { return Monoid[T]{namePlus} }

// TimesMonoid has identity 1.
func TimesMonoid[T domain.Number]() Monoid[T] { return Monoid[T]{nameTimes} }

// MinMonoid has the domain maximum (+Inf) as identity.
func MinMonoid[T domain.Number]() Monoid[T] { return Monoid[T]{nameMin} }

// MaxMonoid has the domain minimum (-Inf) as identity.
func MaxMonoid[T domain.Number]() Monoid[T] { return Monoid[T]{nameMax} }

// AnyMonoid keeps any one of its operands.
func AnyMonoid[T domain.Scalar]() Monoid[T] { return Monoid[T]{nameAny} }

// LogicalOrMonoid has identity false.
func LogicalOrMonoid() Monoid[bool] { return Monoid[bool]{nameLor} }

// LogicalAndMonoid has identity true.
func LogicalAndMonoid() Monoid[bool] { return Monoid[bool]{nameLand} }

// LogicalExclusiveOrMonoid has identity false.
func LogicalExclusiveOrMonoid() Monoid[bool] { return Monoid[bool]{nameLxor} }

// EqualMonoid (LXNOR) has identity true.
func EqualMonoid() Monoid[bool] { return Monoid[bool]{nameEq} }

// ---------- semirings ----------

// PlusTimes is conventional arithmetic.
func PlusTimes[T domain.Number]() Semiring[T, T, T] {
	return NewSemiring(PlusMonoid[T](), Times[T]())
}

// MinPlus is the tropical semiring (shortest paths).
func MinPlus[T domain.Number]() Semiring[T, T, T] { return NewSemiring(MinMonoid[T](), Plus[T]()) }

// MaxPlus is the max-plus semiring (longest/critical paths).
func MaxPlus[T domain.Number]() Semiring[T, T, T] { return NewSemiring(MaxMonoid[T](), Plus[T]()) }

// MinTimes uses min as addition.
func MinTimes[T domain.Number]() Semiring[T, T, T] {
	return NewSemiring(MinMonoid[T](), Times[T]())
}

// MaxTimes uses max as addition.
func MaxTimes[T domain.Number]() Semiring[T, T, T] {
	return NewSemiring(MaxMonoid[T](), Times[T]())
}

// MinMax uses min as addition and max as multiplication.
func MinMax[T domain.Number]() Semiring[T, T, T] { return NewSemiring(MinMonoid[T](), Max[T]()) }

// MaxMin is the bottleneck (widest path) semiring.
func MaxMin[T domain.Number]() Semiring[T, T, T] { return NewSemiring(MaxMonoid[T](), Min[T]()) }

// PlusMin uses plus as addition and min as multiplication.
func PlusMin[T domain.Number]() Semiring[T, T, T] { return NewSemiring(PlusMonoid[T](), Min[T]()) }

// AnyPair is the structural semiring used for reachability.
func AnyPair[T domain.Scalar]() Semiring[T, T, T] { return NewSemiring(AnyMonoid[T](), Pair[T]()) }

// PlusPair counts structural matches, e.g. paths of length two.
func PlusPair[A, B domain.Scalar, Z domain.Number]() Semiring[A, B, Z] {
	return NewSemiring(PlusMonoid[Z](), BinaryOperator[A, B, Z]{namePair})
}

// LogicalOrAnd is the boolean semiring.
func LogicalOrAnd() Semiring[bool, bool, bool] {
	return NewSemiring(LogicalOrMonoid(), LogicalAnd[bool]())
}
