// SPDX-License-Identifier: MIT

package memengine

import (
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// operator is a resolved built-in. Exactly the fields of its class are set.
type operator struct {
	spec     engine.OperatorSpec
	unary    unaryFn
	binary   binaryFn // binary operators and monoids
	identity domain.Value
	add      *operator // semiring additive monoid
	mult     *operator // semiring multiplicative operator
	sel      selectFn
}

// combiner returns the binary function an element-wise operation uses:
// the operator itself, or one half of a semiring.
func (o *operator) combiner(multiplicative bool) (binaryFn, domain.Kind) {
	switch o.spec.Class {
	case engine.ClassBinary, engine.ClassMonoid:
		return o.binary, o.spec.Output
	case engine.ClassSemiring:
		if multiplicative {
			return o.mult.binary, o.mult.spec.Output
		}
		return o.add.binary, o.add.spec.Output
	}
	return nil, domain.KindInvalid
}

// Operator resolves a built-in operator; equal specs share one handle.
func (e *Engine) Operator(spec engine.OperatorSpec) (engine.Operator, engine.Status) {
	e.regMu.RLock()
	h, ok := e.opIndex[spec]
	e.regMu.RUnlock()
	if ok {
		return h, engine.StatusSuccess
	}

	op, st := buildOperator(spec)
	if st != engine.StatusSuccess {
		return engine.NullOperator, st
	}

	e.regMu.Lock()
	defer e.regMu.Unlock()
	if h, ok = e.opIndex[spec]; ok {
		return h, engine.StatusSuccess
	}
	h = engine.Operator(len(e.operators))
	e.operators = append(e.operators, op)
	e.opIndex[spec] = h
	return h, engine.StatusSuccess
}

func (e *Engine) operator(h engine.Operator) (*operator, engine.Status) {
	if h == engine.NullOperator {
		return nil, engine.StatusNullPointer
	}
	e.regMu.RLock()
	defer e.regMu.RUnlock()
	if int(h) >= len(e.operators) {
		return nil, engine.StatusUninitializedObject
	}
	return e.operators[h], engine.StatusSuccess
}

func buildOperator(spec engine.OperatorSpec) (*operator, engine.Status) {
	switch spec.Class {
	case engine.ClassUnary:
		return buildUnary(spec)
	case engine.ClassBinary:
		return buildBinary(spec)
	case engine.ClassMonoid:
		return buildMonoid(spec.Name, spec.Output)
	case engine.ClassSemiring:
		add, st := buildMonoid(spec.Monoid, spec.Output)
		if st != engine.StatusSuccess {
			return nil, st
		}
		mult, st := buildBinary(engine.OperatorSpec{
			Class:  engine.ClassBinary,
			Name:   spec.Name,
			Input1: spec.Input1,
			Input2: spec.Input2,
			Output: spec.Output,
		})
		if st != engine.StatusSuccess {
			return nil, st
		}
		return &operator{spec: spec, add: add, mult: mult}, engine.StatusSuccess
	case engine.ClassSelect:
		t, ok := builtins[spec.Input1]
		if !ok {
			return nil, engine.StatusDomainMismatch
		}
		f, ok := t.sel[spec.Name]
		if !ok {
			return nil, engine.StatusInvalidValue
		}
		return &operator{spec: spec, sel: f}, engine.StatusSuccess
	}
	return nil, engine.StatusInvalidValue
}

// typecasting operators accept any input domain
var castingUnary = map[string]bool{"identity": true, "one": true}

func buildUnary(spec engine.OperatorSpec) (*operator, engine.Status) {
	t, ok := builtins[spec.Output]
	if !ok || !spec.Input1.Valid() {
		return nil, engine.StatusDomainMismatch
	}
	f, ok := t.unary[spec.Name]
	if !ok {
		return nil, engine.StatusInvalidValue
	}
	if spec.Input1 != spec.Output && !castingUnary[spec.Name] {
		return nil, engine.StatusDomainMismatch
	}
	return &operator{spec: spec, unary: f}, engine.StatusSuccess
}

func isComparison(name string) bool {
	switch name {
	case "eq", "ne", "gt", "ge", "lt", "le":
		return true
	}
	return false
}

func buildBinary(spec engine.OperatorSpec) (*operator, engine.Status) {
	if !spec.Input1.Valid() || !spec.Input2.Valid() || !spec.Output.Valid() {
		return nil, engine.StatusDomainMismatch
	}
	spec.Class = engine.ClassBinary

	switch {
	case spec.Name == "pair":
		// pair ignores its inputs, so any domains combine
		return &operator{spec: spec, binary: builtins[spec.Output].binary["pair"]}, engine.StatusSuccess
	case isComparison(spec.Name) && spec.Output == domain.KindBool:
		if spec.Input1 != spec.Input2 {
			return nil, engine.StatusDomainMismatch
		}
		return &operator{spec: spec, binary: builtins[spec.Input1].compare[spec.Name]}, engine.StatusSuccess
	}

	f, ok := builtins[spec.Output].binary[spec.Name]
	if !ok {
		return nil, engine.StatusInvalidValue
	}
	if spec.Input1 != spec.Output || spec.Input2 != spec.Output {
		return nil, engine.StatusDomainMismatch
	}
	return &operator{spec: spec, binary: f}, engine.StatusSuccess
}

func buildMonoid(name string, kind domain.Kind) (*operator, engine.Status) {
	t, ok := builtins[kind]
	if !ok {
		return nil, engine.StatusDomainMismatch
	}
	id, ok := t.identity[name]
	if !ok {
		if _, known := t.binary[name]; known {
			return nil, engine.StatusDomainMismatch
		}
		return nil, engine.StatusInvalidValue
	}
	spec := engine.OperatorSpec{Class: engine.ClassMonoid, Name: name, Input1: kind, Input2: kind, Output: kind}
	return &operator{spec: spec, binary: t.binary[name], identity: id}, engine.StatusSuccess
}
