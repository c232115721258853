// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for operator families.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions, which applies context defaults before family options.
//
// Options are resolved once, when a family is constructed, into engine
// descriptors (one per mask interpretation) and never change afterwards.
package sparse

import "github.com/katalvlaran/graphblas/engine"

// Parallelism is a hint forwarded to the engine.
type Parallelism uint8

const (
	// ParallelismDefault lets the engine choose.
	ParallelismDefault Parallelism = iota
	// ParallelismSequential asks the engine to use one thread.
	ParallelismSequential
)

func (p Parallelism) String() string {
	switch p {
	case ParallelismDefault:
		return "default"
	case ParallelismSequential:
		return "sequential"
	}
	return "invalid"
}

// Defaults (single source of truth).
const (
	DefaultTransposeFirst  = false
	DefaultTransposeSecond = false
	DefaultReplace         = false
	DefaultParallelism     = ParallelismDefault
)

const panicParallelismInvalid = "sparse: WithParallelism: unknown parallelism hint"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective operator configuration. Fields are unexported;
// families consume ...Option and resolve them through gatherOptions.
type Options struct {
	transposeFirst  bool
	transposeSecond bool
	replace         bool // clear output positions the mask excludes
	parallelism     Parallelism
}

// WithTransposeFirstInput transposes the first matrix operand.
func WithTransposeFirstInput() Option {
	return func(o *Options) { o.transposeFirst = true }
}

// WithTransposeSecondInput transposes the second matrix operand.
func WithTransposeSecondInput() Option {
	return func(o *Options) { o.transposeSecond = true }
}

// WithReplace clears every output position the mask does not permit before
// the result is written.
func WithReplace() Option {
	return func(o *Options) { o.replace = true }
}

// WithParallelism sets the engine threading hint. Panics on an unknown hint.
func WithParallelism(p Parallelism) Option {
	if p != ParallelismDefault && p != ParallelismSequential {
		panic(panicParallelismInvalid)
	}
	return func(o *Options) { o.parallelism = p }
}

// TransposeFirst reports whether the first operand is transposed.
func (o Options) TransposeFirst() bool { return o.transposeFirst }

// TransposeSecond reports whether the second operand is transposed.
func (o Options) TransposeSecond() bool { return o.transposeSecond }

// Replace reports whether masked-out positions are cleared.
func (o Options) Replace() bool { return o.replace }

// Parallelism returns the threading hint.
func (o Options) Parallelism() Parallelism { return o.parallelism }

func gatherOptions(defaults []Option, opts ...Option) Options {
	o := Options{
		transposeFirst:  DefaultTransposeFirst,
		transposeSecond: DefaultTransposeSecond,
		replace:         DefaultReplace,
		parallelism:     DefaultParallelism,
	}
	for _, set := range [][]Option{defaults, opts} {
		for _, opt := range set {
			if opt != nil {
				opt(&o)
			}
		}
	}
	return o
}

// descriptorSpec renders the options for one mask interpretation.
func (o Options) descriptorSpec(structural, complement bool) engine.DescriptorSpec {
	return engine.DescriptorSpec{
		TransposeFirst:  o.transposeFirst,
		TransposeSecond: o.transposeSecond,
		Replace:         o.replace,
		StructuralMask:  structural,
		ComplementMask:  complement,
		Sequential:      o.parallelism == ParallelismSequential,
	}
}
