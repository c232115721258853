// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - One resolved state (dispatcher) shared by every operator family:
//     the engine handles of its operator and accumulator plus the four
//     descriptors a mask can ask for.
//   - One exit to the engine (call), so logging and error mapping live in
//     Context.invoke only.
//
// Complexity:
//   - newDispatcher is O(1): at most six engine object lookups, made once
//     per family. call is O(len(inputs)) before the engine runs.
//
// Determinism:
//   - A dispatcher is immutable after construction and may be shared
//     across goroutines; object locking is the engine's job.
//
// AI-Hints:
//   - Build a family once and reuse it in loops; construction is the only
//     place operator specs are resolved.
//   - The descriptor is picked per call from the mask, so one family
//     serves structural, value and complemented masks alike.

package sparse

import (
	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// dispatcher is the resolved state every operator family carries: the
// engine handles of its operator and accumulator, and one descriptor per
// mask interpretation. It is immutable after construction.
type dispatcher struct {
	ctx   *Context
	name  string
	op    engine.Operator
	accum engine.Operator
	opts  Options
	descs [2][2]engine.Descriptor // [structural][complement]
}

type specer interface{ Spec() engine.OperatorSpec }

// newDispatcher resolves op (nil for families without an operator), the
// accumulator and the option descriptors.
//
// Complexity: O(1).
//
// Errors: ErrNilContainer for a nil ctx, EngineError when the engine
// rejects a spec (StatusUninitializedObject for an operator it lacks).
func newDispatcher[Z domain.Scalar](
	ctx *Context, name string, op specer, accum algebra.Accumulator[Z], opts []Option,
) (dispatcher, error) {
	tag := "New" + name
	if ctx == nil {
		return dispatcher{}, sparseErrorf(tag, ErrNilContainer)
	}
	d := dispatcher{ctx: ctx, name: name, opts: ctx.options(opts)}

	if op != nil {
		h, st := ctx.eng.Operator(op.Spec())
		if err := ctx.check(tag, st); err != nil {
			return dispatcher{}, err
		}
		d.op = h
	}
	if acc, ok := accum.Operator(); ok {
		h, st := ctx.eng.Operator(acc.Spec())
		if err := ctx.check(tag, st); err != nil {
			return dispatcher{}, err
		}
		d.accum = h
	}
	for s := 0; s < 2; s++ {
		for c := 0; c < 2; c++ {
			h, st := ctx.eng.Descriptor(d.opts.descriptorSpec(s == 1, c == 1))
			if err := ctx.check(tag, st); err != nil {
				return dispatcher{}, err
			}
			d.descs[s][c] = h
		}
	}
	return d, nil
}

// Options returns the resolved options.
func (d *dispatcher) Options() Options { return d.opts }

// operands checks that every container is live and owned by the family's
// Context.
//
// Errors: ErrNilContainer, ErrReleased or ErrContextMismatch, tagged.
func (d *dispatcher) operands(tag string, hs ...holder) error {
	for _, h := range hs {
		if err := h.base().live(d.ctx); err != nil {
			return sparseErrorf(tag, err)
		}
	}
	return nil
}

// call assembles and runs one engine invocation.
//
// Errors: EngineError carrying the status and the engine's message.
func (d *dispatcher) call(tag string, code engine.OpCode, out holder, m maskRef, inputs []engine.Handle,
	scalar engine.Handle, rows, cols engine.Indices,
) error {
	return d.ctx.invoke(tag, engine.Call{
		Code:   code,
		Output: out.base().handle,
		Mask:   m.handle,
		Accum:  d.accum,
		Op:     d.op,
		Inputs: inputs,
		Scalar: scalar,
		Rows:   rows,
		Cols:   cols,
		Desc:   d.descs[b2i(m.structural)][b2i(m.complement)],
	})
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// handles collects engine handles.
func handles(hs ...holder) []engine.Handle {
	out := make([]engine.Handle, len(hs))
	for k, h := range hs {
		out[k] = h.base().handle
	}
	return out
}
