// SPDX-License-Identifier: MIT

package memengine

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphblas/engine"
)

// exec is the resolved state of one Invoke.
type exec struct {
	call    engine.Call
	desc    engine.DescriptorSpec
	out     *object
	accum   *operator
	op      *operator
	in      []*view
	mask    *view
	scalar  *view
	workers int
}

// Invoke runs one operation. Panics inside kernels become StatusPanic.
func (e *Engine) Invoke(c engine.Call) (st engine.Status) {
	start := time.Now()
	msg := ""
	defer func() {
		if r := recover(); r != nil {
			st, msg = engine.StatusPanic, fmt.Sprint(r)
		}
		e.setError(c.Output, msg)
		if st.OK() {
			e.logger.Debug("memengine: invoke",
				zap.Stringer("op", c.Code),
				zap.Duration("duration", time.Since(start)))
			return
		}
		e.logger.Debug("memengine: invoke failed",
			zap.Stringer("op", c.Code),
			zap.Stringer("status", st),
			zap.String("message", msg))
	}()

	if f := e.invoke(c); f != nil {
		msg = f.msg
		return f.status
	}
	return engine.StatusSuccess
}

func (e *Engine) resolve(c engine.Call) (*exec, *failure) {
	x := &exec{call: c, workers: e.workers}
	var st engine.Status

	if x.desc, st = e.descriptor(c.Desc); st != engine.StatusSuccess {
		return nil, fail(st, "unknown descriptor %d", c.Desc)
	}
	if x.desc.Sequential {
		x.workers = 1
	}
	if x.out, st = e.lookup(c.Output); st != engine.StatusSuccess {
		return nil, fail(st, "output handle %d", c.Output)
	}
	if c.Accum != engine.NullOperator {
		if x.accum, st = e.operator(c.Accum); st != engine.StatusSuccess {
			return nil, fail(st, "accumulator %d", c.Accum)
		}
		if x.accum.binary == nil {
			return nil, fail(engine.StatusDomainMismatch, "accumulator %s is not a binary operator", x.accum.spec)
		}
	}
	if c.Op != engine.NullOperator {
		if x.op, st = e.operator(c.Op); st != engine.StatusSuccess {
			return nil, fail(st, "operator %d", c.Op)
		}
	}
	for _, h := range c.Inputs {
		obj, st := e.lookup(h)
		if st != engine.StatusSuccess {
			return nil, fail(st, "input handle %d", h)
		}
		x.in = append(x.in, obj.snapshot())
	}
	if c.Mask != engine.NullHandle {
		obj, st := e.lookup(c.Mask)
		if st != engine.StatusSuccess {
			return nil, fail(st, "mask handle %d", c.Mask)
		}
		x.mask = obj.snapshot()
	}
	if c.Scalar != engine.NullHandle {
		obj, st := e.lookup(c.Scalar)
		if st != engine.StatusSuccess {
			return nil, fail(st, "scalar handle %d", c.Scalar)
		}
		if obj.class != objScalar {
			return nil, fail(engine.StatusDomainMismatch, "bound scalar is a %s", obj.class)
		}
		x.scalar = obj.snapshot()
	}
	return x, nil
}

func (e *Engine) invoke(c engine.Call) *failure {
	x, f := e.resolve(c)
	if f != nil {
		return f
	}
	switch c.Code {
	case engine.OpEWiseAdd:
		return x.elementWise(false)
	case engine.OpEWiseMult:
		return x.elementWise(true)
	case engine.OpMxM:
		return x.mxm()
	case engine.OpMxV:
		return x.mxv()
	case engine.OpVxM:
		return x.vxm()
	case engine.OpExtract:
		return x.extract()
	case engine.OpExtractColumn:
		return x.extractColumn()
	case engine.OpAssign, engine.OpAssignScalar, engine.OpAssignRow, engine.OpAssignColumn,
		engine.OpSubAssign, engine.OpSubAssignScalar, engine.OpSubAssignRow, engine.OpSubAssignColumn:
		return x.assign()
	case engine.OpReduceToVector:
		return x.reduceToVector()
	case engine.OpReduceToScalar:
		return x.reduceToScalar()
	case engine.OpSelect:
		return x.selectEntries()
	case engine.OpTranspose:
		return x.transpose()
	case engine.OpKronecker:
		return x.kronecker()
	case engine.OpApply, engine.OpApplyBindFirst, engine.OpApplyBindSecond:
		return x.apply()
	}
	return fail(engine.StatusNotImplemented, "operation %s", c.Code)
}

// parallel runs fn(k) for k in [0, n), split into contiguous chunks across
// at most x.workers goroutines.
func (x *exec) parallel(n int, fn func(k int)) *failure {
	if x.workers <= 1 || n < 2 {
		for k := 0; k < n; k++ {
			fn(k)
		}
		return nil
	}
	chunk := (n + x.workers - 1) / x.workers
	var g errgroup.Group
	g.SetLimit(x.workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("kernel panic: %v", r)
				}
			}()
			for k := lo; k < hi; k++ {
				fn(k)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fail(engine.StatusPanic, "%v", err)
	}
	return nil
}
