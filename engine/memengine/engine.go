// SPDX-License-Identifier: MIT

// Package memengine is a pure-Go reference implementation of engine.Engine.
//
// Storage is a dictionary of keys (coordinate → native value) per object.
// Every operation follows the GraphBLAS write contract:
//
//	T = op(inputs)                          (intermediate, op's output domain)
//	Z = accum ? accum(C, T) on C∪T : T      (inside the written region)
//	C<M> = Z where the mask allows, C elsewhere (cleared when replacing)
//
// Inputs, masks and bound scalars are snapshotted before computing and the
// output is committed under its write lock, so an output may alias any input.
// Row-oriented kernels (mxm, mxv, vxm, reduce) split rows across a bounded
// errgroup unless the descriptor asks for sequential execution.
//
// The engine is a test and reference collaborator: correct, deterministic
// for monoid reductions, and not tuned for large inputs.
package memengine

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/domain"
	"github.com/katalvlaran/graphblas/engine"
)

// DefaultWorkers == 0 means "use GOMAXPROCS".
const DefaultWorkers = 0

const panicWorkersNegative = "memengine: WithWorkers: workers must be >= 0"

// Option configures an Engine.
type Option func(*Options)

// Options holds the effective engine configuration.
type Options struct {
	logger  *zap.Logger
	workers int
}

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers bounds row-parallel kernels to n goroutines (0 = GOMAXPROCS).
// Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}
	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop(), workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Engine is the in-memory engine. The zero value is not usable; call New.
type Engine struct {
	logger  *zap.Logger
	workers int

	next atomic.Uint64

	mu      sync.RWMutex
	objects map[engine.Handle]*object
	lastErr map[engine.Handle]string

	regMu     sync.RWMutex
	operators []*operator
	opIndex   map[engine.OperatorSpec]engine.Operator
	descs     []engine.DescriptorSpec
	descIndex map[engine.DescriptorSpec]engine.Descriptor
}

var _ engine.Engine = (*Engine)(nil)

// New returns an empty engine.
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	return &Engine{
		logger:  o.logger,
		workers: o.workers,
		objects: make(map[engine.Handle]*object),
		lastErr: make(map[engine.Handle]string),
		// slot 0 is NullOperator / NullDescriptor
		operators: []*operator{nil},
		opIndex:   make(map[engine.OperatorSpec]engine.Operator),
		descs:     []engine.DescriptorSpec{{}},
		descIndex: map[engine.DescriptorSpec]engine.Descriptor{{}: engine.NullDescriptor},
	}
}

// Workers returns the effective parallelism bound.
func (e *Engine) Workers() int { return e.workers }

// Live returns the number of objects not yet freed.
func (e *Engine) Live() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.objects)
}

func (e *Engine) register(obj *object) engine.Handle {
	h := engine.Handle(e.next.Add(1))
	e.mu.Lock()
	e.objects[h] = obj
	e.mu.Unlock()
	return h
}

func (e *Engine) lookup(h engine.Handle) (*object, engine.Status) {
	if h == engine.NullHandle {
		return nil, engine.StatusNullPointer
	}
	e.mu.RLock()
	obj, ok := e.objects[h]
	e.mu.RUnlock()
	if !ok {
		return nil, engine.StatusUninitializedObject
	}
	return obj, engine.StatusSuccess
}

func validDims(rows, cols domain.Index) bool {
	return rows > 0 && cols > 0 && rows <= domain.MaxIndex && cols <= domain.MaxIndex
}

// NewMatrix allocates an empty matrix.
func (e *Engine) NewMatrix(kind domain.Kind, rows, cols domain.Index) (engine.Handle, engine.Status) {
	if !kind.Valid() {
		return engine.NullHandle, engine.StatusDomainMismatch
	}
	if !validDims(rows, cols) {
		return engine.NullHandle, engine.StatusInvalidValue
	}
	return e.register(newObject(objMatrix, kind, rows, cols)), engine.StatusSuccess
}

// NewVector allocates an empty vector.
func (e *Engine) NewVector(kind domain.Kind, n domain.Index) (engine.Handle, engine.Status) {
	if !kind.Valid() {
		return engine.NullHandle, engine.StatusDomainMismatch
	}
	if !validDims(n, 1) {
		return engine.NullHandle, engine.StatusInvalidValue
	}
	return e.register(newObject(objVector, kind, n, 1)), engine.StatusSuccess
}

// NewScalar allocates an empty scalar.
func (e *Engine) NewScalar(kind domain.Kind) (engine.Handle, engine.Status) {
	if !kind.Valid() {
		return engine.NullHandle, engine.StatusDomainMismatch
	}
	return e.register(newObject(objScalar, kind, 1, 1)), engine.StatusSuccess
}

// Duplicate deep-copies an object.
func (e *Engine) Duplicate(h engine.Handle) (engine.Handle, engine.Status) {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return engine.NullHandle, st
	}
	snap := obj.snapshot()
	dup := newObject(snap.class, snap.dom, snap.rows, snap.cols)
	dup.data = snap.data
	return e.register(dup), engine.StatusSuccess
}

// Free releases an object.
func (e *Engine) Free(h engine.Handle) engine.Status {
	if h == engine.NullHandle {
		return engine.StatusSuccess
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.objects[h]; !ok {
		return engine.StatusUninitializedObject
	}
	delete(e.objects, h)
	delete(e.lastErr, h)
	return engine.StatusSuccess
}

// Clear drops every stored entry.
func (e *Engine) Clear(h engine.Handle) engine.Status {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return st
	}
	obj.mu.Lock()
	obj.data = make(map[coord]domain.Value)
	obj.mu.Unlock()
	return engine.StatusSuccess
}

// Shape returns the extent of an object.
func (e *Engine) Shape(h engine.Handle) (domain.Index, domain.Index, engine.Status) {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return 0, 0, st
	}
	return obj.rows, obj.cols, engine.StatusSuccess
}

// Kind returns the domain of an object.
func (e *Engine) Kind(h engine.Handle) (domain.Kind, engine.Status) {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return domain.KindInvalid, st
	}
	return obj.dom, engine.StatusSuccess
}

// StoredCount returns the number of stored entries.
func (e *Engine) StoredCount(h engine.Handle) (domain.Index, engine.Status) {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return 0, st
	}
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return domain.Index(len(obj.data)), engine.StatusSuccess
}

// SetElement stores one value.
func (e *Engine) SetElement(h engine.Handle, row, col domain.Index, v domain.Value) engine.Status {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return st
	}
	if !v.IsValid() {
		return engine.StatusInvalidValue
	}
	if row >= obj.rows || col >= obj.cols {
		return engine.StatusInvalidIndex
	}
	obj.mu.Lock()
	obj.data[coord{row, col}] = v.Cast(obj.dom)
	obj.mu.Unlock()
	return engine.StatusSuccess
}

// Element reads one value.
func (e *Engine) Element(h engine.Handle, row, col domain.Index) (domain.Value, engine.Status) {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return domain.Value{}, st
	}
	if row >= obj.rows || col >= obj.cols {
		return domain.Value{}, engine.StatusInvalidIndex
	}
	obj.mu.RLock()
	v, ok := obj.data[coord{row, col}]
	obj.mu.RUnlock()
	if !ok {
		return domain.Value{}, engine.StatusNoValue
	}
	return v, engine.StatusSuccess
}

// RemoveElement deletes one value if present.
func (e *Engine) RemoveElement(h engine.Handle, row, col domain.Index) engine.Status {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return st
	}
	if row >= obj.rows || col >= obj.cols {
		return engine.StatusInvalidIndex
	}
	obj.mu.Lock()
	delete(obj.data, coord{row, col})
	obj.mu.Unlock()
	return engine.StatusSuccess
}

// Build loads tuples into an empty object, combining duplicates with dup in
// input order.
func (e *Engine) Build(h engine.Handle, rows, cols []domain.Index, vals []domain.Value, dup engine.Operator) engine.Status {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return st
	}
	if len(rows) != len(vals) || len(cols) != len(vals) {
		return engine.StatusInvalidValue
	}
	var combine *operator
	if dup != engine.NullOperator {
		if combine, st = e.operator(dup); st != engine.StatusSuccess {
			return st
		}
		if combine.binary == nil {
			return engine.StatusDomainMismatch
		}
	}

	obj.mu.Lock()
	defer obj.mu.Unlock()
	if len(obj.data) != 0 {
		return engine.StatusOutputNotEmpty
	}
	data := make(map[coord]domain.Value, len(vals))
	for k := range vals {
		if rows[k] >= obj.rows || cols[k] >= obj.cols {
			return engine.StatusIndexOutOfBounds
		}
		if !vals[k].IsValid() {
			return engine.StatusInvalidValue
		}
		p := coord{rows[k], cols[k]}
		v := vals[k].Cast(obj.dom)
		if prev, seen := data[p]; seen {
			if combine == nil {
				return engine.StatusInvalidValue
			}
			v = combine.binary(prev, v).Cast(obj.dom)
		}
		data[p] = v
	}
	obj.data = data
	return engine.StatusSuccess
}

// Tuples lists stored entries in row-major order.
func (e *Engine) Tuples(h engine.Handle) ([]domain.Index, []domain.Index, []domain.Value, engine.Status) {
	obj, st := e.lookup(h)
	if st != engine.StatusSuccess {
		return nil, nil, nil, st
	}
	snap := obj.snapshot()
	keys := snap.sortedKeys()
	rows := make([]domain.Index, len(keys))
	cols := make([]domain.Index, len(keys))
	vals := make([]domain.Value, len(keys))
	for k, p := range keys {
		rows[k], cols[k], vals[k] = p.r, p.c, snap.data[p]
	}
	return rows, cols, vals, engine.StatusSuccess
}

// Descriptor resolves (and caches) a descriptor.
func (e *Engine) Descriptor(spec engine.DescriptorSpec) (engine.Descriptor, engine.Status) {
	e.regMu.Lock()
	defer e.regMu.Unlock()
	if d, ok := e.descIndex[spec]; ok {
		return d, engine.StatusSuccess
	}
	d := engine.Descriptor(len(e.descs))
	e.descs = append(e.descs, spec)
	e.descIndex[spec] = d
	return d, engine.StatusSuccess
}

func (e *Engine) descriptor(d engine.Descriptor) (engine.DescriptorSpec, engine.Status) {
	e.regMu.RLock()
	defer e.regMu.RUnlock()
	if int(d) >= len(e.descs) {
		return engine.DescriptorSpec{}, engine.StatusUninitializedObject
	}
	return e.descs[d], engine.StatusSuccess
}

// ErrorMessage returns the message of the last failed Invoke on h.
func (e *Engine) ErrorMessage(h engine.Handle) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastErr[h]
}

func (e *Engine) setError(h engine.Handle, msg string) {
	if h == engine.NullHandle {
		return
	}
	e.mu.Lock()
	if _, ok := e.objects[h]; ok {
		if msg == "" {
			delete(e.lastErr, h)
		} else {
			e.lastErr[h] = msg
		}
	}
	e.mu.Unlock()
}
