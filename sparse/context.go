// SPDX-License-Identifier: MIT

package sparse

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/engine"
)

// Context binds containers and operator families to one engine.
// Every container records the Context that created it; operands of one
// operation must share it. A Context is safe for concurrent use.
type Context struct {
	eng      engine.Engine
	logger   *zap.Logger
	id       uuid.UUID
	defaults []Option
}

// ContextOption configures a Context.
type ContextOption func(*contextConfig)

type contextConfig struct {
	logger   *zap.Logger
	defaults []Option
}

// WithLogger sets the logger for engine calls. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) ContextOption {
	return func(c *contextConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultOptions sets options applied to every family built on the
// Context, before the family's own options.
func WithDefaultOptions(opts ...Option) ContextOption {
	return func(c *contextConfig) { c.defaults = append(c.defaults, opts...) }
}

// NewContext wraps eng.
func NewContext(eng engine.Engine, opts ...ContextOption) (*Context, error) {
	if eng == nil {
		return nil, sparseErrorf("NewContext", ErrNilEngine)
	}
	cfg := contextConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	id := uuid.New()
	return &Context{
		eng:      eng,
		logger:   cfg.logger.With(zap.String("context_id", id.String())),
		id:       id,
		defaults: cfg.defaults,
	}, nil
}

// ID identifies the Context in logs.
func (c *Context) ID() uuid.UUID { return c.id }

// Engine returns the underlying engine.
func (c *Context) Engine() engine.Engine { return c.eng }

// Logger returns the Context logger.
func (c *Context) Logger() *zap.Logger { return c.logger }

// options resolves family options on top of the Context defaults.
func (c *Context) options(opts []Option) Options { return gatherOptions(c.defaults, opts...) }

// invoke runs one engine call and turns a failure status into *EngineError.
func (c *Context) invoke(operation string, call engine.Call) error {
	start := time.Now()
	st := c.eng.Invoke(call)
	elapsed := time.Since(start)

	if st.OK() {
		c.logger.Debug("engine call",
			zap.String("operation", operation),
			zap.Stringer("code", call.Code),
			zap.Stringer("status", st),
			zap.Duration("duration", elapsed))
		return nil
	}
	msg := c.eng.ErrorMessage(call.Output)
	c.logger.Warn("engine call failed",
		zap.String("operation", operation),
		zap.Stringer("code", call.Code),
		zap.Stringer("status", st),
		zap.String("message", msg),
		zap.Duration("duration", elapsed))
	return errors.WithStack(&EngineError{Operation: operation, Status: st, Message: msg})
}

// check converts the status of a non-invoke engine call.
func (c *Context) check(operation string, st engine.Status) error {
	if st.OK() {
		return nil
	}
	c.logger.Warn("engine call failed", zap.String("operation", operation), zap.Stringer("status", st))
	return errors.WithStack(&EngineError{Operation: operation, Status: st})
}
