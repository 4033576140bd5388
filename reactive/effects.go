package reactive

import "context"

// EffectComputation is either a plain effect body or one returning a cleanup
// function to run before the next execution and on dispose.
type EffectComputation interface {
	func() | func() func()
}

// runner is the shared execution unit behind Effect and Computed.
type runner struct {
	sys     *System
	fn      func() func()
	deps    []*subscriberSet
	cleanup func()

	executing bool
	disposed  bool
}

// run re-executes the effect body. Prior subscriptions are torn down first so
// the dependency set is exactly what the body reads this time around. A
// re-entrant call while already executing is a no-op, as is any call after
// dispose.
func (r *runner) run() {
	if r.disposed || r.executing {
		return
	}
	r.executing = true
	defer func() {
		r.executing = false
	}()

	r.detachAll()
	if r.cleanup != nil {
		c := r.cleanup
		r.cleanup = nil
		c()
	}

	sys := r.sys
	sys.stack = append(sys.stack, r)
	defer func() {
		sys.stack = sys.stack[:len(sys.stack)-1]
	}()

	r.cleanup = r.fn()
}

func (r *runner) trackDep(subs *subscriberSet) {
	for _, d := range r.deps {
		if d == subs {
			return
		}
	}
	r.deps = append(r.deps, subs)
}

func (r *runner) detachAll() {
	for _, subs := range r.deps {
		subs.remove(r)
	}
	r.deps = r.deps[:0]
}

func (r *runner) dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.detachAll()
	if r.cleanup != nil {
		c := r.cleanup
		r.cleanup = nil
		c()
	}
}

type effectConfig struct {
	ctx context.Context
}

type EffectOption func(*effectConfig)

// WithContext ties the effect's lifetime to ctx: if ctx is already done at
// creation the body never runs, and a later cancellation disposes the effect
// exactly once. Dispose is idempotent, so racing a manual dispose is safe.
func WithContext(ctx context.Context) EffectOption {
	return func(cfg *effectConfig) {
		cfg.ctx = ctx
	}
}

// Effect runs fn immediately to establish its initial dependencies, then
// re-runs it whenever a signal it read is written. The returned function
// disposes the effect; calling it more than once is harmless.
func Effect[T EffectComputation](sys *System, fn T, opts ...EffectOption) (dispose func()) {
	cfg := &effectConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var body func() func()
	switch fn := any(fn).(type) {
	case func():
		body = func() func() {
			fn()
			return nil
		}
	case func() func():
		body = fn
	}

	r := &runner{sys: sys, fn: body}

	if cfg.ctx != nil {
		if cfg.ctx.Err() != nil {
			r.disposed = true
			return r.dispose
		}
		context.AfterFunc(cfg.ctx, r.dispose)
	}

	r.run()
	return r.dispose
}
