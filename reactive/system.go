package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// System owns all scheduler state for one reactive root: the batching depth,
// the FIFO queue of effects waiting to run, the dedupe set that keeps an
// effect from being queued twice inside one notification pass, and the stack
// of currently executing effects used for dependency tracking. Nothing here
// is global; independent roots get independent Systems.
type System struct {
	batchDepth  int
	notifyDepth int

	pending []*runner
	queued  mapset.Set[*runner]

	stack []*runner

	deferred []func()
}

func NewSystem() *System {
	return &System{
		queued: mapset.NewThreadUnsafeSet[*runner](),
	}
}

func (sys *System) activeRunner() *runner {
	if len(sys.stack) == 0 {
		return nil
	}
	return sys.stack[len(sys.stack)-1]
}

// notify enqueues every subscriber of a changed signal, skipping subscribers
// already queued during this notification pass, then drains unless a batch or
// an outer drain is in progress.
func (sys *System) notify(subs *subscriberSet) {
	for _, r := range subs.snapshot() {
		if sys.queued.Contains(r) {
			continue
		}
		sys.queued.Add(r)
		sys.pending = append(sys.pending, r)
	}
	if sys.batchDepth == 0 && sys.notifyDepth == 0 {
		sys.drain()
	}
}

// drain runs queued effects in FIFO order until quiescence. Effects that
// enqueue further effects while running are picked up by the same loop. The
// dedupe set is cleared only once the outermost drain finishes, so an effect
// runs at most once per pass no matter how many of its signals were written.
func (sys *System) drain() {
	sys.notifyDepth++
	for len(sys.pending) > 0 {
		r := sys.pending[0]
		sys.pending = sys.pending[1:]
		r.run()
	}
	sys.notifyDepth--
	if sys.notifyDepth == 0 {
		sys.queued.Clear()
		sys.Flush()
	}
}

func (sys *System) StartBatch() {
	sys.batchDepth++
}

func (sys *System) EndBatch() {
	sys.batchDepth--
	if sys.batchDepth == 0 {
		sys.drain()
	}
}

// Batch defers effect execution until cb returns. Nested batches never drain
// early; only the outermost EndBatch flushes the queue.
func (sys *System) Batch(cb func()) {
	sys.StartBatch()
	defer sys.EndBatch()
	cb()
}

// Defer queues fn to run after the current notification pass completes, or on
// the next Flush when the system is idle. Mounted callbacks use this so they
// observe a fully connected node.
func (sys *System) Defer(fn func()) {
	sys.deferred = append(sys.deferred, fn)
}

// Flush runs all deferred callbacks, including any they queue themselves.
func (sys *System) Flush() {
	for len(sys.deferred) > 0 {
		fns := sys.deferred
		sys.deferred = nil
		for _, fn := range fns {
			fn()
		}
	}
}
