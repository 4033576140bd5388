package reactive

// Readable is the read side of a signal. Both WriteableSignal and
// ReadonlySignal satisfy it, so derived chains compose without caring which
// end they sit on.
type Readable[T any] interface {
	Value() T
}

// ReadonlySignal exposes only the read side of an underlying signal. Computed
// values are derived state; handing callers a writeable handle would invite
// overwrites the next recompute silently clobbers.
type ReadonlySignal[T any] struct {
	source *WriteableSignal[T]
}

// Value reads the current value, subscribing the active effect like any other
// signal read.
func (s *ReadonlySignal[T]) Value() T { return s.source.Value() }

// Computed derives a read-only signal from getter. An internal effect tracks
// whatever signals getter reads and writes the result back into the derived
// signal. Because SetValue always notifies, a recompute propagates even when
// the produced value is unchanged; there is no memoization by equality.
func Computed[T any](sys *System, getter func(oldValue T) T) *ReadonlySignal[T] {
	derived := Signal(sys, *new(T))
	first := true
	Effect(sys, func() {
		next := getter(derived.value)
		if first {
			// Establish the initial value without a notification storm;
			// nothing can be subscribed yet.
			first = false
			derived.Seed(next)
			return
		}
		derived.SetValue(next)
	})
	return &ReadonlySignal[T]{source: derived}
}
