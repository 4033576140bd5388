package reactive

import "slices"

// subscriberSet is the ordered set of effects subscribed to one signal.
// Order matters: notification is FIFO in first-subscription order.
type subscriberSet struct {
	runners []*runner
}

func (s *subscriberSet) add(r *runner) {
	if !slices.Contains(s.runners, r) {
		s.runners = append(s.runners, r)
	}
}

func (s *subscriberSet) remove(r *runner) {
	if i := slices.Index(s.runners, r); i != -1 {
		s.runners = slices.Delete(s.runners, i, i+1)
	}
}

// snapshot guards against mutation while the caller iterates.
func (s *subscriberSet) snapshot() []*runner {
	return slices.Clone(s.runners)
}

// WriteableSignal is a reactive cell. Reading it inside a running effect
// subscribes that effect; reading it anywhere else is a plain load. T is any,
// not comparable: SetValue always notifies, even when the new value equals
// the old one. Derived state therefore always propagates; callers that want
// equality cutoffs put them in their own effects.
type WriteableSignal[T any] struct {
	sys   *System
	value T
	subs  subscriberSet
}

func Signal[T any](sys *System, initialValue T) *WriteableSignal[T] {
	return &WriteableSignal[T]{
		sys:   sys,
		value: initialValue,
	}
}

func (s *WriteableSignal[T]) Value() T {
	if r := s.sys.activeRunner(); r != nil {
		s.subs.add(r)
		r.trackDep(&s.subs)
	}
	return s.value
}

func (s *WriteableSignal[T]) SetValue(v T) {
	s.value = v
	s.sys.notify(&s.subs)
}

func (s *WriteableSignal[T]) Update(fn func(old T) T) {
	s.SetValue(fn(s.value))
}

// Seed stores a value without notifying. Component controllers use it to
// apply constructor-supplied initial prop values before any effect exists.
func (s *WriteableSignal[T]) Seed(v T) {
	s.value = v
}
