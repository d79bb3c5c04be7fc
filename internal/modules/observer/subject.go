package observer

import (
	"reflect"

	"github.com/pkg/errors"
)

type settings struct {
	policy FaultPolicy
}

type Option func(*settings)

// WithFaultIsolation keeps a broadcast going when a subscriber panics.
func WithFaultIsolation() Option {
	return func(s *settings) { s.policy = FaultIsolate }
}

// Subject owns a Registry and broadcasts events to it through a Dispatcher.
// The zero value of E is treated as the empty event and rejected by Notify.
type Subject[E comparable] struct {
	registry   *Registry[E]
	dispatcher Dispatcher[E]
}

func NewSubject[E comparable](opts ...Option) *Subject[E] {
	s := settings{policy: FaultPropagate}
	for _, opt := range opts {
		opt(&s)
	}
	return &Subject[E]{
		registry:   NewRegistry[E](),
		dispatcher: NewDispatcher[E](s.policy),
	}
}

func (s *Subject[E]) Subscribe(sub Subscriber[E]) error {
	if isNil(sub) {
		return errors.Wrap(ErrInvalidArgument, "subscribe: nil subscriber")
	}
	if !isComparable(sub) {
		return errors.Wrapf(ErrInvalidArgument, "subscribe: %T is not comparable", sub)
	}
	s.registry.Add(sub)
	return nil
}

func (s *Subject[E]) Unsubscribe(sub Subscriber[E]) {
	if isNil(sub) || !isComparable(sub) {
		return
	}
	s.registry.Remove(sub)
}

// Notify delivers event to a snapshot of the current subscribers, blocking
// until each one has been visited.
func (s *Subject[E]) Notify(event E) error {
	var zero E
	if event == zero {
		return errors.Wrap(ErrInvalidArgument, "notify: empty event")
	}
	if err := s.dispatcher.Dispatch(s.registry.Snapshot(), event); err != nil {
		return errors.Wrap(err, "notify")
	}
	return nil
}

func (s *Subject[E]) Len() int {
	return s.registry.Len()
}

func (s *Subject[E]) FaultPolicy() FaultPolicy {
	return s.dispatcher.Policy()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isComparable inspects the dynamic value: a struct type is comparable while an
// interface field inside it may still hold a func, map or slice.
func isComparable(v any) bool {
	return reflect.ValueOf(v).Comparable()
}
