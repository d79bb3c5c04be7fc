package observer

import "go.uber.org/multierr"

type FaultPolicy int

const (
	// FaultPropagate lets a panic in Receive escape Dispatch; later
	// subscribers in the snapshot are not visited.
	FaultPropagate FaultPolicy = iota
	// FaultIsolate recovers each panic, keeps delivering and returns every
	// fault as a *DeliveryError combined with multierr.
	FaultIsolate
)

func (p FaultPolicy) String() string {
	switch p {
	case FaultPropagate:
		return "propagate"
	case FaultIsolate:
		return "isolate"
	default:
		return "unknown"
	}
}

// Dispatcher delivers one event to every subscriber of a snapshot, in order,
// on the calling goroutine.
type Dispatcher[E any] struct {
	policy FaultPolicy
}

func NewDispatcher[E any](policy FaultPolicy) Dispatcher[E] {
	return Dispatcher[E]{policy: policy}
}

func (d Dispatcher[E]) Policy() FaultPolicy {
	return d.policy
}

func (d Dispatcher[E]) Dispatch(snapshot Snapshot[E], event E) error {
	if d.policy != FaultIsolate {
		for _, s := range snapshot {
			s.Receive(event)
		}
		return nil
	}
	var errs error
	for i, s := range snapshot {
		errs = multierr.Append(errs, d.deliver(i, s, event))
	}
	return errs
}

func (d Dispatcher[E]) deliver(pos int, s Subscriber[E], event E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DeliveryError{Position: pos, Subscriber: s, Recovered: r}
		}
	}()
	s.Receive(event)
	return nil
}
