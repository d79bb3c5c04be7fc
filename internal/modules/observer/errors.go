package observer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("observer: invalid argument")
	ErrDeliveryFault   = errors.New("observer: delivery fault")
)

// DeliveryError describes one subscriber whose Receive panicked while fault
// isolation was enabled.
type DeliveryError struct {
	Position   int
	Subscriber any
	Recovered  any
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("observer: delivery to subscriber #%d (%T) failed: %v", e.Position, e.Subscriber, e.Recovered)
}

// Unwrap exposes ErrDeliveryFault and, when the panic value was an error, that error too.
func (e *DeliveryError) Unwrap() []error {
	if err, ok := e.Recovered.(error); ok {
		return []error{ErrDeliveryFault, err}
	}
	return []error{ErrDeliveryFault}
}
