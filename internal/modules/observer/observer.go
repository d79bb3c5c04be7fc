package observer

// Subscriber receives events broadcast by a Subject.
// Implementations must be comparable: Unsubscribe matches entries with ==,
// so pointer receivers are the usual choice.
type Subscriber[E any] interface {
	Receive(event E)
}
