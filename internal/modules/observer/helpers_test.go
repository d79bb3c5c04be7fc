package observer

import "sync"

// journal collects deliveries from several recorders in arrival order.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(entry string) {
	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

type recorder struct {
	name string
	j    *journal
}

func (r *recorder) Receive(event string) {
	r.j.add(r.name + ":" + event)
}

type panicker struct {
	value any
}

func (p *panicker) Receive(string) {
	panic(p.value)
}

// funcSubscriber has an uncomparable dynamic type.
type funcSubscriber func(string)

func (f funcSubscriber) Receive(event string) { f(event) }

// boxSubscriber has a comparable type whose values may not be comparable.
type boxSubscriber struct {
	payload any
}

func (boxSubscriber) Receive(string) {}
