package observer

import (
	"slices"
	"sync"
)

// Snapshot is a point-in-time copy of a Registry, in delivery order.
type Snapshot[E any] []Subscriber[E]

// Registry is the ordered list of subscribers owned by one Subject.
// Duplicates are allowed; insertion order is delivery order.
type Registry[E any] struct {
	mu   sync.Mutex
	subs []Subscriber[E]
}

func NewRegistry[E any]() *Registry[E] {
	return &Registry[E]{}
}

// Add appends s unconditionally.
func (r *Registry[E]) Add(s Subscriber[E]) {
	r.mu.Lock()
	r.subs = append(r.subs, s)
	r.mu.Unlock()
}

// Remove deletes the first entry equal to s. Absent subscribers are ignored.
func (r *Registry[E]) Remove(s Subscriber[E]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.subs {
		if v == s {
			r.subs = slices.Delete(r.subs, i, i+1)
			return
		}
	}
}

// Snapshot returns an independent copy of the current entries.
func (r *Registry[E]) Snapshot() Snapshot[E] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[E](slices.Clone(r.subs))
}

func (r *Registry[E]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
