package cache

import (
	"context"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
)

const opTimeout = 1 * time.Second

type Manager[T any] struct {
	cache *cache.Cache[T]
}

func NewManager[T any](defaultExpiration, cleanupInterval time.Duration) *Manager[T] {
	client := gocache.New(defaultExpiration, cleanupInterval)
	return &Manager[T]{
		cache: cache.New[T](go_cache.NewGoCache(client)),
	}
}

func (m *Manager[T]) SetWithExpiration(key string, value T, expir time.Duration) error {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.cache.Set(timeout, key, value, store.WithExpiration(expir))
}

// Lookup reports found=false with a nil error when key is missing or expired.
func (m *Manager[T]) Lookup(key string) (value T, found bool, err error) {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	const errorMessage = "value not found"
	value, err = m.cache.Get(timeout, key)
	if err != nil {
		if strings.Contains(err.Error(), errorMessage) {
			err = nil
		}
		return
	}
	found = true
	return
}

func (m *Manager[T]) Delete(key string) error {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.cache.Delete(timeout, key)
}
