package syncmap

import (
	"sort"
	"sync"
)

// Map is a thread-safe generic map keyed by string.
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by key and reports whether it was present.
func (r *Map[T]) Get(key string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or replaces an item.
func (r *Map[T]) Set(key string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Keys returns all keys in ascending order.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// List returns all items ordered by key.
func (r *Map[T]) List() []T {
	keys := r.Keys()
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(keys))
	for _, k := range keys {
		if v, ok := r.m[k]; ok {
			ret = append(ret, v)
		}
	}
	return ret
}

// Len returns the number of items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}
