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

// Lookup returns the value stored under key and whether it was present.
func (r *Map[T]) Lookup(key string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Put stores value under key and reports whether key was new.
func (r *Map[T]) Put(key string, value T) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, exists := r.m[key]
	r.m[key] = value
	return !exists
}

// Delete removes key and reports whether it was present.
func (r *Map[T]) Delete(key string) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, exists := r.m[key]
	delete(r.m, key)
	return exists
}

// Len returns the number of entries.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns all keys in ascending order.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the values ordered by key.
func (r *Map[T]) Values() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ret := make([]T, len(keys))
	for i, k := range keys {
		ret[i] = r.m[k]
	}
	return ret
}
