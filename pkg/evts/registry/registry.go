// Package registry provides a thread-safe name-to-value registry for
// events and compounds. The core package identifies events by direct
// reference; this registry is the optional by-name lookup surface for
// callers that wire events from configuration or hand them across package
// boundaries. It is not a topic matcher: names are exact.
package registry

import (
	"sort"
	"sync"
)

// Registry indexes values by name. It is safe for concurrent use and
// optimized for read-heavy lookups.
type Registry[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[string]V),
	}
}

// Register adds or replaces the value for name.
func (r *Registry[V]) Register(name string, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = value
}

// Get returns the value for name and whether it exists.
func (r *Registry[V]) Get(name string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

// MustGet returns the value for name, panicking if it is not registered.
func (r *Registry[V]) MustGet(name string) V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	if !ok {
		panic("registry: no entry named " + name)
	}
	return v
}

// Has reports whether name is registered.
func (r *Registry[V]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Deregister removes name. Removing an unknown name is a no-op.
func (r *Registry[V]) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names returns all registered names, sorted.
func (r *Registry[V]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered entries.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Range calls fn for each entry over a snapshot, so registering or
// deregistering from within fn is safe. Iteration stops when fn returns
// false.
func (r *Registry[V]) Range(fn func(name string, value V) bool) {
	r.mu.RLock()
	snapshot := make(map[string]V, len(r.entries))
	for name, v := range r.entries {
		snapshot[name] = v
	}
	r.mu.RUnlock()

	for name, v := range snapshot {
		if !fn(name, v) {
			return
		}
	}
}

// GetOrCreate returns the value for name, creating it with factory if
// absent. The factory runs at most once per name, even under concurrent
// access.
func (r *Registry[V]) GetOrCreate(name string, factory func() V) V {
	r.mu.RLock()
	v, ok := r.entries[name]
	r.mu.RUnlock()
	if ok {
		return v
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[name]; ok {
		return v
	}
	v = factory()
	r.entries[name] = v
	return v
}
