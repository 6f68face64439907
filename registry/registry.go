package registry

import (
	"sort"
	"sync"
)

// Registry maps names to factories of type T
// Safe for concurrent registration and lookup
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry
func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]T)}
}

// Register adds or replaces a factory by name
func (r *Registry[T]) Register(name string, factory T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = factory
}

// Get retrieves a factory by name
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.entries[name]
	return f, ok
}

// Names returns all registered names, sorted
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
