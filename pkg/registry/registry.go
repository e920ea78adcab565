package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/seyale/rectuple/pkg/record"
)

// Registry manages named record types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*record.Type
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]*record.Type),
	}
}

// Register adds a type under its own name.
// Returns an error if a type with the same name is already registered.
func (r *Registry) Register(t *record.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("type already registered: %s", name)
	}
	r.types[name] = t
	return nil
}

// Lookup returns the type registered under name.
// Returns an error if the type is not found.
func (r *Registry) Lookup(name string) (*record.Type, error) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("type not found: %s", name)
	}
	return t, nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}
