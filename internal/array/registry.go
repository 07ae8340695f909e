package array

import (
	"fmt"
	"sort"
)

// Registry maps implementation names to registered implementations.
// It is an explicit object: construct one at process start and pass it to
// whatever needs to resolve a backend by name. There is no package-level
// registry and no init-time registration.
type Registry struct {
	impls map[string]Implementation
}

// NewEmptyRegistry creates a registry with nothing registered.
func NewEmptyRegistry() *Registry {
	return &Registry{
		impls: make(map[string]Implementation),
	}
}

// Register adds an implementation under its own name, replacing any
// previous registration with the same name.
func (r *Registry) Register(impl Implementation) {
	r.impls[impl.Name()] = impl
}

// Get returns the implementation registered under name.
func (r *Registry) Get(name string) (Implementation, bool) {
	impl, ok := r.impls[name]
	return impl, ok
}

// Resolve returns the implementation registered under name, or an error
// wrapping ErrUnknownImplementation.
func (r *Registry) Resolve(name string) (Implementation, error) {
	impl, ok := r.impls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, name)
	}
	return impl, nil
}

// Names returns the sorted names of all registered implementations.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.impls))
	for name := range r.impls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
