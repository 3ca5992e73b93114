// Package registry holds the catalog of field definitions keyed by entity
// type and field name. A registry is populated during process initialisation
// and read-only afterwards; handles are injected into containers rather than
// accessed through package globals, keeping tests isolated.
package registry

import (
	"sort"
	"sync"

	"github.com/goliatone/go-fieldbox/pkg/field"
)

type key struct {
	entityType string
	name       string
}

// Registry stores field definitions by (entity type, name), constructing each
// through its kind factory at registration time.
type Registry struct {
	mu      sync.RWMutex
	kinds   *field.KindSet
	catalog map[key]field.Definition
}

// Option customises registry construction.
type Option func(*Registry)

// WithKinds injects a kind set. Defaults to field.NewKinds().
func WithKinds(kinds *field.KindSet) Option {
	return func(r *Registry) {
		if kinds != nil {
			r.kinds = kinds
		}
	}
}

// New creates an empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		kinds:   field.NewKinds(),
		catalog: make(map[key]field.Definition),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Kinds exposes the registry's kind set so hosts can add custom kinds before
// registering fields against them.
func (r *Registry) Kinds() *field.KindSet {
	return r.kinds
}

// Register validates def, runs its kind factory, and stores the result.
// Duplicate keys fail with *DuplicateFieldError; unknown kinds and invalid
// definitions fail fast so a misconfigured field never silently vanishes.
func (r *Registry) Register(def field.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	built, err := r.kinds.Build(def)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{entityType: built.EntityType, name: built.Name}
	if _, exists := r.catalog[k]; exists {
		return &DuplicateFieldError{EntityType: built.EntityType, Name: built.Name}
	}
	r.catalog[k] = built
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def field.Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition stored under (entityType, name) or a
// *UnknownFieldError when absent.
func (r *Registry) Lookup(entityType, name string) (field.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.catalog[key{entityType: entityType, name: name}]
	if !ok {
		return field.Definition{}, &UnknownFieldError{EntityType: entityType, Name: name}
	}
	return def, nil
}

// Has reports whether a field is registered.
func (r *Registry) Has(entityType, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.catalog[key{entityType: entityType, name: name}]
	return ok
}

// Names returns the sorted field names registered for an entity type.
func (r *Registry) Names(entityType string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.catalog))
	for k := range r.catalog {
		if k.entityType == entityType {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered fields across all entity types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.catalog)
}
