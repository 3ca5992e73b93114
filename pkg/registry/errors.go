package registry

import "fmt"

// DuplicateFieldError reports a second registration of an already-taken
// (entity type, name) key.
type DuplicateFieldError struct {
	EntityType string
	Name       string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("registry: field %q already registered for entity type %q", e.Name, e.EntityType)
}

// UnknownFieldError reports a lookup of an unregistered (entity type, name)
// key.
type UnknownFieldError struct {
	EntityType string
	Name       string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("registry: field %q not registered for entity type %q", e.Name, e.EntityType)
}
