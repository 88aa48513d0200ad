package types

import "errors"

// Error taxonomy shared by the store, the catalog service and the HTTP layer.
var (
	ErrNotFound     = errors.New("not found")
	ErrCorruptStore = errors.New("corrupt store")
	ErrPersistence  = errors.New("persistence failure")
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidQuery = errors.New("invalid query")
)

// Entity names a level of the hierarchy in error messages.
type Entity string

const (
	EntityDomain   Entity = "Domain"
	EntityCategory Entity = "Category"
	EntityQuestion Entity = "Question"
)

// NotFoundError reports the outermost path segment that did not resolve.
type NotFoundError struct {
	Entity Entity
}

func (e *NotFoundError) Error() string { return string(e.Entity) + " not found" }

// Is makes errors.Is(err, ErrNotFound) hold for every level.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound returns a NotFoundError for entity.
func NotFound(entity Entity) error { return &NotFoundError{Entity: entity} }
