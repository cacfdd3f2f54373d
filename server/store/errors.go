package store

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a record id is not present in the store.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when creating a record whose id already exists.
	ErrDuplicateKey = errors.New("record id already exists")
)

// FilterError wraps a fault raised by a caller supplied filter predicate.
type FilterError struct {
	Err error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter predicate failed: %v", e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// PersistenceError is returned when the durable file of an entity kind can
// not be read or written. A mutating call failing with it did not commit,
// neither durably nor in memory.
type PersistenceError struct {
	Kind string
	Op   string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s %s collection: %v", e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
