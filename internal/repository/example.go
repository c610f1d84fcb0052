// Package repository contains data access abstractions for examples.
// Implementations live in subpackages (memory, postgres).
package repository

import (
	"context"
	"errors"

	"exampleapi/internal/model"
)

// ErrNotFound is returned by every implementation when no row matches an id.
var ErrNotFound = errors.New("record not found")

// ExampleRepository defines data access for examples.
// No business logic here, strictly persistence operations.
type ExampleRepository interface {
	// List returns every example in insertion order.
	List(ctx context.Context) ([]model.Example, error)

	// FindByID returns the example with the given id or ErrNotFound.
	FindByID(ctx context.Context, id int) (*model.Example, error)

	// Create stores a new example and assigns its id (highest existing id + 1,
	// or 0 for an empty store). The ID field of the argument is ignored.
	Create(ctx context.Context, e *model.Example) (*model.Example, error)

	// Update merges the non-nil fields of changes into the example with the
	// given id in one step, so concurrent updates never drop each other's
	// fields. Returns ErrNotFound when no example has that id.
	Update(ctx context.Context, id int, changes model.UpdateExampleDto) (*model.Example, error)

	// Delete removes the example with the given id or returns ErrNotFound.
	Delete(ctx context.Context, id int) error
}
