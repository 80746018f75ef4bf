package repositories

import (
	"context"

	"employee-records-api/internal/models"
)

// EmployeeRepository provides access to the employee record store.
// Implementations exist for DynamoDB, SQLite (local mode) and in-memory
// (tests). All implementations surface a missing record as an error
// satisfying errors.Is(err, ErrNotFound).
type EmployeeRepository interface {
	// List returns every employee record, following store pagination
	// until all pages are consumed. Order follows the store's scan
	// order and is not guaranteed stable across calls.
	List(ctx context.Context) ([]models.Employee, error)

	// Get performs a point lookup by ID.
	Get(ctx context.Context, id string) (models.Employee, error)

	// Put writes the full record, replacing any existing item with the
	// same ID.
	Put(ctx context.Context, employee models.Employee) error

	// SetAttribute sets a single attribute on an existing record and
	// returns the attribute's stored value as read back from the store.
	// Existence is NOT checked here; callers that need get-or-404
	// semantics perform their own Get first.
	SetAttribute(ctx context.Context, id, attribute string, value any) (any, error)

	// Delete removes the record with the given ID. Deleting an absent
	// ID is not an error at this layer.
	Delete(ctx context.Context, id string) error
}
