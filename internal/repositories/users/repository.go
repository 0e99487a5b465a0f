// Package users implements the user registry storage. Two implementations
// exist: PostgresRepository for production and MemoryRepository for tests
// and DSN-less development runs.
package users

import (
	"context"

	"imagevault/internal/models"
)

// Repository is the registry storage contract. All methods return
// common.ErrNotFound for unknown ids/emails and common.ErrConflict for
// duplicate emails; implementations close the check-then-insert race
// themselves (unique constraint or registry-wide lock).
type Repository interface {
	// Create persists a new record and assigns its ID and timestamps.
	Create(ctx context.Context, rec *models.UserRecord) (*models.UserRecord, error)

	// GetByID returns the record with the given id.
	GetByID(ctx context.Context, id int64) (*models.UserRecord, error)

	// GetByEmail returns the record with the given email, exact match.
	GetByEmail(ctx context.Context, email string) (*models.UserRecord, error)

	// Update applies mutate to the record under mutual exclusion with any
	// concurrent Update/Delete of the same id, refreshes UpdatedAt and
	// persists the result. An error from mutate aborts the update untouched.
	Update(ctx context.Context, id int64, mutate func(rec *models.UserRecord) error) (*models.UserRecord, error)

	// Delete removes and returns the record with the given id.
	Delete(ctx context.Context, id int64) (*models.UserRecord, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]*models.UserRecord, error)
}
