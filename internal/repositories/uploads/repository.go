// Package uploads stores the bookkeeping records for uploaded images.
package uploads

import (
	"context"

	"imagevault/internal/models"
)

type Repository interface {
	// Create persists a new upload record and assigns its ID and timestamps.
	Create(ctx context.Context, up *models.Upload) (*models.Upload, error)

	// GetByID returns one record, common.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.Upload, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]*models.Upload, error)
}
