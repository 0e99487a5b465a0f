// Package accesslogs stores the append-only access log.
package accesslogs

import (
	"context"

	"imagevault/internal/models"
)

type Repository interface {
	// Create appends a record for username with the current time.
	Create(ctx context.Context, username string) (*models.AccessLog, error)

	// Count returns the total number of records.
	Count(ctx context.Context) (int64, error)

	// UniqueUsernames returns the distinct usernames seen so far.
	UniqueUsernames(ctx context.Context) ([]string, error)

	// Last returns the most recent record, common.ErrNotFound if the log is
	// empty.
	Last(ctx context.Context) (*models.AccessLog, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*models.AccessLog, error)

	// Clear removes every record.
	Clear(ctx context.Context) error
}
