// Package repomanager wires repository implementations to a storage backend
// and owns schema migrations.
package repomanager

import (
	"context"

	"imagevault/internal/repositories/accesslogs"
	"imagevault/internal/repositories/uploads"
	"imagevault/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Uploads() uploads.Repository
	AccessLogs() accesslogs.Repository
	Close() error
}
