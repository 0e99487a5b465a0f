package repomanager

import (
	"context"

	"imagevault/internal/repositories/accesslogs"
	"imagevault/internal/repositories/uploads"
	"imagevault/internal/repositories/users"
)

// MemoryRepositoryManager vends in-memory repositories. Used by tests and
// when no database DSN is configured.
type MemoryRepositoryManager struct {
	users      *users.MemoryRepository
	uploads    *uploads.MemoryRepository
	accessLogs *accesslogs.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:      users.NewMemoryRepository(),
		uploads:    uploads.NewMemoryRepository(),
		accessLogs: accesslogs.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Uploads() uploads.Repository { return m.uploads }

func (m *MemoryRepositoryManager) AccessLogs() accesslogs.Repository { return m.accessLogs }

func (m *MemoryRepositoryManager) Close() error { return nil }
