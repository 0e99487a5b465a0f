package uploads

import (
	"context"
	"sync"
	"time"

	"imagevault/internal/common"
	"imagevault/internal/models"
)

// MemoryRepository keeps upload records in memory, in insertion order.
type MemoryRepository struct {
	mu     sync.RWMutex
	recs   []*models.Upload
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, up *models.Upload) (*models.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *up
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	// Non-nil copy, so an untagged upload serializes as [] like the
	// Postgres path.
	stored.Tags = append([]string{}, up.Tags...)
	r.nextID++

	r.recs = append(r.recs, &stored)

	return copyUpload(&stored), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.recs {
		if rec.ID == id {
			return copyUpload(rec), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Upload, 0, len(r.recs))
	for _, rec := range r.recs {
		result = append(result, copyUpload(rec))
	}
	return result, nil
}

// copyUpload detaches the record from the registry, tag slice included, so
// callers cannot mutate stored state.
func copyUpload(rec *models.Upload) *models.Upload {
	out := *rec
	out.Tags = append([]string{}, rec.Tags...)
	return &out
}
