package users

import (
	"context"
	"sync"
	"time"

	"imagevault/internal/common"
	"imagevault/internal/models"
)

// MemoryRepository keeps user records in memory, in insertion order. A
// registry-wide mutex serializes all mutations, so the uniqueness re-check
// and the insert happen as one unit. IDs count up and are never reused
// after a removal.
type MemoryRepository struct {
	mu     sync.RWMutex
	recs   []*models.UserRecord
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, rec *models.UserRecord) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOfEmail(rec.Email) >= 0 {
		return nil, common.ErrConflict
	}

	now := time.Now()
	stored := *rec
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.nextID++

	r.recs = append(r.recs, &stored)

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	out := *r.recs[i]
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOfEmail(email)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	out := *r.recs[i]
	return &out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, mutate func(rec *models.UserRecord) error) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}

	// mutate works on a copy so a failed update leaves the record untouched
	updated := *r.recs[i]
	if err := mutate(&updated); err != nil {
		return nil, err
	}

	if updated.Email != r.recs[i].Email && r.indexOfEmail(updated.Email) >= 0 {
		return nil, common.ErrConflict
	}

	updated.UpdatedAt = time.Now()
	r.recs[i] = &updated

	out := updated
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}

	out := *r.recs[i]
	r.recs = append(r.recs[:i], r.recs[i+1:]...)
	return &out, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.UserRecord, 0, len(r.recs))
	for _, rec := range r.recs {
		out := *rec
		result = append(result, &out)
	}
	return result, nil
}

// callers must hold the lock
func (r *MemoryRepository) indexOf(id int64) int {
	for i, rec := range r.recs {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// callers must hold the lock; exact-string comparison, no case folding
func (r *MemoryRepository) indexOfEmail(email string) int {
	for i, rec := range r.recs {
		if rec.Email == email {
			return i
		}
	}
	return -1
}
