package accesslogs

import (
	"context"
	"sync"
	"time"

	"imagevault/internal/common"
	"imagevault/internal/models"
)

// MemoryRepository keeps access records in memory, oldest first.
type MemoryRepository struct {
	mu     sync.RWMutex
	recs   []*models.AccessLog
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, username string) (*models.AccessLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &models.AccessLog{
		ID:        r.nextID,
		Username:  username,
		Timestamp: time.Now(),
	}
	r.nextID++
	r.recs = append(r.recs, rec)

	out := *rec
	return &out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.recs)), nil
}

func (r *MemoryRepository) UniqueUsernames(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.recs))
	var result []string
	for _, rec := range r.recs {
		if _, ok := seen[rec.Username]; ok {
			continue
		}
		seen[rec.Username] = struct{}{}
		result = append(result, rec.Username)
	}
	return result, nil
}

func (r *MemoryRepository) Last(ctx context.Context) (*models.AccessLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.recs) == 0 {
		return nil, common.ErrNotFound
	}
	out := *r.recs[len(r.recs)-1]
	return &out, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.AccessLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.AccessLog, 0, len(r.recs))
	for i := len(r.recs) - 1; i >= 0; i-- {
		out := *r.recs[i]
		result = append(result, &out)
	}
	return result, nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = nil
	return nil
}
