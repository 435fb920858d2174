package repositories

import (
	"context"
	"sync"

	"github.com/cbodonnell/stardrift/pkg/repositories/models"
)

// MemoryRepository keeps the last score in process memory.
type MemoryRepository struct {
	lock   sync.RWMutex
	record *models.ScoreRecord
}

var _ Repository = &MemoryRepository{}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) SaveLastScore(ctx context.Context, record *models.ScoreRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	copy := *record
	r.record = &copy
	return nil
}

func (r *MemoryRepository) LoadLastScore(ctx context.Context) (*models.ScoreRecord, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.record == nil {
		return nil, &ErrNotFound{}
	}
	copy := *r.record
	return &copy, nil
}
