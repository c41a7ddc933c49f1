package snapshot

import (
	"context"
	"sync"

	"github.com/wastewise/pickup/internal/client/models"
)

// MemoryRepository is an in-memory Repository for tests and ephemeral
// runs where no cache file is wanted.
type MemoryRepository struct {
	mu              sync.Mutex
	identity        *models.Identity
	profileComplete *bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.identity == nil {
		return nil, nil
	}
	id := *r.identity
	return &id, nil
}

func (r *MemoryRepository) Save(ctx context.Context, id models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity = &id
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity = nil
	r.profileComplete = nil
	return nil
}

func (r *MemoryRepository) ProfileComplete(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profileComplete == nil {
		return true, nil
	}
	return *r.profileComplete, nil
}

func (r *MemoryRepository) SetProfileComplete(ctx context.Context, complete bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profileComplete = &complete
	return nil
}
