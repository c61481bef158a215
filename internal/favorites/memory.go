package favorites

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"weatherpoint/internal/apperr"
)

// MemoryRepository is a concurrency-safe in-memory Repository. It backs
// tests and deployments without a configured database.
type MemoryRepository struct {
	mu     sync.RWMutex
	data   map[int64]FavoriteLocation
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data:   make(map[int64]FavoriteLocation),
		nextID: 1,
	}
}

func (r *MemoryRepository) Insert(fav *FavoriteLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	fav.ID = r.nextID
	fav.CreatedAt = now
	fav.UpdatedAt = now
	r.nextID++

	r.data[fav.ID] = *fav
	return nil
}

func (r *MemoryRepository) Get(id int64) (*FavoriteLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fav, ok := r.data[id]
	if !ok {
		return nil, fmt.Errorf("favorite %d: %w", id, apperr.ErrNotFound)
	}
	return &fav, nil
}

// List returns all favorites in ascending id order, which is stable
// across repeated calls.
func (r *MemoryRepository) List() ([]FavoriteLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favorites := make([]FavoriteLocation, 0, len(r.data))
	for _, fav := range r.data {
		favorites = append(favorites, fav)
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].ID < favorites[j].ID
	})
	return favorites, nil
}

func (r *MemoryRepository) Update(fav *FavoriteLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.data[fav.ID]
	if !ok {
		return fmt.Errorf("favorite %d: %w", fav.ID, apperr.ErrNotFound)
	}

	fav.CreatedAt = existing.CreatedAt
	fav.UpdatedAt = time.Now().UTC()
	r.data[fav.ID] = *fav
	return nil
}

func (r *MemoryRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return fmt.Errorf("favorite %d: %w", id, apperr.ErrNotFound)
	}
	delete(r.data, id)
	return nil
}
